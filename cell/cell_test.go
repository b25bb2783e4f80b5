package cell_test

import (
	"sync"
	"testing"

	"github.com/npillmayer/heist/cell"
	"github.com/npillmayer/heist/set"
	"github.com/stretchr/testify/assert"
)

func TestCellLoadStore(t *testing.T) {
	c := cell.New(41)
	assert.Equal(t, 41, c.Load())
	c.Store(42)
	assert.Equal(t, 42, c.Load())
}

func TestCellUpdate(t *testing.T) {
	c := cell.New(1)
	got := c.Update(func(v int) int { return v + 1 })
	assert.Equal(t, 2, got)
	assert.Equal(t, 2, c.Load())
}

func TestCellConcurrentSnapshotUpdates(t *testing.T) {
	const workers = 8
	const perWorker = 100
	c := cell.New(set.Of[int]())
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				x := w*perWorker + i
				c.Update(func(s set.Set[int]) set.Set[int] {
					return s.Insert(x)
				})
			}
		}(w)
	}
	wg.Wait()
	assert.Equal(t, workers*perWorker, c.Load().Size())
}
