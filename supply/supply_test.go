package supply_test

import (
	"sync"
	"testing"

	"github.com/npillmayer/heist/supply"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplyGetIsStablePerHandle(t *testing.T) {
	s := supply.Ints(0)
	v := s.Get()
	for i := 0; i < 10; i++ {
		assert.Equal(t, v, s.Get())
	}
	copied := s // handles have value semantics
	assert.Equal(t, v, copied.Get())
}

func TestSupplySplit2IsMemoized(t *testing.T) {
	s := supply.Ints(0)
	l1, r1 := s.Split2()
	l2, r2 := s.Split2()
	assert.Equal(t, l1.Get(), l2.Get())
	assert.Equal(t, r1.Get(), r2.Get())
}

func TestSupplyChildrenAreDistinct(t *testing.T) {
	s := supply.Ints(0)
	l, r := s.Split2()
	vals := map[int64]bool{s.Get(): true}
	for _, h := range []supply.Supply[int64]{l, r} {
		v := h.Get()
		require.False(t, vals[v], "value %d handed out twice", v)
		vals[v] = true
	}
}

func TestSupplyCustomSuccessor(t *testing.T) {
	s := supply.New("x", func(a string) string { return a + "x" })
	l, r := s.Split2()
	assert.Equal(t, "x", s.Get())
	assert.NotEqual(t, l.Get(), r.Get())
}

func TestSupplyConcurrentDistinctness(t *testing.T) {
	const workers = 8
	const perWorker = 200
	root := supply.Ints(0)
	var wg sync.WaitGroup
	out := make([][]int64, workers)
	handles := make([]supply.Supply[int64], workers)
	s := root
	for i := range handles {
		var h supply.Supply[int64]
		h, s = s.Split2()
		handles[i] = h
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h := handles[i]
			for j := 0; j < perWorker; j++ {
				var next supply.Supply[int64]
				next, h = h.Split2()
				out[i] = append(out[i], next.Get())
			}
		}(i)
	}
	wg.Wait()
	seen := make(map[int64]bool)
	for _, vs := range out {
		for _, v := range vs {
			require.False(t, seen[v], "value %d handed out twice", v)
			seen[v] = true
		}
	}
	require.Len(t, seen, workers*perWorker)
}
