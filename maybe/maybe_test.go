package maybe_test

import (
	"strconv"
	"testing"

	"github.com/npillmayer/heist/maybe"
	"github.com/stretchr/testify/assert"
)

func TestJustAndNothing(t *testing.T) {
	j := maybe.Just(7)
	v, ok := j.Get()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.True(t, j.IsJust())

	n := maybe.Nothing[int]()
	_, ok = n.Get()
	assert.False(t, ok)
	assert.False(t, n.IsJust())
}

func TestZeroValueIsNothing(t *testing.T) {
	var m maybe.Maybe[string]
	assert.False(t, m.IsJust())
}

func TestWithDefault(t *testing.T) {
	assert.Equal(t, 7, maybe.Just(7).WithDefault(0))
	assert.Equal(t, 0, maybe.Nothing[int]().WithDefault(0))
}

func TestMap(t *testing.T) {
	double := func(x int) int { return 2 * x }
	assert.Equal(t, maybe.Just(14), maybe.Just(7).Map(double))
	assert.Equal(t, maybe.Nothing[int](), maybe.Nothing[int]().Map(double))
}

func TestAndThen(t *testing.T) {
	parse := func(s string) maybe.Maybe[int] {
		if n, err := strconv.Atoi(s); err == nil {
			return maybe.Just(n)
		}
		return maybe.Nothing[int]()
	}
	assert.Equal(t, maybe.Just(42), maybe.AndThen(parse, maybe.Just("42")))
	assert.False(t, maybe.AndThen(parse, maybe.Just("nope")).IsJust())
	assert.False(t, maybe.AndThen(parse, maybe.Nothing[string]()).IsJust())
}
