package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saylorsolutions/guard/seq"
)

func TestOf(t *testing.T) {
	var collected []int
	for v := range seq.Of(1, 2, 3) {
		collected = append(collected, v)
	}
	assert.Equal(t, []int{1, 2, 3}, collected)
}

func TestEmpty(t *testing.T) {
	assert.Equal(t, 0, seq.Count(seq.Empty[string]()))
}

func TestFilter(t *testing.T) {
	odd := seq.Filter(seq.Of(1, 2, 3, 4, 5), func(v int) bool {
		return v%2 == 1
	})
	assert.Equal(t, 3, seq.Count(odd))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 3, seq.Count(seq.Of("a", "b", "c")))
	assert.Equal(t, 0, seq.Count[string](nil))
}

func TestFirst(t *testing.T) {
	val, ok := seq.First(seq.Of(5, 10))
	require.True(t, ok)
	assert.Equal(t, 5, val)

	_, ok = seq.First(seq.Empty[int]())
	assert.False(t, ok)

	_, ok = seq.First[int](nil)
	assert.False(t, ok)
}

func TestFirst_PullsOneElement(t *testing.T) {
	var pulled int
	counting := func(yield func(int) bool) {
		for _, v := range []int{1, 2, 3} {
			pulled++
			if !yield(v) {
				return
			}
		}
	}
	val, ok := seq.First(seq.Once(counting))
	require.True(t, ok)
	assert.Equal(t, 1, val)
	assert.Equal(t, 1, pulled)
}

func TestOnce(t *testing.T) {
	wrapped := seq.Once(seq.Of(1, 2))
	assert.Equal(t, 2, seq.Count(wrapped))
	assert.Panics(t, func() {
		seq.Count(wrapped)
	})
}
