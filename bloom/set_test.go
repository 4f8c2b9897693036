package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/notebook/bloom"
	"github.com/stretchr/testify/assert"
)

func TestSet_Add(t *testing.T) {
	t.Parallel()

	s := bloom.NewSet(100, 0.01)

	assert.True(t, s.Add("https://example.com/a"))
	assert.False(t, s.Add("https://example.com/a"))
	assert.True(t, s.Add("https://example.com/b"))
	assert.Equal(t, 2, s.Len())
}

func TestSet_Contains(t *testing.T) {
	t.Parallel()

	s := bloom.NewSet(100, 0.01)
	s.Add("https://example.com/a")

	assert.True(t, s.Contains("https://example.com/a"))
	assert.False(t, s.Contains("https://example.com/b"))
}

func TestSet_IsExactBeyondCapacity(t *testing.T) {
	t.Parallel()

	// A tiny, saturated filter answers "maybe" for nearly everything;
	// the exact index must still accept every distinct string.
	s := bloom.NewSet(4, 0.5)

	const n = 2000
	for i := range n {
		assert.True(t, s.Add(fmt.Sprintf("https://example.com/%d", i)))
	}
	assert.Equal(t, n, s.Len())
	assert.False(t, s.Contains("https://example.com/absent"))
}
