package crawl_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/notebook/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier_Push_rejects_duplicate_URLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.True(t, f.Push("https://example.com/docs/page1"), "first push should succeed")
	assert.False(t, f.Push("https://example.com/docs/page1"), "duplicate URL should be rejected")
}

func TestFrontier_Push_rejects_popped_URLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)
	f.Push("https://example.com/a")

	u, ok := f.Pop()
	require.True(t, ok)
	require.Equal(t, "https://example.com/a", u)

	assert.False(t, f.Push("https://example.com/a"), "visited URL must not be queued again")
}

func TestFrontier_Pop_is_first_in_first_out(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)
	f.Push("https://example.com/c")
	f.Push("https://example.com/a")
	f.Push("https://example.com/b")

	var got []string
	for {
		u, ok := f.Pop()
		if !ok {
			break
		}
		got = append(got, u)
	}

	assert.Equal(t, []string{
		"https://example.com/c",
		"https://example.com/a",
		"https://example.com/b",
	}, got)
}

func TestFrontier_Pop_returns_false_when_empty(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	_, ok := f.Pop()
	assert.False(t, ok)
}

func TestFrontier_Len(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)
	assert.Equal(t, 0, f.Len())

	f.Push("https://example.com/1")
	f.Push("https://example.com/2")
	assert.Equal(t, 2, f.Len())

	f.Pop()
	assert.Equal(t, 1, f.Len())
}

func TestFrontier_strips_fragments(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.True(t, f.Push("https://example.com/page#intro"))
	assert.False(t, f.Push("https://example.com/page#usage"))
	assert.False(t, f.Push("https://example.com/page"))
	assert.True(t, f.Seen("https://example.com/page#anything"))

	u, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, "https://example.com/page", u)
}

func TestFrontier_treats_equivalent_URLs_as_one(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.True(t, f.Push("https://example.com"))
	assert.False(t, f.Push("https://example.com/"))
	assert.False(t, f.Push("HTTPS://Example.COM/#top"))
	assert.True(t, f.Push("https://example.com/About"))

	u, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, "https://example.com/", u)
}

func TestFrontier_Mark(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.True(t, f.Mark("https://www.example.com/"))
	assert.False(t, f.Mark("https://www.example.com"))
	assert.False(t, f.Push("https://www.example.com/"))
	assert.Equal(t, 0, f.Len())
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"https://example.com", "https://example.com/"},
		{"HTTP://Example.COM/a", "http://example.com/a"},
		{"https://example.com/Path?q=1#frag", "https://example.com/Path?q=1"},
		{"https://example.com:8443", "https://example.com:8443/"},
		{"http://[::1", "http://[::1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, crawl.Normalize(tt.in), tt.in)
	}
}

func TestFrontier_Seen(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)
	f.Push("https://example.com/known")

	assert.True(t, f.Seen("https://example.com/known"))
	assert.False(t, f.Seen("https://example.com/unknown"))
}

func TestFrontier_accepts_every_distinct_URL_beyond_filter_capacity(t *testing.T) {
	t.Parallel()

	// An undersized filter produces many false positives; the exact set
	// must still accept every new URL.
	f := crawl.NewFrontier(10, 0.5)

	for i := range 500 {
		require.True(t, f.Push(fmt.Sprintf("https://example.com/page/%d", i)), "url %d", i)
	}
	assert.Equal(t, 500, f.Len())
}

func TestFrontier_is_safe_for_concurrent_use(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(10000, 0.01)

	var wg sync.WaitGroup
	for g := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				f.Push(fmt.Sprintf("https://example.com/%d/%d", g, i))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, f.Len())
}
