package paging

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func galleryOf(n int) SliceGallery {
	g := make(SliceGallery, n)
	for i := range g {
		g[i] = ImageItem{Locator: fmt.Sprintf("img-%d.png", i)}
	}
	return g
}

// countingGallery records every Item lookup so tests can check laziness.
type countingGallery struct {
	SliceGallery
	lookups []int
}

func (g *countingGallery) Item(index int) ImageItem {
	g.lookups = append(g.lookups, index)
	return g.SliceGallery.Item(index)
}

func TestNewController_ValidIndices(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for i := 0; i < n; i++ {
			c, err := NewController(galleryOf(n), i)
			require.NoError(t, err, "n=%d i=%d", n, i)
			assert.Equal(t, i, c.CurrentIndex())
			assert.Equal(t, i, c.InitialIndex())
			assert.False(t, c.Empty())

			page, ok := c.Current()
			require.True(t, ok)
			assert.Equal(t, i, page.Index)
			assert.Equal(t, fmt.Sprintf("img-%d.png", i), page.Item.Locator)
		}
	}
}

func TestNewController_InvalidIndex(t *testing.T) {
	tests := []struct {
		name  string
		count int
		index int
	}{
		{"negative", 3, -1},
		{"equal to count", 3, 3},
		{"far past end", 3, 42},
		{"single image", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewController(galleryOf(tt.count), tt.index)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrInvalidIndex))

			var indexErr *IndexError
			require.ErrorAs(t, err, &indexErr)
			assert.Equal(t, tt.index, indexErr.Index)
			assert.Equal(t, tt.count, indexErr.Count)
		})
	}
}

func TestNewController_EmptyGallery(t *testing.T) {
	for _, g := range []Gallery{SliceGallery{}, nil} {
		c, err := NewController(g, 5)
		require.NoError(t, err)
		assert.True(t, c.Empty())
		assert.Equal(t, -1, c.CurrentIndex())
		assert.Equal(t, 0, c.Count())

		_, ok := c.Current()
		assert.False(t, ok)

		for _, idx := range []int{-1, 0, 1, 5} {
			_, ok = c.PageBefore(idx)
			assert.False(t, ok)
			_, ok = c.PageAfter(idx)
			assert.False(t, ok)
		}

		assert.ErrorIs(t, c.Commit(Page{Index: 0}), ErrEmptyGallery)
	}
}

func TestController_Boundaries(t *testing.T) {
	for n := 1; n <= 5; n++ {
		c, err := NewController(galleryOf(n), 0)
		require.NoError(t, err)

		_, ok := c.PageBefore(0)
		assert.False(t, ok, "PageBefore(0) with n=%d", n)

		_, ok = c.PageAfter(n - 1)
		assert.False(t, ok, "PageAfter(%d) with n=%d", n-1, n)
	}
}

func TestController_InteriorNeighbours(t *testing.T) {
	const n = 6
	c, err := NewController(galleryOf(n), 0)
	require.NoError(t, err)

	for i := 1; i < n-1; i++ {
		before, ok := c.PageBefore(i)
		require.True(t, ok)
		assert.Equal(t, i-1, before.Index)
		assert.Equal(t, fmt.Sprintf("img-%d.png", i-1), before.Item.Locator)

		after, ok := c.PageAfter(i)
		require.True(t, ok)
		assert.Equal(t, i+1, after.Index)
	}
}

func TestController_NeighboursDoNotMoveCurrent(t *testing.T) {
	c, err := NewController(galleryOf(5), 2)
	require.NoError(t, err)

	_, _ = c.PageBefore(2)
	_, _ = c.PageAfter(2)
	_, _ = c.PageAfter(3)
	_, _ = c.Current()

	assert.Equal(t, 2, c.CurrentIndex())
}

func TestController_StaleIndexUsesSuppliedIndex(t *testing.T) {
	c, err := NewController(galleryOf(5), 2)
	require.NoError(t, err)

	page, ok := c.PageAfter(0)
	require.True(t, ok)
	assert.Equal(t, 1, page.Index)
	assert.Equal(t, 2, c.CurrentIndex())
}

func TestController_LazyMaterialisation(t *testing.T) {
	g := &countingGallery{SliceGallery: galleryOf(1000)}
	c, err := NewController(g, 500)
	require.NoError(t, err)
	assert.Empty(t, g.lookups)

	_, _ = c.PageAfter(500)
	_, _ = c.PageBefore(500)
	assert.Equal(t, []int{501, 499}, g.lookups)
}

func TestController_Commit(t *testing.T) {
	c, err := NewController(galleryOf(5), 2)
	require.NoError(t, err)

	next, ok := c.PageAfter(c.CurrentIndex())
	require.True(t, ok)
	require.NoError(t, c.Commit(next))
	assert.Equal(t, 3, c.CurrentIndex())
	assert.Equal(t, 2, c.InitialIndex())

	err = c.Commit(Page{Index: 7})
	assert.ErrorIs(t, err, ErrInvalidIndex)
	assert.Equal(t, 3, c.CurrentIndex())

	err = c.Commit(Page{Index: -1})
	assert.ErrorIs(t, err, ErrInvalidIndex)
	assert.Equal(t, 3, c.CurrentIndex())
}

func TestController_SingleImageHasNoSwipeTargets(t *testing.T) {
	c, err := NewController(galleryOf(1), 0)
	require.NoError(t, err)

	_, ok := c.PageBefore(0)
	assert.False(t, ok)
	_, ok = c.PageAfter(0)
	assert.False(t, ok)

	_, ok = BeginSwipe(c, SwipeBackward, 0)
	assert.False(t, ok)
	_, ok = BeginSwipe(c, SwipeForward, 0)
	assert.False(t, ok)
}
