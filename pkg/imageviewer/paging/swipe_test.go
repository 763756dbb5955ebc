package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwipe_CommitPastMidpoint(t *testing.T) {
	c, err := NewController(galleryOf(5), 2)
	require.NoError(t, err)

	s, ok := BeginSwipe(c, SwipeForward, 0)
	require.True(t, ok)
	assert.Equal(t, 2, s.From())
	assert.Equal(t, 3, s.Candidate().Index)
	assert.Equal(t, SwipeForward, s.Direction())

	s.Update(0.75)
	assert.True(t, s.PastMidpoint())

	committed, err := s.Finish(c)
	require.NoError(t, err)
	assert.True(t, committed)
	assert.Equal(t, 3, c.CurrentIndex())
}

func TestSwipe_CancelledBeforeMidpoint(t *testing.T) {
	c, err := NewController(galleryOf(5), 2)
	require.NoError(t, err)

	s, ok := BeginSwipe(c, SwipeBackward, 0)
	require.True(t, ok)
	assert.Equal(t, 1, s.Candidate().Index)

	s.Update(0.3)
	s.Update(0.5)
	assert.False(t, s.PastMidpoint())

	committed, err := s.Finish(c)
	require.NoError(t, err)
	assert.False(t, committed)
	assert.Equal(t, 2, c.CurrentIndex())
}

func TestSwipe_StaleIsDiscarded(t *testing.T) {
	c, err := NewController(galleryOf(5), 2)
	require.NoError(t, err)

	first, ok := BeginSwipe(c, SwipeForward, 0)
	require.True(t, ok)
	second, ok := BeginSwipe(c, SwipeBackward, 0)
	require.True(t, ok)

	second.Update(1)
	committed, err := second.Finish(c)
	require.NoError(t, err)
	require.True(t, committed)
	assert.Equal(t, 1, c.CurrentIndex())

	first.Update(1)
	committed, err = first.Finish(c)
	assert.ErrorIs(t, err, ErrStaleSwipe)
	assert.False(t, committed)
	assert.Equal(t, 1, c.CurrentIndex())
}

func TestSwipe_ProgressClampAndThreshold(t *testing.T) {
	c, err := NewController(galleryOf(3), 1)
	require.NoError(t, err)

	s, ok := BeginSwipe(c, SwipeForward, 0.25)
	require.True(t, ok)

	s.Update(-3)
	assert.Equal(t, 0.0, s.Progress())
	s.Update(9)
	assert.Equal(t, 1.0, s.Progress())

	s.Update(0.3)
	assert.True(t, s.PastMidpoint())

	fallback, ok := BeginSwipe(c, SwipeForward, 1.5)
	require.True(t, ok)
	fallback.Update(0.4)
	assert.False(t, fallback.PastMidpoint())
}

func TestSwipe_Boundaries(t *testing.T) {
	c, err := NewController(galleryOf(3), 0)
	require.NoError(t, err)

	_, ok := BeginSwipe(c, SwipeBackward, 0)
	assert.False(t, ok)

	require.NoError(t, c.Commit(Page{Index: 2}))
	_, ok = BeginSwipe(c, SwipeForward, 0)
	assert.False(t, ok)
}

func TestSwipeDirection_String(t *testing.T) {
	assert.Equal(t, "backward", SwipeBackward.String())
	assert.Equal(t, "forward", SwipeForward.String())
}
