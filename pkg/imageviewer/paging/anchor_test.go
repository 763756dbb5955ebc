package paging

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testView struct {
	name  string
	frame [4]int32
}

type fakeAnimator struct {
	calls []Transition[testView]
}

func (a *fakeAnimator) Animate(t Transition[testView]) {
	a.calls = append(a.calls, t)
}

func TestResolver_SourceOnlyWhileAnchored(t *testing.T) {
	c, err := NewController(galleryOf(5), 2)
	require.NoError(t, err)

	thumb := &testView{name: "thumb"}
	r := NewResolver[testView](c, thumb, nil)

	assert.Equal(t, Anchored, r.State())
	assert.Same(t, thumb, r.Source())

	for _, idx := range []int{0, 1, 3, 4} {
		require.NoError(t, c.Commit(Page{Index: idx}))
		assert.Equal(t, Drifted, r.State(), "index %d", idx)
		assert.Nil(t, r.Source(), "index %d", idx)
	}

	require.NoError(t, c.Commit(Page{Index: 2}))
	assert.Equal(t, Anchored, r.State())
	assert.Same(t, thumb, r.Source())

	runtime.KeepAlive(thumb)
}

func TestResolver_RoundTripScenario(t *testing.T) {
	c, err := NewController(galleryOf(5), 2)
	require.NoError(t, err)

	thumb := &testView{name: "thumb"}
	r := NewResolver[testView](c, thumb, nil)

	before, ok := c.PageBefore(2)
	require.True(t, ok)
	assert.Equal(t, 1, before.Index)

	require.NoError(t, c.Commit(before))
	assert.Equal(t, 1, c.CurrentIndex())
	assert.Nil(t, r.Source())

	after, ok := c.PageAfter(1)
	require.True(t, ok)
	assert.Equal(t, 2, after.Index)

	require.NoError(t, c.Commit(after))
	assert.Equal(t, 2, c.CurrentIndex())
	assert.Same(t, thumb, r.Source())

	runtime.KeepAlive(thumb)
}

func TestResolver_Target(t *testing.T) {
	c, err := NewController(galleryOf(3), 0)
	require.NoError(t, err)

	var attached *testView
	r := NewResolver[testView](c, nil, func() *testView { return attached })

	assert.Nil(t, r.Target())

	attached = &testView{name: "page-0"}
	assert.Same(t, attached, r.Target())

	noLookup := NewResolver[testView](c, nil, nil)
	assert.Nil(t, noLookup.Target())
}

func TestResolver_NilOpeningAnchor(t *testing.T) {
	c, err := NewController(galleryOf(3), 1)
	require.NoError(t, err)

	r := NewResolver[testView](c, nil, nil)
	assert.Equal(t, Anchored, r.State())
	assert.Nil(t, r.Source())
}

func TestResolver_CollectedAnchorDegradesToNil(t *testing.T) {
	c, err := NewController(galleryOf(3), 1)
	require.NoError(t, err)

	r := NewResolver[testView](c, &testView{name: "short-lived"}, nil)

	runtime.GC()
	runtime.GC()

	assert.Equal(t, Anchored, r.State())
	assert.Nil(t, r.Source())
}

func TestResolver_EmptyController(t *testing.T) {
	c, err := NewController(SliceGallery{}, 0)
	require.NoError(t, err)

	thumb := &testView{name: "thumb"}
	r := NewResolver[testView](c, thumb, func() *testView { return thumb })

	assert.Equal(t, Detached, r.State())
	assert.Nil(t, r.Source())
	assert.Nil(t, r.Target())

	runtime.KeepAlive(thumb)
}

func TestResolver_CallsHaveNoSideEffects(t *testing.T) {
	c, err := NewController(galleryOf(4), 1)
	require.NoError(t, err)

	thumb := &testView{name: "thumb"}
	r := NewResolver[testView](c, thumb, nil)

	for i := 0; i < 10; i++ {
		_ = r.Source()
		_ = r.Target()
		_ = r.State()
		_ = r.Transition(Close)
	}
	assert.Equal(t, 1, c.CurrentIndex())
	assert.Same(t, thumb, r.Source())

	runtime.KeepAlive(thumb)
}

func TestPresent(t *testing.T) {
	c, err := NewController(galleryOf(3), 0)
	require.NoError(t, err)

	thumb := &testView{name: "thumb"}
	page := &testView{name: "page"}
	r := NewResolver[testView](c, thumb, func() *testView { return page })
	a := &fakeAnimator{}

	open := Present[testView](r, a, Open)
	assert.True(t, open.Geometric())
	assert.Equal(t, Open, open.Direction)

	next, _ := c.PageAfter(0)
	require.NoError(t, c.Commit(next))

	closing := Present[testView](r, a, Close)
	assert.False(t, closing.Geometric())
	assert.Nil(t, closing.Source)
	assert.Same(t, page, closing.Target)

	require.Len(t, a.calls, 2)
	assert.Equal(t, Close, a.calls[1].Direction)

	assert.NotPanics(t, func() { Present[testView](r, nil, Close) })

	runtime.KeepAlive(thumb)
}

func TestAnchorState_String(t *testing.T) {
	assert.Equal(t, "anchored", Anchored.String())
	assert.Equal(t, "drifted", Drifted.String())
	assert.Equal(t, "detached", Detached.String())
	assert.Equal(t, "open", Open.String())
	assert.Equal(t, "close", Close.String())
}
