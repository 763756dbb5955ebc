package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFit(t *testing.T) {
	page := Rect{X: 0, Y: 0, W: 400, H: 300}

	tests := []struct {
		name string
		w, h int32
		mode ContentMode
		want Rect
	}{
		{"fit wide image letterboxes", 800, 400, AspectFit, Rect{X: 0, Y: 50, W: 400, H: 200}},
		{"fit tall image pillarboxes", 300, 600, AspectFit, Rect{X: 125, Y: 0, W: 150, H: 300}},
		{"fill wide image crops sides", 800, 400, AspectFill, Rect{X: -100, Y: 0, W: 600, H: 300}},
		{"fill small image scales up", 40, 30, AspectFill, Rect{X: 0, Y: 0, W: 400, H: 300}},
		{"stretch ignores aspect", 10, 90, ScaleToFill, page},
		{"center keeps natural size", 100, 50, Center, Rect{X: 150, Y: 125, W: 100, H: 50}},
		{"zero sized image", 0, 10, AspectFit, Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fit(tt.w, tt.h, page, tt.mode))
		})
	}
}

func TestFit_OffsetBounds(t *testing.T) {
	got := Fit(100, 100, Rect{X: 20, Y: 44, W: 200, H: 100}, AspectFit)
	assert.Equal(t, Rect{X: 70, Y: 44, W: 100, H: 100}, got)
}

func TestLerp(t *testing.T) {
	a := Rect{X: 10, Y: 10, W: 40, H: 40}
	b := Rect{X: 0, Y: 0, W: 400, H: 300}

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, Rect{X: 5, Y: 5, W: 220, H: 170}, Lerp(a, b, 0.5))
	assert.Equal(t, b, Lerp(a, b, 7))
	assert.Equal(t, a, Lerp(a, b, -1))
}

func TestEaseInOut(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOut(0))
	assert.Equal(t, 1.0, EaseInOut(1))
	assert.InDelta(t, 0.5, EaseInOut(0.5), 1e-9)
	assert.Less(t, EaseInOut(0.25), 0.25)
	assert.Greater(t, EaseInOut(0.75), 0.75)
}

func TestParseContentMode(t *testing.T) {
	for _, m := range []ContentMode{AspectFill, AspectFit, ScaleToFill, Center} {
		got, ok := ParseContentMode(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}

	got, ok := ParseContentMode("sideways")
	assert.False(t, ok)
	assert.Equal(t, AspectFill, got)
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	assert.False(t, r.Empty())
	assert.True(t, Rect{W: 0, H: 5}.Empty())
	assert.Equal(t, Rect{X: 15, Y: 15, W: 30, H: 40}, r.Offset(5, -5))

	cx, cy := r.Center()
	assert.Equal(t, int32(25), cx)
	assert.Equal(t, int32(40), cy)
}
