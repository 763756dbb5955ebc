package internal

import "github.com/BrandonKowalski/imageviewer/pkg/imageviewer/geometry"

// Insets reserves space on each edge of the window for chrome.
type Insets struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformInsets creates Insets with the same value on all sides.
func UniformInsets(value int32) Insets {
	return Insets{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Apply shrinks r by the insets.
func (in Insets) Apply(r geometry.Rect) geometry.Rect {
	return geometry.Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: r.W - in.Left - in.Right,
		H: r.H - in.Top - in.Bottom,
	}
}
