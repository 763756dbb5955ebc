// Package geometry holds the rectangle math used to lay out and animate
// image pages: fitting an image into its page for a content mode and
// interpolating between two frames.
package geometry

import "math"

// Rect is an axis aligned rectangle in window pixels.
type Rect struct {
	X, Y, W, H int32
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy int32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Center returns the midpoint of r.
func (r Rect) Center() (int32, int32) {
	return r.X + r.W/2, r.Y + r.H/2
}

// ContentMode controls how an image is scaled into its page.
type ContentMode int

const (
	AspectFill  ContentMode = iota // Cover the page, cropping overflow
	AspectFit                      // Fit inside the page, letterboxing
	ScaleToFill                    // Stretch to the page ignoring aspect ratio
	Center                         // Natural size, centred
)

func (m ContentMode) String() string {
	switch m {
	case AspectFill:
		return "aspect_fill"
	case AspectFit:
		return "aspect_fit"
	case ScaleToFill:
		return "scale_to_fill"
	case Center:
		return "center"
	default:
		return "unknown"
	}
}

// ParseContentMode maps a settings value to a ContentMode.
func ParseContentMode(s string) (ContentMode, bool) {
	switch s {
	case "aspect_fill", "fill":
		return AspectFill, true
	case "aspect_fit", "fit":
		return AspectFit, true
	case "scale_to_fill", "stretch":
		return ScaleToFill, true
	case "center":
		return Center, true
	default:
		return AspectFill, false
	}
}

// Fit returns the destination rectangle for an image of size w x h drawn
// into bounds with the given mode. The result is centred in bounds and may
// extend past it for AspectFill and Center.
func Fit(w, h int32, bounds Rect, mode ContentMode) Rect {
	if w <= 0 || h <= 0 || bounds.Empty() {
		return Rect{X: bounds.X, Y: bounds.Y}
	}

	var outW, outH int32
	switch mode {
	case ScaleToFill:
		return bounds
	case Center:
		outW, outH = w, h
	case AspectFit, AspectFill:
		sx := float64(bounds.W) / float64(w)
		sy := float64(bounds.H) / float64(h)
		scale := math.Min(sx, sy)
		if mode == AspectFill {
			scale = math.Max(sx, sy)
		}
		outW = int32(math.Round(float64(w) * scale))
		outH = int32(math.Round(float64(h) * scale))
	default:
		return bounds
	}

	return Rect{
		X: bounds.X + (bounds.W-outW)/2,
		Y: bounds.Y + (bounds.H-outH)/2,
		W: outW,
		H: outH,
	}
}

// Lerp interpolates from a to b. t is clamped to [0, 1].
func Lerp(a, b Rect, t float64) Rect {
	t = clamp01(t)
	mix := func(x, y int32) int32 {
		return x + int32(math.Round(float64(y-x)*t))
	}
	return Rect{
		X: mix(a.X, b.X),
		Y: mix(a.Y, b.Y),
		W: mix(a.W, b.W),
		H: mix(a.H, b.H),
	}
}

// EaseInOut is a cubic ease used for open/close transitions and page settling.
func EaseInOut(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
