package imageviewer

import (
	"time"

	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/geometry"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/internal"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/paging"
	"github.com/veandco/go-sdl2/sdl"
)

// zoomAnimator plays open and close transitions. With both anchors it
// morphs the source frame into the page frame (or back); otherwise it fades
// the page in or out in place.
type zoomAnimator struct {
	window   *internal.Window
	theme    Theme
	duration time.Duration
}

func (a *zoomAnimator) Animate(t paging.Transition[View]) {
	if a.duration <= 0 {
		return
	}

	internal.GetInternalLogger().Debug("Playing transition",
		"direction", t.Direction.String(),
		"geometric", t.Geometric())

	start := time.Now()
	for {
		elapsed := time.Since(start)
		progress := float64(elapsed) / float64(a.duration)
		if progress > 1 {
			progress = 1
		}
		a.frame(t, geometry.EaseInOut(progress))
		if progress >= 1 {
			return
		}
		drainEvents()
	}
}

// frame draws one frame of t. p runs from 0 to 1 for both directions.
func (a *zoomAnimator) frame(t paging.Transition[View], p float64) {
	renderer := a.window.Renderer
	renderer.SetDrawColor(0, 0, 0, 255)
	renderer.Clear()

	// visibility of the viewer: 0 is fully closed, 1 fully open
	shown := p
	if t.Direction == paging.Close {
		shown = 1 - p
	}

	bg := a.theme.BackgroundColor
	renderer.SetDrawColor(bg.R, bg.G, bg.B, uint8(float64(bg.A)*shown))
	renderer.FillRect(nil)

	if t.Target == nil || t.Target.Texture == nil {
		a.window.Present()
		return
	}

	texture := t.Target.Texture
	dst := t.Target.Frame
	alpha := uint8(255 * shown)

	if t.Geometric() {
		dst = geometry.Lerp(t.Source.Frame, t.Target.Frame, shown)
		alpha = 255
		if t.Direction == paging.Open && t.Source.Texture != nil && shown < 0.5 {
			texture = t.Source.Texture
		}
	}

	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	texture.SetAlphaMod(alpha)
	renderer.Copy(texture, nil, toSDLRect(dst))
	texture.SetAlphaMod(255)

	a.window.Present()
}

// drainEvents keeps the window responsive during a transition. Input is
// dropped; a transition cannot be interrupted.
func drainEvents() {
	for sdl.PollEvent() != nil {
	}
}

func toSDLRect(r geometry.Rect) *sdl.Rect {
	return &sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
