package imageviewer

import (
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/constants"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/geometry"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/internal"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/internal/locale"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/paging"
	"github.com/veandco/go-sdl2/sdl"
)

const chromePadding int32 = 12

type label struct {
	texture *sdl.Texture
	w, h    int32
}

func (l *label) destroy() {
	if l != nil && l.texture != nil {
		l.texture.Destroy()
		l.texture = nil
	}
}

type labelKey struct {
	text  string
	small bool
	color sdl.Color
}

// chrome draws the navigation bar, the footer hints and centred messages.
// Static strings are rendered once; the counter is re-rendered on change.
type chrome struct {
	renderer  *sdl.Renderer
	cfg       viewerConfig
	localizer *locale.Localizer
	labels    map[labelKey]*label

	counterText string
	counter     *label
}

func newChrome(renderer *sdl.Renderer, cfg viewerConfig, localizer *locale.Localizer) *chrome {
	return &chrome{
		renderer:  renderer,
		cfg:       cfg,
		localizer: localizer,
		labels:    make(map[labelKey]*label),
	}
}

func (c *chrome) render(text string, small bool, color sdl.Color) *label {
	font := internal.Fonts.TitleFont
	if small {
		font = internal.Fonts.SmallFont
	}

	l := &label{}
	texture := internal.RenderText(c.renderer, text, font, color)
	if texture == nil {
		return l
	}
	_, _, w, h, err := texture.Query()
	if err != nil {
		texture.Destroy()
		return l
	}
	l.texture, l.w, l.h = texture, w, h
	return l
}

func (c *chrome) label(text string, small bool, color sdl.Color) *label {
	key := labelKey{text: text, small: small, color: color}
	if l, ok := c.labels[key]; ok {
		return l
	}
	l := c.render(text, small, color)
	c.labels[key] = l
	return l
}

func (c *chrome) counterLabel(text string) *label {
	if c.counter == nil || text != c.counterText {
		c.counter.destroy()
		c.counter = c.render(text, false, c.cfg.theme.NavigationItemColor)
		c.counterText = text
	}
	return c.counter
}

func (c *chrome) drawLabel(l *label, x, y int32) {
	if l.texture == nil {
		return
	}
	c.renderer.Copy(l.texture, nil, &sdl.Rect{X: x, Y: y, W: l.w, H: l.h})
}

func (c *chrome) drawCentred(l *label, bounds geometry.Rect) {
	cx, cy := bounds.Center()
	c.drawLabel(l, cx-l.w/2, cy-l.h/2)
}

func (c *chrome) renderNavigationBar(width int32, controller *paging.Controller, current *pageView) {
	bar := geometry.Rect{W: width, H: constants.NavigationBarHeight}

	if color := c.cfg.theme.NavigationColor; color.A > 0 {
		c.renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
		c.renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		c.renderer.FillRect(toSDLRect(bar))
	}

	if c.cfg.titleView != nil {
		c.cfg.titleView(c.renderer, internal.UniformInsets(4).Apply(bar))
		return
	}

	switch {
	case c.cfg.title != "":
		c.drawCentred(c.label(c.cfg.title, false, c.cfg.theme.NavigationItemColor), bar)
	case current != nil && current.page.Item.Title != "":
		c.drawCentred(c.label(current.page.Item.Title, false, c.cfg.theme.NavigationItemColor), bar)
	case c.cfg.showCounter && !controller.Empty():
		text := c.localizer.Counter(controller.CurrentIndex(), controller.Count())
		c.drawCentred(c.counterLabel(text), bar)
	}
}

func (c *chrome) renderFooter(width, height int32, hasAction bool) {
	area := internal.Insets{Left: chromePadding, Right: chromePadding}.Apply(geometry.Rect{
		Y: height - constants.FooterHeight,
		W: width,
		H: constants.FooterHeight,
	})
	tint := c.cfg.theme.TintColor

	closeHint := c.label(c.localizer.Text(locale.HintClose), true, tint)
	c.drawLabel(closeHint, area.X, area.Y+(area.H-closeHint.h)/2)

	navigateHint := c.label(c.localizer.Text(locale.HintNavigate), true, tint)
	x := area.X + area.W - navigateHint.w
	c.drawLabel(navigateHint, x, area.Y+(area.H-navigateHint.h)/2)

	if hasAction {
		actionHint := c.label(c.localizer.Text(locale.HintAction), true, tint)
		c.drawLabel(actionHint, x-chromePadding*2-actionHint.w, area.Y+(area.H-actionHint.h)/2)
	}
}

// renderMessage draws text over the page background in whichever of black
// or white reads better on it.
func (c *chrome) renderMessage(bounds geometry.Rect, text string) {
	bg := c.cfg.theme.BackgroundColor
	color := sdl.Color{R: 255, G: 255, B: 255, A: 255}
	if 299*int(bg.R)+587*int(bg.G)+114*int(bg.B) > 128*1000 {
		color = sdl.Color{A: 255}
	}
	c.drawCentred(c.label(text, false, color), bounds)
}

func (c *chrome) destroy() {
	for key, l := range c.labels {
		l.destroy()
		delete(c.labels, key)
	}
	c.counter.destroy()
	c.counter = nil
}
