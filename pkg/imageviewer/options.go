package imageviewer

import (
	"time"

	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/geometry"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/internal"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/internal/settings"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme is the color scheme of the viewer chrome.
type Theme = internal.Theme

// Built-in themes.
var (
	ThemeLight = internal.ThemeLight
	ThemeDark  = internal.ThemeDark
	ThemeClear = internal.ThemeClear
)

// WindowOptions selects the SDL window flags used by Init.
type WindowOptions = internal.WindowOptions

// ThemeByName returns the built-in theme called name ("light", "dark" or "clear").
func ThemeByName(name string) (Theme, bool) {
	return internal.ThemeByName(name)
}

// TitleView draws custom content into the navigation bar in place of the
// title or counter.
type TitleView func(renderer *sdl.Renderer, bounds geometry.Rect)

type optionKind int

const (
	optionTheme optionKind = iota
	optionContentMode
	optionNavigationTitle
	optionNavigationTitleView
	optionInitialized
	optionNavigationAction
	optionShowCounter
	optionSwipeThreshold
	optionTransitionDuration
)

// ViewerOption is one configuration record. Options are applied in order
// when the viewer starts; later records override earlier ones.
type ViewerOption struct {
	kind        optionKind
	theme       Theme
	contentMode geometry.ContentMode
	title       string
	titleView   TitleView
	callback    func()
	action      func(index int) bool
	flag        bool
	threshold   float64
	duration    time.Duration
}

// WithTheme sets the chrome colors.
func WithTheme(theme Theme) ViewerOption {
	return ViewerOption{kind: optionTheme, theme: theme}
}

// WithContentMode sets how images are scaled into their page.
func WithContentMode(mode geometry.ContentMode) ViewerOption {
	return ViewerOption{kind: optionContentMode, contentMode: mode}
}

// WithNavigationTitle shows a fixed title in the navigation bar.
func WithNavigationTitle(title string) ViewerOption {
	return ViewerOption{kind: optionNavigationTitle, title: title}
}

// WithNavigationTitleView replaces the navigation bar content.
func WithNavigationTitleView(view TitleView) ViewerOption {
	return ViewerOption{kind: optionNavigationTitleView, titleView: view}
}

// WithInitialized registers a callback fired once, after setup and before
// the open transition.
func WithInitialized(fn func()) ViewerOption {
	return ViewerOption{kind: optionInitialized, callback: fn}
}

// WithNavigationAction registers the handler for the X button. It receives
// the current index; returning true closes the viewer with
// ViewerActionTriggered.
func WithNavigationAction(fn func(index int) bool) ViewerOption {
	return ViewerOption{kind: optionNavigationAction, action: fn}
}

// WithShowCounter toggles the "N of M" counter in the navigation bar.
func WithShowCounter(show bool) ViewerOption {
	return ViewerOption{kind: optionShowCounter, flag: show}
}

// WithSwipeThreshold sets the fraction of the page width a drag must cover
// to change page.
func WithSwipeThreshold(threshold float64) ViewerOption {
	return ViewerOption{kind: optionSwipeThreshold, threshold: threshold}
}

// WithTransitionDuration sets the open/close animation length. Zero disables it.
func WithTransitionDuration(d time.Duration) ViewerOption {
	return ViewerOption{kind: optionTransitionDuration, duration: d}
}

// viewerConfig is the immutable snapshot a viewer session runs with.
type viewerConfig struct {
	theme              Theme
	contentMode        geometry.ContentMode
	title              string
	titleView          TitleView
	initialized        []func()
	action             func(index int) bool
	showCounter        bool
	swipeThreshold     float64
	transitionDuration time.Duration
	repeatDelay        time.Duration
	repeatInterval     time.Duration
	cacheSize          int
	language           string
}

func newViewerConfig(s settings.Settings, opts []ViewerOption) viewerConfig {
	mode, _ := geometry.ParseContentMode(s.ContentMode)

	cfg := viewerConfig{
		theme:              internal.GetTheme(),
		contentMode:        mode,
		showCounter:        s.ShowCounter,
		swipeThreshold:     s.SwipeThreshold,
		transitionDuration: s.TransitionDuration.Duration,
		repeatDelay:        s.RepeatDelay.Duration,
		repeatInterval:     s.RepeatInterval.Duration,
		cacheSize:          s.CacheSize,
		language:           s.Language,
	}

	for _, opt := range opts {
		switch opt.kind {
		case optionTheme:
			cfg.theme = opt.theme
		case optionContentMode:
			cfg.contentMode = opt.contentMode
		case optionNavigationTitle:
			cfg.title = opt.title
		case optionNavigationTitleView:
			cfg.titleView = opt.titleView
		case optionInitialized:
			if opt.callback != nil {
				cfg.initialized = append(cfg.initialized, opt.callback)
			}
		case optionNavigationAction:
			cfg.action = opt.action
		case optionShowCounter:
			cfg.showCounter = opt.flag
		case optionSwipeThreshold:
			cfg.swipeThreshold = opt.threshold
		case optionTransitionDuration:
			if opt.duration >= 0 {
				cfg.transitionDuration = opt.duration
			}
		}
	}

	return cfg
}
