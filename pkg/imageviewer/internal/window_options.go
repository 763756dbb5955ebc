package internal

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions selects the SDL window flags.
type WindowOptions struct {
	Borderless        bool // SDL_WINDOW_BORDERLESS
	Resizable         bool // SDL_WINDOW_RESIZABLE
	FullscreenDesktop bool // SDL_WINDOW_FULLSCREEN_DESKTOP, the viewer's natural mode on devices
	AlwaysOnTop       bool // SDL_WINDOW_ALWAYS_ON_TOP
	Hidden            bool // omits SDL_WINDOW_SHOWN
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	return flags
}
