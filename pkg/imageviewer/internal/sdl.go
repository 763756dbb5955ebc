package internal

import (
	"fmt"

	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// InitConfig collects what Init needs to bring up SDL.
type InitConfig struct {
	Title         string
	WindowOptions WindowOptions
	FontPath      string
	PowerButton   PowerButtonConfig
}

// Init starts SDL, opens the window and loads fonts and input mappings.
func Init(cfg InitConfig) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG | img.INIT_WEBP | img.INIT_TIF); err != nil {
		GetInternalLogger().Warn("Some image formats are unavailable", "error", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	InitInputProcessor()

	winOpts := cfg.WindowOptions
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{FullscreenDesktop: true, Borderless: true}
		}
	}

	w, err := initWindow(cfg.Title, winOpts)
	if err != nil {
		return err
	}
	window = w

	fontPath := cfg.FontPath
	if fontPath == "" {
		fontPath = GetTheme().FontPath
	}
	initFonts(fontPath, DefaultFontSizes)

	if !constants.IsDevMode() && cfg.PowerButton.DevicePath != "" {
		StartPowerButtonHandler(cfg.PowerButton)
	}

	return nil
}

func SDLCleanup() {
	StopPowerButtonHandler()
	if window != nil {
		window.closeWindow()
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
