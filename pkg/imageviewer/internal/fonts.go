package internal

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are the point sizes of the chrome fonts.
type FontSizes struct {
	Title int
	Small int
}

var DefaultFontSizes = FontSizes{Title: 22, Small: 16}

type fontsCollection struct {
	TitleFont *ttf.Font
	SmallFont *ttf.Font
}

// Fonts holds the loaded chrome fonts. Either font may be nil when no font
// file is available, in which case text is skipped.
var Fonts fontsCollection

func initFonts(path string, sizes FontSizes) {
	if path == "" {
		GetInternalLogger().Warn("No font configured; chrome text disabled")
		return
	}

	var err error
	if Fonts.TitleFont, err = ttf.OpenFont(path, sizes.Title); err != nil {
		GetInternalLogger().Error("Failed to load title font", "path", path, "error", err)
	}
	if Fonts.SmallFont, err = ttf.OpenFont(path, sizes.Small); err != nil {
		GetInternalLogger().Error("Failed to load small font", "path", path, "error", err)
	}
}

func closeFonts() {
	if Fonts.TitleFont != nil {
		Fonts.TitleFont.Close()
	}
	if Fonts.SmallFont != nil {
		Fonts.SmallFont.Close()
	}
	Fonts = fontsCollection{}
}

// RenderText renders text into a new texture. The caller owns the texture.
// Returns nil for empty text, a missing font or a rendering failure.
func RenderText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color) *sdl.Texture {
	if text == "" || font == nil {
		return nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}

	return texture
}
