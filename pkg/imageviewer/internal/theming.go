package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme holds the colors of the viewer chrome. Themes affect colors only and
// never paging or transition behaviour.
type Theme struct {
	Name                string
	BackgroundColor     sdl.Color // Behind the image pages
	NavigationColor     sdl.Color // Navigation bar fill
	NavigationItemColor sdl.Color // Title and counter text on the navigation bar
	TintColor           sdl.Color // Footer hints and indicators
	FontPath            string    // Path to the chrome font
}

var (
	ThemeLight = Theme{
		Name:                "light",
		BackgroundColor:     HexToColor(0xFFFFFF),
		NavigationColor:     HexToColor(0x000000),
		NavigationItemColor: HexToColor(0xFFFFFF),
		TintColor:           HexToColor(0x000000),
	}

	ThemeDark = Theme{
		Name:                "dark",
		BackgroundColor:     HexToColor(0x000000),
		NavigationColor:     HexToColor(0xFFFFFF),
		NavigationItemColor: HexToColor(0x000000),
		TintColor:           HexToColor(0xFFFFFF),
	}

	ThemeClear = Theme{
		Name:                "clear",
		BackgroundColor:     HexToColor(0x000000),
		NavigationColor:     sdl.Color{R: 0, G: 0, B: 0, A: 0},
		NavigationItemColor: HexToColor(0xFFFFFF),
		TintColor:           HexToColor(0x000000),
	}
)

var currentTheme = ThemeDark

// SetTheme sets the default theme used by viewers that do not override it.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the default theme.
func GetTheme() Theme {
	return currentTheme
}

// ThemeByName returns the built-in theme called name.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "light":
		return ThemeLight, true
	case "dark":
		return ThemeDark, true
	case "clear":
		return ThemeClear, true
	default:
		return Theme{}, false
	}
}

// HexToColor converts 0xRRGGBB into an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
