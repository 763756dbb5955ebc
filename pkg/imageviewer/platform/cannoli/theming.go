// Package cannoli provides the viewer theme for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/internal"
)

// FontPath is where Cannoli installs its UI font.
const FontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates a viewer theme with Cannoli's teal navigation bar
// and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		Name:                "cannoli",
		BackgroundColor:     internal.HexToColor(0x000000),
		NavigationColor:     internal.HexToColor(0x008080),
		NavigationItemColor: internal.HexToColor(0xFFFFFF),
		TintColor:           internal.HexToColor(0xFFFFFF),
		FontPath:            fontPath,
	}
}
