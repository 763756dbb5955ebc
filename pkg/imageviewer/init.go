// Package imageviewer is a full-screen, swipeable image viewer for SDL
// handhelds. ImageViewer presents a Gallery starting at one image, zooms in
// from the thumbnail that launched it and, if the user is still on that
// image, zooms back into it on close.
//
// Paging and anchor logic live in the paging subpackage; this package is the
// SDL host around it: input, rendering, image loading and animation.
package imageviewer

import (
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/constants"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/geometry"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/internal"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/internal/settings"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/platform/cannoli"
)

// Options configures Init.
type Options struct {
	WindowTitle      string                 // Window title displayed in windowed mode
	WindowOptions    WindowOptions          // SDL window flags
	SettingsPath     string                 // TOML settings file, created with defaults if missing
	LogPath          string                 // Full path for the log file including filename
	FontPath         string                 // TTF font for chrome text; overrides the theme font
	Language         string                 // Overrides the settings language (e.g. "es")
	IsCannoli        bool                   // Use the Cannoli theme and font
	PowerButtonPath  string                 // evdev device carrying the power key; empty disables it
	FlipFaceButtons  bool                   // Use direct face button mapping (A=A, B=B)
	InputMappingJSON []byte                 // Custom controller/keyboard bindings
}

var (
	initialized     bool
	defaultSettings = settings.Default()
)

// Init initializes SDL, the window, fonts, input and theming.
// Must be called before ImageViewer.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	s, err := settings.Load(options.SettingsPath)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to load settings; using defaults", "path", options.SettingsPath, "error", err)
	}
	if options.Language != "" {
		s.Language = options.Language
	}
	defaultSettings = s

	level := s.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	internal.SetInternalLogLevel(internal.ParseLogLevel(level))

	if options.IsCannoli {
		internal.SetTheme(cannoli.InitCannoliTheme(cannoli.FontPath))
	} else if theme, ok := themeFromSettings(s.Theme); ok {
		internal.SetTheme(theme)
	}

	internal.SetFlipFaceButtons(options.FlipFaceButtons)
	if len(options.InputMappingJSON) > 0 {
		internal.SetInputMappingBytes(options.InputMappingJSON)
	}

	err = internal.Init(internal.InitConfig{
		Title:         options.WindowTitle,
		WindowOptions: options.WindowOptions,
		FontPath:      options.FontPath,
		PowerButton: internal.PowerButtonConfig{
			DevicePath:    options.PowerButtonPath,
			ShortPressMax: 2 * time.Second,
		},
	})
	if err != nil {
		return NewInfrastructureError("init", err)
	}

	initialized = true
	return nil
}

func themeFromSettings(name string) (Theme, bool) {
	if name == "cannoli" {
		return cannoli.InitCannoliTheme(cannoli.FontPath), true
	}
	return internal.ThemeByName(name)
}

// Close releases all SDL resources. Must be called before program exit.
func Close() {
	if !initialized {
		return
	}
	internal.SDLCleanup()
	initialized = false
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetTheme changes the default theme for viewers opened without WithTheme.
func SetTheme(theme Theme) {
	internal.SetTheme(theme)
}

// WindowBounds returns the window rectangle, or an empty Rect before Init.
func WindowBounds() geometry.Rect {
	if !initialized {
		return geometry.Rect{}
	}
	return internal.GetWindow().Bounds()
}

// DefaultContentMode returns the content mode from the settings file.
func DefaultContentMode() geometry.ContentMode {
	mode, _ := geometry.ParseContentMode(defaultSettings.ContentMode)
	return mode
}
