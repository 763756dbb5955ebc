// Package settings loads the viewer settings file.
// Settings are read once at start-up and treated as an immutable snapshot.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Settings is the decoded settings file.
type Settings struct {
	Theme              string   `toml:"theme"`
	ContentMode        string   `toml:"content_mode"`
	Language           string   `toml:"language"`
	LogLevel           string   `toml:"log_level"`
	SwipeThreshold     float64  `toml:"swipe_threshold"`
	TransitionDuration Duration `toml:"transition_duration"`
	RepeatDelay        Duration `toml:"repeat_delay"`
	RepeatInterval     Duration `toml:"repeat_interval"`
	CacheSize          int      `toml:"cache_size"`
	ShowCounter        bool     `toml:"show_counter"`
}

// Duration decodes TOML strings such as "250ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Cache size bounds. The viewer keeps the current page and both neighbours
// live, each with up to two images (placeholder and full image).
const (
	MinCacheSize = 6
	MaxCacheSize = 64
)

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		Theme:              "dark",
		ContentMode:        "aspect_fill",
		Language:           "en",
		LogLevel:           "error",
		SwipeThreshold:     0.5,
		TransitionDuration: Duration{250 * time.Millisecond},
		RepeatDelay:        Duration{300 * time.Millisecond},
		RepeatInterval:     Duration{150 * time.Millisecond},
		CacheSize:          8,
		ShowCounter:        true,
	}
}

const defaultSettingsTOML = `# imageviewer settings
theme = "dark"                  # light, dark, clear
content_mode = "aspect_fill"    # aspect_fill, aspect_fit, scale_to_fill, center
language = "en"
log_level = "error"
swipe_threshold = 0.5
transition_duration = "250ms"
repeat_delay = "300ms"
repeat_interval = "150ms"
cache_size = 8
show_counter = true
`

// Load reads the settings at path. A missing file is created with the
// defaults. Decoding failures return the defaults together with the error.
func Load(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
			return Default(), fmt.Errorf("create settings dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultSettingsTOML), 0644); wErr != nil {
			return Default(), fmt.Errorf("write default settings: %w", wErr)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read settings: %w", err)
	}

	return Parse(data)
}

// Parse decodes TOML bytes on top of the defaults and normalises the result.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if _, err := toml.Decode(string(data), &s); err != nil {
		return Default(), fmt.Errorf("parse settings: %w", err)
	}
	return Normalize(s), nil
}

// ClampCacheSize raises size to MinCacheSize and caps it at MaxCacheSize.
// Zero or negative sizes select the default.
func ClampCacheSize(size int) int {
	switch {
	case size <= 0:
		return Default().CacheSize
	case size < MinCacheSize:
		return MinCacheSize
	case size > MaxCacheSize:
		return MaxCacheSize
	default:
		return size
	}
}

// Normalize replaces unknown or out of range values with their defaults.
func Normalize(s Settings) Settings {
	out := Default()

	switch theme := strings.ToLower(strings.TrimSpace(s.Theme)); theme {
	case "light", "dark", "clear", "cannoli":
		out.Theme = theme
	}

	switch mode := strings.ToLower(strings.TrimSpace(s.ContentMode)); mode {
	case "aspect_fill", "aspect_fit", "scale_to_fill", "center":
		out.ContentMode = mode
	}

	if lang := strings.TrimSpace(s.Language); lang != "" {
		out.Language = lang
	}

	switch level := strings.ToLower(strings.TrimSpace(s.LogLevel)); level {
	case "debug", "info", "warn", "warning", "error":
		out.LogLevel = level
	}

	if s.SwipeThreshold > 0 && s.SwipeThreshold < 1 {
		out.SwipeThreshold = s.SwipeThreshold
	}

	if d := s.TransitionDuration.Duration; d >= 0 && d <= 2*time.Second {
		out.TransitionDuration = s.TransitionDuration
	}
	if d := s.RepeatDelay.Duration; d > 0 && d <= 2*time.Second {
		out.RepeatDelay = s.RepeatDelay
	}
	if d := s.RepeatInterval.Duration; d > 0 && d <= time.Second {
		out.RepeatInterval = s.RepeatInterval
	}

	out.CacheSize = ClampCacheSize(s.CacheSize)

	out.ShowCounter = s.ShowCounter

	return out
}
