package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/catalog"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/geometry"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/router"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

var CLI struct {
	Path     string `arg:"" optional:"" default:"." type:"path" help:"Directory to browse; each subdirectory with images becomes an album"`
	Manifest string `short:"m" type:"existingfile" help:"YAML gallery manifest, used instead of scanning Path"`
	Album    int    `short:"a" help:"Album to open first (0-based)"`
	Start    int    `short:"s" help:"Image to open first within the album (0-based)"`

	Theme       string `help:"Chrome theme (light, dark, clear, cannoli); defaults to the settings file"`
	ContentMode string `help:"Image scaling (aspect_fill, aspect_fit, scale_to_fill, center); defaults to the settings file"`
	Lang        string `help:"Language for the chrome text, e.g. en or es"`
	Title       string `help:"Fixed navigation bar title instead of the counter"`

	Settings    string `default:"imageviewer.toml" help:"Settings file, created with defaults if missing"`
	LogPath     string `default:"logs/imageviewer.log" help:"Log file"`
	Font        string `type:"path" help:"TTF font for chrome text"`
	PowerDevice string `help:"evdev device for the power button"`
	EnvFile     string `default:".env" help:"Environment file loaded before start-up"`
}

const screenAlbum router.Screen = iota

// albumInput opens one album at one index. Going back through the router
// stack restores the index the user left the album at.
type albumInput struct {
	Album int
	Index int
}

func main() {
	kong.Parse(&CLI,
		kong.Name("imageviewer"),
		kong.Description("Full-screen swipeable image viewer."),
		kong.UsageOnError(),
	)

	if err := godotenv.Load(CLI.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "imageviewer: load %s: %v\n", CLI.EnvFile, err)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "imageviewer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	albums, err := loadAlbums()
	if err != nil {
		return err
	}
	if CLI.Album < 0 || CLI.Album >= len(albums) {
		return fmt.Errorf("album %d out of range, %d available", CLI.Album, len(albums))
	}

	options, err := viewerOptions(len(albums))
	if err != nil {
		return err
	}

	err = imageviewer.Init(imageviewer.Options{
		WindowTitle:     "Image Viewer",
		SettingsPath:    CLI.Settings,
		LogPath:         CLI.LogPath,
		FontPath:        CLI.Font,
		Language:        CLI.Lang,
		IsCannoli:       CLI.Theme == "cannoli",
		PowerButtonPath: CLI.PowerDevice,
	})
	if err != nil {
		return err
	}
	defer imageviewer.Close()

	logger := imageviewer.GetLogger()
	thumbnail := thumbnailAnchor(imageviewer.WindowBounds())

	r := router.New[albumInput, *imageviewer.ViewerResult]()
	r.Register(screenAlbum, func(in albumInput) (*imageviewer.ViewerResult, error) {
		album := albums[in.Album]
		logger.Info("Opening album", "album", album.Name, "images", album.Items.Count(), "index", in.Index)
		return imageviewer.ImageViewer(album.Items, thumbnail, in.Index, options...)
	})
	r.OnTransition(func(from router.Screen, in albumInput, res *imageviewer.ViewerResult, stack *router.Stack[albumInput]) (router.Screen, albumInput) {
		logger.Info("Album closed", "album", albums[in.Album].Name, "action", res.Action.String(), "index", res.Index)

		switch res.Action {
		case imageviewer.ViewerActionTriggered:
			in.Index = res.Index
			stack.Push(from, in)
			return screenAlbum, albumInput{Album: (in.Album + 1) % len(albums)}
		case imageviewer.ViewerActionDismissed:
			if entry, ok := stack.Pop(); ok {
				return entry.Screen, entry.Input
			}
		}
		return router.ScreenExit, in
	})

	return r.Run(screenAlbum, albumInput{Album: CLI.Album, Index: CLI.Start})
}

// thumbnailAnchor stands in for the grid cell a launcher would open the
// viewer from: a quarter-size rect in the middle of the window.
func thumbnailAnchor(window geometry.Rect) *imageviewer.View {
	w, h := window.W/4, window.H/4
	cx, cy := window.Center()
	return &imageviewer.View{Frame: geometry.Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}}
}

func viewerOptions(albumCount int) ([]imageviewer.ViewerOption, error) {
	var options []imageviewer.ViewerOption

	switch CLI.Theme {
	case "", "cannoli":
	default:
		theme, ok := imageviewer.ThemeByName(CLI.Theme)
		if !ok {
			return nil, fmt.Errorf("unknown theme %q", CLI.Theme)
		}
		options = append(options, imageviewer.WithTheme(theme))
	}

	if CLI.ContentMode != "" {
		mode, ok := geometry.ParseContentMode(CLI.ContentMode)
		if !ok {
			return nil, fmt.Errorf("unknown content mode %q", CLI.ContentMode)
		}
		options = append(options, imageviewer.WithContentMode(mode))
	}

	if CLI.Title != "" {
		options = append(options, imageviewer.WithNavigationTitle(CLI.Title))
	}
	if albumCount > 1 {
		// X moves on to the next album.
		options = append(options, imageviewer.WithNavigationAction(func(int) bool { return true }))
	}

	return options, nil
}

func loadAlbums() ([]catalog.Album, error) {
	if CLI.Manifest != "" {
		return catalog.LoadManifest(CLI.Manifest)
	}
	albums, err := catalog.Scan(CLI.Path)
	if errors.Is(err, catalog.ErrNoImages) {
		return nil, fmt.Errorf("no images in %s (looked for %s)", CLI.Path, strings.Join(catalog.Extensions(), ", "))
	}
	return albums, err
}
