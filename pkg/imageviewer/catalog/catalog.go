// Package catalog builds galleries from disk: either by scanning a
// directory tree for images or from a YAML manifest.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/paging"
	"gopkg.in/yaml.v3"
)

// ErrNoImages is returned when nothing viewable was found.
var ErrNoImages = errors.New("catalog: no images found")

// Album is a named gallery.
type Album struct {
	Name  string
	Items paging.SliceGallery
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".bmp":  true,
	".gif":  true,
	".svg":  true,
}

// IsImage reports whether name has an extension the viewer can decode.
func IsImage(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// Extensions lists the recognised image extensions in sorted order.
func Extensions() []string {
	exts := make([]string, 0, len(imageExtensions))
	for ext := range imageExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// thumbnailSuffix marks files used as placeholders for a sibling image,
// e.g. beach.thumb.jpg for beach.png.
const thumbnailSuffix = ".thumb"

// Scan collects the images directly inside root into one album and each
// immediate subdirectory with images into another. Hidden entries are
// skipped. Albums and items are ordered by name.
//
// A file named name.thumb.ext becomes the placeholder of the image with stem
// name. A thumbnail with no such image is listed as an image itself.
func Scan(root string) ([]Album, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("catalog: scan %s: %w", root, err)
	}

	var albums []Album
	if items := scanDir(root, entries); len(items) > 0 {
		albums = append(albums, Album{Name: filepath.Base(root), Items: items})
	}

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		sub, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("catalog: scan %s: %w", dir, err)
		}
		if items := scanDir(dir, sub); len(items) > 0 {
			albums = append(albums, Album{Name: entry.Name(), Items: items})
		}
	}

	if len(albums) == 0 {
		return nil, ErrNoImages
	}
	return albums, nil
}

func scanDir(dir string, entries []os.DirEntry) paging.SliceGallery {
	thumbs := make(map[string]string)
	stems := make(map[string]bool)
	var images []string

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !IsImage(name) {
			continue
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if base, ok := strings.CutSuffix(stem, thumbnailSuffix); ok {
			thumbs[base] = name
			continue
		}
		stems[stem] = true
		images = append(images, name)
	}

	// a thumbnail without its full image is shown on its own
	for base, thumb := range thumbs {
		if !stems[base] {
			images = append(images, thumb)
			delete(thumbs, base)
		}
	}
	sort.Strings(images)

	items := make(paging.SliceGallery, 0, len(images))
	for _, name := range images {
		item := paging.ImageItem{Locator: filepath.Join(dir, name)}
		if thumb, ok := thumbs[strings.TrimSuffix(name, filepath.Ext(name))]; ok {
			item.Placeholder = filepath.Join(dir, thumb)
		}
		items = append(items, item)
	}
	return items
}

// Manifest is the YAML gallery description.
//
//	albums:
//	  - name: Holiday
//	    items:
//	      - src: beach.jpg
//	        placeholder: beach.thumb.jpg
//	        title: Beach
//	      - src: https://example.com/sunset.png
type Manifest struct {
	Albums []ManifestAlbum `yaml:"albums"`
}

type ManifestAlbum struct {
	Name  string         `yaml:"name"`
	Items []ManifestItem `yaml:"items"`
}

type ManifestItem struct {
	Src         string `yaml:"src"`
	Placeholder string `yaml:"placeholder,omitempty"`
	Title       string `yaml:"title,omitempty"`
}

// LoadManifest reads a manifest file. Relative paths are resolved against
// the manifest's directory; URLs are kept as they are.
func LoadManifest(path string) ([]Album, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read manifest: %w", err)
	}
	return ParseManifest(data, filepath.Dir(path))
}

// ParseManifest decodes manifest bytes, resolving relative paths against base.
// Albums without items are dropped; an item without src is an error.
func ParseManifest(data []byte, base string) ([]Album, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("catalog: parse manifest: %w", err)
	}

	var albums []Album
	for i, a := range m.Albums {
		if len(a.Items) == 0 {
			continue
		}
		name := a.Name
		if name == "" {
			name = fmt.Sprintf("Album %d", i+1)
		}

		items := make(paging.SliceGallery, 0, len(a.Items))
		for j, it := range a.Items {
			if strings.TrimSpace(it.Src) == "" {
				return nil, fmt.Errorf("catalog: album %q item %d has no src", name, j)
			}
			items = append(items, paging.ImageItem{
				Locator:     resolve(base, it.Src),
				Placeholder: resolve(base, it.Placeholder),
				Title:       it.Title,
			})
		}
		albums = append(albums, Album{Name: name, Items: items})
	}

	if len(albums) == 0 {
		return nil, ErrNoImages
	}
	return albums, nil
}

func resolve(base, locator string) string {
	if locator == "" || filepath.IsAbs(locator) || strings.Contains(locator, "://") {
		return locator
	}
	return filepath.Join(base, locator)
}
