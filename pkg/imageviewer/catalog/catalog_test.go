package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/paging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestIsImage(t *testing.T) {
	for _, name := range []string{"a.png", "b.JPG", "c.jpeg", "d.webp", "e.bmp", "f.gif", "g.svg"} {
		assert.True(t, IsImage(name), name)
	}
	for _, name := range []string{"notes.txt", "png", "archive.zip", ""} {
		assert.False(t, IsImage(name), name)
	}
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.png"))
	touch(t, filepath.Join(root, "a.jpg"))
	touch(t, filepath.Join(root, "a.thumb.jpg"))
	touch(t, filepath.Join(root, "readme.md"))
	touch(t, filepath.Join(root, ".hidden.png"))
	touch(t, filepath.Join(root, "trip", "z.gif"))
	touch(t, filepath.Join(root, "empty", "notes.txt"))
	touch(t, filepath.Join(root, ".cache", "c.png"))

	albums, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, albums, 2)

	assert.Equal(t, filepath.Base(root), albums[0].Name)
	assert.Equal(t, paging.SliceGallery{
		{Locator: filepath.Join(root, "a.jpg"), Placeholder: filepath.Join(root, "a.thumb.jpg")},
		{Locator: filepath.Join(root, "b.png")},
	}, albums[0].Items)

	assert.Equal(t, "trip", albums[1].Name)
	assert.Equal(t, paging.SliceGallery{
		{Locator: filepath.Join(root, "trip", "z.gif")},
	}, albums[1].Items)
}

func TestScanOrphanThumbnail(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.png"))
	touch(t, filepath.Join(root, "lonely.thumb.jpg"))

	albums, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, paging.SliceGallery{
		{Locator: filepath.Join(root, "a.png")},
		{Locator: filepath.Join(root, "lonely.thumb.jpg")},
	}, albums[0].Items)
}

func TestScanEmpty(t *testing.T) {
	_, err := Scan(t.TempDir())
	assert.ErrorIs(t, err, ErrNoImages)
}

func TestScanMissingDir(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoImages)
}

func TestParseManifest(t *testing.T) {
	data := []byte(`
albums:
  - name: Holiday
    items:
      - src: beach.jpg
        placeholder: beach.thumb.jpg
        title: Beach
      - src: https://example.com/sunset.png
      - src: /abs/path.png
  - name: Empty
  - items:
      - src: one.svg
`)

	albums, err := ParseManifest(data, "/photos")
	require.NoError(t, err)
	require.Len(t, albums, 2)

	assert.Equal(t, "Holiday", albums[0].Name)
	assert.Equal(t, paging.SliceGallery{
		{Locator: "/photos/beach.jpg", Placeholder: "/photos/beach.thumb.jpg", Title: "Beach"},
		{Locator: "https://example.com/sunset.png"},
		{Locator: "/abs/path.png"},
	}, albums[0].Items)

	assert.Equal(t, "Album 3", albums[1].Name)
	assert.Equal(t, 1, albums[1].Items.Count())
}

func TestParseManifestErrors(t *testing.T) {
	_, err := ParseManifest([]byte("albums: [\n"), "/")
	assert.ErrorContains(t, err, "parse manifest")

	_, err = ParseManifest([]byte("albums:\n  - name: A\n    items:\n      - title: no source\n"), "/")
	assert.ErrorContains(t, err, `album "A" item 0 has no src`)

	_, err = ParseManifest([]byte("albums: []\n"), "/")
	assert.ErrorIs(t, err, ErrNoImages)
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("albums:\n  - name: A\n    items:\n      - src: a.png\n"), 0644))

	albums, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, filepath.Join(dir, "a.png"), albums[0].Items[0].Locator)
}

func TestExtensions(t *testing.T) {
	exts := Extensions()
	assert.Len(t, exts, 7)
	assert.IsIncreasing(t, exts)
	assert.Contains(t, exts, ".svg")
}
