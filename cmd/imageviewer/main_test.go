package main

import (
	"testing"

	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThumbnailAnchor(t *testing.T) {
	view := thumbnailAnchor(geometry.Rect{W: 640, H: 480})
	require.NotNil(t, view)
	assert.Equal(t, geometry.Rect{X: 240, Y: 180, W: 160, H: 120}, view.Frame)
	assert.Nil(t, view.Texture)
}
