package internal

import (
	"bytes"
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// Largest edge an SVG is rasterised to when it declares no usable size.
const defaultSVGSize = 1024

// rasterizeSVG renders an SVG document at its view box size (capped to the
// window) and uploads it as a texture.
func rasterizeSVG(renderer *sdl.Renderer, data []byte) (*Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	w, h := svgSize(icon.ViewBox.W, icon.ViewBox.H)
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(w), int32(h), 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("wrap svg pixels: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("upload svg: %w", err)
	}
	return &Image{Texture: texture, W: int32(w), H: int32(h)}, nil
}

func svgSize(vbW, vbH float64) (int, int) {
	if vbW <= 0 || vbH <= 0 {
		return defaultSVGSize, defaultSVGSize
	}

	limit := float64(defaultSVGSize)
	if window != nil {
		if ww := float64(window.GetWidth()); ww > limit {
			limit = ww
		}
	}

	scale := 1.0
	if vbW > limit || vbH > limit {
		scale = limit / max(vbW, vbH)
	}
	return max(1, int(vbW*scale)), max(1, int(vbH*scale))
}
