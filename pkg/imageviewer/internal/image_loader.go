package internal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

const maxImageBytes = 64 << 20

// LoadedImage is delivered by ImageLoader.Poll once a locator is ready.
type LoadedImage struct {
	Locator string
	Image   *Image
	Err     error
}

type fetchResult struct {
	locator string
	data    []byte
	err     error
}

// ImageLoader fetches image bytes on background goroutines and turns them
// into textures on the render thread. Fetches are never awaited; the viewer
// polls once per frame.
type ImageLoader struct {
	client   *http.Client
	ctx      context.Context
	cancel   context.CancelFunc
	results  chan fetchResult
	slots    chan struct{}
	inflight map[string]struct{}
	fetching *atomic.Int64
	closed   *atomic.Bool
}

// NewImageLoader creates a loader running at most workers fetches at once.
func NewImageLoader(workers int) *ImageLoader {
	if workers <= 0 {
		workers = 2
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &ImageLoader{
		client:   &http.Client{Timeout: 20 * time.Second},
		ctx:      ctx,
		cancel:   cancel,
		results:  make(chan fetchResult, 32),
		slots:    make(chan struct{}, workers),
		inflight: make(map[string]struct{}),
		fetching: atomic.NewInt64(0),
		closed:   atomic.NewBool(false),
	}
}

// Request starts fetching locator unless it is already in flight.
func (l *ImageLoader) Request(locator string) {
	if locator == "" || l.closed.Load() {
		return
	}
	if _, ok := l.inflight[locator]; ok {
		return
	}
	l.inflight[locator] = struct{}{}
	l.fetching.Inc()

	go func() {
		defer l.fetching.Dec()

		select {
		case l.slots <- struct{}{}:
		case <-l.ctx.Done():
			return
		}
		data, err := l.fetch(locator)
		<-l.slots

		select {
		case l.results <- fetchResult{locator: locator, data: data, err: err}:
		case <-l.ctx.Done():
		}
	}()
}

// InFlight reports whether locator has been requested but not yet delivered.
func (l *ImageLoader) InFlight(locator string) bool {
	_, ok := l.inflight[locator]
	return ok
}

// Pending returns the number of requests not yet delivered by Poll.
// Must be called from the render thread.
func (l *ImageLoader) Pending() int {
	return len(l.inflight)
}

// Poll decodes every finished fetch into a texture without blocking.
// Must be called from the render thread.
func (l *ImageLoader) Poll(renderer *sdl.Renderer) []LoadedImage {
	var loaded []LoadedImage
	for {
		select {
		case res := <-l.results:
			delete(l.inflight, res.locator)
			if res.err != nil {
				loaded = append(loaded, LoadedImage{Locator: res.locator, Err: res.err})
				continue
			}
			image, err := decodeImage(renderer, res.locator, res.data)
			loaded = append(loaded, LoadedImage{Locator: res.locator, Image: image, Err: err})
		default:
			return loaded
		}
	}
}

// Close stops outstanding fetches. Results not yet polled are dropped.
func (l *ImageLoader) Close() {
	if l.closed.Swap(true) {
		return
	}
	if n := l.fetching.Load(); n > 0 {
		GetInternalLogger().Debug("Cancelling image fetches", "count", n)
	}
	l.cancel()
}

func (l *ImageLoader) fetch(locator string) ([]byte, error) {
	if isRemote(locator) {
		req, err := http.NewRequestWithContext(l.ctx, http.MethodGet, locator, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		resp, err := l.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", locator, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: unexpected status %s", locator, resp.Status)
		}
		return io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	}

	data, err := os.ReadFile(locator)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", locator, err)
	}
	return data, nil
}

func isRemote(locator string) bool {
	return strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://")
}

func isSVG(locator string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(strings.SplitN(locator, "?", 2)[0]), ".svg") {
		return true
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(head, []byte("<svg"))
}

func decodeImage(renderer *sdl.Renderer, locator string, data []byte) (*Image, error) {
	if isSVG(locator, data) {
		return rasterizeSVG(renderer, data)
	}

	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return nil, fmt.Errorf("wrap image bytes: %w", err)
	}
	surface, err := img.LoadRW(rw, true)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", locator, err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", locator, err)
	}
	return &Image{Texture: texture, W: surface.W, H: surface.H}, nil
}
