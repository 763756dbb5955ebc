package imageviewer

import (
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/geometry"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/internal"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/internal/settings"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/paging"
	"github.com/veandco/go-sdl2/sdl"
)

// View is an on-screen rectangle that can anchor the open and close
// transitions, typically the thumbnail the viewer was launched from.
//
// The viewer only holds a weak reference to the View passed to ImageViewer.
// Keep it alive for as long as it should be animated back to; once it is
// collected the close transition falls back to a fade.
type View struct {
	Frame   geometry.Rect
	Texture *sdl.Texture // Optional; drawn at the start of the open transition
}

// pageView is a page handed to the renderer. Its content view exists only
// once an image (full or placeholder) has been uploaded.
type pageView struct {
	page        paging.Page
	content     *View
	placeholder bool
	failed      bool
}

func (p *pageView) Page() paging.Page {
	return p.page
}

func (p *pageView) ContentView() *View {
	return p.content
}

// pageRenderer materialises pages as textures. It owns the image loader and
// the texture cache; only pages near the current one are kept alive.
type pageRenderer struct {
	loader *internal.ImageLoader
	cache  *internal.TextureCache
	mode   geometry.ContentMode
	bounds geometry.Rect
	pages  map[int]*pageView
	failed map[string]error
}

func newPageRenderer(bounds geometry.Rect, mode geometry.ContentMode, cacheSize int) *pageRenderer {
	return &pageRenderer{
		loader: internal.NewImageLoader(2),
		cache:  internal.NewTextureCache(settings.ClampCacheSize(cacheSize)),
		mode:   mode,
		bounds: bounds,
		pages:  make(map[int]*pageView),
		failed: make(map[string]error),
	}
}

// Render returns the page view for page, creating it and requesting its
// images on first use.
func (r *pageRenderer) Render(page paging.Page) paging.RenderedPage[View] {
	return r.view(page)
}

func (r *pageRenderer) view(page paging.Page) *pageView {
	if pv, ok := r.pages[page.Index]; ok {
		return pv
	}

	pv := &pageView{page: page}
	r.pages[page.Index] = pv

	for _, locator := range []string{page.Item.Placeholder, page.Item.Locator} {
		if locator != "" && !r.cache.Has(locator) {
			if _, failed := r.failed[locator]; !failed {
				r.loader.Request(locator)
			}
		}
	}
	r.attach(pv)
	return pv
}

// attach points the page's content view at the best available image.
func (r *pageRenderer) attach(pv *pageView) {
	item := pv.page.Item

	if image := r.cache.Get(item.Locator); image != nil {
		pv.content = r.contentView(pv.content, image)
		pv.placeholder = false
		pv.failed = false
		return
	}

	_, failed := r.failed[item.Locator]
	pv.failed = failed || item.Locator == ""
	if !pv.failed && !r.loader.InFlight(item.Locator) {
		// evicted while the page was still live
		r.loader.Request(item.Locator)
	}

	if item.Placeholder != "" {
		if image := r.cache.Get(item.Placeholder); image != nil {
			pv.content = r.contentView(pv.content, image)
			pv.placeholder = true
			return
		}
	}

	pv.content = nil
}

// contentView reuses the page's View so anchors handed out earlier stay valid.
func (r *pageRenderer) contentView(existing *View, image *internal.Image) *View {
	frame := geometry.Fit(image.W, image.H, r.bounds, r.mode)
	if existing == nil {
		return &View{Frame: frame, Texture: image.Texture}
	}
	existing.Frame = frame
	existing.Texture = image.Texture
	return existing
}

// poll uploads finished downloads and re-attaches every live page.
func (r *pageRenderer) poll(renderer *sdl.Renderer) {
	for _, loaded := range r.loader.Poll(renderer) {
		if loaded.Err != nil {
			r.failed[loaded.Locator] = loaded.Err
			internal.GetInternalLogger().Warn("Failed to load image", "locator", loaded.Locator, "error", loaded.Err)
			continue
		}
		r.cache.Set(loaded.Locator, loaded.Image)
	}

	for _, pv := range r.pages {
		r.attach(pv)
	}
}

// keep drops page views whose index is not listed. Their textures stay in
// the cache until evicted.
func (r *pageRenderer) keep(indices ...int) {
	live := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		live[idx] = struct{}{}
	}
	for idx := range r.pages {
		if _, ok := live[idx]; !ok {
			delete(r.pages, idx)
		}
	}
}

func (r *pageRenderer) pending() bool {
	return r.loader.Pending() > 0
}

func (r *pageRenderer) destroy() {
	r.loader.Close()
	r.cache.Destroy()
	r.pages = nil
}
