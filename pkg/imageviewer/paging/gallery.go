package paging

// ImageItem identifies one image of a gallery. The paging core never looks
// inside it; the renderer decides what Locator and Placeholder mean.
type ImageItem struct {
	Locator     string // File path or URL of the full image
	Placeholder string // Optional low resolution image shown while Locator loads
	Title       string // Optional caption for the navigation bar
}

// Gallery is an ordered, indexable set of images.
// Count and Item must be deterministic for the lifetime of one viewer session,
// and Item only has to be defined for 0 <= index < Count().
type Gallery interface {
	Count() int
	Item(index int) ImageItem
}

// SliceGallery is a Gallery backed by an in-memory slice.
type SliceGallery []ImageItem

func (g SliceGallery) Count() int {
	return len(g)
}

func (g SliceGallery) Item(index int) ImageItem {
	return g[index]
}

// Page is one materialised (index, image) pair. Pages are values; a page
// that is never committed is simply dropped.
type Page struct {
	Index int
	Item  ImageItem
}
