package paging

// Controller owns the current page of a viewer session and hands out its
// neighbours on demand. It is not safe for concurrent use; the host serialises
// calls from its render loop.
type Controller struct {
	gallery      Gallery
	initialIndex int
	currentIndex int
}

// NewController creates a controller positioned on initialIndex.
//
// A nil or empty gallery yields a valid controller without a current page.
// For a non-empty gallery, an initialIndex outside [0, Count()) returns an
// *IndexError wrapping ErrInvalidIndex.
func NewController(gallery Gallery, initialIndex int) (*Controller, error) {
	c := &Controller{
		gallery:      gallery,
		initialIndex: initialIndex,
		currentIndex: initialIndex,
	}

	count := c.Count()
	if count == 0 {
		c.initialIndex = -1
		c.currentIndex = -1
		return c, nil
	}

	if initialIndex < 0 || initialIndex >= count {
		return nil, &IndexError{Index: initialIndex, Count: count}
	}

	return c, nil
}

// Count returns the number of images in the gallery.
func (c *Controller) Count() int {
	if c.gallery == nil {
		return 0
	}
	return c.gallery.Count()
}

// Empty reports whether the controller has no current page.
func (c *Controller) Empty() bool {
	return c.currentIndex < 0
}

// CurrentIndex returns the index of the current page, or -1 when empty.
func (c *Controller) CurrentIndex() int {
	return c.currentIndex
}

// InitialIndex returns the index the session was opened on, or -1 when empty.
func (c *Controller) InitialIndex() int {
	return c.initialIndex
}

// Current returns the current page.
func (c *Controller) Current() (Page, bool) {
	if c.Empty() {
		return Page{}, false
	}
	return c.page(c.currentIndex), true
}

// PageBefore returns the page preceding index.
// It reports false at the first image and for an empty gallery.
func (c *Controller) PageBefore(index int) (Page, bool) {
	if c.Empty() || index <= 0 || index > c.Count() {
		return Page{}, false
	}
	return c.page(index - 1), true
}

// PageAfter returns the page following index.
// It reports false at the last image and for an empty gallery.
func (c *Controller) PageAfter(index int) (Page, bool) {
	if c.Empty() || index < -1 || index > c.Count()-2 {
		return Page{}, false
	}
	return c.page(index + 1), true
}

// Commit makes page the current page. It is the only call that moves
// CurrentIndex and must follow a completed navigation gesture.
func (c *Controller) Commit(page Page) error {
	if c.Empty() {
		return ErrEmptyGallery
	}

	count := c.Count()
	if page.Index < 0 || page.Index >= count {
		return &IndexError{Index: page.Index, Count: count}
	}

	c.currentIndex = page.Index
	return nil
}

func (c *Controller) page(index int) Page {
	return Page{Index: index, Item: c.gallery.Item(index)}
}
