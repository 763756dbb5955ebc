package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 5

// Image is a decoded image uploaded to the GPU.
type Image struct {
	Texture *sdl.Texture
	W, H    int32
}

func (i *Image) destroy() {
	if i != nil && i.Texture != nil {
		i.Texture.Destroy()
		i.Texture = nil
	}
}

// TextureCache keeps the most recently used images keyed by locator and
// destroys the least recently used one when full. A window of a few pages
// around the current one is enough for paging.
type TextureCache struct {
	images  map[string]*Image
	order   []string // least recently used first
	maxSize int
}

func NewTextureCache(maxSize int) *TextureCache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &TextureCache{
		images:  make(map[string]*Image),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func (c *TextureCache) Get(key string) *Image {
	if image, ok := c.images[key]; ok {
		c.touch(key)
		return image
	}
	return nil
}

func (c *TextureCache) Has(key string) bool {
	_, ok := c.images[key]
	return ok
}

func (c *TextureCache) Set(key string, image *Image) {
	if old, ok := c.images[key]; ok {
		if old != image {
			old.destroy()
		}
		c.images[key] = image
		c.touch(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.images[key] = image
	c.order = append(c.order, key)
}

func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if image, ok := c.images[oldest]; ok {
		image.destroy()
		delete(c.images, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, image := range c.images {
		image.destroy()
	}
	c.images = make(map[string]*Image)
	c.order = c.order[:0]
}
