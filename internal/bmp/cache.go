package bmp

import (
	"sync"

	"github.com/ironsheep/bmp-rotate/internal/imaging"
)

// ImageCache keeps decoded images keyed by file path so repeated tool calls
// on the same file skip disk I/O and decoding.
//
// ImageCache is safe for concurrent use. Cached images are shared between
// callers and must be treated as read-only; callers that need to mutate one
// should work on imaging.Clone of it. Evict and Clear only drop the cache's
// reference; images already handed out stay valid.
//
// # Example Usage
//
//	cache := bmp.NewImageCache()
//	img, err := cache.Load("/path/to/image.bmp")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cache.Evict("/path/to/image.bmp")
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*imaging.Image
}

// NewImageCache creates an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*imaging.Image),
	}
}

// Load returns the cached image for path, decoding it from disk on first use.
//
// The image is cached under the exact path string given; different spellings
// of the same file are separate entries.
func (c *ImageCache) Load(path string) (*imaging.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have decoded the same path meanwhile.
	if existing, ok := c.images[path]; ok {
		img.Release()
		return existing, nil
	}
	c.images[path] = img
	return img, nil
}

// Clear drops every cached image.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*imaging.Image)
	c.mu.Unlock()
}

// Evict drops the image cached under path, if any.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}
