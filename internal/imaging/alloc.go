package imaging

import "fmt"

// Allocator provides pixel storage for images. Alloc must return a zeroed
// slice of exactly n pixels or an error; Free is called once per successful
// Alloc when the owning image is released.
type Allocator interface {
	Alloc(n int) ([]Pixel, error)
	Free(p []Pixel)
}

// HeapAllocator allocates pixel storage from the Go heap. Limit caps the
// number of pixels a single request may ask for; zero means no cap beyond
// what the address space allows.
type HeapAllocator struct {
	Limit int
}

// maxHeapPixels keeps make below the runtime's 48-bit allocation ceiling,
// past which it panics instead of failing.
const maxHeapPixels = min(maxPixels, (1<<47)/PixelSize)

// DefaultPixelLimit caps DefaultAllocator requests at 256 Mi pixels
// (768 MiB of storage).
const DefaultPixelLimit = 1 << 28

// DefaultAllocator is used when no allocator is given.
var DefaultAllocator Allocator = HeapAllocator{Limit: DefaultPixelLimit}

// Alloc returns n zeroed pixels.
func (h HeapAllocator) Alloc(n int) ([]Pixel, error) {
	if n <= 0 {
		return nil, fmt.Errorf("cannot allocate %d pixels", n)
	}
	if h.Limit > 0 && n > h.Limit {
		return nil, fmt.Errorf("%d pixels exceeds limit of %d", n, h.Limit)
	}
	if n > maxHeapPixels {
		return nil, fmt.Errorf("%d pixels exceeds addressable size", n)
	}
	return make([]Pixel, n), nil
}

// Free is a no-op; the garbage collector reclaims heap storage once the
// image drops its reference.
func (HeapAllocator) Free([]Pixel) {}
