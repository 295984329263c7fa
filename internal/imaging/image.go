package imaging

import (
	"errors"
	"fmt"
	"math"
)

// PixelSize is the in-memory and on-disk size of a Pixel in bytes. The BMP
// row padding arithmetic depends on it.
const PixelSize = 3

var (
	// ErrInvalidDimensions is returned by Create when a dimension is zero or
	// width*height does not fit the address space.
	ErrInvalidDimensions = errors.New("invalid image dimensions")

	// ErrAllocation is returned when the Allocator cannot provide storage.
	ErrAllocation = errors.New("image allocation failed")
)

// Pixel is a 24-bit colour stored in BMP channel order.
type Pixel struct {
	B, G, R uint8
}

// Image is a row-major grid of pixels. The pixel at (x, y) lives at index
// y*width+x of the backing storage.
type Image struct {
	width  uint64
	height uint64
	data   []Pixel
	alloc  Allocator
}

// maxPixels is the largest pixel count whose byte size still fits in an int.
const maxPixels = math.MaxInt / PixelSize

// Create allocates a zeroed width x height image from a. A nil allocator
// means DefaultAllocator.
//
// # Errors
//
//   - ErrInvalidDimensions if width or height is zero, or width*height overflows
//   - ErrAllocation (wrapped) if the allocator refuses the request
func Create(a Allocator, width, height uint64) (*Image, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxUint64/height {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	n := width * height
	if n > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}

	if a == nil {
		a = DefaultAllocator
	}
	data, err := a.Alloc(int(n))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
	}
	if uint64(len(data)) != n {
		a.Free(data)
		return nil, fmt.Errorf("%w: allocator returned %d pixels, want %d", ErrAllocation, len(data), n)
	}

	return &Image{width: width, height: height, data: data, alloc: a}, nil
}

// New allocates a zeroed image from DefaultAllocator. It returns the empty
// sentinel instead of an error when Create would fail.
func New(width, height uint64) *Image {
	img, err := Create(nil, width, height)
	if err != nil {
		return &Image{}
	}
	return img
}

// Width returns the image width in pixels.
func (img *Image) Width() uint64 {
	if img == nil {
		return 0
	}
	return img.width
}

// Height returns the image height in pixels.
func (img *Image) Height() uint64 {
	if img == nil {
		return 0
	}
	return img.height
}

// IsEmpty reports whether img is nil or the empty sentinel.
func (img *Image) IsEmpty() bool {
	return img == nil || img.data == nil || img.width == 0 || img.height == 0
}

// Release hands the backing storage back to its allocator and turns img into
// the empty sentinel. Releasing an empty image is a no-op, so the storage is
// freed exactly once.
func (img *Image) Release() {
	if img == nil || img.data == nil {
		return
	}
	if img.alloc != nil {
		img.alloc.Free(img.data)
	}
	img.data = nil
	img.width = 0
	img.height = 0
	img.alloc = nil
}

// PixelAt returns a pointer to the pixel at (x, y). The boolean is false when
// the coordinates fall outside the image or the image is empty.
func (img *Image) PixelAt(x, y uint64) (*Pixel, bool) {
	if img.IsEmpty() || x >= img.width || y >= img.height {
		return nil, false
	}
	return &img.data[y*img.width+x], true
}

// Row returns row y as a slice of exactly Width pixels, or false when y is
// out of range or the image is empty. It is the bulk counterpart of PixelAt:
// writes through the slice modify the image, but its capacity equals its
// length, so appending copies instead of spilling into the next row.
func (img *Image) Row(y uint64) ([]Pixel, bool) {
	if img.IsEmpty() || y >= img.height {
		return nil, false
	}
	start := y * img.width
	end := start + img.width
	return img.data[start:end:end], true
}

// Clone returns a deep copy of img allocated from the same allocator.
// Cloning an empty image yields the empty sentinel.
func Clone(img *Image) *Image {
	if img.IsEmpty() {
		return &Image{}
	}
	dst, err := Create(img.alloc, img.width, img.height)
	if err != nil {
		return &Image{}
	}
	copy(dst.data, img.data)
	return dst
}

// Equal reports whether a and b have the same dimensions and pixels. Two
// empty images are equal.
func Equal(a, b *Image) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() && b.IsEmpty()
	}
	if a.width != b.width || a.height != b.height {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}
