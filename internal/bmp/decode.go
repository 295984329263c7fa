package bmp

import (
	"errors"
	"fmt"
	"io"

	"github.com/ironsheep/bmp-rotate/internal/imaging"
)

// Decoder reads 24-bit uncompressed BMP streams.
type Decoder struct {
	// Allocator provides pixel storage; nil means imaging.DefaultAllocator.
	Allocator imaging.Allocator
}

// Decode reads a BMP image from r using the default allocator.
func Decode(r io.ReadSeeker) (*imaging.Image, error) {
	var d Decoder
	return d.Decode(r)
}

// Decode reads a BMP image from r, which must be positioned at the start of
// the file.
//
// Rows are stored bottom-up unless the header height is negative, in which
// case the first stored row is the top of the image. Row padding is skipped
// without inspection.
//
// On error the partially decoded image has already been released.
//
// # Errors
//
//   - ErrInvalidSignature, ErrUnsupportedBitDepth, ErrInvalidHeader from
//     header validation (see ReadHeader)
//   - ErrMemory if the image cannot be allocated
//   - ErrIO on short reads, a failed seek, or a stream too short for the
//     pixel array the header declares
func (d *Decoder) Decode(r io.ReadSeeker) (_ *imaging.Image, err error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrIO)
	}

	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	width, height := h.Dimensions()

	// The header alone decides the allocation size, so check the stream
	// really holds that many pixel bytes before allocating.
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: measuring stream: %w", ErrIO, err)
	}
	if need := uint64(h.OffBits) + RowStride(width)*height; need > uint64(size) {
		return nil, fmt.Errorf("%w: pixel array needs %d bytes, stream has %d", ErrIO, need, size)
	}

	img, err := imaging.Create(d.Allocator, width, height)
	switch {
	case errors.Is(err, imaging.ErrInvalidDimensions):
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrMemory, err)
	}
	defer func() {
		if err != nil {
			img.Release()
		}
	}()

	if _, err = r.Seek(int64(h.OffBits), io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: seeking to pixel data at %d: %w", ErrIO, h.OffBits, err)
	}

	dataLen, padding := rowLayout(width)
	buf := make([]byte, dataLen+padding)
	for i := uint64(0); i < height; i++ {
		if _, err = io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("%w: reading row %d of %d: %w", ErrIO, i, height, err)
		}

		y := height - 1 - i
		if h.TopDown() {
			y = i
		}
		row, _ := img.Row(y)
		unpackRow(row, buf[:dataLen])
	}

	return img, nil
}

// unpackRow copies BGR triples from src into dst. len(src) must be
// 3*len(dst).
func unpackRow(dst []imaging.Pixel, src []byte) {
	for x := range dst {
		b := src[x*imaging.PixelSize : x*imaging.PixelSize+imaging.PixelSize]
		dst[x] = imaging.Pixel{B: b[0], G: b[1], R: b[2]}
	}
}
