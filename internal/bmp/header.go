package bmp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ironsheep/bmp-rotate/internal/imaging"
)

// Binary contract of the supported BMP variant.
const (
	Signature      = 0x4D42 // "BM" read as a little-endian uint16
	BitsPerPixel   = 24
	RowAlignment   = 4 // pixel rows are padded to a multiple of this many bytes
	FileHeaderSize = 14
	InfoHeaderSize = 40
	HeaderSize     = FileHeaderSize + InfoHeaderSize

	compressionNone = 0
	planes          = 1
)

// Header is the packed 54-byte BITMAPFILEHEADER + BITMAPINFOHEADER pair.
// encoding/binary reads and writes it without inter-field padding.
//
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapinfoheader
type Header struct {
	Type            uint16 // Must be Signature.
	FileSize        uint32 // Size of the whole file in bytes.
	Reserved        uint32
	OffBits         uint32 // Offset from the start of the file to the pixel array.
	InfoSize        uint32 // Size of the info header; 40 for BITMAPINFOHEADER.
	Width           int32
	Height          int32 // Negative for top-down row order.
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32 // Size of the pixel array including row padding.
	XPelsPerMeter   int32
	YPelsPerMeter   int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// TopDown reports whether the file stores its first row at the top of the
// image, signalled by a negative height.
func (h *Header) TopDown() bool {
	return h.Height < 0
}

// Dimensions returns the width and the absolute height.
func (h *Header) Dimensions() (width, height uint64) {
	height = uint64(h.Height)
	if h.Height < 0 {
		height = uint64(-int64(h.Height))
	}
	return uint64(h.Width), height
}

// rowLayout returns the number of pixel bytes in a row and the padding that
// follows them on disk.
func rowLayout(width uint64) (data, padding uint64) {
	data = width * imaging.PixelSize
	padding = (RowAlignment - data%RowAlignment) % RowAlignment
	return data, padding
}

// RowStride is the on-disk size of a pixel row of the given width, padding
// included.
func RowStride(width uint64) uint64 {
	data, padding := rowLayout(width)
	return data + padding
}

// ReadHeader reads the 54-byte header from r and validates it.
//
// # Errors
//
//   - ErrIO on a short read
//   - ErrInvalidSignature if the first two bytes are not "BM"
//   - ErrUnsupportedBitDepth if the pixel format is not 24 bits
//   - ErrInvalidHeader for compression, zero or negative width, zero height,
//     an info header smaller than 40 bytes, or a pixel offset that overlaps
//     the headers
func ReadHeader(r io.Reader) (*Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", ErrIO, err)
	}

	var h Header
	if err := binary.Read(bytes.NewReader(buf[:]), binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: parsing header: %w", ErrIO, err)
	}

	if err := h.validate(); err != nil {
		return nil, err
	}
	return &h, nil
}

func (h *Header) validate() error {
	if h.Type != Signature {
		return fmt.Errorf("%w: got %#04x", ErrInvalidSignature, h.Type)
	}
	if h.BitCount != BitsPerPixel {
		return fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedBitDepth, h.BitCount)
	}
	if h.Compression != compressionNone {
		return fmt.Errorf("%w: compression %d not supported", ErrInvalidHeader, h.Compression)
	}
	if h.InfoSize < InfoHeaderSize {
		return fmt.Errorf("%w: info header size %d", ErrInvalidHeader, h.InfoSize)
	}
	if uint64(h.OffBits) < FileHeaderSize+uint64(h.InfoSize) {
		return fmt.Errorf("%w: pixel offset %d overlaps %d-byte info header", ErrInvalidHeader, h.OffBits, h.InfoSize)
	}
	if h.Width <= 0 {
		return fmt.Errorf("%w: width %d", ErrInvalidHeader, h.Width)
	}
	if h.Height == 0 {
		return fmt.Errorf("%w: height 0", ErrInvalidHeader)
	}

	width, height := h.Dimensions()
	if height > math.MaxUint64/width {
		return fmt.Errorf("%w: %dx%d overflows pixel count", ErrInvalidHeader, width, height)
	}
	if stride := RowStride(width); height > math.MaxInt64/stride {
		return fmt.Errorf("%w: %d rows of %d bytes overflow", ErrInvalidHeader, height, stride)
	}
	return nil
}

// newHeader builds the header written for an image of the given size.
func newHeader(width, height uint64) (*Header, error) {
	if width > math.MaxInt32 || height > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrImageTooLarge, width, height, math.MaxInt32)
	}
	sizeImage := RowStride(width) * height
	if sizeImage > math.MaxUint32-HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes of pixel data", ErrImageTooLarge, sizeImage)
	}

	return &Header{
		Type:        Signature,
		FileSize:    uint32(HeaderSize + sizeImage),
		OffBits:     HeaderSize,
		InfoSize:    InfoHeaderSize,
		Width:       int32(width),
		Height:      int32(height),
		Planes:      planes,
		BitCount:    BitsPerPixel,
		Compression: compressionNone,
		SizeImage:   uint32(sizeImage),
	}, nil
}

// MarshalBinary returns the 54-byte little-endian encoding of h.
func (h *Header) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(HeaderSize)
	if err := binary.Write(&buf, binary.LittleEndian, h); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
