package bmp

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
)

// Info describes a BMP file without exposing its pixels.
type Info struct {
	// Width and Height are the image dimensions in pixels.
	Width  uint64 `json:"width"`
	Height uint64 `json:"height"`

	// TopDown is true when the file stores rows top to bottom.
	TopDown bool `json:"top_down"`

	BitsPerPixel uint16 `json:"bits_per_pixel"`

	// PixelOffset is where the pixel array starts in the file.
	PixelOffset uint32 `json:"pixel_offset"`

	// InfoHeaderSize is the declared size of the info header. Values above 40
	// indicate a V4/V5 header whose extra fields are skipped.
	InfoHeaderSize uint32 `json:"info_header_size"`

	// RowStride is the on-disk bytes per row and RowPadding the zero bytes
	// among them.
	RowStride  uint64 `json:"row_stride"`
	RowPadding uint64 `json:"row_padding"`

	// DeclaredFileSize is the header's file size field. It is not validated.
	DeclaredFileSize uint32 `json:"declared_file_size"`

	// FileSizeBytes is the size of the file on disk.
	FileSizeBytes int64  `json:"file_size_bytes"`
	FileSizeHuman string `json:"file_size_human"`

	// PixelDataHuman is the computed pixel array size, human-readable.
	PixelDataHuman string `json:"pixel_data_human"`
}

// LoadInfo reads and validates the header of the BMP at path. When decode is
// true the whole image is also decoded into cache, which both verifies the
// pixel data and primes the cache for later calls.
func LoadInfo(cache *ImageCache, path string, decode bool) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	h, err := ReadHeader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if decode && cache != nil {
		if _, err := cache.Load(path); err != nil {
			return nil, err
		}
	}

	width, height := h.Dimensions()
	dataLen, padding := rowLayout(width)
	stride := dataLen + padding

	return &Info{
		Width:            width,
		Height:           height,
		TopDown:          h.TopDown(),
		BitsPerPixel:     h.BitCount,
		PixelOffset:      h.OffBits,
		InfoHeaderSize:   h.InfoSize,
		RowStride:        stride,
		RowPadding:       padding,
		DeclaredFileSize: h.FileSize,
		FileSizeBytes:    stat.Size(),
		FileSizeHuman:    humanize.IBytes(uint64(stat.Size())),
		PixelDataHuman:   humanize.IBytes(stride * height),
	}, nil
}
