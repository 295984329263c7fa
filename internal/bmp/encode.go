package bmp

import (
	"fmt"
	"io"

	"github.com/ironsheep/bmp-rotate/internal/imaging"
)

// Encode writes img to w as a bottom-up 24-bit BMP with a 40-byte info
// header and no color table.
//
// Encode writes each row with a single call and does not buffer; wrap w in a
// bufio.Writer for file output. When an error is returned, w may hold a
// partial file and the caller is expected to discard it.
//
// # Errors
//
//   - ErrNilDestination if w is nil
//   - ErrNilSource if img is nil or empty
//   - ErrImageTooLarge if a dimension exceeds the signed 32-bit header field
//     or the pixel array size exceeds 32 bits
//   - ErrHeaderWrite if the header cannot be written in full
//   - ErrRowWrite if a pixel row cannot be written in full
func Encode(w io.Writer, img *imaging.Image) error {
	if w == nil {
		return ErrNilDestination
	}
	if img.IsEmpty() {
		return ErrNilSource
	}

	width, height := img.Width(), img.Height()
	h, err := newHeader(width, height)
	if err != nil {
		return err
	}

	hdr, err := h.MarshalBinary()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHeaderWrite, err)
	}
	if err := writeFull(w, hdr); err != nil {
		return fmt.Errorf("%w: %w", ErrHeaderWrite, err)
	}

	dataLen, padding := rowLayout(width)
	buf := make([]byte, dataLen+padding)
	for i := uint64(0); i < height; i++ {
		row, _ := img.Row(height - 1 - i)
		packRow(buf[:dataLen], row)
		if err := writeFull(w, buf); err != nil {
			return fmt.Errorf("%w: row %d of %d: %w", ErrRowWrite, i, height, err)
		}
	}

	return nil
}

// packRow writes the pixels of src into dst as BGR triples. The bytes of
// the caller's buffer past 3*len(src) are left untouched, so padding stays zero.
func packRow(dst []byte, src []imaging.Pixel) {
	for x, p := range src {
		b := dst[x*imaging.PixelSize : x*imaging.PixelSize+imaging.PixelSize]
		b[0], b[1], b[2] = p.B, p.G, p.R
	}
}

func writeFull(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return io.ErrShortWrite
	}
	return nil
}
