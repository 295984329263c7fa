package imaging

import (
	"image"
	"image/color"
)

// ToNRGBA copies img into an opaque *image.NRGBA so it can be handed to the
// standard library and to github.com/disintegration/imaging. An empty image
// converts to a zero-sized NRGBA.
func ToNRGBA(img *Image) *image.NRGBA {
	if img.IsEmpty() {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}

	w, h := int(img.width), int(img.height)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row, _ := img.Row(uint64(y))
		off := y * dst.Stride
		for _, p := range row {
			dst.Pix[off+0] = p.R
			dst.Pix[off+1] = p.G
			dst.Pix[off+2] = p.B
			dst.Pix[off+3] = 0xff
			off += 4
		}
	}
	return dst
}

// FromImage converts any image.Image into an Image allocated from a (nil
// means DefaultAllocator). Alpha is dropped; colours are taken as
// non-premultiplied 8-bit values.
func FromImage(a Allocator, src image.Image) (*Image, error) {
	b := src.Bounds()
	dst, err := Create(a, uint64(max(b.Dx(), 0)), uint64(max(b.Dy(), 0)))
	if err != nil {
		return nil, err
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row, _ := dst.Row(uint64(y - b.Min.Y))
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			row[x-b.Min.X] = Pixel{B: c.B, G: c.G, R: c.R}
		}
	}
	return dst, nil
}
