package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestToNRGBA(t *testing.T) {
	img := createPatternImage(t, 3, 2)
	n := ToNRGBA(img)

	if n.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds: got %v", n.Bounds())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			p, _ := img.PixelAt(uint64(x), uint64(y))
			want := color.NRGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
			if got := n.NRGBAAt(x, y); got != want {
				t.Errorf("(%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}

	if !ToNRGBA(&Image{}).Bounds().Empty() {
		t.Error("empty image should convert to empty bounds")
	}
}

func TestFromImage_RoundTrip(t *testing.T) {
	src := createPatternImage(t, 4, 5)
	back, err := FromImage(nil, ToNRGBA(src))
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if !Equal(src, back) {
		t.Error("ToNRGBA/FromImage round trip changed pixels")
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(10, 20, 12, 21))
	rgba.Set(11, 20, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	img, err := FromImage(nil, rgba)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if img.Width() != 2 || img.Height() != 1 {
		t.Fatalf("dimensions: got %dx%d, want 2x1", img.Width(), img.Height())
	}
	p, _ := img.PixelAt(1, 0)
	if *p != (Pixel{B: 3, G: 2, R: 1}) {
		t.Errorf("pixel: got %+v", *p)
	}
}

func TestFromImage_Empty(t *testing.T) {
	if _, err := FromImage(nil, image.NewRGBA(image.Rect(0, 0, 0, 3))); err == nil {
		t.Error("FromImage should fail for zero-width source")
	}
}
