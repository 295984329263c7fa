package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// CropResult contains a rendered region as base64 PNG.
type CropResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Crop renders the region (x1,y1)-(x2,y2) of img as PNG, optionally scaled.
func Crop(img *Image, x1, y1, x2, y2 int, scale float64) (*CropResult, error) {
	if img.IsEmpty() {
		return nil, fmt.Errorf("cannot crop an empty image")
	}
	w, h := int(img.Width()), int(img.Height())

	if x1 < 0 || y1 < 0 || x2 > w || y2 > h {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (0,0)-(%d,%d)",
			x1, y1, x2, y2, w, h)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	cropped := imaging.Crop(ToNRGBA(img), image.Rect(x1, y1, x2, y2))
	return encodePNG(cropped, scale)
}

// CropQuadrant renders a named region of img.
func CropQuadrant(img *Image, region string, scale float64) (*CropResult, error) {
	w := int(img.Width())
	h := int(img.Height())
	midX := w / 2
	midY := h / 2

	var x1, y1, x2, y2 int

	switch region {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	default:
		return nil, fmt.Errorf("unknown region: %s", region)
	}

	return Crop(img, x1, y1, x2, y2, scale)
}

// Preview renders the whole image as PNG, scaled by scale.
func Preview(img *Image, scale float64) (*CropResult, error) {
	if img.IsEmpty() {
		return nil, fmt.Errorf("cannot preview an empty image")
	}
	return encodePNG(ToNRGBA(img), scale)
}

// MaxOutputPixels caps the size of a rendered PNG after scaling.
const MaxOutputPixels = 64 << 20

func encodePNG(src *image.NRGBA, scale float64) (*CropResult, error) {
	if scale != 1.0 && scale > 0 {
		w := float64(src.Bounds().Dx()) * scale
		h := float64(src.Bounds().Dy()) * scale
		if w*h > MaxOutputPixels {
			return nil, fmt.Errorf("scale %g would render %.0fx%.0f pixels, limit is %d", scale, w, h, MaxOutputPixels)
		}
		src = imaging.Resize(src, max(int(w), 1), max(int(h), 1), imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}

	return &CropResult{
		Width:       src.Bounds().Dx(),
		Height:      src.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
