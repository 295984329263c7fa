package imaging

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult contains a pixel value in several representations.
//
// BGR mirrors the on-disk channel order of the BMP file; RGB and Hex are the
// same color in the conventional order.
type ColorResult struct {
	Hex string   `json:"hex"` // Hex format "#RRGGBB"
	RGB RGBColor `json:"rgb"` // RGB components
	BGR [3]uint8 `json:"bgr"` // Raw channel bytes as stored in the file
	HSL HSLColor `json:"hsl"` // HSL representation
}

// SampleColor returns the color of the pixel at (x, y).
//
// # Errors
//
//   - Returns error if the image is empty
//   - Returns error if (x, y) lies outside the image
func SampleColor(img *Image, x, y uint64) (*ColorResult, error) {
	if img.IsEmpty() {
		return nil, fmt.Errorf("cannot sample an empty image")
	}
	p, ok := img.PixelAt(x, y)
	if !ok {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, img.Width(), img.Height())
	}
	return colorOf(*p), nil
}

func colorOf(p Pixel) *ColorResult {
	c := colorful.Color{
		R: float64(p.R) / 255.0,
		G: float64(p.G) / 255.0,
		B: float64(p.B) / 255.0,
	}
	h, s, l := c.Hsl()

	return &ColorResult{
		Hex: strings.ToUpper(c.Hex()),
		RGB: RGBColor{R: p.R, G: p.G, B: p.B},
		BGR: [3]uint8{p.B, p.G, p.R},
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}
}
