package imaging

import (
	"fmt"
	"math"
)

// DiffThreshold is the mean per-channel difference above which two pixels
// count as different.
const DiffThreshold = 10

// Size is a width/height pair.
type Size struct {
	Width  uint64 `json:"width"`
	Height uint64 `json:"height"`
}

// CompareResult summarizes how closely two images match.
type CompareResult struct {
	SimilarityScore  float64 `json:"similarity_score"`
	PixelsDifferent  uint64  `json:"pixels_different"`
	TotalPixels      uint64  `json:"total_pixels"`
	SameSize         bool    `json:"same_size"`
	Identical        bool    `json:"identical"`
	Size1            Size    `json:"size1"`
	Size2            Size    `json:"size2"`
	AverageColorDiff float64 `json:"average_color_diff"`
}

// Compare compares a and b over their overlapping top-left area.
func Compare(a, b *Image) (*CompareResult, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return nil, fmt.Errorf("cannot compare an empty image")
	}

	w := min(a.width, b.width)
	h := min(a.height, b.height)
	total := w * h

	var different, exact uint64
	var totalDiff float64
	for y := uint64(0); y < h; y++ {
		ra, _ := a.Row(y)
		rb, _ := b.Row(y)
		for x := uint64(0); x < w; x++ {
			pa, pb := ra[x], rb[x]
			if pa == pb {
				exact++
				continue
			}
			diff := float64(absDiff(pa.R, pb.R)+absDiff(pa.G, pb.G)+absDiff(pa.B, pb.B)) / 3.0
			totalDiff += diff
			if diff > DiffThreshold {
				different++
			}
		}
	}

	sameSize := a.width == b.width && a.height == b.height
	return &CompareResult{
		SimilarityScore:  math.Round((1.0-float64(different)/float64(total))*1000) / 1000,
		PixelsDifferent:  different,
		TotalPixels:      total,
		SameSize:         sameSize,
		Identical:        sameSize && exact == total,
		Size1:            Size{Width: a.width, Height: a.height},
		Size2:            Size{Width: b.width, Height: b.height},
		AverageColorDiff: math.Round(totalDiff/float64(total)*100) / 100,
	}, nil
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
