package imaging

// Rotate90 returns a copy of src rotated 90 degrees counter-clockwise. The
// result is Height wide and Width tall; the source pixel at (x, y) lands at
// (y, Width-1-x), so the leftmost source column becomes the bottom row.
//
// The destination is allocated from the source's allocator. Rotate90 neither
// modifies nor releases src. It returns the empty sentinel when src is empty
// or the destination cannot be allocated.
func Rotate90(src *Image) *Image {
	if src.IsEmpty() {
		return &Image{}
	}

	dst, err := Create(src.alloc, src.height, src.width)
	if err != nil {
		return &Image{}
	}

	for y := uint64(0); y < src.height; y++ {
		row, _ := src.Row(y)
		copyRowToColumn(row, dst, y)
	}
	return dst
}

// copyRowToColumn writes source row y into destination column y, walking
// upwards from the bottom row.
func copyRowToColumn(row []Pixel, dst *Image, y uint64) {
	bottom := dst.height - 1
	for x, p := range row {
		dst.data[(bottom-uint64(x))*dst.width+y] = p
	}
}

// Rotate rotates src counter-clockwise by the given number of quarter turns.
// Negative values rotate clockwise. Intermediate images are released; src is
// left untouched. Zero turns yields a copy of src. Like Rotate90 it returns
// the empty sentinel on failure.
func Rotate(src *Image, quarterTurns int) *Image {
	if src.IsEmpty() {
		return &Image{}
	}

	turns := ((quarterTurns % 4) + 4) % 4
	if turns == 0 {
		return Clone(src)
	}

	cur := src
	for i := 0; i < turns; i++ {
		next := Rotate90(cur)
		if cur != src {
			cur.Release()
		}
		if next.IsEmpty() {
			return next
		}
		cur = next
	}
	return cur
}
