package imaging

import (
	"errors"
	"math"
	"testing"
)

// createPatternImage returns a width x height image whose pixels encode their
// own coordinates, so any misplaced pixel is detectable.
func createPatternImage(t *testing.T, width, height uint64) *Image {
	t.Helper()
	img, err := Create(nil, width, height)
	if err != nil {
		t.Fatalf("Create(%d, %d) failed: %v", width, height, err)
	}
	for y := uint64(0); y < height; y++ {
		for x := uint64(0); x < width; x++ {
			p, _ := img.PixelAt(x, y)
			*p = Pixel{B: uint8(x), G: uint8(y), R: uint8(x*7 + y*13)}
		}
	}
	return img
}

// countingAllocator tracks live allocations and can be told to fail.
type countingAllocator struct {
	live   int
	allocs int
	fail   bool
}

func (c *countingAllocator) Alloc(n int) ([]Pixel, error) {
	if c.fail {
		return nil, errors.New("injected failure")
	}
	c.live++
	c.allocs++
	return make([]Pixel, n), nil
}

func (c *countingAllocator) Free([]Pixel) { c.live-- }

func TestCreate(t *testing.T) {
	img, err := Create(nil, 4, 3)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if img.Width() != 4 || img.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", img.Width(), img.Height())
	}
	if img.IsEmpty() {
		t.Error("new image reports empty")
	}

	for y := uint64(0); y < 3; y++ {
		for x := uint64(0); x < 4; x++ {
			p, ok := img.PixelAt(x, y)
			if !ok {
				t.Fatalf("PixelAt(%d,%d) out of range", x, y)
			}
			if *p != (Pixel{}) {
				t.Errorf("PixelAt(%d,%d) = %+v, want zero", x, y, *p)
			}
		}
	}
}

func TestCreate_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height uint64
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"both zero", 0, 0},
		{"product overflows uint64", math.MaxUint64, 2},
		{"product exceeds address space", math.MaxUint32 + 1, math.MaxUint32 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc := &countingAllocator{}
			img, err := Create(alloc, tt.width, tt.height)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("got err %v, want ErrInvalidDimensions", err)
			}
			if img != nil {
				t.Error("Create returned an image on failure")
			}
			if alloc.allocs != 0 {
				t.Errorf("allocator called %d times, want 0", alloc.allocs)
			}
		})
	}
}

func TestCreate_AllocationFailure(t *testing.T) {
	alloc := &countingAllocator{fail: true}
	_, err := Create(alloc, 10, 10)
	if !errors.Is(err, ErrAllocation) {
		t.Errorf("got err %v, want ErrAllocation", err)
	}
}

func TestHeapAllocator_Limit(t *testing.T) {
	_, err := Create(HeapAllocator{Limit: 99}, 10, 10)
	if !errors.Is(err, ErrAllocation) {
		t.Errorf("got err %v, want ErrAllocation", err)
	}
	if _, err := Create(HeapAllocator{Limit: 100}, 10, 10); err != nil {
		t.Errorf("allocation at the limit failed: %v", err)
	}
}

func TestHeapAllocator_Oversized(t *testing.T) {
	tests := []struct {
		name          string
		alloc         Allocator
		width, height uint64
	}{
		{"default limit", nil, 1 << 15, 1 << 14},
		{"unlimited heap past runtime ceiling", HeapAllocator{}, math.MaxInt32, 1 << 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Create(tt.alloc, tt.width, tt.height)
			if !errors.Is(err, ErrAllocation) {
				t.Errorf("got err %v, want ErrAllocation", err)
			}
			if img != nil {
				t.Error("Create returned an image on failure")
			}
		})
	}
}

func TestNew_ReturnsEmptySentinel(t *testing.T) {
	img := New(0, 5)
	if img == nil {
		t.Fatal("New returned nil")
	}
	if !img.IsEmpty() {
		t.Error("New(0, 5) should return the empty sentinel")
	}
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("empty sentinel dimensions: got %dx%d", img.Width(), img.Height())
	}
}

func TestRelease(t *testing.T) {
	alloc := &countingAllocator{}
	img, err := Create(alloc, 2, 2)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if alloc.live != 1 {
		t.Fatalf("live allocations: got %d, want 1", alloc.live)
	}

	img.Release()
	if alloc.live != 0 {
		t.Errorf("live allocations after Release: got %d, want 0", alloc.live)
	}
	if !img.IsEmpty() {
		t.Error("released image should be empty")
	}

	// Second release must not free again.
	img.Release()
	if alloc.live != 0 {
		t.Errorf("live allocations after second Release: got %d, want 0", alloc.live)
	}

	var nilImg *Image
	nilImg.Release()
	(&Image{}).Release()
}

func TestPixelAt_OutOfBounds(t *testing.T) {
	img := createPatternImage(t, 3, 2)

	tests := []struct {
		name string
		x, y uint64
	}{
		{"x at width", 3, 0},
		{"y at height", 0, 2},
		{"both beyond", 10, 10},
		{"huge", math.MaxUint64, math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := img.PixelAt(tt.x, tt.y)
			if ok || p != nil {
				t.Errorf("PixelAt(%d,%d) should be absent", tt.x, tt.y)
			}
		})
	}

	if _, ok := (&Image{}).PixelAt(0, 0); ok {
		t.Error("PixelAt on empty image should be absent")
	}
}

func TestPixelAt_RowMajor(t *testing.T) {
	img := createPatternImage(t, 5, 4)
	p, ok := img.PixelAt(3, 2)
	if !ok {
		t.Fatal("PixelAt(3,2) absent")
	}
	want := Pixel{B: 3, G: 2, R: 3*7 + 2*13}
	if *p != want {
		t.Errorf("PixelAt(3,2) = %+v, want %+v", *p, want)
	}

	p.R = 200
	again, _ := img.PixelAt(3, 2)
	if again.R != 200 {
		t.Error("write through PixelAt pointer not visible")
	}
}

func TestRow(t *testing.T) {
	img := createPatternImage(t, 4, 3)

	row, ok := img.Row(1)
	if !ok {
		t.Fatal("Row(1) absent")
	}
	if len(row) != 4 || cap(row) != 4 {
		t.Errorf("Row length/cap: got %d/%d, want 4/4", len(row), cap(row))
	}
	for x, p := range row {
		if p.B != uint8(x) || p.G != 1 {
			t.Errorf("Row(1)[%d] = %+v", x, p)
		}
	}

	if _, ok := img.Row(3); ok {
		t.Error("Row(3) should be absent for height 3")
	}
	if _, ok := (&Image{}).Row(0); ok {
		t.Error("Row should be absent on an empty image")
	}

	// Writes land in the image; appends must not reach row 2.
	row[3].R = 200
	if p, _ := img.PixelAt(3, 1); p.R != 200 {
		t.Errorf("write through Row not visible: got R=%d", p.R)
	}
	before, _ := img.PixelAt(0, 2)
	want := *before
	_ = append(row, Pixel{R: 1, G: 2, B: 3})
	if after, _ := img.PixelAt(0, 2); *after != want {
		t.Errorf("append to Row(1) overwrote row 2: got %+v, want %+v", *after, want)
	}
}

func TestCloneAndEqual(t *testing.T) {
	img := createPatternImage(t, 6, 5)
	c := Clone(img)
	if !Equal(img, c) {
		t.Fatal("clone differs from source")
	}

	p, _ := c.PixelAt(0, 0)
	p.R++
	if Equal(img, c) {
		t.Error("modifying clone changed equality; storage is shared")
	}

	if !Equal(&Image{}, nil) {
		t.Error("empty images should compare equal")
	}
	if Equal(img, &Image{}) {
		t.Error("non-empty image equals empty sentinel")
	}
	if Equal(createPatternImage(t, 2, 3), createPatternImage(t, 3, 2)) {
		t.Error("images with different dimensions compare equal")
	}
	if !Clone(&Image{}).IsEmpty() {
		t.Error("clone of empty image should be empty")
	}
}
