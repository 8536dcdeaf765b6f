package render

import (
	"testing"

	"github.com/willbeason/julia-anim/pkg/julia"
)

func TestImage(t *testing.T) {
	const threshold = 10

	f := julia.Frame{
		Width:  2,
		Height: 2,
		Counts: []int{0, 9, 4, 9},
	}

	pal := Palette(threshold)
	img := Image(f, pal, threshold)

	if got := img.Bounds().Dx(); got != 2 {
		t.Errorf("Expected image width 2, got %d", got)
	}
	if got := img.Bounds().Dy(); got != 2 {
		t.Errorf("Expected image height 2, got %d", got)
	}

	if got := img.ColorIndexAt(0, 0); got != 0 {
		t.Errorf("Expected count 0 to map to palette index 0, got %d", got)
	}
	if got := img.ColorIndexAt(1, 0); got != uint8(len(pal)-1) {
		t.Errorf("Expected count %d to map to the last palette index %d, got %d",
			threshold-1, len(pal)-1, got)
	}
	if got := img.ColorIndexAt(1, 1); got != uint8(len(pal)-1) {
		t.Errorf("Expected the same count to map to the same index, got %d", got)
	}
}

func TestImageScalesLargeThresholds(t *testing.T) {
	// Thresholds beyond the palette size scale down instead of overflowing.
	const threshold = 1000

	f := julia.Frame{
		Width:  1,
		Height: 3,
		Counts: []int{0, 500, 999},
	}

	pal := Palette(threshold)
	img := Image(f, pal, threshold)

	low := img.ColorIndexAt(0, 0)
	mid := img.ColorIndexAt(0, 1)
	high := img.ColorIndexAt(0, 2)

	if low != 0 {
		t.Errorf("Expected count 0 at index 0, got %d", low)
	}
	if high != uint8(len(pal)-1) {
		t.Errorf("Expected the maximum count at the last index %d, got %d", len(pal)-1, high)
	}
	if mid <= low || mid >= high {
		t.Errorf("Expected a middle count to map strictly between %d and %d, got %d", low, high, mid)
	}
}

func TestImageTransposedLayout(t *testing.T) {
	// Counts are row-major over the imaginary axis: pixel (x, y) reads the
	// escape time for the point (re[x], im[y]).
	f := julia.Frame{
		Width:  3,
		Height: 2,
		Counts: []int{0, 1, 2, 3, 4, 5},
	}

	pal := Palette(7)
	img := Image(f, pal, 7)

	if got := img.ColorIndexAt(2, 0); got != uint8(2*(len(pal)-1)/6) {
		t.Errorf("Expected pixel (2, 0) to read count 2, got index %d", got)
	}
	if got := img.ColorIndexAt(0, 1); got != uint8(3*(len(pal)-1)/6) {
		t.Errorf("Expected pixel (0, 1) to read count 3, got index %d", got)
	}
}
