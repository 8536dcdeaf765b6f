package render

import (
	"image"
	"image/color"

	"github.com/willbeason/julia-anim/pkg/julia"
)

// Image maps a frame's escape counts onto pal. Counts scale onto the palette
// rather than indexing it directly, so thresholds larger than the palette
// still produce a full ramp.
func Image(f julia.Frame, pal color.Palette, threshold int) *image.Paletted {
	maxCount := threshold - 1
	if maxCount < 1 {
		maxCount = 1
	}

	img := image.NewPaletted(image.Rect(0, 0, f.Width, f.Height), pal)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			idx := f.At(x, y) * (len(pal) - 1) / maxCount
			img.SetColorIndex(x, y, uint8(idx))
		}
	}

	return img
}
