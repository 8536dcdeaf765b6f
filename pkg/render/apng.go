package render

import (
	"image"
	"image/color"

	"github.com/setanarut/apng"
	"github.com/willbeason/julia-anim/pkg/julia"
)

// APNG accumulates paletted frames and saves an animated PNG on Close.
type APNG struct {
	path string

	// delay between frames in 100ths of a second.
	delay int

	pal       color.Palette
	threshold int

	frames []image.Image
}

func NewAPNG(path string, intervalMS, threshold int) *APNG {
	delay := intervalMS / 10
	if delay < 1 {
		delay = 1
	}

	return &APNG{
		path:      path,
		delay:     delay,
		pal:       Palette(threshold),
		threshold: threshold,
	}
}

func (w *APNG) WriteFrame(f julia.Frame) error {
	w.frames = append(w.frames, Image(f, w.pal, w.threshold))
	return nil
}

func (w *APNG) Close() error {
	return apng.Save(w.path, w.frames, uint16(w.delay))
}
