package render

import (
	"image/color"
	"image/gif"
	"os"

	"github.com/willbeason/julia-anim/pkg/julia"
)

// GIF accumulates paletted frames and encodes an infinitely looping animated
// GIF on Close.
type GIF struct {
	path string

	// delay between frames in 100ths of a second, GIF's native unit.
	delay int

	pal       color.Palette
	threshold int

	anim gif.GIF
}

func NewGIF(path string, intervalMS, threshold int) *GIF {
	delay := intervalMS / 10
	if delay < 1 {
		delay = 1
	}

	return &GIF{
		path:      path,
		delay:     delay,
		pal:       Palette(threshold),
		threshold: threshold,
	}
}

func (w *GIF) WriteFrame(f julia.Frame) error {
	w.anim.Image = append(w.anim.Image, Image(f, w.pal, w.threshold))
	w.anim.Delay = append(w.anim.Delay, w.delay)
	return nil
}

func (w *GIF) Close() error {
	out, err := os.Create(w.path)
	if err != nil {
		return err
	}

	if err := gif.EncodeAll(out, &w.anim); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
