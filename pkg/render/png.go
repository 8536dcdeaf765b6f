package render

import (
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/willbeason/julia-anim/pkg/julia"
)

// PNGDir writes each frame as a numbered PNG still in a directory.
type PNGDir struct {
	dir string

	pal       color.Palette
	threshold int

	made bool
}

func NewPNGDir(dir string, threshold int) *PNGDir {
	return &PNGDir{
		dir:       dir,
		pal:       Palette(threshold),
		threshold: threshold,
	}
}

func (w *PNGDir) WriteFrame(f julia.Frame) error {
	if !w.made {
		if err := os.MkdirAll(w.dir, os.ModePerm); err != nil {
			return err
		}
		w.made = true
	}

	out, err := os.Create(filepath.Join(w.dir, fmt.Sprintf("frame-%03d.png", f.Index)))
	if err != nil {
		return err
	}

	if err := png.Encode(out, Image(f, w.pal, w.threshold)); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

func (w *PNGDir) Close() error {
	return nil
}
