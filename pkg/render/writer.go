package render

import (
	"path/filepath"
	"strings"

	"github.com/willbeason/julia-anim/pkg/julia"
)

// A FrameWriter accumulates frames in ascending index order and finalizes the
// output on Close. Writers are not safe for concurrent use; the generator
// already serializes emission.
type FrameWriter interface {
	WriteFrame(f julia.Frame) error
	Close() error
}

// ForPath picks a writer from the output path's extension: .gif produces an
// animated GIF, .png an animated PNG, and anything else a directory of
// numbered PNG stills.
func ForPath(path string, intervalMS, threshold int) FrameWriter {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		return NewGIF(path, intervalMS, threshold)
	case ".png":
		return NewAPNG(path, intervalMS, threshold)
	default:
		return NewPNGDir(path, threshold)
	}
}
