package julia

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument reports configuration that cannot produce any frames.
// Validation happens eagerly, before any frame is computed.
var ErrInvalidArgument = errors.New("invalid argument")

// Config describes one animation run: the rectangle of the complex plane to
// sample, how densely to sample it, and how the constant c sweeps its circle.
type Config struct {
	// XStart and YStart are the lower-left corner of the sampled region.
	XStart float64
	YStart float64

	// Width and Height are the extent of the region in plane units.
	Width  float64
	Height float64

	// InitR is the radius of the circle the constant c travels around the
	// origin over the course of the animation.
	InitR float64

	// Density is the number of samples per plane unit along each axis.
	Density int

	// Threshold is the iteration cap per point. Points that stay within the
	// divergence bound for Threshold iterations count as inside the set.
	Threshold int

	// Frames is the number of animation frames, spread evenly over one full
	// revolution of c.
	Frames int

	// Workers bounds parallel frame computation. Zero means one worker per
	// CPU.
	Workers int
}

func (c Config) Validate() error {
	if c.Threshold < 1 {
		return fmt.Errorf("%w: threshold must be at least 1, got %d", ErrInvalidArgument, c.Threshold)
	}
	if c.Density <= 0 {
		return fmt.Errorf("%w: density must be positive, got %d", ErrInvalidArgument, c.Density)
	}
	if c.Frames <= 0 {
		return fmt.Errorf("%w: frames must be positive, got %d", ErrInvalidArgument, c.Frames)
	}

	reals := []struct {
		name  string
		value float64
	}{
		{"x-start", c.XStart},
		{"y-start", c.YStart},
		{"width", c.Width},
		{"height", c.Height},
		{"init-r", c.InitR},
	}
	for _, r := range reals {
		if math.IsNaN(r.value) || math.IsInf(r.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalidArgument, r.name, r.value)
		}
	}

	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: region extent must be positive, got %gx%g", ErrInvalidArgument, c.Width, c.Height)
	}

	return nil
}
