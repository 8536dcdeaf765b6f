package julia

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
)

// A Frame is one completed escape-time grid, laid out for display: the count
// for the sample point (re[x], im[y]) lives at Counts[y*Width+x], so rows run
// along the imaginary axis and columns along the real axis.
type Frame struct {
	// Index is the frame's position in the animation, starting at 0.
	Index int

	Width  int
	Height int

	// C is the constant the frame was computed with.
	C complex128

	// Counts holds escape times in [0, threshold-1], row-major.
	Counts []int
}

// At returns the escape time at column x, row y.
func (f Frame) At(x, y int) int {
	return f.Counts[y*f.Width+x]
}

// State describes where a Generator is in its lifecycle. Done and Aborted are
// terminal.
type State int32

const (
	Uninitialized State = iota
	Generating
	Done
	Aborted
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Generating:
		return "generating"
	case Done:
		return "done"
	case Aborted:
		return "aborted"
	}
	return fmt.Sprintf("state(%d)", int32(s))
}

// A Generator sweeps the constant c once around its circle and produces one
// escape-time Frame per stop. The sampling grid and angle sequence are built
// once at construction and never change.
type Generator struct {
	cfg    Config
	re, im []float64
	angles []float64

	workers int

	// Progress, when set, observes each emitted frame as (emitted, total).
	// Called after the frame's consumer returns, in frame order.
	Progress func(done, total int)

	state atomic.Int32
}

// New validates cfg and builds the sampling grid and angle sequence.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := int(cfg.Width * float64(cfg.Density))
	h := int(cfg.Height * float64(cfg.Density))
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: region %gx%g at density %d yields an empty grid",
			ErrInvalidArgument, cfg.Width, cfg.Height, cfg.Density)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Generator{
		cfg:     cfg,
		re:      Linspace(cfg.XStart, cfg.XStart+cfg.Width, w),
		im:      Linspace(cfg.YStart, cfg.YStart+cfg.Height, h),
		angles:  Linspace(0, 2*math.Pi, cfg.Frames),
		workers: workers,
	}, nil
}

// GridSize returns the dimensions of every produced frame.
func (g *Generator) GridSize() (width, height int) {
	return len(g.re), len(g.im)
}

// State reports the generator's lifecycle state.
func (g *Generator) State() State {
	return State(g.state.Load())
}

// Generate computes every frame and passes each to emit in strictly ascending
// index order. Frames are computed in parallel; cells within a frame share no
// state, so workers need no locks.
//
// Cancelling ctx stops the run between frames: frames already handed to emit
// stay emitted, no partial frame is ever handed over, and Generate returns
// ctx's error with the generator in the Aborted state. An error from emit
// likewise aborts the run and is returned unwrapped.
func (g *Generator) Generate(ctx context.Context, emit func(Frame) error) error {
	g.state.Store(int32(Generating))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	indices := make(chan int)
	go func() {
		defer close(indices)
		for i := 0; i < g.cfg.Frames; i++ {
			select {
			case indices <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	results := make(chan Frame, g.workers)
	wg := sync.WaitGroup{}
	wg.Add(g.workers)
	for w := 0; w < g.workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				select {
				case results <- g.frame(i):
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Workers finish in whatever order the scheduler allows; hold early
	// arrivals back until every lower-index frame has been emitted.
	pending := make(map[int]Frame, g.workers)
	next := 0
	var failure error

	for frame := range results {
		pending[frame.Index] = frame

		for failure == nil {
			ready, ok := pending[next]
			if !ok {
				break
			}

			if err := ctx.Err(); err != nil {
				failure = err
				break
			}
			if err := emit(ready); err != nil {
				failure = err
				break
			}

			delete(pending, next)
			next++
			if g.Progress != nil {
				g.Progress(next, g.cfg.Frames)
			}
		}

		if failure != nil {
			break
		}
	}
	cancel()

	if failure == nil && next < g.cfg.Frames {
		// The result stream ended early; the only way that happens is
		// cancellation before every frame was computed.
		failure = ctx.Err()
	}

	if failure != nil {
		g.state.Store(int32(Aborted))
		return failure
	}

	g.state.Store(int32(Done))
	return nil
}

func (g *Generator) frame(i int) Frame {
	q := OnCircle(g.cfg.InitR, g.angles[i])

	counts := make([]int, len(g.re)*len(g.im))
	for y, im := range g.im {
		row := counts[y*len(g.re) : (y+1)*len(g.re)]
		for x, re := range g.re {
			row[x] = escapeTime(complex(re, im), q, g.cfg.Threshold)
		}
	}

	return Frame{
		Index:  i,
		Width:  len(g.re),
		Height: len(g.im),
		C:      q.C,
		Counts: counts,
	}
}
