package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/willbeason/julia-anim/pkg/julia"
	"github.com/willbeason/julia-anim/pkg/render"
)

func mainCmd() *cobra.Command {
	cfg := julia.Config{}
	var interval int
	var output string

	cmd := &cobra.Command{
		Use:   "julia",
		Short: "Render an animation of Julia sets as c sweeps a circle",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			return run(cmd.Context(), cfg, interval, output)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&cfg.XStart, "x-start", -2, "left edge of the sampled region")
	flags.Float64Var(&cfg.YStart, "y-start", -2, "bottom edge of the sampled region")
	flags.Float64Var(&cfg.Width, "width", 4, "horizontal extent of the sampled region")
	flags.Float64Var(&cfg.Height, "height", 4, "vertical extent of the sampled region")
	flags.Float64Var(&cfg.InitR, "init-r", 0.7885, "radius of the circle the constant c travels")
	flags.IntVar(&cfg.Density, "density", 500, "samples per plane unit along each axis")
	flags.IntVar(&cfg.Threshold, "threshold", 50, "maximum iterations per point")
	flags.IntVar(&cfg.Frames, "frames", 100, "number of animation frames")
	flags.IntVar(&cfg.Workers, "workers", 0, "parallel frame workers (0 = one per CPU)")
	flags.IntVar(&interval, "interval", 40, "milliseconds between frames")
	flags.StringVar(&output, "output", "julia_set.gif", "output path (.gif, .png, or a directory for stills)")

	return cmd
}

func run(ctx context.Context, cfg julia.Config, interval int, output string) error {
	if interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %d", julia.ErrInvalidArgument, interval)
	}

	gen, err := julia.New(cfg)
	if err != nil {
		return err
	}
	gen.Progress = func(done, total int) {
		log.Printf("Processing frame %d/%d", done, total)
	}

	writer := render.ForPath(output, interval, cfg.Threshold)

	start := time.Now()
	genErr := gen.Generate(ctx, writer.WriteFrame)

	// Close even after an abort so frames already computed still make it to disk.
	if err := writer.Close(); err != nil && genErr == nil {
		genErr = err
	}
	if genErr != nil {
		return genErr
	}

	log.Printf("%d frames took %d seconds", cfg.Frames, int(time.Since(start).Seconds()))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
