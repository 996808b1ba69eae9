package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/olivierh59500/particle-backdrop/internal/headless"
	"github.com/olivierh59500/particle-backdrop/internal/particle"
)

var (
	simFrames     int
	simWidth      float64
	simHeight     float64
	simResizeTo   string
	simResizeAt   int
	simCycleEvery int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the backdrop headless and report what it drew",
	Long: `Drives the render loop for a fixed number of frames without a window,
drawing into an in-memory surface. Useful for checking settings and timing.

Example:
  particlebg simulate --frames 600 --width 800 --height 600 --resize-to 400x300`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.IntVar(&simFrames, "frames", 600, "number of frames to run")
	f.Float64Var(&simWidth, "width", 800, "viewport width")
	f.Float64Var(&simHeight, "height", 600, "viewport height")
	f.StringVar(&simResizeTo, "resize-to", "", "resize to WxH during the run")
	f.IntVar(&simResizeAt, "resize-at", 0, "frame of the resize (default: half way)")
	f.IntVar(&simCycleEvery, "cycle-theme-every", 0, "cycle the theme every n frames (0 = never)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	opts, err := cfg.LoopOptions()
	if err != nil {
		return err
	}

	plan := headless.Plan{
		Frames:     simFrames,
		Size:       particle.Bounds{Width: simWidth, Height: simHeight},
		Theme:      cfg.InitialTheme(),
		ResizeAt:   simResizeAt,
		CycleEvery: simCycleEvery,
	}
	if simResizeTo != "" {
		b, err := headless.ParseSize(simResizeTo)
		if err != nil {
			return err
		}
		plan.ResizeTo = &b
	}

	res, err := headless.Run(opts, plan, logger)
	if err != nil {
		return err
	}

	logger.Info("simulation finished",
		zap.Uint64("ticks", res.Stats.Ticks),
		zap.Uint64("populations", res.Stats.Populations),
		zap.Int("lines", res.Lines),
		zap.Duration("elapsed", res.Elapsed))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ticks:        %d\n", res.Stats.Ticks)
	fmt.Fprintf(out, "populations:  %d\n", res.Stats.Populations)
	fmt.Fprintf(out, "particles:    %d in %gx%g\n", res.Particles, res.Bounds.Width, res.Bounds.Height)
	fmt.Fprintf(out, "theme:        %s\n", res.Theme)
	fmt.Fprintf(out, "circles:      %d\n", res.Circles)
	fmt.Fprintf(out, "lines:        %d (%.1f per tick, %d last tick)\n",
		res.Lines, float64(res.Lines)/float64(max(res.Stats.Ticks, 1)), res.Stats.Connections)
	fmt.Fprintf(out, "elapsed:      %s\n", res.Elapsed)
	return nil
}
