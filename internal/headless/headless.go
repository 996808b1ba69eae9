// Package headless drives the render loop without a window, drawing into a
// surface.Recorder and advancing frames by hand.
package headless

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/olivierh59500/particle-backdrop/internal/frame"
	"github.com/olivierh59500/particle-backdrop/internal/loop"
	"github.com/olivierh59500/particle-backdrop/internal/particle"
	"github.com/olivierh59500/particle-backdrop/internal/surface"
	"github.com/olivierh59500/particle-backdrop/internal/theme"
	"github.com/olivierh59500/particle-backdrop/internal/viewport"
)

// Plan describes a headless run.
type Plan struct {
	Frames     int
	Size       particle.Bounds
	Theme      theme.Theme
	ResizeTo   *particle.Bounds // Optional
	ResizeAt   int              // Frame of the resize; 0 means half way
	CycleEvery int              // Cycle the theme every n frames; 0 never
}

// Result summarizes a run.
type Result struct {
	Stats     loop.Stats
	Lines     int
	Circles   int
	Bounds    particle.Bounds // Field bounds on the last frame
	Particles int
	Theme     theme.Theme
	Elapsed   time.Duration
}

// Run executes plan. Frame 0 is the loop's immediate first tick; each later
// frame flushes the scheduler once.
func Run(opts loop.Options, plan Plan, logger *zap.Logger) (Result, error) {
	if plan.Frames < 1 {
		return Result{}, fmt.Errorf("frames must be >= 1, got %d", plan.Frames)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	resizeAt := plan.ResizeAt
	if resizeAt <= 0 {
		resizeAt = plan.Frames / 2
	}

	queue := frame.NewQueue()
	monitor := viewport.NewMonitor(plan.Size.Width, plan.Size.Height, logger)
	themes := theme.NewSwitch(plan.Theme)
	rec := surface.NewRecorder()
	lp := loop.New(opts, queue, monitor, themes, logger)

	began := time.Now()
	lp.Start(func() (surface.Surface, error) { return rec, nil })
	for i := 1; i < plan.Frames; i++ {
		if plan.ResizeTo != nil && i == resizeAt {
			monitor.Update(plan.ResizeTo.Width, plan.ResizeTo.Height)
		}
		if plan.CycleEvery > 0 && i%plan.CycleEvery == 0 {
			themes.Cycle()
		}
		queue.Flush()
	}

	res := Result{
		Stats:   lp.Stats(),
		Lines:   rec.TotalLines,
		Circles: rec.TotalCircles,
		Theme:   themes.Current(),
		Elapsed: time.Since(began),
	}
	if snap := lp.Snapshot(); snap != nil {
		res.Bounds = snap.Bounds
		res.Particles = snap.Len()
	}
	lp.Stop()
	return res, nil
}

// ParseSize reads "WxH".
func ParseSize(s string) (particle.Bounds, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return particle.Bounds{}, fmt.Errorf("size %q: want WxH", s)
	}
	wf, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return particle.Bounds{}, fmt.Errorf("size %q: %w", s, err)
	}
	hf, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return particle.Bounds{}, fmt.Errorf("size %q: %w", s, err)
	}
	return particle.Bounds{Width: wf, Height: hf}, nil
}
