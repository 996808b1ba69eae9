package loop

import (
	"go.uber.org/zap"

	"github.com/olivierh59500/particle-backdrop/internal/frame"
	"github.com/olivierh59500/particle-backdrop/internal/particle"
	"github.com/olivierh59500/particle-backdrop/internal/render"
	"github.com/olivierh59500/particle-backdrop/internal/surface"
	"github.com/olivierh59500/particle-backdrop/internal/theme"
	"github.com/olivierh59500/particle-backdrop/internal/utils"
)

// DefaultCount is the number of particles per viewport.
const DefaultCount = 80

// DefaultParticleAlpha is the opacity of the particle dots.
const DefaultParticleAlpha = 0.2

// State is the lifecycle state of a Loop.
type State int

const (
	Idle    State = iota // Not started, or no surface was available
	Running              // A tick is always scheduled
	Stopped              // Torn down for good
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Viewport is the source of the drawing area size.
type Viewport interface {
	Size() particle.Bounds
	OnResize(fn func(particle.Bounds)) (detach func())
}

// Options tune what a Loop draws.
type Options struct {
	Count         int
	Ranges        particle.Ranges
	Connections   render.Connections
	ParticleAlpha float64
	Palettes      theme.Palettes
	Seed          int64 // 0 picks one from the clock
}

// DefaultOptions returns the stock backdrop settings.
func DefaultOptions() Options {
	return Options{
		Count:         DefaultCount,
		Ranges:        particle.DefaultRanges,
		Connections:   render.DefaultConnections(),
		ParticleAlpha: DefaultParticleAlpha,
		Palettes:      theme.DefaultPalettes,
	}
}

// Stats describes what the loop has done so far.
type Stats struct {
	Ticks       uint64
	Populations uint64
	Connections int // Segments drawn by the latest tick
}

// Loop owns the particle field and drives it one tick per frame.
//
// Everything runs on the scheduler's goroutine: ticks, resize callbacks,
// Start and Stop. The field is only ever replaced whole, between ticks.
type Loop struct {
	opts      Options
	scheduler frame.Scheduler
	viewport  Viewport
	theme     theme.Signal
	rng       *utils.PRNGService
	logger    *zap.Logger

	state   State
	surface surface.Surface
	field   *particle.Field
	pending frame.Handle
	queued  bool
	detach  func()
	stats   Stats
}

// New wires a loop to its collaborators. It does nothing until Start.
func New(opts Options, scheduler frame.Scheduler, viewport Viewport, signal theme.Signal, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		opts:      opts,
		scheduler: scheduler,
		viewport:  viewport,
		theme:     signal,
		rng:       utils.NewPRNGService(opts.Seed),
		logger:    logger,
	}
}

// Start acquires the drawing surface, populates the field for the current
// viewport and runs the first tick right away. If no surface can be had the
// loop stays Idle and draws nothing; that is logged, not returned.
func (l *Loop) Start(provider surface.Provider) {
	if l.state != Idle {
		return
	}

	dst, err := provider()
	if err == nil && dst == nil {
		err = surface.ErrUnavailable
	}
	if err != nil {
		l.logger.Warn("particle backdrop disabled", zap.Error(err))
		return
	}

	l.surface = dst
	l.state = Running
	l.populate(l.viewport.Size())
	l.detach = l.viewport.OnResize(l.resize)

	l.logger.Info("particle loop started",
		zap.Int("count", l.opts.Count),
		zap.Int64("seed", l.rng.Seed()))
	l.tick()
}

// Stop cancels the pending tick and detaches from the viewport. No tick runs
// after Stop returns, including one that was already queued.
func (l *Loop) Stop() {
	if l.state == Stopped {
		return
	}
	wasRunning := l.state == Running
	l.state = Stopped

	if l.queued {
		l.scheduler.Cancel(l.pending)
		l.queued = false
	}
	if l.detach != nil {
		l.detach()
		l.detach = nil
	}
	l.field = nil

	if wasRunning {
		l.logger.Info("particle loop stopped", zap.Uint64("ticks", l.stats.Ticks))
	}
}

// State returns the lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Stats returns the counters so far.
func (l *Loop) Stats() Stats {
	return l.stats
}

// Snapshot returns a copy of the current field, or nil when not running.
func (l *Loop) Snapshot() *particle.Field {
	if l.field == nil {
		return nil
	}
	return &particle.Field{
		Bounds:    l.field.Bounds,
		Particles: append([]particle.Particle(nil), l.field.Particles...),
	}
}

func (l *Loop) populate(b particle.Bounds) {
	l.field = particle.Populate(l.rng, b, l.opts.Count, l.opts.Ranges)
	l.stats.Populations++
}

func (l *Loop) resize(b particle.Bounds) {
	if l.state != Running {
		return
	}
	l.populate(b)
	l.logger.Debug("particle field repopulated",
		zap.Float64("width", b.Width),
		zap.Float64("height", b.Height))
}

func (l *Loop) tick() {
	l.queued = false
	if l.state != Running {
		return
	}

	field := l.field
	palette := l.opts.Palettes.For(l.theme.Current())
	dot := palette.Ink.WithAlpha(l.opts.ParticleAlpha)

	l.surface.Clear()
	for i := range field.Particles {
		p := particle.Step(field.Particles[i], field.Bounds)
		field.Particles[i] = p
		l.surface.FillCircle(p.X, p.Y, p.Radius, dot)
	}
	l.stats.Connections = l.opts.Connections.Draw(l.surface, field.Particles, palette.Ink)
	l.stats.Ticks++

	l.pending = l.scheduler.Schedule(l.tick)
	l.queued = true
}
