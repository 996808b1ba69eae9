package host

import (
	"context"
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/olivierh59500/particle-backdrop/internal/config"
	"github.com/olivierh59500/particle-backdrop/internal/frame"
	"github.com/olivierh59500/particle-backdrop/internal/loop"
	"github.com/olivierh59500/particle-backdrop/internal/surface"
	"github.com/olivierh59500/particle-backdrop/internal/theme"
	"github.com/olivierh59500/particle-backdrop/internal/viewport"
)

// Game adapts the particle loop to ebiten: Layout reports the window size,
// Draw is the "before next paint" moment where scheduled ticks run.
type Game struct {
	ctx      context.Context
	queue    *frame.Queue
	screen   *Screen
	monitor  *viewport.Monitor
	themes   *theme.Switch
	palettes theme.Palettes
	loop     *loop.Loop
	hud      *hud
	started  bool
	logger   *zap.Logger
}

var _ ebiten.Game = (*Game)(nil)

// NewGame builds the host for cfg. themes is shared with any other theme
// controller (for example a theme file watcher).
func NewGame(ctx context.Context, cfg *config.Config, themes *theme.Switch, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts, err := cfg.LoopOptions()
	if err != nil {
		return nil, err
	}

	g := &Game{
		ctx:      ctx,
		queue:    frame.NewQueue(),
		screen:   NewScreen(),
		monitor:  viewport.NewMonitor(float64(cfg.Window.Width), float64(cfg.Window.Height), logger),
		themes:   themes,
		palettes: opts.Palettes,
		logger:   logger,
	}
	g.screen.Background = g.background
	g.loop = loop.New(opts, g.queue, g.monitor, themes, logger)
	if cfg.Window.HUD {
		g.hud = newHUD()
	}
	return g, nil
}

func (g *Game) background() color.Color {
	return g.palettes.For(g.themes.Current()).Background.NRGBA()
}

// Update handles input. T cycles the theme, H toggles the overlay, Esc or Q
// quits.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		t := g.themes.Cycle()
		g.logger.Info("theme changed", zap.Stringer("theme", t), zap.String("source", "keyboard"))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		if g.hud == nil {
			g.hud = newHUD()
		} else {
			g.hud = nil
		}
	}
	return nil
}

// Draw binds the frame's image and runs whatever tick is due. The first
// frame starts the loop, which ticks immediately.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Bind(screen)
	if !g.started {
		g.started = true
		g.loop.Start(g.provide)
	} else {
		g.queue.Flush()
	}
	if g.hud != nil {
		g.hud.draw(screen, g.themes.Current(), g.loop.Stats(), g.palettes.For(g.themes.Current()).Ink)
	}
	g.screen.Bind(nil)
}

func (g *Game) provide() (surface.Surface, error) {
	if g.screen.Target() == nil {
		return nil, surface.ErrUnavailable
	}
	return g.screen, nil
}

// Layout follows the window: the drawing surface is always as large as the
// outside size, and any change is reported to the viewport monitor.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.monitor.Update(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Close tears the loop down.
func (g *Game) Close() {
	g.loop.Stop()
}

// Run opens the window and blocks until it is closed or ctx is done.
func Run(ctx context.Context, cfg *config.Config, themes *theme.Switch, logger *zap.Logger) error {
	g, err := NewGame(ctx, cfg, themes, logger)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
