package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/olivierh59500/particle-backdrop/internal/host"
	"github.com/olivierh59500/particle-backdrop/internal/theme"
)

var (
	themeFile string
	showHUD   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the backdrop window",
	Long: `Opens a resizable window showing the backdrop.

Keys: T cycles classic -> neon -> light, H toggles the overlay, Esc quits.
With --theme-file the theme also follows the content of that file, so
another program can switch it by writing "light", "neon" or "classic".`,
	RunE: runWindow,
}

func init() {
	runCmd.Flags().StringVar(&themeFile, "theme-file", "", "file whose content selects the theme")
	runCmd.Flags().BoolVar(&showHUD, "hud", false, "show the debug overlay")
}

func runWindow(cmd *cobra.Command, args []string) error {
	if showHUD {
		cfg.Window.HUD = true
	}
	themes := theme.NewSwitch(cfg.InitialTheme())

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	if themeFile != "" {
		w, err := theme.NewWatcher(themeFile, themes, logger)
		if err != nil {
			return err
		}
		g.Go(func() error { return w.Run(gctx) })
	}

	// ebiten must own the main goroutine.
	runErr := host.Run(gctx, cfg, themes, logger)
	cancel()
	if err := g.Wait(); err != nil {
		return err
	}
	return runErr
}
