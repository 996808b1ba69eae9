package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/olivierh59500/particle-backdrop/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	count      int
	themeName  string
	seed       int64

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "particlebg",
	Short: "Drifting particle backdrop with proximity links",
	Long: `particlebg renders a slow particle field where nearby particles are
joined by faded lines. The field fills the window, is rebuilt whenever the
window is resized, and is recolored live when the theme changes.

Run without a subcommand to open the window.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("count") {
			cfg.Particles.Count = count
		}
		if flags.Changed("theme") {
			cfg.Theme = themeName
		}
		if flags.Changed("seed") {
			cfg.Seed = seed
		}
		return cfg.Validate()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWindow,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVarP(&configPath, "config", "c", "", "YAML config file")
	pf.IntVar(&count, "count", 80, "number of particles")
	pf.StringVar(&themeName, "theme", "neon", "initial theme: classic, neon or light")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = from clock)")

	rootCmd.AddCommand(runCmd, simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
