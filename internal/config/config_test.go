package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivierh59500/particle-backdrop/internal/loop"
	"github.com/olivierh59500/particle-backdrop/internal/theme"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 80, cfg.Particles.Count)
	assert.Equal(t, theme.Neon, cfg.InitialTheme())

	opts, err := cfg.LoopOptions()
	require.NoError(t, err)
	if diff := cmp.Diff(loop.DefaultOptions(), opts); diff != "" {
		t.Fatalf("default options differ (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backdrop.yaml")
	content := `
particles:
  count: 120
links:
  max_distance: 140
palettes:
  readable:
    ink: "#112233"
theme: light
seed: 9
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Particles.Count)
	assert.Equal(t, 0.25, cfg.Particles.VelocityRange)
	assert.Equal(t, 140.0, cfg.Links.MaxDistance)
	assert.Equal(t, 0.1, cfg.Links.BaseAlpha)
	assert.Equal(t, theme.Light, cfg.InitialTheme())

	opts, err := cfg.LoopOptions()
	require.NoError(t, err)
	assert.Equal(t, int64(9), opts.Seed)
	assert.Equal(t, uint8(0x11), opts.Palettes.Readable.Ink.R)
	assert.Equal(t, theme.DefaultPalettes.Readable.Background, opts.Palettes.Readable.Background)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.Particles.Count = 33
	cfg.Theme = "classic"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("particles: [1, 2"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("links:\n  max_distance: 0\n"), 0644))
	_, err = Load(invalid)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative count", func(c *Config) { c.Particles.Count = -1 }},
		{"negative velocity", func(c *Config) { c.Particles.VelocityRange = -0.1 }},
		{"inverted radius", func(c *Config) { c.Particles.RadiusMin, c.Particles.RadiusMax = 3, 1 }},
		{"particle alpha", func(c *Config) { c.Particles.Alpha = 1.5 }},
		{"max distance", func(c *Config) { c.Links.MaxDistance = -5 }},
		{"base alpha", func(c *Config) { c.Links.BaseAlpha = -0.1 }},
		{"line width", func(c *Config) { c.Links.Width = 0 }},
		{"window", func(c *Config) { c.Window.Height = 0 }},
		{"tps", func(c *Config) { c.Window.TPS = 0 }},
		{"theme", func(c *Config) { c.Theme = "sepia" }},
		{"ink", func(c *Config) { c.Palettes.Default.Ink = "white" }},
		{"background", func(c *Config) { c.Palettes.Readable.Background = "#12" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestZeroCountIsAllowed(t *testing.T) {
	cfg := Default()
	cfg.Particles.Count = 0
	assert.NoError(t, cfg.Validate())
}
