package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/olivierh59500/particle-backdrop/internal/loop"
	"github.com/olivierh59500/particle-backdrop/internal/particle"
	"github.com/olivierh59500/particle-backdrop/internal/render"
	"github.com/olivierh59500/particle-backdrop/internal/surface"
	"github.com/olivierh59500/particle-backdrop/internal/theme"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all backdrop settings.
type Config struct {
	Particles ParticleConfig `yaml:"particles"`
	Links     LinkConfig     `yaml:"links"`
	Palettes  PaletteConfig  `yaml:"palettes"`
	Window    WindowConfig   `yaml:"window"`

	Theme string `yaml:"theme"` // classic, neon, light
	Seed  int64  `yaml:"seed"`  // 0 means random
}

// ParticleConfig configures the particle field.
type ParticleConfig struct {
	Count         int     `yaml:"count"`
	VelocityRange float64 `yaml:"velocity_range"` // per axis, symmetric
	RadiusMin     float64 `yaml:"radius_min"`
	RadiusMax     float64 `yaml:"radius_max"`
	Alpha         float64 `yaml:"alpha"`
}

// LinkConfig configures the connective lines.
type LinkConfig struct {
	MaxDistance float64 `yaml:"max_distance"`
	BaseAlpha   float64 `yaml:"base_alpha"`
	Width       float64 `yaml:"width"`
}

// PaletteConfig holds "#rrggbb" colors per theme family.
type PaletteConfig struct {
	Readable PaletteEntry `yaml:"readable"` // light theme
	Default  PaletteEntry `yaml:"default"`  // everything else
}

// PaletteEntry is one palette.
type PaletteEntry struct {
	Ink        string `yaml:"ink"`
	Background string `yaml:"background"`
}

// WindowConfig configures the desktop host.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
	HUD    bool   `yaml:"hud"`
}

// Default returns the stock configuration.
func Default() *Config {
	opts := loop.DefaultOptions()
	return &Config{
		Particles: ParticleConfig{
			Count:         opts.Count,
			VelocityRange: opts.Ranges.Velocity,
			RadiusMin:     opts.Ranges.RadiusMin,
			RadiusMax:     opts.Ranges.RadiusMax,
			Alpha:         opts.ParticleAlpha,
		},
		Links: LinkConfig{
			MaxDistance: opts.Connections.MaxDistance,
			BaseAlpha:   opts.Connections.BaseAlpha,
			Width:       opts.Connections.LineWidth,
		},
		Palettes: PaletteConfig{
			Readable: entryOf(theme.DefaultPalettes.Readable),
			Default:  entryOf(theme.DefaultPalettes.Default),
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "Particle Backdrop",
			TPS:    60,
		},
		Theme: theme.Neon.String(),
	}
}

func entryOf(p theme.Palette) PaletteEntry {
	return PaletteEntry{Ink: p.Ink.Hex(), Background: p.Background.Hex()}
}

// Load reads a YAML file over the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	switch {
	case c.Particles.Count < 0:
		return fmt.Errorf("%w: particles.count must be >= 0, got %d", ErrInvalid, c.Particles.Count)
	case c.Particles.VelocityRange < 0:
		return fmt.Errorf("%w: particles.velocity_range must be >= 0", ErrInvalid)
	case c.Particles.RadiusMin < 0 || c.Particles.RadiusMax < c.Particles.RadiusMin:
		return fmt.Errorf("%w: particles radius range [%g, %g) is empty or negative",
			ErrInvalid, c.Particles.RadiusMin, c.Particles.RadiusMax)
	case c.Particles.Alpha < 0 || c.Particles.Alpha > 1:
		return fmt.Errorf("%w: particles.alpha must be in [0,1]", ErrInvalid)
	case c.Links.MaxDistance <= 0:
		return fmt.Errorf("%w: links.max_distance must be > 0", ErrInvalid)
	case c.Links.BaseAlpha < 0 || c.Links.BaseAlpha > 1:
		return fmt.Errorf("%w: links.base_alpha must be in [0,1]", ErrInvalid)
	case c.Links.Width <= 0:
		return fmt.Errorf("%w: links.width must be > 0", ErrInvalid)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: window.tps must be > 0", ErrInvalid)
	}
	if _, err := theme.Parse(c.Theme); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.ThemePalettes(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// InitialTheme returns the configured starting theme.
func (c *Config) InitialTheme() theme.Theme {
	t, err := theme.Parse(c.Theme)
	if err != nil {
		return theme.Neon
	}
	return t
}

// ThemePalettes parses the configured colors.
func (c *Config) ThemePalettes() (theme.Palettes, error) {
	readable, err := c.Palettes.Readable.palette()
	if err != nil {
		return theme.Palettes{}, fmt.Errorf("palettes.readable: %w", err)
	}
	def, err := c.Palettes.Default.palette()
	if err != nil {
		return theme.Palettes{}, fmt.Errorf("palettes.default: %w", err)
	}
	return theme.Palettes{Readable: readable, Default: def}, nil
}

func (e PaletteEntry) palette() (theme.Palette, error) {
	ink, err := surface.ParseHex(e.Ink)
	if err != nil {
		return theme.Palette{}, err
	}
	bg, err := surface.ParseHex(e.Background)
	if err != nil {
		return theme.Palette{}, err
	}
	return theme.Palette{Ink: ink, Background: bg}, nil
}

// LoopOptions converts the config into render loop options.
func (c *Config) LoopOptions() (loop.Options, error) {
	palettes, err := c.ThemePalettes()
	if err != nil {
		return loop.Options{}, err
	}
	return loop.Options{
		Count: c.Particles.Count,
		Ranges: particle.Ranges{
			Velocity:  c.Particles.VelocityRange,
			RadiusMin: c.Particles.RadiusMin,
			RadiusMax: c.Particles.RadiusMax,
		},
		Connections: render.Connections{
			MaxDistance: c.Links.MaxDistance,
			BaseAlpha:   c.Links.BaseAlpha,
			LineWidth:   c.Links.Width,
		},
		ParticleAlpha: c.Particles.Alpha,
		Palettes:      palettes,
		Seed:          c.Seed,
	}, nil
}
