package theme

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/olivierh59500/particle-backdrop/internal/surface"
)

// ErrUnknownTheme is returned by Parse for names it does not know.
var ErrUnknownTheme = errors.New("theme: unknown theme")

// Theme is the page theme chosen by the user.
type Theme int32

const (
	Classic Theme = iota
	Neon
	Light
)

var names = [...]string{
	Classic: "classic",
	Neon:    "neon",
	Light:   "light",
}

func (t Theme) String() string {
	if t < 0 || int(t) >= len(names) {
		return fmt.Sprintf("theme(%d)", int32(t))
	}
	return names[t]
}

// Parse maps a theme name (case-insensitive) to its Theme.
func Parse(s string) (Theme, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == name {
			return Theme(i), nil
		}
	}
	return Classic, fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// Next is the theme the toggle switches to: classic, neon, light, classic...
func (t Theme) Next() Theme {
	switch t {
	case Classic:
		return Neon
	case Neon:
		return Light
	default:
		return Classic
	}
}

// Readable reports whether t is the light theme that needs dark ink.
func (t Theme) Readable() bool {
	return t == Light
}

// Signal exposes the current theme. It is owned by whoever toggles themes;
// readers only sample it.
type Signal interface {
	Current() Theme
}

// Switch is a Signal that external controllers can change from any goroutine.
type Switch struct {
	v atomic.Int32
}

var _ Signal = (*Switch)(nil)

func NewSwitch(t Theme) *Switch {
	s := &Switch{}
	s.v.Store(int32(t))
	return s
}

func (s *Switch) Current() Theme {
	return Theme(s.v.Load())
}

// Set changes the theme and reports whether it differs from the previous one.
func (s *Switch) Set(t Theme) bool {
	return Theme(s.v.Swap(int32(t))) != t
}

// Cycle moves to the next theme and returns it.
func (s *Switch) Cycle() Theme {
	for {
		cur := s.v.Load()
		next := Theme(cur).Next()
		if s.v.CompareAndSwap(cur, int32(next)) {
			return next
		}
	}
}

// Palette is the set of colors used under one theme.
type Palette struct {
	Ink        surface.RGB // Particles and connections
	Background surface.RGB
}

// Palettes holds one palette for the readable theme and one for the rest.
type Palettes struct {
	Readable Palette
	Default  Palette
}

// DefaultPalettes uses slate ink on a light page and white ink on a dark one.
var DefaultPalettes = Palettes{
	Readable: Palette{
		Ink:        surface.RGB{R: 100, G: 116, B: 139},
		Background: surface.RGB{R: 248, G: 250, B: 252},
	},
	Default: Palette{
		Ink:        surface.RGB{R: 255, G: 255, B: 255},
		Background: surface.RGB{R: 10, G: 10, B: 15},
	},
}

// For picks the palette for t.
func (p Palettes) For(t Theme) Palette {
	if t.Readable() {
		return p.Readable
	}
	return p.Default
}
