package surface

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"
)

// ErrUnavailable reports that no drawing context could be obtained.
var ErrUnavailable = errors.New("surface: drawing context unavailable")

// RGB is an opaque base color.
type RGB struct {
	R, G, B uint8
}

// ParseHex reads "#rrggbb" (the leading '#' is optional).
func ParseHex(s string) (RGB, error) {
	var c RGB
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return c, fmt.Errorf("surface: invalid color %q", s)
	}
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("surface: invalid color %q: %w", s, err)
	}
	return c, nil
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WithAlpha pairs c with an opacity in [0,1].
func (c RGB) WithAlpha(a float64) Color {
	return Color{RGB: c, Alpha: a}
}

// NRGBA returns c fully opaque.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Color is a base color plus a fractional alpha. Alpha stays a float so
// faded lines keep their exact opacity until they reach the backend.
type Color struct {
	RGB
	Alpha float64
}

// NRGBA converts c to a non-premultiplied 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	a := math.Round(min(max(c.Alpha, 0), 1) * 0xff)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

// Surface is the 2-D drawing context the backdrop renders into.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c Color)
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
}

// Provider hands out the drawing context at startup.
type Provider func() (Surface, error)
