package render

import (
	"math"

	"github.com/olivierh59500/particle-backdrop/internal/particle"
	"github.com/olivierh59500/particle-backdrop/internal/surface"
)

// Connection defaults.
const (
	DefaultMaxDistance = 100.0
	DefaultBaseAlpha   = 0.1
	DefaultLineWidth   = 1.0
)

// Connections draws faded segments between particles closer than
// MaxDistance. Every pair is tested, which is fine for the few hundred
// particles a backdrop carries.
type Connections struct {
	MaxDistance float64
	BaseAlpha   float64
	LineWidth   float64
}

// DefaultConnections returns the stock settings.
func DefaultConnections() Connections {
	return Connections{
		MaxDistance: DefaultMaxDistance,
		BaseAlpha:   DefaultBaseAlpha,
		LineWidth:   DefaultLineWidth,
	}
}

// Alpha returns the opacity of a segment of length d and whether it should
// be drawn at all. Opacity falls linearly from BaseAlpha at d=0 to 0 at
// MaxDistance.
func (c Connections) Alpha(d float64) (float64, bool) {
	if !(d < c.MaxDistance) {
		return 0, false
	}
	return c.BaseAlpha * (1 - d/c.MaxDistance), true
}

// Draw strokes every qualifying pair onto dst in the given base color and
// returns the number of segments drawn.
func (c Connections) Draw(dst surface.Surface, ps []particle.Particle, base surface.RGB) int {
	drawn := 0
	for i := range ps {
		a := &ps[i]
		// j starts after i: the self pair would only be a zero-length segment.
		for j := i + 1; j < len(ps); j++ {
			b := &ps[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			alpha, ok := c.Alpha(d)
			if !ok {
				continue
			}
			dst.StrokeLine(a.X, a.Y, b.X, b.Y, c.LineWidth, base.WithAlpha(alpha))
			drawn++
		}
	}
	return drawn
}
