package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivierh59500/particle-backdrop/internal/particle"
	"github.com/olivierh59500/particle-backdrop/internal/surface"
)

var white = surface.RGB{R: 255, G: 255, B: 255}

func TestAlpha(t *testing.T) {
	c := DefaultConnections()

	a, ok := c.Alpha(0)
	require.True(t, ok)
	assert.InDelta(t, 0.1, a, 1e-12)

	a, ok = c.Alpha(50)
	require.True(t, ok)
	assert.InDelta(t, 0.05, a, 1e-12)

	a, ok = c.Alpha(math.Nextafter(100, 0))
	require.True(t, ok)
	assert.InDelta(t, 0, a, 1e-12)

	for _, d := range []float64{100, 150, math.Inf(1), math.NaN()} {
		_, ok = c.Alpha(d)
		assert.False(t, ok, "distance %v", d)
	}
}

func TestDrawNearPair(t *testing.T) {
	rec := surface.NewRecorder()
	ps := []particle.Particle{{X: 0, Y: 0}, {X: 30, Y: 40}}

	n := DefaultConnections().Draw(rec, ps, white)

	require.Equal(t, 1, n)
	require.Len(t, rec.Lines, 1)
	line := rec.Lines[0]
	assert.Equal(t, surface.Line{X0: 0, Y0: 0, X1: 30, Y1: 40, Width: 1, Color: line.Color}, line)
	assert.Equal(t, white, line.Color.RGB)
	assert.InDelta(t, 0.05, line.Color.Alpha, 1e-12)
}

func TestDrawFarPair(t *testing.T) {
	rec := surface.NewRecorder()
	ps := []particle.Particle{{X: 0, Y: 0}, {X: 90, Y: 120}}

	assert.Zero(t, DefaultConnections().Draw(rec, ps, white))
	assert.Empty(t, rec.Lines)
}

func TestDrawEveryQualifyingPairOnce(t *testing.T) {
	rec := surface.NewRecorder()
	// Three points on a line 60 apart: (0,1) and (1,2) connect, (0,2) is 120 away.
	ps := []particle.Particle{{X: 0, Y: 10}, {X: 60, Y: 10}, {X: 120, Y: 10}}
	slate := surface.RGB{R: 100, G: 116, B: 139}

	n := DefaultConnections().Draw(rec, ps, slate)

	require.Equal(t, 2, n)
	for _, l := range rec.Lines {
		assert.Equal(t, slate, l.Color.RGB)
		assert.InDelta(t, 0.04, l.Color.Alpha, 1e-12)
		assert.Less(t, l.X0, l.X1)
	}
}

func TestDrawCustomSettings(t *testing.T) {
	rec := surface.NewRecorder()
	c := Connections{MaxDistance: 10, BaseAlpha: 0.5, LineWidth: 2}
	ps := []particle.Particle{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 50, Y: 0}}

	require.Equal(t, 1, c.Draw(rec, ps, white))
	assert.Equal(t, 2.0, rec.Lines[0].Width)
	assert.InDelta(t, 0.25, rec.Lines[0].Color.Alpha, 1e-12)
}
