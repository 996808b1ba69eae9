package surface

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#64748b")
	require.NoError(t, err)
	assert.Equal(t, RGB{100, 116, 139}, c)
	assert.Equal(t, "#64748b", c.Hex())

	c, err = ParseHex("FFFFFF")
	require.NoError(t, err)
	assert.Equal(t, RGB{255, 255, 255}, c)

	for _, bad := range []string{"", "#fff", "#gggggg", "#1234567"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestColorNRGBA(t *testing.T) {
	white := RGB{255, 255, 255}
	assert.Equal(t, color.NRGBA{255, 255, 255, 51}, white.WithAlpha(0.2).NRGBA())
	assert.Equal(t, color.NRGBA{255, 255, 255, 0}, white.WithAlpha(-1).NRGBA())
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, white.WithAlpha(3).NRGBA())
	assert.Equal(t, color.NRGBA{1, 2, 3, 255}, RGB{1, 2, 3}.NRGBA())
}

func TestRecorderKeepsCurrentFrame(t *testing.T) {
	r := NewRecorder()
	c := RGB{1, 2, 3}.WithAlpha(0.5)

	r.Clear()
	r.FillCircle(1, 2, 3, c)
	r.StrokeLine(0, 0, 1, 1, 1, c)
	r.StrokeLine(0, 0, 2, 2, 1, c)
	require.Len(t, r.Circles, 1)
	require.Len(t, r.Lines, 2)

	r.Clear()
	assert.Empty(t, r.Circles)
	assert.Empty(t, r.Lines)
	assert.Equal(t, 2, r.Clears)
	assert.Equal(t, 1, r.TotalCircles)
	assert.Equal(t, 2, r.TotalLines)
}
