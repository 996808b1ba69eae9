package host

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/particle-backdrop/internal/surface"
)

// Screen draws onto whatever ebiten image is bound for the current frame.
// Calls made while nothing is bound are dropped.
type Screen struct {
	target *ebiten.Image

	// Background, when set, is what Clear fills with. Otherwise the image
	// is cleared to transparent.
	Background func() color.Color
}

var _ surface.Surface = (*Screen)(nil)

func NewScreen() *Screen {
	return &Screen{}
}

// Bind points the screen at the frame's image.
func (s *Screen) Bind(img *ebiten.Image) {
	s.target = img
}

// Target returns the bound image, or nil.
func (s *Screen) Target() *ebiten.Image {
	return s.target
}

func (s *Screen) Clear() {
	if s.target == nil {
		return
	}
	if s.Background != nil {
		s.target.Fill(s.Background())
		return
	}
	s.target.Clear()
}

func (s *Screen) FillCircle(x, y, r float64, c surface.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledCircle(s.target, float32(x), float32(y), float32(r), c.NRGBA(), true)
}

func (s *Screen) StrokeLine(x0, y0, x1, y1, width float64, c surface.Color) {
	if s.target == nil {
		return
	}
	vector.StrokeLine(s.target, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c.NRGBA(), true)
}
