package host

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/olivierh59500/particle-backdrop/internal/loop"
	"github.com/olivierh59500/particle-backdrop/internal/surface"
	"github.com/olivierh59500/particle-backdrop/internal/theme"
)

// hud is the debug overlay in the top-left corner.
type hud struct {
	face text.Face
}

func newHUD() *hud {
	return &hud{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *hud) draw(screen *ebiten.Image, t theme.Theme, st loop.Stats, ink surface.RGB) {
	msg := fmt.Sprintf("theme: %s  links: %d  ticks: %d  fps: %.0f\nT: theme  H: overlay  Esc: quit",
		t, st.Connections, st.Ticks, ebiten.ActualFPS())

	op := &text.DrawOptions{}
	op.GeoM.Translate(12, 12)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(ink.WithAlpha(0.8).NRGBA())
	text.Draw(screen, msg, h.face, op)
}
