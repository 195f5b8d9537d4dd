package tui

import (
	"fmt"
	"math"

	"github.com/birddash/birddash/internal/core"
	"github.com/birddash/birddash/internal/engine"
)

// Visual characters for rendering
const (
	pipeChar  = '█'
	birdChar  = '▶'
	bodyChar  = '●'
	ghostChar = '◌'
)

// drawWorld projects the real-valued viewport onto the cell buffer and
// draws pipes, ghost, bird, and HUD.
func drawWorld(dst *core.Screen, st engine.State, world engine.Config, ghostY float64, ghostVisible bool) {
	dst.Clear()

	// Both horizontal edges are collision boundaries; make them visible.
	dst.DrawHLine(0, 0, dst.Width(), '─')
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), '─')

	sx := float64(dst.Width()) / world.ViewportW
	sy := float64(dst.Height()) / world.ViewportH
	viewport := core.NewRectF(0, 0, world.ViewportW, world.ViewportH)

	// Pipes: top segment from the upper edge down to the gap, bottom
	// segment from the gap to the lower edge. Degenerate (NaN) pipes have
	// no drawable segments, and freshly spawned pipes sit just past the
	// right edge; both are skipped.
	for _, p := range st.Pipes {
		gapTop := p.GapY - p.GapHeight/2
		gapBot := p.GapY + p.GapHeight/2
		if math.IsNaN(gapTop) || math.IsNaN(gapBot) {
			continue
		}
		if !viewport.Intersects(core.NewRectF(p.X, 0, world.PipeWidth, world.ViewportH)) {
			continue
		}

		x1 := int(math.Round(p.X * sx))
		x2 := int(math.Round((p.X + world.PipeWidth) * sx))
		yTop := int(math.Round(gapTop * sy))
		yBot := int(math.Round(gapBot * sy))

		for x := x1; x < x2; x++ {
			dst.DrawVLine(x, 0, yTop, pipeChar, core.ColorGreen)
			dst.DrawVLine(x, yBot, dst.Height()-yBot, pipeChar, core.ColorGreen)
		}
	}

	// Ghost is drawn first so the live bird wins overlapping cells.
	// A recording from a different world config may leave the viewport.
	if ghostVisible && viewport.Contains(world.BirdX(), ghostY) {
		gx := int(math.Round(world.BirdX() * sx))
		gy := int(math.Round(ghostY * sy))
		dst.SetColor(gx, gy, ghostChar, core.ColorGray)
	}

	drawBird(dst, st.Bird, world, sx, sy)

	hud := fmt.Sprintf(" Score: %d   Lives: %d   %.1fs ", st.Score, st.Lives, st.Time/1000)
	dst.DrawTextColor(2, 0, hud, core.ColorBrightWhite)
}

// drawBird draws the bird sprite scaled to the cell grid. The stored Y is
// the sprite's vertical center.
func drawBird(dst *core.Screen, b engine.Bird, world engine.Config, sx, sy float64) {
	bw := core.Max(1, int(math.Round(world.BirdW*sx)))
	bh := core.Max(1, int(math.Round(world.BirdH*sy)))
	bx := int(math.Round(world.BirdX() * sx))
	by := int(math.Round(b.Y*sy)) - bh/2

	for dy := 0; dy < bh; dy++ {
		for dx := 0; dx < bw; dx++ {
			r := bodyChar
			if dx == bw-1 && dy == bh/2 {
				r = birdChar
			}
			dst.SetColor(bx+dx, by+dy, r, core.ColorBrightYellow)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
