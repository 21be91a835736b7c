package dodger

import (
	"math"
	"strings"

	"github.com/vovakirdan/ferris-dodger/internal/core"
)

// Visual characters for rendering
const (
	WallChar   = '░'
	FerrisChar = '█'
	BugChar    = '▓'
)

// hudRows is the number of screen rows above the field.
const hudRows = 1

// Render draws the current game state to the screen.
// The field is stretched to fill everything below the HUD row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, w := range g.Walls() {
		g.drawBox(dst, w.Box, WallChar, core.ColorGray)
	}
	for _, b := range g.Bugs() {
		g.drawBox(dst, b.Box(), BugChar, core.ColorGreen)
	}
	g.drawBox(dst, g.player.Box(), FerrisChar, core.ColorOrange)

	hud := g.HUD()
	dst.DrawTextColor(1, 0, hud.Score, core.ColorBrightWhite)
	if hud.FinalVisible {
		drawCenteredMessage(dst, strings.Split(hud.Final, "\n"))
	}
}

// project maps a world point to fractional screen coordinates. Points
// outside the field map outside the screen and are clipped by the Screen.
func (g *Game) project(dst *core.Screen, p core.Vec2) (float64, float64) {
	fw, fh := g.cfg.Field.Width, g.cfg.Field.Height
	rows := float64(dst.Height() - hudRows)
	col := (p.X + fw/2) / fw * float64(dst.Width())
	row := (fh/2 - p.Y) / fh * rows
	return col, hudRows + row
}

// drawBox fills every cell a world box touches, at least one cell.
func (g *Game) drawBox(dst *core.Screen, b core.Box, r rune, c core.Color) {
	lo, hi := b.Min(), b.Max()
	fx0, fy0 := g.project(dst, core.Vec2{X: lo.X, Y: hi.Y})
	fx1, fy1 := g.project(dst, core.Vec2{X: hi.X, Y: lo.Y})
	x0, y0 := int(math.Floor(fx0)), int(math.Floor(fy0))
	x1, y1 := int(math.Ceil(fx1)), int(math.Ceil(fy1))
	dst.DrawRect(core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1)), r, c)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColor(x, boxY+1+i, l, core.ColorBrightRed)
	}
}
