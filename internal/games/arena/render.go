package arena

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/arena-dash/internal/core"
	"github.com/vovakirdan/arena-dash/internal/sim"
)

// Visual characters for rendering
const (
	HeartFull   = '♥'
	HeartEmpty  = '♡'
	TargetChar  = '◉'
	PathChar    = '·'
	CursorChar  = '┼'
	ObstacleBox = '█'
)

// shipGlyphs are indexed by facing in 45 degree steps, counterclockwise from east.
var shipGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

var kindColors = [sim.KindCount]core.Color{
	sim.KindObstacle:    core.ColorGray,
	sim.KindCollectible: core.ColorYellow,
	sim.KindSpeed:       core.ColorBrightGreen,
	sim.KindShield:      core.ColorCyan,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Terminal too small (need %dx%d)", minScreenW, minScreenH), core.ColorRed)
		return
	}

	snap := g.engine.Snapshot()

	g.drawHUD(dst, &snap)
	dst.DrawBox(g.view.frame, core.ColorBlue)
	g.drawTargetPath(dst, &snap)

	for _, objs := range [][]sim.Object{snap.Obstacles, snap.Collectibles, snap.Powerups} {
		for _, o := range objs {
			g.drawObject(dst, o)
		}
	}

	tx, ty := g.view.toCell(snap.TargetPos)
	dst.SetColored(tx, ty, TargetChar, core.ColorBrightRed)

	g.drawShip(dst, &snap)

	if snap.Phase == sim.PhaseEdit {
		g.drawCursor(dst)
	}
	g.drawPalette(dst, &snap)

	switch {
	case snap.Phase == sim.PhaseWin:
		g.drawCenteredMessage(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  R to play again", snap.Player.Score), core.ColorBrightGreen)
	case snap.Phase == sim.PhaseLose:
		g.drawCenteredMessage(dst, "YOU LOSE", fmt.Sprintf("Final Score: %d  |  R to try again", snap.Player.Score), core.ColorBrightRed)
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorWhite)
	}
}

// drawHUD draws lives, score, countdown and active effects on the top rows.
func (g *Game) drawHUD(dst *core.Screen, snap *sim.Snapshot) {
	var hearts strings.Builder
	for i := range g.cfg.Player.MaxLives {
		if i < snap.Player.Lives {
			hearts.WriteRune(HeartFull)
		} else {
			hearts.WriteRune(HeartEmpty)
		}
	}
	dst.DrawTextColored(1, 0, hearts.String(), core.ColorRed)

	x := 2 + g.cfg.Player.MaxLives
	status := fmt.Sprintf("Score: %d  Time: %d", snap.Player.Score, snap.SecondsLeft())
	dst.DrawText(x, 0, status)
	x += len(status) + 2

	if snap.Player.Shielded {
		label := fmt.Sprintf("SHIELD %.1fs", snap.Player.ShieldLeft)
		dst.DrawTextColored(x, 0, label, kindColors[sim.KindShield])
		x += len(label) + 2
	}
	if snap.Player.Boosted {
		dst.DrawTextColored(x, 0, fmt.Sprintf("SPEED %.1fs", snap.Player.SpeedLeft), kindColors[sim.KindSpeed])
	}

	phase := strings.ToUpper(snap.Phase.String())
	dst.DrawTextColored(dst.Width()-len(phase)-1, 0, phase, core.ColorMagenta)

	switch {
	case g.noticeLeft > 0 && g.notice != "":
		dst.DrawTextColored(1, 1, g.notice, core.ColorOrange)
	case snap.Phase == sim.PhaseEdit:
		dst.DrawTextColored(1, 1, "Build your arena, then press R to start", core.ColorGray)
	}
}

// drawTargetPath samples the target's curve as faint dots.
func (g *Game) drawTargetPath(dst *core.Screen, snap *sim.Snapshot) {
	p := snap.TargetPath
	const samples = 48
	for i := range samples + 1 {
		pt := core.CubicBezier(float64(i)/samples, p[0], p[1], p[2], p[3])
		cx, cy := g.view.toCell(pt)
		dst.SetColored(cx, cy, PathChar, core.ColorGray)
	}
}

// drawObject draws obstacles as filled squares covering their footprint and
// items as a single glyph.
func (g *Game) drawObject(dst *core.Screen, o sim.Object) {
	color := kindColors[o.Kind]
	cx, cy := g.view.toCell(o.Pos)

	if o.Kind != sim.KindObstacle {
		dst.SetColored(cx, cy, o.Kind.Glyph(), color)
		return
	}

	cw, ch := g.view.cellSize()
	rx := int(math.Floor(o.Radius / cw))
	ry := int(math.Floor(o.Radius / ch))
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			if g.view.field.Contains(x, y) {
				dst.SetColored(x, y, ObstacleBox, color)
			}
		}
	}
}

func (g *Game) drawShip(dst *core.Screen, snap *sim.Snapshot) {
	p := snap.Player
	color := core.ColorWhite
	switch {
	case p.Shielded:
		color = core.ColorBrightBlue
	case p.Boosted:
		color = core.ColorBrightGreen
	}
	cx, cy := g.view.toCell(p.Pos)
	dst.SetColored(cx, cy, shipGlyph(p.AngleDeg), color)
}

// shipGlyph returns the arrow closest to the facing angle.
func shipGlyph(angleDeg float64) rune {
	idx := int(math.Round(angleDeg/45)) % 8
	if idx < 0 {
		idx += 8
	}
	return shipGlyphs[idx]
}

// drawCursor marks the placement cell, green where the selected kind fits.
func (g *Game) drawCursor(dst *core.Screen) {
	p := g.cursorWorld()
	color := core.ColorBrightRed
	if g.engine.CanPlace(p.X, p.Y, g.selected) {
		color = core.ColorBrightGreen
	}
	dst.SetColored(g.view.field.X+g.cursorX, g.view.field.Y+g.cursorY, CursorChar, color)
}

func (g *Game) drawPalette(dst *core.Screen, snap *sim.Snapshot) {
	row := paletteRow(dst.Height())
	for _, span := range paletteSpans() {
		color := kindColors[span.kind]
		label := span.label
		if span.kind == g.selected {
			dst.SetColored(span.x0-1, row, '[', core.ColorWhite)
			dst.SetColored(span.x1, row, ']', core.ColorWhite)
		}
		dst.DrawTextColored(span.x0, row, label, color)
	}

	help := "1-4 pick  arrows cursor  enter place  click place  r start  q quit"
	if snap.Phase != sim.PhaseEdit {
		help = "arrows steer  p pause  r restart  q quit"
	}
	dst.DrawTextColored(1, row+1, help, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextColored(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, c)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle)
}
