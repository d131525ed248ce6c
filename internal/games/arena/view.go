package arena

import (
	"math"

	"github.com/vovakirdan/arena-dash/internal/config"
	"github.com/vovakirdan/arena-dash/internal/core"
	"github.com/vovakirdan/arena-dash/internal/sim"
)

// Screen layout rows
const (
	hudRows     = 2 // Status line and notice line
	paletteRows = 2 // Palette and key help
	minScreenW  = 40
	minScreenH  = 14
)

// viewport maps world coordinates (y up) onto terminal cells (y down).
type viewport struct {
	frame core.Rect // Border box of the arena
	field core.Rect // Cells inside the border
	arena config.ArenaLayout
}

func newViewport(screenW, screenH int, arena config.ArenaLayout) viewport {
	frame := core.NewRect(0, hudRows, screenW, screenH-hudRows-paletteRows)
	field := core.NewRect(frame.X+1, frame.Y+1, max(frame.W-2, 1), max(frame.H-2, 1))
	return viewport{frame: frame, field: field, arena: arena}
}

// toWorld returns the world point at the center of a cell, and whether the
// cell lies inside the arena field.
func (v viewport) toWorld(cx, cy int) (core.Vec2, bool) {
	if !v.field.Contains(cx, cy) {
		return core.Vec2{}, false
	}
	fx := (float64(cx-v.field.X) + 0.5) / float64(v.field.W)
	fy := (float64(cy-v.field.Y) + 0.5) / float64(v.field.H)
	return core.V(
		fx*v.arena.Width,
		v.arena.MaxY()-fy*(v.arena.MaxY()-v.arena.MinY()),
	), true
}

// toCell returns the field cell containing a world point.
func (v viewport) toCell(p core.Vec2) (int, int) {
	fx := p.X / v.arena.Width
	fy := (v.arena.MaxY() - p.Y) / (v.arena.MaxY() - v.arena.MinY())
	cx := v.field.X + int(math.Floor(fx*float64(v.field.W)))
	cy := v.field.Y + int(math.Floor(fy*float64(v.field.H)))
	return core.ClampInt(cx, v.field.X, v.field.Right()-1), core.ClampInt(cy, v.field.Y, v.field.Bottom()-1)
}

// cellSize returns the world extent of one cell.
func (v viewport) cellSize() (w, h float64) {
	return v.arena.Width / float64(v.field.W), (v.arena.MaxY() - v.arena.MinY()) / float64(v.field.H)
}

// paletteSpan is the clickable extent of one palette entry.
type paletteSpan struct {
	x0, x1 int // Inclusive start, exclusive end
	kind   sim.Kind
	label  string
}

var paletteNames = [sim.KindCount]string{
	sim.KindObstacle:    "Obstacle",
	sim.KindCollectible: "Collectible",
	sim.KindSpeed:       "Speed",
	sim.KindShield:      "Shield",
}

// paletteSpans lays out the palette entries left to right.
func paletteSpans() []paletteSpan {
	spans := make([]paletteSpan, 0, sim.KindCount)
	x := 1
	for k := range sim.KindCount {
		label := " " + string(rune('1'+int(k))) + " " + string(k.Glyph()) + " " + paletteNames[k] + " "
		w := len([]rune(label))
		spans = append(spans, paletteSpan{x0: x, x1: x + w, kind: k, label: label})
		x += w + 2
	}
	return spans
}

// paletteRow returns the screen row of the palette.
func paletteRow(screenH int) int {
	return screenH - paletteRows
}
