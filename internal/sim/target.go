package sim

import (
	"github.com/vovakirdan/arena-dash/internal/config"
	"github.com/vovakirdan/arena-dash/internal/core"
)

// newTarget derives the target path from the arena geometry.
// The path runs across the top band of the arena, swaying above and below a
// horizontal line just under the top HUD.
func newTarget(cfg config.ArenaConfig) Target {
	w := cfg.Arena.Width
	y := cfg.Arena.MaxY() - cfg.Target.Inset
	sway := cfg.Target.Sway
	m := cfg.Target.Margin

	t := Target{
		Radius: cfg.Target.Radius,
		P0:     core.V(m, y),
		P1:     core.V(w*0.3, y+sway),
		P2:     core.V(w*0.7, y-sway),
		P3:     core.V(w-m, y),
		T:      0,
		Dir:    1,
	}
	t.Pos = t.Eval()
	return t
}

// Eval returns the point on the path at the current parameter.
func (t *Target) Eval() core.Vec2 {
	return core.CubicBezier(t.T, t.P0, t.P1, t.P2, t.P3)
}

// Advance moves the path parameter by speed*dt, bouncing at both ends.
func (t *Target) Advance(dt, speed float64) {
	t.T += t.Dir * speed * dt
	if t.T > 1 {
		t.T = 1
		t.Dir = -1
	}
	if t.T < 0 {
		t.T = 0
		t.Dir = 1
	}
}
