package sim

import "github.com/vovakirdan/arena-dash/internal/core"

// CanPlace reports whether an object of radius r may be placed at p.
// It fails if p is closer than r+minSep to any placed object, the player or
// the target's current position. It does not look at the phase.
func (s *State) CanPlace(p core.Vec2, r, minSep float64) bool {
	limit := (r + minSep) * (r + minSep)

	for _, objs := range [][]Object{s.Obstacles, s.Collectibles, s.Powerups} {
		for _, o := range objs {
			if core.DistSq(p, o.Pos) < limit {
				return false
			}
		}
	}

	if core.DistSq(p, s.Player.Pos) < limit {
		return false
	}
	if core.DistSq(p, s.Target.Pos) < limit {
		return false
	}
	return true
}
