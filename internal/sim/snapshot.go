package sim

import (
	"math"
	"slices"

	"github.com/vovakirdan/arena-dash/internal/core"
)

// PlayerView is the read-only part of the player exposed to renderers.
type PlayerView struct {
	Pos        core.Vec2
	Radius     float64
	AngleDeg   float64
	Lives      int
	Score      int
	Shielded   bool
	Boosted    bool
	ShieldLeft float64 // Seconds, 0 if inactive
	SpeedLeft  float64 // Seconds, 0 if inactive

	ShieldUntil float64
	SpeedUntil  float64
	NextHitAt   float64
}

// Snapshot is a copy of the simulation state for rendering, replay checks
// and persistence. Mutating it has no effect on the engine.
type Snapshot struct {
	Tick     uint64
	Now      float64
	Phase    Phase
	TimeLeft float64

	Player       PlayerView
	TargetPos    core.Vec2
	TargetRadius float64
	TargetT      float64
	TargetDir    float64
	TargetPath   [4]core.Vec2 // Bezier control points

	Obstacles    []Object
	Collectibles []Object
	Powerups     []Object
}

// Snapshot returns the current state as a Snapshot.
func (e *Engine) Snapshot() Snapshot {
	s := &e.state
	p := s.Player
	return Snapshot{
		Tick:     s.Tick,
		Now:      s.Now,
		Phase:    s.Phase,
		TimeLeft: s.TimeLeft,

		Player: PlayerView{
			Pos:        p.Pos,
			Radius:     p.Radius,
			AngleDeg:   p.AngleDeg,
			Lives:      p.Lives,
			Score:      p.Score,
			Shielded:   p.Shielded,
			Boosted:    s.Now < p.SpeedUntil,
			ShieldLeft: remaining(p.Shielded, p.ShieldUntil, s.Now),
			SpeedLeft:  remaining(true, p.SpeedUntil, s.Now),

			ShieldUntil: p.ShieldUntil,
			SpeedUntil:  p.SpeedUntil,
			NextHitAt:   p.NextHitAt,
		},
		TargetPos:    s.Target.Pos,
		TargetRadius: s.Target.Radius,
		TargetT:      s.Target.T,
		TargetDir:    s.Target.Dir,
		TargetPath:   [4]core.Vec2{s.Target.P0, s.Target.P1, s.Target.P2, s.Target.P3},

		Obstacles:    slices.Clone(s.Obstacles),
		Collectibles: slices.Clone(s.Collectibles),
		Powerups:     slices.Clone(s.Powerups),
	}
}

func remaining(active bool, until, now float64) float64 {
	if !active || until <= now {
		return 0
	}
	return until - now
}

// SecondsLeft returns the countdown rounded up to whole seconds for display.
func (snap Snapshot) SecondsLeft() int {
	return int(math.Ceil(snap.TimeLeft))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(f float64) {
		h = h*31 + math.Float64bits(f)
	}

	mix(snap.Now)
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	mix(snap.TimeLeft)
	mix(snap.Player.Pos.X)
	mix(snap.Player.Pos.Y)
	mix(snap.Player.AngleDeg)
	h = h*31 + uint64(snap.Player.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Player.Score) //#nosec G115 -- hash computation
	if snap.Player.Shielded {
		h = h*31 + 1
	}
	mix(snap.Player.ShieldUntil)
	mix(snap.Player.SpeedUntil)
	mix(snap.Player.NextHitAt)
	mix(snap.TargetT)
	mix(snap.TargetDir)

	for _, objs := range [][]Object{snap.Obstacles, snap.Collectibles, snap.Powerups} {
		h = h*31 + uint64(len(objs)) //#nosec G115 -- hash computation
		for _, o := range objs {
			mix(o.Pos.X)
			mix(o.Pos.Y)
			h = h*31 + uint64(o.Kind) //#nosec G115 -- hash computation
		}
	}
	return h
}
