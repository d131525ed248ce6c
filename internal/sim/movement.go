package sim

import (
	"math"

	"github.com/vovakirdan/arena-dash/internal/config"
	"github.com/vovakirdan/arena-dash/internal/core"
)

// Intent is the set of direction keys held during a tick.
type Intent struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// currentSpeed returns the boosted speed while a speed power-up is active.
func (s *State) currentSpeed(cfg config.ArenaConfig) float64 {
	if s.Now < s.Player.SpeedUntil {
		return cfg.Player.BoostSpeed
	}
	return cfg.Player.Speed
}

// velocity sums the held directions. Opposing keys cancel and diagonals are
// not normalized, so diagonal movement is faster than axial movement.
// World y points up.
func (s *State) velocity(in Intent, cfg config.ArenaConfig) core.Vec2 {
	spd := s.currentSpeed(cfg)
	var v core.Vec2
	if in.Up {
		v.Y += spd
	}
	if in.Down {
		v.Y -= spd
	}
	if in.Left {
		v.X -= spd
	}
	if in.Right {
		v.X += spd
	}
	return v
}

// clampToArena keeps a circle of radius r fully inside the playable area.
func clampToArena(p core.Vec2, r float64, a config.ArenaLayout) core.Vec2 {
	return core.Vec2{
		X: core.Clamp(p.X, r, a.Width-r),
		Y: core.Clamp(p.Y, a.MinY()+r, a.MaxY()-r),
	}
}

// blockedAt reports whether the player circle at p overlaps any obstacle.
// Obstacles are squares with half-width equal to their radius.
func (s *State) blockedAt(p core.Vec2) bool {
	for _, o := range s.Obstacles {
		if core.CircleOverlapsSquare(p, s.Player.Radius, o.Pos, o.Radius) {
			return true
		}
	}
	return false
}

// resolveMovement applies one tick of player movement. A move into an
// obstacle is discarded and costs a life unless shielded or inside the hit
// cooldown window.
func (s *State) resolveMovement(in Intent, dt float64, cfg config.ArenaConfig, events []Event) []Event {
	v := s.velocity(in, cfg)
	if !v.IsZero() {
		s.Player.AngleDeg = math.Atan2(v.Y, v.X) * 180 / math.Pi
	}

	candidate := clampToArena(s.Player.Pos.Add(v.Scale(dt)), s.Player.Radius, cfg.Arena)

	if !s.blockedAt(candidate) {
		s.Player.Pos = candidate
		return events
	}

	if s.Player.Shielded || s.Now < s.Player.NextHitAt {
		return append(events, Event{Type: EventBlocked, At: s.Now})
	}

	s.Player.Lives = max(0, s.Player.Lives-1)
	s.Player.NextHitAt = s.Now + cfg.Player.HitCooldown
	events = append(events, Event{Type: EventHit, At: s.Now})

	if s.Player.Lives == 0 {
		s.Phase = PhaseLose
		events = append(events, Event{Type: EventLose, At: s.Now})
	}
	return events
}

// resolvePickups consumes every collectible and power-up touching the player.
func (s *State) resolvePickups(cfg config.ArenaConfig, events []Event) []Event {
	for _, b := range []bucket{bucketCollectibles, bucketPowerups} {
		objs := s.collection(b)
		kept := (*objs)[:0]
		for _, o := range *objs {
			rule := kindRules[o.Kind]
			if rule.onPickup == nil || !core.CirclesIntersect(s.Player.Pos, s.Player.Radius, o.Pos, o.Radius) {
				kept = append(kept, o)
				continue
			}
			rule.onPickup(s, cfg)
			events = append(events, Event{Type: EventPickup, Kind: o.Kind, At: s.Now})
		}
		*objs = kept
	}
	return events
}

// expireShield drops the shield once its window has passed.
func (s *State) expireShield(events []Event) []Event {
	if s.Player.Shielded && s.Now >= s.Player.ShieldUntil {
		s.Player.Shielded = false
		events = append(events, Event{Type: EventShieldDown, At: s.Now})
	}
	return events
}

// reachedTarget reports whether the player touches the target's cached position.
func (s *State) reachedTarget() bool {
	return core.CirclesIntersect(s.Player.Pos, s.Player.Radius, s.Target.Pos, s.Target.Radius)
}
