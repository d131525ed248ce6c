package sim

import (
	"math"

	"github.com/vovakirdan/arena-dash/internal/config"
	"github.com/vovakirdan/arena-dash/internal/core"
)

// newPlayer returns a player at the spawn point with full lives.
func newPlayer(cfg config.ArenaConfig) Player {
	return Player{
		Pos:      core.V(cfg.Arena.Width/2, cfg.Arena.MinY()+cfg.Player.SpawnOffset),
		Radius:   cfg.Player.Radius,
		AngleDeg: 90,
		Lives:    cfg.Player.MaxLives,
	}
}

// startRound resets the player, the target and the countdown and enters Play.
// Placed objects are kept.
func (s *State) startRound(cfg config.ArenaConfig) {
	s.Player = newPlayer(cfg)
	s.Target = newTarget(cfg)
	s.RoundStart = s.Now
	s.TimeLeft = cfg.Round.TimeSeconds
	s.Phase = PhasePlay
}

// tickRound runs one Play-phase step: countdown, shield expiry, movement,
// pickups and the win check, in that order.
func (s *State) tickRound(in Intent, dt float64, cfg config.ArenaConfig, events []Event) []Event {
	elapsed := s.Now - s.RoundStart
	s.TimeLeft = math.Max(0, cfg.Round.TimeSeconds-elapsed)
	if s.TimeLeft <= 0 {
		s.Phase = PhaseLose
		return append(events, Event{Type: EventLose, At: s.Now})
	}

	events = s.expireShield(events)

	events = s.resolveMovement(in, dt, cfg, events)
	if s.Phase != PhasePlay {
		return events
	}

	events = s.resolvePickups(cfg, events)

	if s.reachedTarget() {
		s.Phase = PhaseWin
		events = append(events, Event{Type: EventWin, At: s.Now})
	}
	return events
}
