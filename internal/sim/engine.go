// Package sim implements the arena simulation: placement during the edit
// phase, player movement and collisions, timed power-ups, the moving target
// and the round state machine. It never reads the wall clock; time advances
// only through Advance.
package sim

import (
	"math"

	"github.com/vovakirdan/arena-dash/internal/config"
	"github.com/vovakirdan/arena-dash/internal/core"
)

// Engine owns one simulation state and the tuning it runs with.
type Engine struct {
	cfg   config.ArenaConfig
	state State
}

// New creates an engine in the edit phase. The player waits at the spawn
// point and the target is already moving along its path.
func New(cfg config.ArenaConfig) *Engine {
	e := &Engine{cfg: cfg}
	e.state = State{
		Phase:    PhaseEdit,
		TimeLeft: cfg.Round.TimeSeconds,
		Player:   newPlayer(cfg),
		Target:   newTarget(cfg),
	}
	return e
}

// Config returns the tuning the engine was created with.
func (e *Engine) Config() config.ArenaConfig {
	return e.cfg
}

// Phase returns the current round phase.
func (e *Engine) Phase() Phase {
	return e.state.Phase
}

// Now returns the accumulated sim time.
func (e *Engine) Now() float64 {
	return e.state.Now
}

// Advance moves the simulation forward by dt seconds. The target moves in
// every phase; the round logic runs only during Play. Negative, NaN and
// infinite dt count as zero. It returns the events produced by this tick.
func (e *Engine) Advance(dt float64, in Intent) []Event {
	if !(dt > 0) || math.IsInf(dt, 1) {
		dt = 0
	}
	s := &e.state
	s.Tick++
	s.Now += dt

	s.Target.Advance(dt, e.cfg.Target.Speed)
	s.Target.Pos = s.Target.Eval()

	if s.Phase != PhasePlay {
		return nil
	}
	return s.tickRound(in, dt, e.cfg, nil)
}

// StartRound begins a new round from any phase, keeping placed objects.
func (e *Engine) StartRound() Event {
	e.state.startRound(e.cfg)
	return Event{Type: EventRoundStart, At: e.state.Now}
}

// ObjectCount returns how many objects have been placed.
func (e *Engine) ObjectCount() int {
	return e.state.ObjectCount()
}

// InArena reports whether p lies inside the playable area, edges included.
func (e *Engine) InArena(p core.Vec2) bool {
	a := e.cfg.Arena
	return p.X >= 0 && p.X <= a.Width && p.Y >= a.MinY() && p.Y <= a.MaxY()
}

// CanPlace reports whether an object of kind k fits at (x, y) right now.
func (e *Engine) CanPlace(x, y float64, k Kind) bool {
	if !k.Valid() {
		return false
	}
	return e.state.CanPlace(core.V(x, y), k.Radius(e.cfg), e.cfg.Placement.MinSeparation)
}

// Place adds an object of kind k at (x, y). It is a no-op returning false
// outside the edit phase, outside the arena, or when the spot is too crowded.
func (e *Engine) Place(x, y float64, k Kind) bool {
	if e.state.Phase != PhaseEdit || !k.Valid() {
		return false
	}
	p := core.V(x, y)
	if !e.InArena(p) || !e.CanPlace(x, y, k) {
		return false
	}

	objs := e.state.collection(kindRules[k].bucket)
	*objs = append(*objs, Object{Pos: p, Radius: k.Radius(e.cfg), Kind: k})
	return true
}
