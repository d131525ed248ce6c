package sim

import "github.com/vovakirdan/arena-dash/internal/core"

// Phase is the top-level round state.
type Phase int

const (
	PhaseEdit Phase = iota // Building the level, initial phase
	PhasePlay              // Round in progress
	PhaseWin               // Player reached the target
	PhaseLose              // Out of lives or out of time
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseEdit:
		return "edit"
	case PhasePlay:
		return "play"
	case PhaseWin:
		return "win"
	case PhaseLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round has ended.
func (p Phase) Terminal() bool {
	return p == PhaseWin || p == PhaseLose
}

// Object is a placed obstacle, collectible or power-up.
type Object struct {
	Pos    core.Vec2
	Radius float64
	Kind   Kind
}

// Player is the ship controlled by the user.
type Player struct {
	Pos         core.Vec2
	Radius      float64
	AngleDeg    float64 // Facing, 0 = east, counterclockwise
	Lives       int
	Score       int
	Shielded    bool
	ShieldUntil float64 // Absolute sim time
	SpeedUntil  float64 // Absolute sim time
	NextHitAt   float64 // Earliest sim time obstacle contact may cost a life
}

// Target is the moving goal. It ping-pongs along a cubic Bezier path.
type Target struct {
	Radius float64
	P0     core.Vec2
	P1     core.Vec2
	P2     core.Vec2
	P3     core.Vec2
	T      float64   // Path parameter in [0, 1]
	Dir    float64   // +1 or -1
	Pos    core.Vec2 // Evaluated at T once per tick
}

// State is the complete simulation aggregate. It is owned by an Engine and
// mutated only by its tick.
type State struct {
	Phase      Phase
	Tick       uint64
	Now        float64 // Accumulated sim time in seconds
	RoundStart float64
	TimeLeft   float64

	Player Player
	Target Target

	Obstacles    []Object
	Collectibles []Object
	Powerups     []Object
}

// collection returns the slice that owns objects in bucket b.
func (s *State) collection(b bucket) *[]Object {
	switch b {
	case bucketObstacles:
		return &s.Obstacles
	case bucketCollectibles:
		return &s.Collectibles
	default:
		return &s.Powerups
	}
}

// ObjectCount returns the number of placed objects across all collections.
func (s *State) ObjectCount() int {
	return len(s.Obstacles) + len(s.Collectibles) + len(s.Powerups)
}
