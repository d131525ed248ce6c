package sim

// EventType identifies something that happened during a tick.
type EventType int

const (
	EventRoundStart EventType = iota
	EventHit                  // Lost a life to an obstacle
	EventBlocked              // Bumped an obstacle without damage
	EventPickup
	EventShieldDown
	EventWin
	EventLose
)

// String returns the name of the event type.
func (e EventType) String() string {
	switch e {
	case EventRoundStart:
		return "round_start"
	case EventHit:
		return "hit"
	case EventBlocked:
		return "blocked"
	case EventPickup:
		return "pickup"
	case EventShieldDown:
		return "shield_down"
	case EventWin:
		return "win"
	case EventLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Event records a notable state change.
type Event struct {
	Type EventType
	Kind Kind    // Object kind for pickup events
	At   float64 // Sim time
}
