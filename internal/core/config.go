package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to derive the fixed tick length.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickSeconds returns the length of one tick in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended (won or lost)
	Won      bool // Whether the round ended in a win
	Paused   bool // Whether the game is paused

	Phase    string // Round phase name, empty for games without phases
	Lives    int    // Lives left
	TimeLeft int    // Countdown in whole seconds
	Objects  int    // Objects currently on the field
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
