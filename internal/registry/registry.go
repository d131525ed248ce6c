// Package registry maps game IDs to factories and display metadata.
// The arena registers its plain mode and one entry per built-in layout
// from init, so the CLI and SSH server can start any of them by ID.
package registry

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/arena-dash/internal/core"
)

// Game is the core interface that all games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "arena", "arena_gauntlet").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Arena Dash").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and whenever the platform wants a fresh game.
	// The RuntimeConfig provides screen dimensions and the tick rate.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Up, Place, Pause, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Resizer is implemented by games that can adapt to a new screen size
// without losing their state. Games without it are Reset on resize.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered game as shown by the list command and
// the scoreboard tabs.
type GameInfo struct {
	ID      string
	Title   string
	Layout  string // Layout the round starts from, empty for a blank arena
	Objects int    // Objects the layout places before the round
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

// validID matches IDs that are safe as CLI arguments and score keys.
var validID = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game to the registry, usually from an init function.
// Panics on a malformed or duplicate ID, or a nil factory.
func Register(info GameInfo, f Factory) {
	if !validID.MatchString(info.ID) {
		panic(fmt.Sprintf("registry: invalid game id %q", info.ID))
	}
	if f == nil {
		panic(fmt.Sprintf("registry: nil factory for %q", info.ID))
	}
	if info.Title == "" {
		info.Title = info.ID
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a new game by its ID. The factory must build a game
// that reports the same ID, since scores are keyed by it.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g := e.factory()
	if g == nil {
		return nil, fmt.Errorf("registry: factory for %q returned nil", id)
	}
	if g.ID() != id {
		return nil, fmt.Errorf("registry: factory for %q built game %q", id, g.ID())
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
