package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arena-dash/internal/core"
)

// KeyMap holds the key bindings used while a game is running.
// It doubles as a help.KeyMap so the bindings can be listed on screen.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Place       key.Binding
	Obstacle    key.Binding
	Collectible key.Binding
	Speed       key.Binding
	Shield      key.Binding
	Restart     key.Binding
	Pause       key.Binding
	Back        key.Binding
	Quit        key.Binding
	Screenshot  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Place: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "place"),
		),
		Obstacle: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "obstacle"),
		),
		Collectible: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "collectible"),
		),
		Speed: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "speed"),
		),
		Shield: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "shield"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "start round"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Place, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Obstacle, k.Collectible, k.Speed, k.Shield, k.Place},
		{k.Restart, k.Pause, k.Back, k.Quit},
	}
}

// Action translates a key message to a game action.
// Quit, Back and Screenshot are handled by the platform but still reported.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Place):
		return core.ActionPlace
	case key.Matches(msg, k.Obstacle):
		return core.ActionPickObstacle
	case key.Matches(msg, k.Collectible):
		return core.ActionPickCollectible
	case key.Matches(msg, k.Speed):
		return core.ActionPickSpeed
	case key.Matches(msg, k.Shield):
		return core.ActionPickShield
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// isDirection reports whether a steers the ship.
func isDirection(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}
