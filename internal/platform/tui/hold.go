package tui

import "github.com/vovakirdan/arena-dash/internal/core"

// Terminals report key presses and auto-repeats but never releases.
// A direction stays held for a while after each press so steering feels
// continuous between repeats and stops shortly after the key is let go.
const (
	holdFirstTicks  = 30 // Covers the initial auto-repeat delay
	holdRepeatTicks = 8  // Covers the gap between auto-repeats
)

// holdState tracks the remaining hold time per direction, in ticks.
type holdState struct {
	left map[core.Action]int
}

func newHoldState() holdState {
	return holdState{left: make(map[core.Action]int, 4)}
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// press registers a direction key press.
func (h *holdState) press(a core.Action) {
	delete(h.left, opposite(a))
	if h.left[a] > 0 {
		h.left[a] = max(h.left[a], holdRepeatTicks)
		return
	}
	h.left[a] = holdFirstTicks
}

// apply marks every held direction on the frame.
func (h *holdState) apply(f *core.InputFrame) {
	for a, n := range h.left {
		if n > 0 {
			f.Set(a)
		}
	}
}

// decay counts one tick off every held direction.
func (h *holdState) decay() {
	for a, n := range h.left {
		if n <= 1 {
			delete(h.left, a)
			continue
		}
		h.left[a] = n - 1
	}
}

// release drops every held direction.
func (h *holdState) release() {
	clear(h.left)
}

// held reports whether a is currently held.
func (h *holdState) held(a core.Action) bool {
	return h.left[a] > 0
}
