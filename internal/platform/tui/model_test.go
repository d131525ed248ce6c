package tui

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arena-dash/internal/core"
	"github.com/vovakirdan/arena-dash/internal/games/arena"
	"github.com/vovakirdan/arena-dash/internal/storage"
)

// plainGame records every frame it is stepped with.
type plainGame struct {
	frames []core.InputFrame
	state  core.GameState
	resets int
}

func (g *plainGame) ID() string    { return "stub" }
func (g *plainGame) Title() string { return "Stub" }

func (g *plainGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *plainGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, core.InputFrame{
		Actions: maps.Clone(in.Actions),
		Presses: slices.Clone(in.Presses),
		Clicks:  slices.Clone(in.Clicks),
	})
	return core.StepResult{State: g.state}
}

func (g *plainGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub game") }

func (g *plainGame) State() core.GameState { return g.state }

func (g *plainGame) last() core.InputFrame { return g.frames[len(g.frames)-1] }

type resizableGame struct {
	*plainGame
	w, h int
}

func (g *resizableGame) Resize(w, h int) { g.w, g.h = w, h }

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func newStubModel(t *testing.T) (Model, *plainGame) {
	t.Helper()
	g := &plainGame{}
	return NewModel(g, nil, core.DefaultConfig(), nil), g
}

func TestNewModelResetsGame(t *testing.T) {
	_, g := newStubModel(t)
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
}

func TestFirstPressHoldsDirection(t *testing.T) {
	m, g := newStubModel(t)
	m, _ = send(t, m, keyRune('w'))

	for i := 1; i <= holdFirstTicks+1; i++ {
		m, _ = send(t, m, TickMsg{})
		want := i <= holdFirstTicks
		if got := g.last().Has(core.ActionUp); got != want {
			t.Fatalf("tick %d: up held = %v, want %v", i, got, want)
		}
	}
}

func TestRepeatRefreshesHold(t *testing.T) {
	m, g := newStubModel(t)
	m, _ = send(t, m, keyRune('d'))
	for range 25 {
		m, _ = send(t, m, TickMsg{})
	}

	// 5 ticks remain, the repeat tops it up to holdRepeatTicks
	m, _ = send(t, m, keyRune('d'))
	for i := 1; i <= holdRepeatTicks+1; i++ {
		m, _ = send(t, m, TickMsg{})
		want := i <= holdRepeatTicks
		if got := g.last().Has(core.ActionRight); got != want {
			t.Fatalf("tick %d after repeat: right held = %v, want %v", i, got, want)
		}
	}
}

func TestOppositeDirectionReleases(t *testing.T) {
	m, g := newStubModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, TickMsg{})

	f := g.last()
	if f.Has(core.ActionUp) {
		t.Error("up should be released by down")
	}
	if !f.Has(core.ActionDown) {
		t.Error("down should be held")
	}
}

func TestPressesReachOneFrame(t *testing.T) {
	m, g := newStubModel(t)
	m, _ = send(t, m, keyRune('a'))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(t, m, TickMsg{})

	if n := g.last().PressCount(core.ActionLeft); n != 2 {
		t.Errorf("PressCount(left) = %d, want 2", n)
	}

	m, _ = send(t, m, TickMsg{})
	if n := g.last().PressCount(core.ActionLeft); n != 0 {
		t.Errorf("PressCount(left) on next frame = %d, want 0", n)
	}
	if !g.last().Has(core.ActionLeft) {
		t.Error("left should still be held")
	}
}

func TestActionKeysLastOneTick(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"restart", keyRune('r'), core.ActionRestart},
		{"pause", keyRune('p'), core.ActionPause},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPlace},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPlace},
		{"pick shield", keyRune('4'), core.ActionPickShield},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, g := newStubModel(t)
			m, _ = send(t, m, tt.msg)
			m, _ = send(t, m, TickMsg{})
			if !g.last().Has(tt.want) {
				t.Fatalf("%v not set on first tick", tt.want)
			}
			_, _ = send(t, m, TickMsg{})
			if g.last().Has(tt.want) {
				t.Errorf("%v still set on second tick", tt.want)
			}
		})
	}
}

func TestQuitAndBack(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		wantQuit bool
		wantBack bool
	}{
		{"q", keyRune('q'), true, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, true, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, false, true},
		{"b", keyRune('b'), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newStubModel(t)
			m, cmd := send(t, m, tt.msg)
			if cmd == nil {
				t.Fatal("expected a quit command")
			}
			if m.IsQuitting() != tt.wantQuit || m.BackRequested() != tt.wantBack {
				t.Errorf("quit=%v back=%v, want %v %v", m.IsQuitting(), m.BackRequested(), tt.wantQuit, tt.wantBack)
			}
			if m.View() != "" {
				t.Error("View should be empty after leaving")
			}
		})
	}
}

func TestMouseLeftPressBecomesClick(t *testing.T) {
	m, g := newStubModel(t)
	m, _ = send(t, m, tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, tea.MouseMsg{X: 4, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	_, _ = send(t, m, TickMsg{})

	clicks := g.last().Clicks
	if len(clicks) != 1 || clicks[0] != (core.Click{X: 12, Y: 7}) {
		t.Errorf("clicks = %v, want [{12 7}]", clicks)
	}
}

func TestResize(t *testing.T) {
	t.Run("resizer keeps state", func(t *testing.T) {
		g := &resizableGame{plainGame: &plainGame{}}
		m := NewModel(g, nil, core.DefaultConfig(), nil)
		_, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
		if g.w != 100 || g.h != 30 {
			t.Errorf("Resize got %dx%d, want 100x30", g.w, g.h)
		}
		if g.resets != 1 {
			t.Errorf("resets = %d, want 1", g.resets)
		}
	})

	t.Run("plain game is reset", func(t *testing.T) {
		m, g := newStubModel(t)
		_, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
		if g.resets != 2 {
			t.Errorf("resets = %d, want 2", g.resets)
		}
	})
}

func TestRoundEndReleasesHolds(t *testing.T) {
	m, g := newStubModel(t)
	m, _ = send(t, m, keyRune('w'))
	g.state.GameOver = true
	m, _ = send(t, m, TickMsg{})
	if !g.last().Has(core.ActionUp) {
		t.Fatal("up should be held on the ending tick")
	}
	_, _ = send(t, m, TickMsg{})
	if g.last().Has(core.ActionUp) {
		t.Error("holds should be released after the round ends")
	}
}

func TestRoundRecordedOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	g := &plainGame{}
	m := NewModel(g, store, core.DefaultConfig(), nil)

	g.state = core.GameState{GameOver: true, Won: true, Score: 7, Lives: 2, TimeLeft: 12, Objects: 5}
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, TickMsg{})

	id := m.LastRoundID()
	if id == "" {
		t.Fatal("no round recorded")
	}
	r, err := store.RoundByID(id)
	if err != nil || r == nil {
		t.Fatalf("RoundByID() = %v, %v", r, err)
	}
	want := storage.RoundRecord{Outcome: storage.OutcomeWin, Score: 7, Lives: 2, TimeLeft: 12, Objects: 5}
	if r.Outcome != want.Outcome || r.Score != want.Score || r.Lives != want.Lives ||
		r.TimeLeft != want.TimeLeft || r.Objects != want.Objects || r.GameID != "stub" {
		t.Errorf("round = %+v", *r)
	}

	// A new round that is lost with no points stores a round but no score
	g.state = core.GameState{}
	m, _ = send(t, m, TickMsg{})
	g.state = core.GameState{GameOver: true, Lives: 0}
	m, _ = send(t, m, TickMsg{})

	rounds, err := store.RecentRounds("stub", 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("rounds = %d, want 2", len(rounds))
	}
	if rounds[0].Outcome != storage.OutcomeLose || rounds[0].RoundID != m.LastRoundID() {
		t.Errorf("newest round = %+v", rounds[0])
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 7 {
		t.Errorf("scores = %+v, want one score of 7", scores)
	}
}

func TestViewRendersGame(t *testing.T) {
	m, _ := newStubModel(t)
	if !strings.Contains(m.View(), "stub game") {
		t.Errorf("View() = %q", m.View())
	}
}

func TestArenaRoundThroughModel(t *testing.T) {
	g := arena.New()
	m := NewModel(g, nil, core.DefaultConfig(), nil)
	if m.State().Phase != "edit" {
		t.Fatalf("phase = %q, want edit", m.State().Phase)
	}

	m, _ = send(t, m, keyRune('r'))
	m, _ = send(t, m, TickMsg{})
	if m.State().Phase != "play" {
		t.Fatalf("phase = %q, want play", m.State().Phase)
	}

	startY := g.Snapshot().Player.Pos.Y
	m, _ = send(t, m, keyRune('w'))
	for range 5 {
		m, _ = send(t, m, TickMsg{})
	}
	if y := g.Snapshot().Player.Pos.Y; y <= startY {
		t.Errorf("player y = %v, want above %v", y, startY)
	}

	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("HUD missing from view")
	}
}
