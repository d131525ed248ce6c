// Package arena implements the arena dash game for the terminal platform.
// The player builds a level out of obstacles, collectibles and power-ups,
// then steers a ship through it to catch a moving target before time runs out.
package arena

import (
	"fmt"

	"github.com/vovakirdan/arena-dash/internal/config"
	"github.com/vovakirdan/arena-dash/internal/core"
	"github.com/vovakirdan/arena-dash/internal/layout"
	"github.com/vovakirdan/arena-dash/internal/registry"
	"github.com/vovakirdan/arena-dash/internal/sim"
)

// noticeTicks is how long a notice stays on screen at 60 ticks per second.
const noticeTicks = 90

// configPath stores the custom config path set via CLI
var configPath string

// layoutPath stores a layout file set via CLI, applied to the plain arena
var layoutPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLayoutFile sets a layout file to apply on every reset of the plain arena.
func SetLayoutFile(path string) {
	layoutPath = path
}

// Game adapts the simulation to the platform's fixed-tick game interface.
type Game struct {
	id     string
	title  string
	layout *layout.Layout

	engine  *sim.Engine
	cfg     config.ArenaConfig
	runtime core.RuntimeConfig
	view    viewport

	selected       sim.Kind
	cursorX        int // Cell column inside the field
	cursorY        int // Cell row inside the field
	paused         bool
	notice         string
	noticeLeft     int
	screenTooSmall bool
}

// New creates an empty arena.
func New() *Game {
	return &Game{id: "arena", title: "Arena Dash"}
}

// NewWithLayout creates an arena pre-filled with a layout.
func NewWithLayout(l layout.Layout) *Game {
	return &Game{
		id:     "arena_" + l.ID,
		title:  "Arena Dash: " + l.Name,
		layout: &l,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset creates a fresh engine in the edit phase and applies the layout.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.notice, g.noticeLeft = "", 0

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultArenaConfig()
		g.setNotice("config: " + err.Error())
	}
	g.cfg = cfg
	g.engine = sim.New(cfg)
	g.selected = sim.KindObstacle
	g.paused = false

	g.Resize(runtime.ScreenW, runtime.ScreenH)
	g.cursorX = g.view.field.W / 2
	g.cursorY = g.view.field.H / 2

	g.applyLayout()
}

func (g *Game) applyLayout() {
	lay := g.layout
	if lay == nil && layoutPath != "" {
		loaded, err := layout.NewLoader("").LoadFile(layoutPath)
		if err != nil {
			g.setNotice(err.Error())
			return
		}
		lay = &loaded
	}
	if lay == nil {
		return
	}

	res := layout.Apply(g.engine, *lay)
	if len(res.Rejected) > 0 {
		g.setNotice(fmt.Sprintf("%s: %d objects did not fit", lay.Name, len(res.Rejected)))
	}
}

// Resize recomputes the viewport without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < minScreenW || h < minScreenH
	g.view = newViewport(w, h, g.cfg.Arena)
	g.cursorX = core.ClampInt(g.cursorX, 0, g.view.field.W-1)
	g.cursorY = core.ClampInt(g.cursorY, 0, g.view.field.H-1)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.noticeLeft > 0 {
		g.noticeLeft--
	}

	if in.Has(core.ActionPause) && !g.engine.Phase().Terminal() {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) {
		g.engine.StartRound()
		g.paused = false
		g.notice = ""
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.handlePalette(in)
	g.handleClicks(in.Clicks)
	if g.engine.Phase() == sim.PhaseEdit {
		g.handleCursor(in)
	}

	intent := sim.Intent{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}
	for _, ev := range g.engine.Advance(g.runtime.TickSeconds(), intent) {
		g.noticeFor(ev)
	}

	return core.StepResult{State: g.State()}
}

var pickActions = [sim.KindCount]core.Action{
	sim.KindObstacle:    core.ActionPickObstacle,
	sim.KindCollectible: core.ActionPickCollectible,
	sim.KindSpeed:       core.ActionPickSpeed,
	sim.KindShield:      core.ActionPickShield,
}

func (g *Game) handlePalette(in core.InputFrame) {
	for k, a := range pickActions {
		if in.Has(a) {
			g.selected = sim.Kind(k)
		}
	}
}

// handleClicks selects palette entries and places objects at clicked cells.
func (g *Game) handleClicks(clicks []core.Click) {
	for _, c := range clicks {
		if c.Y == paletteRow(g.runtime.ScreenH) {
			for _, span := range paletteSpans() {
				if c.X >= span.x0 && c.X < span.x1 {
					g.selected = span.kind
				}
			}
			continue
		}

		if g.engine.Phase() != sim.PhaseEdit || !g.view.field.Contains(c.X, c.Y) {
			continue
		}
		g.cursorX = c.X - g.view.field.X
		g.cursorY = c.Y - g.view.field.Y
		g.placeAtCursor()
	}
}

// handleCursor moves the placement cursor one cell per key press.
func (g *Game) handleCursor(in core.InputFrame) {
	g.cursorX += in.PressCount(core.ActionRight) - in.PressCount(core.ActionLeft)
	g.cursorY += in.PressCount(core.ActionDown) - in.PressCount(core.ActionUp)
	g.cursorX = core.ClampInt(g.cursorX, 0, g.view.field.W-1)
	g.cursorY = core.ClampInt(g.cursorY, 0, g.view.field.H-1)

	if in.Has(core.ActionPlace) {
		g.placeAtCursor()
	}
}

// cursorWorld returns the world point under the cursor.
func (g *Game) cursorWorld() core.Vec2 {
	p, _ := g.view.toWorld(g.view.field.X+g.cursorX, g.view.field.Y+g.cursorY)
	return p
}

func (g *Game) placeAtCursor() {
	p := g.cursorWorld()
	if !g.engine.Place(p.X, p.Y, g.selected) {
		g.setNotice("Too close to something else")
	}
}

func (g *Game) noticeFor(ev sim.Event) {
	switch ev.Type {
	case sim.EventHit:
		g.setNotice("Ouch! Lost a life")
	case sim.EventPickup:
		switch ev.Kind {
		case sim.KindCollectible:
			g.setNotice(fmt.Sprintf("+%d points", g.cfg.Scoring.CollectiblePoints))
		case sim.KindSpeed:
			g.setNotice("Speed boost!")
		case sim.KindShield:
			g.setNotice("Shield up!")
		}
	case sim.EventShieldDown:
		g.setNotice("Shield down")
	}
}

func (g *Game) setNotice(msg string) {
	g.notice = msg
	g.noticeLeft = noticeTicks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.engine.Snapshot()
	phase := snap.Phase
	return core.GameState{
		Score:    snap.Player.Score,
		GameOver: phase.Terminal(),
		Won:      phase == sim.PhaseWin,
		Paused:   g.paused,
		Phase:    phase.String(),
		Lives:    snap.Player.Lives,
		TimeLeft: snap.SecondsLeft(),
		Objects:  g.engine.ObjectCount(),
	}
}

// Snapshot exposes the simulation state, mainly for tests and replays.
func (g *Game) Snapshot() sim.Snapshot {
	return g.engine.Snapshot()
}

// Register the plain arena and one variant per built-in layout
func init() {
	registry.Register(registry.GameInfo{ID: "arena", Title: "Arena Dash"}, func() registry.Game {
		return New()
	})

	layouts, err := layout.Builtin()
	if err != nil {
		return
	}
	for _, l := range layouts {
		info := registry.GameInfo{
			ID:      "arena_" + l.ID,
			Title:   "Arena Dash: " + l.Name,
			Layout:  l.ID,
			Objects: len(l.Items),
		}
		registry.Register(info, func() registry.Game {
			return NewWithLayout(l)
		})
	}
}
