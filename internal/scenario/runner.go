package scenario

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arena-dash/internal/config"
	"github.com/vovakirdan/arena-dash/internal/layout"
	"github.com/vovakirdan/arena-dash/internal/sim"
)

// PhaseChange records a phase transition during a run.
type PhaseChange struct {
	Tick  uint64
	At    float64
	Phase sim.Phase
}

// Result is the outcome of a scenario run.
type Result struct {
	Final    sim.Snapshot
	Ticks    int
	Phases   []PhaseChange
	Events   map[sim.EventType]int
	Rejected []layout.Item // Objects that could not be placed
}

// Runner executes scripts against fresh engines.
type Runner struct {
	cfg    config.ArenaConfig
	logger *log.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(cfg config.ArenaConfig, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{cfg: cfg, logger: logger}
}

// Run plays the script on a new engine and returns the final state.
func (r *Runner) Run(ctx context.Context, s Script) (Result, error) {
	e := sim.New(r.cfg)
	res := Result{Events: make(map[sim.EventType]int)}

	if s.Layout != "" {
		lay, err := layout.BuiltinByID(s.Layout)
		if err != nil {
			return res, err
		}
		res.Rejected = append(res.Rejected, layout.Apply(e, lay).Rejected...)
	}
	res.Rejected = append(res.Rejected, layout.Apply(e, s.items()).Rejected...)
	if len(res.Rejected) > 0 {
		r.logger.Warn("objects rejected", "scenario", s.Name, "count", len(res.Rejected))
	}

	last := e.Phase()
	record := func() {
		if p := e.Phase(); p != last {
			snap := e.Snapshot()
			res.Phases = append(res.Phases, PhaseChange{Tick: snap.Tick, At: snap.Now, Phase: p})
			r.logger.Debug("phase", "scenario", s.Name, "tick", snap.Tick, "phase", p)
			last = p
		}
	}

	if s.Start {
		res.Events[e.StartRound().Type]++
		record()
	}

	baseDT := s.DT
	if baseDT == 0 {
		baseDT = DefaultDT
	}

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		in, err := parseKeys(st.Keys)
		if err != nil {
			return res, fmt.Errorf("step %d: %w", i, err)
		}
		if st.Restart {
			res.Events[e.StartRound().Type]++
			record()
		}

		dt := baseDT
		if st.DT != nil {
			dt = *st.DT
		}
		for range st.Ticks {
			for _, ev := range e.Advance(dt, in) {
				res.Events[ev.Type]++
			}
			res.Ticks++
			record()
		}
	}

	res.Final = e.Snapshot()
	r.logger.Info("scenario finished", "scenario", s.Name, "phase", res.Final.Phase,
		"score", res.Final.Player.Score, "lives", res.Final.Player.Lives, "ticks", res.Ticks)
	return res, nil
}

// Check compares the result against the script's expectations.
func (res Result) Check(exp *Expectations) error {
	if exp == nil {
		return nil
	}
	final := res.Final

	if exp.Phase != "" {
		want, _ := parsePhase(exp.Phase)
		if final.Phase != want {
			return fmt.Errorf("phase = %s, expected %s", final.Phase, want)
		}
	}
	if exp.MinScore != nil && final.Player.Score < *exp.MinScore {
		return fmt.Errorf("score = %d, expected at least %d", final.Player.Score, *exp.MinScore)
	}
	if exp.MaxScore != nil && final.Player.Score > *exp.MaxScore {
		return fmt.Errorf("score = %d, expected at most %d", final.Player.Score, *exp.MaxScore)
	}
	if exp.Lives != nil && final.Player.Lives != *exp.Lives {
		return fmt.Errorf("lives = %d, expected %d", final.Player.Lives, *exp.Lives)
	}
	if exp.MinLives != nil && final.Player.Lives < *exp.MinLives {
		return fmt.Errorf("lives = %d, expected at least %d", final.Player.Lives, *exp.MinLives)
	}
	return nil
}
