// Package scenario runs scripted, headless arena rounds with synthetic time
// steps. Scripts are YAML files listing the layout, the held keys and the
// outcome a run is expected to produce.
package scenario

import (
	"fmt"
	"os"
	"strings"

	"github.com/vovakirdan/arena-dash/internal/layout"
	"github.com/vovakirdan/arena-dash/internal/sim"
	"gopkg.in/yaml.v3"
)

// DefaultDT is the tick length used when a script does not set one.
const DefaultDT = 1.0 / 60.0

// Script is a parsed scenario file.
type Script struct {
	Name    string        `yaml:"name"`
	Layout  string        `yaml:"layout,omitempty"` // Built-in layout ID
	Objects []ObjectSpec  `yaml:"objects,omitempty"`
	Start   bool          `yaml:"start"` // Start the round before the first step
	DT      float64       `yaml:"dt,omitempty"`
	Steps   []Step        `yaml:"steps"`
	Expect  *Expectations `yaml:"expect,omitempty"`
}

// ObjectSpec is an inline object placed during the edit phase.
type ObjectSpec struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Step holds a set of keys for a number of ticks.
type Step struct {
	Ticks   int      `yaml:"ticks"`
	DT      *float64 `yaml:"dt,omitempty"` // Overrides the script dt; 0 is allowed
	Keys    []string `yaml:"keys,omitempty"`
	Restart bool     `yaml:"restart,omitempty"` // Start a new round before ticking
}

// Expectations are checked against the final state of a run.
type Expectations struct {
	Phase    string `yaml:"phase,omitempty"`
	MinScore *int   `yaml:"min_score,omitempty"`
	MaxScore *int   `yaml:"max_score,omitempty"`
	Lives    *int   `yaml:"lives,omitempty"`
	MinLives *int   `yaml:"min_lives,omitempty"`
}

// Parse decodes and validates a scenario script.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := s.validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// LoadFile reads and parses a scenario script.
func LoadFile(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(path, ".yaml")
	}
	return s, nil
}

func (s *Script) validate() error {
	if s.DT < 0 {
		return fmt.Errorf("dt must not be negative, got %v", s.DT)
	}
	for i, o := range s.Objects {
		if _, ok := sim.ParseKind(o.Kind); !ok {
			return fmt.Errorf("object %d: unknown kind %q", i, o.Kind)
		}
	}
	for i, st := range s.Steps {
		if st.Ticks < 0 {
			return fmt.Errorf("step %d: ticks must not be negative", i)
		}
		if st.DT != nil && *st.DT < 0 {
			return fmt.Errorf("step %d: dt must not be negative, got %v", i, *st.DT)
		}
		if _, err := parseKeys(st.Keys); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	if s.Expect != nil && s.Expect.Phase != "" {
		if _, ok := parsePhase(s.Expect.Phase); !ok {
			return fmt.Errorf("expect: unknown phase %q", s.Expect.Phase)
		}
	}
	return nil
}

// items converts the inline objects to a layout.
func (s *Script) items() layout.Layout {
	lay := layout.Layout{ID: "inline", Name: s.Name}
	for _, o := range s.Objects {
		kind, _ := sim.ParseKind(o.Kind)
		lay.Items = append(lay.Items, layout.Item{Kind: kind, X: o.X, Y: o.Y})
	}
	return lay
}

func parseKeys(keys []string) (sim.Intent, error) {
	var in sim.Intent
	for _, k := range keys {
		switch strings.ToLower(k) {
		case "up", "w":
			in.Up = true
		case "down", "s":
			in.Down = true
		case "left", "a":
			in.Left = true
		case "right", "d":
			in.Right = true
		default:
			return sim.Intent{}, fmt.Errorf("unknown key %q", k)
		}
	}
	return in, nil
}

func parsePhase(name string) (sim.Phase, bool) {
	for _, p := range []sim.Phase{sim.PhaseEdit, sim.PhasePlay, sim.PhaseWin, sim.PhaseLose} {
		if p.String() == strings.ToLower(name) {
			return p, true
		}
	}
	return 0, false
}
