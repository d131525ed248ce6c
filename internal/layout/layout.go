// Package layout loads prebuilt arena layouts from YAML and applies them to a
// simulation during the edit phase.
package layout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/arena-dash/internal/sim"
	"gopkg.in/yaml.v3"
)

// yamlLayout represents the YAML structure for a layout file.
type yamlLayout struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Objects     []yamlObject `yaml:"objects"`
}

type yamlObject struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Item is one object to place, in world coordinates.
type Item struct {
	Kind sim.Kind
	X    float64
	Y    float64
}

// Layout is a named set of objects.
type Layout struct {
	ID          string
	Name        string
	Description string
	Items       []Item
	FilePath    string // Empty for built-in layouts
}

// ErrNoID is returned for layouts without an id.
var ErrNoID = errors.New("layout has no id")

// Parse decodes a YAML layout.
func Parse(data []byte) (Layout, error) {
	var yl yamlLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Layout{}, ErrNoID
	}

	l := Layout{
		ID:          yl.ID,
		Name:        yl.Name,
		Description: yl.Description,
		Items:       make([]Item, 0, len(yl.Objects)),
	}
	if l.Name == "" {
		l.Name = yl.ID
	}

	for i, o := range yl.Objects {
		kind, ok := sim.ParseKind(o.Kind)
		if !ok {
			return Layout{}, fmt.Errorf("object %d: unknown kind %q", i, o.Kind)
		}
		l.Items = append(l.Items, Item{Kind: kind, X: o.X, Y: o.Y})
	}

	return l, nil
}

// Counts returns how many items of each kind the layout holds.
func (l *Layout) Counts() map[sim.Kind]int {
	counts := make(map[sim.Kind]int)
	for _, it := range l.Items {
		counts[it.Kind]++
	}
	return counts
}

// Result reports what Apply did.
type Result struct {
	Placed   int
	Rejected []Item
}

// Apply places every item through the engine, using the same validation as
// interactive placement. Items that do not fit are reported, not fatal.
func Apply(e *sim.Engine, l Layout) Result {
	var res Result
	for _, it := range l.Items {
		if e.Place(it.X, it.Y, it.Kind) {
			res.Placed++
			continue
		}
		res.Rejected = append(res.Rejected, it)
	}
	return res
}
