package layout

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/vovakirdan/arena-dash/internal/config"
	"github.com/vovakirdan/arena-dash/internal/sim"
)

// getTestdataPath returns path to testdata/layouts.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", "layouts")
}

func TestParse(t *testing.T) {
	data := []byte(`
id: demo
objects:
  - {kind: obstacle, x: 10, y: 200}
  - {kind: Shield, x: 20.5, y: 300}
`)
	lay, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if lay.ID != "demo" || lay.Name != "demo" {
		t.Errorf("id/name = %q/%q, expected demo/demo", lay.ID, lay.Name)
	}
	if len(lay.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(lay.Items))
	}
	if lay.Items[1] != (Item{Kind: sim.KindShield, X: 20.5, Y: 300}) {
		t.Errorf("item = %+v", lay.Items[1])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "id: [oops"},
		{"missing id", "objects: []"},
		{"unknown kind", "id: x\nobjects:\n  - {kind: lava, x: 1, y: 1}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := Parse([]byte("objects: []")); !errors.Is(err, ErrNoID) {
		t.Errorf("expected ErrNoID, got %v", err)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader(getTestdataPath())

	layouts, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// broken.yaml and notes.txt are skipped
	if len(layouts) != 2 {
		t.Fatalf("expected 2 layouts, got %d", len(layouts))
	}
	if layouts[0].ID != "corridor" || layouts[1].ID != "crowded" {
		t.Errorf("unexpected order: %s, %s", layouts[0].ID, layouts[1].ID)
	}
	if layouts[1].FilePath == "" {
		t.Error("FilePath should be set for loaded layouts")
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := NewLoader(getTestdataPath())

	lay, err := loader.LoadByID("corridor")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	counts := lay.Counts()
	if counts[sim.KindObstacle] != 2 || counts[sim.KindCollectible] != 1 {
		t.Errorf("counts = %v", counts)
	}

	if _, err := loader.LoadByID("nope"); err == nil {
		t.Error("expected error for unknown layout")
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "missing"))
	if _, err := loader.LoadAll(); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestApplyReportsRejects(t *testing.T) {
	loader := NewLoader(getTestdataPath())
	lay, err := loader.LoadByID("crowded")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	e := sim.New(config.DefaultArenaConfig())
	res := Apply(e, lay)

	if res.Placed != 2 {
		t.Errorf("placed = %d, expected 2", res.Placed)
	}
	if len(res.Rejected) != 3 {
		t.Fatalf("rejected = %d, expected 3", len(res.Rejected))
	}
	if res.Rejected[0].Kind != sim.KindCollectible {
		t.Errorf("first reject = %+v, expected the overlapping collectible", res.Rejected[0])
	}
}

func TestApplyOutsideEditPlacesNothing(t *testing.T) {
	lay, err := BuiltinByID("gauntlet")
	if err != nil {
		t.Fatalf("BuiltinByID failed: %v", err)
	}

	e := sim.New(config.DefaultArenaConfig())
	e.StartRound()
	res := Apply(e, lay)

	if res.Placed != 0 || len(res.Rejected) != len(lay.Items) {
		t.Errorf("placed %d during play", res.Placed)
	}
}

func TestBuiltinLayoutsFitCleanly(t *testing.T) {
	layouts, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}
	if len(layouts) < 2 {
		t.Fatalf("expected at least 2 built-in layouts, got %d", len(layouts))
	}

	for _, lay := range layouts {
		t.Run(lay.ID, func(t *testing.T) {
			e := sim.New(config.DefaultArenaConfig())
			res := Apply(e, lay)
			if len(res.Rejected) != 0 {
				t.Errorf("rejected items: %+v", res.Rejected)
			}
			snap := e.Snapshot()
			if got := len(snap.Obstacles) + len(snap.Collectibles) + len(snap.Powerups); got != len(lay.Items) {
				t.Errorf("engine holds %d objects, layout has %d", got, len(lay.Items))
			}
		})
	}
}
