package registry

import (
	"testing"

	"github.com/vovakirdan/arena-dash/internal/core"
)

type stubGame struct {
	id string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func stub(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegisterCreateList(t *testing.T) {
	Register(GameInfo{ID: "zz_stub_b", Title: "Stub B"}, stub("zz_stub_b"))
	Register(GameInfo{ID: "zz_stub_a", Layout: "ring", Objects: 4}, stub("zz_stub_a"))

	if !Exists("zz_stub_a") || Exists("zz_missing") {
		t.Error("Exists mismatch")
	}

	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("ID = %q", g.ID())
	}
	if _, err := Create("zz_missing"); err == nil {
		t.Error("expected error for unknown game")
	}

	info, ok := Lookup("zz_stub_a")
	if !ok {
		t.Fatal("Lookup missed a registered game")
	}
	want := GameInfo{ID: "zz_stub_a", Title: "zz_stub_a", Layout: "ring", Objects: 4}
	if info != want {
		t.Errorf("Lookup = %+v, expected %+v", info, want)
	}

	infos := List()
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("List not sorted: %s >= %s", infos[i-1].ID, infos[i].ID)
		}
	}
}

func TestCreateRejectsMismatchedFactory(t *testing.T) {
	Register(GameInfo{ID: "zz_liar"}, stub("zz_other"))
	Register(GameInfo{ID: "zz_nil"}, func() Game { return nil })

	for _, id := range []string{"zz_liar", "zz_nil"} {
		if _, err := Create(id); err == nil {
			t.Errorf("Create(%q) should fail", id)
		}
	}
}

func TestRegisterPanics(t *testing.T) {
	Register(GameInfo{ID: "zz_dup"}, stub("zz_dup"))

	tests := []struct {
		name string
		info GameInfo
		f    Factory
	}{
		{"duplicate", GameInfo{ID: "zz_dup"}, stub("zz_dup")},
		{"empty id", GameInfo{}, stub("")},
		{"uppercase id", GameInfo{ID: "Arena"}, stub("Arena")},
		{"id with space", GameInfo{ID: "my game"}, stub("my game")},
		{"nil factory", GameInfo{ID: "zz_nil_factory"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			Register(tt.info, tt.f)
		})
	}
}
