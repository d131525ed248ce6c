package sim

import (
	"testing"

	"github.com/vovakirdan/arena-dash/internal/config"
)

func TestTargetPath(t *testing.T) {
	tgt := newTarget(config.DefaultArenaConfig())

	checks := []struct {
		name string
		got  [2]float64
		want [2]float64
	}{
		{"p0", [2]float64{tgt.P0.X, tgt.P0.Y}, [2]float64{100, 550}},
		{"p1", [2]float64{tgt.P1.X, tgt.P1.Y}, [2]float64{300, 630}},
		{"p2", [2]float64{tgt.P2.X, tgt.P2.Y}, [2]float64{700, 470}},
		{"p3", [2]float64{tgt.P3.X, tgt.P3.Y}, [2]float64{900, 550}},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, expected %v", c.name, c.got, c.want)
		}
	}
	if tgt.T != 0 || tgt.Dir != 1 {
		t.Errorf("t = %v, dir = %v, expected 0, +1", tgt.T, tgt.Dir)
	}
}

func TestTargetAdvanceZeroIsIdempotent(t *testing.T) {
	tgt := newTarget(config.DefaultArenaConfig())
	tgt.Advance(1, 0.35)
	start := tgt.T

	for range 100 {
		tgt.Advance(0, 0.35)
	}

	if tgt.T != start {
		t.Errorf("t drifted from %v to %v", start, tgt.T)
	}
}

func TestTargetPingPong(t *testing.T) {
	type step struct {
		dt      float64
		wantT   float64
		wantDir float64
	}
	tests := []struct {
		name  string
		steps []step
	}{
		{"overshoot and undershoot", []step{
			{3, 1, -1},   // past the end, clamped
			{1, 0.5, -1}, // on the way back
			{4, 0, 1},    // past the start, clamped
		}},
		{"landing exactly on the end keeps direction", []step{
			{2, 1, 1},
			{0.25, 1, -1}, // next step goes past and turns
			{0.5, 0.75, -1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tgt := newTarget(config.DefaultArenaConfig())
			for i, st := range tt.steps {
				tgt.Advance(st.dt, 0.5)
				if tgt.T != st.wantT || tgt.Dir != st.wantDir {
					t.Fatalf("step %d: t = %v, dir = %v, expected %v, %v", i, tgt.T, tgt.Dir, st.wantT, st.wantDir)
				}
			}
		})
	}
}

func TestTargetStaysNearItsPath(t *testing.T) {
	tgt := newTarget(config.DefaultArenaConfig())
	steps := []float64{0.016, 0.5, 0.1, 1.3, 0.0, 2.9, 0.033, 0.75}

	for i := range 400 {
		tgt.Advance(steps[i%len(steps)], 0.35)
		if tgt.T < 0 || tgt.T > 1 {
			t.Fatalf("t = %v out of [0, 1]", tgt.T)
		}
		p := tgt.Eval()
		// Bounding box of the control points contains their hull
		if p.X < 100 || p.X > 900 || p.Y < 470 || p.Y > 630 {
			t.Fatalf("step %d: target at %+v outside the control hull", i, p)
		}
	}
}
