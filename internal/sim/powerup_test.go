package sim

import (
	"testing"

	"github.com/vovakirdan/arena-dash/internal/config"
	"github.com/vovakirdan/arena-dash/internal/core"
)

func TestCollectibleScenario(t *testing.T) {
	e := newTestEngine(t)
	if !e.Place(500, 400, KindCollectible) {
		t.Fatal("collectible placement rejected")
	}
	e.StartRound()

	// 60 units per tick: 160 -> 220 -> 280 -> 340 -> 400
	events := run(e, 4, 0.25, up)

	if e.state.Player.Pos != core.V(500, 400) {
		t.Fatalf("player at %+v, expected (500, 400)", e.state.Player.Pos)
	}
	if e.state.Player.Score != config.DefaultCollectiblePoints {
		t.Errorf("score = %d, expected %d", e.state.Player.Score, config.DefaultCollectiblePoints)
	}
	if len(e.state.Collectibles) != 0 {
		t.Errorf("collectible should be consumed, %d left", len(e.state.Collectibles))
	}
	if countEvents(events, EventPickup) != 1 {
		t.Errorf("pickup events = %d, expected 1", countEvents(events, EventPickup))
	}

	run(e, 4, 0.25, idle)
	if e.state.Player.Score != config.DefaultCollectiblePoints {
		t.Errorf("score changed after pickup: %d", e.state.Player.Score)
	}
}

func TestMultiplePickupsInOneTick(t *testing.T) {
	e := newTestEngine(t)
	e.StartRound()
	p := e.state.Player.Pos
	e.state.Collectibles = []Object{
		{Pos: p.Add(core.V(10, 0)), Radius: 14, Kind: KindCollectible},
		{Pos: p.Add(core.V(-10, 0)), Radius: 14, Kind: KindCollectible},
		{Pos: p.Add(core.V(300, 0)), Radius: 14, Kind: KindCollectible},
	}
	e.state.Powerups = []Object{
		{Pos: p.Add(core.V(0, 20)), Radius: 14, Kind: KindSpeed},
		{Pos: p.Add(core.V(0, -20)), Radius: 14, Kind: KindShield},
	}

	events := e.Advance(0, idle)

	if e.state.Player.Score != 2*config.DefaultCollectiblePoints {
		t.Errorf("score = %d, expected %d", e.state.Player.Score, 2*config.DefaultCollectiblePoints)
	}
	if len(e.state.Collectibles) != 1 || e.state.Collectibles[0].Pos != p.Add(core.V(300, 0)) {
		t.Errorf("expected only the far collectible left, got %+v", e.state.Collectibles)
	}
	if len(e.state.Powerups) != 0 {
		t.Errorf("expected both power-ups consumed, got %+v", e.state.Powerups)
	}
	if !e.state.Player.Shielded {
		t.Error("shield should be active")
	}
	if countEvents(events, EventPickup) != 4 {
		t.Errorf("pickup events = %d, expected 4", countEvents(events, EventPickup))
	}
}

func TestShieldWindowScenario(t *testing.T) {
	e := newTestEngine(t)
	if !e.Place(500, 220, KindShield) {
		t.Fatal("shield placement rejected")
	}

	// Idle in edit until t=9.75, then start and step onto the shield at t=10
	run(e, 39, 0.25, idle)
	e.StartRound()
	e.Advance(0.25, up)

	p := e.state.Player
	if e.state.Now != 10 {
		t.Fatalf("now = %v, expected 10", e.state.Now)
	}
	if !p.Shielded || p.ShieldUntil != 14 {
		t.Fatalf("shielded = %v until %v, expected true until 14", p.Shielded, p.ShieldUntil)
	}

	for e.state.Now < 16 {
		events := e.Advance(0.25, idle)
		now := e.state.Now
		shielded := e.state.Player.Shielded
		if now < 14 && !shielded {
			t.Fatalf("shield dropped early at %v", now)
		}
		if now >= 14 && shielded {
			t.Fatalf("shield still up at %v", now)
		}
		if now == 14 && countEvents(events, EventShieldDown) != 1 {
			t.Errorf("expected shield_down event at 14, got %v", events)
		}
	}
}

func TestRepickExtendsByReset(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		until func(p Player) float64
		dur   float64
	}{
		{"speed", KindSpeed, func(p Player) float64 { return p.SpeedUntil }, config.DefaultPowerupDuration},
		{"shield", KindShield, func(p Player) float64 { return p.ShieldUntil }, config.DefaultShieldDuration},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t)
			e.StartRound()
			e.state.Now = 20
			e.state.RoundStart = 20
			pos := e.state.Player.Pos

			e.state.Powerups = []Object{{Pos: pos, Radius: 14, Kind: tc.kind}}
			e.Advance(0, idle)
			if got := tc.until(e.state.Player); got != 20+tc.dur {
				t.Fatalf("first pickup until %v, expected %v", got, 20+tc.dur)
			}

			e.state.Now = 22
			e.state.Powerups = []Object{{Pos: pos, Radius: 14, Kind: tc.kind}}
			e.Advance(0, idle)
			if got := tc.until(e.state.Player); got != 22+tc.dur {
				t.Errorf("repick until %v, expected %v (reset, not stacked)", got, 22+tc.dur)
			}
		})
	}
}

func TestSnapshotEffectTimers(t *testing.T) {
	e := newTestEngine(t)
	e.StartRound()
	e.state.Now = 5
	e.state.RoundStart = 5
	e.state.Player.SpeedUntil = 6.5
	e.state.Player.Shielded = true
	e.state.Player.ShieldUntil = 8

	snap := e.Snapshot()
	if !snap.Player.Boosted || snap.Player.SpeedLeft != 1.5 {
		t.Errorf("speed boosted=%v left=%v, expected true 1.5", snap.Player.Boosted, snap.Player.SpeedLeft)
	}
	if snap.Player.ShieldLeft != 3 {
		t.Errorf("shield left = %v, expected 3", snap.Player.ShieldLeft)
	}
}
