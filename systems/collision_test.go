package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/peeps/components"
	"github.com/pthm-cable/peeps/store"
)

func spawnStatic(s *store.Store, kind components.Kind, x, y, w, h float32) ecs.Entity {
	return s.Spawn(store.Bundle{
		Position: components.Position{X: x, Y: y},
		Size:     components.Size{W: w, H: h},
		Kind:     kind,
		Screen:   components.ScreenGame,
	})
}

func TestPickupDespawnsOverlappingPeeps(t *testing.T) {
	s := store.New()
	spawnPlayer(s, 100, 100, 10, 10)

	near := []ecs.Entity{
		spawnStatic(s, components.KindPeep, 100, 100, 10, 10),
		spawnStatic(s, components.KindPeep, 104, 96, 10, 10),
		spawnStatic(s, components.KindPeep, 95, 105, 4, 4),
	}
	far := []ecs.Entity{
		spawnStatic(s, components.KindPeep, -300, 0, 10, 10),
		spawnStatic(s, components.KindPeep, 400, 400, 10, 10),
	}

	var rep Report
	if err := (PickupSystem{}).Update(s, Tick{DT: testDT, Report: &rep}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rep.Collected != 3 {
		t.Errorf("expected 3 pickups, got %d", rep.Collected)
	}
	for _, e := range near {
		if !s.Pending(e) {
			t.Error("overlapping peep was not queued")
		}
	}

	// Running again in the same tick must not double count
	rep = Report{}
	(PickupSystem{}).Update(s, Tick{DT: testDT, Report: &rep})
	if rep.Collected != 0 {
		t.Errorf("queued peeps counted again: %d", rep.Collected)
	}

	if removed := s.Flush(); removed != 3 {
		t.Errorf("expected 3 despawns, got %d", removed)
	}
	if got := s.Count(components.KindPeep); got != 2 {
		t.Errorf("expected 2 peeps left, got %d", got)
	}
	for _, e := range far {
		if !s.Alive(e) {
			t.Error("distant peep was removed")
		}
	}
}

func TestPickupUsesUnitBoxForUnsetSize(t *testing.T) {
	s := store.New()
	spawnPlayer(s, 0, 0, 0, 0)
	peep := spawnStatic(s, components.KindPeep, 0.75, 0, 0, 0)

	(PickupSystem{}).Update(s, Tick{})
	if !s.Pending(peep) {
		t.Error("unit boxes 0.75 apart should overlap")
	}
}

func TestWallMarksPlayerDead(t *testing.T) {
	s := store.New()
	p := spawnPlayer(s, 0, 0, 10, 10)
	wall := spawnStatic(s, components.KindWall, 0, 0, 10, 10)

	var rep Report
	if err := (WallSystem{}).Update(s, Tick{Report: &rep}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.IsDead(p) || !rep.Killed {
		t.Fatal("expected player to be dead after one tick")
	}
	if s.Pending(wall) || s.Pending(p) {
		t.Error("wall collision must not despawn anything")
	}
}

// Dead appears after one tick and is never cleared, even once the player leaves the wall.
func TestWallDeathIsIdempotent(t *testing.T) {
	s := store.New()
	p := spawnPlayer(s, 0, 0, 4, 4)
	spawnStatic(s, components.KindWall, 0, 0, 50, 50)
	spawnStatic(s, components.KindWall, 1, 1, 50, 50)

	for i := 0; i < 20; i++ {
		if err := (WallSystem{}).Update(s, Tick{}); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if !s.IsDead(p) {
			t.Fatalf("tick %d: Dead missing", i)
		}
	}

	s.Position(p).X = 1000
	(WallSystem{}).Update(s, Tick{})
	if !s.IsDead(p) {
		t.Error("Dead was cleared after leaving the wall")
	}
}

func TestWallNoContact(t *testing.T) {
	s := store.New()
	p := spawnPlayer(s, 0, 0, 10, 10)
	spawnStatic(s, components.KindWall, 10, 0, 10, 10) // touching edge only

	(WallSystem{}).Update(s, Tick{})
	if s.IsDead(p) {
		t.Error("touching edges should not kill")
	}
}

func TestTimer(t *testing.T) {
	timer := NewTimer(1.0)

	if timer.Advance(0.4) {
		t.Error("finished too early")
	}
	if r := timer.Remaining(); r < 0.59 || r > 0.61 {
		t.Errorf("expected ~0.6 remaining, got %f", r)
	}
	if !timer.Advance(0.6) {
		t.Error("expected timer to finish at its duration")
	}
	if timer.Remaining() != 0 {
		t.Error("finished timer should report zero remaining")
	}

	elapsed := timer.Elapsed
	timer.Advance(5)
	if timer.Elapsed != elapsed {
		t.Error("finished timer kept accumulating")
	}

	timer.Reset()
	if timer.Finished() {
		t.Error("reset timer should not be finished")
	}

	c := CountdownSystem{Timer: &timer}
	c.Update(nil, Tick{DT: 1.5})
	if !timer.Finished() {
		t.Error("countdown system did not advance the timer")
	}
}

func TestRegistryCoversSystemIDs(t *testing.T) {
	reg := NewSystemRegistry()
	for _, id := range []string{IDCountdown, IDPlayerInput, IDConfine, IDMotion, IDBob, IDPickup, IDWalls} {
		if reg.GetName(id) == id {
			t.Errorf("system %q not registered", id)
		}
	}
	if reg.GetName("unknown") != "unknown" {
		t.Error("unknown IDs should fall back to the ID")
	}
}
