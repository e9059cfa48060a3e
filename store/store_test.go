package store

import (
	"errors"
	"testing"

	"github.com/mlange-42/ark/ecs"
	"pgregory.net/rapid"

	"github.com/pthm-cable/peeps/components"
)

func spawnKind(s *Store, kind components.Kind, x, y float32) ecs.Entity {
	return s.Spawn(Bundle{
		Position: components.Position{X: x, Y: y},
		Size:     components.Size{W: 10, H: 10},
		Kind:     kind,
		Screen:   components.ScreenGame,
	})
}

func TestSpawnAndQuery(t *testing.T) {
	s := New()
	player := spawnKind(s, components.KindPlayer, 1, 2)
	spawnKind(s, components.KindPeep, 0, 0)
	spawnKind(s, components.KindPeep, 5, 5)
	wall := s.Spawn(Bundle{Kind: components.KindWall, Screen: components.ScreenGame})

	if got := s.Count(components.KindPeep); got != 2 {
		t.Errorf("expected 2 peeps, got %d", got)
	}
	if got := s.Count(components.KindWall); got != 1 {
		t.Errorf("expected 1 wall, got %d", got)
	}
	if got := s.Count(components.KindPlayer); got != 1 {
		t.Errorf("expected 1 player, got %d", got)
	}

	pos := s.Position(player)
	if pos == nil || pos.X != 1 || pos.Y != 2 {
		t.Fatalf("unexpected player position %+v", pos)
	}
	if s.Kind(player) != components.KindPlayer {
		t.Errorf("expected player kind, got %s", s.Kind(player))
	}
	if s.Velocity(player) != nil {
		t.Error("stationary entity should have no velocity")
	}

	// Unset size falls back to a unit box
	box := s.Box(wall)
	if box.HW != 0.5 || box.HH != 0.5 {
		t.Errorf("expected unit box for unset size, got %+v", box)
	}
}

func TestSpawnWithVelocity(t *testing.T) {
	s := New()
	e := s.Spawn(Bundle{Kind: components.KindPeep, Velocity: &components.Velocity{X: 3, Y: -4}})

	vel := s.Velocity(e)
	if vel == nil || vel.X != 3 || vel.Y != -4 {
		t.Fatalf("unexpected velocity %+v", vel)
	}

	movers := 0
	s.ForEachMover(func(_ ecs.Entity, _ *components.Position, v *components.Velocity, _ *components.Sprite) {
		movers++
		v.X = 10
	})
	if movers != 1 {
		t.Errorf("expected 1 mover, got %d", movers)
	}
	if s.Velocity(e).X != 10 {
		t.Error("mutation through ForEachMover was lost")
	}
}

func TestDespawnIsDeferred(t *testing.T) {
	s := New()
	peep := spawnKind(s, components.KindPeep, 0, 0)

	if !s.Despawn(peep) {
		t.Fatal("expected first despawn to queue")
	}
	if s.Despawn(peep) {
		t.Error("second despawn of the same entity should be a no-op")
	}
	if !s.Alive(peep) || !s.Pending(peep) {
		t.Error("queued entity should stay alive until Flush")
	}
	if s.Count(components.KindPeep) != 1 {
		t.Error("queued entity should still be counted before Flush")
	}

	if removed := s.Flush(); removed != 1 {
		t.Errorf("expected 1 removal, got %d", removed)
	}
	if s.Alive(peep) {
		t.Error("entity should be gone after Flush")
	}
	if s.Despawn(peep) {
		t.Error("despawning a removed entity should be a no-op")
	}
	if s.Position(peep) != nil {
		t.Error("expected nil position for removed entity")
	}
}

func TestPlayerSingleton(t *testing.T) {
	s := New()

	if _, err := s.Player(); !errors.Is(err, ErrMissingSingleton) {
		t.Errorf("expected ErrMissingSingleton with no player, got %v", err)
	}

	p := spawnKind(s, components.KindPlayer, 0, 0)
	got, err := s.Player()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != p {
		t.Error("Player returned the wrong entity")
	}

	spawnKind(s, components.KindPlayer, 1, 1)
	if _, err := s.Player(); !errors.Is(err, ErrMissingSingleton) {
		t.Errorf("expected ErrMissingSingleton with two players, got %v", err)
	}
}

func TestMarkers(t *testing.T) {
	s := New()
	player := spawnKind(s, components.KindPlayer, 0, 0)
	peep := spawnKind(s, components.KindPeep, 0, 0)

	if !s.AddBob(peep) {
		t.Error("expected Bob to be added")
	}
	if s.AddBob(peep) {
		t.Error("Bob should only be added once")
	}
	if !hasBob(s, peep) {
		t.Error("expected peep to carry Bob")
	}

	bobbing := 0
	s.ForEachBobbing(func(ecs.Entity, *components.Position) { bobbing++ })
	if bobbing != 1 {
		t.Errorf("expected 1 bobbing entity, got %d", bobbing)
	}

	if s.MarkDead(peep) {
		t.Error("Dead must only be applied to the player")
	}
	if !s.MarkDead(player) {
		t.Error("expected player to be marked dead")
	}
	if s.MarkDead(player) {
		t.Error("marking dead twice should be a no-op")
	}
	if !s.IsDead(player) {
		t.Error("expected player to be dead")
	}
}

func TestDespawnScreen(t *testing.T) {
	s := New()
	spawnKind(s, components.KindPeep, 0, 0)
	queued := spawnKind(s, components.KindWall, 0, 0)
	s.Despawn(queued)
	splash := s.Spawn(Bundle{Screen: components.ScreenSplash})

	if removed := s.DespawnScreen(components.ScreenGame); removed != 2 {
		t.Errorf("expected 2 game entities removed, got %d", removed)
	}
	if !s.Alive(splash) {
		t.Error("splash entity should survive game teardown")
	}
	if s.Pending(queued) {
		t.Error("teardown should clear the despawn queue for removed entities")
	}
	if removed := s.Flush(); removed != 0 {
		t.Errorf("expected nothing left to flush, got %d", removed)
	}
}

func TestPeepCountNeverIncreases(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := New()
		n := rapid.IntRange(0, 20).Draw(t, "peeps")
		peeps := make([]ecs.Entity, n)
		for i := range peeps {
			peeps[i] = spawnKind(s, components.KindPeep, float32(i), 0)
		}

		prev := s.Count(components.KindPeep)
		rounds := rapid.IntRange(1, 10).Draw(t, "rounds")
		for r := 0; r < rounds; r++ {
			queued := 0
			for i, e := range peeps {
				if rapid.Bool().Draw(t, "despawn") {
					if s.Despawn(e) {
						queued++
					}
					// Duplicate requests must not double count
					s.Despawn(peeps[i])
				}
			}
			s.Flush()

			cur := s.Count(components.KindPeep)
			if cur > prev {
				t.Fatalf("peep count increased from %d to %d", prev, cur)
			}
			if prev-cur != queued {
				t.Fatalf("expected %d removals, count went %d -> %d", queued, prev, cur)
			}
			prev = cur
		}
	})
}

func hasBob(s *Store, e ecs.Entity) bool {
	found := false
	s.ForEachBobbing(func(b ecs.Entity, _ *components.Position) {
		if b == e {
			found = true
		}
	})
	return found
}
