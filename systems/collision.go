package systems

import (
	"fmt"

	"github.com/pthm-cable/peeps/components"
	"github.com/pthm-cable/peeps/store"
)

// PickupSystem despawns every peep overlapping the player.
// Despawns are deferred to the store's Flush, so a peep picked up this tick
// is still visible to later systems of the same tick.
type PickupSystem struct{}

// Update runs the pickup system.
func (PickupSystem) Update(s *store.Store, t Tick) error {
	player, err := s.Player()
	if err != nil {
		return fmt.Errorf("pickup: %w", err)
	}
	playerBox := s.Box(player)
	rep := t.report()

	for _, peep := range s.Entities(components.KindPeep) {
		if s.Pending(peep) {
			continue
		}
		if playerBox.Overlaps(s.Box(peep)) && s.Despawn(peep) {
			rep.Collected++
		}
	}
	return nil
}

// WallSystem marks the player dead when it overlaps any wall.
// Nothing is despawned, and Dead is never cleared once set.
type WallSystem struct{}

// Update runs the wall collision system.
func (WallSystem) Update(s *store.Store, t Tick) error {
	player, err := s.Player()
	if err != nil {
		return fmt.Errorf("walls: %w", err)
	}
	if s.IsDead(player) {
		t.report().Killed = true
		return nil
	}
	playerBox := s.Box(player)

	for _, wall := range s.Entities(components.KindWall) {
		if playerBox.Overlaps(s.Box(wall)) {
			s.MarkDead(player)
			t.report().Killed = true
			return nil
		}
	}
	return nil
}
