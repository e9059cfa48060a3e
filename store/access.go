package store

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/peeps/components"
)

// Position returns a pointer to e's position, or nil.
func (s *Store) Position(e ecs.Entity) *components.Position {
	if !s.world.Alive(e) || !s.posMap.Has(e) {
		return nil
	}
	return s.posMap.Get(e)
}

// Size returns e's size, or the zero size if e has none.
func (s *Store) Size(e ecs.Entity) components.Size {
	if !s.world.Alive(e) || !s.sizeMap.Has(e) {
		return components.Size{}
	}
	return *s.sizeMap.Get(e)
}

// Box returns e's bounding box.
func (s *Store) Box(e ecs.Entity) components.Box {
	pos := s.Position(e)
	if pos == nil {
		return components.Box{}
	}
	return components.BoxOf(*pos, s.Size(e))
}

// Kind returns e's tag kind.
func (s *Store) Kind(e ecs.Entity) components.Kind {
	if !s.world.Alive(e) || !s.tagMap.Has(e) {
		return components.KindNone
	}
	return s.tagMap.Get(e).Kind
}

// Velocity returns a pointer to e's velocity, or nil for stationary entities.
func (s *Store) Velocity(e ecs.Entity) *components.Velocity {
	if !s.world.Alive(e) || !s.velMap.Has(e) {
		return nil
	}
	return s.velMap.Get(e)
}

// Sprite returns a pointer to e's sprite, or nil.
func (s *Store) Sprite(e ecs.Entity) *components.Sprite {
	if !s.world.Alive(e) || !s.spriteMap.Has(e) {
		return nil
	}
	return s.spriteMap.Get(e)
}

// AddBob attaches the Bob marker if absent. Reports whether it was added.
// Must not be called while a query is open.
func (s *Store) AddBob(e ecs.Entity) bool {
	if !s.world.Alive(e) || s.bobMap.Has(e) {
		return false
	}
	s.bobMap.Add(e, &components.Bob{})
	return true
}

// MarkDead attaches the Dead marker to a player. Reports whether it was added.
// Non-player entities are never marked.
// Must not be called while a query is open.
func (s *Store) MarkDead(e ecs.Entity) bool {
	if s.Kind(e) != components.KindPlayer || s.deadMap.Has(e) {
		return false
	}
	s.deadMap.Add(e, &components.Dead{})
	return true
}

// IsDead reports whether e carries the Dead marker.
func (s *Store) IsDead(e ecs.Entity) bool {
	return s.world.Alive(e) && s.deadMap.Has(e)
}

// ForEachMover calls fn for every entity with a velocity.
// fn may mutate the components but must not spawn, despawn or add markers.
func (s *Store) ForEachMover(fn func(e ecs.Entity, pos *components.Position, vel *components.Velocity, sprite *components.Sprite)) {
	query := s.movers.Query()
	for query.Next() {
		pos, vel, sprite := query.Get()
		fn(query.Entity(), pos, vel, sprite)
	}
}

// ForEachBobbing calls fn for every entity carrying the Bob marker.
func (s *Store) ForEachBobbing(fn func(e ecs.Entity, pos *components.Position)) {
	query := s.bobbing.Query()
	for query.Next() {
		pos, _ := query.Get()
		fn(query.Entity(), pos)
	}
}

// ForEachDrawable calls fn for every entity with a sprite.
func (s *Store) ForEachDrawable(fn func(e ecs.Entity, pos components.Position, size components.Size, sprite components.Sprite)) {
	query := s.drawable.Query()
	for query.Next() {
		pos, size, sprite := query.Get()
		fn(query.Entity(), *pos, *size, *sprite)
	}
}
