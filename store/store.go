// Package store wraps the ark ECS world with the handful of operations the
// game needs: spawn, deferred despawn, queries by kind and marker components.
package store

import (
	"errors"
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/peeps/components"
)

// ErrMissingSingleton is returned when an operation needs exactly one player
// and the world holds zero or several.
var ErrMissingSingleton = errors.New("expected exactly one player")

// Bundle describes an entity to spawn.
type Bundle struct {
	Position components.Position
	Size     components.Size
	Kind     components.Kind
	Sprite   components.Sprite
	Screen   components.ScreenID
	Velocity *components.Velocity // nil for stationary entities
}

// Store holds all simulation entities.
// Despawns are buffered and applied by Flush, so every system in a tick
// observes the same entity set.
type Store struct {
	world *ecs.World

	spawner *ecs.Map5[
		components.Position,
		components.Size,
		components.Tag,
		components.Sprite,
		components.Screen,
	]

	posMap    *ecs.Map[components.Position]
	sizeMap   *ecs.Map[components.Size]
	tagMap    *ecs.Map[components.Tag]
	spriteMap *ecs.Map[components.Sprite]
	velMap    *ecs.Map[components.Velocity]
	bobMap    *ecs.Map[components.Bob]
	deadMap   *ecs.Map[components.Dead]

	tagged   *ecs.Filter3[components.Position, components.Size, components.Tag]
	movers   *ecs.Filter3[components.Position, components.Velocity, components.Sprite]
	bobbing  *ecs.Filter2[components.Position, components.Bob]
	drawable *ecs.Filter3[components.Position, components.Size, components.Sprite]
	screens  *ecs.Filter1[components.Screen]

	pending []ecs.Entity
	queued  map[ecs.Entity]struct{}
}

// New creates an empty store.
func New() *Store {
	world := ecs.NewWorld()

	return &Store{
		world: world,
		spawner: ecs.NewMap5[
			components.Position,
			components.Size,
			components.Tag,
			components.Sprite,
			components.Screen,
		](world),
		posMap:    ecs.NewMap[components.Position](world),
		sizeMap:   ecs.NewMap[components.Size](world),
		tagMap:    ecs.NewMap[components.Tag](world),
		spriteMap: ecs.NewMap[components.Sprite](world),
		velMap:    ecs.NewMap[components.Velocity](world),
		bobMap:    ecs.NewMap[components.Bob](world),
		deadMap:   ecs.NewMap[components.Dead](world),
		tagged:    ecs.NewFilter3[components.Position, components.Size, components.Tag](world),
		movers:    ecs.NewFilter3[components.Position, components.Velocity, components.Sprite](world),
		bobbing:   ecs.NewFilter2[components.Position, components.Bob](world),
		drawable:  ecs.NewFilter3[components.Position, components.Size, components.Sprite](world),
		screens:   ecs.NewFilter1[components.Screen](world),
		queued:    make(map[ecs.Entity]struct{}),
	}
}

// Spawn creates an entity from b and returns its handle.
func (s *Store) Spawn(b Bundle) ecs.Entity {
	pos := b.Position
	size := b.Size
	tag := components.Tag{Kind: b.Kind}
	sprite := b.Sprite
	screen := components.Screen{ID: b.Screen}

	entity := s.spawner.NewEntity(&pos, &size, &tag, &sprite, &screen)
	if b.Velocity != nil {
		vel := *b.Velocity
		s.velMap.Add(entity, &vel)
	}
	return entity
}

// Despawn queues e for removal at the next Flush.
// Queuing the same entity twice is a no-op; it reports whether e was newly queued.
func (s *Store) Despawn(e ecs.Entity) bool {
	if !s.world.Alive(e) {
		return false
	}
	if _, ok := s.queued[e]; ok {
		return false
	}
	s.queued[e] = struct{}{}
	s.pending = append(s.pending, e)
	return true
}

// Pending reports whether e is queued for removal.
func (s *Store) Pending(e ecs.Entity) bool {
	_, ok := s.queued[e]
	return ok
}

// Flush removes every queued entity and returns how many were removed.
func (s *Store) Flush() int {
	removed := 0
	for _, e := range s.pending {
		if s.world.Alive(e) {
			s.world.RemoveEntity(e)
			removed++
		}
	}
	s.pending = s.pending[:0]
	clear(s.queued)
	return removed
}

// DespawnScreen immediately removes every entity spawned for screen.
// Must not be called while a query is open.
func (s *Store) DespawnScreen(screen components.ScreenID) int {
	// First pass: collect (the world is locked while the query runs)
	var toRemove []ecs.Entity
	query := s.screens.Query()
	for query.Next() {
		if query.Get().ID == screen {
			toRemove = append(toRemove, query.Entity())
		}
	}

	// Second pass: remove
	for _, e := range toRemove {
		delete(s.queued, e)
		s.world.RemoveEntity(e)
	}
	return len(toRemove)
}

// Alive reports whether e still exists (queued entities are still alive).
func (s *Store) Alive(e ecs.Entity) bool {
	return s.world.Alive(e)
}

// Entities returns all entities of the given kind, including queued ones.
func (s *Store) Entities(kind components.Kind) []ecs.Entity {
	var out []ecs.Entity
	query := s.tagged.Query()
	for query.Next() {
		_, _, tag := query.Get()
		if tag.Kind == kind {
			out = append(out, query.Entity())
		}
	}
	return out
}

// Count returns the number of entities of the given kind.
// Entities queued for removal are counted until Flush.
func (s *Store) Count(kind components.Kind) int {
	n := 0
	query := s.tagged.Query()
	for query.Next() {
		_, _, tag := query.Get()
		if tag.Kind == kind {
			n++
		}
	}
	return n
}

// Player returns the single player entity.
// Zero or multiple players is an error rather than an arbitrary pick.
func (s *Store) Player() (ecs.Entity, error) {
	players := s.Entities(components.KindPlayer)
	if len(players) != 1 {
		return ecs.Entity{}, fmt.Errorf("%w: found %d", ErrMissingSingleton, len(players))
	}
	return players[0], nil
}
