package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/peeps/components"
	"github.com/pthm-cable/peeps/config"
	"github.com/pthm-cable/peeps/store"
)

// Bounds is the rectangle bouncing entities are kept inside.
type Bounds struct {
	MinX, MaxX float32
	MinY, MaxY float32
}

// ViewportBounds returns bounds covering a viewport centred on the origin.
func ViewportBounds(w, h float32) Bounds {
	return Bounds{MinX: -w / 2, MaxX: w / 2, MinY: -h / 2, MaxY: h / 2}
}

// Bounce describes which axes reflected during a step.
type Bounce struct {
	X, Y bool
}

// Reflect checks pos against b and reflects vel on each axis the entity has
// left while still moving outward. The outward check means a non-clamped
// entity that overshoots flips once and then travels back inside, rather
// than flipping again every tick it remains outside.
// Each reflection toggles the matching sprite flip flag.
func Reflect(pos *components.Position, vel *components.Velocity, sprite *components.Sprite, b Bounds, clamp bool) Bounce {
	var out Bounce

	if (pos.X > b.MaxX && vel.X > 0) || (pos.X < b.MinX && vel.X < 0) {
		if clamp {
			pos.X = clampFloat(pos.X, b.MinX, b.MaxX)
		}
		vel.X = -vel.X
		if sprite != nil {
			sprite.FlipX = !sprite.FlipX
		}
		out.X = true
	}

	if (pos.Y > b.MaxY && vel.Y > 0) || (pos.Y < b.MinY && vel.Y < 0) {
		if clamp {
			pos.Y = clampFloat(pos.Y, b.MinY, b.MaxY)
		}
		vel.Y = -vel.Y
		if sprite != nil {
			sprite.FlipY = !sprite.FlipY
		}
		out.Y = true
	}

	return out
}

// MotionSystem moves every entity with a velocity and bounces it off the bounds.
// A horizontal bounce attaches the Bob marker.
type MotionSystem struct {
	fixed  *Bounds // nil means derive from the viewport each tick
	clamp  bool
	bobbed []ecs.Entity
}

// NewMotionSystem creates a motion system from the motion config section.
func NewMotionSystem(cfg config.MotionConfig) *MotionSystem {
	s := &MotionSystem{clamp: cfg.ClampOnBounce}
	if cfg.Bounds != config.BoundsWindow {
		s.fixed = &Bounds{
			MinX: float32(cfg.MinX),
			MaxX: float32(cfg.MaxX),
			MinY: float32(cfg.MinY),
			MaxY: float32(cfg.MaxY),
		}
	}
	return s
}

// BoundsFor returns the bounds in effect for the given tick.
func (m *MotionSystem) BoundsFor(t Tick) Bounds {
	if m.fixed != nil {
		return *m.fixed
	}
	return ViewportBounds(t.ViewW, t.ViewH)
}

// Update runs the motion system.
func (m *MotionSystem) Update(s *store.Store, t Tick) error {
	b := m.BoundsFor(t)
	rep := t.report()

	// Markers are structural changes, so collect them while the query is open
	m.bobbed = m.bobbed[:0]
	s.ForEachMover(func(e ecs.Entity, pos *components.Position, vel *components.Velocity, sprite *components.Sprite) {
		pos.X += vel.X * t.DT
		pos.Y += vel.Y * t.DT

		bounce := Reflect(pos, vel, sprite, b, m.clamp)
		if bounce.X {
			rep.BouncesX++
			m.bobbed = append(m.bobbed, e)
		}
		if bounce.Y {
			rep.BouncesY++
		}
	})

	for _, e := range m.bobbed {
		s.AddBob(e)
	}
	return nil
}
