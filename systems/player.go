package systems

import (
	"fmt"
	"math"

	"github.com/pthm-cable/peeps/components"
	"github.com/pthm-cable/peeps/config"
	"github.com/pthm-cable/peeps/input"
	"github.com/pthm-cable/peeps/store"
)

// Intent sums the held direction keys into a movement vector.
// Opposite keys cancel; diagonals combine.
func Intent(keys input.Source) (x, y float32) {
	if keys == nil {
		return 0, 0
	}
	if keys.Down(input.KeyRight) {
		x++
	}
	if keys.Down(input.KeyLeft) {
		x--
	}
	if keys.Down(input.KeyUp) {
		y++
	}
	if keys.Down(input.KeyDown) {
		y--
	}
	return x, y
}

// Displacement normalises the intent and scales it by speed*dt.
// A zero intent yields no movement.
func Displacement(ix, iy, speed, dt float32) (dx, dy float32) {
	mag := float32(math.Sqrt(float64(ix*ix + iy*iy)))
	if mag == 0 {
		return 0, 0
	}
	scale := speed * dt / mag
	return ix * scale, iy * scale
}

// PlayerInputSystem moves the player from the held direction keys.
// There is no acceleration: the player moves at full speed while a key is held.
type PlayerInputSystem struct {
	Speed float32
}

// NewPlayerInputSystem creates a player input system from the player config section.
func NewPlayerInputSystem(cfg config.PlayerConfig) *PlayerInputSystem {
	return &PlayerInputSystem{Speed: float32(cfg.Speed)}
}

// Update runs the player input system.
func (p *PlayerInputSystem) Update(s *store.Store, t Tick) error {
	player, err := s.Player()
	if err != nil {
		return fmt.Errorf("player input: %w", err)
	}

	ix, iy := Intent(t.Keys)
	dx, dy := Displacement(ix, iy, p.Speed, t.DT)
	if dx == 0 && dy == 0 {
		return nil
	}

	pos := s.Position(player)
	pos.X += dx
	pos.Y += dy
	return nil
}

// ConfineSystem keeps the player's box inside the viewport.
type ConfineSystem struct{}

// Confine clamps pos so that a box of the given size stays inside view.
// A box larger than the view is centred on that axis.
func Confine(pos *components.Position, size components.Size, view Bounds) {
	box := components.BoxOf(*pos, size)
	pos.X = confineAxis(pos.X, box.HW, view.MinX, view.MaxX)
	pos.Y = confineAxis(pos.Y, box.HH, view.MinY, view.MaxY)
}

func confineAxis(v, half, lo, hi float32) float32 {
	if hi-lo < 2*half {
		return (lo + hi) / 2
	}
	return clampFloat(v, lo+half, hi-half)
}

// Update runs the confinement system.
func (ConfineSystem) Update(s *store.Store, t Tick) error {
	player, err := s.Player()
	if err != nil {
		return fmt.Errorf("confine: %w", err)
	}
	pos := s.Position(player)
	Confine(pos, s.Size(player), ViewportBounds(t.ViewW, t.ViewH))
	return nil
}
