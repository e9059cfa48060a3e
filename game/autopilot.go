package game

import (
	"math"

	"github.com/pthm-cable/peeps/components"
	"github.com/pthm-cable/peeps/input"
	"github.com/pthm-cable/peeps/store"
)

// Observer is an input source that looks at the store before each tick.
type Observer interface {
	input.Source
	Observe(s *store.Store)
}

// autopilotDeadzone is the steering component below which no key is held.
const autopilotDeadzone = 0.2

// Autopilot steers the player toward the nearest peep while pushing away
// from nearby walls. It always confirms on the menu and never skips.
// Used for headless runs and parameter tuning.
type Autopilot struct {
	AvoidRadius float32 // walls closer than this push the player away
	AvoidWeight float32

	held [input.NumKeys]bool
}

// NewAutopilot creates an autopilot with default avoidance.
func NewAutopilot() *Autopilot {
	return &Autopilot{AvoidRadius: 80, AvoidWeight: 2}
}

// Down reports whether k is held.
func (a *Autopilot) Down(k input.Key) bool {
	if k == input.KeyConfirm {
		return true
	}
	if k >= input.NumKeys {
		return false
	}
	return a.held[k]
}

// Observe recomputes the held keys from the current store.
func (a *Autopilot) Observe(s *store.Store) {
	a.held = [input.NumKeys]bool{}

	player, err := s.Player()
	if err != nil {
		return
	}
	p := *s.Position(player)

	tx, ty, ok := nearestPeep(s, p)
	if !ok {
		return
	}
	vx, vy := unit(tx-p.X, ty-p.Y)

	for _, wall := range s.Entities(components.KindWall) {
		w := s.Position(wall)
		ox, oy := p.X-w.X, p.Y-w.Y
		d := float32(math.Hypot(float64(ox), float64(oy)))
		if d == 0 || d >= a.AvoidRadius {
			continue
		}
		ux, uy := unit(ox, oy)
		push := (1 - d/a.AvoidRadius) * a.AvoidWeight
		vx += ux * push
		vy += uy * push
	}

	a.held[input.KeyRight] = vx > autopilotDeadzone
	a.held[input.KeyLeft] = vx < -autopilotDeadzone
	a.held[input.KeyUp] = vy > autopilotDeadzone
	a.held[input.KeyDown] = vy < -autopilotDeadzone
}

// nearestPeep returns the closest peep not already queued for removal.
func nearestPeep(s *store.Store, from components.Position) (x, y float32, ok bool) {
	best := float32(math.MaxFloat32)
	for _, e := range s.Entities(components.KindPeep) {
		if s.Pending(e) {
			continue
		}
		pos := s.Position(e)
		dx, dy := pos.X-from.X, pos.Y-from.Y
		if d2 := dx*dx + dy*dy; d2 < best {
			best = d2
			x, y, ok = pos.X, pos.Y, true
		}
	}
	return x, y, ok
}

func unit(x, y float32) (float32, float32) {
	mag := float32(math.Hypot(float64(x), float64(y)))
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}
