package game

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/peeps/components"
	"github.com/pthm-cable/peeps/config"
	"github.com/pthm-cable/peeps/store"
)

// Draw order, back to front.
const (
	zWall   = 0
	zPeep   = 1
	zPlayer = 2
)

// maxWallAttempts bounds the rejection sampling for each wall.
const maxWallAttempts = 32

// Layout populates the store when a session starts.
// All randomness must come from rng so a seed replays the same layout.
type Layout func(s *store.Store, cfg *config.Config, rng *rand.Rand)

// RandomLayout spawns the player at its start position, the configured peeps
// at random positions and grid-snapped walls away from the player start.
// The first spawn.stationary_peeps peeps have no velocity.
func RandomLayout(s *store.Store, cfg *config.Config, rng *rand.Rand) {
	spawnPlayer(s, cfg)

	area := cfg.Spawn.Area
	for i := 0; i < cfg.Spawn.Peeps; i++ {
		x := uniform(rng, area.MinX, area.MaxX)
		y := uniform(rng, area.MinY, area.MaxY)

		var vel *components.Velocity
		if i >= cfg.Spawn.StationaryPeeps {
			angle := rng.Float64() * 2 * math.Pi
			speed := uniform(rng, cfg.Spawn.SpeedMin, cfg.Spawn.SpeedMax)
			vel = &components.Velocity{
				X: float32(math.Cos(angle) * speed),
				Y: float32(math.Sin(angle) * speed),
			}
		}
		spawnPeep(s, cfg, float32(x), float32(y), vel)
	}

	for i := 0; i < cfg.Spawn.Walls; i++ {
		x, y, ok := wallSpot(rng, cfg)
		if !ok {
			continue
		}
		spawnWall(s, cfg, x, y)
	}
}

// wallSpot picks a grid-snapped position outside the safe radius.
// Reports false when every attempt landed too close to the player start.
func wallSpot(rng *rand.Rand, cfg *config.Config) (x, y float32, ok bool) {
	area := cfg.Spawn.Area
	grid := cfg.Spawn.WallGrid
	sx, sy := cfg.Player.StartX, cfg.Player.StartY

	for attempt := 0; attempt < maxWallAttempts; attempt++ {
		wx := snap(uniform(rng, area.MinX, area.MaxX), grid)
		wy := snap(uniform(rng, area.MinY, area.MaxY), grid)
		if math.Hypot(wx-sx, wy-sy) < cfg.Spawn.SafeRadius {
			continue
		}
		return float32(wx), float32(wy), true
	}
	return 0, 0, false
}

func spawnPlayer(s *store.Store, cfg *config.Config) {
	s.Spawn(store.Bundle{
		Position: components.Position{X: float32(cfg.Player.StartX), Y: float32(cfg.Player.StartY), Z: zPlayer},
		Size:     components.Size{W: float32(cfg.Player.Width), H: float32(cfg.Player.Height)},
		Kind:     components.KindPlayer,
		Sprite:   components.Sprite{Slot: components.SlotPlayer},
		Screen:   components.ScreenGame,
	})
}

func spawnPeep(s *store.Store, cfg *config.Config, x, y float32, vel *components.Velocity) {
	size := float32(cfg.Spawn.PeepSize)
	s.Spawn(store.Bundle{
		Position: components.Position{X: x, Y: y, Z: zPeep},
		Size:     components.Size{W: size, H: size},
		Kind:     components.KindPeep,
		Sprite:   components.Sprite{Slot: components.SlotPeep},
		Screen:   components.ScreenGame,
		Velocity: vel,
	})
}

func spawnWall(s *store.Store, cfg *config.Config, x, y float32) {
	size := float32(cfg.Spawn.WallSize)
	s.Spawn(store.Bundle{
		Position: components.Position{X: x, Y: y, Z: zWall},
		Size:     components.Size{W: size, H: size},
		Kind:     components.KindWall,
		Sprite:   components.Sprite{Slot: components.SlotWall},
		Screen:   components.ScreenGame,
	})
}

// spawnSplash adds the decorative splash sprite.
func spawnSplash(s *store.Store) {
	s.Spawn(store.Bundle{
		Kind:   components.KindNone,
		Sprite: components.Sprite{Slot: components.SlotSplash, Scale: 0.5},
		Screen: components.ScreenSplash,
	})
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// snap rounds v to the nearest multiple of grid; grid <= 0 disables snapping.
func snap(v, grid float64) float64 {
	if grid <= 0 {
		return v
	}
	return math.Round(v/grid) * grid
}
