package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/peeps/components"
	"github.com/pthm-cable/peeps/config"
	"github.com/pthm-cable/peeps/store"
)

// BobOffset returns the vertical offset added to a bobbing entity at the given time.
func BobOffset(elapsed, omega, amplitude float32) float32 {
	return float32(math.Sin(float64(elapsed*omega))) * amplitude
}

// BobSystem adds a sinusoidal offset to the y of every entity carrying Bob.
// The offset is added every tick, on top of any other motion.
type BobSystem struct {
	Omega     float32
	Amplitude float32
}

// NewBobSystem creates a bob system from the bob config section.
func NewBobSystem(cfg config.BobConfig) *BobSystem {
	return &BobSystem{Omega: float32(cfg.Omega), Amplitude: float32(cfg.Amplitude)}
}

// Update runs the bob system.
func (b *BobSystem) Update(s *store.Store, t Tick) error {
	dy := BobOffset(t.Elapsed, b.Omega, b.Amplitude)
	s.ForEachBobbing(func(_ ecs.Entity, pos *components.Position) {
		pos.Y += dy
	})
	return nil
}
