// Package systems contains the per-tick game systems.
package systems

import (
	"github.com/pthm-cable/peeps/input"
	"github.com/pthm-cable/peeps/store"
)

// Tick carries the per-tick inputs shared by every system.
type Tick struct {
	DT      float32 // seconds since the previous tick
	Elapsed float32 // cumulative clock, including this tick
	Keys    input.Source
	ViewW   float32 // viewport width in world units
	ViewH   float32 // viewport height in world units
	Report  *Report // written by systems, read by the game controller
}

// Report accumulates what happened during a tick.
type Report struct {
	Collected int // peeps queued for despawn by pickups
	Killed    bool
	BouncesX  int
	BouncesY  int
}

// System is one step of the per-tick schedule.
type System interface {
	Update(s *store.Store, t Tick) error
}

// report returns t.Report, or a throwaway report when the caller passed none.
func (t Tick) report() *Report {
	if t.Report == nil {
		return &Report{}
	}
	return t.Report
}
