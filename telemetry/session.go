// Package telemetry records game sessions and writes them out for analysis.
package telemetry

import (
	"log/slog"

	"github.com/google/uuid"
)

// Outcome values recorded for a finished session.
const (
	OutcomeCleared = "cleared"
	OutcomeDied    = "died"
	OutcomeSkipped = "skipped"
	OutcomeAborted = "aborted" // program stopped mid-session
)

// SessionRecord describes one InGame session.
type SessionRecord struct {
	ID             string  `csv:"id"`
	Seed           int64   `csv:"seed"`
	Outcome        string  `csv:"outcome"`
	StartTick      int64   `csv:"start_tick"`
	EndTick        int64   `csv:"end_tick"`
	DurationSec    float64 `csv:"duration_sec"`
	PeepsSpawned   int     `csv:"peeps_spawned"`
	PeepsCollected int     `csv:"peeps_collected"`
	Walls          int     `csv:"walls"`
	Bounces        int     `csv:"bounces"`
	SystemErrors   int     `csv:"system_errors"`
}

// Collector accumulates counts for the session in progress.
type Collector struct {
	seed    int64
	active  bool
	current SessionRecord
	history []SessionRecord
}

// NewCollector creates a collector; seed is copied into every record.
func NewCollector(seed int64) *Collector {
	return &Collector{seed: seed}
}

// Begin starts a new session record.
func (c *Collector) Begin(tick int64, peeps, walls int) {
	c.current = SessionRecord{
		ID:           uuid.NewString(),
		Seed:         c.seed,
		StartTick:    tick,
		PeepsSpawned: peeps,
		Walls:        walls,
	}
	c.active = true
}

// Active reports whether a session is in progress.
func (c *Collector) Active() bool {
	return c.active
}

// Current returns the record of the session in progress.
func (c *Collector) Current() (SessionRecord, bool) {
	return c.current, c.active
}

// RecordPickups adds collected peeps to the current session.
func (c *Collector) RecordPickups(n int) {
	if c.active {
		c.current.PeepsCollected += n
	}
}

// RecordBounces adds wall bounces to the current session.
func (c *Collector) RecordBounces(n int) {
	if c.active {
		c.current.Bounces += n
	}
}

// RecordSystemError counts a failed system run in the current session.
func (c *Collector) RecordSystemError() {
	if c.active {
		c.current.SystemErrors++
	}
}

// End closes the current session and returns its record.
// Returns false if no session was active.
func (c *Collector) End(tick int64, durationSec float64, outcome string) (SessionRecord, bool) {
	if !c.active {
		return SessionRecord{}, false
	}
	rec := c.current
	rec.EndTick = tick
	rec.DurationSec = durationSec
	rec.Outcome = outcome
	c.history = append(c.history, rec)
	c.active = false

	slog.Info("session ended",
		"id", rec.ID,
		"outcome", rec.Outcome,
		"duration_sec", rec.DurationSec,
		"collected", rec.PeepsCollected,
		"spawned", rec.PeepsSpawned,
	)
	return rec, true
}

// History returns every finished session in order.
func (c *Collector) History() []SessionRecord {
	return c.history
}
