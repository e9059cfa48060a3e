package game

import (
	"log/slog"
	"sort"
	"time"

	"github.com/pthm-cable/peeps/systems"
)

// PerfStats keeps a rolling window of per-system update times.
type PerfStats struct {
	samples    map[string][]time.Duration
	maxSamples int
}

// NewPerfStats creates a new performance stats tracker.
func NewPerfStats() *PerfStats {
	return &PerfStats{
		samples:    make(map[string][]time.Duration),
		maxSamples: 120, // ~2 seconds of samples at 60fps
	}
}

// Record adds a duration sample for the given system ID.
func (p *PerfStats) Record(id string, d time.Duration) {
	p.samples[id] = append(p.samples[id], d)
	if len(p.samples[id]) > p.maxSamples {
		p.samples[id] = p.samples[id][1:]
	}
}

// Avg returns the average duration for the given system ID.
func (p *PerfStats) Avg(id string) time.Duration {
	s := p.samples[id]
	if len(s) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s {
		total += d
	}
	return total / time.Duration(len(s))
}

// Samples returns how many samples are held for the given system ID.
func (p *PerfStats) Samples(id string) int {
	return len(p.samples[id])
}

// Total returns the sum of all average durations.
func (p *PerfStats) Total() time.Duration {
	var total time.Duration
	for id := range p.samples {
		total += p.Avg(id)
	}
	return total
}

// SortedIDs returns system IDs sorted by average duration (descending).
func (p *PerfStats) SortedIDs() []string {
	ids := make([]string, 0, len(p.samples))
	for id := range p.samples {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ai, aj := p.Avg(ids[i]), p.Avg(ids[j])
		if ai != aj {
			return ai > aj
		}
		return ids[i] < ids[j]
	})
	return ids
}

// Log writes one slog line per system, slowest first.
func (p *PerfStats) Log(tick int64, reg *systems.SystemRegistry) {
	total := p.Total()
	slog.Info("perf", "tick", tick, "total", total.Round(time.Microsecond).String())

	for _, id := range p.SortedIDs() {
		avg := p.Avg(id)
		pct := float64(0)
		if total > 0 {
			pct = float64(avg) / float64(total) * 100
		}
		slog.Info("perf system",
			"system", reg.GetName(id),
			"avg", avg.Round(time.Microsecond).String(),
			"pct", pct,
			"samples", p.Samples(id),
		)
	}
}
