package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates finished sessions.
type Summary struct {
	Sessions       int
	Cleared        int
	Died           int
	Skipped        int
	ClearRate      float64
	DurationMean   float64
	DurationStd    float64
	DurationMedian float64
	CollectedMean  float64
	CollectedRatio float64 // total collected / total spawned
}

// Summarize computes summary statistics over records.
func Summarize(records []SessionRecord) Summary {
	s := Summary{Sessions: len(records)}
	if len(records) == 0 {
		return s
	}

	durations := make([]float64, len(records))
	collected := make([]float64, len(records))
	var totalCollected, totalSpawned int
	for i, r := range records {
		durations[i] = r.DurationSec
		collected[i] = float64(r.PeepsCollected)
		totalCollected += r.PeepsCollected
		totalSpawned += r.PeepsSpawned

		switch r.Outcome {
		case OutcomeCleared:
			s.Cleared++
		case OutcomeDied:
			s.Died++
		case OutcomeSkipped:
			s.Skipped++
		}
	}

	s.ClearRate = float64(s.Cleared) / float64(len(records))
	if len(records) > 1 {
		s.DurationMean, s.DurationStd = stat.MeanStdDev(durations, nil)
	} else {
		s.DurationMean = durations[0]
	}
	s.CollectedMean = stat.Mean(collected, nil)

	sorted := make([]float64, len(durations))
	copy(sorted, durations)
	sort.Float64s(sorted)
	s.DurationMedian = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	if totalSpawned > 0 {
		s.CollectedRatio = float64(totalCollected) / float64(totalSpawned)
	}
	return s
}

// Log writes the summary via slog.
func (s Summary) Log() {
	slog.Info("session summary",
		"sessions", s.Sessions,
		"cleared", s.Cleared,
		"died", s.Died,
		"skipped", s.Skipped,
		"clear_rate", s.ClearRate,
		"duration_mean", s.DurationMean,
		"duration_std", s.DurationStd,
		"duration_median", s.DurationMedian,
		"collected_mean", s.CollectedMean,
		"collected_ratio", s.CollectedRatio,
	)
}
