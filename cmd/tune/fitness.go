package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/peeps/config"
	"github.com/pthm-cable/peeps/game"
	"github.com/pthm-cable/peeps/telemetry"
)

// noSessionsPenalty is returned when no run finished a single session.
const noSessionsPenalty = 10.0

// FitnessEvaluator runs headless autopilot games and scores how close the
// resulting difficulty is to the target.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int
	seeds       []int64
	baseConfig  *config.Config
	targetClear float64 // wanted fraction of sessions cleared
	targetSec   float64 // wanted mean session length

	mu          sync.Mutex
	lastSummary telemetry.Summary
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int, seeds []int64, baseCfg *config.Config, targetClear, targetSec float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		targetClear: targetClear,
		targetSec:   targetSec,
	}
}

// LastSummary returns the session summary from the most recent evaluation.
func (fe *FitnessEvaluator) LastSummary() telemetry.Summary {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastSummary
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	// Run all seeds in parallel
	results := make([][]telemetry.SessionRecord, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(x, s)
		}(i, seed)
	}
	wg.Wait()

	var sessions []telemetry.SessionRecord
	for _, r := range results {
		sessions = append(sessions, r...)
	}
	summary := telemetry.Summarize(sessions)

	fe.mu.Lock()
	fe.lastSummary = summary
	fe.mu.Unlock()

	return fe.computeFitness(summary)
}

// runSimulation plays one seed for maxTicks and returns the finished sessions.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) []telemetry.SessionRecord {
	cfg := fe.params.WithParams(fe.baseConfig, x)

	g, err := game.New(cfg, game.Options{
		Seed:  seed,
		Input: game.NewAutopilot(),
	})
	if err != nil {
		return nil
	}

	dt := cfg.Derived.DT32
	for i := 0; i < fe.maxTicks; i++ {
		// System errors are logged by the game; the run carries on
		_ = g.Tick(dt)
	}
	return g.Sessions()
}

// computeFitness calculates the scalar fitness (lower = better).
// Clear rate error dominates; session length error is weighted at a quarter.
func (fe *FitnessEvaluator) computeFitness(s telemetry.Summary) float64 {
	if s.Sessions == 0 {
		return noSessionsPenalty
	}
	clearErr := s.ClearRate - fe.targetClear
	durErr := 0.0
	if fe.targetSec > 0 {
		durErr = (s.DurationMean - fe.targetSec) / fe.targetSec
	}
	return clearErr*clearErr + 0.25*math.Min(durErr*durErr, 4)
}
