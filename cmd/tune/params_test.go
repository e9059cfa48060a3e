package main

import (
	"testing"

	"github.com/pthm-cable/peeps/config"
	"github.com/pthm-cable/peeps/telemetry"
)

func TestParamVectorRoundtrip(t *testing.T) {
	pv := NewParamVector()
	def := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		def[i] = spec.Default
	}

	back := pv.Denormalize(pv.Normalize(def))
	for i := range def {
		if diff := back[i] - def[i]; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s: %f -> %f", pv.Specs[i].Name, def[i], back[i])
		}
	}
}

func TestDefaultsMatchConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	pv := NewParamVector()
	got := pv.ExtractFromConfig(cfg)
	for i, spec := range pv.Specs {
		if got[i] != spec.Default {
			t.Errorf("%s: config default %f, param default %f", spec.Path, got[i], spec.Default)
		}
	}
}

func TestApplyKeepsConfigValid(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	pv := NewParamVector()
	// Far below every minimum
	pv.ApplyToConfig(cfg, []float64{-5, -5, -5, -5, -5})

	if cfg.Spawn.Peeps != 3 || cfg.Spawn.Walls != 0 {
		t.Errorf("expected clamped counts, got peeps=%d walls=%d", cfg.Spawn.Peeps, cfg.Spawn.Walls)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("applied config is invalid: %v", err)
	}

	pv.ApplyToConfig(cfg, []float64{12.4, 7.6, 300, 250, 40})
	if cfg.Spawn.Peeps != 12 || cfg.Spawn.Walls != 8 {
		t.Errorf("integer params should round, got peeps=%d walls=%d", cfg.Spawn.Peeps, cfg.Spawn.Walls)
	}
}

func TestWithParamsLeavesBaseUntouched(t *testing.T) {
	base, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	before := *base

	pv := NewParamVector()
	cfg := pv.WithParams(base, []float64{20, 4, 400, 500, 32})

	if cfg == base {
		t.Fatal("expected a copy, got the base config")
	}
	if cfg.Spawn.Peeps != 20 || cfg.Player.Speed != 500 {
		t.Errorf("params not applied: peeps=%d speed=%f", cfg.Spawn.Peeps, cfg.Player.Speed)
	}
	if *base != before {
		t.Error("base config was modified")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("tuned config is invalid: %v", err)
	}
}

func TestComputeFitness(t *testing.T) {
	fe := &FitnessEvaluator{targetClear: 0.5, targetSec: 20}

	if got := fe.computeFitness(telemetry.Summary{}); got != noSessionsPenalty {
		t.Errorf("expected penalty for no sessions, got %f", got)
	}

	onTarget := fe.computeFitness(telemetry.Summary{Sessions: 4, ClearRate: 0.5, DurationMean: 20})
	if onTarget != 0 {
		t.Errorf("expected zero fitness on target, got %f", onTarget)
	}

	tooEasy := fe.computeFitness(telemetry.Summary{Sessions: 4, ClearRate: 1, DurationMean: 20})
	tooLong := fe.computeFitness(telemetry.Summary{Sessions: 4, ClearRate: 0.5, DurationMean: 40})
	if tooEasy <= onTarget || tooLong <= onTarget {
		t.Error("missing the target should cost fitness")
	}
	if tooEasy != 0.25 || tooLong != 0.25 {
		t.Errorf("unexpected fitness values easy=%f long=%f", tooEasy, tooLong)
	}
}
