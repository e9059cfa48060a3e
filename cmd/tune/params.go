// Package main tunes game difficulty with CMA-ES against an autopilot player.
package main

import (
	"math"

	"github.com/pthm-cable/peeps/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
	Integer bool    // rounded before use
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "peeps", Path: "spawn.peeps", Min: 3, Max: 30, Default: 10, Integer: true},
			{Name: "walls", Path: "spawn.walls", Min: 0, Max: 30, Default: 8, Integer: true},
			{Name: "speed_max", Path: "spawn.speed_max", Min: 60, Max: 500, Default: 200},
			{Name: "player_speed", Path: "player.speed", Min: 100, Max: 600, Default: 300},
			{Name: "wall_size", Path: "spawn.wall_size", Min: 16, Max: 128, Default: 64},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds, rounding integer parameters.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := math.Max(spec.Min, math.Min(spec.Max, v[i]))
		if spec.Integer {
			val = math.Round(val)
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Spawn.Peeps = int(clamped[0])
	cfg.Spawn.Walls = int(clamped[1])
	cfg.Spawn.SpeedMax = clamped[2]
	cfg.Player.Speed = clamped[3]
	cfg.Spawn.WallSize = clamped[4]

	// Keep the config valid when the bounds move
	if cfg.Spawn.StationaryPeeps > cfg.Spawn.Peeps {
		cfg.Spawn.StationaryPeeps = cfg.Spawn.Peeps
	}
	if cfg.Spawn.SpeedMin > cfg.Spawn.SpeedMax {
		cfg.Spawn.SpeedMin = cfg.Spawn.SpeedMax
	}
}

// WithParams returns a copy of base with values applied; base is not modified.
func (pv *ParamVector) WithParams(base *config.Config, values []float64) *config.Config {
	cfg := *base
	pv.ApplyToConfig(&cfg, values)
	return &cfg
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		float64(cfg.Spawn.Peeps),
		float64(cfg.Spawn.Walls),
		cfg.Spawn.SpeedMax,
		cfg.Player.Speed,
		cfg.Spawn.WallSize,
	}
}
