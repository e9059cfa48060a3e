// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Bounds modes for the motion system.
const (
	BoundsFixed  = "fixed"  // use motion.min_x/max_x/min_y/max_y
	BoundsWindow = "window" // derive from the current viewport size
)

// Splash targets.
const (
	TargetInGame = "ingame"
	TargetMenu   = "menu"
)

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Splash    SplashConfig    `yaml:"splash"`
	Motion    MotionConfig    `yaml:"motion"`
	Bob       BobConfig       `yaml:"bob"`
	Player    PlayerConfig    `yaml:"player"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Assets    AssetsConfig    `yaml:"assets"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// PhysicsConfig holds the fixed step used by headless runs.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"`
}

// SplashConfig controls the splash countdown.
type SplashConfig struct {
	Duration float64 `yaml:"duration"` // seconds
	Target   string  `yaml:"target"`   // "ingame" or "menu"
}

// MotionConfig controls bouncing entities.
type MotionConfig struct {
	Bounds        string  `yaml:"bounds"` // "fixed" or "window"
	MinX          float64 `yaml:"min_x"`
	MaxX          float64 `yaml:"max_x"`
	MinY          float64 `yaml:"min_y"`
	MaxY          float64 `yaml:"max_y"`
	ClampOnBounce bool    `yaml:"clamp_on_bounce"`
}

// BobConfig controls the secondary vertical oscillation.
type BobConfig struct {
	Omega     float64 `yaml:"omega"`     // angular frequency (rad/s)
	Amplitude float64 `yaml:"amplitude"` // offset added per tick at peak
}

// PlayerConfig holds player parameters.
type PlayerConfig struct {
	Speed   float64 `yaml:"speed"` // units per second
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	StartX  float64 `yaml:"start_x"`
	StartY  float64 `yaml:"start_y"`
	Confine bool    `yaml:"confine"` // keep the player inside the viewport
}

// AreaConfig is an axis-aligned spawn rectangle.
type AreaConfig struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// SpawnConfig holds InGame layout parameters.
type SpawnConfig struct {
	Peeps           int        `yaml:"peeps"`
	StationaryPeeps int        `yaml:"stationary_peeps"`
	Walls           int        `yaml:"walls"`
	Area            AreaConfig `yaml:"area"`
	SpeedMin        float64    `yaml:"speed_min"`
	SpeedMax        float64    `yaml:"speed_max"`
	WallGrid        float64    `yaml:"wall_grid"`   // wall positions snap to multiples of this
	SafeRadius      float64    `yaml:"safe_radius"` // no walls this close to the player start
	PeepSize        float64    `yaml:"peep_size"`
	WallSize        float64    `yaml:"wall_size"`
}

// AssetsConfig locates sprite textures.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	OutputDir    string  `yaml:"output_dir"`
	PerfInterval float64 `yaml:"perf_interval"` // seconds between perf log lines
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32         float32 // Physics.DT as float32
	ScreenW32    float32 // Screen.Width as float32
	ScreenH32    float32 // Screen.Height as float32
	SplashToMenu bool    // Splash.Target == "menu"
	WindowBounds bool    // Motion.Bounds == "window"
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. The result is validated.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse builds a configuration from YAML bytes layered over the embedded defaults.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.computeDerived()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.SplashToMenu = c.Splash.Target == TargetMenu
	c.Derived.WindowBounds = c.Motion.Bounds == BoundsWindow
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
