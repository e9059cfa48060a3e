package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every configuration validation failure.
var ErrInvalid = errors.New("invalid configuration")

// ValidationError reports a single bad configuration field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalid.
func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks the values the game cannot start without.
// All failures are collected so a broken file reports everything at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, invalid("screen", "width and height must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Physics.DT <= 0 {
		errs = append(errs, invalid("physics.dt", "must be positive, got %g", c.Physics.DT))
	}
	if c.Splash.Duration <= 0 {
		errs = append(errs, invalid("splash.duration", "must be positive, got %g", c.Splash.Duration))
	}
	if c.Splash.Target != TargetInGame && c.Splash.Target != TargetMenu {
		errs = append(errs, invalid("splash.target", "must be %q or %q, got %q", TargetInGame, TargetMenu, c.Splash.Target))
	}

	switch c.Motion.Bounds {
	case BoundsFixed:
		if c.Motion.MaxX <= c.Motion.MinX {
			errs = append(errs, invalid("motion.max_x", "must exceed min_x (%g <= %g)", c.Motion.MaxX, c.Motion.MinX))
		}
		if c.Motion.MaxY <= c.Motion.MinY {
			errs = append(errs, invalid("motion.max_y", "must exceed min_y (%g <= %g)", c.Motion.MaxY, c.Motion.MinY))
		}
	case BoundsWindow:
	default:
		errs = append(errs, invalid("motion.bounds", "must be %q or %q, got %q", BoundsFixed, BoundsWindow, c.Motion.Bounds))
	}

	if c.Bob.Omega <= 0 {
		errs = append(errs, invalid("bob.omega", "must be positive, got %g", c.Bob.Omega))
	}
	if c.Bob.Amplitude < 0 {
		errs = append(errs, invalid("bob.amplitude", "must not be negative, got %g", c.Bob.Amplitude))
	}

	if c.Player.Speed <= 0 {
		errs = append(errs, invalid("player.speed", "must be positive, got %g", c.Player.Speed))
	}

	s := c.Spawn
	if s.Peeps < 0 || s.Walls < 0 {
		errs = append(errs, invalid("spawn", "counts must not be negative (peeps=%d walls=%d)", s.Peeps, s.Walls))
	}
	if s.StationaryPeeps < 0 || s.StationaryPeeps > s.Peeps {
		errs = append(errs, invalid("spawn.stationary_peeps", "must be within [0, %d], got %d", s.Peeps, s.StationaryPeeps))
	}
	if s.Area.MaxX <= s.Area.MinX || s.Area.MaxY <= s.Area.MinY {
		errs = append(errs, invalid("spawn.area", "bounds missing or empty (%g..%g, %g..%g)", s.Area.MinX, s.Area.MaxX, s.Area.MinY, s.Area.MaxY))
	}
	if s.SpeedMin < 0 || s.SpeedMax < s.SpeedMin {
		errs = append(errs, invalid("spawn.speed", "range missing or inverted (%g..%g)", s.SpeedMin, s.SpeedMax))
	}
	if s.Peeps > s.StationaryPeeps && s.SpeedMax <= 0 {
		errs = append(errs, invalid("spawn.speed_max", "moving peeps need a positive speed"))
	}
	if s.WallGrid < 0 {
		errs = append(errs, invalid("spawn.wall_grid", "must not be negative, got %g", s.WallGrid))
	}

	return errors.Join(errs...)
}
