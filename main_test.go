package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/peeps/camera"
	"github.com/pthm-cable/peeps/config"
	"github.com/pthm-cable/peeps/state"
	"github.com/pthm-cable/peeps/telemetry"
)

func parseConfig(t *testing.T, yaml string) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("parsing config: %v", err)
	}
	return cfg
}

func TestCheckRun(t *testing.T) {
	menu := parseConfig(t, "splash:\n  target: menu\n")
	ingame := parseConfig(t, "")

	tests := []struct {
		name      string
		cfg       *config.Config
		headless  bool
		autopilot bool
		wantErr   bool
	}{
		{"headless menu without autopilot", menu, true, false, true},
		{"headless menu with autopilot", menu, true, true, false},
		{"windowed menu", menu, false, false, false},
		{"headless ingame", ingame, true, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := checkRun(tc.cfg, tc.headless, tc.autopilot)
			if tc.wantErr != errors.Is(err, errHeadlessMenu) {
				t.Errorf("checkRun() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFrameCameraShowsFixedBounds(t *testing.T) {
	cfg := parseConfig(t, "")
	m := cfg.Motion

	for _, size := range [][2]float32{{1280, 720}, {800, 600}} {
		cam := camera.New(size[0], size[1])
		frameCamera(cam, cfg)

		w, h := cam.ViewSize()
		if w < float32(m.MaxX-m.MinX)-0.01 || h < float32(m.MaxY-m.MinY)-0.01 {
			t.Errorf("%vx%v window: view %fx%f does not cover the bounce bounds", size[0], size[1], w, h)
		}
		if !cam.IsVisible(float32(m.MaxX)-2, 0, 0, 0) {
			t.Errorf("%vx%v window: peep near max_x is culled", size[0], size[1])
		}
	}
}

func TestFrameCameraLeavesWindowBounds(t *testing.T) {
	cfg := parseConfig(t, "motion:\n  bounds: window\n")
	cam := camera.New(800, 600)
	frameCamera(cam, cfg)

	if cam.Zoom != 1 {
		t.Errorf("expected 1:1 zoom for window bounds, got %f", cam.Zoom)
	}
}

func TestLastOutcome(t *testing.T) {
	tests := []struct {
		name string
		tr   state.Transition
		want string
	}{
		{"none yet", state.Transition{}, ""},
		{"died", state.Transition{From: state.InGame, To: state.Splash, Reason: state.ReasonDied}, "Last session: died"},
		{"cleared", state.Transition{From: state.InGame, To: state.Splash, Reason: state.ReasonCleared}, "Last session: cleared"},
		{"splash timer", state.Transition{From: state.Splash, To: state.InGame, Reason: state.ReasonTimer}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := lastOutcome(tc.tr); got != tc.want {
				t.Errorf("lastOutcome() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSummarizeSessions(t *testing.T) {
	dir := t.TempDir()
	om, err := telemetry.NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	for _, outcome := range []string{telemetry.OutcomeCleared, telemetry.OutcomeDied} {
		if err := om.WriteSession(telemetry.SessionRecord{ID: outcome, Outcome: outcome, DurationSec: 5}); err != nil {
			t.Fatalf("WriteSession: %v", err)
		}
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if err := summarizeSessions(filepath.Join(dir, "sessions.csv")); err != nil {
		t.Errorf("summarizeSessions: %v", err)
	}
	if err := summarizeSessions(filepath.Join(dir, "missing.csv")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
