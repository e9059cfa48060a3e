package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/peeps/camera"
	"github.com/pthm-cable/peeps/components"
	"github.com/pthm-cable/peeps/config"
	"github.com/pthm-cable/peeps/game"
	"github.com/pthm-cable/peeps/input"
	"github.com/pthm-cable/peeps/input/rlinput"
	"github.com/pthm-cable/peeps/renderer"
	"github.com/pthm-cable/peeps/state"
	"github.com/pthm-cable/peeps/telemetry"
	"github.com/pthm-cable/peeps/ui"
)

// maxFrameDT caps the frame delta after a stall (window drag, breakpoint).
const maxFrameDT = 0.25

const controls = "Arrows/WASD: move | Q: end session | Enter: play | F3: perf"

// errHeadlessMenu is returned when a headless run would wait on the main menu forever.
var errHeadlessMenu = errors.New("headless run with splash.target menu needs -autopilot to leave the menu")

func main() {
	if err := run(); err != nil {
		slog.Error("exiting", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics (with splash.target menu, requires -autopilot)")
	autopilot := flag.Bool("autopilot", false, "Let the autopilot play (headless input)")
	outputDir := flag.String("output-dir", "", "Output directory for sessions.csv and config snapshot (empty = use config)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	logPerf := flag.Bool("log-perf", false, "Log per-system timings via slog")
	summarize := flag.String("summarize", "", "Log the summary of an existing sessions.csv and exit")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *summarize != "" {
		return summarizeSessions(*summarize)
	}

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg()

	if err := checkRun(cfg, *headless, *autopilot); err != nil {
		return err
	}

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	dir := cfg.Telemetry.OutputDir
	if *outputDir != "" {
		dir = *outputDir
	}
	output, err := telemetry.NewOutputManager(dir)
	if err != nil {
		return fmt.Errorf("setting up output: %w", err)
	}
	defer output.Close()
	if output != nil {
		slog.Info("writing sessions", "dir", output.Dir())
	}
	if err := output.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	opts := game.Options{
		Seed:    rngSeed,
		Output:  output,
		LogPerf: *logPerf,
	}

	if *headless {
		return runHeadless(cfg, opts, *autopilot, *maxTicks)
	}
	return runWindow(cfg, opts, *autopilot, *maxTicks)
}

// checkRun rejects flag and config combinations that can never make progress.
func checkRun(cfg *config.Config, headless, autopilot bool) error {
	if headless && !autopilot && cfg.Derived.SplashToMenu {
		return errHeadlessMenu
	}
	return nil
}

// runHeadless steps the game with the fixed physics dt and no window.
func runHeadless(cfg *config.Config, opts game.Options, autopilot bool, maxTicks int) error {
	opts.Input = input.None{}
	if autopilot {
		opts.Input = game.NewAutopilot()
	}

	g, err := game.New(cfg, opts)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	defer g.Close()

	slog.Info("starting headless run",
		"seed", opts.Seed,
		"max_ticks", maxTicks,
		"autopilot", autopilot,
	)

	dt := cfg.Derived.DT32
	for !g.Quit() {
		// System errors are logged by the game
		_ = g.Tick(dt)

		if maxTicks > 0 && int(g.Clock().Tick) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Clock().Tick)
			return nil
		}
	}
	return nil
}

// summarizeSessions logs the summary statistics of a sessions.csv file.
func summarizeSessions(path string) error {
	records, err := telemetry.ReadSessions(path)
	if err != nil {
		return fmt.Errorf("reading sessions: %w", err)
	}
	telemetry.Summarize(records).Log()
	return nil
}

// lastOutcome describes how the session behind tr ended, or "" when tr did
// not end a session.
func lastOutcome(tr state.Transition) string {
	if tr.From != state.InGame || !tr.Changed() {
		return ""
	}
	return "Last session: " + tr.Reason.String()
}

// frameCamera fits fixed bounce bounds to the window so every peep stays on screen.
// Window-derived bounds already match the view at 1:1.
func frameCamera(cam *camera.Camera, cfg *config.Config) {
	if cfg.Derived.WindowBounds {
		return
	}
	m := cfg.Motion
	cam.Frame(float32(m.MinX), float32(m.MinY), float32(m.MaxX), float32(m.MaxY))
}

// runWindow runs the graphical loop driven by the raylib frame clock.
func runWindow(cfg *config.Config, opts game.Options, autopilot bool, maxTicks int) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	rl.SetExitKey(rl.KeyEscape)

	cam := camera.New(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	frameCamera(cam, cfg)

	opts.Input = rlinput.Keyboard{}
	if autopilot {
		opts.Input = game.NewAutopilot()
	}
	opts.Viewport = cam.ViewSize

	g, err := game.New(cfg, opts)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	defer g.Close()

	atlas := renderer.NewAtlas(cfg.Assets.Dir)
	atlas.Init()
	defer atlas.Unload()

	scene := renderer.NewSceneRenderer(atlas)
	hud := ui.NewHUD()
	menu := ui.NewMenu(cfg.Screen.Title)
	splash := ui.NewSplash()
	perfPanel := ui.NewPerfPanel(0, 10)
	showPerf := false

	for !rl.WindowShouldClose() && !g.Quit() {
		sw, sh := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
		cam.Resize(float32(sw), float32(sh))
		frameCamera(cam, cfg)

		if rl.IsKeyPressed(rl.KeyF3) {
			showPerf = !showPerf
		}

		dt := rl.GetFrameTime()
		if dt > maxFrameDT {
			dt = maxFrameDT
		}
		_ = g.Tick(dt)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 24, G: 24, B: 32, A: 255})
		scene.Draw(g.Store(), cam)

		switch g.State() {
		case state.Splash:
			splash.Draw(cfg.Screen.Title, lastOutcome(g.LastTransition()), g.SplashRemaining(), sw, sh)
		case state.MainMenu:
			if choice := menu.Draw(sw, sh); choice != state.ChoiceNone {
				g.Choose(choice)
			}
		case state.InGame:
			data := ui.HUDData{
				State:    g.State().String(),
				Peeps:    g.Store().Count(components.KindPeep),
				Sessions: len(g.Sessions()),
				FPS:      rl.GetFPS(),
			}
			if rec, ok := g.Session(); ok {
				data.Collected = rec.PeepsCollected
			}
			hud.Draw(data)
			hud.DrawControls(sh, controls)
		}

		if showPerf {
			drawPerf(perfPanel, g, sw)
		}

		rl.EndDrawing()

		if maxTicks > 0 && int(g.Clock().Tick) >= maxTicks {
			break
		}
	}
	return nil
}

func drawPerf(panel *ui.PerfPanel, g *game.Game, screenW int32) {
	perf := g.Perf()
	ids := perf.SortedIDs()
	times := make(map[string]time.Duration, len(ids))
	for _, id := range ids {
		times[id] = perf.Avg(id)
	}

	panel.SetPosition(screenW-260, 10)
	panel.Draw(ui.PerfPanelData{
		SystemTimes: times,
		Total:       perf.Total(),
		Registry:    g.Registry(),
	}, ids)
}
