// Package game drives the simulation: it owns the entity store, the clock and
// the current state, runs the systems scheduled for that state and applies
// state transitions.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/peeps/components"
	"github.com/pthm-cable/peeps/config"
	"github.com/pthm-cable/peeps/input"
	"github.com/pthm-cable/peeps/state"
	"github.com/pthm-cable/peeps/store"
	"github.com/pthm-cable/peeps/systems"
	"github.com/pthm-cable/peeps/telemetry"
)

// Clock is the simulation time fed by the driver.
type Clock struct {
	Delta   float32 // seconds covered by the last tick
	Elapsed float32 // seconds since the game was created
	Tick    int64   // ticks run so far
}

// Options configures a new game.
type Options struct {
	Seed     int64
	Input    input.Source             // nil means no keys held; an Observer sees the store each tick
	Viewport func() (w, h float32)    // nil means the configured screen size
	Layout   Layout                   // nil means RandomLayout
	Output   *telemetry.OutputManager // nil disables session output
	LogPerf  bool
}

type scheduled struct {
	id     string
	sys    systems.System
	player bool // reads the player singleton
}

// Game holds the complete game state.
type Game struct {
	cfg      *config.Config
	rng      *rand.Rand
	store    *store.Store
	keys     input.Source
	viewport func() (w, h float32)
	layout   Layout

	state    state.State
	pending  *state.Transition
	last     state.Transition
	opts     state.Options
	clock    Clock
	splash   systems.Timer
	choice   state.Choice
	quit     bool
	report   systems.Report
	schedule map[state.State][]scheduled

	registry *systems.SystemRegistry
	perf     *PerfStats
	logPerf  bool
	perfNext float32

	collector    *telemetry.Collector
	output       *telemetry.OutputManager
	sessionStart float32
}

// New creates a game in the Splash state.
// An invalid configuration is refused.
func New(cfg *config.Config, opts Options) (*Game, error) {
	if cfg == nil {
		return nil, fmt.Errorf("new game: %w", config.ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		store:     store.New(),
		keys:      opts.Input,
		viewport:  opts.Viewport,
		layout:    opts.Layout,
		opts:      state.Options{SplashToMenu: cfg.Derived.SplashToMenu},
		splash:    systems.NewTimer(float32(cfg.Splash.Duration)),
		registry:  systems.NewSystemRegistry(),
		perf:      NewPerfStats(),
		logPerf:   opts.LogPerf,
		perfNext:  float32(cfg.Telemetry.PerfInterval),
		collector: telemetry.NewCollector(opts.Seed),
		output:    opts.Output,
	}
	if g.keys == nil {
		g.keys = input.None{}
	}
	if g.viewport == nil {
		w, h := cfg.Derived.ScreenW32, cfg.Derived.ScreenH32
		g.viewport = func() (float32, float32) { return w, h }
	}
	if g.layout == nil {
		g.layout = RandomLayout
	}
	g.buildSchedule()

	g.state = state.Splash
	for _, effect := range state.Enter(state.Splash) {
		g.apply(effect, state.ReasonNone)
	}
	return g, nil
}

// buildSchedule fixes the system order for each state.
func (g *Game) buildSchedule() {
	ingame := []scheduled{
		{systems.IDPlayerInput, systems.NewPlayerInputSystem(g.cfg.Player), true},
	}
	if g.cfg.Player.Confine {
		ingame = append(ingame, scheduled{systems.IDConfine, systems.ConfineSystem{}, true})
	}
	ingame = append(ingame,
		scheduled{systems.IDMotion, systems.NewMotionSystem(g.cfg.Motion), false},
		scheduled{systems.IDBob, systems.NewBobSystem(g.cfg.Bob), false},
		scheduled{systems.IDPickup, systems.PickupSystem{}, true},
		scheduled{systems.IDWalls, systems.WallSystem{}, true},
	)

	g.schedule = map[state.State][]scheduled{
		state.Splash: {
			{systems.IDCountdown, systems.CountdownSystem{Timer: &g.splash}, false},
		},
		state.InGame: ingame,
	}
}

// Tick advances the simulation by dt seconds.
//
// A transition decided on the previous tick is applied first. Then the
// systems scheduled for the current state run in order, deferred despawns
// are flushed and the end conditions are evaluated. If a player system fails
// the remaining player systems of the tick are skipped while motion and bob
// still run; any other failure skips the rest of the tick's systems. Errors
// are returned after the tick flushes and evaluates transitions.
func (g *Game) Tick(dt float32) error {
	if g.pending != nil {
		tr := *g.pending
		g.pending = nil
		g.applyTransition(tr)
	}

	if obs, ok := g.keys.(Observer); ok {
		obs.Observe(g.store)
	}

	g.clock.Delta = dt
	g.clock.Elapsed += dt
	g.clock.Tick++

	w, h := g.viewport()
	g.report = systems.Report{}
	tick := systems.Tick{
		DT:      dt,
		Elapsed: g.clock.Elapsed,
		Keys:    g.keys,
		ViewW:   w,
		ViewH:   h,
		Report:  &g.report,
	}

	var errs []error
	skipPlayer := false
	for _, s := range g.schedule[g.state] {
		if skipPlayer && s.player {
			continue
		}
		start := time.Now()
		err := s.sys.Update(g.store, tick)
		g.perf.Record(s.id, time.Since(start))
		if err != nil {
			slog.Warn("system failed",
				"system", g.registry.GetName(s.id),
				"state", g.state.String(),
				"tick", g.clock.Tick,
				"error", err,
			)
			g.collector.RecordSystemError()
			errs = append(errs, fmt.Errorf("%s: %w", s.id, err))
			if !s.player {
				break
			}
			skipPlayer = true
		}
	}

	g.store.Flush()
	g.collector.RecordPickups(g.report.Collected)
	g.collector.RecordBounces(g.report.BouncesX + g.report.BouncesY)

	tr := state.Next(g.state, g.events(), g.opts)
	g.choice = state.ChoiceNone
	if tr.Taken() {
		g.pending = &tr
		slog.Info("transition scheduled",
			"from", tr.From.String(),
			"to", tr.To.String(),
			"reason", tr.Reason.String(),
			"tick", g.clock.Tick,
		)
	}

	if g.logPerf && g.clock.Elapsed >= g.perfNext {
		g.perf.Log(g.clock.Tick, g.registry)
		g.perfNext = g.clock.Elapsed + float32(g.cfg.Telemetry.PerfInterval)
	}

	return errors.Join(errs...)
}

// events gathers what the state machine reads at the end of a tick.
func (g *Game) events() state.Events {
	ev := state.Events{
		SplashExpired: g.splash.Finished(),
		Choice:        g.choice,
		SkipPressed:   g.keys.Down(input.KeySkip),
	}
	if g.state == state.MainMenu && ev.Choice == state.ChoiceNone && g.keys.Down(input.KeyConfirm) {
		ev.Choice = state.ChoicePlay
	}
	if g.state == state.InGame {
		ev.PeepsRemaining = g.store.Count(components.KindPeep)
		if player, err := g.store.Player(); err == nil {
			ev.PlayerDead = g.store.IsDead(player)
		}
	}
	return ev
}

// applyTransition performs a transition's effects and changes state.
func (g *Game) applyTransition(tr state.Transition) {
	g.state = tr.To
	g.last = tr
	for _, effect := range tr.Effects {
		g.apply(effect, tr.Reason)
	}
	if tr.Changed() {
		slog.Info("state changed",
			"from", tr.From.String(),
			"to", tr.To.String(),
			"reason", tr.Reason.String(),
			"tick", g.clock.Tick,
		)
	}
}

// apply performs one side effect of a transition.
func (g *Game) apply(effect state.Effect, reason state.Reason) {
	switch effect {
	case state.TeardownSplash:
		g.store.DespawnScreen(components.ScreenSplash)
	case state.TeardownMenu:
		g.store.DespawnScreen(components.ScreenMenu)
	case state.TeardownGame:
		g.store.DespawnScreen(components.ScreenGame)
	case state.SetupSplash:
		g.splash.Reset()
		spawnSplash(g.store)
	case state.SetupMenu:
		g.choice = state.ChoiceNone
	case state.SetupGame:
		g.layout(g.store, g.cfg, g.rng)
		g.sessionStart = g.clock.Elapsed
		g.collector.Begin(g.clock.Tick, g.store.Count(components.KindPeep), g.store.Count(components.KindWall))
		slog.Info("session started",
			"tick", g.clock.Tick,
			"peeps", g.store.Count(components.KindPeep),
			"walls", g.store.Count(components.KindWall),
		)
	case state.RecordSession:
		g.endSession(outcomeFor(reason))
	case state.Exit:
		g.quit = true
	}
}

// endSession closes the telemetry record and writes it out.
func (g *Game) endSession(outcome string) {
	rec, ok := g.collector.End(g.clock.Tick, float64(g.clock.Elapsed-g.sessionStart), outcome)
	if !ok {
		return
	}
	if err := g.output.WriteSession(rec); err != nil {
		slog.Error("failed to write session", "error", err)
	}
}

func outcomeFor(reason state.Reason) string {
	switch reason {
	case state.ReasonCleared:
		return telemetry.OutcomeCleared
	case state.ReasonDied:
		return telemetry.OutcomeDied
	case state.ReasonSkipped:
		return telemetry.OutcomeSkipped
	}
	return telemetry.OutcomeAborted
}

// Choose records a main-menu selection, read at the end of the next tick.
// Ignored outside the menu.
func (g *Game) Choose(c state.Choice) {
	if g.state == state.MainMenu {
		g.choice = c
	}
}

// Close records an unfinished session and logs the session summary.
func (g *Game) Close() {
	if g.collector.Active() {
		g.endSession(telemetry.OutcomeAborted)
	}
	telemetry.Summarize(g.collector.History()).Log()
}

// State returns the current game state.
func (g *Game) State() state.State { return g.state }

// LastTransition returns the most recently applied transition.
func (g *Game) LastTransition() state.Transition { return g.last }

// Pending returns the transition scheduled for the next tick, if any.
func (g *Game) Pending() (state.Transition, bool) {
	if g.pending == nil {
		return state.Transition{}, false
	}
	return *g.pending, true
}

// Store returns the entity store.
func (g *Game) Store() *store.Store { return g.store }

// Clock returns the simulation clock.
func (g *Game) Clock() Clock { return g.clock }

// SplashRemaining returns the seconds left on the splash countdown.
func (g *Game) SplashRemaining() float32 { return g.splash.Remaining() }

// Report returns what happened during the last tick.
func (g *Game) Report() systems.Report { return g.report }

// Session returns the record of the session in progress, if any.
func (g *Game) Session() (telemetry.SessionRecord, bool) { return g.collector.Current() }

// Sessions returns the finished session records.
func (g *Game) Sessions() []telemetry.SessionRecord { return g.collector.History() }

// Quit reports whether the Exit effect has been applied.
func (g *Game) Quit() bool { return g.quit }

// Perf returns the per-system timing tracker.
func (g *Game) Perf() *PerfStats { return g.perf }

// Registry returns the system metadata registry.
func (g *Game) Registry() *systems.SystemRegistry { return g.registry }

// Config returns the game configuration.
func (g *Game) Config() *config.Config { return g.cfg }
