// Package state holds the game-state machine as a pure transition function.
// The caller owns the current State and applies the returned effects.
package state

// State is the active game screen.
type State uint8

const (
	Splash State = iota
	MainMenu
	InGame
)

// String returns the display name for a State.
func (s State) String() string {
	switch s {
	case Splash:
		return "Splash"
	case MainMenu:
		return "MainMenu"
	case InGame:
		return "InGame"
	}
	return "Unknown"
}

// Reason explains why a transition was taken.
type Reason uint8

const (
	ReasonNone    Reason = iota
	ReasonTimer          // splash countdown expired
	ReasonPlay           // Play chosen on the menu
	ReasonQuit           // Quit chosen on the menu
	ReasonCleared        // no peeps remain
	ReasonDied           // player hit a wall
	ReasonSkipped        // skip key held
)

// String returns the display name for a Reason.
func (r Reason) String() string {
	names := [...]string{"none", "timer", "play", "quit", "cleared", "died", "skipped"}
	if int(r) < len(names) {
		return names[r]
	}
	return "unknown"
}

// Effect is a side effect the caller performs when applying a transition.
type Effect uint8

const (
	TeardownSplash Effect = iota
	TeardownMenu
	TeardownGame
	SetupSplash
	SetupMenu
	SetupGame
	RecordSession // close the telemetry record for the session that just ended
	Exit          // stop the program
)

// String returns the display name for an Effect.
func (e Effect) String() string {
	names := [...]string{"teardownSplash", "teardownMenu", "teardownGame", "setupSplash", "setupMenu", "setupGame", "recordSession", "exit"}
	if int(e) < len(names) {
		return names[e]
	}
	return "unknown"
}

// Choice is a main-menu selection.
type Choice uint8

const (
	ChoiceNone Choice = iota
	ChoicePlay
	ChoiceQuit
)

// Events is everything the controller reads at the end of a tick.
type Events struct {
	SplashExpired  bool
	Choice         Choice
	PeepsRemaining int
	PlayerDead     bool
	SkipPressed    bool
}

// Options configures the transition graph.
type Options struct {
	SplashToMenu bool // Splash leads to MainMenu instead of InGame
}

// Transition is the outcome of one evaluation.
type Transition struct {
	From    State
	To      State
	Reason  Reason
	Effects []Effect
}

// Changed reports whether the transition moves to another state.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Taken reports whether anything happens at all.
func (t Transition) Taken() bool {
	return t.Reason != ReasonNone
}

// Enter returns the effects of entering s from nothing (program start).
func Enter(s State) []Effect {
	return enterEffects(s)
}

// Next evaluates the transition out of cur for the given events.
// At most one transition is returned. When several end conditions hold at
// once they all lead to the same state; the reason reports the first in
// the order died, cleared, skipped.
func Next(cur State, ev Events, opts Options) Transition {
	stay := Transition{From: cur, To: cur}

	switch cur {
	case Splash:
		if !ev.SplashExpired {
			return stay
		}
		to := InGame
		if opts.SplashToMenu {
			to = MainMenu
		}
		return change(cur, to, ReasonTimer)

	case MainMenu:
		switch ev.Choice {
		case ChoicePlay:
			return change(cur, InGame, ReasonPlay)
		case ChoiceQuit:
			return Transition{From: cur, To: cur, Reason: ReasonQuit, Effects: []Effect{Exit}}
		}
		return stay

	case InGame:
		switch {
		case ev.PlayerDead:
			return change(cur, Splash, ReasonDied)
		case ev.PeepsRemaining <= 0:
			return change(cur, Splash, ReasonCleared)
		case ev.SkipPressed:
			return change(cur, Splash, ReasonSkipped)
		}
		return stay
	}

	return stay
}

func change(from, to State, reason Reason) Transition {
	effects := append(exitEffects(from), enterEffects(to)...)
	return Transition{From: from, To: to, Reason: reason, Effects: effects}
}

func exitEffects(s State) []Effect {
	switch s {
	case Splash:
		return []Effect{TeardownSplash}
	case MainMenu:
		return []Effect{TeardownMenu}
	case InGame:
		return []Effect{RecordSession, TeardownGame}
	}
	return nil
}

func enterEffects(s State) []Effect {
	switch s {
	case Splash:
		return []Effect{SetupSplash}
	case MainMenu:
		return []Effect{SetupMenu}
	case InGame:
		return []Effect{SetupGame}
	}
	return nil
}
