package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"

	"github.com/pthm-cable/peeps/state"
)

const (
	buttonW = 200
	buttonH = 40
	spacing = 16
)

// Menu draws the main menu with Play and Quit buttons.
type Menu struct {
	renderer *Renderer
	title    string
}

// NewMenu creates a main menu with the given title.
func NewMenu(title string) *Menu {
	return &Menu{renderer: NewRenderer(), title: title}
}

// Draw renders the menu and returns the button clicked this frame, if any.
func (m *Menu) Draw(screenW, screenH int32) state.Choice {
	r := m.renderer
	cx := float32(screenW) / 2
	top := float32(screenH)/2 - buttonH - spacing

	r.DrawCentered(m.title, int32(cx), int32(top)-2*r.Theme.TitleFontSize, r.Theme.TitleFontSize, r.Theme.TitleColor)

	play := rl.Rectangle{X: cx - buttonW/2, Y: top, Width: buttonW, Height: buttonH}
	quit := rl.Rectangle{X: cx - buttonW/2, Y: top + buttonH + spacing, Width: buttonW, Height: buttonH}

	choice := state.ChoiceNone
	if gui.Button(play, "Play") {
		choice = state.ChoicePlay
	}
	if gui.Button(quit, "Quit") {
		choice = state.ChoiceQuit
	}

	r.DrawCentered("Enter to play", int32(cx), int32(quit.Y+quit.Height)+spacing, r.Theme.FontSize, r.Theme.LabelColor)
	return choice
}
