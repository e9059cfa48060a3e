package ui

import "fmt"

// Splash draws the caption under the splash sprite.
type Splash struct {
	renderer *Renderer
}

// NewSplash creates a splash caption renderer.
func NewSplash() *Splash {
	return &Splash{renderer: NewRenderer()}
}

// Draw renders the title, how the last session ended (if any) and the time
// left before the game starts.
func (s *Splash) Draw(title, lastOutcome string, remaining float32, screenW, screenH int32) {
	r := s.renderer
	cx := screenW / 2
	r.DrawCentered(title, cx, screenH-3*r.Theme.TitleFontSize, r.Theme.TitleFontSize, r.Theme.TitleColor)
	if lastOutcome != "" {
		r.DrawCentered(lastOutcome, cx, r.Theme.TitleFontSize, r.Theme.HeaderFontSize, r.Theme.WarnColor)
	}
	r.DrawCentered(fmt.Sprintf("%.1f", remaining), cx, screenH-r.Theme.TitleFontSize, r.Theme.FontSize, r.Theme.LabelColor)
}
