package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/peeps/systems"
)

// HUDData holds all the data needed to render the in-game HUD.
type HUDData struct {
	State     string
	Peeps     int
	Collected int
	Sessions  int
	FPS       int32
}

// HUD renders the in-game heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	x, y := r.Theme.Padding, r.Theme.Padding

	r.DrawPanel(x-4, y-4, 220, 5*r.Theme.LineHeight+8)
	y = r.DrawLabelValue(x, y, "State", data.State)
	y = r.DrawLabelValue(x, y, "Peeps", fmt.Sprintf("%d", data.Peeps))
	y = r.DrawLabelValue(x, y, "Collected", fmt.Sprintf("%d", data.Collected))
	y = r.DrawLabelValue(x, y, "Sessions", fmt.Sprintf("%d", data.Sessions))
	r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d", data.FPS))
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	SystemTimes map[string]time.Duration
	Total       time.Duration
	Registry    *systems.SystemRegistry
}

// PerfPanel renders the system performance panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel, slowest system first.
func (p *PerfPanel) Draw(data PerfPanelData, sortedIDs []string) {
	r := p.renderer
	x := p.x
	y := p.y

	rl.DrawText("System Performance", x, y, r.Theme.HeaderFontSize, r.Theme.TitleColor)
	y += r.Theme.HeaderFontSize + 4

	rl.DrawText(fmt.Sprintf("Total: %s", data.Total.Round(time.Microsecond)), x, y, 14, rl.Yellow)
	y += 16

	for _, id := range sortedIDs {
		avg := data.SystemTimes[id]
		pct := float64(0)
		if data.Total > 0 {
			pct = float64(avg) / float64(data.Total) * 100
		}

		color := r.Theme.LabelColor
		if pct > 40 {
			color = r.Theme.WarnColor
		}

		displayName := id
		if data.Registry != nil {
			displayName = data.Registry.GetName(id)
		}

		rl.DrawText(
			fmt.Sprintf("%-14s %6s %5.1f%%", displayName, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
