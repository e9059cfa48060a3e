// Package camera maps world coordinates to screen pixels.
package camera

// Camera controls the viewport into the game world.
// World space is centred on the origin with +y up; screen space has its
// origin at the top-left corner with +y down.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the world origin with 1:1 zoom.
func New(viewportW, viewportH float32) *Camera {
	return &Camera{
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   0.1,
		MaxZoom:   4.0,
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 - (wy-c.Y)*c.Zoom
	return sx, sy
}

// Scale converts a world length to pixels.
func (c *Camera) Scale(length float32) float32 {
	return length * c.Zoom
}

// IsVisible returns true if a box centred at (wx, wy) with the given
// half extents overlaps the visible area.
func (c *Camera) IsVisible(wx, wy, halfW, halfH float32) bool {
	minX, minY, maxX, maxY := c.visibleBounds()
	return wx+halfW >= minX && wx-halfW <= maxX && wy+halfH >= minY && wy-halfH <= maxY
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Fit sets the zoom so a world rectangle of the given size fills the
// viewport without cropping.
func (c *Camera) Fit(worldW, worldH float32) {
	if worldW <= 0 || worldH <= 0 {
		return
	}
	zx := c.ViewportW / worldW
	zy := c.ViewportH / worldH
	z := zx
	if zy < z {
		z = zy
	}
	c.SetZoom(z)
}

// Frame centres the camera on a world rectangle and fits it to the viewport.
func (c *Camera) Frame(minX, minY, maxX, maxY float32) {
	c.X = (minX + maxX) / 2
	c.Y = (minY + maxY) / 2
	c.Fit(maxX-minX, maxY-minY)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ViewSize returns the visible area in world units.
func (c *Camera) ViewSize() (w, h float32) {
	return c.ViewportW / c.Zoom, c.ViewportH / c.Zoom
}

// visibleBounds returns the world-coordinate bounds of the visible area.
func (c *Camera) visibleBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	minX = c.X - halfW
	maxX = c.X + halfW
	minY = c.Y - halfH
	maxY = c.Y + halfH
	return
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
