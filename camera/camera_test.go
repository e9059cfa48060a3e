package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNew(t *testing.T) {
	cam := New(1280, 720)

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected camera at origin, got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreen(t *testing.T) {
	cam := New(1280, 720)

	tests := []struct {
		name           string
		wx, wy, sx, sy float32
	}{
		{"origin is screen center", 0, 0, 640, 360},
		{"+y is up", 0, 100, 640, 260},
		{"+x is right", 100, 0, 740, 360},
		{"bottom left corner", -640, -360, 0, 720},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sx, sy := cam.WorldToScreen(tc.wx, tc.wy)
			if !near(sx, tc.sx) || !near(sy, tc.sy) {
				t.Errorf("WorldToScreen(%f, %f) = (%f, %f), want (%f, %f)", tc.wx, tc.wy, sx, sy, tc.sx, tc.sy)
			}
		})
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720)

	cam.SetZoom(100)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MaxZoom, cam.Zoom)
	}
	cam.SetZoom(0)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MinZoom, cam.Zoom)
	}
}

func TestFit(t *testing.T) {
	cam := New(1280, 720)

	// 1300 wide bounds need slightly less than 1:1
	cam.Fit(1300, 720)
	if !near(cam.Zoom, 1280.0/1300.0) {
		t.Errorf("expected zoom %f, got %f", 1280.0/1300.0, cam.Zoom)
	}
	w, h := cam.ViewSize()
	if w < 1300-0.01 || h < 720-0.01 {
		t.Errorf("fitted view %fx%f does not cover 1300x720", w, h)
	}

	cam.Fit(0, 100)
	if !near(cam.Zoom, 1280.0/1300.0) {
		t.Error("degenerate Fit should be ignored")
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720)

	if !cam.IsVisible(0, 0, 1, 1) {
		t.Error("origin should be visible")
	}
	if !cam.IsVisible(650, 0, 20, 20) {
		t.Error("box straddling the right edge should be visible")
	}
	if cam.IsVisible(700, 0, 20, 20) {
		t.Error("box past the right edge should not be visible")
	}
	if cam.IsVisible(0, -400, 10, 10) {
		t.Error("box below the view should not be visible")
	}
}

func TestFrameKeepsBoundsVisible(t *testing.T) {
	tests := []struct {
		name   string
		vw, vh float32
	}{
		{"default window", 1280, 720},
		{"narrow window", 800, 600},
		{"tall window", 600, 1000},
		{"large window", 2560, 1440},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cam := New(1280, 720)
			cam.Resize(tc.vw, tc.vh)
			cam.Frame(-650, -360, 650, 360)

			for _, p := range [][2]float32{{648, 0}, {-648, 0}, {600, 350}, {-649, -359}, {649, 359}} {
				if !cam.IsVisible(p[0], p[1], 0, 0) {
					t.Errorf("point (%f, %f) inside bounds is not visible at zoom %f", p[0], p[1], cam.Zoom)
				}
			}
			w, h := cam.ViewSize()
			if w < 1300-0.01 || h < 720-0.01 {
				t.Errorf("view %fx%f does not cover the bounds", w, h)
			}
		})
	}
}

func TestFrameOffCentre(t *testing.T) {
	cam := New(1000, 1000)
	cam.Frame(0, 0, 200, 100)

	if cam.X != 100 || cam.Y != 50 {
		t.Errorf("expected centre (100, 50), got (%f, %f)", cam.X, cam.Y)
	}
	if !near(cam.Zoom, 4) {
		t.Errorf("expected zoom clamped to 4, got %f", cam.Zoom)
	}
	if sx, sy := cam.WorldToScreen(100, 50); !near(sx, 500) || !near(sy, 500) {
		t.Errorf("frame centre should map to screen centre, got (%f, %f)", sx, sy)
	}
}

func TestResize(t *testing.T) {
	cam := New(1280, 720)
	cam.X, cam.Y = 50, 50
	cam.SetZoom(2)
	cam.Resize(800, 600)

	if sx, sy := cam.WorldToScreen(50, 50); !near(sx, 400) || !near(sy, 300) {
		t.Errorf("camera center should map to new screen center, got (%f, %f)", sx, sy)
	}
}
