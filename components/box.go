package components

// Box is an axis-aligned bounding box given by its centre and half extents.
type Box struct {
	CX, CY float32
	HW, HH float32
}

// BoxOf returns the bounding box of an entity centred on pos.
// A zero or negative extent falls back to a 1x1 unit box.
func BoxOf(pos Position, size Size) Box {
	w, h := size.W, size.H
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	return Box{CX: pos.X, CY: pos.Y, HW: w / 2, HH: h / 2}
}

// Overlaps reports whether two boxes intersect on both axes.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	return abs(b.CX-o.CX) < b.HW+o.HW && abs(b.CY-o.CY) < b.HH+o.HH
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
