package geom

// MinSize is the smallest width (and, depending on the resize policy,
// height) a rectangle can be resized to.
const MinSize = 20.0

// Geometry is the rectangle's placement in pixel-equivalent units.
type Geometry struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Bounds is the parent area the rectangle is dragged within.
type Bounds struct {
	Width  float64
	Height float64
}

// DefaultGeometry is the rectangle every widget starts with.
func DefaultGeometry() Geometry {
	return Geometry{Top: 100, Left: 100, Width: 100, Height: 100}
}

func (g Geometry) Right() float64 { return g.Left + g.Width }
func (g Geometry) Bottom() float64 { return g.Top + g.Height }

// Contains reports whether (x, y) lies inside the rectangle.
func (g Geometry) Contains(x, y float64) bool {
	return x >= g.Left && x < g.Right() && y >= g.Top && y < g.Bottom()
}

// Translate moves the rectangle without touching its size.
func (g Geometry) Translate(dx, dy float64) Geometry {
	g.Left += dx
	g.Top += dy
	return g
}

// ClampTo keeps the rectangle inside b. A rectangle larger than b is pinned
// to the top-left edge. Zero bounds mean "unbounded".
func (g Geometry) ClampTo(b Bounds) Geometry {
	if b.Width > 0 {
		g.Left = clamp(g.Left, 0, b.Width-g.Width)
	}
	if b.Height > 0 {
		g.Top = clamp(g.Top, 0, b.Height-g.Height)
	}
	return g
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
