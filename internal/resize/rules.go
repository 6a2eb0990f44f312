package resize

import "resizebox/internal/geom"

// rule maps the current geometry and a pointer delta to the next geometry.
type rule func(g geom.Geometry, dx, dy float64) geom.Geometry

func clampMin(v float64) float64 { return max(v, geom.MinSize) }

var legacyRules = map[Handle]rule{
	TopCenter: func(g geom.Geometry, _, dy float64) geom.Geometry {
		g.Height = clampMin(g.Height - dy)
		g.Top += dy
		return g
	},
	BottomCenter: func(g geom.Geometry, _, dy float64) geom.Geometry {
		g.Height = clampMin(g.Height + dy)
		return g
	},
	LeftCenter: func(g geom.Geometry, dx, _ float64) geom.Geometry {
		g.Width = clampMin(g.Width - dx)
		g.Left += dx
		return g
	},
	RightCenter: func(g geom.Geometry, dx, _ float64) geom.Geometry {
		g.Width = clampMin(g.Width + dx)
		return g
	},
	// Corner handles leave height unfloored.
	TopLeft: func(g geom.Geometry, dx, dy float64) geom.Geometry {
		g.Width = clampMin(g.Width - dx)
		g.Height -= dy
		g.Top += dy
		g.Left += dx
		return g
	},
	TopRight: func(g geom.Geometry, dx, dy float64) geom.Geometry {
		g.Width = clampMin(g.Width + dx)
		g.Height -= dy
		g.Top += dy
		return g
	},
	// Top follows the pointer here too, even though the top edge is not held.
	BottomLeft: func(g geom.Geometry, dx, dy float64) geom.Geometry {
		g.Width = clampMin(g.Width - dx)
		g.Height += dy
		g.Top += dy
		g.Left += dx
		return g
	},
	BottomRight: func(g geom.Geometry, dx, dy float64) geom.Geometry {
		g.Width = clampMin(g.Width + dx)
		g.Height += dy
		return g
	},
}

// strictEdges returns a rule that grows or shrinks the named edges and keeps
// the opposite ones fixed.
func strictEdges(top, bottom, left, right bool) rule {
	return func(g geom.Geometry, dx, dy float64) geom.Geometry {
		switch {
		case left:
			w := clampMin(g.Width - dx)
			g.Left += g.Width - w
			g.Width = w
		case right:
			g.Width = clampMin(g.Width + dx)
		}
		switch {
		case top:
			h := clampMin(g.Height - dy)
			g.Top += g.Height - h
			g.Height = h
		case bottom:
			g.Height = clampMin(g.Height + dy)
		}
		return g
	}
}

var strictRules = map[Handle]rule{
	TopCenter:    strictEdges(true, false, false, false),
	BottomCenter: strictEdges(false, true, false, false),
	LeftCenter:   strictEdges(false, false, true, false),
	RightCenter:  strictEdges(false, false, false, true),
	TopLeft:      strictEdges(true, false, true, false),
	TopRight:     strictEdges(true, false, false, true),
	BottomLeft:   strictEdges(false, true, true, false),
	BottomRight:  strictEdges(false, true, false, true),
}

func rulesFor(p Policy) map[Handle]rule {
	if p == PolicyStrict {
		return strictRules
	}
	return legacyRules
}
