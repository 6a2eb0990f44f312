package tui

import (
	"math"
	"strings"

	"resizebox/internal/resize"
)

// cellRect is the rectangle snapped to terminal cells; x1 and y1 are
// exclusive. It is never narrower or shorter than one cell.
type cellRect struct {
	x0, y0, x1, y1 int
}

func (r cellRect) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

func (m Model) cellRect() cellRect {
	g := m.ctrl.Geometry()
	r := cellRect{
		x0: int(math.Round(g.Left / m.scaleX)),
		y0: int(math.Round(g.Top / m.scaleY)),
		x1: int(math.Round(g.Right() / m.scaleX)),
		y1: int(math.Round(g.Bottom() / m.scaleY)),
	}
	r.x1 = max(r.x1, r.x0+1)
	r.y1 = max(r.y1, r.y0+1)
	return r
}

// handleCell returns where h is drawn: on the border cells at the corners
// and edge midpoints.
func handleCell(r cellRect, h resize.Handle) (int, int) {
	right, bottom := r.x1-1, r.y1-1
	midX, midY := (r.x0+right)/2, (r.y0+bottom)/2
	switch h {
	case resize.TopLeft:
		return r.x0, r.y0
	case resize.TopRight:
		return right, r.y0
	case resize.BottomLeft:
		return r.x0, bottom
	case resize.BottomRight:
		return right, bottom
	case resize.TopCenter:
		return midX, r.y0
	case resize.BottomCenter:
		return midX, bottom
	case resize.LeftCenter:
		return r.x0, midY
	case resize.RightCenter:
		return right, midY
	}
	return -1, -1
}

// handleAt hit-tests the handle markers. Corners win when markers overlap
// on a tiny rectangle.
func handleAt(r cellRect, x, y int) resize.Handle {
	for _, h := range resize.Handles() {
		hx, hy := handleCell(r, h)
		if hx == x && hy == y {
			return h
		}
	}
	return resize.NoHandle
}

// renderCanvas draws the rectangle and its handles into a w×h cell grid.
func (m Model) renderCanvas(w, h int) string {
	r := m.cellRect()
	box := rectStyle.Render(" ")
	marker := handleStyle.Render("■")
	if m.ctrl.IsResizing() {
		marker = activeHandleStyle.Render("■")
	}
	var b strings.Builder
	for y := 0; y < h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			switch {
			case handleAt(r, x, y) != resize.NoHandle:
				b.WriteString(marker)
			case r.contains(x, y):
				b.WriteString(box)
			default:
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}
