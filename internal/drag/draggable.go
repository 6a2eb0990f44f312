// Package drag moves the rectangle around its parent area when no resize is
// in progress.
package drag

import (
	"github.com/rs/zerolog"

	"resizebox/internal/geom"
)

// Draggable is the translation container wrapped around the rectangle.
// Disabled and Bounds are its only configuration.
type Draggable struct {
	Disabled bool
	Bounds   geom.Bounds

	dragging bool
	// translation clamped off at the bounds, owed back before the box
	// moves again
	slackX float64
	slackY float64
	log    zerolog.Logger
}

func New(bounds geom.Bounds, log zerolog.Logger) *Draggable {
	return &Draggable{Bounds: bounds, log: log}
}

func (d *Draggable) Dragging() bool { return d.dragging }

// Start begins a drag gesture. It refuses while disabled.
func (d *Draggable) Start() bool {
	if d.Disabled {
		return false
	}
	d.dragging = true
	d.slackX, d.slackY = 0, 0
	d.log.Debug().Msg("drag started")
	return true
}

// Move translates g by the delta, keeping it inside Bounds. Size is never
// touched. Overshoot past the bounds is kept as slack, so the box stays
// pinned until the pointer comes back to where it was clamped. Outside a
// gesture, or while disabled, g is returned as is.
func (d *Draggable) Move(g geom.Geometry, dx, dy float64) geom.Geometry {
	if !d.dragging || d.Disabled {
		return g
	}
	raw := g.Translate(dx+d.slackX, dy+d.slackY)
	clamped := raw.ClampTo(d.Bounds)
	d.slackX = raw.Left - clamped.Left
	d.slackY = raw.Top - clamped.Top
	return clamped
}

func (d *Draggable) Stop() {
	if !d.dragging {
		return
	}
	d.dragging = false
	d.slackX, d.slackY = 0, 0
	d.log.Debug().Msg("drag stopped")
}
