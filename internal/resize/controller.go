// Package resize turns pointer deltas into rectangle geometry while a resize
// handle is held.
package resize

import (
	"fmt"

	"github.com/rs/zerolog"

	"resizebox/internal/geom"
)

// Policy selects how the minimum size floor interacts with each handle.
type Policy int

const (
	// PolicyLegacy floors width on every handle but height only on the
	// top/bottom-center handles, and moves top/left by the raw delta even
	// after the size hit the floor.
	PolicyLegacy Policy = iota
	// PolicyStrict floors both dimensions on every handle and moves top/left
	// only by the size change actually applied, keeping the opposite edges
	// anchored.
	PolicyStrict
)

func (p Policy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "legacy"
}

// ParsePolicy accepts "legacy" or "strict".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "legacy":
		return PolicyLegacy, nil
	case "strict":
		return PolicyStrict, nil
	}
	return PolicyLegacy, fmt.Errorf("unknown resize policy %q", s)
}

// Session is the active resize, if any. Handle is NoHandle iff Active is false.
type Session struct {
	Active bool
	Handle Handle
}

// Controller owns the rectangle geometry and the resize session.
type Controller struct {
	geometry geom.Geometry
	initial  geom.Geometry
	session  Session
	policy   Policy
	log      zerolog.Logger
}

type Option func(*Controller)

func WithPolicy(p Policy) Option {
	return func(c *Controller) { c.policy = p }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// New returns an idle controller at g.
func New(g geom.Geometry, opts ...Option) *Controller {
	c := &Controller{geometry: g, initial: g, log: zerolog.Nop()}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Controller) Geometry() geom.Geometry { return c.geometry }
func (c *Controller) Session() Session { return c.session }
func (c *Controller) IsResizing() bool { return c.session.Active }
func (c *Controller) Policy() Policy { return c.policy }

func (c *Controller) SetPolicy(p Policy) {
	c.policy = p
	c.log.Debug().Stringer("policy", p).Msg("resize policy changed")
}

// SetGeometry replaces the geometry, e.g. after the drag container moved the
// rectangle.
func (c *Controller) SetGeometry(g geom.Geometry) { c.geometry = g }

// BeginResize starts a session on h. It returns true when the pointer-down
// was consumed, meaning the caller must not forward it to the drag container.
func (c *Controller) BeginResize(h Handle) bool {
	if h == NoHandle {
		return false
	}
	c.session = Session{Active: true, Handle: h}
	c.log.Debug().Stringer("handle", h).Msg("resize started")
	return true
}

// OnPointerMove applies the held handle's rule to the pointer delta since the
// previous move event. It does nothing while idle.
func (c *Controller) OnPointerMove(dx, dy float64) geom.Geometry {
	if !c.session.Active {
		return c.geometry
	}
	rule := rulesFor(c.policy)[c.session.Handle]
	if rule == nil {
		return c.geometry
	}
	c.geometry = rule(c.geometry, dx, dy)
	c.log.Trace().
		Stringer("handle", c.session.Handle).
		Float64("dx", dx).Float64("dy", dy).
		Float64("top", c.geometry.Top).Float64("left", c.geometry.Left).
		Float64("width", c.geometry.Width).Float64("height", c.geometry.Height).
		Msg("resize move")
	return c.geometry
}

// EndResize returns to idle. Calling it while idle is a no-op.
func (c *Controller) EndResize() {
	if !c.session.Active {
		return
	}
	c.log.Debug().Stringer("handle", c.session.Handle).Msg("resize ended")
	c.session = Session{}
}

// Cancel abandons the session when the pointer stops being tracked
// (focus loss, escape). The geometry reached so far is kept.
func (c *Controller) Cancel() {
	if !c.session.Active {
		return
	}
	c.log.Debug().Stringer("handle", c.session.Handle).Msg("resize cancelled")
	c.session = Session{}
}

// Reset ends any session and restores the starting geometry.
func (c *Controller) Reset() {
	c.session = Session{}
	c.geometry = c.initial
}
