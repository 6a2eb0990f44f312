package tui

import (
	help "github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"resizebox/internal/drag"
	"resizebox/internal/geom"
	"resizebox/internal/resize"
)

// Layout rows outside the canvas.
const (
	headerHeight = 1
	footerHeight = 2
)

type Model struct {
	width  int
	height int

	// geometry units per terminal cell
	scaleX float64
	scaleY float64

	ctrl *resize.Controller
	drag *drag.Draggable

	// last sampled pointer cell, canvas relative
	pointerX int
	pointerY int
	hover    resize.Handle

	status string
	keys   keyMap
	help   help.Model
	log    zerolog.Logger
}

// Options configures a new Model.
type Options struct {
	Geometry geom.Geometry
	Policy   resize.Policy
	ScaleX   float64
	ScaleY   float64
	Logger   zerolog.Logger
}

func New(opts Options) Model {
	if opts.ScaleX <= 0 {
		opts.ScaleX = 10
	}
	if opts.ScaleY <= 0 {
		opts.ScaleY = 20
	}
	m := Model{
		scaleX: opts.ScaleX,
		scaleY: opts.ScaleY,
		ctrl:   resize.New(opts.Geometry, resize.WithPolicy(opts.Policy), resize.WithLogger(opts.Logger)),
		drag:   drag.New(geom.Bounds{}, opts.Logger),
		status: "resizebox ready",
		keys:   newKeyMap(),
		help:   help.New(),
		log:    opts.Logger,
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Geometry is the rectangle's current placement.
func (m Model) Geometry() geom.Geometry { return m.ctrl.Geometry() }

// IsResizing reports whether a resize session is active.
func (m Model) IsResizing() bool { return m.ctrl.IsResizing() }

// canvasSize is the drawing area below the header and above the footer.
func (m Model) canvasSize() (int, int) {
	return max(1, m.width), max(1, m.height-headerHeight-footerHeight)
}

// parentBounds is the canvas expressed in geometry units.
func (m Model) parentBounds() geom.Bounds {
	w, h := m.canvasSize()
	return geom.Bounds{Width: float64(w) * m.scaleX, Height: float64(h) * m.scaleY}
}

// cursorHint mirrors the pointer cursor the widget would request.
func (m Model) cursorHint() string {
	if m.ctrl.IsResizing() {
		return resize.CursorNS
	}
	if m.hover != resize.NoHandle {
		return m.hover.Cursor()
	}
	return resize.CursorMove
}

func (m Model) stateLabel() string {
	switch {
	case m.ctrl.IsResizing():
		return "resizing " + m.ctrl.Session().Handle.String()
	case m.drag.Dragging():
		return "dragging"
	}
	return "idle"
}
