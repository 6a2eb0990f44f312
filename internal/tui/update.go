package tui

import (
	"fmt"

	key "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"resizebox/internal/resize"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.drag.Bounds = m.parentBounds()
	case tea.BlurMsg:
		// pointer is no longer tracked
		m.cancel("focus lost")
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancel("cancelled")
		case key.Matches(msg, m.keys.Reset):
			m.drag.Stop()
			m.ctrl.Reset()
			m.status = "geometry reset"
		case key.Matches(msg, m.keys.Policy):
			next := resize.PolicyStrict
			if m.ctrl.Policy() == resize.PolicyStrict {
				next = resize.PolicyLegacy
			}
			m.ctrl.SetPolicy(next)
			m.status = fmt.Sprintf("floor policy: %s", next)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	// translate to canvas cells (must match View layout)
	cx, cy := msg.X, msg.Y-headerHeight
	// dragging is only allowed while no resize is in progress
	m.drag.Disabled = m.ctrl.IsResizing()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pointerX, m.pointerY = cx, cy
		h := handleAt(m.cellRect(), cx, cy)
		if m.ctrl.BeginResize(h) {
			// consumed: the drag container never sees this press
			m.drag.Disabled = true
			m.status = "resize " + h.String()
			return
		}
		if m.cellRect().contains(cx, cy) && m.drag.Start() {
			m.status = "drag"
		}
	case tea.MouseActionMotion:
		dx := float64(cx-m.pointerX) * m.scaleX
		dy := float64(cy-m.pointerY) * m.scaleY
		m.pointerX, m.pointerY = cx, cy
		switch {
		case m.ctrl.IsResizing():
			m.ctrl.OnPointerMove(dx, dy)
		case m.drag.Dragging():
			m.ctrl.SetGeometry(m.drag.Move(m.ctrl.Geometry(), dx, dy))
		default:
			m.hover = handleAt(m.cellRect(), cx, cy)
		}
	case tea.MouseActionRelease:
		// ends the session wherever the pointer is
		m.pointerX, m.pointerY = cx, cy
		if m.ctrl.IsResizing() || m.drag.Dragging() {
			m.status = "released"
		}
		m.ctrl.EndResize()
		m.drag.Stop()
		m.hover = handleAt(m.cellRect(), cx, cy)
	}
}

func (m *Model) cancel(reason string) {
	if !m.ctrl.IsResizing() && !m.drag.Dragging() {
		return
	}
	m.ctrl.Cancel()
	m.drag.Stop()
	m.hover = handleAt(m.cellRect(), m.pointerX, m.pointerY)
	m.status = reason
	m.log.Debug().Str("reason", reason).Msg("interaction cancelled")
}
