package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	w, h := m.canvasSize()

	header := titleStyle.Render(" resizebox ─ drag the box, pull a handle to resize ")
	header = lipgloss.NewStyle().Width(w).MaxHeight(headerHeight).Render(header)

	canvas := lipgloss.NewStyle().Width(w).Height(h).Render(m.renderCanvas(w, h))

	g := m.ctrl.Geometry()
	status := dimStyle.Render(fmt.Sprintf(" %s  top=%.0f left=%.0f w=%.0f h=%.0f  %s  cursor: %s  policy: %s ",
		m.status, g.Top, g.Left, g.Width, g.Height, m.stateLabel(), m.cursorHint(), m.ctrl.Policy()))
	footer := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(w).MaxHeight(1).Render(status),
		lipgloss.NewStyle().Width(w).MaxHeight(1).Render(m.help.View(m.keys)),
	)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, canvas, footer)
	return appStyle.Width(w).Height(m.height).MaxHeight(m.height).Render(ui)
}
