package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	rectBg    = lipgloss.Color("#1D4ED8")
	handleFg  = lipgloss.Color("#FFFFFF")
	handleBg  = lipgloss.Color("#000000")
	activeFg  = lipgloss.Color("#FFA500")

	appStyle          = lipgloss.NewStyle().Foreground(baseFg)
	titleStyle        = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle          = lipgloss.NewStyle().Foreground(baseDimFg)
	rectStyle         = lipgloss.NewStyle().Background(rectBg)
	handleStyle       = lipgloss.NewStyle().Foreground(handleFg).Background(handleBg)
	activeHandleStyle = lipgloss.NewStyle().Foreground(activeFg).Background(handleBg)
)
