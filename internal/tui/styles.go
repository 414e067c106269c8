package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	errorFg   = lipgloss.Color("#F87171")
	borderCol = lipgloss.Color("#243141")

	// canvasBg is what translucent fills are blended against.
	canvasBg  = "#0B0F14"
	axisColor = "#6B7280"

	appStyle        = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	errorBoxStyle   = boxStyle.BorderForeground(errorFg)
	titleStyle      = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle        = lipgloss.NewStyle().Foreground(baseDimFg)
	paneTitleStyle  = lipgloss.NewStyle().Foreground(baseDimFg)
	focusTitleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
)
