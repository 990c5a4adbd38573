// ABOUTME: Lipgloss palette and styles for the widget
// ABOUTME: Dark face with a green/red sync indicator
package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorFg     = lipgloss.Color("#E5E5E5")
	colorMuted  = lipgloss.Color("#9CA3AF")
	colorDim    = lipgloss.Color("#4B5563")
	colorOff    = lipgloss.Color("#1F2937")
	colorSynced = lipgloss.Color("#00FF00")
	colorAlert  = lipgloss.Color("#7F1D1D")
)

var (
	styleFace    = lipgloss.NewStyle().Foreground(colorFg)
	styleFaceDim = lipgloss.NewStyle().Foreground(colorDim).Faint(true)

	styleLabel = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	styleMain  = lipgloss.NewStyle().Foreground(colorFg).Bold(true)
	styleSub   = lipgloss.NewStyle().Foreground(colorMuted)
	styleLocal = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)

	styleBitOn  = lipgloss.NewStyle().Foreground(colorFg)
	styleBitOff = lipgloss.NewStyle().Foreground(colorOff)

	styleSynced  = lipgloss.NewStyle().Foreground(colorSynced)
	styleSyncing = lipgloss.NewStyle().Foreground(colorAlert)

	styleRule = lipgloss.NewStyle().Foreground(colorDim)

	stylePanel = lipgloss.NewStyle().Align(lipgloss.Right).Padding(0, 2)
	styleHelp  = lipgloss.NewStyle().Faint(true)
)
