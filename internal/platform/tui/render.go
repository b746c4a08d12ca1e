package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/asciicam/internal/core"
)

// tintStyles maps core.Tint to lipgloss styles.
var tintStyles = map[core.Tint]lipgloss.Style{
	core.TintDefault: lipgloss.NewStyle(),
	core.TintGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	core.TintAmber:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.TintCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.TintWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.TintGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Status bar styles.
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)
	statusKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)
	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// The whole frame shares one tint, so it is styled in a single run.
func RenderScreen(s *core.Screen, tint core.Tint) string {
	style, ok := tintStyles[tint]
	if !ok {
		style = tintStyles[core.TintDefault]
	}
	text := strings.Join(s.Lines(), "\n")
	if tint == core.TintDefault {
		return text
	}
	return style.Render(text)
}

// statusField renders "label value" for the status bar.
func statusField(label, value string) string {
	return statusKeyStyle.Render(label) + " " + value
}
