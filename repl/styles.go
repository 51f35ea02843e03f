package repl

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorText    = lipgloss.Color("#F8FAFC") // Slate 50
)

type styles struct {
	prompt lipgloss.Style
	input  lipgloss.Style
	output lipgloss.Style
	error  lipgloss.Style
	help   lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{prompt: plain, input: plain, output: plain, error: plain, help: plain}
	}
	return styles{
		prompt: lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		input:  lipgloss.NewStyle().Foreground(colorMuted),
		output: lipgloss.NewStyle().Foreground(colorText),
		error:  lipgloss.NewStyle().Foreground(colorError),
		help:   lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
	}
}
