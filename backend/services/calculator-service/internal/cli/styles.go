package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("42")
	subtle = lipgloss.Color("245")
	danger = lipgloss.Color("196")
)

// styles are bound to a renderer so colours follow the output, not the process stdout.
type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	box    lipgloss.Style
	err    lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		header: r.NewStyle().Bold(true).Foreground(subtle).Width(12),
		cell:   r.NewStyle().Width(12),
		label:  r.NewStyle().Foreground(subtle).Width(30),
		value:  r.NewStyle().Bold(true),
		box:    r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(subtle).Padding(0, 1),
		err:    r.NewStyle().Bold(true).Foreground(danger),
	}
}
