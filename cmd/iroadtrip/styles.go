package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorMuted     = lipgloss.Color("#6B7280")
	colorError     = lipgloss.Color("#EF4444")
	colorHighlight = lipgloss.Color("#3B82F6")
)

// styles renders CLI output for one writer. The renderer is bound to that
// writer, so output to a pipe or a buffer carries no escape sequences.
type styles struct {
	title  lipgloss.Style
	prompt lipgloss.Style
	step   lipgloss.Style
	muted  lipgloss.Style
	err    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(colorPrimary),
		prompt: r.NewStyle().Foreground(colorHighlight),
		step:   r.NewStyle(),
		muted:  r.NewStyle().Foreground(colorMuted),
		err:    r.NewStyle().Bold(true).Foreground(colorError),
	}
}
