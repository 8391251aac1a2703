package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = newStylesheet()

// stylesheet holds the [lipgloss.Style] set used across views.
type stylesheet struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	path  lipgloss.Style
	help  lipgloss.Style
}

func newStylesheet() *stylesheet {
	return &stylesheet{
		title: bold("#5F87FF").MarginBottom(1),
		ok:    bold("#5FAF5F"),
		err:   bold("#D75F5F"),
		path:  fg("#AF87D7"),
		help:  fg("#6C6C6C").Italic(true),
	}
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

func bold(c string) lipgloss.Style {
	return fg(c).Bold(true)
}
