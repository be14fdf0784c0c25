package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/updown/intent"
)

type styles struct {
	banner lipgloss.Style
	up     lipgloss.Style
	down   lipgloss.Style
	source lipgloss.Style
	time   lipgloss.Style
}

func newStyles() styles {
	return styles{
		banner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4)).Padding(0, 1),
		up:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(10)),
		down:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(11)),
		source: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)),
		time:   lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
	}
}

func (s styles) intent(in intent.Intent) string {
	d := s.down
	if in.Direction == intent.Up {
		d = s.up
	}
	return fmt.Sprintf("%s %-4s %s",
		s.time.Render(in.Timestamp.Format("15:04:05.000")),
		d.Render(in.Direction.String()),
		s.source.Render(in.Source.String()),
	)
}
