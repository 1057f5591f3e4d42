package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Separator drawn between blocks on the bar line.
const Separator = " | "

// Segment is one rendered block ready for the bar line.
type Segment struct {
	Text  string
	Color lipgloss.Color
}

// RenderSegment styles a single block's content at its configured color.
func RenderSegment(s Segment) string {
	return lipgloss.NewStyle().Foreground(s.Color).Render(s.Text)
}

// RenderBar joins rendered segments into one bar line with muted
// separators. Empty segments are skipped so a disconnected or failed
// block doesn't leave a dangling separator.
func RenderBar(segments []Segment) string {
	sep := lipgloss.NewStyle().Foreground(ColorMuted).Render(Separator)

	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s.Text == "" {
			continue
		}
		parts = append(parts, RenderSegment(s))
	}

	return strings.Join(parts, sep)
}
