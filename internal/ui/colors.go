package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors using ANSI codes for terminal compatibility. Block
// colors from config are 24-bit; these cover chrome around the blocks
// (separators, status symbols, threshold tinting).
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// ThresholdColor returns a color for a utilization percentage:
//   - below 60%: green
//   - 60-80%: yellow
//   - 80% and up: red
func ThresholdColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 80:
		return ColorError
	case percent >= 60:
		return ColorWarning
	default:
		return ColorSuccess
	}
}
