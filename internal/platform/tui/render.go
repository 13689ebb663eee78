package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pkoval/daynight/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorDay:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorNight:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorDayOrb:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorNightOrb: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorTrail:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorFrame:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorAlert:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
