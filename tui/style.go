package tui

import "github.com/charmbracelet/lipgloss"

// LineStyle returns the base style and leading marker for a list line.
// Highlighted lines get the highlight background and a cyan bar marker.
func LineStyle(highlighted bool) (lipgloss.Style, string) {
	if !highlighted {
		return lipgloss.NewStyle(), "  "
	}
	base := lipgloss.NewStyle().Background(ColorHighlight)
	marker := base.Foreground(ColorCyan).Render("▌ ")
	return base, marker
}
