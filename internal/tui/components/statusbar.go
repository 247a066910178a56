package components

import (
	"strings"

	"github.com/theirongolddev/finsimples/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom bar: key help on the left, a status
// note (last action or error) on the right.
func RenderStatusBar(width int, help, note string, isErr bool) string {
	t := theme.Active

	base := lipgloss.NewStyle().Background(t.Surface)
	helpStyle := base.Foreground(t.TextDim)
	noteStyle := base.Foreground(t.TextMuted)
	if isErr {
		noteStyle = base.Foreground(t.Expense).Bold(true)
	}

	left := helpStyle.Render(" " + help)
	right := ""
	if note != "" {
		right = noteStyle.Render(note + " ")
	}

	gap := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	bar := left + base.Render(strings.Repeat(" ", gap)) + right
	return lipgloss.NewStyle().MaxWidth(width).Render(bar)
}

