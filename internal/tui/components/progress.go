package components

import (
	"fmt"

	"github.com/theirongolddev/finsimples/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForProgress colors goal progress: the closer to the target the
// greener. pct is a fraction, 1 meaning the target is reached.
func ColorForProgress(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 1:
		return t.Income
	case pct >= 0.5:
		return t.Savings
	case pct >= 0.25:
		return t.Warning
	default:
		return t.Expense
	}
}

// ColorForShare colors a spending share: the larger the share of income
// a category takes, the hotter the color.
func ColorForShare(share float64) lipgloss.Color {
	t := theme.Active
	switch {
	case share >= 0.5:
		return t.Expense
	case share >= 0.25:
		return t.Warning
	default:
		return t.Accent
	}
}

// GoalBar renders a labeled progress bar for a savings goal. pct is a
// fraction and may exceed 1; the bar clamps while the label shows the
// real value.
func GoalBar(pct float64, width int) string {
	t := theme.Active

	shown := max(0, min(pct, 1))
	color := ColorForProgress(pct)

	barW := max(4, width-6)
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	return bar.ViewAs(shown) + space + pctStyle.Render(fmt.Sprintf("%4.0f%%", pct*100))
}

// ShareBar renders a horizontal bar sized by value relative to peak,
// colored by share.
func ShareBar(value, peak, share float64, width int) string {
	t := theme.Active
	if width <= 0 {
		return ""
	}
	frac := 0.0
	if peak > 0 {
		frac = max(0, min(value/peak, 1))
	}

	bar := progress.New(
		progress.WithSolidFill(string(ColorForShare(share))),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.Full = '█'
	bar.Empty = ' '
	bar.EmptyColor = string(t.Surface)
	return bar.ViewAs(frac)
}
