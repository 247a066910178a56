package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finsimples/internal/cli"
	"github.com/theirongolddev/finsimples/internal/goals"
	"github.com/theirongolddev/finsimples/internal/model"
	"github.com/theirongolddev/finsimples/internal/tui/components"
	"github.com/theirongolddev/finsimples/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// goalCardHeight is the rendered height of one goal card.
const goalCardHeight = 6

func (a App) renderGoalsTab(cw, h int) string {
	t := theme.Active
	gs := a.rec.Goals

	saved, target := decimal.Zero, decimal.Zero
	for _, g := range gs {
		saved = saved.Add(g.CurrentAmount)
		target = target.Add(g.TargetAmount)
	}
	overall := "-"
	if target.IsPositive() {
		overall = cli.FormatPercent(saved.Div(target).Shift(2))
	}

	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Monthly commitment", Value: cli.FormatMoney(a.rec.Settings.SavingsGoal), Delta: "s to change", Color: t.Savings},
		{Label: "Goals", Value: fmt.Sprintf("%d", len(gs))},
		{Label: "Saved", Value: cli.FormatMoney(saved), Color: t.Savings},
		{Label: "Target", Value: cli.FormatMoney(target), Delta: overall + " overall"},
	}, cw)

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(gs) == 0 {
		return metrics + "\n" + components.ContentCard("Savings goals",
			muted.Render("No goals yet. Press a to create one."), cw)
	}

	visible := max(1, (h-lipgloss.Height(metrics)-1)/goalCardHeight)
	offset := 0
	if a.cursor >= visible {
		offset = a.cursor - visible + 1
	}
	end := min(offset+visible, len(gs))

	var b strings.Builder
	b.WriteString(metrics)
	for i := offset; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(a.renderGoalCard(gs[i], i == a.cursor, cw))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render(
		fmt.Sprintf(" %d-%d of %d · a new goal · + deposit · x delete", offset+1, end, len(gs))))
	return b.String()
}

func (a App) renderGoalCard(g model.SavingsGoal, selected bool, w int) string {
	t := theme.Active
	inner := components.CardInnerWidth(w)

	label := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	warn := lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface).Bold(true)
	good := lipgloss.NewStyle().Foreground(t.Income).Background(t.Surface).Bold(true)

	pct := goals.Progress(g).InexactFloat64() / 100

	var b strings.Builder
	b.WriteString(value.Render(fmt.Sprintf("%s of %s",
		cli.FormatMoney(g.CurrentAmount), cli.FormatMoney(g.TargetAmount))))
	b.WriteString("\n")
	b.WriteString(components.GoalBar(pct, inner))
	b.WriteString("\n")

	// Deadline countdown
	if rem, ok := goals.TimeRemaining(g.Deadline, a.today); ok {
		style := value
		if rem.Kind != goals.DeadlineAhead {
			style = warn
		}
		b.WriteString(label.Render("Deadline ") + value.Render(cli.FormatDate(*g.Deadline)) +
			label.Render(" · ") + style.Render(rem.String()))
	} else {
		b.WriteString(label.Render("No deadline"))
	}

	// Pace projection
	b.WriteString(label.Render("   Projected "))
	if p, ok := goals.Project(g, a.today); ok {
		text := p.Format(cli.DateLayout)
		switch p.Kind {
		case goals.ProjectionReached:
			b.WriteString(good.Render(text))
		case goals.ProjectionFutureStart:
			b.WriteString(label.Render(text))
		default:
			b.WriteString(value.Render(text))
		}
	} else {
		b.WriteString(label.Render("-"))
	}

	title := g.Name
	if selected {
		return components.AccentCard("▸ "+title, b.String(), w)
	}
	return components.ContentCard(title, b.String(), w)
}
