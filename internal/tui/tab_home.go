package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/finsimples/internal/cli"
	"github.com/theirongolddev/finsimples/internal/ledger"
	"github.com/theirongolddev/finsimples/internal/summary"
	"github.com/theirongolddev/finsimples/internal/tui/components"
	"github.com/theirongolddev/finsimples/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderHomeTab(cw int) string {
	t := theme.Active
	s := a.stats
	var b strings.Builder

	// Row 1: where the money went
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Income", Value: cli.FormatMoney(s.TotalIncome), Color: t.Income},
		{Label: "Fixed expenses", Value: cli.FormatMoney(s.TotalFixedExpenses), Color: t.Expense},
		{Label: "Variable expenses", Value: cli.FormatMoney(s.TotalVariableExpenses), Color: t.Expense},
		{Label: "Balance", Value: cli.FormatSigned(s.Balance), Color: t.Signed(s.Balance.IsNegative())},
	}, cw))
	b.WriteString("\n")

	// Row 2: what is left to spend
	days := "-"
	if s.DaysRemaining > 0 {
		days = strconv.Itoa(s.DaysRemaining)
	}
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Savings goal", Value: cli.FormatMoney(s.SavingsGoal), Color: t.Savings},
		{Label: "Safe to spend", Value: cli.FormatSigned(s.TotalSafeToSpend), Color: t.Signed(s.TotalSafeToSpend.IsNegative())},
		{Label: "Daily budget", Value: cli.FormatSigned(s.DailySafeToSpend), Delta: "per day", Color: t.Signed(s.DailySafeToSpend.IsNegative())},
		{Label: "Days remaining", Value: days},
	}, cw))
	b.WriteString("\n")

	// Row 3: coach + recent entries
	if a.isCompactLayout() {
		b.WriteString(components.AccentCard(a.advice.Title, a.advice.Message, cw))
		b.WriteString("\n")
		b.WriteString(a.renderRecent(cw))
	} else {
		halves := components.LayoutRow(cw, 2)
		b.WriteString(components.CardRow([]string{
			components.AccentCard(a.advice.Title, a.advice.Message, halves[0]),
			a.renderRecent(halves[1]),
		}))
	}
	b.WriteString("\n")

	// Row 4: daily spending + categories
	if a.isCompactLayout() {
		b.WriteString(a.renderDailyChart(cw))
		b.WriteString("\n")
		b.WriteString(a.renderCategories(cw))
	} else {
		halves := components.LayoutRow(cw, 2)
		b.WriteString(components.CardRow([]string{
			a.renderDailyChart(halves[0]),
			a.renderCategories(halves[1]),
		}))
	}

	return b.String()
}

// renderRecent lists the newest entries of the month; the cursor row is
// the target of e and x.
func (a App) renderRecent(w int) string {
	t := theme.Active
	txs := a.viewTransactions()

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(txs) == 0 {
		return components.ContentCard("Recent entries", muted.Render("Nothing yet. Press a to add an entry."), w)
	}

	row := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	sel := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)

	inner := components.CardInnerWidth(w)
	const dateW, amountW = 5, 14
	descW := max(6, inner-dateW-amountW-2)

	var b strings.Builder
	for i, tx := range txs {
		style := row
		if i == a.cursor {
			style = sel
		}
		amount := cli.FormatMoney(tx.Amount)
		color := t.Income
		if !tx.IsIncome() {
			amount = "-" + amount
			color = t.Expense
		}
		b.WriteString(style.Render(fmt.Sprintf("%-*s %-*s ", dateW, tx.Date.Format("02/01"), descW, truncStr(tx.Description, descW))))
		b.WriteString(style.Foreground(color).Render(fmt.Sprintf("%*s", amountW, amount)))
		if i < len(txs)-1 {
			b.WriteString("\n")
		}
	}
	return components.ContentCard("Recent entries", b.String(), w)
}

func (a App) renderDailyChart(w int) string {
	t := theme.Active
	days := summary.Daily(a.month, a.ref)

	vals := make([]float64, len(days))
	labels := make([]string, len(days))
	for i, d := range days {
		vals[i] = d.Expense.InexactFloat64()
		labels[i] = strconv.Itoa(d.Date.Day)
	}

	if len(a.month) == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		return components.ContentCard("Daily spending", muted.Render("No entries this month. Press a to add one."), w)
	}

	return components.ContentCard(
		"Daily spending",
		components.BarChart(vals, labels, t.Expense, components.CardInnerWidth(w), 8),
		w,
	)
}

func (a App) renderCategories(w int) string {
	t := theme.Active
	cats := ledger.ExpensesByCategory(a.month)

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	if len(cats) == 0 {
		return components.ContentCard("Expenses by category", muted.Render("No expenses yet."), w)
	}

	inner := components.CardInnerWidth(w)
	const labelW, amountW, pctW = 16, 14, 7
	barW := max(4, inner-labelW-amountW-pctW-3)
	peak := cats[0].Total.InexactFloat64()

	var b strings.Builder
	for i, c := range cats {
		share := c.Share.InexactFloat64() / 100
		label := truncStr(c.Category.Label(), labelW)
		b.WriteString(value.Render(fmt.Sprintf("%-*s ", labelW, label)))
		b.WriteString(components.ShareBar(c.Total.InexactFloat64(), peak, share, barW))
		b.WriteString(value.Render(fmt.Sprintf(" %*s", amountW, cli.FormatMoney(c.Total))))
		b.WriteString(muted.Render(fmt.Sprintf(" %*s", pctW-1, cli.FormatPercent(c.Share))))
		if i < len(cats)-1 {
			b.WriteString("\n")
		}
	}
	return components.ContentCard("Expenses by category", b.String(), w)
}
