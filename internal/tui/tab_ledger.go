package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/finsimples/internal/cli"
	"github.com/theirongolddev/finsimples/internal/ledger"
	"github.com/theirongolddev/finsimples/internal/model"
	"github.com/theirongolddev/finsimples/internal/tui/components"
	"github.com/theirongolddev/finsimples/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var ledgerTitles = map[model.View]string{
	model.ViewIncome:   "Income",
	model.ViewExpenses: "Expenses",
	model.ViewFixed:    "Fixed entries",
	model.ViewVariable: "Variable entries",
}

// ledgerMetrics are the cards above the list: a single total for the
// income and expense tabs, the in/out/net split for fixed and variable.
func (a App) ledgerMetrics(txs []model.Transaction) []components.Metric {
	t := theme.Active
	count := strconv.Itoa(len(txs)) + " entries"

	switch v := a.currentView(); v {
	case model.ViewIncome, model.ViewExpenses:
		color := t.Income
		if v == model.ViewExpenses {
			color = t.Expense
		}
		income, expense := ledger.IncomeVsExpense(a.month)
		share := "-"
		if income.IsPositive() && v == model.ViewExpenses {
			share = cli.FormatPercent(expense.Div(income).Shift(2)) + " of income"
		}
		return []components.Metric{
			{Label: "Total", Value: cli.FormatMoney(ledger.Sum(txs)), Delta: count, Color: color},
			{Label: "Month balance", Value: cli.FormatSigned(income.Sub(expense)), Delta: share, Color: t.Signed(income.LessThan(expense))},
		}
	default:
		freq := model.Recurring
		if v == model.ViewVariable {
			freq = model.Variable
		}
		tot := ledger.FrequencyView(a.month, freq)
		return []components.Metric{
			{Label: "In", Value: cli.FormatMoney(tot.Income), Color: t.Income},
			{Label: "Out", Value: cli.FormatMoney(tot.Expense), Color: t.Expense},
			{Label: "Net", Value: cli.FormatSigned(tot.Net), Delta: count, Color: t.Signed(tot.Net.IsNegative())},
		}
	}
}

func (a App) renderLedgerTab(cw, h int) string {
	t := theme.Active
	txs := a.viewTransactions()

	metrics := components.MetricCardRow(a.ledgerMetrics(txs), cw)
	title := fmt.Sprintf("%s · %s", ledgerTitles[a.currentView()], cli.FormatMonth(a.ref))

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(txs) == 0 {
		return metrics + "\n" + components.ContentCard(title, muted.Render("Nothing here yet. Press a to add an entry."), cw)
	}

	inner := components.CardInnerWidth(cw)
	const dateW, catW, kindW, amountW = 10, 16, 9, 15
	descW := max(10, inner-dateW-catW-kindW-amountW-4)

	header := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	row := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	sel := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)

	// Rows that fit: card border (2), title, header, rule, hint.
	visible := max(3, h-lipgloss.Height(metrics)-6)
	offset := a.offset
	if a.cursor < offset {
		offset = a.cursor
	}
	if a.cursor >= offset+visible {
		offset = a.cursor - visible + 1
	}
	end := min(offset+visible, len(txs))

	var b strings.Builder
	b.WriteString(header.Render(fmt.Sprintf("%-*s %-*s %-*s %-*s %*s",
		dateW, "Date", descW, "Description", catW, "Category", kindW, "Kind", amountW, "Amount")))
	b.WriteString("\n")
	b.WriteString(muted.Render(strings.Repeat("─", inner)))
	b.WriteString("\n")

	for i := offset; i < end; i++ {
		tx := txs[i]
		style := row
		if i == a.cursor {
			style = sel
		}
		amount := cli.FormatMoney(tx.Amount)
		amountColor := t.Income
		if !tx.IsIncome() {
			amount = "-" + amount
			amountColor = t.Expense
		}
		line := style.Render(fmt.Sprintf("%-*s %-*s %-*s %-*s ",
			dateW, cli.FormatDate(tx.Date),
			descW, truncStr(tx.Description, descW),
			catW, truncStr(tx.Category.Label(), catW),
			kindW, frequencyLabel(tx.Frequency)))
		line += style.Foreground(amountColor).Render(fmt.Sprintf("%*s", amountW, amount))
		b.WriteString(line)
		b.WriteString("\n")
	}

	hint := fmt.Sprintf("%d-%d of %d · a add · e edit · x delete", offset+1, end, len(txs))
	b.WriteString(muted.Render(hint))

	return metrics + "\n" + components.ContentCard(title, b.String(), cw)
}

func frequencyLabel(f model.Frequency) string {
	if f == model.Recurring {
		return "Fixed"
	}
	return "Variable"
}
