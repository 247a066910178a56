// Package coach turns a monthly summary into one piece of advice.
package coach

import (
	"github.com/shopspring/decimal"
	"github.com/theirongolddev/finsimples/internal/model"
)

// Kind identifies which rule produced the advice.
type Kind string

const (
	Welcome       Kind = "welcome"
	Overspending  Kind = "overspending"
	Excellent     Kind = "excellent"
	VariableFocus Kind = "variable_focus"
	DailyTip      Kind = "daily_tip"
)

// Advice is a short headline plus an explanation.
type Advice struct {
	Kind    Kind
	Title   string
	Message string
}

var excellentShare = decimal.RequireFromString("0.2")

var advice = map[Kind]Advice{
	Welcome: {
		Kind:    Welcome,
		Title:   "Welcome!",
		Message: "Start by adding your income and expenses to get a clear picture of your financial health.",
	},
	Overspending: {
		Kind:    Overspending,
		Title:   "Watch your budget!",
		Message: "You are spending more than planned for the day. Review your variable expenses to get back on track.",
	},
	Excellent: {
		Kind:    Excellent,
		Title:   "Excellent control!",
		Message: "You are saving more than 20% of your income this month. Keep it up, and consider investing the extra.",
	},
	VariableFocus: {
		Kind:    VariableFocus,
		Title:   "Focus on variable spending!",
		Message: "Your variable expenses are higher than your fixed ones. Small everyday cuts can make a big difference.",
	},
	DailyTip: {
		Kind:    DailyTip,
		Title:   "Tip of the day",
		Message: "Look over last week's expenses. Was there anything you could have skipped to save more?",
	},
}

// Advise picks the first matching rule, in order: no income, negative daily
// allowance, balance above 20% of income, variable spending above a non-zero
// fixed spending, and finally a generic tip.
func Advise(s model.FinancialSummary) Advice {
	return advice[classify(s)]
}

func classify(s model.FinancialSummary) Kind {
	switch {
	case s.TotalIncome.IsZero():
		return Welcome
	case s.DailySafeToSpend.IsNegative():
		return Overspending
	case s.Balance.GreaterThan(s.TotalIncome.Mul(excellentShare)):
		return Excellent
	case s.TotalVariableExpenses.GreaterThan(s.TotalFixedExpenses) && s.TotalFixedExpenses.IsPositive():
		return VariableFocus
	default:
		return DailyTip
	}
}
