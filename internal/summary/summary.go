// Package summary derives the monthly financial summary and per-day spending
// series from a month's transactions.
package summary

import (
	"github.com/shopspring/decimal"
	"github.com/theirongolddev/finsimples/internal/model"
)

// Compute derives the summary for the month of ref. monthTxs must already be
// filtered to that month. today decides whether ref is the current month;
// for any other month DaysRemaining is 0 and the daily figure equals the
// monthly one.
func Compute(monthTxs []model.Transaction, settings model.UserSettings, ref, today model.Date) model.FinancialSummary {
	daysRemaining := 0
	if ref.SameMonth(today) {
		daysRemaining = ref.DaysInMonth() - today.Day
	}

	income, fixed, variable := decimal.Zero, decimal.Zero, decimal.Zero
	for _, t := range monthTxs {
		switch {
		case t.IsIncome():
			income = income.Add(t.Amount)
		case t.IsFixedExpense():
			fixed = fixed.Add(t.Amount)
		case t.IsVariableExpense():
			variable = variable.Add(t.Amount)
		}
	}

	discretionary := income.Sub(fixed).Sub(settings.SavingsGoal)
	safe := discretionary.Sub(variable)

	divisor := daysRemaining
	if divisor < 1 {
		divisor = 1
	}

	return model.FinancialSummary{
		TotalIncome:           income,
		TotalFixedExpenses:    fixed,
		TotalVariableExpenses: variable,
		Balance:               income.Sub(fixed).Sub(variable),
		SavingsGoal:           settings.SavingsGoal,
		DailySafeToSpend:      safe.Div(decimal.NewFromInt(int64(divisor))),
		TotalSafeToSpend:      safe,
		DaysRemaining:         daysRemaining,
	}
}

// DayTotal is the money moved on one day of the month.
type DayTotal struct {
	Date    model.Date
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Daily returns one entry per calendar day of ref's month, in order,
// including days with no activity. Transactions outside the month are
// ignored.
func Daily(txs []model.Transaction, ref model.Date) []DayTotal {
	first := ref.FirstOfMonth()
	days := make([]DayTotal, ref.DaysInMonth())
	for i := range days {
		days[i] = DayTotal{Date: first.AddDays(i), Income: decimal.Zero, Expense: decimal.Zero}
	}

	for _, t := range txs {
		if !t.Date.SameMonth(ref) {
			continue
		}
		d := &days[t.Date.Day-1]
		if t.IsIncome() {
			d.Income = d.Income.Add(t.Amount)
		} else {
			d.Expense = d.Expense.Add(t.Amount)
		}
	}
	return days
}
