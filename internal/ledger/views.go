package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/finsimples/internal/model"
)

// CategoryTotal is the expense total for one category.
type CategoryTotal struct {
	Category model.Category
	Total    decimal.Decimal
	Share    decimal.Decimal // percent of all expenses, 0-100
}

// FrequencyTotals holds the income/expense split for one frequency.
type FrequencyTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// ByType returns the entries of the given type, preserving order.
func ByType(txs []model.Transaction, typ model.TransactionType) []model.Transaction {
	var result []model.Transaction
	for _, t := range txs {
		if t.Type == typ {
			result = append(result, t)
		}
	}
	return result
}

// ByFrequency returns the entries of the given frequency, preserving order.
func ByFrequency(txs []model.Transaction, f model.Frequency) []model.Transaction {
	var result []model.Transaction
	for _, t := range txs {
		if t.Frequency == f {
			result = append(result, t)
		}
	}
	return result
}

// Sum totals the amounts of txs regardless of type.
func Sum(txs []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		total = total.Add(t.Amount)
	}
	return total
}

// IncomeVsExpense totals incoming and outgoing amounts.
func IncomeVsExpense(txs []model.Transaction) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, t := range txs {
		if t.IsIncome() {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount)
		}
	}
	return income, expense
}

// FrequencyView totals the entries of one frequency, as shown on the
// fixed and variable tabs.
func FrequencyView(txs []model.Transaction, f model.Frequency) FrequencyTotals {
	income, expense := IncomeVsExpense(ByFrequency(txs, f))
	return FrequencyTotals{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}
}

// ExpensesByCategory groups expenses per category, largest first.
// Categories with no expenses are omitted.
func ExpensesByCategory(txs []model.Transaction) []CategoryTotal {
	catMap := make(map[model.Category]decimal.Decimal)
	all := decimal.Zero

	for _, t := range txs {
		if t.IsIncome() {
			continue
		}
		catMap[t.Category] = catMap[t.Category].Add(t.Amount)
		all = all.Add(t.Amount)
	}

	totals := make([]CategoryTotal, 0, len(catMap))
	for c, sum := range catMap {
		ct := CategoryTotal{Category: c, Total: sum, Share: decimal.Zero}
		if all.IsPositive() {
			ct.Share = sum.Div(all).Mul(decimal.NewFromInt(100))
		}
		totals = append(totals, ct)
	}

	sort.Slice(totals, func(i, j int) bool {
		if cmp := totals[i].Total.Cmp(totals[j].Total); cmp != 0 {
			return cmp > 0
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}
