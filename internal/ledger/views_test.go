package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/finsimples/internal/model"
)

func TestExpensesByCategory(t *testing.T) {
	month := FilterByMonth(sampleLedger(), day(2025, time.March, 1))
	got := ExpensesByCategory(month)

	if len(got) != 2 {
		t.Fatalf("categories = %d, want 2", len(got))
	}
	if got[0].Category != model.CategoryFood || !got[0].Total.Equal(decimal.NewFromInt(100)) {
		t.Errorf("first = %v %s, want Alimentação 100", got[0].Category, got[0].Total)
	}
	if got[1].Category != model.CategoryLeisure || !got[1].Total.Equal(decimal.NewFromInt(30)) {
		t.Errorf("second = %v %s, want Lazer 30", got[1].Category, got[1].Total)
	}
	share := got[1].Share.Round(2)
	if !share.Equal(decimal.RequireFromString("23.08")) {
		t.Errorf("leisure share = %s, want 23.08", share)
	}
}

func TestExpensesByCategory_TiesFollowCategoryOrder(t *testing.T) {
	txs := []model.Transaction{
		tx("1", day(2025, time.May, 1), "10", model.Expense, model.Variable, model.CategoryOther),
		tx("2", day(2025, time.May, 1), "10", model.Expense, model.Variable, model.CategoryHousing),
	}
	got := ExpensesByCategory(txs)
	if got[0].Category != model.CategoryHousing {
		t.Fatalf("tie broken as %v first, want Moradia", got[0].Category)
	}
}

func TestFrequencyView(t *testing.T) {
	month := FilterByMonth(sampleLedger(), day(2025, time.March, 1))

	fixed := FrequencyView(month, model.Recurring)
	if !fixed.Income.Equal(decimal.NewFromInt(3000)) || !fixed.Expense.IsZero() {
		t.Errorf("fixed = %+v, want income 3000 expense 0", fixed)
	}

	variable := FrequencyView(month, model.Variable)
	if !variable.Expense.Equal(decimal.NewFromInt(130)) || !variable.Net.Equal(decimal.NewFromInt(-130)) {
		t.Errorf("variable = %+v, want expense 130 net -130", variable)
	}
}

func TestIncomeVsExpense(t *testing.T) {
	in, out := IncomeVsExpense(sampleLedger())
	if !in.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("income = %s, want 3000", in)
	}
	if !out.Equal(decimal.NewFromInt(260)) {
		t.Errorf("expense = %s, want 260", out)
	}
	if !Sum(sampleLedger()).Equal(decimal.NewFromInt(3260)) {
		t.Errorf("Sum = %s, want 3260", Sum(sampleLedger()))
	}
	if n := len(ByType(sampleLedger(), model.Income)); n != 1 {
		t.Errorf("ByType(income) = %d entries, want 1", n)
	}
}
