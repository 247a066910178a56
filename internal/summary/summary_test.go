package summary

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/finsimples/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func entry(d model.Date, amount string, typ model.TransactionType, f model.Frequency) model.Transaction {
	return model.Transaction{
		ID: amount, Description: "x", Amount: dec(amount), Date: d,
		Type: typ, Frequency: f, Category: model.CategoryOther,
	}
}

func march() []model.Transaction {
	d := model.NewDate(2025, time.March, 5)
	return []model.Transaction{
		entry(d, "3000", model.Income, model.Variable),
		entry(d, "1000", model.Expense, model.Recurring),
		entry(d, "400", model.Expense, model.Variable),
	}
}

func TestCompute(t *testing.T) {
	settings := model.UserSettings{UserName: "ana", SavingsGoal: dec("500")}
	today := model.NewDate(2025, time.March, 21)

	s := Compute(march(), settings, today, today)

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"income", s.TotalIncome, "3000"},
		{"fixed", s.TotalFixedExpenses, "1000"},
		{"variable", s.TotalVariableExpenses, "400"},
		{"balance", s.Balance, "1600"},
		{"savings goal", s.SavingsGoal, "500"},
		{"safe to spend", s.TotalSafeToSpend, "1100"},
		{"daily", s.DailySafeToSpend, "110"},
	}
	for _, c := range checks {
		if !c.got.Equal(dec(c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
	if s.DaysRemaining != 10 {
		t.Errorf("DaysRemaining = %d, want 10", s.DaysRemaining)
	}
}

func TestCompute_OtherMonthHasNoDaysRemaining(t *testing.T) {
	settings := model.UserSettings{SavingsGoal: dec("500")}
	ref := model.NewDate(2025, time.March, 1)

	for _, today := range []model.Date{
		model.NewDate(2025, time.April, 2),
		model.NewDate(2025, time.February, 27),
		model.NewDate(2024, time.March, 10),
	} {
		s := Compute(march(), settings, ref, today)
		if s.DaysRemaining != 0 {
			t.Errorf("today %s: DaysRemaining = %d, want 0", today, s.DaysRemaining)
		}
		if !s.DailySafeToSpend.Equal(s.TotalSafeToSpend) {
			t.Errorf("today %s: daily %s != total %s", today, s.DailySafeToSpend, s.TotalSafeToSpend)
		}
	}
}

func TestCompute_LastDayOfMonth(t *testing.T) {
	today := model.NewDate(2025, time.March, 31)
	s := Compute(march(), model.UserSettings{SavingsGoal: decimal.Zero}, today, today)
	if s.DaysRemaining != 0 || !s.DailySafeToSpend.Equal(dec("1600")) {
		t.Fatalf("days %d daily %s, want 0 and 1600", s.DaysRemaining, s.DailySafeToSpend)
	}
}

func TestCompute_IsPure(t *testing.T) {
	txs := march()
	before := make([]model.Transaction, len(txs))
	copy(before, txs)
	settings := model.UserSettings{SavingsGoal: dec("500")}
	today := model.NewDate(2025, time.March, 10)

	a := Compute(txs, settings, today, today)
	b := Compute(txs, settings, today, today)

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("results differ:\n%+v\n%+v", a, b)
	}
	if !reflect.DeepEqual(txs, before) {
		t.Fatal("input modified")
	}
}

func TestCompute_Empty(t *testing.T) {
	today := model.NewDate(2025, time.June, 30)
	s := Compute(nil, model.UserSettings{SavingsGoal: decimal.Zero}, today, today)
	if !s.TotalIncome.IsZero() || !s.Balance.IsZero() || !s.DailySafeToSpend.IsZero() {
		t.Fatalf("non-zero summary for empty month: %+v", s)
	}
}

func TestDaily(t *testing.T) {
	ref := model.NewDate(2025, time.February, 10)
	txs := []model.Transaction{
		entry(model.NewDate(2025, time.February, 3), "50", model.Expense, model.Variable),
		entry(model.NewDate(2025, time.February, 3), "20", model.Expense, model.Recurring),
		entry(model.NewDate(2025, time.February, 28), "900", model.Income, model.Recurring),
		entry(model.NewDate(2025, time.March, 1), "5", model.Expense, model.Variable),
	}

	days := Daily(txs, ref)
	if len(days) != 28 {
		t.Fatalf("len = %d, want 28", len(days))
	}
	if !days[2].Expense.Equal(dec("70")) {
		t.Errorf("Feb 3 expense = %s, want 70", days[2].Expense)
	}
	if !days[27].Income.Equal(dec("900")) {
		t.Errorf("Feb 28 income = %s, want 900", days[27].Income)
	}
	if days[0].Date != model.NewDate(2025, time.February, 1) {
		t.Errorf("first day = %s", days[0].Date)
	}
}

func TestCache(t *testing.T) {
	c := NewCache()
	settings := model.UserSettings{SavingsGoal: dec("500")}
	today := model.NewDate(2025, time.March, 21)

	first := c.Get(1, march(), settings, today, today)
	// Same version: the stale ledger passed here must not be consulted.
	hit := c.Get(1, nil, settings, today, today)
	if !reflect.DeepEqual(first, hit) {
		t.Fatalf("cache miss on identical key: %+v", hit)
	}

	miss := c.Get(2, nil, settings, today, today)
	if !miss.TotalIncome.IsZero() {
		t.Fatalf("version bump did not invalidate: %+v", miss)
	}
	if len(c.entries) != 1 {
		t.Errorf("cached %d summaries, want 1 after invalidation", len(c.entries))
	}

	changed := c.Get(2, march(), model.UserSettings{SavingsGoal: dec("0")}, today, today)
	if !changed.TotalSafeToSpend.Equal(dec("1600")) {
		t.Errorf("settings change not reflected: %s", changed.TotalSafeToSpend)
	}
}
