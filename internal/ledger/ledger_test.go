package ledger

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/finsimples/internal/model"
)

func day(y int, m time.Month, d int) model.Date { return model.NewDate(y, m, d) }

func tx(id string, d model.Date, amount string, typ model.TransactionType, f model.Frequency, c model.Category) model.Transaction {
	return model.Transaction{
		ID:          id,
		Description: "entry " + id,
		Amount:      decimal.RequireFromString(amount),
		Date:        d,
		Type:        typ,
		Frequency:   f,
		Category:    c,
	}
}

func sampleLedger() []model.Transaction {
	return []model.Transaction{
		tx("a", day(2025, time.March, 3), "100", model.Expense, model.Variable, model.CategoryFood),
		tx("b", day(2025, time.February, 28), "50", model.Expense, model.Variable, model.CategoryFood),
		tx("c", day(2025, time.March, 20), "3000", model.Income, model.Recurring, model.CategorySalary),
		tx("d", day(2024, time.March, 10), "70", model.Expense, model.Recurring, model.CategoryHousing),
		tx("e", day(2025, time.March, 3), "30", model.Expense, model.Variable, model.CategoryLeisure),
		tx("f", day(2025, time.April, 1), "10", model.Expense, model.Variable, model.CategoryOther),
	}
}

func ids(txs []model.Transaction) []string {
	out := make([]string, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}

func TestFilterByMonth(t *testing.T) {
	ref := day(2025, time.March, 15)
	got := FilterByMonth(sampleLedger(), ref)

	want := []string{"c", "a", "e"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("FilterByMonth ids = %v, want %v", ids(got), want)
	}
	for i, tr := range got {
		if !tr.Date.SameMonth(ref) {
			t.Errorf("entry %s dated %s outside %s", tr.ID, tr.Date, ref.MonthKey())
		}
		if i > 0 && tr.Date.After(got[i-1].Date) {
			t.Errorf("entry %s out of order", tr.ID)
		}
	}
}

func TestFilterByMonth_DoesNotMutateInput(t *testing.T) {
	in := sampleLedger()
	before := ids(in)
	_ = FilterByMonth(in, day(2025, time.March, 1))
	if !reflect.DeepEqual(ids(in), before) {
		t.Fatalf("input reordered: %v", ids(in))
	}
}

func TestFilterByMonth_Empty(t *testing.T) {
	if got := FilterByMonth(sampleLedger(), day(2030, time.January, 1)); len(got) != 0 {
		t.Fatalf("expected no entries, got %v", ids(got))
	}
}

func TestAddPrependsWithFreshID(t *testing.T) {
	orig := NewID
	defer func() { NewID = orig }()
	n := 0
	NewID = func() string { n++; return fmt.Sprintf("new-%d", n) }

	in := sampleLedger()
	draft := tx("ignored", day(2025, time.March, 5), "12.5", model.Expense, model.Variable, model.CategoryTransport)
	out, id := Add(in, draft)

	if id != "new-1" {
		t.Fatalf("id = %q, want new-1", id)
	}
	if len(out) != len(in)+1 || out[0].ID != "new-1" {
		t.Fatalf("new entry not prepended: %v", ids(out))
	}
	if len(in) != 6 || in[0].ID != "a" {
		t.Fatal("input ledger modified")
	}
}

func TestEditPreservesID(t *testing.T) {
	in := sampleLedger()
	repl := tx("zzz", day(2025, time.March, 4), "99", model.Expense, model.Recurring, model.CategoryHealth)

	out := Edit(in, "a", repl)
	if out[0].ID != "a" {
		t.Fatalf("edited id = %q, want a", out[0].ID)
	}
	if !out[0].Amount.Equal(decimal.NewFromInt(99)) || out[0].Category != model.CategoryHealth {
		t.Fatalf("entry not replaced: %+v", out[0])
	}
	if !in[0].Amount.Equal(decimal.NewFromInt(100)) {
		t.Fatal("input ledger modified")
	}
}

func TestEditUnknownIDIsNoop(t *testing.T) {
	in := sampleLedger()
	out := Edit(in, "missing", tx("x", day(2025, time.March, 1), "1", model.Income, model.Variable, model.CategoryOther))
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("ledger changed on unknown id:\n got %+v\nwant %+v", out, in)
	}
}

func TestDelete(t *testing.T) {
	in := sampleLedger()
	out := Delete(in, "c")
	if !reflect.DeepEqual(ids(out), []string{"a", "b", "d", "e", "f"}) {
		t.Fatalf("Delete ids = %v", ids(out))
	}
	if got := Delete(in, "missing"); len(got) != len(in) {
		t.Fatalf("Delete of unknown id changed length to %d", len(got))
	}
}

func TestFindByPrefix(t *testing.T) {
	txs := []model.Transaction{{ID: "abc123"}, {ID: "abd456"}}
	if got, ok := FindByPrefix(txs, "abc"); !ok || got.ID != "abc123" {
		t.Fatalf("FindByPrefix(abc) = %v, %v", got.ID, ok)
	}
	if _, ok := FindByPrefix(txs, "ab"); ok {
		t.Fatal("ambiguous prefix should not resolve")
	}
	if _, ok := FindByPrefix(txs, ""); ok {
		t.Fatal("empty prefix should not resolve")
	}
}

func TestValidate(t *testing.T) {
	good := tx("", day(2025, time.March, 1), "10", model.Expense, model.Variable, model.CategoryFood)
	if err := Validate(good); err != nil {
		t.Fatalf("valid transaction rejected: %v", err)
	}

	tests := []struct {
		name  string
		mut   func(*model.Transaction)
		field string
	}{
		{"empty description", func(t *model.Transaction) { t.Description = "  " }, "description"},
		{"zero amount", func(t *model.Transaction) { t.Amount = decimal.Zero }, "amount"},
		{"negative amount", func(t *model.Transaction) { t.Amount = decimal.NewFromInt(-5) }, "amount"},
		{"no date", func(t *model.Transaction) { t.Date = model.Date{} }, "date"},
		{"bad type", func(t *model.Transaction) { t.Type = "gift" }, "type"},
		{"bad category", func(t *model.Transaction) { t.Category = model.Category(42) }, "category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := good
			tt.mut(&bad)
			err := Validate(bad)
			var ve *model.ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Fatalf("Validate error = %v, want field %s", err, tt.field)
			}
		})
	}
}
