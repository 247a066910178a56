package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDateDaysUntil(t *testing.T) {
	a := NewDate(2024, time.February, 28)
	if got := a.DaysUntil(NewDate(2024, time.March, 1)); got != 2 {
		t.Fatalf("DaysUntil across leap day = %d, want 2", got)
	}
	if got := a.DaysUntil(NewDate(2024, time.February, 18)); got != -10 {
		t.Fatalf("DaysUntil backwards = %d, want -10", got)
	}
}

func TestDateDaysInMonth(t *testing.T) {
	tests := []struct {
		d    Date
		want int
	}{
		{NewDate(2024, time.February, 10), 29},
		{NewDate(2023, time.February, 10), 28},
		{NewDate(2025, time.April, 30), 30},
		{NewDate(2025, time.December, 1), 31},
	}
	for _, tt := range tests {
		if got := tt.d.DaysInMonth(); got != tt.want {
			t.Errorf("%s DaysInMonth = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestDateAddMonths(t *testing.T) {
	d := NewDate(2025, time.January, 31)
	if got := d.AddMonths(1); got != NewDate(2025, time.February, 1) {
		t.Fatalf("AddMonths(1) = %s, want 2025-02-01", got)
	}
	if got := d.AddMonths(-1); got != NewDate(2024, time.December, 1) {
		t.Fatalf("AddMonths(-1) = %s, want 2024-12-01", got)
	}
}

func TestDateJSONEmptyIsUnset(t *testing.T) {
	var g SavingsGoal
	if err := json.Unmarshal([]byte(`{"id":"g1","deadline":"","startDate":"2025-03-04"}`), &g); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if g.Deadline.IsSet() {
		t.Errorf("empty deadline should be unset, got %s", g.Deadline)
	}
	if !g.StartDate.IsSet() || *g.StartDate != NewDate(2025, time.March, 4) {
		t.Errorf("StartDate = %v, want 2025-03-04", g.StartDate)
	}
}

func TestCategoryRoundTripUsesLabel(t *testing.T) {
	tx := Transaction{Category: CategoryFood, Type: Expense, Frequency: Variable}
	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatal(err)
	}
	var back Transaction
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Category != CategoryFood {
		t.Fatalf("category = %v, want Alimentação", back.Category)
	}
	if err := json.Unmarshal([]byte(`{"category":"Crypto"}`), &back); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestParseCategoryAcceptsKey(t *testing.T) {
	c, err := ParseCategory("HEALTH")
	if err != nil || c != CategoryHealth {
		t.Fatalf("ParseCategory(HEALTH) = %v, %v", c, err)
	}
}

func TestParseFrequencyFixedAlias(t *testing.T) {
	f, err := ParseFrequency("fixed")
	if err != nil || f != Recurring {
		t.Fatalf("ParseFrequency(fixed) = %v, %v", f, err)
	}
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234.56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"R$ 10,5", "10.5"},
		{"$7", "7"},
		{"10.5", "10.5"},
		{"0.500", "0.5"},
		{"1.500", "1500"},
		{"R$ 1.500", "1500"},
		{"R$ 1.500,00", "1500"},
		{"1.234.567", "1234567"},
		{"1.234.567,89", "1234567.89"},
		{"-1.500,25", "-1500.25"},
		{"1500,5", "1500.5"},
	}
	for _, tt := range tests {
		got, err := ParseMoney(tt.in)
		if err != nil {
			t.Errorf("ParseMoney(%q) error: %v", tt.in, err)
			continue
		}
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("ParseMoney(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"abc", "", "R$", "1,234.56", "1,2,3", "1.2.3", "12.5,3", "1.23,4"} {
		if got, err := ParseMoney(bad); err == nil {
			t.Errorf("ParseMoney(%q) = %s, want error", bad, got)
		}
	}
}

func TestMoneyInputRoundTrips(t *testing.T) {
	for _, s := range []string{"1500", "1500.5", "12.345", "0.01", "-3.2"} {
		d := decimal.RequireFromString(s)
		got, err := ParseMoney(MoneyInput(d))
		if err != nil {
			t.Errorf("ParseMoney(MoneyInput(%s)) error: %v", s, err)
			continue
		}
		if !got.Equal(d) {
			t.Errorf("ParseMoney(MoneyInput(%s)) = %s", s, got)
		}
	}
}
