package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionType separates money coming in from money going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType validates a transaction type string.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(strings.ToLower(strings.TrimSpace(s))); t {
	case Income, Expense:
		return t, nil
	}
	return "", fmt.Errorf("unknown transaction type %q (want income or expense)", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TransactionType) UnmarshalText(b []byte) error {
	parsed, err := ParseTransactionType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Frequency tells fixed monthly entries apart from ad hoc ones.
type Frequency string

const (
	Recurring Frequency = "recurring"
	Variable  Frequency = "variable"
)

// ParseFrequency validates a frequency string. "fixed" is accepted as an
// alias of recurring.
func ParseFrequency(s string) (Frequency, error) {
	switch f := Frequency(strings.ToLower(strings.TrimSpace(s))); f {
	case Recurring, Variable:
		return f, nil
	case "fixed":
		return Recurring, nil
	}
	return "", fmt.Errorf("unknown frequency %q (want recurring or variable)", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Frequency) UnmarshalText(b []byte) error {
	parsed, err := ParseFrequency(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Transaction is one ledger entry. It is replaced wholesale on edit.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        Date            `json:"date"`
	Type        TransactionType `json:"type"`
	Frequency   Frequency       `json:"frequency"`
	Category    Category        `json:"category"`
}

// IsIncome reports whether t is money coming in.
func (t Transaction) IsIncome() bool { return t.Type == Income }

// IsFixedExpense reports whether t is a recurring expense.
func (t Transaction) IsFixedExpense() bool {
	return t.Type == Expense && t.Frequency == Recurring
}

// IsVariableExpense reports whether t is an ad hoc expense.
func (t Transaction) IsVariableExpense() bool {
	return t.Type == Expense && t.Frequency != Recurring
}
