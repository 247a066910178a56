// Package ledger implements month filtering, mutation and derived views over
// a user's transactions. Every function is pure: inputs are never modified.
package ledger

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/theirongolddev/finsimples/internal/model"
)

// NewID generates transaction ids. Tests may replace it.
var NewID = uuid.NewString

// FilterByMonth returns the transactions dated in ref's month and year,
// newest first. Same-day entries keep their ledger order.
func FilterByMonth(txs []model.Transaction, ref model.Date) []model.Transaction {
	result := make([]model.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Date.SameMonth(ref) {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result
}

// Add assigns a fresh id to tx and prepends it. It returns the new ledger
// and the id.
func Add(txs []model.Transaction, tx model.Transaction) ([]model.Transaction, string) {
	tx.ID = NewID()
	out := make([]model.Transaction, 0, len(txs)+1)
	out = append(out, tx)
	out = append(out, txs...)
	return out, tx.ID
}

// Edit replaces the entry with the given id, keeping the id. Unknown ids
// leave the ledger unchanged.
func Edit(txs []model.Transaction, id string, tx model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txs))
	copy(out, txs)
	for i := range out {
		if out[i].ID == id {
			tx.ID = id
			out[i] = tx
		}
	}
	return out
}

// Delete removes the entry with the given id, if present.
func Delete(txs []model.Transaction, id string) []model.Transaction {
	out := make([]model.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// Find returns the entry with the given id.
func Find(txs []model.Transaction, id string) (model.Transaction, bool) {
	for _, t := range txs {
		if t.ID == id {
			return t, true
		}
	}
	return model.Transaction{}, false
}

// FindByPrefix resolves a possibly shortened id, as printed by list views.
// It fails when the prefix is empty or ambiguous.
func FindByPrefix(txs []model.Transaction, prefix string) (model.Transaction, bool) {
	if prefix == "" {
		return model.Transaction{}, false
	}
	var match model.Transaction
	n := 0
	for _, t := range txs {
		if strings.HasPrefix(t.ID, prefix) {
			match = t
			n++
		}
	}
	return match, n == 1
}

// Validate checks the boundary rules for a submitted transaction.
func Validate(tx model.Transaction) error {
	if strings.TrimSpace(tx.Description) == "" {
		return model.Invalid("description", "required")
	}
	if !tx.Amount.IsPositive() {
		return model.Invalid("amount", "must be greater than zero")
	}
	if tx.Date.IsZero() {
		return model.Invalid("date", "required")
	}
	if _, err := model.ParseTransactionType(string(tx.Type)); err != nil {
		return model.Invalid("type", err.Error())
	}
	if _, err := model.ParseFrequency(string(tx.Frequency)); err != nil {
		return model.Invalid("frequency", err.Error())
	}
	if !tx.Category.Valid() {
		return model.Invalid("category", "unknown")
	}
	return nil
}
