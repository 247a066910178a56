// Package goals manages savings goals: creation, deposits, removal, and the
// deadline and completion estimates shown next to each goal.
package goals

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/theirongolddev/finsimples/internal/model"
)

// NewID generates goal ids. Tests may replace it.
var NewID = uuid.NewString

var hundred = decimal.NewFromInt(100)

// Add assigns a fresh id, resets CurrentAmount to zero and appends the goal.
func Add(goals []model.SavingsGoal, g model.SavingsGoal) ([]model.SavingsGoal, string) {
	g.ID = NewID()
	g.CurrentAmount = decimal.Zero
	out := make([]model.SavingsGoal, 0, len(goals)+1)
	out = append(out, goals...)
	out = append(out, g)
	return out, g.ID
}

// Deposit adds amount to the matching goal. Unknown ids are ignored.
// Callers reject non-positive amounts with ValidateDeposit first.
func Deposit(goals []model.SavingsGoal, id string, amount decimal.Decimal) []model.SavingsGoal {
	out := make([]model.SavingsGoal, len(goals))
	copy(out, goals)
	for i := range out {
		if out[i].ID == id {
			out[i].CurrentAmount = out[i].CurrentAmount.Add(amount)
		}
	}
	return out
}

// Delete removes the matching goal.
func Delete(goals []model.SavingsGoal, id string) []model.SavingsGoal {
	out := make([]model.SavingsGoal, 0, len(goals))
	for _, g := range goals {
		if g.ID != id {
			out = append(out, g)
		}
	}
	return out
}

// Find returns the goal with the given id, or the single goal whose id
// starts with it.
func Find(goals []model.SavingsGoal, id string) (model.SavingsGoal, bool) {
	if id == "" {
		return model.SavingsGoal{}, false
	}
	var match model.SavingsGoal
	n := 0
	for _, g := range goals {
		if g.ID == id {
			return g, true
		}
		if strings.HasPrefix(g.ID, id) {
			match = g
			n++
		}
	}
	return match, n == 1
}

// Progress returns CurrentAmount as a percentage of TargetAmount. It is not
// capped at 100; a zero target yields zero.
func Progress(g model.SavingsGoal) decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(hundred)
}

// Validate checks a goal submitted for creation.
func Validate(g model.SavingsGoal) error {
	if strings.TrimSpace(g.Name) == "" {
		return model.Invalid("name", "required")
	}
	if !g.TargetAmount.IsPositive() {
		return model.Invalid("target", "must be greater than zero")
	}
	return nil
}

// ValidateDeposit rejects non-positive deposit amounts.
func ValidateDeposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return model.Invalid("amount", "must be greater than zero")
	}
	return nil
}
