package model

import "github.com/shopspring/decimal"

// SavingsGoal is a named target the user deposits towards.
// CurrentAmount only grows and may exceed TargetAmount.
type SavingsGoal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *Date           `json:"deadline,omitempty"`
	StartDate     *Date           `json:"startDate,omitempty"`
}

// UserSettings holds profile data and the monthly savings commitment.
type UserSettings struct {
	UserName    string          `json:"userName"`
	SavingsGoal decimal.Decimal `json:"savingsGoal"`
	Age         string          `json:"age"`
	Profession  string          `json:"profession"`
}

// UserRecord is everything stored for one username.
type UserRecord struct {
	Password               string        `json:"password"`
	Settings               UserSettings  `json:"settings"`
	Transactions           []Transaction `json:"transactions"`
	Goals                  []SavingsGoal `json:"goals"`
	HasCompletedOnboarding bool          `json:"hasCompletedOnboarding"`
}

// NewUserRecord returns the record created at registration: empty ledger,
// no goals, onboarding pending.
func NewUserRecord(username, password string) UserRecord {
	return UserRecord{
		Password: password,
		Settings: UserSettings{
			UserName:    username,
			SavingsGoal: decimal.Zero,
		},
		Transactions: []Transaction{},
		Goals:        []SavingsGoal{},
	}
}

// FinancialSummary is derived from one month of transactions; never stored.
type FinancialSummary struct {
	TotalIncome           decimal.Decimal
	TotalFixedExpenses    decimal.Decimal
	TotalVariableExpenses decimal.Decimal
	Balance               decimal.Decimal
	SavingsGoal           decimal.Decimal
	DailySafeToSpend      decimal.Decimal
	TotalSafeToSpend      decimal.Decimal
	DaysRemaining         int
}

// View names one dashboard perspective on the month.
type View string

const (
	ViewHome     View = "home"
	ViewIncome   View = "income"
	ViewExpenses View = "expenses"
	ViewFixed    View = "fixed"
	ViewVariable View = "variable"
	ViewGoals    View = "goals"
)

// Views lists the dashboard views in navigation order.
var Views = []View{ViewHome, ViewIncome, ViewExpenses, ViewFixed, ViewVariable, ViewGoals}
