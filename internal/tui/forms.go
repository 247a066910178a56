package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/finsimples/internal/cli"
	"github.com/theirongolddev/finsimples/internal/model"

	"github.com/charmbracelet/huh"
)

type formKind int

const (
	formNone formKind = iota
	formTx
	formEdit
	formGoal
	formDeposit
	formDelete
	formSettings
)

// formValues backs the active huh form. It is held by pointer so the
// form's bindings survive App being copied through Update.
type formValues struct {
	// transaction
	Description string
	Amount      string
	Date        string
	Type        string
	Frequency   string
	Category    string

	// goal
	Name     string
	Target   string
	Deadline string
	Start    string

	// settings; Name holds the display name
	Savings    string
	Age        string
	Profession string

	// delete confirmation and deposit target
	Confirm  bool
	TargetID string
	Label    string
}

// newTxValues presets type and frequency from the tab the form was opened on.
func newTxValues(view model.View, today model.Date) *formValues {
	v := &formValues{
		Date:      today.String(),
		Type:      string(model.Expense),
		Frequency: string(model.Variable),
		Category:  model.CategoryOther.Key(),
	}
	switch view {
	case model.ViewIncome:
		v.Type = string(model.Income)
		v.Category = model.CategorySalary.Key()
	case model.ViewFixed:
		v.Frequency = string(model.Recurring)
		v.Category = model.CategoryHousing.Key()
	}
	return v
}

// editTxValues pre-fills the transaction form from an existing entry.
func editTxValues(tx model.Transaction) *formValues {
	return &formValues{
		Description: tx.Description,
		Amount:      model.MoneyInput(tx.Amount),
		Date:        tx.Date.String(),
		Type:        string(tx.Type),
		Frequency:   string(tx.Frequency),
		Category:    tx.Category.Key(),
		TargetID:    tx.ID,
		Label:       tx.Description,
	}
}

func settingsValues(s model.UserSettings) *formValues {
	return &formValues{
		Name:       s.UserName,
		Savings:    model.MoneyInput(s.SavingsGoal),
		Age:        s.Age,
		Profession: s.Profession,
	}
}

func newTxForm(v *formValues, title string) *huh.Form {
	cats := make([]huh.Option[string], 0, len(model.Categories()))
	for _, c := range model.Categories() {
		cats = append(cats, huh.NewOption(c.Icon()+" "+c.Label(), c.Key()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Description").Value(&v.Description).Validate(notBlank("description")),
			huh.NewInput().Title("Amount").Placeholder("1.234,56").Value(&v.Amount).Validate(positiveMoney),
			huh.NewInput().Title("Date").Description("YYYY-MM-DD").Value(&v.Date).Validate(dateField(false)),
			huh.NewSelect[string]().Title("Type").Options(
				huh.NewOption("Expense", string(model.Expense)),
				huh.NewOption("Income", string(model.Income)),
			).Value(&v.Type),
			huh.NewSelect[string]().Title("Frequency").Options(
				huh.NewOption("Variable", string(model.Variable)),
				huh.NewOption("Fixed (monthly)", string(model.Recurring)),
			).Value(&v.Frequency),
			huh.NewSelect[string]().Title("Category").Options(cats...).Value(&v.Category),
		).Title(title),
	).WithShowHelp(true)
}

func newGoalForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&v.Name).Validate(notBlank("name")),
			huh.NewInput().Title("Target").Value(&v.Target).Validate(positiveMoney),
			huh.NewInput().Title("Deadline").Description("YYYY-MM-DD, optional").Value(&v.Deadline).Validate(dateField(true)),
			huh.NewInput().Title("Start date").Description("YYYY-MM-DD").Value(&v.Start).Validate(dateField(true)),
		).Title("New savings goal"),
	).WithShowHelp(true)
}

func newSettingsForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&v.Name).Validate(notBlank("name")),
			huh.NewInput().Title("Monthly savings goal").Value(&v.Savings).Validate(nonNegativeMoney),
			huh.NewInput().Title("Age").Description("optional").Value(&v.Age),
			huh.NewInput().Title("Profession").Description("optional").Value(&v.Profession),
		).Title("Settings"),
	).WithShowHelp(true)
}

func newDepositForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Deposit into " + v.Label).
				Value(&v.Amount).
				Validate(positiveMoney),
		),
	).WithShowHelp(true)
}

func newDeleteForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %s?", v.Label)).
				Affirmative("Delete").
				Negative("Keep").
				Value(&v.Confirm),
		),
	)
}

// transaction builds the draft entered in a transaction form.
func (v *formValues) transaction() (model.Transaction, error) {
	amount, err := model.ParseMoney(v.Amount)
	if err != nil {
		return model.Transaction{}, err
	}
	date, err := model.ParseDate(strings.TrimSpace(v.Date))
	if err != nil {
		return model.Transaction{}, err
	}
	typ, err := model.ParseTransactionType(v.Type)
	if err != nil {
		return model.Transaction{}, err
	}
	freq, err := model.ParseFrequency(v.Frequency)
	if err != nil {
		return model.Transaction{}, err
	}
	cat, err := model.ParseCategory(v.Category)
	if err != nil {
		return model.Transaction{}, err
	}
	return model.Transaction{
		Description: strings.TrimSpace(v.Description),
		Amount:      amount,
		Date:        date,
		Type:        typ,
		Frequency:   freq,
		Category:    cat,
	}, nil
}

// goal builds the draft entered in a goal form.
func (v *formValues) goal() (model.SavingsGoal, error) {
	target, err := model.ParseMoney(v.Target)
	if err != nil {
		return model.SavingsGoal{}, err
	}
	deadline, err := optionalDate(v.Deadline)
	if err != nil {
		return model.SavingsGoal{}, err
	}
	start, err := optionalDate(v.Start)
	if err != nil {
		return model.SavingsGoal{}, err
	}
	return model.SavingsGoal{
		Name:         strings.TrimSpace(v.Name),
		TargetAmount: target,
		Deadline:     deadline,
		StartDate:    start,
	}, nil
}

func optionalDate(s string) (*model.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

func positiveMoney(s string) error {
	d, err := model.ParseMoney(s)
	if err != nil {
		return err
	}
	if !d.IsPositive() {
		return errors.New("amount must be greater than zero")
	}
	return nil
}

func nonNegativeMoney(s string) error {
	d, err := model.ParseMoney(s)
	if err != nil {
		return err
	}
	if d.IsNegative() {
		return errors.New("amount must not be negative")
	}
	return nil
}

// settings builds the profile entered in the settings form.
func (v *formValues) settings() (model.UserSettings, error) {
	savings, err := model.ParseMoney(v.Savings)
	if err != nil {
		return model.UserSettings{}, err
	}
	return model.UserSettings{
		UserName:    strings.TrimSpace(v.Name),
		SavingsGoal: savings,
		Age:         strings.TrimSpace(v.Age),
		Profession:  strings.TrimSpace(v.Profession),
	}, nil
}

func dateField(optional bool) func(string) error {
	return func(s string) error {
		if optional && strings.TrimSpace(s) == "" {
			return nil
		}
		_, err := model.ParseDate(strings.TrimSpace(s))
		return err
	}
}

// submitForm applies a completed form to the store and returns the
// status line to show.
func (a *App) submitForm() (string, error) {
	v := a.formVals
	switch a.formKind {
	case formTx:
		draft, err := v.transaction()
		if err != nil {
			return "", err
		}
		if _, err := a.store.AddTransaction(draft); err != nil {
			return "", err
		}
		// Jump to the month of the new entry so it is visible.
		if !draft.Date.SameMonth(a.ref) {
			a.setMonth(draft.Date)
		}
		return fmt.Sprintf("Added %s (%s)", draft.Description, cli.FormatMoney(draft.Amount)), nil

	case formEdit:
		draft, err := v.transaction()
		if err != nil {
			return "", err
		}
		if err := a.store.EditTransaction(v.TargetID, draft); err != nil {
			return "", err
		}
		if !draft.Date.SameMonth(a.ref) {
			a.setMonth(draft.Date)
		}
		return "Updated " + draft.Description, nil

	case formSettings:
		settings, err := v.settings()
		if err != nil {
			return "", err
		}
		if err := a.store.UpdateSettings(settings); err != nil {
			return "", err
		}
		return "Settings saved", nil

	case formGoal:
		draft, err := v.goal()
		if err != nil {
			return "", err
		}
		if _, err := a.store.AddGoal(draft); err != nil {
			return "", err
		}
		return "Created goal " + draft.Name, nil

	case formDeposit:
		amount, err := model.ParseMoney(v.Amount)
		if err != nil {
			return "", err
		}
		if err := a.store.Deposit(v.TargetID, amount); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deposited %s into %s", cli.FormatMoney(amount), v.Label), nil

	case formDelete:
		if !v.Confirm {
			return "", nil
		}
		var err error
		if a.currentView() == model.ViewGoals {
			err = a.store.DeleteGoal(v.TargetID)
		} else {
			err = a.store.DeleteTransaction(v.TargetID)
		}
		if err != nil {
			return "", err
		}
		return "Deleted " + v.Label, nil
	}
	return "", nil
}
