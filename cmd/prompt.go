package cmd

import (
	"errors"
	"strings"

	"github.com/theirongolddev/finsimples/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// anyChanged reports whether any of the named flags was set explicitly.
func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

func validMoney(allowZero bool) func(string) error {
	return func(s string) error {
		d, err := model.ParseMoney(s)
		if err != nil {
			return err
		}
		if d.IsNegative() || (!allowZero && d.IsZero()) {
			return errors.New("amount must be greater than zero")
		}
		return nil
	}
}

func validDate(optional bool) func(string) error {
	return func(s string) error {
		if optional && strings.TrimSpace(s) == "" {
			return nil
		}
		_, err := model.ParseDate(strings.TrimSpace(s))
		return err
	}
}

// promptMissing asks for every field whose value is still empty. Fields
// already given on the command line are skipped.
func promptMissing(fields ...huh.Field) error {
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

func inputIfEmpty(fields []huh.Field, v *string, title string, validate func(string) error) []huh.Field {
	if strings.TrimSpace(*v) != "" {
		return fields
	}
	in := huh.NewInput().Title(title).Value(v)
	if validate != nil {
		in = in.Validate(validate)
	}
	return append(fields, in)
}

func categoryOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(model.Categories()))
	for _, c := range model.Categories() {
		opts = append(opts, huh.NewOption(c.Icon()+" "+c.Label(), c.Key()))
	}
	return opts
}

func confirm(title string) (bool, error) {
	ok := false
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	return ok, err
}
