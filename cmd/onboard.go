package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finsimples/internal/account"
	"github.com/theirongolddev/finsimples/internal/cli"
	"github.com/theirongolddev/finsimples/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagName       string
	flagSavings    string
	flagAge        string
	flagProfession string
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Set up your profile and monthly savings goal",
	Args:  cobra.NoArgs,
	RunE:  runOnboard,
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Update your profile and monthly savings goal",
	Args:  cobra.NoArgs,
	RunE:  runSettings,
}

func init() {
	for _, c := range []*cobra.Command{onboardCmd, settingsCmd} {
		c.Flags().StringVar(&flagName, "name", "", "Your name")
		c.Flags().StringVar(&flagSavings, "savings", "", "Amount to save each month")
		c.Flags().StringVar(&flagAge, "age", "", "Age (optional)")
		c.Flags().StringVar(&flagProfession, "profession", "", "Profession (optional)")
	}
	rootCmd.AddCommand(onboardCmd, settingsCmd)
}

// settingsForm fills blank flags from current. Interactive mode shows
// every field pre-filled; otherwise only missing required fields are asked.
func settingsForm(current model.UserSettings, interactive bool) (model.UserSettings, error) {
	if flagName == "" {
		flagName = current.UserName
	}
	if flagSavings == "" && current.SavingsGoal.IsPositive() {
		flagSavings = model.MoneyInput(current.SavingsGoal)
	}
	if flagAge == "" {
		flagAge = current.Age
	}
	if flagProfession == "" {
		flagProfession = current.Profession
	}

	var fields []huh.Field
	if interactive {
		fields = append(fields,
			huh.NewInput().Title("What should we call you?").Value(&flagName).Validate(required("name")),
			huh.NewInput().Title("How much do you want to save each month?").Value(&flagSavings).Validate(validMoney(true)),
			huh.NewInput().Title("Age (optional)").Value(&flagAge),
			huh.NewInput().Title("Profession (optional)").Value(&flagProfession),
		)
	} else {
		fields = inputIfEmpty(fields, &flagName, "What should we call you?", required("name"))
		fields = inputIfEmpty(fields, &flagSavings, "How much do you want to save each month?", validMoney(true))
	}
	if err := promptMissing(fields...); err != nil {
		return model.UserSettings{}, err
	}

	savings, err := model.ParseMoney(flagSavings)
	if err != nil {
		return model.UserSettings{}, err
	}
	return model.UserSettings{
		UserName:    strings.TrimSpace(flagName),
		SavingsGoal: savings,
		Age:         strings.TrimSpace(flagAge),
		Profession:  strings.TrimSpace(flagProfession),
	}, nil
}

func runOnboard(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	_, rec, err := s.store.Current()
	if err != nil {
		return err
	}
	if rec.HasCompletedOnboarding {
		return account.ErrOnboarded
	}

	settings, err := settingsForm(rec.Settings, !anyChanged(cmd, "name", "savings", "age", "profession"))
	if err != nil {
		return err
	}
	if err := s.store.CompleteOnboarding(settings); err != nil {
		return err
	}

	fmt.Printf("\n  All set, %s! You plan to save %s each month.\n",
		settings.UserName, cli.Income(cli.FormatMoney(settings.SavingsGoal)))
	fmt.Println(cli.Muted("  Add your first entry with `finsimples tx add`."))
	return nil
}

func runSettings(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	_, rec, err := s.store.Active()
	if err != nil {
		return err
	}

	if flagSavings == "" {
		flagSavings = model.MoneyInput(rec.Settings.SavingsGoal)
	}
	settings, err := settingsForm(rec.Settings, !anyChanged(cmd, "name", "savings", "age", "profession"))
	if err != nil {
		return err
	}
	if err := s.store.UpdateSettings(settings); err != nil {
		return err
	}

	fmt.Println("\n  Settings saved.")
	return nil
}
