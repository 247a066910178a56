package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/finsimples/internal/account"
	"github.com/theirongolddev/finsimples/internal/cli"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagUsername string
	flagPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	Args:  cobra.NoArgs,
	RunE:  runRegister,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to an existing account",
	Args:  cobra.NoArgs,
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	for _, c := range []*cobra.Command{registerCmd, loginCmd} {
		c.Flags().StringVarP(&flagUsername, "username", "u", "", "Username")
		c.Flags().StringVarP(&flagPassword, "password", "p", "", "Password")
	}
	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd)
}

func credentialFields() []huh.Field {
	var fields []huh.Field
	fields = inputIfEmpty(fields, &flagUsername, "Username", required("username"))
	if flagPassword == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&flagPassword).
			Validate(required("password")))
	}
	return fields
}

func runRegister(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := promptMissing(credentialFields()...); err != nil {
		return err
	}

	if err := s.store.Register(flagUsername, flagPassword); err != nil {
		if errors.Is(err, account.ErrUserExists) {
			return fmt.Errorf("%w: %s", err, flagUsername)
		}
		return err
	}

	fmt.Printf("\n  Welcome, %s! Your account was created.\n", flagUsername)
	fmt.Println(cli.Muted("  Next: `finsimples onboard` to set your monthly savings goal."))
	return nil
}

func runLogin(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	// Offer the known accounts instead of a blank username field.
	if names := s.store.Usernames(); flagUsername == "" && len(names) > 0 {
		if err := huh.NewSelect[string]().
			Title("Account").
			Options(huh.NewOptions(names...)...).
			Value(&flagUsername).
			Run(); err != nil {
			return err
		}
	}

	if err := promptMissing(credentialFields()...); err != nil {
		return err
	}

	if err := s.store.Login(flagUsername, flagPassword); err != nil {
		return fmt.Errorf("%w: %s", err, flagUsername)
	}

	_, rec, err := s.store.Current()
	if err != nil {
		return err
	}
	fmt.Printf("\n  Logged in as %s.\n", flagUsername)
	if !rec.HasCompletedOnboarding {
		fmt.Println(cli.Warn("  Your profile is incomplete. Run `finsimples onboard`."))
	}
	return nil
}

func runLogout(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	s.store.Logout()
	fmt.Println("\n  Logged out.")
	return nil
}

func runWhoami(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	name, rec, err := s.store.Current()
	if err != nil {
		return err
	}

	fmt.Println()
	rows := [][]string{
		{"Username", name},
		{"Name", rec.Settings.UserName},
		{"Savings goal", cli.FormatMoney(rec.Settings.SavingsGoal) + "/month"},
		{"Transactions", fmt.Sprintf("%d", len(rec.Transactions))},
		{"Goals", fmt.Sprintf("%d", len(rec.Goals))},
		{"Onboarded", fmt.Sprintf("%v", rec.HasCompletedOnboarding)},
	}
	if rec.Settings.Age != "" {
		rows = append(rows, []string{"Age", rec.Settings.Age})
	}
	if rec.Settings.Profession != "" {
		rows = append(rows, []string{"Profession", rec.Settings.Profession})
	}
	if ts, ok, err := s.kv.UpdatedAt(account.UsersKey); err != nil {
		s.log.Warn("reading last save time", "error", err)
	} else if ok {
		rows = append(rows, []string{"Last saved", ts.Local().Format(cli.DateLayout + " 15:04")})
	}
	fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))
	return nil
}
