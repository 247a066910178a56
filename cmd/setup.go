package cmd

import (
	"fmt"

	"github.com/theirongolddev/finsimples/internal/config"
	"github.com/theirongolddev/finsimples/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure currency, date format, theme and data directory",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

var dateFormats = []struct {
	label  string
	layout string
}{
	{"31/12/2025", "02/01/2006"},
	{"2025-12-31", "2006-01-02"},
	{"12/31/2025", "01/02/2006"},
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}
	dateOpts := make([]huh.Option[string], 0, len(dateFormats))
	for _, f := range dateFormats {
		dateOpts = append(dateOpts, huh.NewOption(f.label, f.layout))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to finsimples!").
				Description("A few display preferences. Everything can be changed later."),
			huh.NewInput().
				Title("Currency symbol").
				Value(&cfg.Display.Currency).
				Validate(required("currency")),
			huh.NewSelect[string]().
				Title("Date format").
				Options(dateOpts...).
				Value(&cfg.Display.DateFormat),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&cfg.Appearance.Theme),
			huh.NewInput().
				Title("Data directory").
				Description("Leave blank for " + config.DefaultDataDir()).
				Value(&cfg.General.DataDir),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `finsimples setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
