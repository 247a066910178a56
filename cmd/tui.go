package cmd

import (
	"fmt"

	"github.com/theirongolddev/finsimples/internal/tui"
	"github.com/theirongolddev/finsimples/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	// Fail before taking over the screen.
	if _, _, err := s.store.Active(); err != nil {
		return err
	}

	theme.SetActive(s.cfg.Appearance.Theme)

	// Force TrueColor so every background style produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(s.store, s.today, s.ref)
	p := tea.NewProgram(app, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	if app, ok := final.(tui.App); ok && app.LoggedOut() {
		fmt.Println("  Logged out.")
	}
	return nil
}
