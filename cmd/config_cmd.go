// Package cmd implements the finsimples CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/finsimples/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	dataDir := cfg.DataDir()
	if flagDataDir != "" {
		dataDir = flagDataDir + " (from --data-dir)"
	}
	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", dataDir)
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency:    %s\n", cfg.Display.Currency)
	fmt.Printf("    Date format: %s\n", cfg.Display.DateFormat)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Println()

	fmt.Printf("  Environment overrides: %s, %s\n", config.EnvDataDir, config.EnvLogLevel)
	fmt.Println("  Run `finsimples setup` to reconfigure.")
	return nil
}
