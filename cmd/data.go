package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/theirongolddev/finsimples/internal/cli"
	"github.com/theirongolddev/finsimples/internal/model"

	"github.com/spf13/cobra"
)

// dataFile is the export format: everything a user can edit.
type dataFile struct {
	Settings     model.UserSettings  `json:"settings"`
	Transactions []model.Transaction `json:"transactions"`
	Goals        []model.SavingsGoal `json:"goals"`
}

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Export or import your entries, goals and settings",
}

var dataExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write your data as JSON (stdout when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDataExport,
}

var dataImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace your data with a previous export",
	Args:  cobra.ExactArgs(1),
	RunE:  runDataImport,
}

func init() {
	dataImportCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation")
	dataCmd.AddCommand(dataExportCmd, dataImportCmd)
	rootCmd.AddCommand(dataCmd)
}

func runDataExport(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	_, rec, err := s.store.Current()
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(dataFile{
		Settings:     rec.Settings,
		Transactions: rec.Transactions,
		Goals:        rec.Goals,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	out = append(out, '\n')

	if len(args) == 0 || args[0] == "-" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(args[0], out, 0o600); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Printf("  Exported %d entries and %d goals to %s\n", len(rec.Transactions), len(rec.Goals), args[0])
	return nil
}

func runDataImport(_ *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import: %w", err)
	}
	var in dataFile
	if err := json.Unmarshal(raw, &in); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if _, _, err := s.store.Current(); err != nil {
		return err
	}

	if !flagYes {
		ok, err := confirm(fmt.Sprintf("Replace all your data with %d entries and %d goals from %s?",
			len(in.Transactions), len(in.Goals), args[0]))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println(cli.Muted("  Cancelled."))
			return nil
		}
	}

	if err := s.store.ReplaceData(in.Settings, in.Transactions, in.Goals); err != nil {
		return err
	}
	fmt.Printf("\n  Imported %d entries and %d goals.\n", len(in.Transactions), len(in.Goals))
	return nil
}
