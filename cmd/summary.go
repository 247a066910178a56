package cmd

import (
	"fmt"

	"github.com/theirongolddev/finsimples/internal/cli"
	"github.com/theirongolddev/finsimples/internal/coach"
	"github.com/theirongolddev/finsimples/internal/ledger"
	"github.com/theirongolddev/finsimples/internal/summary"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly summary with safe-to-spend and advice",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	_, rec, err := s.store.Active()
	if err != nil {
		return err
	}

	month := ledger.FilterByMonth(rec.Transactions, s.ref)
	stats := summary.Compute(month, rec.Settings, s.ref, s.today)
	advice := coach.Advise(stats)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  %s", rec.Settings.UserName, cli.FormatMonth(s.ref))))
	fmt.Println()

	daily := cli.FormatMoney(stats.DailySafeToSpend) + "/day"
	if stats.DailySafeToSpend.IsNegative() {
		daily = cli.Expense(daily)
	}
	days := "-"
	if stats.DaysRemaining > 0 {
		days = fmt.Sprintf("%d", stats.DaysRemaining)
	}

	rows := [][]string{
		{"Income", cli.Income(cli.FormatMoney(stats.TotalIncome))},
		{"Fixed expenses", cli.Expense(cli.FormatMoney(stats.TotalFixedExpenses))},
		{"Variable expenses", cli.Expense(cli.FormatMoney(stats.TotalVariableExpenses))},
		{"Balance", cli.FormatSigned(stats.Balance)},
		{"---"},
		{"Savings goal", cli.FormatMoney(stats.SavingsGoal)},
		{"Safe to spend", cli.FormatMoney(stats.TotalSafeToSpend)},
		{"Days remaining", days},
		{"Daily budget", daily},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Month at a glance",
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	fmt.Println()

	fmt.Printf("  %s\n", cli.Header(advice.Title))
	fmt.Printf("  %s\n", advice.Message)
	fmt.Println()

	if len(month) == 0 {
		fmt.Println(cli.Muted("  No entries this month. Add one with `finsimples tx add`."))
	}
	return nil
}
