package cmd

import (
	"fmt"

	"github.com/theirongolddev/finsimples/internal/cli"
	"github.com/theirongolddev/finsimples/internal/summary"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var flagAllDays bool

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Day-by-day income and spending for the month",
	Args:  cobra.NoArgs,
	RunE:  runDaily,
}

func init() {
	dailyCmd.Flags().BoolVar(&flagAllDays, "all", false, "Include days with no entries")
	rootCmd.AddCommand(dailyCmd)
}

var weekdays = [...]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

func runDaily(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	_, rec, err := s.store.Active()
	if err != nil {
		return err
	}

	days := summary.Daily(rec.Transactions, s.ref)

	fmt.Println()
	fmt.Println(cli.RenderTitle("DAILY  " + cli.FormatMonth(s.ref)))
	fmt.Println()

	spend := make([]decimal.Decimal, 0, len(days))
	rows := make([][]string, 0, len(days))
	running := decimal.Zero
	for _, d := range days {
		spend = append(spend, d.Expense)
		running = running.Add(d.Income).Sub(d.Expense)
		if !flagAllDays && d.Income.IsZero() && d.Expense.IsZero() {
			continue
		}
		rows = append(rows, []string{
			cli.FormatDate(d.Date),
			weekdays[d.Date.Time().Weekday()],
			cli.Income(cli.FormatMoney(d.Income)),
			cli.Expense(cli.FormatMoney(d.Expense)),
			cli.FormatSigned(running),
		})
	}

	if len(rows) == 0 {
		fmt.Println("  No entries for this month.")
		return nil
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers:  []string{"Date", "Day", "In", "Out", "Running"},
		Rows:     rows,
		LeftCols: 2,
	}))
	fmt.Printf("\n  Spending  %s\n\n", cli.RenderSparkline(spend))
	return nil
}
