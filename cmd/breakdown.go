package cmd

import (
	"fmt"

	"github.com/theirongolddev/finsimples/internal/cli"
	"github.com/theirongolddev/finsimples/internal/ledger"
	"github.com/theirongolddev/finsimples/internal/model"

	"github.com/spf13/cobra"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Expenses by category and the fixed/variable split",
	Args:  cobra.NoArgs,
	RunE:  runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(_ *cobra.Command, _ []string) error {
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

	fmt.Println()
	fmt.Println(cli.RenderTitle("BREAKDOWN  " + cli.FormatMonth(s.ref)))
	fmt.Println()

	cats := ledger.ExpensesByCategory(month)
	if len(cats) == 0 {
		fmt.Println("  No expenses this month.")
	} else {
		peak := cats[0].Total
		rows := make([][]string, 0, len(cats))
		for _, c := range cats {
			rows = append(rows, []string{
				c.Category.Icon() + " " + c.Category.Label(),
				cli.FormatMoney(c.Total),
				cli.FormatPercent(c.Share),
				cli.RenderHorizontalBar(c.Total, peak, 20),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Expenses by category",
			Headers: []string{"Category", "Total", "Share", ""},
			Rows:    rows,
		}))
		fmt.Println()
	}

	fixed := ledger.FrequencyView(month, model.Recurring)
	variable := ledger.FrequencyView(month, model.Variable)
	income, expense := ledger.IncomeVsExpense(month)

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Fixed vs variable",
		Headers: []string{"", "Income", "Expenses", "Net"},
		Rows: [][]string{
			{"Fixed", cli.FormatMoney(fixed.Income), cli.FormatMoney(fixed.Expense), cli.FormatSigned(fixed.Net)},
			{"Variable", cli.FormatMoney(variable.Income), cli.FormatMoney(variable.Expense), cli.FormatSigned(variable.Net)},
			{"---"},
			{"Total", cli.FormatMoney(income), cli.FormatMoney(expense), cli.FormatSigned(income.Sub(expense))},
		},
	}))
	return nil
}
