package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finsimples/internal/cli"
	"github.com/theirongolddev/finsimples/internal/ledger"
	"github.com/theirongolddev/finsimples/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagDesc      string
	flagAmount    string
	flagDate      string
	flagType      string
	flagFrequency string
	flagCategory  string
)

var txCmd = &cobra.Command{
	Use:     "tx",
	Aliases: []string{"transaction"},
	Short:   "Manage income and expense entries",
}

var txAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an income or expense",
	Args:  cobra.NoArgs,
	RunE:  runTxAdd,
}

var txEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change an entry (id prefix accepted)",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxEdit,
}

var txRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete an entry (id prefix accepted)",
	Args:    cobra.ExactArgs(1),
	RunE:    runTxRm,
}

var txListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the month's entries, newest first",
	Args:    cobra.NoArgs,
	RunE:    runTxList,
}

func init() {
	for _, c := range []*cobra.Command{txAddCmd, txEditCmd} {
		c.Flags().StringVar(&flagDesc, "desc", "", "Description")
		c.Flags().StringVarP(&flagAmount, "amount", "a", "", "Amount, e.g. 1234.56 or 1.234,56")
		c.Flags().StringVar(&flagDate, "date", "", "Date as YYYY-MM-DD (default today)")
		c.Flags().StringVarP(&flagType, "type", "t", "", "income or expense")
		c.Flags().StringVarP(&flagFrequency, "frequency", "f", "", "recurring (fixed) or variable")
		c.Flags().StringVarP(&flagCategory, "category", "c", "", "Category name, e.g. food or Alimentação")
	}
	txListCmd.Flags().StringVarP(&flagType, "type", "t", "", "Only income or expense")
	txListCmd.Flags().StringVarP(&flagFrequency, "frequency", "f", "", "Only recurring or variable")

	txCmd.AddCommand(txAddCmd, txEditCmd, txRmCmd, txListCmd)
	rootCmd.AddCommand(txCmd)
}

// txFields builds the form for an entry; prefilled flags are skipped
// unless all is set.
func txFields(all bool) []huh.Field {
	var fields []huh.Field
	if all || flagDesc == "" {
		fields = append(fields, huh.NewInput().Title("Description").Value(&flagDesc).Validate(required("description")))
	}
	if all || flagAmount == "" {
		fields = append(fields, huh.NewInput().Title("Amount").Value(&flagAmount).Validate(validMoney(false)))
	}
	if all || flagType == "" {
		fields = append(fields, huh.NewSelect[string]().
			Title("Type").
			Options(huh.NewOption("Expense", string(model.Expense)), huh.NewOption("Income", string(model.Income))).
			Value(&flagType))
	}
	if all || flagFrequency == "" {
		fields = append(fields, huh.NewSelect[string]().
			Title("Frequency").
			Options(huh.NewOption("Variable", string(model.Variable)), huh.NewOption("Fixed (recurring)", string(model.Recurring))).
			Value(&flagFrequency))
	}
	if all || flagCategory == "" {
		fields = append(fields, huh.NewSelect[string]().
			Title("Category").
			Options(categoryOptions()...).
			Value(&flagCategory))
	}
	if all || flagDate == "" {
		fields = append(fields, huh.NewInput().Title("Date (YYYY-MM-DD)").Value(&flagDate).Validate(validDate(false)))
	}
	return fields
}

func draftFromFlags() (model.Transaction, error) {
	amount, err := model.ParseMoney(flagAmount)
	if err != nil {
		return model.Transaction{}, err
	}
	date, err := model.ParseDate(strings.TrimSpace(flagDate))
	if err != nil {
		return model.Transaction{}, err
	}
	typ, err := model.ParseTransactionType(flagType)
	if err != nil {
		return model.Transaction{}, err
	}
	freq, err := model.ParseFrequency(flagFrequency)
	if err != nil {
		return model.Transaction{}, err
	}
	cat, err := model.ParseCategory(flagCategory)
	if err != nil {
		return model.Transaction{}, err
	}
	return model.Transaction{
		Description: strings.TrimSpace(flagDesc),
		Amount:      amount,
		Date:        date,
		Type:        typ,
		Frequency:   freq,
		Category:    cat,
	}, nil
}

func runTxAdd(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if _, _, err := s.store.Active(); err != nil {
		return err
	}

	// The date defaults to today; it is only asked when the form is shown
	// anyway.
	promptDate := flagDate == ""
	if promptDate {
		flagDate = s.today.String()
	}
	fields := txFields(false)
	if promptDate && len(fields) > 0 {
		fields = append(fields, huh.NewInput().Title("Date (YYYY-MM-DD)").Value(&flagDate).Validate(validDate(false)))
	}
	if err := promptMissing(fields...); err != nil {
		return err
	}

	draft, err := draftFromFlags()
	if err != nil {
		return err
	}
	id, err := s.store.AddTransaction(draft)
	if err != nil {
		return err
	}

	fmt.Printf("\n  Added %s %s (%s)  %s\n",
		draft.Category.Icon(), draft.Description, signedAmount(draft), cli.Muted(cli.ShortID(id)))
	return nil
}

func runTxEdit(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	_, rec, err := s.store.Active()
	if err != nil {
		return err
	}
	existing, ok := ledger.FindByPrefix(rec.Transactions, args[0])
	if !ok {
		return fmt.Errorf("no single entry matches %q", args[0])
	}

	interactive := !anyChanged(cmd, "desc", "amount", "date", "type", "frequency", "category")
	fillTxFlags(existing)
	if interactive {
		if err := promptMissing(txFields(true)...); err != nil {
			return err
		}
	}

	draft, err := draftFromFlags()
	if err != nil {
		return err
	}
	if err := s.store.EditTransaction(existing.ID, draft); err != nil {
		return err
	}

	fmt.Printf("\n  Updated %s %s (%s)\n", draft.Category.Icon(), draft.Description, signedAmount(draft))
	return nil
}

// fillTxFlags copies t into every flag the user left blank.
func fillTxFlags(t model.Transaction) {
	if flagDesc == "" {
		flagDesc = t.Description
	}
	if flagAmount == "" {
		flagAmount = model.MoneyInput(t.Amount)
	}
	if flagDate == "" {
		flagDate = t.Date.String()
	}
	if flagType == "" {
		flagType = string(t.Type)
	}
	if flagFrequency == "" {
		flagFrequency = string(t.Frequency)
	}
	if flagCategory == "" {
		flagCategory = t.Category.Key()
	}
}

func runTxRm(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	_, rec, err := s.store.Active()
	if err != nil {
		return err
	}
	t, ok := ledger.FindByPrefix(rec.Transactions, args[0])
	if !ok {
		return fmt.Errorf("no single entry matches %q", args[0])
	}
	if err := s.store.DeleteTransaction(t.ID); err != nil {
		return err
	}

	fmt.Printf("\n  Deleted %s (%s)\n", t.Description, signedAmount(t))
	return nil
}

func runTxList(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	_, rec, err := s.store.Active()
	if err != nil {
		return err
	}

	txs := ledger.FilterByMonth(rec.Transactions, s.ref)
	if flagType != "" {
		typ, err := model.ParseTransactionType(flagType)
		if err != nil {
			return err
		}
		txs = ledger.ByType(txs, typ)
	}
	if flagFrequency != "" {
		freq, err := model.ParseFrequency(flagFrequency)
		if err != nil {
			return err
		}
		txs = ledger.ByFrequency(txs, freq)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("ENTRIES  " + cli.FormatMonth(s.ref)))
	fmt.Println()

	if len(txs) == 0 {
		fmt.Println("  No entries for this month.")
		return nil
	}

	rows := make([][]string, 0, len(txs)+2)
	for _, t := range txs {
		rows = append(rows, []string{
			cli.FormatDate(t.Date),
			t.Description,
			t.Category.Icon() + " " + t.Category.Label(),
			frequencyLabel(t.Frequency),
			signedAmount(t),
			cli.ShortID(t.ID),
		})
	}
	income, expense := ledger.IncomeVsExpense(txs)
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", "", "", "", cli.FormatSigned(income.Sub(expense)), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers:  []string{"Date", "Description", "Category", "Frequency", "Amount", "ID"},
		Rows:     rows,
		LeftCols: 4,
	}))
	return nil
}

func signedAmount(t model.Transaction) string {
	if t.IsIncome() {
		return cli.Income("+" + cli.FormatMoney(t.Amount))
	}
	return cli.Expense("-" + cli.FormatMoney(t.Amount))
}

func frequencyLabel(f model.Frequency) string {
	if f == model.Recurring {
		return "Fixed"
	}
	return "Variable"
}
