package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finsimples/internal/cli"
	"github.com/theirongolddev/finsimples/internal/goals"
	"github.com/theirongolddev/finsimples/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagGoalName string
	flagTarget   string
	flagDeadline string
	flagStart    string
	flagYes      bool
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage savings goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a savings goal",
	Args:  cobra.NoArgs,
	RunE:  runGoalAdd,
}

var goalDepositCmd = &cobra.Command{
	Use:   "deposit <id> [amount]",
	Short: "Put money towards a goal",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runGoalDeposit,
}

var goalRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a goal",
	Args:    cobra.ExactArgs(1),
	RunE:    runGoalRm,
}

var goalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show goals with progress, time left and projected completion",
	Args:    cobra.NoArgs,
	RunE:    runGoalList,
}

func init() {
	goalAddCmd.Flags().StringVar(&flagGoalName, "name", "", "Goal name")
	goalAddCmd.Flags().StringVar(&flagTarget, "target", "", "Target amount")
	goalAddCmd.Flags().StringVar(&flagDeadline, "deadline", "", "Deadline as YYYY-MM-DD (optional)")
	goalAddCmd.Flags().StringVar(&flagStart, "start", "", "Start date as YYYY-MM-DD (default today)")
	goalRmCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")

	goalCmd.AddCommand(goalAddCmd, goalDepositCmd, goalRmCmd, goalListCmd)
	rootCmd.AddCommand(goalCmd)
}

func optionalDate(s string) (*model.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func runGoalAdd(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if _, _, err := s.store.Active(); err != nil {
		return err
	}

	var fields []huh.Field
	fields = inputIfEmpty(fields, &flagGoalName, "Goal name", required("name"))
	fields = inputIfEmpty(fields, &flagTarget, "Target amount", validMoney(false))
	if len(fields) > 0 && !cmd.Flags().Changed("deadline") {
		fields = append(fields, huh.NewInput().
			Title("Deadline (YYYY-MM-DD, optional)").
			Value(&flagDeadline).
			Validate(validDate(true)))
	}
	if err := promptMissing(fields...); err != nil {
		return err
	}
	if flagStart == "" {
		flagStart = s.today.String()
	}

	target, err := model.ParseMoney(flagTarget)
	if err != nil {
		return err
	}
	deadline, err := optionalDate(flagDeadline)
	if err != nil {
		return err
	}
	start, err := optionalDate(flagStart)
	if err != nil {
		return err
	}

	id, err := s.store.AddGoal(model.SavingsGoal{
		Name:         strings.TrimSpace(flagGoalName),
		TargetAmount: target,
		Deadline:     deadline,
		StartDate:    start,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n  Created goal %s: %s  %s\n",
		flagGoalName, cli.FormatMoney(target), cli.Muted(cli.ShortID(id)))
	return nil
}

func runGoalDeposit(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	_, rec, err := s.store.Active()
	if err != nil {
		return err
	}
	g, ok := goals.Find(rec.Goals, args[0])
	if !ok {
		return fmt.Errorf("no single goal matches %q", args[0])
	}

	raw := ""
	if len(args) == 2 {
		raw = args[1]
	}
	if raw == "" {
		err := huh.NewInput().
			Title(fmt.Sprintf("How much to add to %s?", g.Name)).
			Value(&raw).
			Validate(validMoney(false)).
			Run()
		if err != nil {
			return err
		}
	}
	amount, err := model.ParseMoney(raw)
	if err != nil {
		return err
	}
	if err := s.store.Deposit(g.ID, amount); err != nil {
		return err
	}

	g.CurrentAmount = g.CurrentAmount.Add(amount)
	fmt.Printf("\n  %s: %s of %s\n", g.Name, cli.Income(cli.FormatMoney(g.CurrentAmount)), cli.FormatMoney(g.TargetAmount))
	fmt.Printf("  %s\n", cli.RenderProgressBar(goals.Progress(g), 30))
	return nil
}

func runGoalRm(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	_, rec, err := s.store.Active()
	if err != nil {
		return err
	}
	g, ok := goals.Find(rec.Goals, args[0])
	if !ok {
		return fmt.Errorf("no single goal matches %q", args[0])
	}

	if !flagYes {
		ok, err := confirm(fmt.Sprintf("Delete goal %q? This cannot be undone.", g.Name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("\n  Kept.")
			return nil
		}
	}

	if err := s.store.DeleteGoal(g.ID); err != nil {
		return err
	}
	fmt.Printf("\n  Deleted goal %s.\n", g.Name)
	return nil
}

func runGoalList(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	_, rec, err := s.store.Active()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVINGS GOALS"))
	fmt.Println()

	if len(rec.Goals) == 0 {
		fmt.Println("  No goals yet. Create one with `finsimples goal add`.")
		return nil
	}

	for _, g := range rec.Goals {
		fmt.Printf("  %s  %s\n", cli.Header(g.Name), cli.Muted(cli.ShortID(g.ID)))
		fmt.Printf("    %s of %s\n", cli.Income(cli.FormatMoney(g.CurrentAmount)), cli.FormatMoney(g.TargetAmount))
		fmt.Printf("    %s\n", cli.RenderProgressBar(goals.Progress(g), 30))
		if r, ok := goals.TimeRemaining(g.Deadline, s.today); ok {
			line := fmt.Sprintf("Deadline %s: %s", cli.FormatDate(*g.Deadline), r)
			if r.Kind == goals.DeadlinePassed {
				line = cli.Warn(line)
			}
			fmt.Printf("    %s\n", line)
		}
		if p, ok := goals.Project(g, s.today); ok {
			fmt.Printf("    Projected: %s\n", p.Format(cli.DateLayout))
		}
		fmt.Println()
	}
	return nil
}
