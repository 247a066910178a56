package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/finsimples/internal/account"
	"github.com/theirongolddev/finsimples/internal/cli"
	"github.com/theirongolddev/finsimples/internal/config"
	"github.com/theirongolddev/finsimples/internal/model"
	"github.com/theirongolddev/finsimples/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagMonth   string
	flagDataDir string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "finsimples",
	Short:         "Personal budgeting in the terminal",
	Long:          "Track income, expenses and savings goals, and see how much you can safely spend each day.",
	RunE:          runSummary,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %s\n", err)
		if errors.Is(err, account.ErrNotLoggedIn) || errors.Is(err, account.ErrSessionInvalid) {
			fmt.Fprintln(os.Stderr, "  Run `finsimples login` or `finsimples register` first.")
		}
		if errors.Is(err, account.ErrUnreadable) {
			fmt.Fprintln(os.Stderr, "  The saved record was left untouched. Run `finsimples logout` to use another account.")
		}
		if errors.Is(err, account.ErrOnboarded) {
			fmt.Fprintln(os.Stderr, "  Use `finsimples settings` to change your profile.")
		}
		if errors.Is(err, account.ErrNeedsOnboarding) {
			fmt.Fprintln(os.Stderr, "  Run `finsimples onboard` to finish setting up your profile.")
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagMonth, "month", "", "Month to show, as YYYY-MM (default: current month)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
}

// session bundles what every command needs: config, logger and the
// account store over an open database.
type session struct {
	cfg    config.Config
	log    *slog.Logger
	kv     *store.KV
	store  *account.Store
	today  model.Date
	ref    model.Date
	dbPath string
}

func (s *session) Close() {
	if err := s.kv.Close(); err != nil {
		s.log.Warn("closing database", "error", err)
	}
}

// openSession is the shared startup path used by all commands.
func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cli.Configure(cfg.Display.Currency, cfg.Display.DateFormat)

	logger := newLogger(cfg.Log.Level)

	dataDir := cfg.DataDir()
	if flagDataDir != "" {
		dataDir = flagDataDir
	}
	dbPath := filepath.Join(dataDir, store.FileName)

	kv, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	today := model.Today()
	ref, err := resolveMonth(flagMonth, today)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}

	logger.Debug("session opened", "db", dbPath, "month", ref.MonthKey())

	return &session{
		cfg:    cfg,
		log:    logger,
		kv:     kv,
		store:  account.Open(kv, logger),
		today:  today,
		ref:    ref,
		dbPath: dbPath,
	}, nil
}

func resolveMonth(s string, today model.Date) (model.Date, error) {
	if s == "" {
		return today, nil
	}
	m, err := model.ParseMonth(s)
	if err != nil {
		return model.Date{}, err
	}
	// Keep today's day when the month is the current one so the daily
	// figures stay meaningful.
	if m.SameMonth(today) {
		return today, nil
	}
	return m, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	if flagVerbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
