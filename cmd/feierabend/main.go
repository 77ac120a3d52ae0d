package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/feierabend/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// app holds what the root command and its subcommands share.
type app struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	configPath string
	verbose    bool

	// now reads the wall clock. Replaced in tests.
	now func() time.Time
	// isTerminal decides Color: auto.
	isTerminal func(w io.Writer) bool
}

func newApp() *app {
	return &app{
		now:        time.Now,
		isTerminal: isTerminal,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newRootCmd(a *app) *cobra.Command {
	opts := &budgetOptions{}

	rootCmd := &cobra.Command{
		Use:   "feierabend -s HH:MM [-d HH:MM | -w HH:MM] [-b HH:MM-HH:MM]...",
		Short: "Show how much of today's working time is left",
		Long: `Feierabend tells you how long you have worked today, how much is left of
your daily target and when you reach the target, the 9 hour and the 10 hour
mark. Without recorded breaks a statutory break of 30 or 45 minutes is assumed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.setupLogger(cmd.ErrOrStderr())
			return a.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBudget(cmd, opts)
		},
	}

	f := rootCmd.Flags()
	f.StringVarP(&opts.start, "start", "s", "", "start of the workday (HH:MM)")
	f.StringVarP(&opts.daily, "daily", "d", "", "daily target (HH:MM)")
	f.StringVarP(&opts.weekly, "weekly", "w", "", "weekly target, split over the work days (HH:MM)")
	f.StringArrayVarP(&opts.breaks, "break", "b", nil, "break taken (HH:MM-HH:MM), repeatable")
	f.StringVarP(&opts.now, "now", "n", "", "compute as of this time instead of the clock (HH:MM[:SS])")
	f.StringVarP(&opts.output, "output", "o", "", "output format: text, table, json, svg or html")
	f.StringVar(&opts.color, "color", "", "colored output: auto, always or never")
	f.StringVarP(&opts.file, "file", "f", "", "write the report to this file instead of stdout")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $FEIERABEND_CONFIG or ~/.feierabend.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug details to stderr")

	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newCompletionCmd())
	return rootCmd
}

func (a *app) setupLogger(w io.Writer) {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (a *app) loadConfig() error {
	a.cfgPath = a.configPath
	if a.cfgPath == "" {
		a.cfgPath = config.Path()
	}
	cfg, err := config.LoadFrom(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Debug("config loaded", "path", a.cfgPath)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
