package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/feierabend/internal/clock"
	"github.com/feierabend/internal/config"
	"github.com/feierabend/internal/report"
	"github.com/feierabend/internal/visualization"
	"github.com/feierabend/internal/work"
	"github.com/spf13/cobra"
)

// budgetOptions are the raw flag values of the root command.
type budgetOptions struct {
	start  string
	daily  string
	weekly string
	breaks []string
	now    string
	output string
	color  string
	file   string
}

func (a *app) runBudget(cmd *cobra.Command, o *budgetOptions) error {
	if strings.TrimSpace(o.start) == "" {
		return work.ErrMissingStart
	}

	rules, err := a.cfg.Rules()
	if err != nil {
		return err
	}

	daily, weekly := o.daily, o.weekly
	if !cmd.Flags().Changed("daily") && !cmd.Flags().Changed("weekly") {
		daily, weekly = a.cfg.DefaultTarget()
		a.logger.Debug("no target flag, using config", "daily", daily, "weekly", weekly)
	}
	target, err := rules.ParseTarget(daily, weekly)
	if err != nil {
		return err
	}
	a.logger.Debug("target parsed", "daily", target.String())

	// Read the clock once; everything below works off this instant.
	now := a.now().Truncate(time.Second)
	if o.now != "" {
		if now, err = clock.ParseInstant(o.now, now); err != nil {
			return fmt.Errorf("now: %w", err)
		}
	}
	startOfDay, err := clock.ParseTimeOfDay(o.start)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	start := startOfDay.On(now)

	breaks, err := work.ParseBreaks(o.breaks)
	if err != nil {
		return err
	}
	for i, d := range breaks {
		a.logger.Debug("break parsed", "n", i+1, "range", o.breaks[i], "length", report.HHMM(d))
	}

	b, err := rules.Calculate(work.Session{
		Start:  start,
		Now:    now,
		Target: target.Duration(),
		Breaks: breaks,
	})
	if err != nil {
		return err
	}
	if b.Inferred {
		a.logger.Debug("no break recorded, assuming one", "length", report.HHMM(b.Breaks[len(b.Breaks)-1]))
	}
	if b.NotStarted() {
		a.logger.Warn("now is before the start of the workday", "start", report.Clock(start), "now", report.Clock(now))
	}

	format, err := report.ParseFormat(firstNonEmpty(o.output, a.cfg.Output))
	if err != nil {
		return err
	}
	if o.file != "" {
		var buf bytes.Buffer
		if err := write(&buf, b, format, false); err != nil {
			return err
		}
		a.logger.Debug("writing report", "path", o.file, "format", format)
		return os.WriteFile(o.file, buf.Bytes(), 0644)
	}

	out := cmd.OutOrStdout()
	color, err := a.useColor(firstNonEmpty(o.color, string(a.cfg.Color)), out)
	if err != nil {
		return err
	}
	return write(out, b, format, color)
}

func write(w io.Writer, b *work.Budget, format report.Format, color bool) error {
	switch format {
	case report.FormatSVG:
		_, err := fmt.Fprintln(w, visualization.New().GenerateDaySVG(b))
		return err
	case report.FormatHTML:
		_, err := fmt.Fprintln(w, visualization.New().GenerateHTMLReport(b))
		return err
	default:
		return report.NewPrinter(w, color).Print(b, format)
	}
}

// useColor resolves a color mode against the output. NO_COLOR disables auto.
func (a *app) useColor(mode string, w io.Writer) (bool, error) {
	switch config.ColorMode(strings.ToLower(mode)) {
	case config.ColorAlways:
		return true, nil
	case config.ColorNever:
		return false, nil
	case config.ColorAuto, "":
		return a.isTerminal(w) && os.Getenv("NO_COLOR") == "", nil
	}
	return false, fmt.Errorf("unknown color mode: %s (use auto, always or never)", mode)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		Long:  `Display the configuration file in use and the work rules derived from it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := a.cfg.Rules()
			if err != nil {
				return err
			}
			weekly, err := clock.Parse(a.cfg.WeeklyTarget)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config: %s\n", a.cfgPath)
			fmt.Fprintf(out, "Targets: Weekly: %s | Daily: %s (%d days)",
				weekly, rules.DailyFromWeekly(weekly), rules.WorkDaysPerWeek)
			if a.cfg.DailyTarget != "" {
				fmt.Fprintf(out, " | Daily override: %s", a.cfg.DailyTarget)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Rules: Break: %s (%s after %s) | Limits: %s / %s\n",
				report.HHMM(rules.BreakSmall), report.HHMM(rules.BreakLarge), report.HoursLabel(rules.SoftLimit),
				report.HoursLabel(rules.SoftLimit), report.HoursLabel(rules.HardLimit))
			fmt.Fprintf(out, "Output: %s | Color: %s\n", a.cfg.Output, a.cfg.Color)
			return nil
		},
	}
	configCmd.AddCommand(newConfigInitCmd(a))
	return configCmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default rules",
		Args:  cobra.NoArgs,
		// Skips config loading so a broken file can still be replaced.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.setupLogger(cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if path == "" {
				path = config.Path()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			a.logger.Debug("config written", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for feierabend.

To load completions:

Bash:
  $ source <(feierabend completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ feierabend completion bash > /etc/bash_completion.d/feierabend
  # macOS:
  $ feierabend completion bash > /usr/local/etc/bash_completion.d/feierabend

Zsh:
  $ feierabend completion zsh > "${fpath[1]}/_feierabend"

Fish:
  $ feierabend completion fish > ~/.config/fish/completions/feierabend.fish

PowerShell:
  PS> feierabend completion powershell > feierabend.ps1
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletion(out)
			}
			return nil
		},
	}
}
