// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the pinpad command line using Cobra. Running without a
// subcommand opens the interactive keypad; the subcommands drive the same
// controller headlessly or manage the config file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/toeirei/pinpad/buildvars"
	"github.com/toeirei/pinpad/internal/config"
	"github.com/toeirei/pinpad/internal/i18n"
	"github.com/toeirei/pinpad/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	a := &app{}
	err := a.execute(ctx, a.command())
	stop()
	if err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

// app carries the resolved configuration from PersistentPreRunE to the
// command that runs.
type app struct {
	cfgFile  string
	cfg      config.Config
	closeLog func() error
}

// newRootCmd builds a fresh command tree; tests call it for isolation.
func newRootCmd() *cobra.Command {
	return (&app{}).command()
}

// execute runs cmd and releases what PersistentPreRunE opened. Cobra skips
// PersistentPostRunE when RunE fails, so the log file is closed here too.
func (a *app) execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if cerr := a.close(); err == nil {
		err = cerr
	}
	return err
}

// close is safe to call more than once.
func (a *app) close() error {
	if a.closeLog == nil {
		return nil
	}
	closeLog := a.closeLog
	a.closeLog = nil
	return closeLog()
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pinpad",
		Short: "pinpad is a numeric PIN entry keypad for the terminal.",
		Long: `pinpad shows a phone style keypad and a row of indicators and
collects a fixed length numeric PIN.

Running without a subcommand opens the interactive keypad. When stdin is not
a terminal, keys are read line by line instead (digits, "option", "bs").`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.enter(cmd, false)
			return err
		},
	}

	cmd.Version = buildvars.VersionOrDefault("dev")

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is pinpad.yaml in the user config dir, /etc/pinpad or .)")
	flags.Int("max-digits", 5, "PIN length")
	flags.Bool("clear-on-complete", true, "clear the entry right after a PIN is completed")
	flags.String("lang", "en", `language ("en", "de")`)
	flags.Bool("debug", false, "enable debug logging")
	flags.String("log-file", "", "write logs to this file instead of stderr")

	cmd.AddCommand(newPromptCmd(a))
	cmd.AddCommand(newReplayCmd(a))
	cmd.AddCommand(newDecodeCmd())
	cmd.AddCommand(newLanguagesCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func (a *app) load(cmd *cobra.Command) error {
	var file *string
	if a.cfgFile != "" {
		file = &a.cfgFile
	}
	cfg, err := config.Load(cmd, file)
	if err != nil {
		return fmt.Errorf("%s: %w", i18n.T("config.error_load"), err)
	}
	a.cfg = cfg

	i18n.Init(cfg.Language)
	logging.SetDebug(cfg.Debug)
	if _, ok := i18n.GetAvailableLocales()[cfg.Language]; !ok {
		logging.Warnf("language %q is not available, using English", cfg.Language)
	}
	if cfg.LogFile != "" {
		closeLog, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return err
		}
		a.closeLog = closeLog
	}
	logging.Debugf("config: max_digits=%d clear_on_complete=%v language=%s",
		cfg.Pin.MaxDigits, cfg.Pin.ClearOnComplete, cfg.Language)
	return nil
}
