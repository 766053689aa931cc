// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/toeirei/pinpad/internal/config"
	"github.com/toeirei/pinpad/internal/i18n"
	"github.com/toeirei/pinpad/internal/logging"
	"github.com/toeirei/pinpad/internal/pin"
	"github.com/toeirei/pinpad/internal/tui"
	"github.com/toeirei/pinpad/internal/tui/display"
	"golang.org/x/term"
)

// cancelledError is returned by prompt when the entry ends without a PIN.
// Its message follows the configured language.
type cancelledError struct{}

func (cancelledError) Error() string {
	return i18n.T("cli.cancelled")
}

var errCancelled error = cancelledError{}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *app) options(quitOnComplete bool) (tui.Options, error) {
	layout, err := a.cfg.Layout()
	if err != nil {
		return tui.Options{}, err
	}
	return tui.Options{
		Config: a.cfg.PinConfig(),
		Layout: layout,
		Glyphs: display.Glyphs{
			Filled: a.cfg.Display.Filled,
			Empty:  a.cfg.Display.Empty,
		},
		QuitOnComplete: quitOnComplete,
	}, nil
}

// enter collects input with the keypad when stdin is a terminal and from
// line oriented tokens otherwise. The TUI is drawn on ui.
func (a *app) enter(cmd *cobra.Command, prompt bool) (tui.Result, error) {
	in := cmd.InOrStdin()
	if isTerminal(in) {
		opts, err := a.options(prompt)
		if err != nil {
			return tui.Result{}, err
		}
		var ui io.Writer
		if prompt {
			// keep stdout clean for the PIN
			ui = cmd.ErrOrStderr()
		}
		return tui.Run(cmd.Context(), opts, nil, ui)
	}

	logging.Infof("%s", i18n.T("cli.line_mode"))
	s, err := newSession(a.cfg, cmd.OutOrStdout(), !prompt)
	if err != nil {
		return tui.Result{}, err
	}
	if err := s.run(in, prompt); err != nil {
		return tui.Result{}, err
	}
	return s.result, nil
}

func newPromptCmd(a *app) *cobra.Command {
	var toClipboard bool
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Ask for one PIN and print it",
		Long: `Shows the keypad until a PIN of the configured length is entered and
prints it to stdout. The keypad itself is drawn on stderr so the output can be
captured. With --clipboard the PIN is copied to the clipboard instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.enter(cmd, true)
			if err != nil {
				return err
			}
			if !res.Completed {
				return errCancelled
			}
			value := digitsString(res.Digits)
			if toClipboard {
				if err := clipboard.WriteAll(value); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.copied"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "copy the PIN to the clipboard instead of printing it")
	return cmd
}

func newReplayCmd(a *app) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "replay <key>...",
		Short: "Feed keys through the controller and print renders and events",
		Long: `Replays key presses without a terminal UI. Keys are digits, "option"
(o, opt), "backspace" (bs, del) or "#<code>" for a raw key code. With --raw
every argument is a raw key code such as 999 or -1.`,
		Example: `  pinpad replay --max-digits 4 1 2 3 bs 4 5
  pinpad replay --raw -- 1 2 999 -1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(a.cfg, cmd.OutOrStdout(), true)
			if err != nil {
				return err
			}
			s.raw = raw
			for _, token := range args {
				s.feed(token)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "treat arguments as raw integer key codes")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <code>...",
		Short: "Show which key raw key codes decode to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				code, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid key code %q: %w", arg, err)
				}
				k := pin.Decode(code)
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.decode_row", code, k, k.Category()))
			}
			return nil
		},
	}
}

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages accepted by --lang",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			locales := i18n.GetAvailableLocales()
			for _, tag := range slices.Sorted(maps.Keys(locales)) {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.language_row", tag, locales[tag]))
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the pinpad config file",
	}

	var system, force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath(system)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			c := config.Default()
			written, err := config.WriteConfigFile(&c, system)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.config_written", written))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "write the system wide config instead of the user one")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print where the user and system config files are looked up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, system := range []bool{false, true} {
				path, err := config.GetConfigPath(system)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}

func digitsString(digits []int) string {
	var b strings.Builder
	for _, d := range digits {
		b.WriteString(strconv.Itoa(d))
	}
	return b.String()
}
