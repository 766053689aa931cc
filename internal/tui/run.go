// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the widget until the user quits or, with QuitOnComplete, enters
// a complete PIN. in and out default to the process terminal when nil.
func Run(ctx context.Context, opts Options, in io.Reader, out io.Writer) (Result, error) {
	m, err := New(opts)
	if err != nil {
		return Result{}, err
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if in != nil {
		progOpts = append(progOpts, tea.WithInput(in))
	}
	if out != nil {
		progOpts = append(progOpts, tea.WithOutput(out))
	}

	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return Result{}, fmt.Errorf("run keypad: %w", err)
	}
	if fm, ok := final.(*Model); ok {
		return fm.Result(), nil
	}
	return m.Result(), nil
}
