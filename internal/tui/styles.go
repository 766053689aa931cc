// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorSpecial   = lipgloss.Color("208") // An orange for special attention
	colorSuccess   = lipgloss.Color("40")  // A nice green
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(0, 2)

	statusStyle    = lipgloss.NewStyle().Foreground(colorSubtle).Padding(1, 0, 0, 0)
	completedStyle = statusStyle.Foreground(colorSuccess).Bold(true)
	optionStyle    = statusStyle.Foreground(colorSpecial)

	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle).Padding(1, 0, 0, 0)
)
