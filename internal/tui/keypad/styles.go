// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

package keypad

import "github.com/charmbracelet/lipgloss"

var (
	cellStyle = lipgloss.NewStyle().
			Width(7).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("239")).
			Foreground(lipgloss.Color("231"))

	auxCellStyle = cellStyle.
			Foreground(lipgloss.Color("240"))

	cursorCellStyle = cellStyle.
			Bold(true).
			BorderForeground(lipgloss.Color("81")).
			Foreground(lipgloss.Color("81"))
)
