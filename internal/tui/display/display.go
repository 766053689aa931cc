// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

// Package display shows how many digits of a PIN have been entered as a row
// of filled and empty indicators. The digits themselves are never shown.
package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/pinpad/internal/pin"
)

// Glyphs are the indicator strings.
type Glyphs struct {
	Filled string
	Empty  string
}

func DefaultGlyphs() Glyphs {
	return Glyphs{Filled: "●", Empty: "○"}
}

type Model struct {
	glyphs   Glyphs
	filled   int
	capacity int
}

// New returns a display with capacity empty indicators.
func New(capacity int, glyphs Glyphs) *Model {
	d := DefaultGlyphs()
	if glyphs.Filled == "" {
		glyphs.Filled = d.Filled
	}
	if glyphs.Empty == "" {
		glyphs.Empty = d.Empty
	}
	return &Model{glyphs: glyphs, capacity: capacity}
}

// Render implements pin.Display.
func (m *Model) Render(s pin.Snapshot) {
	m.filled = s.Filled()
	m.capacity = s.Capacity
}

// Filled returns the number of filled indicators.
func (m *Model) Filled() int {
	return m.filled
}

func (m *Model) Capacity() int {
	return m.capacity
}

func (m *Model) View() string {
	cells := make([]string, 0, max(m.capacity, m.filled))
	for range m.filled {
		cells = append(cells, filledStyle.Render(m.glyphs.Filled))
	}
	for range m.capacity - m.filled {
		cells = append(cells, emptyStyle.Render(m.glyphs.Empty))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(cells, " "))
}

// Text is View without styling, used by line oriented front ends.
func (m *Model) Text() string {
	return strings.Repeat(m.glyphs.Filled, m.filled) + strings.Repeat(m.glyphs.Empty, max(m.capacity-m.filled, 0))
}

var _ pin.Display = (*Model)(nil)

var (
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
