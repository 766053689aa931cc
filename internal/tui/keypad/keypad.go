// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keypad renders a pin.Layout as a grid of buttons and reports which
// key the user activated. It holds no PIN state.
package keypad

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/pinpad/internal/i18n"
	"github.com/toeirei/pinpad/internal/pin"
	"github.com/toeirei/pinpad/internal/tui/util"
)

// KeyActivatedMsg is sent once per activation of a keypad button.
type KeyActivatedMsg struct {
	Key pin.Key
}

type Model struct {
	layout  pin.Layout
	row     int
	col     int
	focused bool
	keys    KeyMap
}

// New returns a keypad for layout with the cursor on the first cell.
func New(layout pin.Layout) (*Model, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &Model{
		layout: layout,
		keys:   DefaultKeyMap(),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.focused {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.move(-1, 0)
	case key.Matches(keyMsg, m.keys.Down):
		m.move(1, 0)
	case key.Matches(keyMsg, m.keys.Left):
		m.move(0, -1)
	case key.Matches(keyMsg, m.keys.Right):
		m.move(0, 1)
	case key.Matches(keyMsg, m.keys.Press):
		return m.activate(m.layout[m.row][m.col])
	case key.Matches(keyMsg, m.keys.Digits):
		k, err := pin.ParseKey(keyMsg.String())
		if err != nil {
			return nil
		}
		return m.press(k)
	case key.Matches(keyMsg, m.keys.Backspace):
		return m.press(pin.Backspace)
	case key.Matches(keyMsg, m.keys.Option):
		return m.press(pin.Option)
	}
	return nil
}

func (m *Model) move(dRow, dCol int) {
	m.row = util.Clamp(0, m.row+dRow, len(m.layout)-1)
	m.col = util.Clamp(0, m.col+dCol, m.layout.Columns()-1)
}

// press moves the cursor onto k and activates it. Keys missing from the
// layout are not activated.
func (m *Model) press(k pin.Key) tea.Cmd {
	for r, row := range m.layout {
		for c, cell := range row {
			if cell == k {
				m.row, m.col = r, c
				return m.activate(k)
			}
		}
	}
	return nil
}

func (m *Model) activate(k pin.Key) tea.Cmd {
	if k == pin.Empty {
		return nil
	}
	return func() tea.Msg { return KeyActivatedMsg{Key: k} }
}

// Cursor returns the key under the cursor.
func (m *Model) Cursor() pin.Key {
	return m.layout[m.row][m.col]
}

func (m *Model) KeyMap() KeyMap {
	return m.keys
}

func (m Model) View() string {
	rows := make([]string, len(m.layout))
	for r, row := range m.layout {
		cells := make([]string, len(row))
		for c, k := range row {
			style := cellStyle
			switch {
			case m.focused && r == m.row && c == m.col:
				style = cursorCellStyle
			case k.Category() == pin.CategoryOption || k.Category() == pin.CategoryBackspace:
				style = auxCellStyle
			}
			cells[c] = style.Render(Label(k))
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// Label is the text shown on the button for k.
func Label(k pin.Key) string {
	switch k.Category() {
	case pin.CategoryNumber:
		return k.String()
	case pin.CategoryOption:
		return i18n.T("keypad.option")
	case pin.CategoryBackspace:
		return i18n.T("keypad.backspace")
	default:
		return ""
	}
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, m.keys
}

func (m *Model) Blur() {
	m.focused = false
}

// *Model implements util.Component
var _ util.Component = (*Model)(nil)
