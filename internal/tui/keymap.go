// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/pinpad/internal/i18n"
)

type keyMap struct {
	Clear key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Help, km.Quit}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Clear, km.Help, km.Quit}}
}

var _ help.KeyMap = (*keyMap)(nil)

func defaultKeyMap() keyMap {
	return keyMap{
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", i18n.T("keypad.help.clear")),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c", "q"),
			key.WithHelp("esc/q", i18n.T("app.quit")),
		),
	}
}
