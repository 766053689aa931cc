// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

package keypad

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/pinpad/internal/i18n"
)

type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Press     key.Binding
	Digits    key.Binding
	Backspace key.Binding
	Option    key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Digits, km.Backspace, km.Option, km.Press}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right, km.Press},
		{km.Digits, km.Backspace, km.Option},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// DefaultKeyMap builds the bindings with help text in the active language.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", i18n.T("keypad.help.move")),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", i18n.T("keypad.help.move")),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", i18n.T("keypad.help.move")),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", i18n.T("keypad.help.move")),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", i18n.T("keypad.help.press")),
		),
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", i18n.T("keypad.help.digits")),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("⌫", i18n.T("keypad.help.backspace")),
		),
		Option: key.NewBinding(
			key.WithKeys("o", "*"),
			key.WithHelp("o", i18n.T("keypad.help.option")),
		),
	}
}
