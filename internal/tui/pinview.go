// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui hosts the PIN entry widget in a bubbletea program: a display
// row, the keypad, a status line describing the last event and key help.
package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/pinpad/internal/i18n"
	"github.com/toeirei/pinpad/internal/logging"
	"github.com/toeirei/pinpad/internal/pin"
	"github.com/toeirei/pinpad/internal/tui/display"
	"github.com/toeirei/pinpad/internal/tui/keypad"
	"github.com/toeirei/pinpad/internal/tui/util"
)

// Options configure the widget.
type Options struct {
	// Config is used as given unless it is the zero value, which selects
	// pin.DefaultConfig. Start from pin.DefaultConfig when overriding single
	// fields; a literal leaves ClearOnComplete false.
	Config pin.Config
	Layout pin.Layout
	Glyphs display.Glyphs
	// QuitOnComplete ends the program on the first completed PIN.
	QuitOnComplete bool
	// OnEvent, if set, sees every controller event after the view handled it.
	OnEvent func(pin.Event)
}

// Result is what the program left behind when it quit.
type Result struct {
	// Digits is the completed PIN, nil unless Completed.
	Digits    []int
	Completed bool
}

type Model struct {
	controller *pin.Controller
	keypad     *keypad.Model
	display    *display.Model
	help       help.Model
	keys       keyMap
	helpKeys   help.KeyMap
	size       util.Size

	// events emitted by the controller during the current Update
	pending []pin.Event

	status      string
	statusStyle lipgloss.Style
	result      Result
	quitting    bool

	quitOnComplete bool
	onEvent        func(pin.Event)
}

// New wires a controller to a keypad and a display. A zero Config falls back
// to pin.DefaultConfig and a nil Layout to pin.StandardLayout.
func New(opts Options) (*Model, error) {
	if opts.Config == (pin.Config{}) {
		opts.Config = pin.DefaultConfig()
	}
	if opts.Layout == nil {
		opts.Layout = pin.StandardLayout()
	}

	pad, err := keypad.New(opts.Layout)
	if err != nil {
		return nil, err
	}
	m := &Model{
		keypad:         pad,
		display:        display.New(opts.Config.MaxDigits, opts.Glyphs),
		help:           help.New(),
		keys:           defaultKeyMap(),
		status:         i18n.T("status.ready"),
		statusStyle:    statusStyle,
		quitOnComplete: opts.QuitOnComplete,
		onEvent:        opts.OnEvent,
	}
	m.controller, err = pin.NewController(opts.Config, m.display, pin.ListenerFunc(m.queue))
	if err != nil {
		return nil, err
	}
	_, padKeys := m.keypad.Focus()
	m.helpKeys = util.MergeKeyMaps(padKeys, m.keys)
	return m, nil
}

func (m *Model) queue(e pin.Event) {
	m.pending = append(m.pending, e)
}

func (m *Model) Init() tea.Cmd {
	return m.keypad.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.size.Update(msg) {
		m.help.Width = m.size.Width
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Clear):
			m.controller.ClearInput()
			m.setStatus(i18n.T("status.cleared"), statusStyle)
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		return m, m.keypad.Update(msg)

	case keypad.KeyActivatedMsg:
		m.controller.OnKeyActivated(msg.Key)
		return m, m.drain()
	}

	return m, m.keypad.Update(msg)
}

// drain applies the events of the last activation in emission order. A
// backspace keeps the status line for that activation; the inputChanged that
// follows it only reaches the result and the host hook.
func (m *Model) drain() tea.Cmd {
	events := m.pending
	m.pending = nil

	var quit, removed bool
	for _, e := range events {
		switch e.Kind {
		case pin.InputChanged:
			if removed {
				break
			}
			m.setStatus(i18n.T("status.input_changed", len(e.Digits), m.controller.Config().MaxDigits), statusStyle)
		case pin.BackspacePressed:
			removed = true
			m.setStatus(i18n.T("status.backspace_pressed"), statusStyle)
		case pin.OptionPressed:
			m.setStatus(i18n.T("status.option_pressed"), optionStyle)
		case pin.InputCompleted:
			m.setStatus(i18n.T("status.input_completed"), completedStyle)
			m.result = Result{Digits: slices.Clone(e.Digits), Completed: true}
			quit = quit || m.quitOnComplete
		}
		logging.Debugf("tui: %s", e.Kind)
		if m.onEvent != nil {
			m.onEvent(e)
		}
	}
	if quit {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) setStatus(text string, style lipgloss.Style) {
	m.status = text
	m.statusStyle = style
}

// Controller exposes the controller, e.g. for a host that wants to clear or
// reconfigure the entry.
func (m *Model) Controller() *pin.Controller {
	return m.controller
}

// Reconfigure applies cfg to the controller; the display follows through the
// render the controller issues.
func (m *Model) Reconfigure(cfg pin.Config) error {
	return m.controller.Reconfigure(cfg)
}

// Result returns the outcome so far.
func (m *Model) Result() Result {
	return m.result
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(i18n.T("app.title")),
		m.display.View(),
		m.keypad.View(),
		m.statusStyle.Render(m.status),
	)
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		body,
		helpStyle.Render(m.help.View(m.helpKeys)),
	))
}

var _ tea.Model = (*Model)(nil)
