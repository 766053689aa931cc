// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/pinpad/internal/i18n"
	"github.com/toeirei/pinpad/internal/pin"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send delivers msg and follows keypad activations the way the bubbletea
// runtime would. It returns the last command that was not an activation.
func send(t *testing.T, m *Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	for {
		_, cmd := m.Update(msg)
		if cmd == nil {
			return nil
		}
		next := cmd()
		if _, ok := next.(tea.QuitMsg); ok {
			return cmd
		}
		msg = next
	}
}

func typeDigits(t *testing.T, m *Model, s string) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, r := range s {
		cmd = send(t, m, runes(string(r)))
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNew_Defaults(t *testing.T) {
	m, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.Controller().Config() != pin.DefaultConfig() {
		t.Fatalf("unexpected config %+v", m.Controller().Config())
	}
	if m.display.Capacity() != pin.DefaultMaxDigits {
		t.Fatalf("display capacity %d", m.display.Capacity())
	}
}

func TestNew_RejectsInvalidOptions(t *testing.T) {
	if _, err := New(Options{Config: pin.Config{MaxDigits: -1}}); !errors.Is(err, pin.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
	if _, err := New(Options{Layout: pin.Layout{{}}}); !errors.Is(err, pin.ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout, got %v", err)
	}
}

func TestTypingUpdatesDisplayAndStatus(t *testing.T) {
	i18n.Init("en")
	m, err := New(Options{Config: pin.Config{MaxDigits: 4, ClearOnComplete: true}})
	if err != nil {
		t.Fatal(err)
	}
	typeDigits(t, m, "12")
	if m.display.Filled() != 2 {
		t.Fatalf("display shows %d filled", m.display.Filled())
	}
	if m.status != "2 of 4 digits" {
		t.Fatalf("status %q", m.status)
	}

	send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.display.Filled() != 1 || m.status != i18n.T("status.backspace_pressed") {
		t.Fatalf("after backspace: filled=%d status=%q", m.display.Filled(), m.status)
	}

	typeDigits(t, m, "5")
	if m.status != "2 of 4 digits" {
		t.Fatalf("status after typing again %q", m.status)
	}
}

func TestBackspaceStillReportsInputChanged(t *testing.T) {
	var got []string
	m, err := New(Options{OnEvent: func(e pin.Event) { got = append(got, e.String()) }})
	if err != nil {
		t.Fatal(err)
	}
	typeDigits(t, m, "78")
	got = nil
	send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if want := []string{"backspacePressed", "inputChanged[7]"}; !slices.Equal(got, want) {
		t.Fatalf("events = %q, want %q", got, want)
	}
}

func TestConfigOverridesStartFromDefault(t *testing.T) {
	cfg := pin.DefaultConfig()
	cfg.MaxDigits = 2
	m, err := New(Options{Config: cfg})
	if err != nil {
		t.Fatal(err)
	}
	typeDigits(t, m, "12")
	if m.Controller().Len() != 0 {
		t.Fatalf("auto-clear lost: buffer %v", m.Controller().Digits())
	}

	// a literal Config is taken as given
	m, err = New(Options{Config: pin.Config{MaxDigits: 2}})
	if err != nil {
		t.Fatal(err)
	}
	typeDigits(t, m, "12")
	if got := m.Controller().Digits(); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("buffer %v, want [1 2]", got)
	}
}

func TestEventsReachHostInOrder(t *testing.T) {
	var got []string
	m, err := New(Options{
		Config:  pin.Config{MaxDigits: 2, ClearOnComplete: true},
		OnEvent: func(e pin.Event) { got = append(got, e.String()) },
	})
	if err != nil {
		t.Fatal(err)
	}
	typeDigits(t, m, "3")
	send(t, m, runes("o"))
	send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	typeDigits(t, m, "45")

	want := []string{
		"inputChanged[3]", "optionPressed",
		"backspacePressed", "inputChanged[]",
		"inputChanged[4]", "inputCompleted[4,5]",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("events = %q\nwant     %q", got, want)
	}
	if m.display.Filled() != 0 {
		t.Fatalf("auto-clear not reflected on display")
	}
	if r := m.Result(); !r.Completed || !slices.Equal(r.Digits, []int{4, 5}) {
		t.Fatalf("result %+v", r)
	}
}

func TestQuitOnComplete(t *testing.T) {
	m, err := New(Options{Config: pin.Config{MaxDigits: 3}, QuitOnComplete: true})
	if err != nil {
		t.Fatal(err)
	}
	if cmd := typeDigits(t, m, "98"); isQuit(cmd) {
		t.Fatalf("quit before completion")
	}
	if cmd := typeDigits(t, m, "7"); !isQuit(cmd) {
		t.Fatalf("expected quit after completion")
	}
	if r := m.Result(); !r.Completed || !slices.Equal(r.Digits, []int{9, 8, 7}) {
		t.Fatalf("result %+v", r)
	}
	if m.View() != "" {
		t.Fatalf("view should be blank once quitting")
	}
}

func TestClearKey(t *testing.T) {
	i18n.Init("en")
	var events int
	m, err := New(Options{OnEvent: func(pin.Event) { events++ }})
	if err != nil {
		t.Fatal(err)
	}
	typeDigits(t, m, "12")
	events = 0
	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
	if m.Controller().Len() != 0 || m.display.Filled() != 0 {
		t.Fatalf("clear did not empty the entry")
	}
	if events != 0 {
		t.Fatalf("clear emitted %d events", events)
	}
	if m.status != i18n.T("status.cleared") {
		t.Fatalf("status %q", m.status)
	}
}

func TestQuitKey(t *testing.T) {
	m, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc}); !isQuit(cmd) {
		t.Fatalf("esc should quit")
	}
	if m.Result().Completed {
		t.Fatalf("cancelled entry reported as completed")
	}
}

func TestReconfigureResizesDisplay(t *testing.T) {
	m, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	typeDigits(t, m, "12")
	if err := m.Reconfigure(pin.Config{MaxDigits: 8, ClearOnComplete: true}); err != nil {
		t.Fatalf("Reconfigure: %v", err)
	}
	if m.display.Capacity() != 8 || m.display.Filled() != 0 {
		t.Fatalf("display %d/%d", m.display.Filled(), m.display.Capacity())
	}
}

func TestViewAndHelpToggle(t *testing.T) {
	i18n.Init("en")
	m, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	out := m.View()
	if !strings.Contains(out, i18n.T("app.title")) || !strings.Contains(out, "○") {
		t.Fatalf("unexpected view:\n%s", out)
	}
	send(t, m, runes("?"))
	if !m.help.ShowAll {
		t.Fatalf("help not expanded")
	}
}
