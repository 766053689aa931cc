// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"github.com/toeirei/pinpad/internal/config"
	"github.com/toeirei/pinpad/internal/logging"
	"github.com/toeirei/pinpad/internal/pin"
	"github.com/toeirei/pinpad/internal/tui"
	"github.com/toeirei/pinpad/internal/tui/display"
)

// session drives a controller from text tokens. It is the display and the
// listener of its controller; with trace set every render and event is
// printed.
type session struct {
	out        io.Writer
	trace      bool
	raw        bool
	display    *display.Model
	controller *pin.Controller
	result     tui.Result
}

func newSession(cfg config.Config, out io.Writer, trace bool) (*session, error) {
	s := &session{
		out:   out,
		trace: trace,
		display: display.New(cfg.Pin.MaxDigits, display.Glyphs{
			Filled: cfg.Display.Filled,
			Empty:  cfg.Display.Empty,
		}),
	}
	c, err := pin.NewController(cfg.PinConfig(), s, s)
	if err != nil {
		return nil, err
	}
	s.controller = c
	return s, nil
}

func (s *session) Render(snap pin.Snapshot) {
	s.display.Render(snap)
	if s.trace {
		fmt.Fprintf(s.out, "  render %s\n", s.display.Text())
	}
}

func (s *session) HandleEvent(e pin.Event) {
	if e.Kind == pin.InputCompleted {
		s.result = tui.Result{Digits: slices.Clone(e.Digits), Completed: true}
	}
	if s.trace {
		fmt.Fprintf(s.out, "  event %s\n", e)
	}
}

// key turns a token into a key. In raw mode tokens are integer key codes.
func (s *session) key(token string) (pin.Key, error) {
	if s.raw {
		return pin.ParseKey("#" + token)
	}
	return pin.ParseKey(token)
}

// feed applies one token. Unknown tokens are reported and skipped.
func (s *session) feed(token string) {
	k, err := s.key(token)
	if err != nil {
		logging.Warnf("skipping token: %v", err)
		if s.trace {
			fmt.Fprintf(s.out, "? %s\n", token)
		}
		return
	}
	if s.trace {
		fmt.Fprintf(s.out, "> %s\n", k)
	}
	s.controller.OnKeyActivated(k)
}

// run feeds whitespace separated tokens from r. With stopOnComplete it
// returns as soon as a PIN is completed.
func (s *session) run(r io.Reader, stopOnComplete bool) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		s.feed(sc.Text())
		if stopOnComplete && s.result.Completed {
			return nil
		}
	}
	return sc.Err()
}

var (
	_ pin.Display  = (*session)(nil)
	_ pin.Listener = (*session)(nil)
)
