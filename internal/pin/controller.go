// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

package pin

import (
	"slices"

	"github.com/toeirei/pinpad/internal/logging"
)

// Controller accumulates digits from keypad activations, keeps the display in
// sync and tells the host what happened. It is not safe for concurrent use;
// all calls are expected from the UI event loop.
type Controller struct {
	cfg      Config
	digits   []int
	display  Display
	listener Listener
}

// NewController validates cfg and returns a controller with an empty buffer.
// A nil display or listener discards renders or events respectively.
func NewController(cfg Config, display Display, listener Listener) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if display == nil {
		display = discard{}
	}
	if listener == nil {
		listener = discard{}
	}
	return &Controller{
		cfg:      cfg,
		digits:   make([]int, 0, cfg.MaxDigits),
		display:  display,
		listener: listener,
	}, nil
}

// Config returns the active configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Digits returns a copy of the buffer.
func (c *Controller) Digits() []int {
	return slices.Clone(c.digits)
}

// Len returns the number of buffered digits.
func (c *Controller) Len() int {
	return len(c.digits)
}

// Snapshot returns what the display currently shows.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{Digits: c.Digits(), Capacity: c.cfg.MaxDigits}
}

// OnKeyActivated applies one key press. Renders happen before the events of
// the same activation; everything runs to completion before returning.
func (c *Controller) OnKeyActivated(key Key) {
	switch key.Category() {
	case CategoryBackspace:
		c.backspace()
	case CategoryNumber:
		d, _ := key.Value()
		c.appendDigit(d)
	case CategoryOption:
		c.emit(newEvent(OptionPressed, nil))
	default:
		logging.Debugf("pin: ignoring %s key", key)
	}
}

// ClearInput empties the buffer and re-renders. No event is emitted.
func (c *Controller) ClearInput() {
	c.digits = c.digits[:0]
	c.render()
}

// Reconfigure replaces the configuration. The buffer is always reset so a
// partial entry never outlives the length it was typed against. An invalid
// cfg is rejected and leaves the controller untouched.
func (c *Controller) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	c.digits = make([]int, 0, cfg.MaxDigits)
	c.render()
	return nil
}

func (c *Controller) backspace() {
	if len(c.digits) == 0 {
		logging.Debugf("pin: backspace on empty buffer")
		return
	}
	c.digits = c.digits[:len(c.digits)-1]
	c.render()
	c.emit(newEvent(BackspacePressed, nil))
	c.emit(newEvent(InputChanged, c.digits))
}

func (c *Controller) appendDigit(d int) {
	if len(c.digits) >= c.cfg.MaxDigits {
		logging.Debugf("pin: buffer full (%d digits), ignoring digit", c.cfg.MaxDigits)
		return
	}
	c.digits = append(c.digits, d)
	c.render()

	if len(c.digits) < c.cfg.MaxDigits {
		c.emit(newEvent(InputChanged, c.digits))
		return
	}

	c.emit(newEvent(InputCompleted, c.digits))
	if c.cfg.ClearOnComplete {
		c.ClearInput()
	}
}

func (c *Controller) render() {
	c.display.Render(c.Snapshot())
}

func (c *Controller) emit(e Event) {
	c.listener.HandleEvent(e)
}
