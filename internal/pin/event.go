// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

package pin

import "slices"

// EventKind identifies a semantic event emitted by the controller.
type EventKind uint8

const (
	InputChanged EventKind = iota + 1
	InputCompleted
	OptionPressed
	BackspacePressed
)

func (k EventKind) String() string {
	switch k {
	case InputChanged:
		return "inputChanged"
	case InputCompleted:
		return "inputCompleted"
	case OptionPressed:
		return "optionPressed"
	case BackspacePressed:
		return "backspacePressed"
	default:
		return "unknown"
	}
}

// Event is delivered to the host. Digits holds a copy of the buffer at the
// moment of emission for InputChanged and InputCompleted and is nil otherwise.
type Event struct {
	Kind   EventKind
	Digits []int
}

func (e Event) String() string {
	if e.Kind == InputChanged || e.Kind == InputCompleted {
		return e.Kind.String() + formatDigits(e.Digits)
	}
	return e.Kind.String()
}

// Listener receives controller events synchronously, in emission order.
type Listener interface {
	HandleEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) HandleEvent(e Event) { f(e) }

// Recorder is a Listener that keeps every event it receives.
type Recorder struct {
	Events []Event
}

func (r *Recorder) HandleEvent(e Event) {
	r.Events = append(r.Events, e)
}

// Kinds returns the kinds of the recorded events in order.
func (r *Recorder) Kinds() []EventKind {
	kinds := make([]EventKind, 0, len(r.Events))
	for _, e := range r.Events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}

func newEvent(kind EventKind, digits []int) Event {
	return Event{Kind: kind, Digits: slices.Clone(digits)}
}
