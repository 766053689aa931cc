// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

package pin

import (
	"strconv"
	"strings"
)

// Snapshot is what a Display is asked to show: Filled() of Capacity
// indicators filled.
type Snapshot struct {
	Digits   []int
	Capacity int
}

func (s Snapshot) Filled() int {
	return len(s.Digits)
}

func (s Snapshot) Empty() int {
	return max(s.Capacity-len(s.Digits), 0)
}

// Display renders the progress of the entry. Implementations must be
// idempotent for identical snapshots.
type Display interface {
	Render(Snapshot)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(Snapshot)

func (f DisplayFunc) Render(s Snapshot) { f(s) }

type discard struct{}

func (discard) Render(Snapshot)   {}
func (discard) HandleEvent(Event) {}

func formatDigits(digits []int) string {
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = strconv.Itoa(d)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
