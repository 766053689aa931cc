// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

package display

import (
	"strings"
	"testing"

	"github.com/toeirei/pinpad/internal/pin"
)

func TestRenderCounts(t *testing.T) {
	m := New(4, Glyphs{Filled: "#", Empty: "-"})
	if m.Text() != "----" {
		t.Fatalf("initial text %q", m.Text())
	}
	m.Render(pin.Snapshot{Digits: []int{1, 2}, Capacity: 4})
	if m.Filled() != 2 || m.Text() != "##--" {
		t.Fatalf("after render: filled=%d text=%q", m.Filled(), m.Text())
	}
	// idempotent
	m.Render(pin.Snapshot{Digits: []int{1, 2}, Capacity: 4})
	if m.Text() != "##--" {
		t.Fatalf("repeated render changed text: %q", m.Text())
	}
	m.Render(pin.Snapshot{Capacity: 6})
	if m.Capacity() != 6 || m.Text() != "------" {
		t.Fatalf("capacity change not shown: %q", m.Text())
	}
}

func TestDefaultGlyphs(t *testing.T) {
	m := New(2, Glyphs{})
	m.Render(pin.Snapshot{Digits: []int{7}, Capacity: 2})
	if m.Text() != "●○" {
		t.Fatalf("unexpected text %q", m.Text())
	}
}

func TestViewNeverShowsDigits(t *testing.T) {
	m := New(3, DefaultGlyphs())
	m.Render(pin.Snapshot{Digits: []int{4, 5}, Capacity: 3})
	if strings.ContainsAny(m.Text(), "45") {
		t.Fatalf("text leaked digits: %q", m.Text())
	}
	out := m.View()
	if strings.Count(out, "●") != 2 || strings.Count(out, "○") != 1 {
		t.Fatalf("unexpected indicators: %q", out)
	}
}
