// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

package pin

import (
	"errors"
	"slices"
	"testing"
)

func TestStandardLayout(t *testing.T) {
	l := StandardLayout()
	if err := l.Validate(); err != nil {
		t.Fatalf("standard layout invalid: %v", err)
	}
	if len(l) != 4 || l.Columns() != 3 {
		t.Fatalf("unexpected shape %dx%d", len(l), l.Columns())
	}
	if l[3][0] != Option || l[3][1] != Digit(0) || l[3][2] != Backspace {
		t.Fatalf("unexpected bottom row: %v", l[3])
	}
}

func TestLayoutValidate(t *testing.T) {
	cases := map[string]Layout{
		"no rows":   {},
		"empty row": {{Digit(1)}, {}},
		"ragged":    {{Digit(1), Digit(2)}, {Digit(3)}},
	}
	for name, l := range cases {
		if err := l.Validate(); !errors.Is(err, ErrInvalidLayout) {
			t.Errorf("%s: err = %v, want ErrInvalidLayout", name, err)
		}
	}
}

func TestParseLayoutRoundTrip(t *testing.T) {
	rows := StandardLayout().Strings()
	want := []string{"1 2 3", "4 5 6", "7 8 9", "option 0 backspace"}
	if !slices.Equal(rows, want) {
		t.Fatalf("Strings() = %q", rows)
	}
	l, err := ParseLayout(rows)
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if !slices.EqualFunc(l, StandardLayout(), slices.Equal[[]Key]) {
		t.Fatalf("round trip mismatch: %v", l)
	}
}

func TestParseLayout_Errors(t *testing.T) {
	if _, err := ParseLayout([]string{"1 2 x"}); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
	if _, err := ParseLayout([]string{"1 2", "3"}); !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout, got %v", err)
	}
	if _, err := ParseLayout(nil); !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout for nil rows, got %v", err)
	}
}
