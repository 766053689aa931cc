// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

package pin

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLayout is returned for layouts a keypad cannot arrange as a grid.
var ErrInvalidLayout = errors.New("invalid layout")

// Layout is the grid of keys shown by a keypad, row by row.
type Layout [][]Key

// StandardLayout is the phone style grid with option and backspace flanking 0.
func StandardLayout() Layout {
	return Layout{
		{Digit(1), Digit(2), Digit(3)},
		{Digit(4), Digit(5), Digit(6)},
		{Digit(7), Digit(8), Digit(9)},
		{Option, Digit(0), Backspace},
	}
}

// Validate checks that the layout has at least one row and that all rows
// have the same, non-zero width.
func (l Layout) Validate() error {
	if len(l) == 0 {
		return fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}
	width := len(l[0])
	for i, row := range l {
		if len(row) == 0 {
			return fmt.Errorf("%w: row %d is empty", ErrInvalidLayout, i)
		}
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d keys, want %d", ErrInvalidLayout, i, len(row), width)
		}
	}
	return nil
}

// Columns returns the width of the grid.
func (l Layout) Columns() int {
	if len(l) == 0 {
		return 0
	}
	return len(l[0])
}

// ParseLayout builds a layout from whitespace separated key tokens, one
// string per row, e.g. "1 2 3".
func ParseLayout(rows []string) (Layout, error) {
	layout := make(Layout, 0, len(rows))
	for i, row := range rows {
		fields := strings.Fields(row)
		keys := make([]Key, 0, len(fields))
		for _, field := range fields {
			k, err := ParseKey(field)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			keys = append(keys, k)
		}
		layout = append(layout, keys)
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return layout, nil
}

// Strings is the inverse of ParseLayout.
func (l Layout) Strings() []string {
	rows := make([]string, len(l))
	for i, row := range l {
		names := make([]string, len(row))
		for j, k := range row {
			names[j] = k.String()
		}
		rows[i] = strings.Join(names, " ")
	}
	return rows
}
