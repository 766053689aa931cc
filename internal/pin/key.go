// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

package pin

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Raw codes used by keypads that tag their buttons with integers.
const (
	OptionCode    = 999
	BackspaceCode = -1
	EmptyCode     = 888
)

// ErrUnknownKey is returned by ParseKey for tokens that name no key.
var ErrUnknownKey = errors.New("unknown key")

// Category is the coarse kind of a Key.
type Category uint8

const (
	CategoryEmpty Category = iota
	CategoryNumber
	CategoryOption
	CategoryBackspace
)

func (c Category) String() string {
	switch c {
	case CategoryNumber:
		return "number"
	case CategoryOption:
		return "option"
	case CategoryBackspace:
		return "backspace"
	default:
		return "empty"
	}
}

// Key is one symbol on the keypad. The zero value is Empty.
type Key struct {
	category Category
	digit    uint8
}

var (
	Option    = Key{category: CategoryOption}
	Backspace = Key{category: CategoryBackspace}
	Empty     = Key{}
)

// Digit returns the key for d. Values outside 0..9 yield Empty.
func Digit(d int) Key {
	if d < 0 || d > 9 {
		return Empty
	}
	return Key{category: CategoryNumber, digit: uint8(d)}
}

// Decode maps a raw key code to its Key. It never fails: unknown codes
// decode to Empty.
func Decode(raw int) Key {
	switch {
	case raw >= 0 && raw <= 9:
		return Digit(raw)
	case raw == OptionCode:
		return Option
	case raw == BackspaceCode:
		return Backspace
	default:
		return Empty
	}
}

// Identifier returns the raw code of the key.
func (k Key) Identifier() int {
	switch k.category {
	case CategoryNumber:
		return int(k.digit)
	case CategoryOption:
		return OptionCode
	case CategoryBackspace:
		return BackspaceCode
	default:
		return EmptyCode
	}
}

func (k Key) Category() Category {
	return k.category
}

// Value returns the digit carried by a number key.
func (k Key) Value() (int, bool) {
	if k.category != CategoryNumber {
		return 0, false
	}
	return int(k.digit), true
}

func (k Key) String() string {
	if d, ok := k.Value(); ok {
		return strconv.Itoa(d)
	}
	return k.category.String()
}

// ParseKey reads a key from its textual form: a single digit, one of the
// names option/opt/o or backspace/bs/del, or "#<code>" for a raw code which
// is decoded like Decode does.
func ParseKey(token string) (Key, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	switch t {
	case "option", "opt", "o":
		return Option, nil
	case "backspace", "bs", "del":
		return Backspace, nil
	case "empty":
		return Empty, nil
	}
	if raw, ok := strings.CutPrefix(t, "#"); ok {
		code, err := strconv.Atoi(raw)
		if err != nil {
			return Empty, fmt.Errorf("%w: %q", ErrUnknownKey, token)
		}
		return Decode(code), nil
	}
	if len(t) == 1 && t[0] >= '0' && t[0] <= '9' {
		return Digit(int(t[0] - '0')), nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownKey, token)
}
