// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

package pin

import (
	"errors"
	"fmt"
)

// DefaultMaxDigits is the PIN length used when the host does not pick one.
const DefaultMaxDigits = 5

// ErrInvalidConfiguration is returned when a Config cannot drive a controller.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config is supplied by the host when the controller is built or reconfigured.
// The zero value is not a usable default: build on DefaultConfig so that
// ClearOnComplete stays on unless the host turns it off.
//
//	cfg := pin.DefaultConfig()
//	cfg.MaxDigits = 4
type Config struct {
	// MaxDigits is the PIN length; reaching it completes the input.
	MaxDigits int
	// ClearOnComplete resets the buffer right after completion.
	ClearOnComplete bool
}

// DefaultConfig returns a five digit PIN with auto-clear enabled.
func DefaultConfig() Config {
	return Config{
		MaxDigits:       DefaultMaxDigits,
		ClearOnComplete: true,
	}
}

// Validate reports whether c can be used by a controller.
func (c Config) Validate() error {
	if c.MaxDigits <= 0 {
		return fmt.Errorf("%w: max digits must be positive, got %d", ErrInvalidConfiguration, c.MaxDigits)
	}
	return nil
}
