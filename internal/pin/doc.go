// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

// Package pin contains the PIN entry core: the closed set of keypad keys, the
// controller that accumulates digits and the contracts it uses to talk to a
// display and a host. Nothing in this package performs I/O; presentation lives
// in the tui packages.
package pin
