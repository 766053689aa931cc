// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time.
package buildvars

// Version is set at link time via `-ldflags -X github.com/toeirei/pinpad/buildvars.Version=...`.
// It is empty for local builds.
var Version string

// VersionOrDefault returns Version if set, otherwise def.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	return def
}
