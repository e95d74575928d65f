// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log

import (
	"fmt"
	"log/slog"
	"os"
)

// ParseLevel parses a case-insensitive level name, one of the debug,
// info, warn, or error values, into its slog.Level counterpart.
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("parsing level %q: %w", name, err)
	}
	return l, nil
}

// Setup installs a JSON handler, writing to the standard error with
// the given minimum level, as the slog default logger. All package
// level logging functions respect it thereafter.
func Setup(level slog.Level) {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(h))
}
