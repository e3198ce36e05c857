// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slogfield provides the slog.Attr constructors used when logging config lookups.
package slogfield

import "log/slog"

// Setting returns an slog.Attr for the name of the setting being resolved.
func Setting(name string) slog.Attr {
	return slog.String("setting", name)
}

// Default returns an slog.Attr for an assumed default value.
func Default(value string) slog.Attr {
	return slog.String("default", value)
}

// Value returns an slog.Attr for a raw setting value.
func Value(value string) slog.Attr {
	return slog.String("value", value)
}

// Line returns an slog.Attr for a 1-based line number.
func Line(n int) slog.Attr {
	return slog.Int("line", n)
}
