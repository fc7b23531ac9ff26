// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// NewHandler returns a text [slog.Handler] writing to w at [UserLevel].
// Level names are colored when w is a terminal that supports color.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	prof := out.EnvColorProfile()
	opts := &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lev, ok := a.Value.Any().(slog.Level)
				if !ok || prof == termenv.Ascii {
					return a
				}
				return slog.String(a.Key, out.String(lev.String()).Foreground(LevelColor(prof, lev)).String())
			}
			return a
		},
	}
	return slog.NewTextHandler(w, opts)
}

// LevelColor returns the color used for the given level
// in the given color profile.
func LevelColor(prof termenv.Profile, lev slog.Level) termenv.Color {
	switch {
	case lev >= slog.LevelError:
		return prof.Color("#f44336")
	case lev >= slog.LevelWarn:
		return prof.Color("#ff9800")
	case lev >= slog.LevelInfo:
		return prof.Color("#2196f3")
	default:
		return prof.Color("#9e9e9e")
	}
}

// SetDefaultLogger sets the default [slog] logger to one
// writing to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
