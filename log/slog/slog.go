//go:build go1.21

// Package slog adapts the standard library's log/slog to the gqlfetch
// Logger interface.
package slog

import (
	"context"
	stdslog "log/slog"

	"github.com/unkn0wn-root/gqlfetch"
)

var _ gqlfetch.Logger = Logger{}

// Logger forwards client diagnostics to L via LogAttrs.
type Logger struct{ L *stdslog.Logger }

func (s Logger) Debug(msg string, f gqlfetch.Fields) {
	s.L.LogAttrs(context.Background(), stdslog.LevelDebug, msg, toAttrs(f)...)
}
func (s Logger) Info(msg string, f gqlfetch.Fields) {
	s.L.LogAttrs(context.Background(), stdslog.LevelInfo, msg, toAttrs(f)...)
}
func (s Logger) Warn(msg string, f gqlfetch.Fields) {
	s.L.LogAttrs(context.Background(), stdslog.LevelWarn, msg, toAttrs(f)...)
}
func (s Logger) Error(msg string, f gqlfetch.Fields) {
	s.L.LogAttrs(context.Background(), stdslog.LevelError, msg, toAttrs(f)...)
}

func toAttrs(f gqlfetch.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	out := make([]stdslog.Attr, 0, len(f))
	for k, v := range f {
		out = append(out, stdslog.Any(k, v))
	}
	return out
}
