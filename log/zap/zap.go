// Package zap adapts go.uber.org/zap to the gqlfetch Logger interface.
package zap

import (
	"github.com/unkn0wn-root/gqlfetch"
	"go.uber.org/zap"
)

// ZapLogger forwards client diagnostics to L with typed zap fields.
type ZapLogger struct{ L *zap.Logger }

func (z ZapLogger) Debug(msg string, f gqlfetch.Fields) { z.L.Debug(msg, zapFields(f)...) }
func (z ZapLogger) Info(msg string, f gqlfetch.Fields)  { z.L.Info(msg, zapFields(f)...) }
func (z ZapLogger) Warn(msg string, f gqlfetch.Fields)  { z.L.Warn(msg, zapFields(f)...) }
func (z ZapLogger) Error(msg string, f gqlfetch.Fields) { z.L.Error(msg, zapFields(f)...) }

func zapFields(f gqlfetch.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
