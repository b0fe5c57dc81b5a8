// Package logrus adapts sirupsen/logrus to the gqlfetch Logger interface.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/gqlfetch"
)

// LogrusLogger forwards client diagnostics to L. L accepts a *logrus.Logger
// as well as a pre-scoped *logrus.Entry.
type LogrusLogger struct{ L logrus.FieldLogger }

func (l LogrusLogger) Debug(msg string, f gqlfetch.Fields) {
	l.L.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f gqlfetch.Fields) { l.L.WithFields(logrus.Fields(f)).Info(msg) }
func (l LogrusLogger) Warn(msg string, f gqlfetch.Fields) { l.L.WithFields(logrus.Fields(f)).Warn(msg) }
func (l LogrusLogger) Error(msg string, f gqlfetch.Fields) {
	l.L.WithFields(logrus.Fields(f)).Error(msg)
}
