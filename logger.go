package gqlfetch

// Fields carries structured context for one log line.
type Fields map[string]any

// Logger receives the client's diagnostics: cache decisions and broadcasts
// at Debug, degraded store reads and writes at Warn. Adapt a logging stack
// via log/zap, log/logrus or log/slog, or implement the four methods
// directly. Leaving Options.Logger nil disables logging.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

// NopLogger drops everything.
type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}
