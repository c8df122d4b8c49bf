package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// Options configures the command-line logger.
type Options struct {
	// Console receives short records without timestamps.
	Console io.Writer
	// File is the session log; records carry RFC3339 UTC timestamps.
	File  io.Writer
	Level string
}

// Session identifies one run of the command line. Non-empty fields are
// attached to every record under the "session" group.
type Session struct {
	ID      string
	Command string
	Catalog string
	Storage string
}

func (s Session) attrs() []any {
	var out []any
	for _, kv := range [...]struct{ key, val string }{
		{"id", s.ID},
		{"command", s.Command},
		{"catalog", s.Catalog},
		{"storage", s.Storage},
	} {
		if kv.val != "" {
			out = append(out, slog.String(kv.key, kv.val))
		}
	}
	return out
}

// SlogManager owns the command-line logger: console and session file
// handlers fanned out through a MultiHandler.
type SlogManager struct {
	logger *slog.Logger
}

// NewSlogManager creates a manager; Logger falls back to slog.Default until Setup.
func NewSlogManager() *SlogManager {
	return &SlogManager{}
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func fileTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.UTC().Format(time.RFC3339))
		}
	}
	return a
}

func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}

// Setup replaces the logger. Either writer may be nil; with both nil,
// records are discarded.
func (m *SlogManager) Setup(opts Options) {
	lvl := parseLevel(opts.Level)

	var handlers []slog.Handler
	if opts.Console != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Console, &slog.HandlerOptions{
			Level:       lvl,
			ReplaceAttr: dropTime,
		}))
	}
	if opts.File != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.File, &slog.HandlerOptions{
			Level:       lvl,
			ReplaceAttr: fileTime,
		}))
	}

	m.logger = slog.New(NewMultiHandler(handlers...))
}

// StartSession tags every later record with s and returns the tagged logger.
func (m *SlogManager) StartSession(s Session) *slog.Logger {
	if attrs := s.attrs(); len(attrs) > 0 {
		m.logger = m.Logger().With(slog.Group("session", attrs...))
	}
	logger := m.Logger()
	logger.Debug("Session started")
	return logger
}

// Logger returns the configured logger.
func (m *SlogManager) Logger() *slog.Logger {
	if m.logger == nil {
		return slog.Default()
	}
	return m.logger
}
