package notification

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/domainnotify/pkg/logger"
)

// LogSink writes each notification as a structured log record.
type LogSink struct {
	logger *slog.Logger
	level  slog.Level
	msg    string
}

// LogSinkOption configures a LogSink.
type LogSinkOption func(*LogSink)

// WithLogLevel sets the record level. Default is slog.LevelWarn.
func WithLogLevel(level slog.Level) LogSinkOption {
	return func(s *LogSink) {
		s.level = level
	}
}

// WithLogMessage overrides the record message. Default is "assertion failed".
func WithLogMessage(msg string) LogSinkOption {
	return func(s *LogSink) {
		if msg != "" {
			s.msg = msg
		}
	}
}

// NewLogSink creates a sink writing to l, or to slog.Default when l is nil.
func NewLogSink(l *slog.Logger, opts ...LogSinkOption) *LogSink {
	if l == nil {
		l = slog.Default()
	}
	s := &LogSink{
		logger: l,
		level:  slog.LevelWarn,
		msg:    "assertion failed",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LogSink) Notify(ctx context.Context, n Notification) error {
	s.logger.LogAttrs(ctx, s.level, s.msg,
		logger.NotificationCode(string(n.Code)),
		logger.NotificationMessage(n.Message),
	)
	return nil
}
