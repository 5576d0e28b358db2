package notification

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/domainnotify/pkg/logger"
)

// MultiSink delivers every notification to all of its sinks.
// Delivery is best effort: a failing sink does not stop the others.
type MultiSink struct {
	sinks  []Sink
	logger *slog.Logger
}

// MultiSinkOption configures a MultiSink.
type MultiSinkOption func(*MultiSink)

// WithMultiSinkLogger sets the logger used to report failing sinks.
func WithMultiSinkLogger(l *slog.Logger) MultiSinkOption {
	return func(m *MultiSink) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMultiSink creates a fan-out sink. Nil sinks are skipped.
func NewMultiSink(sinks []Sink, opts ...MultiSinkOption) *MultiSink {
	m := &MultiSink{logger: slog.Default()}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Notify returns ErrDeliveryFailed joined with every sink error once all
// sinks have been tried.
func (m *MultiSink) Notify(ctx context.Context, n Notification) error {
	var errs []error
	for i, s := range m.sinks {
		if err := s.Notify(ctx, n); err != nil {
			m.logger.LogAttrs(ctx, slog.LevelError, "failed to deliver notification",
				logger.NotificationCode(string(n.Code)),
				slog.Int("sink_index", i),
				logger.Error(err),
			)
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrDeliveryFailed}, errs...)...)
	}
	return nil
}
