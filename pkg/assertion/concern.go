package assertion

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/domainnotify/pkg/logger"
	"github.com/dmitrymomot/domainnotify/pkg/notification"
)

// Concern forwards failed assertions to a sink.
type Concern struct {
	sink   notification.Sink
	logger *slog.Logger
}

// Option configures a Concern.
type Option func(*Concern)

// WithLogger sets the logger used to report sink delivery failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Concern) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Concern bound to sink. A nil sink discards notifications.
func New(sink notification.Sink, opts ...Option) *Concern {
	if sink == nil {
		sink = notification.Discard
	}
	c := &Concern{
		sink:   sink,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsSatisfiedBy forwards every non-nil result to the sink in order and
// reports whether there were none. Sink errors are logged and do not change
// the outcome.
func (c *Concern) IsSatisfiedBy(ctx context.Context, results ...*notification.Notification) bool {
	failed := notification.Collect(results...)
	for _, n := range failed {
		if err := c.sink.Notify(ctx, n); err != nil {
			c.logger.LogAttrs(ctx, slog.LevelError, "failed to raise notification",
				logger.Component("assertion"),
				logger.NotificationCode(string(n.Code)),
				logger.Error(err),
			)
		}
	}
	return failed.IsEmpty()
}

// IsSatisfiedBy is a shortcut for New(sink).IsSatisfiedBy(ctx, results...).
func IsSatisfiedBy(ctx context.Context, sink notification.Sink, results ...*notification.Notification) bool {
	return New(sink).IsSatisfiedBy(ctx, results...)
}

// Check returns the failed results as notification.Notifications, or nil
// when every assertion passed.
func Check(results ...*notification.Notification) error {
	failed := notification.Collect(results...)
	if failed.IsEmpty() {
		return nil
	}
	return failed
}
