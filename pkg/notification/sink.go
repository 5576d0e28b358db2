package notification

import (
	"context"
	"sync"
)

// Sink receives raised notifications one at a time.
// Implementations must be safe for concurrent use.
type Sink interface {
	Notify(ctx context.Context, n Notification) error
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(ctx context.Context, n Notification) error

func (f SinkFunc) Notify(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

// Discard drops every notification.
var Discard Sink = SinkFunc(func(context.Context, Notification) error { return nil })

// Collector keeps notifications in memory in arrival order.
type Collector struct {
	mu    sync.Mutex
	items Notifications
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Notify(_ context.Context, n Notification) error {
	c.mu.Lock()
	c.items = append(c.items, n)
	c.mu.Unlock()
	return nil
}

// Notifications returns a copy of everything collected so far.
func (c *Collector) Notifications() Notifications {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return nil
	}
	out := make(Notifications, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Collector) Reset() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}
