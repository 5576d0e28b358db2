package notification

import (
	"context"
	"sync"
)

// Subscription receives notifications published on a Bus.
type Subscription struct {
	ch     chan Notification
	done   chan struct{}
	closed bool
	mu     sync.RWMutex
	bus    *Bus
}

// C returns the delivery channel. It is closed when the subscription ends.
func (s *Subscription) C() <-chan Notification {
	return s.ch
}

// Close ends the subscription. It is safe to call more than once.
func (s *Subscription) Close() error {
	if s.bus != nil {
		s.bus.unsubscribe(s)
		return nil
	}
	s.close()
	return nil
}

func (s *Subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		close(s.ch)
		close(s.done)
		s.closed = true
	}
}

func (s *Subscription) send(n Notification) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	select {
	case s.ch <- n:
		return true
	default:
		return false
	}
}

// Bus is an in-process Sink that fans notifications out to subscribers.
// A subscriber whose buffer is full is dropped instead of blocking Notify.
type Bus struct {
	subs       map[*Subscription]struct{}
	bufferSize int
	closed     bool
	mu         sync.RWMutex
	wg         sync.WaitGroup
}

// NewBus creates a bus whose subscribers buffer up to bufferSize
// notifications. The minimum buffer size is 1.
func NewBus(bufferSize int) *Bus {
	return &Bus{
		subs:       make(map[*Subscription]struct{}),
		bufferSize: max(bufferSize, 1),
	}
}

// Subscribe registers a subscriber that is removed when ctx is cancelled.
// On a closed bus the returned subscription is already closed.
func (b *Bus) Subscribe(ctx context.Context) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &Subscription{
		ch:   make(chan Notification, b.bufferSize),
		done: make(chan struct{}),
	}
	if b.closed {
		sub.close()
		return sub
	}

	sub.bus = b
	b.subs[sub] = struct{}{}

	if ctx.Done() != nil {
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			select {
			case <-ctx.Done():
				b.unsubscribe(sub)
			case <-sub.done:
			}
		}()
	}

	return sub
}

// Notify delivers n to every subscriber without blocking.
func (b *Bus) Notify(_ context.Context, n Notification) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrBusClosed
	}

	var slow []*Subscription
	for sub := range b.subs {
		if !sub.send(n) {
			slow = append(slow, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range slow {
		b.unsubscribe(sub)
	}
	return nil
}

// Len returns the number of active subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close closes all subscriptions. Notify fails with ErrBusClosed afterwards.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	for sub := range b.subs {
		sub.close()
	}
	clear(b.subs)
	b.mu.Unlock()

	b.wg.Wait()
	return nil
}

func (b *Bus) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	delete(b.subs, sub)
	b.mu.Unlock()
	sub.close()
}
