package redisbus

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/domainnotify/pkg/logger"
	"github.com/dmitrymomot/domainnotify/pkg/notification"
)

// SubscribeClient is the part of the go-redis client used by Listener.
type SubscribeClient interface {
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
}

// Listener forwards notifications received on a channel into a sink.
type Listener struct {
	client  SubscribeClient
	channel string
	sink    notification.Sink
	logger  *slog.Logger
}

// ListenerOption configures a Listener.
type ListenerOption func(*Listener)

func WithListenerLogger(l *slog.Logger) ListenerOption {
	return func(ls *Listener) {
		if l != nil {
			ls.logger = l
		}
	}
}

func NewListener(client SubscribeClient, channel string, sink notification.Sink, opts ...ListenerOption) *Listener {
	if sink == nil {
		sink = notification.Discard
	}
	l := &Listener{
		client:  client,
		channel: channel,
		sink:    sink,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run subscribes and blocks until ctx is done or the subscription closes.
// Malformed payloads and sink failures are logged and skipped.
func (l *Listener) Run(ctx context.Context) error {
	pubsub := l.client.Subscribe(ctx, l.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return errors.Join(ErrSubscribeFailed, err)
	}

	l.logger.LogAttrs(ctx, slog.LevelInfo, "listening for notifications",
		logger.Component("redisbus"),
		logger.Channel(l.channel),
	)

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			l.handle(ctx, msg.Payload)
		}
	}
}

func (l *Listener) handle(ctx context.Context, payload string) {
	n, err := Decode([]byte(payload))
	if err != nil {
		l.logger.LogAttrs(ctx, slog.LevelWarn, "dropping malformed notification",
			logger.Component("redisbus"),
			logger.Channel(l.channel),
			logger.Error(err),
		)
		return
	}
	if err := l.sink.Notify(ctx, n); err != nil {
		l.logger.LogAttrs(ctx, slog.LevelError, "failed to forward notification",
			logger.Component("redisbus"),
			logger.NotificationCode(string(n.Code)),
			logger.Error(err),
		)
	}
}
