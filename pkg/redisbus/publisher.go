package redisbus

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/domainnotify/pkg/notification"
)

// PublishClient is the part of the go-redis client used by Publisher.
type PublishClient interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// Publisher is a notification.Sink publishing to a Redis channel.
type Publisher struct {
	client  PublishClient
	channel string
}

func NewPublisher(client PublishClient, channel string) *Publisher {
	return &Publisher{client: client, channel: channel}
}

func (p *Publisher) Notify(ctx context.Context, n notification.Notification) error {
	payload, err := Encode(n)
	if err != nil {
		return err
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return errors.Join(ErrPublishFailed, err)
	}
	return nil
}
