package redisbus_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/domainnotify/pkg/notification"
	"github.com/dmitrymomot/domainnotify/pkg/redisbus"
)

func TestConnect_InvalidURL(t *testing.T) {
	_, err := redisbus.Connect(context.Background(), redisbus.Config{
		ConnectionURL:  "http://not-redis",
		RetryAttempts:  1,
		ConnectTimeout: time.Second,
	})
	assert.ErrorIs(t, err, redisbus.ErrFailedToParseRedisConnString)
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := redisbus.Connect(context.Background(), redisbus.Config{
		ConnectionURL:  "redis://127.0.0.1:1/0",
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: 2 * time.Second,
	})
	assert.ErrorIs(t, err, redisbus.ErrRedisNotReady)
}

// Runs against a real server when NOTIFY_REDIS_URL is set.
func TestPublishListen_Integration(t *testing.T) {
	url := os.Getenv("NOTIFY_REDIS_URL")
	if url == "" {
		t.Skip("NOTIFY_REDIS_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := redisbus.Connect(ctx, redisbus.Config{
		ConnectionURL:  url,
		RetryAttempts:  1,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, redisbus.Healthcheck(client)(ctx))

	channel := "domainnotify.test." + time.Now().Format("150405.000000")
	bus := notification.NewBus(4)
	defer bus.Close()
	sub := bus.Subscribe(ctx)

	listenCtx, stop := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() {
		done <- redisbus.NewListener(client, channel, bus).Run(listenCtx)
	}()

	pub := redisbus.NewPublisher(client, channel)
	want := notification.Notification{Code: notification.CodeCNPJInvalid, Message: "CNPJ inválido."}

	require.Eventually(t, func() bool {
		_ = pub.Notify(ctx, want)
		select {
		case got := <-sub.C():
			return assert.Equal(t, want, got)
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)

	stop()
	assert.NoError(t, <-done)
}
