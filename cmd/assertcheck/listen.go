package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/domainnotify/pkg/notification"
	"github.com/dmitrymomot/domainnotify/pkg/redisbus"
)

func newListenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "listen",
		Short: "Log notifications published on the Redis channel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client, err := redisbus.Connect(ctx, a.cfg.Redis)
			if err != nil {
				return err
			}
			defer client.Close()

			sink := notification.NewLogSink(a.logger, notification.WithLogMessage("notification received"))
			return redisbus.NewListener(client, a.cfg.Redis.Channel, sink,
				redisbus.WithListenerLogger(a.logger),
			).Run(ctx)
		},
	}
}
