package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/domainnotify/pkg/assertion"
	"github.com/dmitrymomot/domainnotify/pkg/logger"
	"github.com/dmitrymomot/domainnotify/pkg/notification"
	"github.com/dmitrymomot/domainnotify/pkg/redisbus"
)

type validateInput struct {
	name    string
	nameMin int
	nameMax int
	email   string
	url     string
	cpf     string
	cnpj    string
	id      string
	publish bool
}

func newValidateCmd(a *app) *cobra.Command {
	in := validateInput{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the given values and report failed assertions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			collector := notification.NewCollector()
			sinks := []notification.Sink{collector, notification.NewLogSink(a.logger)}

			if in.publish {
				client, err := redisbus.Connect(ctx, a.cfg.Redis)
				if err != nil {
					return err
				}
				defer client.Close()
				sinks = append(sinks, redisbus.NewPublisher(client, a.cfg.Redis.Channel))
			}

			sink := notification.NewMultiSink(sinks, notification.WithMultiSinkLogger(a.logger))
			ok := assertion.New(sink, assertion.WithLogger(a.logger)).IsSatisfiedBy(ctx, in.assertions(cmd)...)

			out := cmd.OutOrStdout()
			for _, n := range collector.Notifications() {
				fmt.Fprintln(out, n.String())
			}
			if !ok {
				a.logger.InfoContext(ctx, "validation finished", logger.Count(collector.Len()))
				return errUnsatisfied
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.name, "name", "", "name whose length is checked")
	f.IntVar(&in.nameMin, "name-min", 3, "minimum name length")
	f.IntVar(&in.nameMax, "name-max", 100, "maximum name length")
	f.StringVar(&in.email, "email", "", "e-mail address")
	f.StringVar(&in.url, "url", "", "web address")
	f.StringVar(&in.cpf, "cpf", "", "CPF number, formatted or digits only")
	f.StringVar(&in.cnpj, "cnpj", "", "CNPJ number, formatted or digits only")
	f.StringVar(&in.id, "id", "", "UUID that must not be empty")
	f.BoolVar(&in.publish, "publish", false, "publish failures to the Redis channel")

	return cmd
}

// assertions builds checks only for flags the caller set.
func (in validateInput) assertions(cmd *cobra.Command) []*notification.Notification {
	changed := cmd.Flags().Changed
	var results []*notification.Notification

	if changed("name") {
		results = append(results,
			assertion.NotEmpty(in.name, "name is required"),
			assertion.Length(in.name, in.nameMin, in.nameMax,
				fmt.Sprintf("name must have between %d and %d characters", in.nameMin, in.nameMax)),
		)
	}
	if changed("email") {
		results = append(results, assertion.ValidEmail(in.email, "invalid e-mail address"))
	}
	if changed("url") {
		results = append(results, assertion.ValidURL(in.url, "invalid URL"))
	}
	if changed("cpf") {
		results = append(results, assertion.ValidCPF(in.cpf, "invalid CPF"))
	}
	if changed("cnpj") {
		results = append(results, assertion.ValidCNPJ(in.cnpj, "invalid CNPJ"))
	}
	if changed("id") {
		id, err := uuid.Parse(in.id)
		results = append(results,
			assertion.True(err == nil, "id must be a UUID"),
			assertion.UUIDNotEmpty(id, "id must not be empty"),
		)
	}
	return results
}
