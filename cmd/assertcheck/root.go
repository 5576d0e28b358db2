package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/domainnotify/pkg/config"
	"github.com/dmitrymomot/domainnotify/pkg/logger"
	"github.com/dmitrymomot/domainnotify/pkg/redisbus"
)

var errUnsatisfied = errors.New("one or more assertions failed")

type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME" envDefault:"assertcheck"`
	Redis   redisbus.Config
}

type app struct {
	cfg    appConfig
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var envFile string

	root := &cobra.Command{
		Use:          "assertcheck",
		Short:        "Run domain assertions and relay their notifications",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Load(&a.cfg, config.WithEnvFiles(envFile)); err != nil {
				return err
			}
			a.logger = newLogger(a.cfg, cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file applied before reading the environment")

	root.AddCommand(newValidateCmd(a), newListenCmd(a))
	return root
}

func newLogger(cfg appConfig, w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithOutput(w),
	)
}
