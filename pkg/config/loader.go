package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option adjusts a single Load call.
type Option func(*options)

type options struct {
	files  []string
	prefix string
}

// WithEnvFiles sets the dotenv files applied before parsing.
// The default is ".env" in the working directory.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.files = files
	}
}

// WithPrefix only considers variables starting with prefix, e.g. "NOTIFY_".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// Load applies dotenv files and decodes the environment into v.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := options{files: []string{".env"}}
	for _, opt := range opts {
		opt(&o)
	}

	for _, file := range o.files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Join(ErrEnvFile, fmt.Errorf("%s: %w", file, err))
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
