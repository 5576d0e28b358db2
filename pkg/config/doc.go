// Package config loads environment based configuration into tagged structs.
//
// Values are read from the process environment after optional dotenv files
// have been applied with github.com/joho/godotenv, then decoded with
// github.com/caarlos0/env/v11:
//
//	type Config struct {
//		Env     string `env:"APP_ENV" envDefault:"development"`
//		Channel string `env:"REDIS_CHANNEL" envDefault:"domain.notifications"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithEnvFiles(".env")); err != nil {
//		return err
//	}
//
// Dotenv files never override variables that are already set, and missing
// files are skipped.
package config
