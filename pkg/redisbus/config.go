package redisbus

import "time"

// Config describes the Redis connection and the channel notifications travel on.
type Config struct {
	// ConnectionURL has the form "redis://:password@localhost:6379/0".
	ConnectionURL  string        `env:"NOTIFY_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	Channel        string        `env:"NOTIFY_REDIS_CHANNEL" envDefault:"domain.notifications"`
	RetryAttempts  int           `env:"NOTIFY_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"NOTIFY_REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"NOTIFY_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}
