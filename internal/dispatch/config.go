package dispatch

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config tunes a Dispatcher. Zero values fall back to the defaults applied
// in NewDispatcher.
type Config struct {
	// Shards is the number of worker queues. Keys hash onto shards; FIFO
	// order holds within a shard.
	Shards int `envconfig:"SHARDS"`

	// QueueSize is the buffered capacity of each shard queue.
	QueueSize int `envconfig:"QUEUE_SIZE"`

	// EnqueueTimeout bounds how long Submit waits for queue space before
	// reporting back-pressure.
	EnqueueTimeout time.Duration `envconfig:"ENQUEUE_TIMEOUT"`

	// MaxAttempts caps retries of a transient failure, first try included.
	MaxAttempts int `envconfig:"MAX_ATTEMPTS"`

	// BaseBackoff is the initial retry interval; it doubles per attempt.
	BaseBackoff time.Duration `envconfig:"BASE_BACKOFF"`

	// MaxInterval caps the backoff growth.
	MaxInterval time.Duration `envconfig:"MAX_INTERVAL"`

	// OnError, when set, observes every job that ultimately failed:
	// permanent faults, exhausted retries, cancelled contexts.
	OnError func(error) `envconfig:"-"`
}

// LoadConfig reads dispatcher tuning from CORRIDOR_DISPATCH_* environment
// variables, e.g. CORRIDOR_DISPATCH_SHARDS=8.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("corridor_dispatch", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.Shards <= 0 {
		c.Shards = 4
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 128
	}
	if c.EnqueueTimeout <= 0 {
		c.EnqueueTimeout = 100 * time.Millisecond
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 8
	}
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = 100 * time.Millisecond
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = 20 * time.Second
	}
	return c
}
