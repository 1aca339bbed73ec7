package bench

import (
	"fmt"
	"io"

	"github.com/tezrry/queuebench/container/queue"
	"github.com/tezrry/queuebench/pkg/errors"
	"github.com/tezrry/queuebench/pkg/logging"
)

// DefaultOperations is the number of enqueues, and of dequeues, per case.
const DefaultOperations = 100000

type ConfigFunc func(c *Config)

type Config struct {
	// Operations is the number of enqueues followed by the same number of dequeues.
	Operations int

	// InitialCapacity is the starting buffer size of ArrayQueue.
	InitialCapacity int

	// Output receives one report line per finished case. Nil disables it.
	Output io.Writer

	Logger logging.Logger
}

func defaultConfig() Config {
	return Config{
		Operations:      DefaultOperations,
		InitialCapacity: queue.DefaultCapacity,
		Logger:          logging.GetDefaultLogger(),
	}
}

func (c *Config) validate() error {
	if c.Operations < 1 {
		return fmt.Errorf("%w, got %d", errors.ErrInvalidOperations, c.Operations)
	}
	if c.InitialCapacity < 0 {
		return fmt.Errorf("%w: %d", errors.ErrInvalidCapacity, c.InitialCapacity)
	}
	if c.Logger == nil {
		c.Logger = logging.GetDefaultLogger()
	}
	return nil
}

func WithConfig(config *Config) ConfigFunc {
	return func(c *Config) {
		*c = *config
	}
}

func WithOperations(num int) ConfigFunc {
	return func(c *Config) {
		c.Operations = num
	}
}

func WithInitialCapacity(size int) ConfigFunc {
	return func(c *Config) {
		c.InitialCapacity = size
	}
}

func WithOutput(w io.Writer) ConfigFunc {
	return func(c *Config) {
		c.Output = w
	}
}

func WithLogger(logger logging.Logger) ConfigFunc {
	return func(c *Config) {
		c.Logger = logger
	}
}
