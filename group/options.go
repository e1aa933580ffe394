package group

import "github.com/ib2crun/ib2c/scheduler"

type spawnConfig struct {
	containerOptions []scheduler.Option
}

func resolveSpawnOptions(opts []SpawnOption) *spawnConfig {
	cfg := &spawnConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// SpawnOption configures every scheduler.Container created during a Spawn
// call.
type SpawnOption func(*spawnConfig)

// WithContainerOptions attaches scheduler.Options (e.g. WithLogger,
// WithMetrics) to every container the Spawn call creates.
func WithContainerOptions(opts ...scheduler.Option) SpawnOption {
	return func(c *spawnConfig) {
		c.containerOptions = append(c.containerOptions, opts...)
	}
}
