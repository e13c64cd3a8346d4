package janitor

import "time"

// Config controls the draft sweeper loop.
type Config struct {
	SweepInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		SweepInterval: 5 * time.Minute,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.SweepInterval <= 0 {
		c.SweepInterval = defaults.SweepInterval
	}
	return c
}
