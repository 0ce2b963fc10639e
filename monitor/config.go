package monitor

import (
	"time"

	"github.com/FerroO2000/ringq/internal/config"
)

// DefaultConfigInterval is the default sampling interval.
const DefaultConfigInterval = time.Second

// Config contains the configuration for the Monitor.
type Config struct {
	// Interval is the duration between two sampling cycles.
	Interval time.Duration
}

// NewConfig returns the default configuration for the Monitor.
func NewConfig() *Config {
	return &Config{
		Interval: DefaultConfigInterval,
	}
}

// Validate checks the configuration.
func (c *Config) Validate(ac *config.AnomalyCollector) {
	config.CheckNotNegative(ac, "Interval", &c.Interval, DefaultConfigInterval)
	config.CheckNotZero(ac, "Interval", &c.Interval, DefaultConfigInterval)
}
