package marketmaster

import (
	"github.com/rs/zerolog"

	"github.com/jugandoyeducando/marketmaster/pkg/errors"
	"github.com/jugandoyeducando/marketmaster/pkg/logging"
	"github.com/jugandoyeducando/marketmaster/pkg/platforms"
)

// config holds run-level settings assembled from options.
type config struct {
	logger    zerolog.Logger
	platform  *platforms.Config
	overrides platforms.Overrides
}

func defaultConfig() *config {
	return &config{logger: *logging.Default()}
}

// Option configures a run.
type Option func(*config) error

// WithLogger sets the run's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

// WithPlatformConfig bypasses the registry and runs with the given
// adapter configuration. RunSpec.Platform is ignored.
func WithPlatformConfig(cfg platforms.Config) Option {
	return func(c *config) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		c.platform = &cfg
		return nil
	}
}

// WithOverrides applies deployment overrides on top of the registered
// configuration.
func WithOverrides(o platforms.Overrides) Option {
	return func(c *config) error {
		c.overrides = o
		return nil
	}
}

// WithOverridesFile loads deployment overrides from a YAML file.
func WithOverridesFile(path string) Option {
	return func(c *config) error {
		o, err := platforms.LoadOverrides(path)
		if err != nil {
			return err
		}
		c.overrides = o
		return nil
	}
}

// resolvePlatform produces the effective adapter configuration for the
// run: an explicit config, or the registry entry with overrides applied.
func (c *config) resolvePlatform(id string) (platforms.Config, error) {
	if c.platform != nil {
		return *c.platform, nil
	}
	if id == "" {
		return platforms.Config{}, errors.NewConfigError("run", "platform id is required", nil)
	}

	cfg, err := platforms.Get(id)
	if err != nil {
		return platforms.Config{}, err
	}
	if o, ok := c.overrides[cfg.ID]; ok {
		return cfg.Apply(o)
	}
	return cfg, nil
}
