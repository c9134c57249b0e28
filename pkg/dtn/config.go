package dtn

import (
	"fmt"

	"github.com/nikitakosatka/dtnsim/pkg/clock"
	"github.com/nikitakosatka/dtnsim/pkg/contact"
	"github.com/nikitakosatka/dtnsim/pkg/mobility"
)

// Config holds all configuration options for a simulation run.
type Config struct {
	// Ticks is the number of ticks to run
	Ticks int

	// Mobility configuration
	Mobility *mobility.Model

	// Contact configuration
	Contact *contact.Detector

	// Policy selects the relay rule
	Policy Policy

	// Rand is the random source driving mobility
	Rand mobility.Source
}

// Option is a function that modifies the Config.
type Option func(*Config)

// WithTicks sets the tick budget.
func WithTicks(ticks int) Option {
	return func(c *Config) {
		c.Ticks = ticks
	}
}

// WithMobility sets the mobility model.
func WithMobility(m *mobility.Model) Option {
	return func(c *Config) {
		c.Mobility = m
	}
}

// WithContactRange sets the proximity threshold.
func WithContactRange(r int) Option {
	return func(c *Config) {
		c.Contact = contact.NewDetector(r)
	}
}

// WithPolicy sets the relay policy.
func WithPolicy(p Policy) Option {
	return func(c *Config) {
		c.Policy = p
	}
}

// WithRand sets the random source. Seed it to make runs reproducible.
func WithRand(rng mobility.Source) Option {
	return func(c *Config) {
		c.Rand = rng
	}
}

// WithSeed uses a math/rand source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.Rand = mobility.NewSource(seed)
	}
}

// NewConfig creates a new Config with default values.
func NewConfig(opts ...Option) *Config {
	config := &Config{
		Ticks:    clock.DefaultTicks,
		Mobility: mobility.NewRandomWalk(mobility.DefaultMaxStep),
		Contact:  contact.NewDetector(contact.DefaultRange),
		Policy:   SourceOnly,
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.Rand == nil {
		config.Rand = mobility.NewSource(0)
	}

	return config
}

// Validate checks the configuration before a run starts.
func (c *Config) Validate() error {
	if c.Ticks < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeTicks, c.Ticks)
	}
	if c.Mobility == nil || c.Mobility.MaxStep < 0 {
		return fmt.Errorf("%w: mobility model", ErrInvalidConfig)
	}
	if c.Contact == nil || c.Contact.Range < 0 {
		return fmt.Errorf("%w: contact range", ErrInvalidConfig)
	}
	if c.Rand == nil {
		return fmt.Errorf("%w: random source", ErrInvalidConfig)
	}
	if _, err := ParsePolicy(string(c.Policy)); err != nil {
		return err
	}
	return nil
}
