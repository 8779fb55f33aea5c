package lang

import (
	"time"

	"github.com/ardnew/reldate/log"
	"github.com/ardnew/reldate/zoned"
)

// Option configures evaluation.
type Option func(*config)

type config struct {
	clock     func() time.Time
	logger    log.Logger
	zone      zoned.Zone
	weekStart time.Weekday
}

func makeConfig(opts ...Option) config {
	cfg := config{
		clock:     time.Now,
		zone:      zoned.Local,
		weekStart: time.Sunday,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// now reads the clock once and binds the result to the configured zone.
func (c config) now() zoned.Time {
	return zoned.At(c.clock(), c.zone).WithWeekStart(c.weekStart)
}

// WithZone sets the zone that "now" and every calendar operation use.
// The default is [zoned.Local].
func WithZone(zone zoned.Zone) Option {
	return func(c *config) {
		c.zone = zone
	}
}

// WithClock sets the time source read once per evaluation.
// A nil clock restores [time.Now].
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		if clock == nil {
			clock = time.Now
		}

		c.clock = clock
	}
}

// WithWeekStart sets the first day of the week for the 'w' unit.
// The default is Sunday.
func WithWeekStart(day time.Weekday) Option {
	return func(c *config) {
		c.weekStart = day % 7
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
