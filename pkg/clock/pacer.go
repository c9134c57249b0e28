package clock

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces ticks out in wall-clock time for live display.
// The zero interval disables pacing.
type Pacer struct {
	interval time.Duration
	limiter  *rate.Limiter
}

// NewPacer creates a pacer that lets one tick through per interval.
func NewPacer(interval time.Duration) *Pacer {
	p := &Pacer{interval: interval}
	if interval > 0 {
		p.limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
	return p
}

// Interval returns the configured spacing between ticks.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Wait blocks until the next tick may proceed or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.limiter == nil {
		return ctx.Err()
	}
	return p.limiter.Wait(ctx)
}
