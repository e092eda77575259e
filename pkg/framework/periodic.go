package framework

import (
	"context"
	"time"

	"github.com/golang/glog"
)

// Periodic is a Runnable calling Fn every Interval. Errors from Fn are
// logged unless StopOnError is set, in which case Run returns the error.
type Periodic struct {
	Interval    time.Duration
	StopOnError bool
	Fn          func(ctx context.Context, now time.Time) error

	wakeUpCh chan struct{}
}

// DefaultInterval is used when Periodic.Interval is not set.
const DefaultInterval = 100 * time.Millisecond

// NewPeriodic creates a Periodic.
func NewPeriodic(interval time.Duration, fn func(context.Context, time.Time) error) *Periodic {
	return &Periodic{Interval: interval, Fn: fn, wakeUpCh: make(chan struct{}, 1)}
}

// TriggerNext makes the next call happen without waiting for the ticker.
func (p *Periodic) TriggerNext() {
	select {
	case p.wakeUpCh <- struct{}{}:
	default:
	}
}

// Run implements Runnable.
func (p *Periodic) Run(ctx context.Context) error {
	if p.wakeUpCh == nil {
		p.wakeUpCh = make(chan struct{}, 1)
	}
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		var now time.Time
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now = <-ticker.C:
		case <-p.wakeUpCh:
			now = time.Now()
		}
		if err := p.Fn(ctx, now); err != nil {
			if p.StopOnError {
				return err
			}
			glog.Errorf("periodic task error: %v", err)
		}
	}
}
