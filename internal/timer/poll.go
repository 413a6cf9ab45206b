package timer

import (
	"context"
	"sync"
	"time"
)

// Interval is the refresh cadence of live timers.
const Interval = time.Second

// Poll calls a function on a fixed interval until stopped. One Poll backs
// one visible timer; there is no coordination between polls.
type Poll struct {
	interval time.Duration
	fn       func(time.Time)
}

// NewPoll returns a Poll calling fn every interval. A non-positive interval
// means Interval.
func NewPoll(interval time.Duration, fn func(time.Time)) *Poll {
	if interval <= 0 {
		interval = Interval
	}
	return &Poll{interval: interval, fn: fn}
}

// Start begins ticking. The returned stop function ends the poll and waits
// for the goroutine to exit; calling it more than once is safe. Cancelling
// ctx also ends the poll.
func (p *Poll) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				p.fn(now)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}
