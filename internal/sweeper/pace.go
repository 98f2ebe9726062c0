package sweeper

import (
	"context"
	"go.uber.org/ratelimit"
)

// pace signals a sweep at most perSecond times a second until ctx is done, then
// closes the channel. Idle time is not saved up: a sweeper that falls behind
// resumes at the configured rate instead of bursting.
func pace(ctx context.Context, perSecond int) <-chan struct{} {
	limiter := ratelimit.New(max(perSecond, 1), ratelimit.WithoutSlack)
	sweeps := make(chan struct{}, 1)
	go func() {
		defer close(sweeps)
		for {
			limiter.Take()
			select {
			case <-ctx.Done():
				return
			case sweeps <- struct{}{}:
			}
		}
	}()
	return sweeps
}
