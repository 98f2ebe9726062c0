package tieredcache

import "github.com/benbjohnson/clock"

type options struct {
	clock clock.Clock
}

type Option func(*options)

// WithClock replaces the wall clock used for session expiry, mostly for tests.
func WithClock(clk clock.Clock) Option {
	return func(o *options) { o.clock = clk }
}

func applyOptions(opts []Option) options {
	o := options{clock: clock.New()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
