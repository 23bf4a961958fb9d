package ingester

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultPollInterval  = 5 * time.Second
	defaultRetryInterval = 5 * time.Second
	maxRetryInterval     = 2 * time.Minute
)

// newRetryBackOff doubles the delay from initial up to maxInterval and never gives up.
func newRetryBackOff(initial, maxInterval time.Duration) backoff.BackOff {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     initial,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         maxInterval,
		MaxElapsedTime:      0,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	b.Reset()
	return b
}
