package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrUnavailable is returned when the Redis server cannot be reached.
var ErrUnavailable = errors.New("cache unavailable")

// connectAttempts is how often a backend is pinged before Open gives up.
const connectAttempts = 3

// retryDelay is the pause after the first failed ping; it doubles after each
// further failure. Tests shorten it.
var retryDelay = 100 * time.Millisecond

// waitReachable pings a backend until it answers, the attempts run out or
// ctx ends. Failures are reported as ErrUnavailable with the last cause.
func waitReachable(ctx context.Context, ping func(context.Context) error) error {
	delay := retryDelay
	var last error
	for attempt := 1; ; attempt++ {
		last = ping(ctx)
		if last == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if attempt == connectAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return fmt.Errorf("%w after %d attempts: %v", ErrUnavailable, connectAttempts, last)
}
