package channels

import (
	"context"
	"errors"
	"time"

	"github.com/carterkozak/dialogue"
	"github.com/juju/ratelimit"
)

// ErrLimited is returned when the rate limiter rejects a call.
var ErrLimited = errors.New("rate limit exceeded")

// NewRateLimited wraps next with a token-bucket rate limiter. Calls that
// would exceed the maximum rate are rejected with ErrLimited.
func NewRateLimited(next dialogue.Channel, bucket *ratelimit.Bucket) dialogue.Channel {
	return dialogue.ChannelFunc(func(ctx context.Context, endpoint dialogue.Endpoint, request dialogue.Request) (dialogue.Response, error) {
		if bucket.TakeAvailable(1) == 0 {
			return nil, ErrLimited
		}
		return next.Execute(ctx, endpoint, request)
	})
}

// NewThrottled wraps next with a token-bucket throttler. Calls that would
// exceed the maximum rate are delayed until a token is available or the
// context is done.
func NewThrottled(next dialogue.Channel, bucket *ratelimit.Bucket) dialogue.Channel {
	return dialogue.ChannelFunc(func(ctx context.Context, endpoint dialogue.Endpoint, request dialogue.Request) (dialogue.Response, error) {
		wait := bucket.Take(1)
		if wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			}
			timer.Stop()
		}
		return next.Execute(ctx, endpoint, request)
	})
}

// RateLimited returns NewRateLimited as a Middleware.
func RateLimited(bucket *ratelimit.Bucket) Middleware {
	return func(next dialogue.Channel) dialogue.Channel {
		return NewRateLimited(next, bucket)
	}
}
