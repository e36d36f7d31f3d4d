package channels

import (
	"context"
	"time"

	"github.com/carterkozak/dialogue"
	"github.com/cenkalti/backoff/v4"
)

// RetryingOption sets an optional parameter for the retrying channel.
type RetryingOption func(*retryingChannel)

// WithBackoffFactory installs a backoff policy between attempts. The
// factory is invoked once per call so that policy state is never shared
// across calls. Without a policy, retries are immediate.
func WithBackoffFactory(factory func() backoff.BackOff) RetryingOption {
	return func(c *retryingChannel) { c.backoffFactory = factory }
}

// NewRetrying wraps next so that a call is attempted up to maxAttempts
// times in total, rerunning only calls that fail outright. Responses are
// successes whatever their status code, so HTTP-level errors are never
// retried here. The request body must be reproducible, which every
// bodyserde-produced body is. A cancelled call is not retried.
func NewRetrying(next dialogue.Channel, maxAttempts int, options ...RetryingOption) dialogue.Channel {
	if maxAttempts < 1 {
		panic("maxAttempts must be at least 1")
	}
	c := &retryingChannel{next: next, maxAttempts: maxAttempts}
	for _, option := range options {
		option(c)
	}
	return c
}

// Retrying returns NewRetrying as a Middleware.
func Retrying(maxAttempts int, options ...RetryingOption) Middleware {
	return func(next dialogue.Channel) dialogue.Channel {
		return NewRetrying(next, maxAttempts, options...)
	}
}

type retryingChannel struct {
	next           dialogue.Channel
	maxAttempts    int
	backoffFactory func() backoff.BackOff
}

func (c *retryingChannel) Execute(ctx context.Context, endpoint dialogue.Endpoint, request dialogue.Request) (dialogue.Response, error) {
	var policy backoff.BackOff
	if c.backoffFactory != nil {
		policy = c.backoffFactory()
	}
	var lastErr error
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 && policy != nil {
			wait := policy.NextBackOff()
			if wait == backoff.Stop {
				return nil, lastErr
			}
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
		}
		response, err := c.next.Execute(ctx, endpoint, request)
		if err == nil {
			return response, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			// The call was cancelled; the failure is final.
			return nil, err
		}
	}
	return nil, lastErr
}
