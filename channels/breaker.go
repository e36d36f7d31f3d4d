package channels

import (
	"context"

	"github.com/carterkozak/dialogue"
	"github.com/sony/gobreaker"
)

// NewCircuitBreaker wraps next with a sony/gobreaker circuit breaker. Only
// outright call failures count against the breaker's error count; responses
// with error statuses do not trip it unless an error decoding channel sits
// between the breaker and the transport.
//
// See https://godoc.org/github.com/sony/gobreaker for breaker settings.
func NewCircuitBreaker(next dialogue.Channel, cb *gobreaker.CircuitBreaker) dialogue.Channel {
	return dialogue.ChannelFunc(func(ctx context.Context, endpoint dialogue.Endpoint, request dialogue.Request) (dialogue.Response, error) {
		result, err := cb.Execute(func() (interface{}, error) {
			return next.Execute(ctx, endpoint, request)
		})
		if err != nil {
			return nil, err
		}
		return result.(dialogue.Response), nil
	})
}

// CircuitBreaker returns NewCircuitBreaker as a Middleware.
func CircuitBreaker(cb *gobreaker.CircuitBreaker) Middleware {
	return func(next dialogue.Channel) dialogue.Channel {
		return NewCircuitBreaker(next, cb)
	}
}
