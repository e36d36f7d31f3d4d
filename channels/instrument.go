package channels

import (
	"context"
	"strconv"
	"time"

	"github.com/carterkozak/dialogue"
	"github.com/go-kit/kit/metrics"
)

// NewInstrumented wraps next so that every call increments requestCount,
// labeled by method and success, and observes its duration in seconds on
// requestLatency.
func NewInstrumented(next dialogue.Channel, requestCount metrics.Counter, requestLatency metrics.Histogram) dialogue.Channel {
	return dialogue.ChannelFunc(func(ctx context.Context, endpoint dialogue.Endpoint, request dialogue.Request) (response dialogue.Response, err error) {
		defer func(begin time.Time) {
			labels := []string{
				"method", string(endpoint.Method()),
				"success", strconv.FormatBool(err == nil),
			}
			requestCount.With(labels...).Add(1)
			requestLatency.With(labels...).Observe(time.Since(begin).Seconds())
		}(time.Now())
		response, err = next.Execute(ctx, endpoint, request)
		return
	})
}

// Instrumented returns NewInstrumented as a Middleware.
func Instrumented(requestCount metrics.Counter, requestLatency metrics.Histogram) Middleware {
	return func(next dialogue.Channel) dialogue.Channel {
		return NewInstrumented(next, requestCount, requestLatency)
	}
}
