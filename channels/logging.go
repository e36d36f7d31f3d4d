package channels

import (
	"context"
	"time"

	"github.com/carterkozak/dialogue"
	"github.com/go-kit/kit/log"
)

// NewLogging wraps next so that every call logs its method, outcome, and
// duration as structured keyvals.
func NewLogging(next dialogue.Channel, logger log.Logger) dialogue.Channel {
	return dialogue.ChannelFunc(func(ctx context.Context, endpoint dialogue.Endpoint, request dialogue.Request) (dialogue.Response, error) {
		begin := time.Now()
		response, err := next.Execute(ctx, endpoint, request)
		keyvals := []interface{}{
			"method", string(endpoint.Method()),
			"took", time.Since(begin),
		}
		if err != nil {
			keyvals = append(keyvals, "err", err)
		} else {
			keyvals = append(keyvals, "status", response.Code())
		}
		logger.Log(keyvals...)
		return response, err
	})
}

// Logging returns NewLogging as a Middleware.
func Logging(logger log.Logger) Middleware {
	return func(next dialogue.Channel) dialogue.Channel {
		return NewLogging(next, logger)
	}
}
