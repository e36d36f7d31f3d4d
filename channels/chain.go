// Package channels contains decorator channels that layer cross-cutting
// behavior over a transport-backed channel: retries, remote-error decoding,
// circuit breaking, rate limiting, logging, and instrumentation.
//
// Composition order matters. Error decoding belongs outside retry, so that
// a decoded remote error surfaces to the caller instead of re-entering the
// retry loop; the retrying channel then reruns only transport-level
// failures. A typical client chain is
//
//	channels.Chain(
//		channels.ErrorDecoding(),
//		channels.Logging(logger),
//		channels.Retrying(3),
//	)(transport)
package channels

import (
	"github.com/carterkozak/dialogue"
)

// Middleware is a chainable behavior modifier for channels.
type Middleware func(dialogue.Channel) dialogue.Channel

// Chain composes middlewares. Calls traverse them in the order they are
// declared; the first middleware is the outermost.
func Chain(outer Middleware, others ...Middleware) Middleware {
	return func(next dialogue.Channel) dialogue.Channel {
		for i := len(others) - 1; i >= 0; i-- { // reverse
			next = others[i](next)
		}
		return outer(next)
	}
}
