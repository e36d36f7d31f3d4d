package channels

import (
	"context"

	"github.com/carterkozak/dialogue"
	"github.com/carterkozak/dialogue/remote"
)

// ErrorDecodingOption sets an optional parameter for the error decoding
// channel.
type ErrorDecodingOption func(*errorDecodingChannel)

// WithErrorDecoder replaces the default SerializableError decoder.
func WithErrorDecoder(decoder remote.ErrorDecoder) ErrorDecodingOption {
	return func(c *errorDecodingChannel) { c.decoder = decoder }
}

// NewErrorDecoding wraps next so that responses outside [200, 300) are
// decoded into remote errors and surfaced on the failure path. Responses in
// the success range pass through untouched, as do failures from next.
func NewErrorDecoding(next dialogue.Channel, options ...ErrorDecodingOption) dialogue.Channel {
	c := &errorDecodingChannel{next: next, decoder: remote.DefaultDecoder}
	for _, option := range options {
		option(c)
	}
	return c
}

// ErrorDecoding returns NewErrorDecoding as a Middleware.
func ErrorDecoding(options ...ErrorDecodingOption) Middleware {
	return func(next dialogue.Channel) dialogue.Channel {
		return NewErrorDecoding(next, options...)
	}
}

type errorDecodingChannel struct {
	next    dialogue.Channel
	decoder remote.ErrorDecoder
}

func (c *errorDecodingChannel) Execute(ctx context.Context, endpoint dialogue.Endpoint, request dialogue.Request) (dialogue.Response, error) {
	response, err := c.next.Execute(ctx, endpoint, request)
	if err != nil {
		return nil, err
	}
	if !remote.IsError(response) {
		return response, nil
	}
	remoteErr, decodeErr := c.decoder.Decode(response)
	if decodeErr != nil {
		return nil, decodeErr
	}
	return nil, remoteErr
}
