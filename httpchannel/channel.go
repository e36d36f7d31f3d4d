// Package httpchannel provides the transport-backed channel: it renders an
// Endpoint and Request into an HTTP request against a base URL, performs the
// exchange with a net/http client, and conveys the response as-is. It never
// retries, never decodes error bodies, and never follows redirects; those
// concerns belong to decorator channels and the error decoder.
package httpchannel

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/carterkozak/dialogue"
	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"
)

// Channel issues calls against a single base URL.
type Channel struct {
	client  *http.Client
	baseURL *url.URL
	logger  log.Logger
}

// Option sets an optional parameter for the channel.
type Option func(*Channel)

// WithClient sets the underlying HTTP client used for requests. By default,
// a client equivalent to http.DefaultClient is used. The channel disables
// redirect following on a copy of the provided client; responses with 3xx
// statuses are conveyed to the caller like any other.
func WithClient(client *http.Client) Option {
	return func(c *Channel) {
		clone := *client
		c.client = &clone
	}
}

// WithLogger sets a logger for per-request debug lines. By default nothing
// is logged.
func WithLogger(logger log.Logger) Option {
	return func(c *Channel) { c.logger = logger }
}

// New constructs a Channel for the given base URL. The base URL's path, if
// any, prefixes every endpoint path.
func New(baseURL string, options ...Option) (*Channel, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base url %q", baseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.Errorf("unsupported scheme %q", parsed.Scheme)
	}
	c := &Channel{
		client:  &http.Client{},
		baseURL: parsed,
		logger:  log.NewNopLogger(),
	}
	for _, option := range options {
		option(c)
	}
	c.client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return c, nil
}

// Execute implements dialogue.Channel.
func (c *Channel) Execute(ctx context.Context, endpoint dialogue.Endpoint, request dialogue.Request) (dialogue.Response, error) {
	builder, err := dialogue.URLBuilderFromURL(c.baseURL)
	if err != nil {
		return nil, TransportError{Domain: DomainNewRequest, Err: err}
	}
	if err := endpoint.RenderPath(request.PathParams(), builder); err != nil {
		return nil, err
	}
	for _, param := range request.QueryParams() {
		builder.QueryParam(param.Key, param.Value)
	}
	target := builder.Build()

	httpReq, err := http.NewRequestWithContext(ctx, string(endpoint.Method()), target, nil)
	if err != nil {
		return nil, TransportError{Domain: DomainNewRequest, Err: err}
	}
	if body := request.Body(); body != nil {
		httpReq.Body = body.Content()
		httpReq.GetBody = func() (io.ReadCloser, error) { return body.Content(), nil }
		if length, ok := body.Length(); ok {
			httpReq.ContentLength = length
		}
		httpReq.Header.Set("Content-Type", body.ContentType())
	}
	// Header names are copied verbatim, preserving the caller's casing and
	// the multimap's insertion order.
	for _, param := range request.HeaderParams() {
		httpReq.Header[param.Key] = append(httpReq.Header[param.Key], param.Value)
	}

	c.logger.Log("method", httpReq.Method, "url", target)
	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, TransportError{Domain: DomainDo, Err: err}
	}
	return &transportResponse{response: httpResp}, nil
}

type transportResponse struct {
	response *http.Response
}

func (r *transportResponse) Body() io.ReadCloser { return r.response.Body }

func (r *transportResponse) Code() int { return r.response.StatusCode }

func (r *transportResponse) ContentType() (string, bool) {
	value := r.response.Header.Get("Content-Type")
	if value == "" {
		return "", false
	}
	return value, true
}
