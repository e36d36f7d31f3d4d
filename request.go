package dialogue

import (
	"io"
)

// Param is one key/value pair of a header or query multimap. Multimaps are
// represented as ordered pair slices so that repeated keys keep their
// insertion order all the way to the wire.
type Param struct {
	Key   string
	Value string
}

// RequestBody is a content-typed byte source for a request. Content must be
// reproducible: a retrying channel may consume it once per attempt.
type RequestBody interface {
	// Content returns a fresh reader over the body bytes. Each call starts
	// from the beginning.
	Content() io.ReadCloser

	// ContentType returns the media type of the body.
	ContentType() string

	// Length returns the byte count of Content when known.
	Length() (int64, bool)
}

// Request describes a single RPC exchange at the runtime boundary. All keys
// and values are pre-encoded strings produced by plainserde; the body, if
// present, is produced by a bodyserde serializer. Requests are immutable
// values constructed by stubs via NewRequest and consumed by channels.
type Request struct {
	pathParams   map[string]string
	headerParams []Param
	queryParams  []Param
	body         RequestBody
}

// PathParams returns the path template variables of the request. The
// returned map must not be mutated.
func (r Request) PathParams() map[string]string { return r.pathParams }

// HeaderParams returns the header multimap in insertion order. The returned
// slice must not be mutated.
func (r Request) HeaderParams() []Param { return r.headerParams }

// QueryParams returns the query multimap in insertion order. The returned
// slice must not be mutated.
func (r Request) QueryParams() []Param { return r.queryParams }

// Body returns the request body, or nil for bodiless requests.
func (r Request) Body() RequestBody { return r.body }

// RequestBuilder accumulates the parts of a Request. The zero value is
// ready to use via NewRequest.
type RequestBuilder struct {
	request Request
}

// NewRequest returns an empty RequestBuilder.
func NewRequest() *RequestBuilder {
	return &RequestBuilder{}
}

// PutPathParam records the value for one path template variable.
func (b *RequestBuilder) PutPathParam(key, value string) *RequestBuilder {
	if b.request.pathParams == nil {
		b.request.pathParams = make(map[string]string)
	}
	b.request.pathParams[key] = value
	return b
}

// PutHeaderParam appends one header value. Keys are preserved as given;
// repeated keys produce repeated headers.
func (b *RequestBuilder) PutHeaderParam(key, value string) *RequestBuilder {
	b.request.headerParams = append(b.request.headerParams, Param{Key: key, Value: value})
	return b
}

// PutAllHeaderParams appends one header value per element of values.
func (b *RequestBuilder) PutAllHeaderParams(key string, values ...string) *RequestBuilder {
	for _, v := range values {
		b.PutHeaderParam(key, v)
	}
	return b
}

// PutQueryParam appends one query value. Repeated keys repeat in the
// rendered URL in insertion order.
func (b *RequestBuilder) PutQueryParam(key, value string) *RequestBuilder {
	b.request.queryParams = append(b.request.queryParams, Param{Key: key, Value: value})
	return b
}

// PutAllQueryParams appends one query value per element of values.
func (b *RequestBuilder) PutAllQueryParams(key string, values ...string) *RequestBuilder {
	for _, v := range values {
		b.PutQueryParam(key, v)
	}
	return b
}

// Body sets the request body.
func (b *RequestBuilder) Body(body RequestBody) *RequestBuilder {
	b.request.body = body
	return b
}

// Build returns the accumulated Request. The builder must not be reused.
func (b *RequestBuilder) Build() Request {
	return b.request
}
