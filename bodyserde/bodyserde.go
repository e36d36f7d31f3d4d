package bodyserde

import (
	"bytes"
	"io"

	"github.com/carterkozak/dialogue"
	"github.com/pkg/errors"
)

// Sentinel failures surfaced during content negotiation. Callers branch on
// them with errors.Is.
var (
	// ErrMissingContentType reports a response with no Content-Type header.
	ErrMissingContentType = errors.New("Response is missing Content-Type header")

	// ErrUnsupportedContentType reports a response media type no registered
	// encoding can decode.
	ErrUnsupportedContentType = errors.New("Unsupported Content-Type")

	// ErrNonEmptyBody reports response bytes on an endpoint declared to
	// return nothing.
	ErrNonEmptyBody = errors.New("Expected empty response body")
)

// Serializer produces a request body from a value.
type Serializer interface {
	Serialize(value interface{}) (dialogue.RequestBody, error)
}

// Deserializer materializes a value from a response.
type Deserializer interface {
	Deserialize(response dialogue.Response) (interface{}, error)
}

// BodySerDe negotiates request and response bodies over an ordered,
// non-empty list of encodings. The first encoding is the serialization
// default; deserialization picks the first encoding that supports the
// response's media type. A BodySerDe is immutable and shared by all calls.
type BodySerDe struct {
	encodings []Encoding
}

// New builds a BodySerDe over encodings in preference order. At least one
// encoding is required, and no two encodings may claim the same primary
// content type.
func New(encodings ...Encoding) (*BodySerDe, error) {
	if len(encodings) == 0 {
		return nil, errors.New("at least one encoding is required")
	}
	seen := make(map[string]struct{}, len(encodings))
	for _, e := range encodings {
		ct := parseMediaType(e.ContentType())
		if _, ok := seen[ct]; ok {
			return nil, errors.Errorf("multiple encodings registered for content type %q", ct)
		}
		seen[ct] = struct{}{}
	}
	return &BodySerDe{encodings: encodings}, nil
}

// Serializer returns a serializer for the marked type. Bodies are always
// produced by the default (first) encoding.
func (s *BodySerDe) Serializer(marker dialogue.TypeMarker) Serializer {
	def := s.encodings[0]
	return &encodingSerializer{
		contentType: def.ContentType(),
		serializer:  def.Serializer(marker),
	}
}

// Deserializer returns a content-negotiating deserializer for the marked
// type.
func (s *BodySerDe) Deserializer(marker dialogue.TypeMarker) Deserializer {
	deserializers := make([]ValueDeserializer, len(s.encodings))
	for i, e := range s.encodings {
		deserializers[i] = e.Deserializer(marker)
	}
	return &negotiatingDeserializer{encodings: s.encodings, deserializers: deserializers}
}

// EmptyBodyDeserializer returns the deserializer for endpoints that return
// nothing. It fails on any body byte and ignores the Content-Type header.
func (s *BodySerDe) EmptyBodyDeserializer() Deserializer {
	return emptyBodyDeserializer{}
}

type encodingSerializer struct {
	contentType string
	serializer  ValueSerializer
}

func (s *encodingSerializer) Serialize(value interface{}) (dialogue.RequestBody, error) {
	if value == nil {
		return nil, dialogue.NewPreconditionError("cannot serialize nil value", "value")
	}
	var buf bytes.Buffer
	if err := s.serializer.Serialize(value, &buf); err != nil {
		return nil, err
	}
	return NewRequestBody(buf.Bytes(), s.contentType), nil
}

type negotiatingDeserializer struct {
	encodings     []Encoding
	deserializers []ValueDeserializer
}

func (d *negotiatingDeserializer) Deserialize(response dialogue.Response) (interface{}, error) {
	header, ok := response.ContentType()
	if !ok {
		return nil, ErrMissingContentType
	}
	contentType := parseMediaType(header)
	for i, encoding := range d.encodings {
		if !encoding.SupportsContentType(contentType) {
			continue
		}
		body := response.Body()
		defer body.Close()
		value, err := d.deserializers[i].Deserialize(body)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to deserialize response stream. Syntax error?")
		}
		return value, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedContentType, "no registered encoding supports %q", contentType)
}

type emptyBodyDeserializer struct{}

func (emptyBodyDeserializer) Deserialize(response dialogue.Response) (interface{}, error) {
	body := response.Body()
	defer body.Close()
	var one [1]byte
	n, err := body.Read(one[:])
	if n > 0 {
		return nil, ErrNonEmptyBody
	}
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	return nil, nil
}
