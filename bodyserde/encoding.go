// Package bodyserde serializes and deserializes request and response bodies.
// A BodySerDe negotiates among an ordered registry of content-type-tagged
// Encodings: the first encoding is the serialization default, and response
// deserialization selects the first encoding that supports the response's
// media type.
package bodyserde

import (
	"io"
	"strings"

	"github.com/carterkozak/dialogue"
)

// Encoding is a content-type-tagged codec plugin. Implementations are
// registered at runtime construction and shared by concurrent calls.
type Encoding interface {
	// ContentType returns the primary media type the encoding produces.
	ContentType() string

	// SupportsContentType reports whether the encoding can decode the given
	// media type. The argument is a bare type/subtype with parameters
	// already stripped. An encoding always supports its own ContentType.
	SupportsContentType(contentType string) bool

	// Serializer returns the encoder for values of the marked type.
	Serializer(marker dialogue.TypeMarker) ValueSerializer

	// Deserializer returns the decoder for values of the marked type.
	Deserializer(marker dialogue.TypeMarker) ValueDeserializer
}

// ValueSerializer writes one value to an output stream.
type ValueSerializer interface {
	Serialize(value interface{}, w io.Writer) error
}

// ValueSerializerFunc is an adapter to allow use of ordinary functions as
// ValueSerializers.
type ValueSerializerFunc func(value interface{}, w io.Writer) error

// Serialize implements ValueSerializer by calling f.
func (f ValueSerializerFunc) Serialize(value interface{}, w io.Writer) error {
	return f(value, w)
}

// ValueDeserializer reads one value from an input stream.
type ValueDeserializer interface {
	Deserialize(r io.Reader) (interface{}, error)
}

// ValueDeserializerFunc is an adapter to allow use of ordinary functions as
// ValueDeserializers.
type ValueDeserializerFunc func(r io.Reader) (interface{}, error)

// Deserialize implements ValueDeserializer by calling f.
func (f ValueDeserializerFunc) Deserialize(r io.Reader) (interface{}, error) {
	return f(r)
}

// parseMediaType reduces a Content-Type header value to its lowercase
// type/subtype, discarding parameters such as charset.
func parseMediaType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
