package bodyserde

import (
	"github.com/carterkozak/dialogue"
	"github.com/pkg/errors"
)

// TypedSerializer restores static typing over an untyped Serializer.
// Generated stubs hold one per body argument type.
type TypedSerializer[T any] struct {
	inner Serializer
}

// SerializerFor returns a typed serializer for T using the serde's default
// encoding.
func SerializerFor[T any](serde *BodySerDe) TypedSerializer[T] {
	return TypedSerializer[T]{inner: serde.Serializer(dialogue.MarkerOf[T]())}
}

// Serialize encodes value into a reproducible request body.
func (s TypedSerializer[T]) Serialize(value T) (dialogue.RequestBody, error) {
	return s.inner.Serialize(value)
}

// TypedDeserializer restores static typing over an untyped Deserializer.
// Generated stubs hold one per result type.
type TypedDeserializer[T any] struct {
	inner Deserializer
}

// DeserializerFor returns a typed content-negotiating deserializer for T.
func DeserializerFor[T any](serde *BodySerDe) TypedDeserializer[T] {
	return TypedDeserializer[T]{inner: serde.Deserializer(dialogue.MarkerOf[T]())}
}

// Deserialize negotiates the response content type and decodes the body
// into a T.
func (d TypedDeserializer[T]) Deserialize(response dialogue.Response) (T, error) {
	var zero T
	value, err := d.inner.Deserialize(response)
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, errors.Errorf("deserializer produced %T, expected %s", value, dialogue.MarkerOf[T]())
	}
	return typed, nil
}
