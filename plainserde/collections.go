package plainserde

import (
	"sort"
)

// SerializeList encodes each element in order. Lists preserve the caller's
// element order on the wire.
func SerializeList[T any](values []T, serialize func(T) string) []string {
	encoded := make([]string, 0, len(values))
	for _, v := range values {
		encoded = append(encoded, serialize(v))
	}
	return encoded
}

// SerializeSet encodes each element and sorts the encoded forms so that a
// set serializes in a deterministic order regardless of iteration order.
func SerializeSet[T any](values []T, serialize func(T) string) []string {
	encoded := SerializeList(values, serialize)
	sort.Strings(encoded)
	return encoded
}

// SerializeOptional encodes a present value; an absent value reports
// ok=false and the parameter is omitted from the request entirely.
func SerializeOptional[T any](value *T, serialize func(T) string) (string, bool) {
	if value == nil {
		return "", false
	}
	return serialize(*value), true
}

// DeserializeList decodes each element in order, failing on the first
// invalid element.
func DeserializeList[T any](values []string, deserialize func(string) (T, error)) ([]T, error) {
	decoded := make([]T, 0, len(values))
	for _, v := range values {
		d, err := deserialize(v)
		if err != nil {
			return nil, err
		}
		decoded = append(decoded, d)
	}
	return decoded, nil
}
