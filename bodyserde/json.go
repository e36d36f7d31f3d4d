package bodyserde

import (
	"encoding/json"
	"io"
	"reflect"
	"strings"

	"github.com/carterkozak/dialogue"
)

// JSON returns the application/json encoding, the conventional default for
// generated clients.
func JSON() Encoding { return jsonEncoding{} }

type jsonEncoding struct{}

func (jsonEncoding) ContentType() string { return "application/json" }

func (jsonEncoding) SupportsContentType(contentType string) bool {
	return strings.EqualFold(contentType, "application/json")
}

func (jsonEncoding) Serializer(_ dialogue.TypeMarker) ValueSerializer {
	return ValueSerializerFunc(func(value interface{}, w io.Writer) error {
		return json.NewEncoder(w).Encode(value)
	})
}

func (jsonEncoding) Deserializer(marker dialogue.TypeMarker) ValueDeserializer {
	return ValueDeserializerFunc(func(r io.Reader) (interface{}, error) {
		target := reflect.New(marker.Type())
		if err := json.NewDecoder(r).Decode(target.Interface()); err != nil {
			return nil, err
		}
		return target.Elem().Interface(), nil
	})
}
