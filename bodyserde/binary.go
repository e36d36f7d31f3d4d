package bodyserde

import (
	"io"
	"reflect"
	"strings"

	"github.com/carterkozak/dialogue"
	"github.com/pkg/errors"
)

// OctetStream returns the application/octet-stream encoding for raw byte
// slice bodies.
func OctetStream() Encoding { return binaryEncoding{} }

type binaryEncoding struct{}

func (binaryEncoding) ContentType() string { return "application/octet-stream" }

func (binaryEncoding) SupportsContentType(contentType string) bool {
	return strings.EqualFold(contentType, "application/octet-stream")
}

func (binaryEncoding) Serializer(marker dialogue.TypeMarker) ValueSerializer {
	return ValueSerializerFunc(func(value interface{}, w io.Writer) error {
		data, ok := value.([]byte)
		if !ok {
			return errors.Errorf("application/octet-stream cannot encode %s", marker)
		}
		_, err := w.Write(data)
		return err
	})
}

func (binaryEncoding) Deserializer(marker dialogue.TypeMarker) ValueDeserializer {
	return ValueDeserializerFunc(func(r io.Reader) (interface{}, error) {
		if marker.Type() != reflect.TypeOf([]byte(nil)) {
			return nil, errors.Errorf("application/octet-stream cannot decode %s", marker)
		}
		return io.ReadAll(r)
	})
}
