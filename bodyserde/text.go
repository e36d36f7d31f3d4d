package bodyserde

import (
	"io"
	"reflect"
	"strings"

	"github.com/carterkozak/dialogue"
	"github.com/pkg/errors"
)

// PlainText returns the text/plain encoding. It codecs string values only.
func PlainText() Encoding { return textEncoding{} }

type textEncoding struct{}

func (textEncoding) ContentType() string { return "text/plain" }

func (textEncoding) SupportsContentType(contentType string) bool {
	return strings.EqualFold(contentType, "text/plain")
}

func (textEncoding) Serializer(marker dialogue.TypeMarker) ValueSerializer {
	return ValueSerializerFunc(func(value interface{}, w io.Writer) error {
		s, ok := value.(string)
		if !ok {
			return errors.Errorf("text/plain cannot encode %s", marker)
		}
		_, err := io.WriteString(w, s)
		return err
	})
}

func (textEncoding) Deserializer(marker dialogue.TypeMarker) ValueDeserializer {
	return ValueDeserializerFunc(func(r io.Reader) (interface{}, error) {
		if marker.Type() != reflect.TypeOf("") {
			return nil, errors.Errorf("text/plain cannot decode %s", marker)
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return string(data), nil
	})
}
