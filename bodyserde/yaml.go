package bodyserde

import (
	"io"
	"reflect"
	"strings"

	"github.com/carterkozak/dialogue"
	yaml "gopkg.in/yaml.v2"
)

// YAML returns the application/yaml encoding.
func YAML() Encoding { return yamlEncoding{} }

type yamlEncoding struct{}

func (yamlEncoding) ContentType() string { return "application/yaml" }

func (yamlEncoding) SupportsContentType(contentType string) bool {
	return strings.EqualFold(contentType, "application/yaml") ||
		strings.EqualFold(contentType, "application/x-yaml") ||
		strings.EqualFold(contentType, "text/yaml")
}

func (yamlEncoding) Serializer(_ dialogue.TypeMarker) ValueSerializer {
	return ValueSerializerFunc(func(value interface{}, w io.Writer) error {
		data, err := yaml.Marshal(value)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	})
}

func (yamlEncoding) Deserializer(marker dialogue.TypeMarker) ValueDeserializer {
	return ValueDeserializerFunc(func(r io.Reader) (interface{}, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		target := reflect.New(marker.Type())
		if err := yaml.Unmarshal(data, target.Interface()); err != nil {
			return nil, err
		}
		return target.Elem().Interface(), nil
	})
}
