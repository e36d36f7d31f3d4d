package bodyserde

import (
	"io"
	"reflect"
	"strings"

	"github.com/carterkozak/dialogue"
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
)

// Protobuf returns the application/x-protobuf encoding. Marked types must
// be pointers to generated message structs.
func Protobuf() Encoding { return protoEncoding{} }

type protoEncoding struct{}

func (protoEncoding) ContentType() string { return "application/x-protobuf" }

func (protoEncoding) SupportsContentType(contentType string) bool {
	return strings.EqualFold(contentType, "application/x-protobuf") ||
		strings.EqualFold(contentType, "application/protobuf")
}

func (protoEncoding) Serializer(marker dialogue.TypeMarker) ValueSerializer {
	return ValueSerializerFunc(func(value interface{}, w io.Writer) error {
		message, ok := value.(proto.Message)
		if !ok {
			return errors.Errorf("protobuf cannot encode %s", marker)
		}
		data, err := proto.Marshal(message)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	})
}

func (protoEncoding) Deserializer(marker dialogue.TypeMarker) ValueDeserializer {
	return ValueDeserializerFunc(func(r io.Reader) (interface{}, error) {
		t := marker.Type()
		if t.Kind() != reflect.Ptr {
			return nil, errors.Errorf("protobuf cannot decode %s", marker)
		}
		message, ok := reflect.New(t.Elem()).Interface().(proto.Message)
		if !ok {
			return nil, errors.Errorf("protobuf cannot decode %s", marker)
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if err := proto.Unmarshal(data, message); err != nil {
			return nil, err
		}
		return message, nil
	})
}
