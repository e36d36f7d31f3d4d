package remote

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/carterkozak/dialogue"
	"github.com/pkg/errors"
)

// IsError reports whether a response falls outside the success range and
// must be decoded. Redirects count: the runtime never follows them.
func IsError(response dialogue.Response) bool {
	return response.Code() < 200 || response.Code() >= 300
}

// ErrorDecoder interprets a non-success response. Decode either returns the
// structured remote error or fails when the body cannot be read as a
// SerializableError envelope.
type ErrorDecoder interface {
	Decode(response dialogue.Response) (*Error, error)
}

// DefaultDecoder decodes the JSON SerializableError envelope.
var DefaultDecoder ErrorDecoder = jsonDecoder{}

type jsonDecoder struct{}

func (jsonDecoder) Decode(response dialogue.Response) (*Error, error) {
	contentType, ok := response.ContentType()
	if !ok || !isJSON(contentType) {
		return nil, errors.Errorf("Failed to interpret response body as SerializableError: {code=%d}", response.Code())
	}
	body := response.Body()
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to interpret response body as SerializableError: {code=%d}", response.Code())
	}
	if len(data) == 0 {
		return nil, errors.New("Failed to deserialize response body as JSON, could not deserialize SerializableError: body is empty")
	}
	var envelope SerializableError
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, errors.Wrap(err, "Failed to interpret response body as SerializableError")
	}
	if envelope.ErrorCode == "" || envelope.ErrorName == "" {
		return nil, errors.New("Failed to interpret response body as SerializableError: errorCode and errorName are required")
	}
	return &Error{
		ErrorCode:       envelope.ErrorCode,
		ErrorName:       envelope.ErrorName,
		ErrorInstanceID: envelope.ErrorInstanceID,
		Parameters:      envelope.Parameters,
		Status:          response.Code(),
	}, nil
}

// isJSON matches the application/json media type, tolerating parameters
// such as charset.
func isJSON(contentType string) bool {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.EqualFold(strings.TrimSpace(contentType), "application/json")
}
