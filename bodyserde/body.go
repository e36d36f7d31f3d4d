package bodyserde

import (
	"bytes"
	"io"

	"github.com/carterkozak/dialogue"
)

// NewRequestBody returns a RequestBody over a byte slice. Content is
// reproducible: every call returns a fresh reader over the same bytes, so
// retrying channels can replay the body.
func NewRequestBody(data []byte, contentType string) dialogue.RequestBody {
	return bytesBody{data: data, contentType: contentType}
}

// EmptyBody returns a zero-length RequestBody with the given content type,
// for endpoints that post no payload but still declare a body.
func EmptyBody(contentType string) dialogue.RequestBody {
	return bytesBody{contentType: contentType}
}

type bytesBody struct {
	data        []byte
	contentType string
}

func (b bytesBody) Content() io.ReadCloser {
	return io.NopCloser(bytes.NewReader(b.data))
}

func (b bytesBody) ContentType() string { return b.contentType }

func (b bytesBody) Length() (int64, bool) { return int64(len(b.data)), true }
