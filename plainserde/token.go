package plainserde

import (
	"regexp"

	"github.com/pkg/errors"
)

// BearerToken is an opaque credential passed in headers. Its String form is
// redacted so tokens do not leak through logs.
type BearerToken string

var bearerTokenPattern = regexp.MustCompile(`^[A-Za-z0-9\-\._~\+/]+=*$`)

// NewBearerToken validates the token's character set.
func NewBearerToken(value string) (BearerToken, error) {
	if !bearerTokenPattern.MatchString(value) {
		return "", errors.New("invalid bearer token")
	}
	return BearerToken(value), nil
}

// String returns a redacted placeholder, never the token itself.
func (BearerToken) String() string { return "BearerToken(...)" }
