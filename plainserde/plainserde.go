// Package plainserde encodes and decodes the atomic scalar values that
// appear in request paths, headers, and query parameters. Encoders produce the
// canonical wire string for their type (SerializeDouble fails for non-finite
// values); decoders validate their input and reject malformed values, though
// some accept more than the canonical form, such as any date-time offset.
package plainserde

import (
	"encoding/base64"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// SerDe is the plain-parameter codec handed to generated stubs via the
// runtime facade. It is stateless and safe for concurrent use.
type SerDe struct{}

// SerializeString returns the value unchanged. Percent-encoding is applied
// later by the URL builder, never here.
func (SerDe) SerializeString(value string) string { return value }

// DeserializeString returns the value unchanged.
func (SerDe) DeserializeString(value string) (string, error) { return value, nil }

// SerializeInteger encodes a signed 32-bit integer in decimal.
func (SerDe) SerializeInteger(value int32) string {
	return strconv.FormatInt(int64(value), 10)
}

// DeserializeInteger decodes a signed 32-bit decimal integer.
func (SerDe) DeserializeInteger(value string) (int32, error) {
	parsed, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer %q", value)
	}
	return int32(parsed), nil
}

// SerializeSafeLong encodes a SafeLong in decimal. Range validation happens
// when the SafeLong is constructed.
func (SerDe) SerializeSafeLong(value SafeLong) string {
	return strconv.FormatInt(int64(value), 10)
}

// DeserializeSafeLong decodes a decimal integer within the safe 53-bit
// range.
func (SerDe) DeserializeSafeLong(value string) (SafeLong, error) {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid safelong %q", value)
	}
	return NewSafeLong(parsed)
}

// SerializeDouble encodes a float64 using the shortest decimal form that
// round-trips. NaN and infinities have no plain representation and are
// rejected.
func (SerDe) SerializeDouble(value float64) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", errors.Errorf("cannot serialize non-finite double %v", value)
	}
	return strconv.FormatFloat(value, 'g', -1, 64), nil
}

// DeserializeDouble decodes an IEEE-754 textual double, including NaN and
// the infinities.
func (SerDe) DeserializeDouble(value string) (float64, error) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid double %q", value)
	}
	return parsed, nil
}

// SerializeBoolean encodes a bool as lowercase true or false.
func (SerDe) SerializeBoolean(value bool) string {
	return strconv.FormatBool(value)
}

// DeserializeBoolean decodes exactly "true" or "false".
func (SerDe) DeserializeBoolean(value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errors.Errorf("invalid boolean %q", value)
}

// SerializeDateTime encodes an instant as ISO-8601 extended, normalized to
// UTC with the Z designator.
func (SerDe) SerializeDateTime(value time.Time) string {
	return value.UTC().Format(time.RFC3339Nano)
}

// DeserializeDateTime decodes an ISO-8601 instant with any offset. The
// offset is preserved in the returned time.
func (SerDe) DeserializeDateTime(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date-time %q", value)
	}
	return parsed, nil
}

// SerializeUUID encodes a UUID in the canonical lowercase 8-4-4-4-12 form.
func (SerDe) SerializeUUID(value uuid.UUID) string {
	return value.String()
}

// DeserializeUUID decodes a canonical UUID.
func (SerDe) DeserializeUUID(value string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return uuid.UUID{}, errors.Wrapf(err, "invalid uuid %q", value)
	}
	return parsed, nil
}

// SerializeRID encodes a resource identifier in its canonical string form.
func (SerDe) SerializeRID(value ResourceIdentifier) string {
	return value.String()
}

// DeserializeRID decodes and validates a resource identifier.
func (SerDe) DeserializeRID(value string) (ResourceIdentifier, error) {
	return ParseResourceIdentifier(value)
}

// SerializeBearerToken encodes a bearer token.
func (SerDe) SerializeBearerToken(value BearerToken) string {
	return string(value)
}

// DeserializeBearerToken decodes and validates a bearer token.
func (SerDe) DeserializeBearerToken(value string) (BearerToken, error) {
	return NewBearerToken(value)
}

// SerializeBinary encodes bytes as standard base64.
func (SerDe) SerializeBinary(value []byte) string {
	return base64.StdEncoding.EncodeToString(value)
}

// DeserializeBinary decodes standard base64.
func (SerDe) DeserializeBinary(value string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(value))
	if err != nil {
		return nil, errors.Wrap(err, "invalid base64 binary value")
	}
	return decoded, nil
}
