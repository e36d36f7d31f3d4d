package plainserde

import (
	"github.com/pkg/errors"
)

// SafeLong is a signed integer restricted to the range that survives a
// round trip through an IEEE-754 double, ±(2^53 − 1).
type SafeLong int64

// Bounds of the SafeLong range.
const (
	MinSafeLong SafeLong = -(1 << 53) + 1
	MaxSafeLong SafeLong = (1 << 53) - 1
)

// NewSafeLong validates that value lies within the safe range.
func NewSafeLong(value int64) (SafeLong, error) {
	if value < int64(MinSafeLong) || value > int64(MaxSafeLong) {
		return 0, errors.Errorf("safelong %d out of range [%d, %d]", value, MinSafeLong, MaxSafeLong)
	}
	return SafeLong(value), nil
}
