package dialogue

import (
	"reflect"
)

// TypeMarker carries a static type into the body codecs, which cannot be
// generic at the interface boundary. Markers compare equal exactly when they
// represent the same type.
type TypeMarker struct {
	t reflect.Type
}

// MarkerOf returns the TypeMarker for T. Stub generators materialize one
// marker per non-plain argument and result type at the call site.
func MarkerOf[T any]() TypeMarker {
	return TypeMarker{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// Type returns the reflected type the marker represents.
func (m TypeMarker) Type() reflect.Type { return m.t }

// String returns the represented type's name.
func (m TypeMarker) String() string {
	if m.t == nil {
		return "<nil>"
	}
	return m.t.String()
}
