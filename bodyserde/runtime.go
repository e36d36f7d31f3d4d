package bodyserde

import (
	"github.com/carterkozak/dialogue/plainserde"
)

// Runtime bundles the codecs a generated stub needs: the body serde, the
// plain-parameter serde, and the empty-body deserializer. It is a frozen
// value constructed once per client and shared by all calls.
type Runtime struct {
	bodySerDe  *BodySerDe
	plainSerDe plainserde.SerDe
}

// NewRuntime returns a Runtime over the given body serde.
func NewRuntime(bodySerDe *BodySerDe) *Runtime {
	return &Runtime{bodySerDe: bodySerDe}
}

// DefaultRuntime returns a Runtime with the standard encoding preference
// order: JSON first, then plain text and raw bytes.
func DefaultRuntime() *Runtime {
	serde, err := New(JSON(), PlainText(), OctetStream())
	if err != nil {
		panic(err)
	}
	return NewRuntime(serde)
}

// BodySerDe returns the body codec registry.
func (r *Runtime) BodySerDe() *BodySerDe { return r.bodySerDe }

// PlainSerDe returns the plain-parameter codec.
func (r *Runtime) PlainSerDe() plainserde.SerDe { return r.plainSerDe }

// EmptyBodyDeserializer returns the deserializer for endpoints that return
// nothing.
func (r *Runtime) EmptyBodyDeserializer() Deserializer {
	return r.bodySerDe.EmptyBodyDeserializer()
}
