// Package sampleservice shows the code shape a stub generator emits for a
// service definition: one endpoint constant per method, a blocking facet
// implemented as a bounded wait over the asynchronous one, cached
// serializer and deserializer instances, and per-argument precondition
// checks.
package sampleservice

import (
	"time"

	"github.com/carterkozak/dialogue"
	"github.com/carterkozak/dialogue/futures"
	"github.com/carterkozak/dialogue/plainserde"
)

// SampleObject is the body type exchanged by the sample service.
type SampleObject struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// SampleService is the blocking facet of the sample service. Calls block
// for at most the configured call timeout.
type SampleService interface {
	// ObjectToObject posts body to /objectToObject/objects/{objectId} with
	// a date-time header and a list of resource identifier query values.
	ObjectToObject(objectID string, header time.Time, query []plainserde.ResourceIdentifier, body SampleObject) (SampleObject, error)

	// VoidToVoid gets /voidToVoid and expects an empty response body.
	VoidToVoid() error
}

// AsyncSampleService is the asynchronous facet of the sample service.
type AsyncSampleService interface {
	ObjectToObject(objectID string, header time.Time, query []plainserde.ResourceIdentifier, body SampleObject) *futures.Future[SampleObject]
	VoidToVoid() *futures.Future[struct{}]
}

var (
	objectToObjectEndpoint = dialogue.NewEndpoint(
		dialogue.MethodPost,
		dialogue.NewPathTemplate().Fixed("objectToObject").Fixed("objects").Variable("objectId").MustBuild(),
	)

	voidToVoidEndpoint = dialogue.NewEndpoint(
		dialogue.MethodGet,
		dialogue.NewPathTemplate().Fixed("voidToVoid").MustBuild(),
	)
)
