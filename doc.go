// Package dialogue contains the contract types shared by generated service
// stubs, body codecs, and channel implementations: Endpoint, Request,
// Response, RequestBody, and the Channel abstraction through which every RPC
// flows.
//
// A call proceeds as follows. A generated stub serializes its typed
// arguments into a Request (plain parameters via plainserde, the body via
// bodyserde), then hands the endpoint descriptor and the request to a
// Channel. Channels compose: decorators such as retry or error decoding wrap
// a transport-backed channel that performs the actual HTTP exchange and
// yields a Response. The stub finally decodes the response body into the
// method's result type.
package dialogue
