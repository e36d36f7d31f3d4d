package dialogue

// HTTPMethod is the HTTP verb an endpoint is invoked with.
type HTTPMethod string

// The methods supported by generated endpoints.
const (
	MethodGet    HTTPMethod = "GET"
	MethodPost   HTTPMethod = "POST"
	MethodPut    HTTPMethod = "PUT"
	MethodDelete HTTPMethod = "DELETE"
	MethodHead   HTTPMethod = "HEAD"
	MethodPatch  HTTPMethod = "PATCH"
)

// Endpoint describes a single RPC method: its HTTP verb and how to render
// its path from path parameters. Endpoints are created once per generated
// method and shared by all calls; implementations must be pure and
// referentially stable.
type Endpoint interface {
	// RenderPath appends the endpoint's path to url, substituting template
	// variables from params. A missing variable is a precondition violation.
	RenderPath(params map[string]string, url *URLBuilder) error

	// Method returns the HTTP verb used to invoke the endpoint.
	Method() HTTPMethod
}

// NewEndpoint returns an Endpoint backed by a path template. This is the
// form stub generators emit for each service method.
func NewEndpoint(method HTTPMethod, template *PathTemplate) Endpoint {
	return &templateEndpoint{method: method, template: template}
}

type templateEndpoint struct {
	method   HTTPMethod
	template *PathTemplate
}

func (e *templateEndpoint) RenderPath(params map[string]string, url *URLBuilder) error {
	return e.template.Fill(params, url)
}

func (e *templateEndpoint) Method() HTTPMethod { return e.method }
