package plainserde

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"
)

// ResourceIdentifier is a structured identifier of the form
// ri.<service>.<instance>.<type>.<locator>. It is carried opaquely by the
// runtime; the only transformation applied is validation.
type ResourceIdentifier struct {
	Service  string
	Instance string
	Type     string
	Locator  string
}

var (
	ridService  = regexp.MustCompile(`^[a-z][a-z0-9\-]*$`)
	ridInstance = regexp.MustCompile(`^([a-z0-9][a-z0-9\-]*)?$`)
	ridType     = regexp.MustCompile(`^[a-z][a-z0-9\-]*$`)
	ridLocator  = regexp.MustCompile(`^[a-zA-Z0-9\-\._]+$`)
	ridPattern  = regexp.MustCompile(`^ri\.([^.]*)\.([^.]*)\.([^.]*)\.(.+)$`)
)

// NewResourceIdentifier validates each component and returns the assembled
// identifier.
func NewResourceIdentifier(service, instance, typeName, locator string) (ResourceIdentifier, error) {
	rid := ResourceIdentifier{Service: service, Instance: instance, Type: typeName, Locator: locator}
	if err := rid.validate(); err != nil {
		return ResourceIdentifier{}, err
	}
	return rid, nil
}

// ParseResourceIdentifier parses the canonical ri.* string form.
func ParseResourceIdentifier(value string) (ResourceIdentifier, error) {
	match := ridPattern.FindStringSubmatch(value)
	if match == nil {
		return ResourceIdentifier{}, errors.Errorf("invalid resource identifier %q", value)
	}
	return NewResourceIdentifier(match[1], match[2], match[3], match[4])
}

// String renders the canonical ri.* form.
func (r ResourceIdentifier) String() string {
	return fmt.Sprintf("ri.%s.%s.%s.%s", r.Service, r.Instance, r.Type, r.Locator)
}

func (r ResourceIdentifier) validate() error {
	switch {
	case !ridService.MatchString(r.Service):
		return errors.Errorf("invalid resource identifier service %q", r.Service)
	case !ridInstance.MatchString(r.Instance):
		return errors.Errorf("invalid resource identifier instance %q", r.Instance)
	case !ridType.MatchString(r.Type):
		return errors.Errorf("invalid resource identifier type %q", r.Type)
	case !ridLocator.MatchString(r.Locator):
		return errors.Errorf("invalid resource identifier locator %q", r.Locator)
	}
	return nil
}
