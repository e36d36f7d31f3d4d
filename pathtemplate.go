package dialogue

import (
	"github.com/pkg/errors"
)

// PathTemplate is an ordered sequence of fixed and variable path segments,
// built once per endpoint and immutable afterwards. Variable names are
// unique across a template, and every variable must be supplied at fill
// time.
type PathTemplate struct {
	segments []pathSegment
}

type pathSegment struct {
	value    string
	variable bool
}

// PathTemplateBuilder accumulates segments for a PathTemplate.
type PathTemplateBuilder struct {
	segments []pathSegment
	names    map[string]struct{}
	err      error
}

// NewPathTemplate returns an empty PathTemplateBuilder.
func NewPathTemplate() *PathTemplateBuilder {
	return &PathTemplateBuilder{names: make(map[string]struct{})}
}

// Fixed appends a literal path segment.
func (b *PathTemplateBuilder) Fixed(segment string) *PathTemplateBuilder {
	b.segments = append(b.segments, pathSegment{value: segment})
	return b
}

// Variable appends a named template variable.
func (b *PathTemplateBuilder) Variable(name string) *PathTemplateBuilder {
	if _, ok := b.names[name]; ok && b.err == nil {
		b.err = errors.Errorf("duplicate template variable %q", name)
	}
	b.names[name] = struct{}{}
	b.segments = append(b.segments, pathSegment{value: name, variable: true})
	return b
}

// Build returns the template, or an error for duplicate variable names.
func (b *PathTemplateBuilder) Build() (*PathTemplate, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &PathTemplate{segments: b.segments}, nil
}

// MustBuild is like Build but panics on error. Stub generators use it for
// package-level endpoint constants.
func (b *PathTemplateBuilder) MustBuild() *PathTemplate {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

// Fill appends the template's segments to url in template order,
// substituting each variable from params. A variable with no value in
// params is a precondition violation carrying the variable name.
func (t *PathTemplate) Fill(params map[string]string, url *URLBuilder) error {
	for _, seg := range t.segments {
		if !seg.variable {
			url.PathSegment(seg.value)
			continue
		}
		value, ok := params[seg.value]
		if !ok {
			return NewPreconditionError("no value provided for template variable", seg.value)
		}
		url.PathSegment(value)
	}
	return nil
}
