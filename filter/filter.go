package filter

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/smig/internal/wire"
)

// Filter is one CoreImage filter in a chain.
type Filter struct {
	name       string
	identifier string
	props      []*Property
}

// Option configures a Filter during creation.
type Option func(*Filter)

// WithIdentifier names the filter so later filters and render properties
// can refer to it with ByName.
func WithIdentifier(id string) Option {
	return func(f *Filter) { f.identifier = id }
}

// WithProperties appends properties.
func WithProperties(props ...*Property) Option {
	return func(f *Filter) { f.props = append(f.props, props...) }
}

// New creates a filter for the CoreImage filter name, such as
// "CIGaussianBlur". An empty name fails with ErrNoFilterName.
func New(name string, opts ...Option) (*Filter, error) {
	if name == "" {
		return nil, ErrNoFilterName
	}
	f := &Filter{name: name}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Name returns the CoreImage filter name.
func (f *Filter) Name() string { return f.name }

// Identifier returns the identifier, or "".
func (f *Filter) Identifier() string { return f.identifier }

// Properties returns the properties in order.
func (f *Filter) Properties() []*Property {
	return append([]*Property(nil), f.props...)
}

// AddProperty appends a property. Keys are not de-duplicated; the renderer
// decides which of two properties with the same key wins.
func (f *Filter) AddProperty(p *Property) *Filter {
	f.props = append(f.props, p)
	return f
}

// AddProperties appends properties in order.
func (f *Filter) AddProperties(props ...*Property) *Filter {
	f.props = append(f.props, props...)
	return f
}

// SetProperties replaces all properties.
func (f *Filter) SetProperties(props []*Property) *Filter {
	f.props = append([]*Property(nil), props...)
	return f
}

// Document returns the filter document.
func (f *Filter) Document() (any, error) {
	if f.name == "" {
		return nil, ErrNoFilterName
	}
	var o wire.Object
	o.Field("cifiltername", f.name)
	if f.identifier != "" {
		o.Field("mifiltername", f.identifier)
	}
	props := f.props
	if props == nil {
		props = []*Property{}
	}
	o.Field("cifilterproperties", props)
	b, err := o.Bytes()
	if err != nil {
		return nil, fmt.Errorf("filter: %s: %w", f.name, err)
	}
	return json.RawMessage(b), nil
}

// MarshalJSON encodes the filter document.
func (f *Filter) MarshalJSON() ([]byte, error) {
	v, err := f.Document()
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

// UnmarshalJSON decodes a filter document.
func (f *Filter) UnmarshalJSON(data []byte) error {
	var w struct {
		Name       string      `json:"cifiltername"`
		Identifier string      `json:"mifiltername"`
		Properties []*Property `json:"cifilterproperties"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Name == "" {
		return ErrNoFilterName
	}
	*f = Filter{name: w.Name, identifier: w.Identifier, props: w.Properties}
	return nil
}
