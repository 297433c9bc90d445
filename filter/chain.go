package filter

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/smig"
	"github.com/gogpu/smig/internal/wire"
)

// Chain is an ordered list of filters whose final output is rendered into
// a destination object.
type Chain struct {
	dest     smig.ObjectID
	filters  []*Filter
	software *bool
	srgb     *bool
}

// NewChain creates a chain that renders into dest.
func NewChain(dest smig.ObjectID, filters ...*Filter) *Chain {
	return &Chain{dest: dest, filters: append([]*Filter(nil), filters...)}
}

// Destination returns the render destination.
func (c *Chain) Destination() smig.ObjectID { return c.dest }

// Filters returns the filters in order.
func (c *Chain) Filters() []*Filter {
	return append([]*Filter(nil), c.filters...)
}

// AddFilter appends a filter.
func (c *Chain) AddFilter(f *Filter) *Chain {
	c.filters = append(c.filters, f)
	return c
}

// SetSoftwareRender asks CoreImage to render on the CPU. Unset, the
// renderer chooses.
func (c *Chain) SetSoftwareRender(on bool) *Chain {
	c.software = &on
	return c
}

// SetUseSRGBProfile asks the renderer to work in sRGB. Unset, the renderer
// chooses.
func (c *Chain) SetUseSRGBProfile(on bool) *Chain {
	c.srgb = &on
	return c
}

// Validate checks the chain graph: the destination is set, filter
// identifiers are unique, and every filter reference names an earlier
// filter by identifier or index.
func (c *Chain) Validate() error {
	if c.dest.IsZero() {
		return ErrNoDestination
	}
	seen := make(map[string]int, len(c.filters))
	for i, f := range c.filters {
		if f == nil || f.name == "" {
			return fmt.Errorf("filter #%d: %w", i, ErrNoFilterName)
		}
		for _, p := range f.props {
			r, ok := p.value.(Ref)
			if !ok {
				continue
			}
			if err := resolve(r, seen, i); err != nil {
				return fmt.Errorf("filter #%d %s: property %s: %w", i, f.name, p.key, err)
			}
		}
		if f.identifier == "" {
			continue
		}
		if j, dup := seen[f.identifier]; dup {
			return fmt.Errorf("%w: %q at #%d and #%d", ErrDuplicateIdentifier, f.identifier, j, i)
		}
		seen[f.identifier] = i
	}
	return nil
}

// resolve checks that r names a filter before position before.
func resolve(r Ref, ids map[string]int, before int) error {
	if name, ok := r.Name(); ok {
		if _, found := ids[name]; !found {
			return fmt.Errorf("%w: %v", ErrUnresolvedRef, r)
		}
		return nil
	}
	if i, _ := r.Index(); i < 0 || i >= before {
		return fmt.Errorf("%w: %v", ErrUnresolvedRef, r)
	}
	return nil
}

// CheckRender reports render property overrides that target no filter in
// the chain.
func (c *Chain) CheckRender(r *RenderInstructions) error {
	ids := make(map[string]int, len(c.filters))
	for i, f := range c.filters {
		if f != nil && f.identifier != "" {
			ids[f.identifier] = i
		}
	}
	for _, p := range r.d.Properties {
		if err := resolve(p.target, ids, len(c.filters)); err != nil {
			return fmt.Errorf("render property %s: %w", p.key, err)
		}
	}
	return nil
}

// Document validates the chain and returns its document.
func (c *Chain) Document() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var o wire.Object
	o.Field("cirenderdestination", c.dest)
	filters := c.filters
	if filters == nil {
		filters = []*Filter{}
	}
	o.Field("cifilterlist", filters)
	if c.software != nil {
		o.Field("coreimagesoftwarerender", *c.software)
	}
	if c.srgb != nil {
		o.Field("use_srgbcolorspace", *c.srgb)
	}
	b, err := o.Bytes()
	if err != nil {
		return nil, err
	}
	return json.RawMessage(b), nil
}

// MarshalJSON encodes the chain document.
func (c *Chain) MarshalJSON() ([]byte, error) {
	v, err := c.Document()
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

// UnmarshalJSON decodes a chain document.
func (c *Chain) UnmarshalJSON(data []byte) error {
	var w struct {
		Destination smig.ObjectID `json:"cirenderdestination"`
		Filters     []*Filter     `json:"cifilterlist"`
		Software    *bool         `json:"coreimagesoftwarerender"`
		SRGB        *bool         `json:"use_srgbcolorspace"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*c = Chain{dest: w.Destination, filters: w.Filters, software: w.Software, srgb: w.SRGB}
	return nil
}
