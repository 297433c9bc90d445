package filter

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/smig"
	"github.com/gogpu/smig/internal/wire"
)

// RenderProperty overrides one property of one filter for a single render.
type RenderProperty struct {
	Property
	target Ref
}

// RenderPropertyByName targets the filter with identifier id.
func RenderPropertyByName(id string, p *Property) *RenderProperty {
	return &RenderProperty{Property: *p, target: ByName(id)}
}

// RenderPropertyByIndex targets the filter at position i in the chain.
func RenderPropertyByIndex(i int, p *Property) *RenderProperty {
	return &RenderProperty{Property: *p, target: ByIndex(i)}
}

// Target returns the filter the override applies to.
func (r *RenderProperty) Target() Ref { return r.target }

// Document returns the property document with the target filter key added.
func (r *RenderProperty) Document() (any, error) {
	var o wire.Object
	if err := r.Property.write(&o); err != nil {
		return nil, err
	}
	r.target.write(&o)
	b, err := o.Bytes()
	return json.RawMessage(b), err
}

// MarshalJSON encodes the render property document.
func (r *RenderProperty) MarshalJSON() ([]byte, error) {
	v, err := r.Document()
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

// UnmarshalJSON decodes a render property document.
func (r *RenderProperty) UnmarshalJSON(data []byte) error {
	var w struct {
		propertyWire
		Name  *string `json:"mifiltername"`
		Index *int    `json:"cifilterindex"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	target, ok := refFrom(w.Name, w.Index)
	if !ok {
		return fmt.Errorf("filter: render property %s has no target filter", w.Key)
	}
	var p Property
	if err := p.load(w.propertyWire); err != nil {
		return err
	}
	*r = RenderProperty{Property: p, target: target}
	return nil
}

// RenderInstructions describe one render of a chain. Property overrides
// apply to this render only; the chain keeps its own values.
type RenderInstructions struct {
	d renderDoc
}

type renderDoc struct {
	SourceRect      *smig.Rect        `json:"sourcerectangle,omitempty"`
	DestinationRect *smig.Rect        `json:"destinationrectangle,omitempty"`
	Properties      []*RenderProperty `json:"cifilterproperties,omitempty"`
	Variables       smig.Variables    `json:"variables,omitempty"`
}

// NewRenderInstructions returns empty instructions. Without a destination
// rectangle the output is drawn at the size of the destination object.
func NewRenderInstructions() *RenderInstructions {
	return &RenderInstructions{}
}

// SetSourceRect crops the chain output before it is drawn.
func (r *RenderInstructions) SetSourceRect(rect smig.Rect) *RenderInstructions {
	r.d.SourceRect = &rect
	return r
}

// SetDestinationRect sets where in the destination the output is drawn.
func (r *RenderInstructions) SetDestinationRect(rect smig.Rect) *RenderInstructions {
	r.d.DestinationRect = &rect
	return r
}

// AddProperty appends a property override.
func (r *RenderInstructions) AddProperty(p *RenderProperty) *RenderInstructions {
	r.d.Properties = append(r.d.Properties, p)
	return r
}

// SetProperties replaces all property overrides.
func (r *RenderInstructions) SetProperties(props []*RenderProperty) *RenderInstructions {
	r.d.Properties = append([]*RenderProperty(nil), props...)
	return r
}

// SetVariables sets the variables used by equations in the overrides.
func (r *RenderInstructions) SetVariables(v smig.Variables) *RenderInstructions {
	r.d.Variables = v
	return r
}

// Properties returns the property overrides.
func (r *RenderInstructions) Properties() []*RenderProperty {
	return append([]*RenderProperty(nil), r.d.Properties...)
}

// Document returns the instructions document.
func (r *RenderInstructions) Document() (any, error) {
	return r.d, nil
}

// MarshalJSON encodes the instructions document.
func (r *RenderInstructions) MarshalJSON() ([]byte, error) {
	v, err := r.Document()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// UnmarshalJSON decodes an instructions document.
func (r *RenderInstructions) UnmarshalJSON(data []byte) error {
	var d renderDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	r.d = d
	return nil
}
