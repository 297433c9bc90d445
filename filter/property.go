package filter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/smig"
	"github.com/gogpu/smig/internal/wire"
)

// ValueClass is the CoreImage class of a property value. The zero value is
// a plain number, which the renderer expects with no class key.
type ValueClass uint8

const (
	ClassNumber ValueClass = iota
	ClassImage
	ClassVector
	ClassColor
	ClassAffineTransform
)

var valueClassNames = []string{
	ClassImage:           "CIImage",
	ClassVector:          "CIVector",
	ClassColor:           "CIColor",
	ClassAffineTransform: "NSAffineTransform",
}

func (c ValueClass) String() string {
	if c == ClassNumber {
		return "number"
	}
	if n := wire.Name(valueClassNames, c); n != "" {
		return n
	}
	return fmt.Sprintf("ValueClass(%d)", uint8(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c ValueClass) MarshalText() ([]byte, error) {
	return wire.MarshalName(valueClassNames, c, "value class")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ValueClass) UnmarshalText(text []byte) error {
	v, ok := wire.Lookup[ValueClass](valueClassNames, string(text))
	if !ok {
		return fmt.Errorf("%w: value class %q", smig.ErrUnknownName, text)
	}
	*c = v
	return nil
}

// ImageSource supplies an image to a filter: an smig.ObjectID naming an
// importer, context or other image holder, or a Ref to an earlier filter.
type ImageSource interface {
	smig.Documenter
}

// Property is one input of a filter.
//
// Its value depends on Class: an ImageSource for ClassImage, the vector
// string for ClassVector, a string or *smig.Color for ClassColor, an
// smig.AffineTransform for ClassAffineTransform and an smig.Value for
// ClassNumber.
type Property struct {
	key   string
	class ValueClass
	value any

	min, max, def *float64
}

// ImageProperty sets an image input. src may be nil and set later with
// SetImageSource.
func ImageProperty(key string, src ImageSource) *Property {
	p := &Property{key: key, class: ClassImage}
	if src != nil {
		p.value = src
	}
	return p
}

// VectorProperty sets a vector input, serialized as "[ a b c ]".
func VectorProperty(key string, v []float64) *Property {
	var b strings.Builder
	b.WriteByte('[')
	for _, f := range v {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(f, 'f', -1, 64))
	}
	b.WriteString(" ]")
	return VectorPropertyFromString(key, b.String())
}

// VectorPropertyFromString sets a vector input from its string form.
func VectorPropertyFromString(key, v string) *Property {
	return &Property{key: key, class: ClassVector, value: v}
}

// ColorPropertyFromString sets a color input from a CoreImage color string
// such as "0 0 1 1".
func ColorPropertyFromString(key, v string) *Property {
	return &Property{key: key, class: ClassColor, value: v}
}

// ColorPropertyFromComponents sets a color input from its components,
// joined with spaces.
func ColorPropertyFromComponents(key string, components []float64) *Property {
	parts := make([]string, len(components))
	for i, c := range components {
		parts[i] = strconv.FormatFloat(c, 'f', -1, 64)
	}
	return ColorPropertyFromString(key, strings.Join(parts, " "))
}

// ColorProperty sets a color input from a color document.
func ColorProperty(key string, c *smig.Color) *Property {
	return &Property{key: key, class: ClassColor, value: c}
}

// NumberProperty sets a numeric input.
func NumberProperty(key string, v float64) *Property {
	return &Property{key: key, value: smig.Num(v)}
}

// EquationProperty sets a numeric input computed by the renderer.
func EquationProperty(key, equation string) *Property {
	return &Property{key: key, value: smig.Equation(equation)}
}

// NumberPropertyWithRange sets a numeric input with bounds. The value
// starts at def; SetNumber clamps later values into [lo, hi].
func NumberPropertyWithRange(key string, lo, hi, def float64) *Property {
	p := &Property{key: key, min: &lo, max: &hi, def: &def}
	return p.SetNumber(def)
}

// AffineTransformProperty sets an affine transform input.
func AffineTransformProperty(key string, t smig.AffineTransform) *Property {
	return &Property{key: key, class: ClassAffineTransform, value: t}
}

// Key returns the CoreImage input key.
func (p *Property) Key() string { return p.key }

// Class returns the value class.
func (p *Property) Class() ValueClass { return p.class }

// Value returns the property value, or nil if it has none yet.
func (p *Property) Value() any { return p.value }

// Number returns the numeric value. ok is false for non-numeric properties
// and equations.
func (p *Property) Number() (v float64, ok bool) {
	if n, isNum := p.value.(smig.Value); isNum {
		return n.Float()
	}
	return 0, false
}

// Bounds returns the range of a ranged numeric property.
func (p *Property) Bounds() (lo, hi float64, ok bool) {
	if p.min == nil || p.max == nil {
		return 0, 0, false
	}
	return *p.min, *p.max, true
}

// SetImageSource sets the image of an image property.
func (p *Property) SetImageSource(src ImageSource) *Property {
	p.value = src
	return p
}

// SetNumber assigns a numeric value. When the property has both a minimum
// and a maximum, v is clamped into that range first.
func (p *Property) SetNumber(v float64) *Property {
	p.value = smig.Num(p.clamp(v))
	return p
}

// SetInteger assigns an integer value, clamped like SetNumber.
func (p *Property) SetInteger(i int) *Property {
	return p.SetNumber(float64(i))
}

func (p *Property) clamp(v float64) float64 {
	if p.min == nil || p.max == nil {
		return v
	}
	c := v
	switch {
	case c < *p.min:
		c = *p.min
	case c > *p.max:
		c = *p.max
	}
	if c != v {
		smig.Logger().Debug("filter: value clamped", "key", p.key, "value", v, "clamped", c)
	}
	return c
}

func (p *Property) write(o *wire.Object) error {
	o.Field("cifilterkey", p.key)
	if p.class != ClassNumber {
		o.Field("cifiltervalueclass", p.class)
	}
	if p.value != nil {
		v := p.value
		if d, ok := v.(smig.Documenter); ok {
			doc, err := smig.ToDocument(d)
			if err != nil {
				return fmt.Errorf("filter: property %s: %w", p.key, err)
			}
			v = doc
		}
		o.Field("cifiltervalue", v)
	}
	if p.min != nil {
		o.Field("min", *p.min)
	}
	if p.max != nil {
		o.Field("max", *p.max)
	}
	if p.def != nil {
		o.Field("default", *p.def)
	}
	return nil
}

// Document returns the property document.
func (p *Property) Document() (any, error) {
	var o wire.Object
	if err := p.write(&o); err != nil {
		return nil, err
	}
	b, err := o.Bytes()
	return json.RawMessage(b), err
}

// MarshalJSON encodes the property document.
func (p *Property) MarshalJSON() ([]byte, error) {
	v, err := p.Document()
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

type propertyWire struct {
	Key     string          `json:"cifilterkey"`
	Class   ValueClass      `json:"cifiltervalueclass"`
	Value   json.RawMessage `json:"cifiltervalue"`
	Min     *float64        `json:"min"`
	Max     *float64        `json:"max"`
	Default *float64        `json:"default"`
}

// UnmarshalJSON decodes a property document.
func (p *Property) UnmarshalJSON(data []byte) error {
	var w propertyWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return p.load(w)
}

func (p *Property) load(w propertyWire) error {
	if w.Key == "" {
		return fmt.Errorf("%w: cifilterkey", smig.ErrMissingField)
	}
	*p = Property{key: w.Key, class: w.Class, min: w.Min, max: w.Max, def: w.Default}
	if len(w.Value) == 0 {
		return nil
	}
	v, err := decodeValue(w.Class, w.Value)
	if err != nil {
		return fmt.Errorf("filter: property %s: %w", w.Key, err)
	}
	p.value = v
	return nil
}

func decodeValue(class ValueClass, raw json.RawMessage) (any, error) {
	switch class {
	case ClassImage:
		if wire.HasKey(raw, "mifiltername") || wire.HasKey(raw, "cifilterindex") {
			var r Ref
			err := json.Unmarshal(raw, &r)
			return r, err
		}
		var id smig.ObjectID
		err := json.Unmarshal(raw, &id)
		return id, err
	case ClassVector:
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	case ClassColor:
		var s string
		if json.Unmarshal(raw, &s) == nil {
			return s, nil
		}
		c := new(smig.Color)
		err := json.Unmarshal(raw, c)
		return c, err
	case ClassAffineTransform:
		var t smig.AffineTransform
		err := json.Unmarshal(raw, &t)
		return t, err
	default:
		var v smig.Value
		err := json.Unmarshal(raw, &v)
		return v, err
	}
}
