package smig

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Documenter is implemented by every builder that produces a wire document.
// Document validates the builder and returns a value that encodes to the
// document with encoding/json.
type Documenter interface {
	Document() (any, error)
}

// Element is a draw instruction.
type Element interface {
	Documenter
	ElementType() ElementType
}

// Raw is an already encoded JSON document.
type Raw json.RawMessage

// Document returns r after checking that it is valid JSON.
func (r Raw) Document() (any, error) {
	if !json.Valid(r) {
		return nil, errors.New("smig: raw document is not valid JSON")
	}
	return json.RawMessage(r), nil
}

// Map is a loosely built document.
type Map map[string]any

// Document returns m.
func (m Map) Document() (any, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil map document", ErrMissingField)
	}
	return map[string]any(m), nil
}

// ToDocument normalizes d into its wire value. Builders and raw documents
// pass through the same path.
func ToDocument(d Documenter) (any, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: document", ErrMissingField)
	}
	return d.Document()
}

// Encode normalizes d and encodes it.
func Encode(d Documenter) (json.RawMessage, error) {
	v, err := ToDocument(d)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// DecodeElement decodes a draw instruction document into the builder for
// its element type.
func DecodeElement(data []byte) (Element, error) {
	var head struct {
		ElementType ElementType `json:"elementtype"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("smig: decode element: %w", err)
	}
	var e interface {
		Element
		json.Unmarshaler
	}
	switch head.ElementType {
	case 0:
		return nil, fmt.Errorf("%w: elementtype", ErrMissingField)
	case ElementText:
		e = &TextElement{}
	case ElementLinearGradient:
		e = &LinearGradientElement{}
	case ElementImage:
		e = &ImageElement{}
	default:
		e = &DrawElement{}
	}
	if err := e.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return e, nil
}

// marshalDocument encodes the document of d.
func marshalDocument(d Documenter) ([]byte, error) {
	v, err := d.Document()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// commonDoc holds the fields every draw instruction may carry.
type commonDoc struct {
	BlendMode BlendMode `json:"blendmode,omitempty"`
	Shadow    *Shadow   `json:"shadow,omitempty"`
	transformDoc
	Variables Variables `json:"variables,omitempty"`
	DebugName string    `json:"elementdebugname,omitempty"`
}

// withTransform returns a copy of c carrying t.
func (c commonDoc) withTransform(op string, t Transform) (commonDoc, error) {
	if ct, ok := t.(ContextTransform); ok {
		for _, s := range ct {
			if err := s.validate(); err != nil {
				return c, buildErr(op, c.DebugName, err)
			}
		}
	}
	c.transformDoc = newTransformDoc(t)
	return c, nil
}

// takeTransform removes the transform fields from c and returns them as a
// Transform.
func (c *commonDoc) takeTransform() (Transform, error) {
	t, err := c.transformDoc.transform()
	c.transformDoc = transformDoc{}
	return t, err
}
