package smig

import (
	"encoding/json"
	"fmt"
)

// drawDoc is the wire form of a DrawElement.
type drawDoc struct {
	ElementType ElementType       `json:"elementtype"`
	Rect        *Rect             `json:"rect,omitempty"`
	Line        *Line             `json:"line,omitempty"`
	Points      []Point           `json:"points,omitempty"`
	StartPoint  *Point            `json:"startpoint,omitempty"`
	Radius      *Value            `json:"radius,omitempty"`
	Radiuses    []Value           `json:"radiuses,omitempty"`
	Path        PathElements      `json:"arrayofpathelements,omitempty"`
	Elements    []json.RawMessage `json:"arrayofelements,omitempty"`
	FillColor   *Color            `json:"fillcolor,omitempty"`
	StrokeColor *Color            `json:"strokecolor,omitempty"`
	LineWidth   *Value            `json:"linewidth,omitempty"`
	LineCap     LineCap           `json:"linecap,omitempty"`
	LineJoin    LineJoin          `json:"linejoin,omitempty"`
	Miter       *Value            `json:"miter,omitempty"`
	commonDoc
}

// DrawElement draws a shape, a path or a list of other elements.
//
// Example:
//
//	e := smig.NewDrawElement(smig.ElementFillRect).
//	    SetRect(smig.RectXYWH(0, 0, 200, 100)).
//	    SetFillColor(smig.RGB(0.8, 0.1, 0.1))
type DrawElement struct {
	d         drawDoc
	children  []Documenter
	transform Transform
}

// NewDrawElement creates an element of type t.
func NewDrawElement(t ElementType) *DrawElement {
	return &DrawElement{d: drawDoc{ElementType: t}}
}

// NewArrayOfElements creates an element that draws children in order.
func NewArrayOfElements(children ...Documenter) *DrawElement {
	e := NewDrawElement(ElementArray)
	e.children = append(e.children, children...)
	return e
}

// ElementType returns the element type.
func (e *DrawElement) ElementType() ElementType { return e.d.ElementType }

// DebugName returns the element debug name.
func (e *DrawElement) DebugName() string { return e.d.DebugName }

// Transform returns the transform, or nil.
func (e *DrawElement) Transform() Transform { return e.transform }

// Children returns the child elements of an arrayofelements element.
func (e *DrawElement) Children() []Documenter {
	return append([]Documenter(nil), e.children...)
}

// SetElementType re-tags the element. The caller owns the consequences: an
// element already queued in a command keeps its old document, but one shared
// by reference and encoded later does not.
func (e *DrawElement) SetElementType(t ElementType) *DrawElement {
	if e.d.ElementType != 0 && e.d.ElementType != t {
		Logger().Warn("smig: draw element re-tagged",
			"from", e.d.ElementType.String(),
			"to", t.String(),
			"name", e.d.DebugName)
	}
	e.d.ElementType = t
	return e
}

// SetRect sets the rectangle for rectangle, oval and rounded rectangle elements.
func (e *DrawElement) SetRect(r Rect) *DrawElement {
	e.d.Rect = &r
	return e
}

// SetLine sets the line for a drawline element.
func (e *DrawElement) SetLine(l Line) *DrawElement {
	e.d.Line = &l
	return e
}

// SetPoints sets the vertices for a drawlines element.
func (e *DrawElement) SetPoints(points []Point) *DrawElement {
	e.d.Points = append([]Point(nil), points...)
	return e
}

// AddPoint appends a vertex for a drawlines element.
func (e *DrawElement) AddPoint(p Point) *DrawElement {
	e.d.Points = append(e.d.Points, p)
	return e
}

// SetStartPoint sets where a path element starts.
func (e *DrawElement) SetStartPoint(p Point) *DrawElement {
	e.d.StartPoint = &p
	return e
}

// SetRadius sets one corner radius for a rounded rectangle and clears any
// per-corner radii.
func (e *DrawElement) SetRadius(r Value) *DrawElement {
	e.d.Radius, e.d.Radiuses = &r, nil
	return e
}

// SetRadiuses sets a radius per corner and clears any single radius.
// Exactly 4 radii are required.
func (e *DrawElement) SetRadiuses(radii []Value) error {
	if len(radii) != 4 {
		return buildErr("DrawElement.SetRadiuses", e.d.DebugName, ErrCornerRadii)
	}
	e.d.Radius, e.d.Radiuses = nil, append([]Value(nil), radii...)
	return nil
}

// SetPath sets the path for fillpath, strokepath and fillandstrokepath
// elements. Other element types fail with ErrNotPathElement.
func (e *DrawElement) SetPath(p PathSource) error {
	switch e.d.ElementType {
	case ElementFillPath, ElementStrokePath, ElementFillAndStrokePath:
	default:
		return buildErr("DrawElement.SetPath", e.d.DebugName,
			fmt.Errorf("%w: %v", ErrNotPathElement, e.d.ElementType))
	}
	e.d.Path = append(PathElements(nil), p.PathElements()...)
	return nil
}

// Add appends a child to an arrayofelements element. Any other element type
// fails with ErrNotArrayOfElements.
func (e *DrawElement) Add(child Documenter) error {
	if e.d.ElementType != ElementArray {
		return buildErr("DrawElement.Add", e.d.DebugName,
			fmt.Errorf("%w: %v", ErrNotArrayOfElements, e.d.ElementType))
	}
	if child == nil {
		return buildErr("DrawElement.Add", e.d.DebugName, fmt.Errorf("%w: child", ErrMissingField))
	}
	e.children = append(e.children, child)
	return nil
}

// SetFillColor sets the fill color.
func (e *DrawElement) SetFillColor(c *Color) *DrawElement {
	e.d.FillColor = c
	return e
}

// SetStrokeColor sets the stroke color.
func (e *DrawElement) SetStrokeColor(c *Color) *DrawElement {
	e.d.StrokeColor = c
	return e
}

// SetLineWidth sets the stroke width.
func (e *DrawElement) SetLineWidth(w Value) *DrawElement {
	e.d.LineWidth = &w
	return e
}

// SetLineCap sets the line cap.
func (e *DrawElement) SetLineCap(c LineCap) *DrawElement {
	e.d.LineCap = c
	return e
}

// SetLineJoin sets the line join.
func (e *DrawElement) SetLineJoin(j LineJoin) *DrawElement {
	e.d.LineJoin = j
	return e
}

// SetMiter sets the miter limit.
func (e *DrawElement) SetMiter(limit Value) *DrawElement {
	e.d.Miter = &limit
	return e
}

// SetBlendMode sets the blend mode.
func (e *DrawElement) SetBlendMode(m BlendMode) *DrawElement {
	e.d.BlendMode = m
	return e
}

// SetShadow sets the shadow. Nil removes it.
func (e *DrawElement) SetShadow(s *Shadow) *DrawElement {
	e.d.Shadow = s
	return e
}

// SetDebugName names the element in renderer error reports.
func (e *DrawElement) SetDebugName(name string) *DrawElement {
	e.d.DebugName = name
	return e
}

// SetVariables sets the variables used by equations in this element.
func (e *DrawElement) SetVariables(v Variables) *DrawElement {
	e.d.Variables = v
	return e
}

// SetContextTransform replaces the transform with a context transform.
func (e *DrawElement) SetContextTransform(t ContextTransform) *DrawElement {
	e.transform = t
	return e
}

// SetAffineTransform replaces the transform with an affine transform.
func (e *DrawElement) SetAffineTransform(t AffineTransform) *DrawElement {
	e.transform = t
	return e
}

// Document validates the element and returns its wire form.
func (e *DrawElement) Document() (any, error) {
	const op = "DrawElement.Document"
	d := e.d
	if err := checkShape(&d); err != nil {
		return nil, buildErr(op, d.DebugName, err)
	}
	d.Elements = nil
	for i, c := range e.children {
		raw, err := Encode(c)
		if err != nil {
			return nil, buildErr(op, d.DebugName, fmt.Errorf("child %d: %w", i, err))
		}
		d.Elements = append(d.Elements, raw)
	}
	var err error
	if d.commonDoc, err = d.commonDoc.withTransform(op, e.transform); err != nil {
		return nil, err
	}
	return d, nil
}

func checkShape(d *drawDoc) error {
	missing := ""
	switch d.ElementType {
	case ElementText:
		return fmt.Errorf("%w: %s, use NewTextElement", ErrDedicatedBuilder, d.ElementType)
	case ElementImage:
		return fmt.Errorf("%w: %s, use NewImageElement", ErrDedicatedBuilder, d.ElementType)
	case ElementLinearGradient:
		return fmt.Errorf("%w: %s, use NewLinearGradientElement", ErrDedicatedBuilder, d.ElementType)
	case 0:
		missing = "elementtype"
	case ElementFillRect, ElementStrokeRect, ElementFillOval, ElementStrokeOval:
		if d.Rect == nil {
			missing = "rect"
		}
	case ElementFillRoundedRect, ElementStrokeRoundedRect:
		switch {
		case d.Rect == nil:
			missing = "rect"
		case d.Radius == nil && d.Radiuses == nil:
			missing = "radius"
		}
	case ElementLine:
		if d.Line == nil {
			missing = "line"
		}
	case ElementLines:
		if len(d.Points) < 2 {
			missing = "points"
		}
	case ElementFillPath, ElementStrokePath, ElementFillAndStrokePath:
		if len(d.Path) == 0 {
			missing = "arrayofpathelements"
		}
	}
	if missing != "" {
		return fmt.Errorf("%w: %s", ErrMissingField, missing)
	}
	return nil
}

// MarshalJSON encodes the element document.
func (e *DrawElement) MarshalJSON() ([]byte, error) { return marshalDocument(e) }

// UnmarshalJSON decodes a draw element document, including nested elements.
func (e *DrawElement) UnmarshalJSON(data []byte) error {
	var d drawDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	t, err := d.takeTransform()
	if err != nil {
		return err
	}
	var children []Documenter
	for _, raw := range d.Elements {
		c, err := DecodeElement(raw)
		if err != nil {
			return err
		}
		children = append(children, c)
	}
	d.Elements = nil
	*e = DrawElement{d: d, children: children, transform: t}
	return nil
}
