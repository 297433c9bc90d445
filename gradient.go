package smig

import (
	"encoding/json"
	"fmt"
)

type gradientDoc struct {
	ElementType ElementType  `json:"elementtype"`
	StartPoint  *Point       `json:"startpoint,omitempty"`
	Line        *Line        `json:"line,omitempty"`
	Path        PathElements `json:"arrayofpathelements,omitempty"`
	Locations   []float64    `json:"arrayoflocations,omitempty"`
	Colors      []*Color     `json:"arrayofcolors,omitempty"`
	commonDoc
}

// LinearGradientElement fills a path with colors interpolated along a line.
type LinearGradientElement struct {
	d         gradientDoc
	transform Transform
}

// NewLinearGradientElement creates a gradient whose path starts at the origin.
func NewLinearGradientElement() *LinearGradientElement {
	start := Pt(0, 0)
	return &LinearGradientElement{d: gradientDoc{ElementType: ElementLinearGradient, StartPoint: &start}}
}

// ElementType returns ElementLinearGradient.
func (e *LinearGradientElement) ElementType() ElementType { return ElementLinearGradient }

// Transform returns the transform, or nil.
func (e *LinearGradientElement) Transform() Transform { return e.transform }

// SetLine sets the gradient line. Location 0 is its start and 1 its end.
func (e *LinearGradientElement) SetLine(l Line) *LinearGradientElement {
	e.d.Line = &l
	return e
}

// SetPath sets the path that clips the gradient.
func (e *LinearGradientElement) SetPath(p PathSource) *LinearGradientElement {
	e.d.Path = append(PathElements(nil), p.PathElements()...)
	return e
}

// SetStartPoint sets where the clipping path starts.
func (e *LinearGradientElement) SetStartPoint(p Point) *LinearGradientElement {
	e.d.StartPoint = &p
	return e
}

// SetLocationsAndColors sets the color stops. It fails, changing nothing,
// if the slices differ in length or a location is outside [0, 1].
func (e *LinearGradientElement) SetLocationsAndColors(locations []float64, colors []*Color) error {
	const op = "LinearGradientElement.SetLocationsAndColors"
	if len(locations) != len(colors) {
		return buildErr(op, e.d.DebugName,
			fmt.Errorf("%w: %d locations, %d colors", ErrLengthMismatch, len(locations), len(colors)))
	}
	for i, l := range locations {
		if l < 0 || l > 1 {
			return buildErr(op, e.d.DebugName, fmt.Errorf("%w: location %d is %v", ErrLocationRange, i, l))
		}
		if colors[i] == nil {
			return buildErr(op, e.d.DebugName, fmt.Errorf("%w: color %d", ErrMissingField, i))
		}
	}
	e.d.Locations = append([]float64(nil), locations...)
	e.d.Colors = append([]*Color(nil), colors...)
	return nil
}

// AddColorStop appends one location and its color.
func (e *LinearGradientElement) AddColorStop(location float64, c *Color) error {
	locs := append(append([]float64(nil), e.d.Locations...), location)
	cols := append(append([]*Color(nil), e.d.Colors...), c)
	return e.SetLocationsAndColors(locs, cols)
}

// SetBlendMode sets the blend mode.
func (e *LinearGradientElement) SetBlendMode(m BlendMode) *LinearGradientElement {
	e.d.BlendMode = m
	return e
}

// SetDebugName names the element in renderer error reports.
func (e *LinearGradientElement) SetDebugName(name string) *LinearGradientElement {
	e.d.DebugName = name
	return e
}

// SetVariables sets the variables used by equations in this element.
func (e *LinearGradientElement) SetVariables(v Variables) *LinearGradientElement {
	e.d.Variables = v
	return e
}

// SetContextTransform replaces the transform with a context transform.
func (e *LinearGradientElement) SetContextTransform(t ContextTransform) *LinearGradientElement {
	e.transform = t
	return e
}

// SetAffineTransform replaces the transform with an affine transform.
func (e *LinearGradientElement) SetAffineTransform(t AffineTransform) *LinearGradientElement {
	e.transform = t
	return e
}

// Document validates the element and returns its wire form. The line, the
// clipping path and at least one color stop are required.
func (e *LinearGradientElement) Document() (any, error) {
	const op = "LinearGradientElement.Document"
	d := e.d
	missing := ""
	switch {
	case d.Line == nil:
		missing = "line"
	case len(d.Path) == 0:
		missing = "arrayofpathelements"
	case len(d.Locations) == 0:
		missing = "arrayoflocations"
	}
	if missing != "" {
		return nil, buildErr(op, d.DebugName, fmt.Errorf("%w: %s", ErrMissingField, missing))
	}
	var err error
	if d.commonDoc, err = d.commonDoc.withTransform(op, e.transform); err != nil {
		return nil, err
	}
	return d, nil
}

// MarshalJSON encodes the element document.
func (e *LinearGradientElement) MarshalJSON() ([]byte, error) { return marshalDocument(e) }

// UnmarshalJSON decodes a lineargradientfill document.
func (e *LinearGradientElement) UnmarshalJSON(data []byte) error {
	var d gradientDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if d.ElementType != ElementLinearGradient {
		return fmt.Errorf("smig: decode gradient element: elementtype %v", d.ElementType)
	}
	if len(d.Locations) != len(d.Colors) {
		return fmt.Errorf("smig: decode gradient element: %w", ErrLengthMismatch)
	}
	t, err := d.takeTransform()
	if err != nil {
		return err
	}
	*e = LinearGradientElement{d: d, transform: t}
	return nil
}
