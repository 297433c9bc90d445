package smig

import "encoding/json"

// PathElement is one segment of a path. Which fields are set depends on
// ElementType:
//
//	pathmoveto            Point
//	pathlineto            EndPoint
//	pathrectangle         Rect
//	pathroundedrectangle  Rect, Radius or Radiuses (4 corners)
//	pathoval              Rect
//	pathbeziercurve       ControlPoint1, ControlPoint2, EndPoint
//	pathquadraticcurve    ControlPoint1, EndPoint
//	pathclosesubpath      nothing
type PathElement struct {
	ElementType   PathElementType `json:"elementtype"`
	Point         *Point          `json:"point,omitempty"`
	Rect          *Rect           `json:"rect,omitempty"`
	Radius        *Value          `json:"radius,omitempty"`
	Radiuses      []Value         `json:"radiuses,omitempty"`
	ControlPoint1 *Point          `json:"controlpoint1,omitempty"`
	ControlPoint2 *Point          `json:"controlpoint2,omitempty"`
	EndPoint      *Point          `json:"endpoint,omitempty"`
}

// PathElements is a sequence of path segments in drawing order.
type PathElements []PathElement

// PathElements returns p.
func (p PathElements) PathElements() []PathElement { return p }

// PathSource supplies path segments to path-drawing instructions.
// Both *Path and PathElements implement it.
type PathSource interface {
	PathElements() []PathElement
}

// Path accumulates path segments. The current point is implicit: the
// renderer interprets segments in the order they were added.
type Path struct {
	elements PathElements
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// PathElements returns a copy of the segments.
func (p *Path) PathElements() []PathElement {
	return append(PathElements(nil), p.elements...)
}

// Len returns the number of segments.
func (p *Path) Len() int { return len(p.elements) }

func (p *Path) add(e PathElement) *Path {
	p.elements = append(p.elements, e)
	return p
}

// AddMoveTo starts a new subpath at pt.
func (p *Path) AddMoveTo(pt Point) *Path {
	return p.add(PathElement{ElementType: PathMoveTo, Point: &pt})
}

// AddLineTo adds a line from the current point to end.
func (p *Path) AddLineTo(end Point) *Path {
	return p.add(PathElement{ElementType: PathLineTo, EndPoint: &end})
}

// AddRect adds a closed rectangle subpath.
func (p *Path) AddRect(r Rect) *Path {
	return p.add(PathElement{ElementType: PathRect, Rect: &r})
}

// AddRoundedRect adds a rounded rectangle with one radius for every corner.
func (p *Path) AddRoundedRect(r Rect, radius Value) *Path {
	return p.add(PathElement{ElementType: PathRoundedRect, Rect: &r, Radius: &radius})
}

// AddRoundedRectWithRadiuses adds a rounded rectangle with a radius per
// corner. It fails with ErrCornerRadii unless exactly 4 radii are given.
func (p *Path) AddRoundedRectWithRadiuses(r Rect, radii []Value) error {
	if len(radii) != 4 {
		return buildErr("Path.AddRoundedRectWithRadiuses", "", ErrCornerRadii)
	}
	p.add(PathElement{ElementType: PathRoundedRect, Rect: &r, Radiuses: append([]Value(nil), radii...)})
	return nil
}

// AddOval adds an oval inscribed in r.
func (p *Path) AddOval(r Rect) *Path {
	return p.add(PathElement{ElementType: PathOval, Rect: &r})
}

// AddBezierCurve adds a cubic Bezier curve to end.
func (p *Path) AddBezierCurve(cp1, cp2, end Point) *Path {
	return p.add(PathElement{ElementType: PathBezierCurve, ControlPoint1: &cp1, ControlPoint2: &cp2, EndPoint: &end})
}

// AddQuadraticCurve adds a quadratic Bezier curve to end.
func (p *Path) AddQuadraticCurve(cp, end Point) *Path {
	return p.add(PathElement{ElementType: PathQuadraticCurve, ControlPoint1: &cp, EndPoint: &end})
}

// AddCloseSubpath closes the current subpath.
func (p *Path) AddCloseSubpath() *Path {
	return p.add(PathElement{ElementType: PathCloseSubpath})
}

// AddLines adds a move to the first point then a line to each later point.
// The subpath is left open. Nothing is added for an empty slice.
func (p *Path) AddLines(points []Point) *Path {
	for i, pt := range points {
		if i == 0 {
			p.AddMoveTo(pt)
			continue
		}
		p.AddLineTo(pt)
	}
	return p
}

// AddPolygon adds a closed polygon through points: a move to the first
// point, a line to each later point, a line back to the first point and a
// close. Nothing is added for an empty slice.
func (p *Path) AddPolygon(points []Point) *Path {
	if len(points) == 0 {
		return p
	}
	return p.AddLines(points).AddLineTo(points[0]).AddCloseSubpath()
}

// AddTriangle adds a closed triangle. It fails with ErrTrianglePoints,
// adding nothing, unless exactly 3 points are given.
func (p *Path) AddTriangle(points []Point) error {
	if len(points) != 3 {
		return buildErr("Path.AddTriangle", "", ErrTrianglePoints)
	}
	p.AddPolygon(points)
	return nil
}

// MarshalJSON encodes the path as its array of segments.
func (p *Path) MarshalJSON() ([]byte, error) {
	if p.elements == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.elements)
}

// UnmarshalJSON replaces the segments with a decoded array.
func (p *Path) UnmarshalJSON(data []byte) error {
	var elems PathElements
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	p.elements = elems
	return nil
}
