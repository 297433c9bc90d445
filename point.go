package smig

// Point is a 2D location whose coordinates may be numbers or equations.
type Point struct {
	X Value `json:"x"`
	Y Value `json:"y"`
}

// Pt is a convenience function to create a numeric Point.
func Pt(x, y float64) Point {
	return Point{X: Num(x), Y: Num(y)}
}

// AddXY offsets both coordinates. It fails with ErrNotNumeric, leaving p
// unchanged, if either coordinate holds an equation.
func (p *Point) AddXY(dx, dy float64) error {
	x, okX := p.X.Float()
	y, okY := p.Y.Float()
	if !okX || !okY {
		return buildErr("Point.AddXY", "", ErrNotNumeric)
	}
	p.X, p.Y = Num(x+dx), Num(y+dy)
	return nil
}

// SetXEquation replaces the x coordinate with an equation.
func (p *Point) SetXEquation(eq string) *Point {
	p.X = Equation(eq)
	return p
}

// SetYEquation replaces the y coordinate with an equation.
func (p *Point) SetYEquation(eq string) *Point {
	p.Y = Equation(eq)
	return p
}

// Size is a width and height whose dimensions may be numbers or equations.
type Size struct {
	Width  Value `json:"width"`
	Height Value `json:"height"`
}

// Sz is a convenience function to create a numeric Size.
func Sz(width, height float64) Size {
	return Size{Width: Num(width), Height: Num(height)}
}

// AddWidthHeight grows both dimensions. It fails with ErrNotNumeric, leaving
// s unchanged, if either dimension holds an equation.
func (s *Size) AddWidthHeight(dw, dh float64) error {
	w, okW := s.Width.Float()
	h, okH := s.Height.Float()
	if !okW || !okH {
		return buildErr("Size.AddWidthHeight", "", ErrNotNumeric)
	}
	s.Width, s.Height = Num(w+dw), Num(h+dh)
	return nil
}

// SetWidthEquation replaces the width with an equation.
func (s *Size) SetWidthEquation(eq string) *Size {
	s.Width = Equation(eq)
	return s
}

// SetHeightEquation replaces the height with an equation.
func (s *Size) SetHeightEquation(eq string) *Size {
	s.Height = Equation(eq)
	return s
}

// Line is a segment between two points.
type Line struct {
	Start Point `json:"startpoint"`
	End   Point `json:"endpoint"`
}

// NewLine returns the line from start to end.
func NewLine(start, end Point) Line {
	return Line{Start: start, End: end}
}
