package smig

// Rect is an origin and a size.
type Rect struct {
	Origin Point `json:"origin"`
	Size   Size  `json:"size"`
}

// RectOption configures NewRect.
type RectOption func(*rectOptions)

type rectOptions struct {
	origin *Point
	size   *Size
	x, y   Value
	w, h   Value
}

// WithOrigin sets the origin. It takes precedence over WithXLoc and WithYLoc.
func WithOrigin(p Point) RectOption {
	return func(o *rectOptions) { o.origin = &p }
}

// WithSize sets the size. It takes precedence over WithWidth and WithHeight.
func WithSize(s Size) RectOption {
	return func(o *rectOptions) { o.size = &s }
}

// WithXLoc sets the origin x coordinate.
func WithXLoc(x Value) RectOption {
	return func(o *rectOptions) { o.x = x }
}

// WithYLoc sets the origin y coordinate.
func WithYLoc(y Value) RectOption {
	return func(o *rectOptions) { o.y = y }
}

// WithWidth sets the width.
func WithWidth(w Value) RectOption {
	return func(o *rectOptions) { o.w = w }
}

// WithHeight sets the height.
func WithHeight(h Value) RectOption {
	return func(o *rectOptions) { o.h = h }
}

// NewRect builds a Rect. Without options it is the 100x100 rectangle at
// the origin.
//
// Example:
//
//	r := smig.NewRect(smig.WithXLoc(smig.Num(20)), smig.WithWidth(smig.Equation("$w")))
func NewRect(opts ...RectOption) Rect {
	o := rectOptions{w: Num(100), h: Num(100)}
	for _, opt := range opts {
		opt(&o)
	}
	r := Rect{
		Origin: Point{X: o.x, Y: o.y},
		Size:   Size{Width: o.w, Height: o.h},
	}
	if o.origin != nil {
		r.Origin = *o.origin
	}
	if o.size != nil {
		r.Size = *o.size
	}
	return r
}

// RectXYWH returns a numeric Rect.
func RectXYWH(x, y, width, height float64) Rect {
	return Rect{Origin: Pt(x, y), Size: Sz(width, height)}
}

// SetXEquation replaces the origin x coordinate with an equation.
func (r *Rect) SetXEquation(eq string) *Rect {
	r.Origin.SetXEquation(eq)
	return r
}

// SetYEquation replaces the origin y coordinate with an equation.
func (r *Rect) SetYEquation(eq string) *Rect {
	r.Origin.SetYEquation(eq)
	return r
}

// SetWidthEquation replaces the width with an equation.
func (r *Rect) SetWidthEquation(eq string) *Rect {
	r.Size.SetWidthEquation(eq)
	return r
}

// SetHeightEquation replaces the height with an equation.
func (r *Rect) SetHeightEquation(eq string) *Rect {
	r.Size.SetHeightEquation(eq)
	return r
}

// InsetForStroking moves the origin half a pixel in and shrinks each
// dimension larger than 1 by one pixel, so a 1 pixel stroke lands on pixel
// centers. All four fields must be numeric; on failure r is unchanged.
func (r *Rect) InsetForStroking() error {
	x, okX := r.Origin.X.Float()
	y, okY := r.Origin.Y.Float()
	w, okW := r.Size.Width.Float()
	h, okH := r.Size.Height.Float()
	if !okX || !okY || !okW || !okH {
		return buildErr("Rect.InsetForStroking", "", ErrNotNumeric)
	}
	if w > 1 {
		w--
	}
	if h > 1 {
		h--
	}
	*r = RectXYWH(x+0.5, y+0.5, w, h)
	return nil
}
