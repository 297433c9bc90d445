package smig

// Shadow is a drop shadow drawn beneath an element.
type Shadow struct {
	FillColor *Color `json:"fillcolor"`
	Offset    Size   `json:"offset"`
	Blur      Value  `json:"blur"`
}

// NewShadow returns a shadow of color c displaced by offset and blurred by blur.
func NewShadow(c *Color, offset Size, blur Value) *Shadow {
	return &Shadow{FillColor: c, Offset: offset, Blur: blur}
}
