package smig

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Transform is the coordinate transform attached to a draw instruction.
// It is either a ContextTransform or an AffineTransform; an instruction
// holds at most one.
type Transform interface {
	transformKey() string
}

// TransformStep is one step of a ContextTransform. Exactly one of
// Translation, Scale and Rotation is set, matching Type.
type TransformStep struct {
	Type        TransformType `json:"transformationtype"`
	Translation *Point        `json:"translation,omitempty"`
	Scale       *Point        `json:"scale,omitempty"`
	Rotation    *Value        `json:"rotation,omitempty"`
}

// ContextTransform is an ordered list of steps applied to the drawing
// context. Order is significant.
//
// Example:
//
//	t := smig.ContextTransform{}.Translate(smig.Pt(100, 50)).Rotate(smig.Num(math.Pi / 4))
type ContextTransform []TransformStep

func (ContextTransform) transformKey() string { return "contexttransformation" }

func (c ContextTransform) add(s TransformStep) ContextTransform {
	return append(c[:len(c):len(c)], s)
}

// Translate returns c with a translation appended.
func (c ContextTransform) Translate(offset Point) ContextTransform {
	return c.add(TransformStep{Type: TransformTranslate, Translation: &offset})
}

// Scale returns c with a scale appended. The point holds the x and y factors.
func (c ContextTransform) Scale(factors Point) ContextTransform {
	return c.add(TransformStep{Type: TransformScale, Scale: &factors})
}

// Rotate returns c with a rotation, in radians, appended.
func (c ContextTransform) Rotate(angle Value) ContextTransform {
	return c.add(TransformStep{Type: TransformRotate, Rotation: &angle})
}

// AffineTransform is a CoreGraphics affine matrix:
//
//	x' = M11*x + M21*y + TX
//	y' = M12*x + M22*y + TY
type AffineTransform struct {
	M11 float64 `json:"m11"`
	M12 float64 `json:"m12"`
	M21 float64 `json:"m21"`
	M22 float64 `json:"m22"`
	TX  float64 `json:"tX"`
	TY  float64 `json:"tY"`
}

func (AffineTransform) transformKey() string { return "affinetransform" }

// IdentityAffine returns the identity transform.
func IdentityAffine() AffineTransform {
	return AffineTransform{M11: 1, M22: 1}
}

// AffineFromAff3 converts a row-major f64.Aff3 to an AffineTransform.
func AffineFromAff3(m f64.Aff3) AffineTransform {
	return AffineTransform{
		M11: m[0], M21: m[1], TX: m[2],
		M12: m[3], M22: m[4], TY: m[5],
	}
}

// Aff3 returns t as a row-major f64.Aff3.
func (t AffineTransform) Aff3() f64.Aff3 {
	return f64.Aff3{
		t.M11, t.M21, t.TX,
		t.M12, t.M22, t.TY,
	}
}

// Multiply returns the transform that applies other first, then t.
func (t AffineTransform) Multiply(other AffineTransform) AffineTransform {
	m, o := t.Aff3(), other.Aff3()
	return AffineFromAff3(f64.Aff3{
		m[0]*o[0] + m[1]*o[3],
		m[0]*o[1] + m[1]*o[4],
		m[0]*o[2] + m[1]*o[5] + m[2],
		m[3]*o[0] + m[4]*o[3],
		m[3]*o[1] + m[4]*o[4],
		m[3]*o[2] + m[4]*o[5] + m[5],
	})
}

// Translate returns t with a translation applied before it.
func (t AffineTransform) Translate(tx, ty float64) AffineTransform {
	return t.Multiply(AffineTransform{M11: 1, M22: 1, TX: tx, TY: ty})
}

// Scale returns t with a scale applied before it.
func (t AffineTransform) Scale(sx, sy float64) AffineTransform {
	return t.Multiply(AffineTransform{M11: sx, M22: sy})
}

// Rotate returns t with a rotation, in radians, applied before it.
func (t AffineTransform) Rotate(angle float64) AffineTransform {
	sin, cos := math.Sincos(angle)
	return t.Multiply(AffineTransform{M11: cos, M12: sin, M21: -sin, M22: cos})
}

// TransformPoint applies t to a point.
func (t AffineTransform) TransformPoint(x, y float64) (float64, float64) {
	return t.M11*x + t.M21*y + t.TX, t.M12*x + t.M22*y + t.TY
}

// transformDoc is how a Transform appears inside an instruction document.
type transformDoc struct {
	ContextTransform ContextTransform `json:"contexttransformation,omitempty"`
	AffineTransform  *AffineTransform `json:"affinetransform,omitempty"`
}

func newTransformDoc(t Transform) transformDoc {
	switch t := t.(type) {
	case ContextTransform:
		return transformDoc{ContextTransform: t}
	case AffineTransform:
		return transformDoc{AffineTransform: &t}
	case *AffineTransform:
		return transformDoc{AffineTransform: t}
	}
	return transformDoc{}
}

func (d transformDoc) transform() (Transform, error) {
	switch {
	case d.ContextTransform != nil && d.AffineTransform != nil:
		return nil, ErrTransformConflict
	case d.AffineTransform != nil:
		return *d.AffineTransform, nil
	case d.ContextTransform != nil:
		return d.ContextTransform, nil
	}
	return nil, nil
}

func (s TransformStep) validate() error {
	ok := false
	switch s.Type {
	case TransformTranslate:
		ok = s.Translation != nil
	case TransformScale:
		ok = s.Scale != nil
	case TransformRotate:
		ok = s.Rotation != nil
	}
	if !ok {
		return fmt.Errorf("%w: %v step operand", ErrMissingField, s.Type)
	}
	return nil
}
