package smig

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestContextTransformMarshal(t *testing.T) {
	ct := ContextTransform{}.Translate(Pt(10, 20)).Scale(Pt(2, 2)).Rotate(Equation("$angle"))
	got, err := json.Marshal(ct)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"transformationtype":"translate","translation":{"x":10,"y":20}},` +
		`{"transformationtype":"scale","scale":{"x":2,"y":2}},` +
		`{"transformationtype":"rotate","rotation":"$angle"}]`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestContextTransformDoesNotAlias(t *testing.T) {
	base := ContextTransform{}.Translate(Pt(1, 1))
	a := base.Scale(Pt(2, 2))
	b := base.Rotate(Num(1))
	if a[1].Type != TransformScale || b[1].Type != TransformRotate {
		t.Errorf("appending to a shared base clobbered a sibling: %v %v", a[1].Type, b[1].Type)
	}
}

func TestAffineAff3RoundTrip(t *testing.T) {
	m := f64.Aff3{1, 2, 3, 4, 5, 6}
	if got := AffineFromAff3(m).Aff3(); got != m {
		t.Errorf("Aff3() = %v, want %v", got, m)
	}
	a := AffineFromAff3(m)
	if a.M11 != 1 || a.M21 != 2 || a.TX != 3 || a.M12 != 4 || a.M22 != 5 || a.TY != 6 {
		t.Errorf("AffineFromAff3() = %+v", a)
	}
}

func TestAffineCompose(t *testing.T) {
	tests := []struct {
		name   string
		t      AffineTransform
		x, y   float64
		wx, wy float64
	}{
		{"identity", IdentityAffine(), 3, 4, 3, 4},
		{"translate", IdentityAffine().Translate(10, 20), 5, 5, 15, 25},
		{"scale", IdentityAffine().Scale(2, 3), 10, 10, 20, 30},
		{"rotate quarter", IdentityAffine().Rotate(math.Pi / 2), 1, 0, 0, 1},
		{"translate then scale", IdentityAffine().Translate(10, 0).Scale(2, 2), 1, 1, 12, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.t.TransformPoint(tt.x, tt.y)
			if !almostEqual(x, tt.wx) || !almostEqual(y, tt.wy) {
				t.Errorf("TransformPoint(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestAffineMarshal(t *testing.T) {
	got, _ := json.Marshal(IdentityAffine().Translate(5, 6))
	if want := `{"m11":1,"m12":0,"m21":0,"m22":1,"tX":5,"tY":6}`; string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestTransformDocConflict(t *testing.T) {
	var d transformDoc
	if err := json.Unmarshal([]byte(`{"contexttransformation":[],"affinetransform":{"m11":1}}`), &d); err != nil {
		t.Fatal(err)
	}
	if _, err := d.transform(); !errors.Is(err, ErrTransformConflict) {
		t.Errorf("transform() error = %v, want ErrTransformConflict", err)
	}
}
