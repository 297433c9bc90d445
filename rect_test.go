package smig

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewRect(t *testing.T) {
	tests := []struct {
		name string
		opts []RectOption
		want string
	}{
		{
			name: "defaults",
			want: `{"origin":{"x":0,"y":0},"size":{"width":100,"height":100}}`,
		},
		{
			name: "conveniences",
			opts: []RectOption{WithXLoc(Num(5)), WithYLoc(Num(6)), WithWidth(Num(7)), WithHeight(Equation("$h"))},
			want: `{"origin":{"x":5,"y":6},"size":{"width":7,"height":"$h"}}`,
		},
		{
			name: "explicit origin and size win",
			opts: []RectOption{WithOrigin(Pt(1, 2)), WithXLoc(Num(50)), WithWidth(Num(50)), WithSize(Sz(3, 4))},
			want: `{"origin":{"x":1,"y":2},"size":{"width":3,"height":4}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(NewRect(tt.opts...))
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("NewRect() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRectInsetForStroking(t *testing.T) {
	r := RectXYWH(10, 20, 30, 1)
	if err := r.InsetForStroking(); err != nil {
		t.Fatal(err)
	}
	got, _ := json.Marshal(r)
	if want := `{"origin":{"x":10.5,"y":20.5},"size":{"width":29,"height":1}}`; string(got) != want {
		t.Errorf("InsetForStroking() = %s, want %s", got, want)
	}

	eq := RectXYWH(0, 0, 10, 10)
	eq.SetWidthEquation("$w")
	if err := eq.InsetForStroking(); !errors.Is(err, ErrNotNumeric) {
		t.Errorf("InsetForStroking() error = %v, want ErrNotNumeric", err)
	}
	if x, _ := eq.Origin.X.Float(); x != 0 {
		t.Errorf("failed InsetForStroking moved origin to %v", x)
	}
}
