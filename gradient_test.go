package smig

import (
	"errors"
	"testing"
)

func TestGradientDefaults(t *testing.T) {
	g := NewLinearGradientElement().
		SetLine(NewLine(Pt(0, 0), Pt(100, 0))).
		SetPath(NewPath().AddRect(RectXYWH(0, 0, 100, 10)))
	if err := g.AddColorStop(0, Gray(0)); err != nil {
		t.Fatal(err)
	}
	if err := g.AddColorStop(1, Gray(1)); err != nil {
		t.Fatal(err)
	}
	want := `{"elementtype":"lineargradientfill","startpoint":{"x":0,"y":0},` +
		`"line":{"startpoint":{"x":0,"y":0},"endpoint":{"x":100,"y":0}},` +
		`"arrayofpathelements":[{"elementtype":"pathrectangle","rect":{"origin":{"x":0,"y":0},"size":{"width":100,"height":10}}}],` +
		`"arrayoflocations":[0,1],` +
		`"arrayofcolors":[{"gray":0,"alpha":1,"colorcolorprofilename":"kCGColorSpaceGenericGray"},` +
		`{"gray":1,"alpha":1,"colorcolorprofilename":"kCGColorSpaceGenericGray"}]}`
	if got := marshalString(t, g); got != want {
		t.Errorf("Marshal() = %s\nwant %s", got, want)
	}
}

func TestGradientRejectsBeforeMutation(t *testing.T) {
	g := NewLinearGradientElement()
	if err := g.SetLocationsAndColors([]float64{0, 1}, []*Color{RGB(1, 1, 1), RGB(0, 0, 0)}); err != nil {
		t.Fatal(err)
	}
	before := marshalDoc(t, g)

	tests := []struct {
		name   string
		locs   []float64
		colors []*Color
		want   error
	}{
		{"more locations", []float64{0, 0.5, 1}, []*Color{RGB(1, 1, 1)}, ErrLengthMismatch},
		{"more colors", []float64{0}, []*Color{RGB(1, 1, 1), RGB(0, 0, 0)}, ErrLengthMismatch},
		{"location above 1", []float64{0, 1.5}, []*Color{RGB(1, 1, 1), RGB(0, 0, 0)}, ErrLocationRange},
		{"negative location", []float64{-0.1}, []*Color{RGB(1, 1, 1)}, ErrLocationRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.SetLocationsAndColors(tt.locs, tt.colors); !errors.Is(err, tt.want) {
				t.Errorf("SetLocationsAndColors() error = %v, want %v", err, tt.want)
			}
			if after := marshalDoc(t, g); after != before {
				t.Errorf("failed call mutated the element:\n got %s\nwant %s", after, before)
			}
		})
	}
}

func TestGradientRequiresLineAndPath(t *testing.T) {
	g := NewLinearGradientElement()
	if _, err := g.Document(); !errors.Is(err, ErrMissingField) {
		t.Errorf("Document() error = %v, want ErrMissingField", err)
	}
}

// marshalDoc encodes the element fields without validation.
func marshalDoc(t *testing.T, g *LinearGradientElement) string {
	t.Helper()
	return marshalString(t, g.d)
}
