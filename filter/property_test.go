package filter

import (
	"encoding/json"
	"testing"

	"github.com/gogpu/smig"
)

func TestNumberClamp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{15, 10},
		{-5, 0},
		{5, 5},
		{0, 0},
		{10, 10},
	}
	for _, tt := range tests {
		p := NumberPropertyWithRange("inputRadius", 0, 10, 2)
		p.SetNumber(tt.in)
		if got, ok := p.Number(); !ok || got != tt.want {
			t.Errorf("SetNumber(%v) stored %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetIntegerClamps(t *testing.T) {
	p := NumberPropertyWithRange("inputCount", 1, 8, 4).SetInteger(20)
	if got, _ := p.Number(); got != 8 {
		t.Errorf("SetInteger(20) stored %v, want 8", got)
	}
}

func TestNoClampWithoutBounds(t *testing.T) {
	p := NumberProperty("inputAngle", 1).SetNumber(1e6)
	if got, _ := p.Number(); got != 1e6 {
		t.Errorf("SetNumber(1e6) stored %v, want 1e6", got)
	}
}

func TestPropertyMarshal(t *testing.T) {
	tests := []struct {
		name string
		p    *Property
		want string
	}{
		{
			name: "vector",
			p:    VectorProperty("inputCenter", []float64{50, 25.5}),
			want: `{"cifilterkey":"inputCenter","cifiltervalueclass":"CIVector","cifiltervalue":"[ 50 25.5 ]"}`,
		},
		{
			name: "color string",
			p:    ColorPropertyFromComponents("inputColor", []float64{0, 0, 1, 1}),
			want: `{"cifilterkey":"inputColor","cifiltervalueclass":"CIColor","cifiltervalue":"0 0 1 1"}`,
		},
		{
			name: "color document",
			p:    ColorProperty("inputColor", smig.Gray(0.5)),
			want: `{"cifilterkey":"inputColor","cifiltervalueclass":"CIColor","cifiltervalue":{"gray":0.5,"alpha":1,"colorcolorprofilename":"kCGColorSpaceGenericGray"}}`,
		},
		{
			name: "ranged number",
			p:    NumberPropertyWithRange("inputAngle", 0, 6.5, 3),
			want: `{"cifilterkey":"inputAngle","cifiltervalue":3,"min":0,"max":6.5,"default":3}`,
		},
		{
			name: "image from object",
			p:    ImageProperty("inputImage", smig.ByName(smig.ObjectImageImporter, "in")),
			want: `{"cifilterkey":"inputImage","cifiltervalueclass":"CIImage","cifiltervalue":{"objecttype":"imageimporter","objectname":"in"}}`,
		},
		{
			name: "image from filter",
			p:    ImageProperty("inputImage", ByIndex(0)),
			want: `{"cifilterkey":"inputImage","cifiltervalueclass":"CIImage","cifiltervalue":{"cifilterindex":0}}`,
		},
		{
			name: "image unset",
			p:    ImageProperty("inputBackgroundImage", nil),
			want: `{"cifilterkey":"inputBackgroundImage","cifiltervalueclass":"CIImage"}`,
		},
		{
			name: "affine",
			p:    AffineTransformProperty("inputTransform", smig.IdentityAffine()),
			want: `{"cifilterkey":"inputTransform","cifiltervalueclass":"NSAffineTransform","cifiltervalue":{"m11":1,"m12":0,"m21":0,"m22":1,"tX":0,"tY":0}}`,
		},
		{
			name: "equation",
			p:    EquationProperty("inputRadius", "$r * 2"),
			want: `{"cifilterkey":"inputRadius","cifiltervalue":"$r * 2"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.p)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s\nwant %s", got, tt.want)
			}

			var back Property
			if err := json.Unmarshal(got, &back); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			again, _ := json.Marshal(&back)
			if string(again) != tt.want {
				t.Errorf("round trip = %s\nwant %s", again, tt.want)
			}
		})
	}
}
