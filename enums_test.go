package smig

import (
	"encoding/json"
	"errors"
	"testing"
)

func named[T interface {
	~uint8
	String() string
}](parse func(string) (T, error)) func(string) (string, error) {
	return func(s string) (string, error) {
		v, err := parse(s)
		return v.String(), err
	}
}

func TestEnumNames(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) (string, error)
		in    string
	}{
		{"ElementType", named(ParseElementType), "lineargradientfill"},
		{"PathElementType", named(ParsePathElementType), "pathbeziercurve"},
		{"TransformType", named(ParseTransformType), "rotate"},
		{"BlendMode", named(ParseBlendMode), "kCGBlendModePlusLighter"},
		{"LineCap", named(ParseLineCap), "kCGLineCapRound"},
		{"LineJoin", named(ParseLineJoin), "kCGLineJoinBevel"},
		{"InterpolationQuality", named(ParseInterpolationQuality), "kCGInterpolationHigh"},
		{"TextAlignment", named(ParseTextAlignment), "kCTTextAlignmentCenter"},
		{"UIFont", named(ParseUIFont), "kCTFontUIFontSystem"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse(tt.in)
			if err != nil {
				t.Fatalf("Parse%s(%q) error = %v", tt.name, tt.in, err)
			}
			if got != tt.in {
				t.Errorf("Parse%s(%q).String() = %q", tt.name, tt.in, got)
			}
			if _, err := tt.parse("bogus"); !errors.Is(err, ErrUnknownName) {
				t.Errorf("Parse%s(bogus) error = %v, want ErrUnknownName", tt.name, err)
			}
			if _, err := tt.parse(""); !errors.Is(err, ErrUnknownName) {
				t.Errorf("Parse%s(\"\") error = %v, want ErrUnknownName", tt.name, err)
			}
		})
	}
}

func TestEnumUnsetValue(t *testing.T) {
	var b BlendMode
	if _, err := b.MarshalText(); err == nil {
		t.Error("MarshalText() of an unset BlendMode should fail")
	}
	if got := b.String(); got != "BlendMode(0)" {
		t.Errorf("String() = %q, want BlendMode(0)", got)
	}
	if got := LineCap(42).String(); got != "LineCap(42)" {
		t.Errorf("String() = %q, want LineCap(42)", got)
	}
}

func TestEnumJSON(t *testing.T) {
	var v struct {
		Mode  BlendMode     `json:"blendmode"`
		Align TextAlignment `json:"textalignment"`
	}
	in := `{"blendmode":"kCGBlendModeMultiply","textalignment":"kCTTextAlignmentRight"}`
	if err := json.Unmarshal([]byte(in), &v); err != nil {
		t.Fatal(err)
	}
	if v.Mode != BlendMultiply || v.Align != AlignRight {
		t.Errorf("decoded %v, %v", v.Mode, v.Align)
	}
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != in {
		t.Errorf("Marshal() = %s, want %s", out, in)
	}

	if err := json.Unmarshal([]byte(`{"blendmode":"kCGBlendModeNope"}`), &v); !errors.Is(err, ErrUnknownName) {
		t.Errorf("Unmarshal() error = %v, want ErrUnknownName", err)
	}
}

func TestEnumLists(t *testing.T) {
	if got := len(BlendModes()); got != 28 {
		t.Errorf("len(BlendModes()) = %d, want 28", got)
	}
	fonts := UIFonts()
	fonts[0] = "changed"
	if UIFonts()[0] == "changed" {
		t.Error("UIFonts() exposes the internal table")
	}
}
