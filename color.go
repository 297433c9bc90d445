package smig

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/gogpu/smig/internal/wire"
)

// Named color profiles understood by the renderer.
const (
	ProfileSRGB             = "kCGColorSpaceSRGB"
	ProfileGenericRGB       = "kCGColorSpaceGenericRGB"
	ProfileGenericRGBLinear = "kCGColorSpaceGenericRGBLinear"
	ProfileAdobeRGB1998     = "kCGColorSpaceAdobeRGB1998"
	ProfileGenericGray      = "kCGColorSpaceGenericGray"
	ProfileGenericGrayGamma = "kCGColorSpaceGenericGrayGamma2_2"
	ProfileGenericCMYK      = "kCGColorSpaceGenericCMYK"

	defaultRGBProfile  = ProfileSRGB
	defaultGrayProfile = ProfileGenericGray
)

// RGBProfiles returns the profiles an RGBA color may name.
func RGBProfiles() []string {
	return []string{ProfileGenericRGB, ProfileGenericRGBLinear, ProfileSRGB, ProfileAdobeRGB1998}
}

// GrayProfiles returns the profiles a gray color may name.
func GrayProfiles() []string {
	return []string{ProfileGenericGray, ProfileGenericGrayGamma}
}

// ColorKind identifies the color model of a Color.
type ColorKind uint8

const (
	ColorRGBA ColorKind = iota
	ColorGray
	ColorCMYK
)

var colorKindNames = [...]string{"RGBA", "Gray", "CMYK"}

func (k ColorKind) String() string {
	if int(k) < len(colorKindNames) {
		return colorKindNames[k]
	}
	return fmt.Sprintf("ColorKind(%d)", k)
}

// Color is an RGBA, gray or CMYK color. Components are usually in [0, 1]
// and may be equations.
type Color struct {
	kind    ColorKind
	c       [4]Value
	profile string
}

// RGB returns an opaque sRGB color.
func RGB(r, g, b float64) *Color {
	return RGBA(r, g, b, 1)
}

// RGBA returns an sRGB color.
func RGBA(r, g, b, a float64) *Color {
	return RGBAValues(Num(r), Num(g), Num(b), Num(a))
}

// RGBAValues returns an sRGB color whose components may be equations.
func RGBAValues(r, g, b, a Value) *Color {
	return &Color{kind: ColorRGBA, c: [4]Value{r, g, b, a}, profile: defaultRGBProfile}
}

// Gray returns an opaque generic gray color.
func Gray(g float64) *Color {
	return GrayValues(Num(g), Num(1))
}

// GrayA returns a generic gray color with alpha.
func GrayA(g, a float64) *Color {
	return GrayValues(Num(g), Num(a))
}

// GrayValues returns a generic gray color whose components may be equations.
func GrayValues(g, a Value) *Color {
	return &Color{kind: ColorGray, c: [4]Value{g, a}, profile: defaultGrayProfile}
}

// CMYK returns a generic CMYK color. Its profile cannot be changed.
func CMYK(c, m, y, k float64) *Color {
	return CMYKValues(Num(c), Num(m), Num(y), Num(k))
}

// CMYKValues returns a generic CMYK color whose components may be equations.
func CMYKValues(c, m, y, k Value) *Color {
	return &Color{kind: ColorCMYK, c: [4]Value{c, m, y, k}, profile: ProfileGenericCMYK}
}

// HexColor parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA" with an optional
// leading '#'.
func HexColor(hex string) (*Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b, a uint32
	a = 255

	var ok bool
	switch len(hex) {
	case 3, 4:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		if ok && len(hex) == 4 {
			ok = parseHex(hex[3:4], &a)
			a *= 17
		}
		r, g, b = r*17, g*17, b*17
	case 6, 8:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
		if ok && len(hex) == 8 {
			ok = parseHex(hex[6:8], &a)
		}
	}
	if !ok {
		return nil, fmt.Errorf("smig: invalid hex color %q", hex)
	}
	return RGBA(float64(r)/255, float64(g)/255, float64(b)/255, float64(a)/255), nil
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// NamedColor returns the SVG 1.1 color with the given lowercase name,
// such as "cornflowerblue".
func NamedColor(name string) (*Color, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: color %q", ErrUnknownName, name)
	}
	return ColorFrom(c), nil
}

// ColorFrom converts a standard color.Color to an sRGB Color.
func ColorFrom(c color.Color) *Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(float64(n.R)/255, float64(n.G)/255, float64(n.B)/255, float64(n.A)/255)
}

// Kind returns the color model.
func (c *Color) Kind() ColorKind { return c.kind }

// Profile returns the color profile name.
func (c *Color) Profile() string { return c.profile }

// Components returns the components in wire order: red, green, blue, alpha
// for RGBA; gray, alpha for gray; cyan, magenta, yellow, black for CMYK.
func (c *Color) Components() []Value {
	if c.kind == ColorGray {
		return []Value{c.c[0], c.c[1]}
	}
	return []Value{c.c[0], c.c[1], c.c[2], c.c[3]}
}

// SetProfile selects a named profile for an RGBA or gray color.
// CMYK colors keep the generic CMYK profile.
func (c *Color) SetProfile(name string) *Color {
	if c.kind != ColorCMYK {
		c.profile = name
	}
	return c
}

// SetAlpha replaces the alpha of an RGBA or gray color.
func (c *Color) SetAlpha(a Value) *Color {
	switch c.kind {
	case ColorRGBA:
		c.c[3] = a
	case ColorGray:
		c.c[1] = a
	}
	return c
}

func (c *Color) keys() []string {
	switch c.kind {
	case ColorGray:
		return []string{"gray", "alpha"}
	case ColorCMYK:
		return []string{"cyan", "magenta", "yellow", "cmykblack"}
	default:
		return []string{"red", "green", "blue", "alpha"}
	}
}

// MarshalJSON encodes the color with its components in wire order followed
// by the profile name.
func (c *Color) MarshalJSON() ([]byte, error) {
	var o wire.Object
	for i, k := range c.keys() {
		o.Field(k, c.c[i])
	}
	o.Field("colorcolorprofilename", c.profile)
	return o.Bytes()
}

// UnmarshalJSON decodes any color variant, choosing it by its component keys.
// A missing alpha is 1 and a missing profile is the variant's default.
func (c *Color) UnmarshalJSON(data []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	switch {
	case m["cyan"] != nil:
		*c = Color{kind: ColorCMYK, profile: ProfileGenericCMYK}
	case m["gray"] != nil:
		*c = Color{kind: ColorGray, profile: defaultGrayProfile}
	case m["red"] != nil:
		*c = Color{kind: ColorRGBA, profile: defaultRGBProfile}
	default:
		return fmt.Errorf("smig: color has no red, gray or cyan component")
	}
	for i, k := range c.keys() {
		raw, ok := m[k]
		if !ok {
			if k == "alpha" {
				c.c[i] = Num(1)
				continue
			}
			return fmt.Errorf("%w: color %s", ErrMissingField, k)
		}
		if err := json.Unmarshal(raw, &c.c[i]); err != nil {
			return fmt.Errorf("smig: color %s: %w", k, err)
		}
	}
	if raw, ok := m["colorcolorprofilename"]; ok && c.kind != ColorCMYK {
		if err := json.Unmarshal(raw, &c.profile); err != nil {
			return fmt.Errorf("smig: color profile: %w", err)
		}
	}
	return nil
}
