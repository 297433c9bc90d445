package smig

import (
	"fmt"

	"github.com/gogpu/smig/internal/wire"
)

// The enumerations below serialize to the names the renderer uses. The zero
// value of each is unset and is omitted from documents; parsing rejects
// names the renderer does not know.

// ElementType tags a draw instruction. It serializes as the elementtype key.
type ElementType uint8

const (
	ElementFillRect ElementType = iota + 1 // Fill a rectangle
	ElementStrokeRect                      // Stroke a rectangle
	ElementFillOval                        // Fill an oval inscribed in a rectangle
	ElementStrokeOval                      // Stroke an oval inscribed in a rectangle
	ElementLine                            // Stroke a single line
	ElementLines                           // Stroke connected line segments
	ElementFillRoundedRect                 // Fill a rounded rectangle
	ElementStrokeRoundedRect               // Stroke a rounded rectangle
	ElementFillPath                        // Fill a path
	ElementStrokePath                      // Stroke a path
	ElementFillAndStrokePath               // Fill then stroke a path
	ElementText                            // Draw text
	ElementLinearGradient                  // Fill a path with a linear gradient
	ElementImage                           // Draw an image
	ElementArray                           // Draw a list of elements in order
)

var elementTypeNames = []string{
	ElementFillRect:          "fillrectangle",
	ElementStrokeRect:        "strokerectangle",
	ElementFillOval:          "filloval",
	ElementStrokeOval:        "strokeoval",
	ElementLine:              "drawline",
	ElementLines:             "drawlines",
	ElementFillRoundedRect:   "fillroundedrectangle",
	ElementStrokeRoundedRect: "strokeroundedrectangle",
	ElementFillPath:          "fillpath",
	ElementStrokePath:        "strokepath",
	ElementFillAndStrokePath: "fillandstrokepath",
	ElementText:              "drawbasicstring",
	ElementLinearGradient:    "lineargradientfill",
	ElementImage:             "drawimage",
	ElementArray:             "arrayofelements",
}

// ParseElementType returns the ElementType named s.
func ParseElementType(s string) (ElementType, error) {
	return parseName[ElementType](elementTypeNames, "element type", s)
}

func (e ElementType) String() string { return enumString(elementTypeNames, "ElementType", e) }

// MarshalText implements encoding.TextMarshaler.
func (e ElementType) MarshalText() ([]byte, error) {
	return wire.MarshalName(elementTypeNames, e, "element type")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *ElementType) UnmarshalText(text []byte) (err error) {
	*e, err = ParseElementType(string(text))
	return err
}

// PathElementType tags one path segment.
type PathElementType uint8

const (
	PathMoveTo PathElementType = iota + 1
	PathLineTo
	PathRect
	PathRoundedRect
	PathOval
	PathBezierCurve
	PathQuadraticCurve
	PathCloseSubpath
)

var pathElementTypeNames = []string{
	PathMoveTo:         "pathmoveto",
	PathLineTo:         "pathlineto",
	PathRect:           "pathrectangle",
	PathRoundedRect:    "pathroundedrectangle",
	PathOval:           "pathoval",
	PathBezierCurve:    "pathbeziercurve",
	PathQuadraticCurve: "pathquadraticcurve",
	PathCloseSubpath:   "pathclosesubpath",
}

// ParsePathElementType returns the PathElementType named s.
func ParsePathElementType(s string) (PathElementType, error) {
	return parseName[PathElementType](pathElementTypeNames, "path element type", s)
}

func (p PathElementType) String() string { return enumString(pathElementTypeNames, "PathElementType", p) }

// MarshalText implements encoding.TextMarshaler.
func (p PathElementType) MarshalText() ([]byte, error) {
	return wire.MarshalName(pathElementTypeNames, p, "path element type")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PathElementType) UnmarshalText(text []byte) (err error) {
	*p, err = ParsePathElementType(string(text))
	return err
}

// TransformType names one step of a ContextTransform.
type TransformType uint8

const (
	TransformTranslate TransformType = iota + 1
	TransformScale
	TransformRotate
)

var transformTypeNames = []string{
	TransformTranslate: "translate",
	TransformScale:     "scale",
	TransformRotate:    "rotate",
}

// ParseTransformType returns the TransformType named s.
func ParseTransformType(s string) (TransformType, error) {
	return parseName[TransformType](transformTypeNames, "transformation type", s)
}

func (t TransformType) String() string { return enumString(transformTypeNames, "TransformType", t) }

// MarshalText implements encoding.TextMarshaler.
func (t TransformType) MarshalText() ([]byte, error) {
	return wire.MarshalName(transformTypeNames, t, "transformation type")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TransformType) UnmarshalText(text []byte) (err error) {
	*t, err = ParseTransformType(string(text))
	return err
}

// BlendMode is a CoreGraphics blend mode.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota + 1
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendSoftLight
	BlendHardLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
	BlendClear
	BlendCopy
	BlendSourceIn
	BlendSourceOut
	BlendSourceAtop
	BlendDestinationOver
	BlendDestinationIn
	BlendDestinationOut
	BlendDestinationAtop
	BlendXOR
	BlendPlusDarker
	BlendPlusLighter
)

var blendModeNames = []string{
	BlendNormal:          "kCGBlendModeNormal",
	BlendMultiply:        "kCGBlendModeMultiply",
	BlendScreen:          "kCGBlendModeScreen",
	BlendOverlay:         "kCGBlendModeOverlay",
	BlendDarken:          "kCGBlendModeDarken",
	BlendLighten:         "kCGBlendModeLighten",
	BlendColorDodge:      "kCGBlendModeColorDodge",
	BlendColorBurn:       "kCGBlendModeColorBurn",
	BlendSoftLight:       "kCGBlendModeSoftLight",
	BlendHardLight:       "kCGBlendModeHardLight",
	BlendDifference:      "kCGBlendModeDifference",
	BlendExclusion:       "kCGBlendModeExclusion",
	BlendHue:             "kCGBlendModeHue",
	BlendSaturation:      "kCGBlendModeSaturation",
	BlendColor:           "kCGBlendModeColor",
	BlendLuminosity:      "kCGBlendModeLuminosity",
	BlendClear:           "kCGBlendModeClear",
	BlendCopy:            "kCGBlendModeCopy",
	BlendSourceIn:        "kCGBlendModeSourceIn",
	BlendSourceOut:       "kCGBlendModeSourceOut",
	BlendSourceAtop:      "kCGBlendModeSourceAtop",
	BlendDestinationOver: "kCGBlendModeDestinationOver",
	BlendDestinationIn:   "kCGBlendModeDestinationIn",
	BlendDestinationOut:  "kCGBlendModeDestinationOut",
	BlendDestinationAtop: "kCGBlendModeDestinationAtop",
	BlendXOR:             "kCGBlendModeXOR",
	BlendPlusDarker:      "kCGBlendModePlusDarker",
	BlendPlusLighter:     "kCGBlendModePlusLighter",
}

// ParseBlendMode returns the BlendMode named s.
func ParseBlendMode(s string) (BlendMode, error) {
	return parseName[BlendMode](blendModeNames, "blend mode", s)
}

func (b BlendMode) String() string { return enumString(blendModeNames, "BlendMode", b) }

// MarshalText implements encoding.TextMarshaler.
func (b BlendMode) MarshalText() ([]byte, error) {
	return wire.MarshalName(blendModeNames, b, "blend mode")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BlendMode) UnmarshalText(text []byte) (err error) {
	*b, err = ParseBlendMode(string(text))
	return err
}

// BlendModes lists every blend mode name.
func BlendModes() []string { return append([]string(nil), blendModeNames[1:]...) }

// LineCap is the shape drawn at open line ends.
type LineCap uint8

const (
	CapButt LineCap = iota + 1
	CapRound
	CapSquare
)

var lineCapNames = []string{
	CapButt:   "kCGLineCapButt",
	CapRound:  "kCGLineCapRound",
	CapSquare: "kCGLineCapSquare",
}

// ParseLineCap returns the LineCap named s.
func ParseLineCap(s string) (LineCap, error) {
	return parseName[LineCap](lineCapNames, "line cap", s)
}

func (l LineCap) String() string { return enumString(lineCapNames, "LineCap", l) }

// MarshalText implements encoding.TextMarshaler.
func (l LineCap) MarshalText() ([]byte, error) {
	return wire.MarshalName(lineCapNames, l, "line cap")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *LineCap) UnmarshalText(text []byte) (err error) {
	*l, err = ParseLineCap(string(text))
	return err
}

// LineJoin is the shape drawn where stroked segments meet.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota + 1
	JoinRound
	JoinBevel
)

var lineJoinNames = []string{
	JoinMiter: "kCGLineJoinMiter",
	JoinRound: "kCGLineJoinRound",
	JoinBevel: "kCGLineJoinBevel",
}

// ParseLineJoin returns the LineJoin named s.
func ParseLineJoin(s string) (LineJoin, error) {
	return parseName[LineJoin](lineJoinNames, "line join", s)
}

func (l LineJoin) String() string { return enumString(lineJoinNames, "LineJoin", l) }

// MarshalText implements encoding.TextMarshaler.
func (l LineJoin) MarshalText() ([]byte, error) {
	return wire.MarshalName(lineJoinNames, l, "line join")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *LineJoin) UnmarshalText(text []byte) (err error) {
	*l, err = ParseLineJoin(string(text))
	return err
}

// InterpolationQuality controls image resampling when drawing images.
type InterpolationQuality uint8

const (
	InterpolationDefault InterpolationQuality = iota + 1
	InterpolationNone
	InterpolationLow
	InterpolationMedium
	InterpolationHigh
)

var interpolationQualityNames = []string{
	InterpolationDefault: "kCGInterpolationDefault",
	InterpolationNone:    "kCGInterpolationNone",
	InterpolationLow:     "kCGInterpolationLow",
	InterpolationMedium:  "kCGInterpolationMedium",
	InterpolationHigh:    "kCGInterpolationHigh",
}

// ParseInterpolationQuality returns the InterpolationQuality named s.
func ParseInterpolationQuality(s string) (InterpolationQuality, error) {
	return parseName[InterpolationQuality](interpolationQualityNames, "interpolation quality", s)
}

func (i InterpolationQuality) String() string { return enumString(interpolationQualityNames, "InterpolationQuality", i) }

// MarshalText implements encoding.TextMarshaler.
func (i InterpolationQuality) MarshalText() ([]byte, error) {
	return wire.MarshalName(interpolationQualityNames, i, "interpolation quality")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *InterpolationQuality) UnmarshalText(text []byte) (err error) {
	*i, err = ParseInterpolationQuality(string(text))
	return err
}

// TextAlignment is a CoreText paragraph alignment.
type TextAlignment uint8

const (
	AlignLeft TextAlignment = iota + 1
	AlignRight
	AlignCenter
	AlignJustified
	AlignNatural
)

var textAlignmentNames = []string{
	AlignLeft:      "kCTTextAlignmentLeft",
	AlignRight:     "kCTTextAlignmentRight",
	AlignCenter:    "kCTTextAlignmentCenter",
	AlignJustified: "kCTTextAlignmentJustified",
	AlignNatural:   "kCTTextAlignmentNatural",
}

// ParseTextAlignment returns the TextAlignment named s.
func ParseTextAlignment(s string) (TextAlignment, error) {
	return parseName[TextAlignment](textAlignmentNames, "text alignment", s)
}

func (t TextAlignment) String() string { return enumString(textAlignmentNames, "TextAlignment", t) }

// MarshalText implements encoding.TextMarshaler.
func (t TextAlignment) MarshalText() ([]byte, error) {
	return wire.MarshalName(textAlignmentNames, t, "text alignment")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TextAlignment) UnmarshalText(text []byte) (err error) {
	*t, err = ParseTextAlignment(string(text))
	return err
}

// UIFont names a system user interface font.
type UIFont uint8

const (
	UIFontUser UIFont = iota + 1
	UIFontUserFixedPitch
	UIFontSystem
	UIFontEmphasizedSystem
	UIFontSmallSystem
	UIFontSmallEmphasizedSystem
	UIFontMiniSystem
	UIFontMiniEmphasizedSystem
	UIFontViews
	UIFontApplication
	UIFontLabel
	UIFontMenuItem
	UIFontMenuItemMark
	UIFontMenuItemCmdKey
	UIFontWindowTitle
	UIFontPushButton
	UIFontUtilityWindowTitle
	UIFontAlertHeader
	UIFontSystemDetail
	UIFontEmphasizedSystemDetail
	UIFontToolbar
	UIFontSmallToolbar
	UIFontMessage
	UIFontPalette
	UIFontToolTip
	UIFontControlContent
)

var uiFontNames = []string{
	UIFontUser:                   "kCTFontUIFontUser",
	UIFontUserFixedPitch:         "kCTFontUIFontUserFixedPitch",
	UIFontSystem:                 "kCTFontUIFontSystem",
	UIFontEmphasizedSystem:       "kCTFontUIFontEmphasizedSystem",
	UIFontSmallSystem:            "kCTFontUIFontSmallSystem",
	UIFontSmallEmphasizedSystem:  "kCTFontUIFontSmallEmphasizedSystem",
	UIFontMiniSystem:             "kCTFontUIFontMiniSystem",
	UIFontMiniEmphasizedSystem:   "kCTFontUIFontMiniEmphasizedSystem",
	UIFontViews:                  "kCTFontUIFontViews",
	UIFontApplication:            "kCTFontUIFontApplication",
	UIFontLabel:                  "kCTFontUIFontLabel",
	UIFontMenuItem:               "kCTFontUIFontMenuItem",
	UIFontMenuItemMark:           "kCTFontUIFontMenuItemMark",
	UIFontMenuItemCmdKey:         "kCTFontUIFontMenuItemCmdKey",
	UIFontWindowTitle:            "kCTFontUIFontWindowTitle",
	UIFontPushButton:             "kCTFontUIFontPushButton",
	UIFontUtilityWindowTitle:     "kCTFontUIFontUtilityWindowTitle",
	UIFontAlertHeader:            "kCTFontUIFontAlertHeader",
	UIFontSystemDetail:           "kCTFontUIFontSystemDetail",
	UIFontEmphasizedSystemDetail: "kCTFontUIFontEmphasizedSystemDetail",
	UIFontToolbar:                "kCTFontUIFontToolbar",
	UIFontSmallToolbar:           "kCTFontUIFontSmallToolbar",
	UIFontMessage:                "kCTFontUIFontMessage",
	UIFontPalette:                "kCTFontUIFontPalette",
	UIFontToolTip:                "kCTFontUIFontToolTip",
	UIFontControlContent:         "kCTFontUIFontControlContent",
}

// ParseUIFont returns the UIFont named s.
func ParseUIFont(s string) (UIFont, error) {
	return parseName[UIFont](uiFontNames, "user interface font", s)
}

func (u UIFont) String() string { return enumString(uiFontNames, "UIFont", u) }

// MarshalText implements encoding.TextMarshaler.
func (u UIFont) MarshalText() ([]byte, error) {
	return wire.MarshalName(uiFontNames, u, "user interface font")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UIFont) UnmarshalText(text []byte) (err error) {
	*u, err = ParseUIFont(string(text))
	return err
}

// UIFonts lists every user interface font name.
func UIFonts() []string { return append([]string(nil), uiFontNames[1:]...) }

func parseName[T ~uint8](names []string, kind, s string) (T, error) {
	v, ok := wire.Lookup[T](names, s)
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", ErrUnknownName, kind, s)
	}
	return v, nil
}

func enumString[T ~uint8](names []string, typ string, v T) string {
	if n := wire.Name(names, v); n != "" {
		return n
	}
	return fmt.Sprintf("%s(%d)", typ, uint8(v))
}
