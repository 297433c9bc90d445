package command

import (
	"fmt"

	"github.com/gogpu/smig"
	"github.com/gogpu/smig/internal/wire"
)

// Verb is the operation a command asks the renderer to perform.
type Verb uint8

const (
	VerbCreate                     Verb = iota + 1 // Create an object
	VerbGetProperty                                // Get a property of an object, class or the framework
	VerbSetProperty                                // Set a property of an object
	VerbGetProperties                              // Get all properties of an object
	VerbSetProperties                              // Set several properties of an object
	VerbClose                                      // Close an object
	VerbCloseAll                                   // Close every object, or every object of a type
	VerbAddImage                                   // Add an image to an exporter
	VerbExport                                     // Write an exporter's images to its file
	VerbDrawElement                                // Draw into a context
	VerbSnapshot                                   // Take, draw or clear a context snapshot
	VerbFinalizePage                               // Finish a PDF page and start a new one
	VerbGetPixelData                               // Read pixels from a bitmap context
	VerbCalculateGraphicSizeOfText                 // Measure text
	VerbRenderFilterChain                          // Render a filter chain
	VerbProcessFrames                              // Run commands over movie frames
	VerbAssignImageToCollection                    // Keep an image under an identifier
	VerbRemoveImageFromCollection                  // Drop a kept image
)

var verbNames = []string{
	VerbCreate:                     "create",
	VerbGetProperty:                "getproperty",
	VerbSetProperty:                "setproperty",
	VerbGetProperties:              "getproperties",
	VerbSetProperties:              "setproperties",
	VerbClose:                      "close",
	VerbCloseAll:                   "closeall",
	VerbAddImage:                   "addimage",
	VerbExport:                     "export",
	VerbDrawElement:                "drawelement",
	VerbSnapshot:                   "snapshot",
	VerbFinalizePage:               "finalizepage",
	VerbGetPixelData:               "getpixeldata",
	VerbCalculateGraphicSizeOfText: "calculategraphicsizeoftext",
	VerbRenderFilterChain:          "renderfilterchain",
	VerbProcessFrames:              "processframes",
	VerbAssignImageToCollection:    "assignimagetocollection",
	VerbRemoveImageFromCollection:  "removeimagefromcollection",
}

// Verbs lists every verb name.
func Verbs() []string { return append([]string(nil), verbNames[1:]...) }

// ParseVerb returns the Verb named s.
func ParseVerb(s string) (Verb, error) { return lookup[Verb](verbNames, "verb", s) }

func (v Verb) String() string { return enumName(verbNames, "Verb", v) }

// MarshalText implements encoding.TextMarshaler.
func (v Verb) MarshalText() ([]byte, error) { return wire.MarshalName(verbNames, v, "verb") }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Verb) UnmarshalText(text []byte) (err error) {
	*v, err = ParseVerb(string(text))
	return err
}

// Preset selects the pixel format of a bitmap context.
type Preset uint8

const (
	PresetAlphaOnly8bpcInt Preset = iota + 1
	PresetGray8bpcInt
	PresetGray16bpcInt
	PresetGray32bpcFloat
	PresetAlphaSkipFirstRGB8bpcInt
	PresetAlphaSkipLastRGB8bpcInt
	PresetAlphaPreMulFirstRGB8bpcInt
	PresetAlphaPreMulLastRGB8bpcInt
	PresetAlphaPreMulLastRGB16bpcInt
	PresetAlphaSkipLastRGB16bpcInt
	PresetAlphaSkipLastRGB32bpcFloat
	PresetAlphaPreMulLastRGB32bpcFloat
	PresetCMYK8bpcInt
	PresetCMYK16bpcInt
	PresetCMYK32bpcFloat
	PresetPlatformDefaultBitmapContext

	// DefaultPreset is used when no preset is given.
	DefaultPreset = PresetAlphaPreMulFirstRGB8bpcInt
)

var presetNames = []string{
	PresetAlphaOnly8bpcInt:             "AlphaOnly8bpcInt",
	PresetGray8bpcInt:                  "Gray8bpcInt",
	PresetGray16bpcInt:                 "Gray16bpcInt",
	PresetGray32bpcFloat:               "Gray32bpcFloat",
	PresetAlphaSkipFirstRGB8bpcInt:     "AlphaSkipFirstRGB8bpcInt",
	PresetAlphaSkipLastRGB8bpcInt:      "AlphaSkipLastRGB8bpcInt",
	PresetAlphaPreMulFirstRGB8bpcInt:   "AlphaPreMulFirstRGB8bpcInt",
	PresetAlphaPreMulLastRGB8bpcInt:    "AlphaPreMulLastRGB8bpcInt",
	PresetAlphaPreMulLastRGB16bpcInt:   "AlphaPreMulLastRGB16bpcInt",
	PresetAlphaSkipLastRGB16bpcInt:     "AlphaSkipLastRGB16bpcInt",
	PresetAlphaSkipLastRGB32bpcFloat:   "AlphaSkipLastRGB32bpcFloat",
	PresetAlphaPreMulLastRGB32bpcFloat: "AlphaPreMulLastRGB32bpcFloat",
	PresetCMYK8bpcInt:                  "CMYK8bpcInt",
	PresetCMYK16bpcInt:                 "CMYK16bpcInt",
	PresetCMYK32bpcFloat:               "CMYK32bpcFloat",
	PresetPlatformDefaultBitmapContext: "PlatformDefaultBitmapContext",
}

// Presets lists every bitmap context preset name.
func Presets() []string { return append([]string(nil), presetNames[1:]...) }

// ParsePreset returns the Preset named s.
func ParsePreset(s string) (Preset, error) { return lookup[Preset](presetNames, "preset", s) }

func (p Preset) String() string { return enumName(presetNames, "Preset", p) }

// MarshalText implements encoding.TextMarshaler.
func (p Preset) MarshalText() ([]byte, error) { return wire.MarshalName(presetNames, p, "preset") }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Preset) UnmarshalText(text []byte) (err error) {
	*p, err = ParsePreset(string(text))
	return err
}

// Returns selects what a command list reports back.
type Returns uint8

const (
	ReturnsLastCommandResult Returns = iota + 1 // Result of the last command run
	ReturnsListOfResults                        // One result per command; only the last status counts
	ReturnsNoResults                            // Nothing, when running asynchronously
)

var returnsNames = []string{
	ReturnsLastCommandResult: "lastcommandresult",
	ReturnsListOfResults:     "listofresults",
	ReturnsNoResults:         "noresults",
}

// ParseReturns returns the Returns named s.
func ParseReturns(s string) (Returns, error) { return lookup[Returns](returnsNames, "returns", s) }

func (r Returns) String() string { return enumName(returnsNames, "Returns", r) }

// MarshalText implements encoding.TextMarshaler.
func (r Returns) MarshalText() ([]byte, error) { return wire.MarshalName(returnsNames, r, "returns") }

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Returns) UnmarshalText(text []byte) (err error) {
	*r, err = ParseReturns(string(text))
	return err
}

// SaveResultsType selects how results are delivered.
type SaveResultsType uint8

const (
	SaveJSONFile         SaveResultsType = iota + 1 // JSON written to saveresultsto
	SavePropertyFile                                // Property list written to saveresultsto
	SaveJSONString                                  // JSON on standard output
	SaveDictionaryObject                            // Dictionary, for in-process callers
)

var saveResultsTypeNames = []string{
	SaveJSONFile:         "jsonfile",
	SavePropertyFile:     "propertyfile",
	SaveJSONString:       "jsonstring",
	SaveDictionaryObject: "dictionaryobject",
}

// ParseSaveResultsType returns the SaveResultsType named s.
func ParseSaveResultsType(s string) (SaveResultsType, error) {
	return lookup[SaveResultsType](saveResultsTypeNames, "save results type", s)
}

func (s SaveResultsType) String() string { return enumName(saveResultsTypeNames, "SaveResultsType", s) }

// IsFile reports whether results of this type are written to a file.
func (s SaveResultsType) IsFile() bool { return s == SaveJSONFile || s == SavePropertyFile }

// MarshalText implements encoding.TextMarshaler.
func (s SaveResultsType) MarshalText() ([]byte, error) {
	return wire.MarshalName(saveResultsTypeNames, s, "save results type")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SaveResultsType) UnmarshalText(text []byte) (err error) {
	*s, err = ParseSaveResultsType(string(text))
	return err
}

// SnapshotAction is what a snapshot command does with a context snapshot.
type SnapshotAction uint8

const (
	SnapshotTake SnapshotAction = iota + 1
	SnapshotDraw
	SnapshotClear
)

var snapshotActionNames = []string{
	SnapshotTake:  "takesnapshot",
	SnapshotDraw:  "drawsnapshot",
	SnapshotClear: "clearsnapshot",
}

// ParseSnapshotAction returns the SnapshotAction named s.
func ParseSnapshotAction(s string) (SnapshotAction, error) {
	return lookup[SnapshotAction](snapshotActionNames, "snapshot action", s)
}

func (a SnapshotAction) String() string { return enumName(snapshotActionNames, "SnapshotAction", a) }

// MarshalText implements encoding.TextMarshaler.
func (a SnapshotAction) MarshalText() ([]byte, error) {
	return wire.MarshalName(snapshotActionNames, a, "snapshot action")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *SnapshotAction) UnmarshalText(text []byte) (err error) {
	*a, err = ParseSnapshotAction(string(text))
	return err
}

// ExportType is the uniform type identifier of an exported file.
type ExportType string

// Common export types.
const (
	ExportJPEG ExportType = "public.jpeg"
	ExportPNG  ExportType = "public.png"
	ExportTIFF ExportType = "public.tiff"
	ExportGIF  ExportType = "com.compuserve.gif"
	ExportBMP  ExportType = "com.microsoft.bmp"
	ExportHEIC ExportType = "public.heic"
)

func lookup[T ~uint8](names []string, kind, s string) (T, error) {
	v, ok := wire.Lookup[T](names, s)
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", smig.ErrUnknownName, kind, s)
	}
	return v, nil
}

func enumName[T ~uint8](names []string, typ string, v T) string {
	if n := wire.Name(names, v); n != "" {
		return n
	}
	return fmt.Sprintf("%s(%d)", typ, uint8(v))
}
