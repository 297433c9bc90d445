package command

import "github.com/gogpu/smig"

// ClassProperty asks the class t for the property named key, such as the
// presets a bitmap context can be created with.
func ClassProperty(t smig.ObjectType, key string) *Command {
	return New(VerbGetProperty).
		AddOption("objecttype", t).
		AddOption("propertykey", key)
}

// ListFilters asks for the names of the filters a filter chain can use, as
// a space separated list. An empty category lists every filter.
func ListFilters(category string) *Command {
	c := ClassProperty(smig.ObjectImageFilterChain, "imagefilters")
	if category != "" {
		c.AddOption("filtercategory", category)
	}
	return c
}

// FilterAttributes asks for the JSON description of the filter's inputs.
func FilterAttributes(filterName string) *Command {
	return ClassProperty(smig.ObjectImageFilterChain, "filterattributes").
		AddOption("filtername", filterName)
}

// ListPresets asks for the presets a bitmap context can be created with.
func ListPresets() *Command {
	return ClassProperty(smig.ObjectBitmapContext, "presets")
}

// ListBlendModes asks for the blend modes a draw element can use.
func ListBlendModes() *Command {
	return ClassProperty(smig.ObjectBitmapContext, "blendmodes")
}

// ListUserInterfaceFonts asks for the user interface font names.
func ListUserInterfaceFonts() *Command {
	return ClassProperty(smig.ObjectBitmapContext, "userinterfacefonts")
}

var objectVerbs = map[smig.ObjectType][]Verb{
	smig.ObjectBitmapContext: {VerbGetProperty, VerbGetProperties, VerbClose,
		VerbDrawElement, VerbSnapshot, VerbGetPixelData},
	smig.ObjectImageImporter: {VerbGetProperty, VerbGetProperties, VerbSetProperty, VerbClose},
	smig.ObjectImageExporter: {VerbGetProperty, VerbGetProperties, VerbSetProperty,
		VerbSetProperties, VerbClose, VerbAddImage, VerbExport},
	smig.ObjectImageFilterChain: {VerbGetProperty, VerbGetProperties, VerbSetProperty,
		VerbClose, VerbRenderFilterChain},
	smig.ObjectWindowContext: {VerbGetProperty, VerbGetProperties, VerbClose,
		VerbDrawElement, VerbSnapshot},
	smig.ObjectPDFContext: {VerbGetProperty, VerbGetProperties, VerbClose,
		VerbDrawElement, VerbFinalizePage},
	smig.ObjectMovieImporter: {VerbGetProperty, VerbGetProperties, VerbClose, VerbProcessFrames},
}

// ObjectVerbs returns the verbs objects of type t handle, or nil for an
// unknown type.
func ObjectVerbs(t smig.ObjectType) []Verb {
	return append([]Verb(nil), objectVerbs[t]...)
}

// ClassVerbs returns the verbs the class t handles without a receiver.
// Context classes can also measure text.
func ClassVerbs(t smig.ObjectType) []Verb {
	if _, ok := objectVerbs[t]; !ok {
		return nil
	}
	verbs := []Verb{VerbCreate, VerbGetProperty, VerbCloseAll}
	switch t {
	case smig.ObjectBitmapContext, smig.ObjectPDFContext, smig.ObjectWindowContext:
		verbs = append(verbs, VerbCalculateGraphicSizeOfText)
	}
	return verbs
}

// Handles reports whether an object of type t handles verb v.
func Handles(t smig.ObjectType, v Verb) bool {
	for _, h := range objectVerbs[t] {
		if h == v {
			return true
		}
	}
	return false
}
