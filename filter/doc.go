// Package filter builds CoreImage filter chains for the smig renderer.
//
// A Filter names a CoreImage filter and lists its input properties. A Chain
// is an ordered list of filters rendered into a destination object. Filters
// can take the output of an earlier filter as an image input by referring to
// it with ByName or ByIndex, so a chain describes a directed acyclic graph
// rather than a strict pipeline:
//
//	blur, _ := filter.New("CIGaussianBlur", filter.WithIdentifier("blur"))
//	blur.AddProperty(filter.ImageProperty("inputImage", importer))
//	blur.AddProperty(filter.NumberPropertyWithRange("inputRadius", 0, 100, 10))
//
//	comic, _ := filter.New("CIComicEffect")
//	comic.AddProperty(filter.ImageProperty("inputImage", filter.ByName("blur")))
//
//	chain := filter.NewChain(bitmap, blur, comic)
//
// RenderInstructions override property values for a single render without
// changing the chain.
package filter

import "errors"

var (
	// ErrNoFilterName is returned when a filter has no CoreImage name.
	ErrNoFilterName = errors.New("filter: filter name is empty")

	// ErrDuplicateIdentifier is returned when two filters in a chain share an identifier.
	ErrDuplicateIdentifier = errors.New("filter: duplicate filter identifier")

	// ErrUnresolvedRef is returned when a filter reference does not name an
	// earlier filter in the chain.
	ErrUnresolvedRef = errors.New("filter: reference does not resolve to an earlier filter")

	// ErrNoDestination is returned when a chain or render has no destination.
	ErrNoDestination = errors.New("filter: no render destination")
)
