// Package smig builds the documents understood by the smig rendering engine.
//
// # Overview
//
// smig is a command-line tool that wraps CoreGraphics, CoreImage and
// AVFoundation. It accepts a JSON command list, creates and drives objects
// (bitmap contexts, importers, exporters, filter chains) and reports a
// result. This package and its sub-packages only describe work: nothing is
// drawn, decoded or filtered in Go.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/smig"
//	    "github.com/gogpu/smig/command"
//	    "github.com/gogpu/smig/transport"
//	    _ "github.com/gogpu/smig/transport/smigexec"
//	)
//
//	list := command.NewList()
//	ctx := list.MakeCreateBitmapContext(smig.Sz(800, 600))
//
//	bg := smig.NewDrawElement(smig.ElementFillRect).
//	    SetRect(smig.RectXYWH(0, 0, 800, 600)).
//	    SetFillColor(smig.RGB(0.2, 0.3, 0.8))
//	draw, _ := command.DrawElement(ctx, bg)
//	list.AddCommand(draw)
//
//	p, _ := transport.NewPerformer("smig")
//	res, err := transport.Perform(context.Background(), p, list)
//
// # Documents
//
// Every builder implements Documenter. Document validates the builder and
// returns the value that encodes to its wire form; ToDocument is the single
// normalization point used by commands, so a builder, a Raw document or a
// Map can be passed wherever a payload is expected.
//
// # Values and Equations
//
// Coordinates, dimensions and color components are Values: a number or an
// equation string. Equations may reference variables bound through
// Variables and are evaluated only by the renderer.
//
// # Transforms
//
// A draw instruction carries at most one Transform, either a
// ContextTransform (ordered translate, scale and rotate steps) or an
// AffineTransform. Setting one replaces the other.
//
// # Coordinate System
//
// The renderer uses CoreGraphics coordinates: the origin is at the bottom
// left and y increases upwards. Angles are in radians.
package smig

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
