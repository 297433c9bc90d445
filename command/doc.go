// Package command builds smig commands and command lists.
//
// A Command is a verb plus an ordered bag of options. Object-scoped commands
// carry a receiverobject identifying the object that handles them. A List
// collects commands, cleanup commands and execution options, and Seal turns
// it into the immutable Batch handed to a transport.
//
// Objects created by a list are named on the client before they exist:
//
//	list := command.NewList()
//	bitmap := list.MakeCreateBitmapContext(smig.Sz(640, 480))
//	exporter := list.MakeCreateExporter("/tmp/out.png", command.WithExportType(command.ExportPNG))
//	list.AddCommand(command.AddImage(exporter, bitmap))
//	list.AddCommand(command.Export(exporter))
//
// Both objects are closed by the list's cleanup commands whether or not the
// main commands succeed.
package command

import "errors"

var (
	// ErrNoVerb is returned when a command has no verb.
	ErrNoVerb = errors.New("command: no verb")

	// ErrNoSaveLocation is returned when results are saved to a file but no
	// saveresultsto path is set.
	ErrNoSaveLocation = errors.New("command: results file type needs saveresultsto")

	// ErrNoFont is returned when text is measured without a font.
	ErrNoFont = errors.New("command: text needs a postscript or user interface font")
)
