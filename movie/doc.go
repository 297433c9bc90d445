// Package movie builds the documents used to process movie frames: frame
// times, track identifiers and per-frame instructions.
package movie

import "errors"

var (
	// ErrTimescale is returned for a movie time whose timescale is not positive.
	ErrTimescale = errors.New("movie: timescale must be positive")

	// ErrTrack is returned for a track identifier with a negative index or id.
	ErrTrack = errors.New("movie: track index and id must not be negative")
)
