package movie

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/smig/internal/wire"
)

type timeKind uint8

const (
	timeSeconds timeKind = iota + 1
	timeRational
	timeNextSample
)

// nextSample is the frame time meaning the sample after the last one read.
const nextSample = "movienextsample"

// Time is a position in a movie: a number of seconds, a rational
// value/timescale pair, or the next sample.
type Time struct {
	kind      timeKind
	seconds   float64
	value     int64
	timescale int32
}

// TimeFromSeconds returns the time s seconds from the start of the movie.
func TimeFromSeconds(s float64) Time {
	return Time{kind: timeSeconds, seconds: s}
}

// NewTime returns the time value/timescale seconds from the start of the
// movie. A timescale of 600 is common.
func NewTime(value int64, timescale int32) (Time, error) {
	if timescale <= 0 {
		return Time{}, fmt.Errorf("%w: %d", ErrTimescale, timescale)
	}
	return Time{kind: timeRational, value: value, timescale: timescale}, nil
}

// NextSample returns the time of the next sample after the last one read.
func NextSample() Time {
	return Time{kind: timeNextSample}
}

// IsNextSample reports whether t is NextSample.
func (t Time) IsNextSample() bool { return t.kind == timeNextSample }

// Seconds returns t in seconds. ok is false for NextSample and the zero Time.
func (t Time) Seconds() (s float64, ok bool) {
	switch t.kind {
	case timeSeconds:
		return t.seconds, true
	case timeRational:
		return float64(t.value) / float64(t.timescale), true
	}
	return 0, false
}

// Document returns {time}, {value, timescale, flags, epoch} or the string
// movienextsample.
func (t Time) Document() (any, error) {
	var o wire.Object
	switch t.kind {
	case timeSeconds:
		o.Field("time", t.seconds)
	case timeRational:
		o.Field("value", t.value)
		o.Field("timescale", t.timescale)
		o.Field("flags", 1)
		o.Field("epoch", 0)
	case timeNextSample:
		return nextSample, nil
	default:
		return nil, fmt.Errorf("movie: time not set")
	}
	b, err := o.Bytes()
	return json.RawMessage(b), err
}

// MarshalJSON encodes the time document.
func (t Time) MarshalJSON() ([]byte, error) {
	v, err := t.Document()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// UnmarshalJSON decodes any time document.
func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if json.Unmarshal(data, &s) == nil {
		if s != nextSample {
			return fmt.Errorf("movie: unknown frame time %q", s)
		}
		*t = NextSample()
		return nil
	}
	var w struct {
		Time      *float64 `json:"time"`
		Value     *int64   `json:"value"`
		Timescale int32    `json:"timescale"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch {
	case w.Time != nil:
		*t = TimeFromSeconds(*w.Time)
		return nil
	case w.Value != nil:
		v, err := NewTime(*w.Value, w.Timescale)
		if err != nil {
			return err
		}
		*t = v
		return nil
	}
	return fmt.Errorf("movie: time needs time or value and timescale")
}
