package movie

import (
	"encoding/json"
	"fmt"
)

// Media types a track may have.
const (
	MediaSound    = "soun"
	MediaClip     = "clcp"
	MediaMetadata = "meta"
	MediaMuxed    = "muxx"
	MediaSubtitle = "sbtl"
	MediaText     = "text"
	MediaTimecode = "tmcd"
	MediaVideo    = "vide"
)

// Media characteristics a track may conform to. A track can have several.
const (
	CharacteristicAudible    = "AVMediaCharacteristicAudible"
	CharacteristicFrameBased = "AVMediaCharacteristicFrameBased"
	CharacteristicLegible    = "AVMediaCharacteristicLegible"
	CharacteristicVisual     = "AVMediaCharacteristicVisual"
)

// Track identifies a track of a movie.
type Track struct {
	d trackDoc
}

type trackDoc struct {
	Index          *int   `json:"trackindex,omitempty"`
	MediaType      string `json:"mediatype,omitempty"`
	Characteristic string `json:"mediacharacteristic,omitempty"`
	ID             *int   `json:"trackid,omitempty"`
}

// TrackByMediaType identifies the index'th track of mediaType, or of all
// tracks when mediaType is empty.
func TrackByMediaType(mediaType string, index int) Track {
	return Track{d: trackDoc{Index: &index, MediaType: mediaType}}
}

// TrackByCharacteristic identifies the index'th track conforming to the
// media characteristic c, or of all tracks when c is empty.
func TrackByCharacteristic(c string, index int) Track {
	return Track{d: trackDoc{Index: &index, Characteristic: c}}
}

// TrackByPersistentID identifies a track by the id it keeps for the life of
// the movie.
func TrackByPersistentID(id int) Track {
	return Track{d: trackDoc{ID: &id}}
}

// Index returns the track index, if the track is identified by index.
func (t Track) Index() (int, bool) {
	if t.d.Index == nil {
		return 0, false
	}
	return *t.d.Index, true
}

// PersistentID returns the track id, if the track is identified by id.
func (t Track) PersistentID() (int, bool) {
	if t.d.ID == nil {
		return 0, false
	}
	return *t.d.ID, true
}

// Document returns the track identifier document.
func (t Track) Document() (any, error) {
	switch {
	case t.d.Index == nil && t.d.ID == nil:
		return nil, fmt.Errorf("movie: track needs an index or a persistent id")
	case t.d.Index != nil && *t.d.Index < 0, t.d.ID != nil && *t.d.ID < 0:
		return nil, ErrTrack
	}
	return t.d, nil
}

// MarshalJSON encodes the track document.
func (t Track) MarshalJSON() ([]byte, error) {
	v, err := t.Document()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// UnmarshalJSON decodes a track document.
func (t *Track) UnmarshalJSON(data []byte) error {
	var d trackDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	t.d = d
	return nil
}
