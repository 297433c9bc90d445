package command

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/smig"
	"github.com/gogpu/smig/movie"
)

// GetProperty asks the receiver for the property named key.
func GetProperty(receiver smig.ObjectID, key string) *Command {
	return NewObjectCommand(VerbGetProperty, receiver).AddOption("propertykey", key)
}

// GetProperties asks the receiver for all of its properties.
func GetProperties(receiver smig.ObjectID) *Command {
	return NewObjectCommand(VerbGetProperties, receiver)
}

// GetNonObjectProperty asks the framework, or the class t when it is set,
// for the property named key. Some keys need extra options, such as
// filtername or filtercategory, added with AddOption.
func GetNonObjectProperty(key string, t smig.ObjectType) *Command {
	c := New(VerbGetProperty).AddOption("propertykey", key)
	if t != 0 {
		c.AddOption("objecttype", t)
	}
	return c
}

// SetProperty sets the receiver's property key to value.
func SetProperty(receiver smig.ObjectID, key string, value any) *Command {
	return NewObjectCommand(VerbSetProperty, receiver).
		AddOption("propertykey", key).
		AddOption("propertyvalue", value)
}

// SetProperties sets several properties of the receiver from a dictionary
// document.
func SetProperties(receiver smig.ObjectID, props smig.Documenter) (*Command, error) {
	c := NewObjectCommand(VerbSetProperties, receiver)
	if err := c.setDocument("propertyvalue", props); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyMetadata copies the metadata of image importerIndex in importer to
// image imageIndex of the exporter receiver.
func CopyMetadata(receiver, importer smig.ObjectID, importerIndex, imageIndex int) *Command {
	return NewObjectCommand(VerbSetProperties, receiver).
		SetImageIndex(imageIndex).
		AddOption("secondaryobject", importer).
		AddOption("secondaryimageindex", importerIndex)
}

// TextSize describes text to be measured by CalculateGraphicSizeOfText.
// Either PostScriptFont with FontSize, or UserInterfaceFont, must be set.
type TextSize struct {
	Text              string      `json:"stringtext"`
	PostScriptFont    string      `json:"postscriptfontname,omitempty"`
	UserInterfaceFont smig.UIFont `json:"userinterfacefont,omitempty"`
	FontSize          *float64    `json:"fontsize,omitempty"`
	StrokeWidth       *float64    `json:"stringstrokewidth,omitempty"`
}

// CalculateGraphicSizeOfText asks how much space text takes when drawn.
func CalculateGraphicSizeOfText(t TextSize) (*Command, error) {
	if t.Text == "" {
		return nil, fmt.Errorf("command: %s: %w", VerbCalculateGraphicSizeOfText, smig.ErrEmptyText)
	}
	if !utf8.ValidString(t.Text) {
		return nil, fmt.Errorf("command: %s: text is not valid UTF-8", VerbCalculateGraphicSizeOfText)
	}
	if t.PostScriptFont == "" && t.UserInterfaceFont == 0 {
		return nil, ErrNoFont
	}
	if t.PostScriptFont != "" && t.FontSize == nil {
		return nil, fmt.Errorf("command: %s: %w: fontsize", VerbCalculateGraphicSizeOfText, smig.ErrMissingField)
	}
	t.Text = norm.NFC.String(t.Text)
	return New(VerbCalculateGraphicSizeOfText).
		AddOption("objecttype", smig.ObjectBitmapContext).
		AddOption("getdatatype", SaveDictionaryObject).
		AddOption("inputdata", t), nil
}

// AddImage adds the image held by source to the exporter receiver.
func AddImage(receiver, source smig.ObjectID) *Command {
	return NewObjectCommand(VerbAddImage, receiver).AddOption("secondaryobject", source)
}

// AddImageAt adds image index of source, such as one frame of an importer,
// to the exporter receiver.
func AddImageAt(receiver, source smig.ObjectID, index int) *Command {
	return AddImage(receiver, source).AddOption("secondaryimageindex", index)
}

// Export writes the images of the exporter receiver to its file.
func Export(receiver smig.ObjectID) *Command {
	return NewObjectCommand(VerbExport, receiver)
}

// Close closes the receiver.
func Close(receiver smig.ObjectID) *Command {
	return NewObjectCommand(VerbClose, receiver)
}

// CloseAll closes every object of type t, or every object when t is zero.
func CloseAll(t smig.ObjectType) *Command {
	c := New(VerbCloseAll)
	if t != 0 {
		c.AddOption("objecttype", t)
	}
	return c
}

// Snapshot takes, draws or clears a snapshot of the context receiver.
func Snapshot(receiver smig.ObjectID, action SnapshotAction) *Command {
	return NewObjectCommand(VerbSnapshot, receiver).AddOption("snapshotaction", action)
}

// GetPixelData reads the pixels inside rect from the bitmap context
// receiver. File result types need a saveTo path.
func GetPixelData(receiver smig.ObjectID, rect smig.Rect, resultsType SaveResultsType, saveTo string) (*Command, error) {
	if resultsType.IsFile() && saveTo == "" {
		return nil, fmt.Errorf("command: %s: %w", VerbGetPixelData, ErrNoSaveLocation)
	}
	c := NewObjectCommand(VerbGetPixelData, receiver).
		AddOption("rectangle", rect).
		AddOption("saveresultstype", resultsType)
	if saveTo != "" {
		c.AddOption("saveresultsto", saveTo)
	}
	return c, nil
}

// FinalizePage finishes the current page of the PDF context receiver and
// starts a new one.
func FinalizePage(receiver smig.ObjectID) *Command {
	return NewObjectCommand(VerbFinalizePage, receiver)
}

// DrawElement draws instructions into the context receiver. instructions
// may be any draw element builder or a raw document.
func DrawElement(receiver smig.ObjectID, instructions smig.Documenter) (*Command, error) {
	c := NewObjectCommand(VerbDrawElement, receiver)
	if err := c.setDocument("drawinstructions", instructions); err != nil {
		return nil, err
	}
	return c, nil
}

// RenderFilterChain renders the filter chain receiver, applying
// instructions, usually *filter.RenderInstructions, for this render only.
func RenderFilterChain(receiver smig.ObjectID, instructions smig.Documenter) (*Command, error) {
	c := NewObjectCommand(VerbRenderFilterChain, receiver)
	if err := c.setDocument("renderinstructions", instructions); err != nil {
		return nil, err
	}
	return c, nil
}

// ProcessFrames runs each set of frame instructions against frames of track
// in the movie importer receiver.
func ProcessFrames(receiver smig.ObjectID, track movie.Track, frames ...*movie.ProcessFrameInstructions) (*Command, error) {
	c := NewObjectCommand(VerbProcessFrames, receiver)
	if err := c.setDocument("track", track); err != nil {
		return nil, err
	}
	docs := make([]json.RawMessage, len(frames))
	for i, f := range frames {
		if f == nil {
			return nil, fmt.Errorf("command: %s frame %d: %w", VerbProcessFrames, i, smig.ErrMissingField)
		}
		raw, err := smig.Encode(f)
		if err != nil {
			return nil, fmt.Errorf("command: %s frame %d: %w", VerbProcessFrames, i, err)
		}
		docs[i] = raw
	}
	return c.AddOption("processinstructions", docs), nil
}

// AssignImageToCollection keeps the image of source under identifier so
// later commands can draw it after source is closed.
func AssignImageToCollection(source smig.ObjectID, identifier string) *Command {
	return NewObjectCommand(VerbAssignImageToCollection, source).AddOption("imageidentifier", identifier)
}

// RemoveImageFromCollection drops the image kept under identifier.
func RemoveImageFromCollection(identifier string) *Command {
	return New(VerbRemoveImageFromCollection).AddOption("imageidentifier", identifier)
}
