package smig

import (
	"encoding/json"
	"fmt"
	"math"

	"golang.org/x/text/unicode/norm"
)

// DrawMode is how a text element paints its glyphs.
type DrawMode uint8

const (
	DrawFill          DrawMode = iota // no stroke width: fill only
	DrawStroke                        // positive stroke width: stroke only
	DrawFillAndStroke                 // negative stroke width: fill, then stroke with |w|
)

var drawModeNames = [...]string{"fill", "stroke", "fill and stroke"}

func (m DrawMode) String() string {
	if int(m) < len(drawModeNames) {
		return drawModeNames[m]
	}
	return fmt.Sprintf("DrawMode(%d)", m)
}

type textDoc struct {
	ElementType        ElementType   `json:"elementtype"`
	StringText         string        `json:"stringtext"`
	Point              *Point        `json:"point,omitempty"`
	Path               PathElements  `json:"arrayofpathelements,omitempty"`
	PostScriptFontName string        `json:"postscriptfontname,omitempty"`
	UserInterfaceFont  UIFont        `json:"userinterfacefont,omitempty"`
	FontSize           *Value        `json:"fontsize,omitempty"`
	TextAlignment      TextAlignment `json:"textalignment,omitempty"`
	FillColor          *Color        `json:"fillcolor,omitempty"`
	StrokeColor        *Color        `json:"strokecolor,omitempty"`
	StrokeWidth        *Value        `json:"stringstrokewidth,omitempty"`
	commonDoc
}

// TextElement draws a string at a point or within a path. Text is stored in
// Unicode normalization form C.
type TextElement struct {
	d         textDoc
	transform Transform
}

// NewTextElement draws text with its baseline starting at at.
// Text must not be empty.
func NewTextElement(text string, at Point) (*TextElement, error) {
	if text == "" {
		return nil, buildErr("NewTextElement", "", ErrEmptyText)
	}
	return &TextElement{d: textDoc{
		ElementType: ElementText,
		StringText:  norm.NFC.String(text),
		Point:       &at,
	}}, nil
}

// NewTextElementInPath draws text laid out inside path. Text must not be empty.
func NewTextElementInPath(text string, path PathSource) (*TextElement, error) {
	if text == "" {
		return nil, buildErr("NewTextElementInPath", "", ErrEmptyText)
	}
	return &TextElement{d: textDoc{
		ElementType: ElementText,
		StringText:  norm.NFC.String(text),
		Path:        append(PathElements(nil), path.PathElements()...),
	}}, nil
}

// ElementType returns ElementText.
func (e *TextElement) ElementType() ElementType { return ElementText }

// Text returns the normalized text.
func (e *TextElement) Text() string { return e.d.StringText }

// Transform returns the transform, or nil.
func (e *TextElement) Transform() Transform { return e.transform }

// SetText replaces the text. Empty text fails with ErrEmptyText.
func (e *TextElement) SetText(text string) error {
	if text == "" {
		return buildErr("TextElement.SetText", e.d.DebugName, ErrEmptyText)
	}
	e.d.StringText = norm.NFC.String(text)
	return nil
}

// SetPoint sets where the text starts. When a path is also set, the point
// starts the path if the path begins with a line or curve.
func (e *TextElement) SetPoint(p Point) *TextElement {
	e.d.Point = &p
	return e
}

// SetPath sets the path the text is laid out in.
func (e *TextElement) SetPath(p PathSource) *TextElement {
	e.d.Path = append(PathElements(nil), p.PathElements()...)
	return e
}

// SetPostScriptFont selects a font by PostScript name and size, clearing
// any user interface font.
func (e *TextElement) SetPostScriptFont(name string, size Value) *TextElement {
	e.d.PostScriptFontName = name
	e.d.UserInterfaceFont = 0
	e.d.FontSize = &size
	return e
}

// SetUserInterfaceFont selects a system font, clearing any PostScript font.
// The font carries its own size unless SetFontSize overrides it.
func (e *TextElement) SetUserInterfaceFont(f UIFont) *TextElement {
	e.d.UserInterfaceFont = f
	e.d.PostScriptFontName = ""
	return e
}

// SetFontSize sets the font size.
func (e *TextElement) SetFontSize(size Value) *TextElement {
	e.d.FontSize = &size
	return e
}

// SetTextAlignment sets the paragraph alignment.
func (e *TextElement) SetTextAlignment(a TextAlignment) *TextElement {
	e.d.TextAlignment = a
	return e
}

// SetFillColor sets the text fill color.
func (e *TextElement) SetFillColor(c *Color) *TextElement {
	e.d.FillColor = c
	return e
}

// SetStrokeColor sets the text stroke color.
func (e *TextElement) SetStrokeColor(c *Color) *TextElement {
	e.d.StrokeColor = c
	return e
}

// SetStrokeWidth sets the stroke width. A positive width strokes the text
// without filling it; a negative width fills it and then strokes it with the
// absolute width. See DrawMode.
func (e *TextElement) SetStrokeWidth(w float64) *TextElement {
	v := Num(w)
	e.d.StrokeWidth = &v
	return e
}

// ClearStrokeWidth removes the stroke width so the text is only filled.
func (e *TextElement) ClearStrokeWidth() *TextElement {
	e.d.StrokeWidth = nil
	return e
}

// DrawMode reports how the stroke width makes the renderer paint the text,
// and the stroke width it will use.
func (e *TextElement) DrawMode() (DrawMode, float64) {
	if e.d.StrokeWidth == nil {
		return DrawFill, 0
	}
	w, ok := e.d.StrokeWidth.Float()
	switch {
	case !ok || w == 0:
		return DrawFill, 0
	case w > 0:
		return DrawStroke, w
	default:
		return DrawFillAndStroke, math.Abs(w)
	}
}

// SetBlendMode sets the blend mode.
func (e *TextElement) SetBlendMode(m BlendMode) *TextElement {
	e.d.BlendMode = m
	return e
}

// SetShadow sets the shadow. Nil removes it.
func (e *TextElement) SetShadow(s *Shadow) *TextElement {
	e.d.Shadow = s
	return e
}

// SetDebugName names the element in renderer error reports.
func (e *TextElement) SetDebugName(name string) *TextElement {
	e.d.DebugName = name
	return e
}

// SetVariables sets the variables used by equations in this element.
func (e *TextElement) SetVariables(v Variables) *TextElement {
	e.d.Variables = v
	return e
}

// SetContextTransform replaces the transform with a context transform.
func (e *TextElement) SetContextTransform(t ContextTransform) *TextElement {
	e.transform = t
	return e
}

// SetAffineTransform replaces the transform with an affine transform.
func (e *TextElement) SetAffineTransform(t AffineTransform) *TextElement {
	e.transform = t
	return e
}

// Document validates the element and returns its wire form. A PostScript
// font needs a font size, and the text needs a point or a path.
func (e *TextElement) Document() (any, error) {
	const op = "TextElement.Document"
	d := e.d
	switch {
	case d.StringText == "":
		return nil, buildErr(op, d.DebugName, ErrEmptyText)
	case d.Point == nil && len(d.Path) == 0:
		return nil, buildErr(op, d.DebugName, fmt.Errorf("%w: point or arrayofpathelements", ErrMissingField))
	case d.PostScriptFontName != "" && d.FontSize == nil:
		return nil, buildErr(op, d.DebugName, fmt.Errorf("%w: fontsize", ErrMissingField))
	}
	var err error
	if d.commonDoc, err = d.commonDoc.withTransform(op, e.transform); err != nil {
		return nil, err
	}
	return d, nil
}

// MarshalJSON encodes the element document.
func (e *TextElement) MarshalJSON() ([]byte, error) { return marshalDocument(e) }

// UnmarshalJSON decodes a drawbasicstring document.
func (e *TextElement) UnmarshalJSON(data []byte) error {
	var d textDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if d.ElementType != ElementText {
		return fmt.Errorf("smig: decode text element: elementtype %v", d.ElementType)
	}
	t, err := d.takeTransform()
	if err != nil {
		return err
	}
	d.StringText = norm.NFC.String(d.StringText)
	*e = TextElement{d: d, transform: t}
	return nil
}
