package smig

import (
	"encoding/json"
	"fmt"
)

type imageDoc struct {
	ElementType          ElementType          `json:"elementtype"`
	SourceObject         ObjectID             `json:"sourceobject"`
	ImageIndex           *int                 `json:"imageindex,omitempty"`
	DestinationRect      *Rect                `json:"destinationrectangle,omitempty"`
	SourceRect           *Rect                `json:"sourcerectangle,omitempty"`
	InterpolationQuality InterpolationQuality `json:"interpolationquality,omitempty"`
	commonDoc
}

// ImageElement draws an image taken from an importer, a context or a filter
// chain into a destination rectangle.
type ImageElement struct {
	d         imageDoc
	transform Transform
}

// NewImageElement draws the image of source into dst.
func NewImageElement(source ObjectID, dst Rect) *ImageElement {
	return &ImageElement{d: imageDoc{
		ElementType:     ElementImage,
		SourceObject:    source,
		DestinationRect: &dst,
	}}
}

// ElementType returns ElementImage.
func (e *ImageElement) ElementType() ElementType { return ElementImage }

// Source returns the image source object.
func (e *ImageElement) Source() ObjectID { return e.d.SourceObject }

// Transform returns the transform, or nil.
func (e *ImageElement) Transform() Transform { return e.transform }

// SetSource replaces the object the image is taken from.
func (e *ImageElement) SetSource(source ObjectID) *ImageElement {
	e.d.SourceObject = source
	return e
}

// SetImageIndex selects an image within a multi-image source such as an importer.
func (e *ImageElement) SetImageIndex(i int) *ImageElement {
	e.d.ImageIndex = &i
	return e
}

// SetDestinationRect sets where the image is drawn.
func (e *ImageElement) SetDestinationRect(r Rect) *ImageElement {
	e.d.DestinationRect = &r
	return e
}

// SetSourceRect crops the source image before drawing.
func (e *ImageElement) SetSourceRect(r Rect) *ImageElement {
	e.d.SourceRect = &r
	return e
}

// SetInterpolationQuality sets the resampling quality.
func (e *ImageElement) SetInterpolationQuality(q InterpolationQuality) *ImageElement {
	e.d.InterpolationQuality = q
	return e
}

// SetBlendMode sets the blend mode.
func (e *ImageElement) SetBlendMode(m BlendMode) *ImageElement {
	e.d.BlendMode = m
	return e
}

// SetShadow sets the shadow. Nil removes it.
func (e *ImageElement) SetShadow(s *Shadow) *ImageElement {
	e.d.Shadow = s
	return e
}

// SetDebugName names the element in renderer error reports.
func (e *ImageElement) SetDebugName(name string) *ImageElement {
	e.d.DebugName = name
	return e
}

// SetVariables sets the variables used by equations in this element.
func (e *ImageElement) SetVariables(v Variables) *ImageElement {
	e.d.Variables = v
	return e
}

// SetContextTransform replaces the transform with a context transform.
func (e *ImageElement) SetContextTransform(t ContextTransform) *ImageElement {
	e.transform = t
	return e
}

// SetAffineTransform replaces the transform with an affine transform.
func (e *ImageElement) SetAffineTransform(t AffineTransform) *ImageElement {
	e.transform = t
	return e
}

// Document validates the element and returns its wire form. The source and
// the destination rectangle are required.
func (e *ImageElement) Document() (any, error) {
	const op = "ImageElement.Document"
	d := e.d
	switch {
	case d.SourceObject.IsZero():
		return nil, buildErr(op, d.DebugName, fmt.Errorf("%w: sourceobject", ErrMissingField))
	case d.DestinationRect == nil:
		return nil, buildErr(op, d.DebugName, fmt.Errorf("%w: destinationrectangle", ErrMissingField))
	}
	var err error
	if d.commonDoc, err = d.commonDoc.withTransform(op, e.transform); err != nil {
		return nil, err
	}
	return d, nil
}

// MarshalJSON encodes the element document.
func (e *ImageElement) MarshalJSON() ([]byte, error) { return marshalDocument(e) }

// UnmarshalJSON decodes a drawimage document.
func (e *ImageElement) UnmarshalJSON(data []byte) error {
	var d imageDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if d.ElementType != ElementImage {
		return fmt.Errorf("smig: decode image element: elementtype %v", d.ElementType)
	}
	t, err := d.takeTransform()
	if err != nil {
		return err
	}
	*e = ImageElement{d: d, transform: t}
	return nil
}
