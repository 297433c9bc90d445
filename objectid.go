package smig

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/smig/internal/wire"
)

// ObjectType is the class of an object living in the renderer.
type ObjectType uint8

const (
	ObjectBitmapContext ObjectType = iota + 1
	ObjectImageImporter
	ObjectImageExporter
	ObjectImageFilterChain
	ObjectPDFContext
	ObjectWindowContext
	ObjectMovieImporter
)

var objectTypeNames = []string{
	ObjectBitmapContext:    "bitmapcontext",
	ObjectImageImporter:    "imageimporter",
	ObjectImageExporter:    "imageexporter",
	ObjectImageFilterChain: "imagefilterchain",
	ObjectPDFContext:       "pdfcontext",
	ObjectWindowContext:    "nsgraphicscontext",
	ObjectMovieImporter:    "movieimporter",
}

// ObjectTypes lists every object type name.
func ObjectTypes() []string { return append([]string(nil), objectTypeNames[1:]...) }

// ParseObjectType returns the ObjectType named s.
func ParseObjectType(s string) (ObjectType, error) {
	return parseName[ObjectType](objectTypeNames, "object type", s)
}

func (t ObjectType) String() string { return enumString(objectTypeNames, "ObjectType", t) }

// MarshalText implements encoding.TextMarshaler.
func (t ObjectType) MarshalText() ([]byte, error) {
	return wire.MarshalName(objectTypeNames, t, "object type")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ObjectType) UnmarshalText(text []byte) (err error) {
	*t, err = ParseObjectType(string(text))
	return err
}

type idShape uint8

const (
	idNone idShape = iota
	idReference
	idName
	idIndex
)

// ObjectID addresses an object in the renderer by one of three shapes:
// a reference returned when the object was created, a type and name, or a
// type and index. The zero ObjectID addresses nothing.
type ObjectID struct {
	shape idShape
	ref   int64
	typ   ObjectType
	name  string
	index int
}

// IDOption supplies one part of an object identifier to NewObjectID.
type IDOption func(*idOptions)

type idOptions struct {
	ref   *int64
	typ   ObjectType
	name  *string
	index *int
}

// WithReference supplies an object reference.
func WithReference(ref int64) IDOption {
	return func(o *idOptions) { o.ref = &ref }
}

// WithType supplies an object type.
func WithType(t ObjectType) IDOption {
	return func(o *idOptions) { o.typ = t }
}

// WithName supplies an object name.
func WithName(name string) IDOption {
	return func(o *idOptions) { o.name = &name }
}

// WithIndex supplies an object index.
func WithIndex(i int) IDOption {
	return func(o *idOptions) { o.index = &i }
}

// NewObjectID resolves the supplied parts into one identifier shape. A
// reference wins over everything else; otherwise a type with a name wins
// over a type with an index. An empty name counts as absent. Anything else
// fails with ErrUnresolvableObjectID.
func NewObjectID(opts ...IDOption) (ObjectID, error) {
	var o idOptions
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case o.ref != nil:
		return ByReference(*o.ref), nil
	case o.typ == 0:
	case o.name != nil && *o.name != "":
		return ByName(o.typ, *o.name), nil
	case o.index != nil:
		return ByIndex(o.typ, *o.index), nil
	}
	return ObjectID{}, buildErr("NewObjectID", "", ErrUnresolvableObjectID)
}

// ByReference addresses an object by the reference the renderer returned
// when creating it.
func ByReference(ref int64) ObjectID {
	return ObjectID{shape: idReference, ref: ref}
}

// ByName addresses an object by type and name.
func ByName(t ObjectType, name string) ObjectID {
	return ObjectID{shape: idName, typ: t, name: name}
}

// ByIndex addresses an object by type and its index among objects of that type.
func ByIndex(t ObjectType, index int) ObjectID {
	return ObjectID{shape: idIndex, typ: t, index: index}
}

// IsZero reports whether id addresses nothing.
func (id ObjectID) IsZero() bool { return id.shape == idNone }

// Reference returns the object reference if id is addressed by reference.
func (id ObjectID) Reference() (int64, bool) { return id.ref, id.shape == idReference }

// Name returns the object name if id is addressed by name.
func (id ObjectID) Name() (string, bool) { return id.name, id.shape == idName }

// Index returns the object index if id is addressed by index.
func (id ObjectID) Index() (int, bool) { return id.index, id.shape == idIndex }

// Type returns the object type. It is unset for reference identifiers.
func (id ObjectID) Type() ObjectType { return id.typ }

func (id ObjectID) String() string {
	switch id.shape {
	case idReference:
		return fmt.Sprintf("ref:%d", id.ref)
	case idName:
		return fmt.Sprintf("%v:%q", id.typ, id.name)
	case idIndex:
		return fmt.Sprintf("%v[%d]", id.typ, id.index)
	}
	return "none"
}

// Document returns the wire form of id.
func (id ObjectID) Document() (any, error) {
	var o wire.Object
	switch id.shape {
	case idReference:
		o.Field("objectreference", id.ref)
	case idName:
		if id.typ == 0 || id.name == "" {
			return nil, buildErr("ObjectID.Document", "", ErrUnresolvableObjectID)
		}
		o.Field("objecttype", id.typ)
		o.Field("objectname", id.name)
	case idIndex:
		if id.typ == 0 {
			return nil, buildErr("ObjectID.Document", "", ErrUnresolvableObjectID)
		}
		o.Field("objecttype", id.typ)
		o.Field("objectindex", id.index)
	default:
		return nil, buildErr("ObjectID.Document", "", ErrUnresolvableObjectID)
	}
	b, err := o.Bytes()
	return json.RawMessage(b), err
}

// MarshalJSON encodes id as {objectreference}, {objecttype, objectname} or
// {objecttype, objectindex}.
func (id ObjectID) MarshalJSON() ([]byte, error) {
	v, err := id.Document()
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

// UnmarshalJSON decodes any identifier shape with the precedence of NewObjectID.
func (id *ObjectID) UnmarshalJSON(data []byte) error {
	var w struct {
		Reference *int64     `json:"objectreference"`
		Type      ObjectType `json:"objecttype"`
		Name      *string    `json:"objectname"`
		Index     *int       `json:"objectindex"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	var opts []IDOption
	if w.Reference != nil {
		opts = append(opts, WithReference(*w.Reference))
	}
	opts = append(opts, WithType(w.Type))
	if w.Name != nil {
		opts = append(opts, WithName(*w.Name))
	}
	if w.Index != nil {
		opts = append(opts, WithIndex(*w.Index))
	}
	v, err := NewObjectID(opts...)
	if err != nil {
		return err
	}
	*id = v
	return nil
}
