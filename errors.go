package smig

import "errors"

// Sentinel errors for document construction.
var (
	// ErrNotNumeric is returned when arithmetic is attempted on a field that
	// holds an equation.
	ErrNotNumeric = errors.New("smig: field holds an equation, not a number")

	// ErrUnresolvableObjectID is returned when an object identifier has no
	// reference and no type paired with a name or an index.
	ErrUnresolvableObjectID = errors.New("smig: object identifier needs a reference, or a type with a name or index")

	// ErrTrianglePoints is returned by AddTriangle for anything but 3 points.
	ErrTrianglePoints = errors.New("smig: triangle needs exactly 3 points")

	// ErrCornerRadii is returned when a rounded rectangle gets other than 4 radii.
	ErrCornerRadii = errors.New("smig: rounded rectangle needs 4 corner radii")

	// ErrNotPathElement is returned when a path is set on an element type
	// that does not draw paths.
	ErrNotPathElement = errors.New("smig: element type does not take a path")

	// ErrNotArrayOfElements is returned when a child is added to an element
	// whose type is not arrayofelements.
	ErrNotArrayOfElements = errors.New("smig: element type is not arrayofelements")

	// ErrDedicatedBuilder is returned when a DrawElement is tagged with an
	// element type that has its own builder.
	ErrDedicatedBuilder = errors.New("smig: element type has its own builder")

	// ErrLengthMismatch is returned when gradient locations and colors differ in length.
	ErrLengthMismatch = errors.New("smig: gradient needs a color for each location")

	// ErrLocationRange is returned for a gradient location outside [0, 1].
	ErrLocationRange = errors.New("smig: gradient location outside [0, 1]")

	// ErrMissingField is returned when a required field was never set.
	ErrMissingField = errors.New("smig: required field not set")

	// ErrEmptyText is returned when a text element is given no text.
	ErrEmptyText = errors.New("smig: text is empty")

	// ErrTransformConflict is returned when a decoded element carries both
	// transform forms.
	ErrTransformConflict = errors.New("smig: both contexttransformation and affinetransform present")

	// ErrUnknownName is returned when parsing an enumeration name fails.
	ErrUnknownName = errors.New("smig: unknown name")
)

// BuildError reports a failed builder call. Op names the operation and Name
// carries the element debug name when one was set, so failures reported by
// the renderer can be traced back to the call that built the instruction.
type BuildError struct {
	Op   string
	Name string
	Err  error
}

func (e *BuildError) Error() string {
	s := "smig: " + e.Op
	if e.Name != "" {
		s += " (" + e.Name + ")"
	}
	return s + ": " + e.Err.Error()
}

func (e *BuildError) Unwrap() error { return e.Err }

func buildErr(op, name string, err error) error {
	return &BuildError{Op: op, Name: name, Err: err}
}
