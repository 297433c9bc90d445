package transport

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/smig"
)

// Result is what the renderer reported for a command list.
type Result struct {
	// Output is the renderer's standard output, unmodified.
	Output string

	// Asynchronous is set when the renderer returned before the commands
	// finished. Output is then empty or an acknowledgement.
	Asynchronous bool

	// SaveResultsTo is the file the results were written to, if any.
	SaveResultsTo string
}

// String returns the output without surrounding white space.
func (r *Result) String() string { return strings.TrimSpace(r.Output) }

// Int parses the output as an integer, such as a property value or the
// reference of a created object.
func (r *Result) Int() (int64, error) {
	n, err := strconv.ParseInt(r.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("transport: result %q is not an integer: %w", r.String(), err)
	}
	return n, nil
}

// ObjectReference parses the output of a create command as the new
// object's reference.
func (r *Result) ObjectReference() (smig.ObjectID, error) {
	n, err := r.Int()
	if err != nil {
		return smig.ObjectID{}, err
	}
	return smig.ByReference(n), nil
}

// Fields splits the output on white space, for list properties such as
// presets, blend modes and filter names.
func (r *Result) Fields() []string { return strings.Fields(r.Output) }

// Decode unmarshals JSON output into v.
func (r *Result) Decode(v any) error {
	if err := json.Unmarshal([]byte(r.Output), v); err != nil {
		return fmt.Errorf("transport: decode result: %w", err)
	}
	return nil
}
