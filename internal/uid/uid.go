// Package uid generates the client-side names given to objects created by a
// command list before the renderer has created them.
package uid

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Source produces object names. Names from one Source must not repeat.
type Source func() string

// New returns a random UUID string.
func New() string {
	return uuid.NewString()
}

// Sequence returns a Source yielding prefix-1, prefix-2, ... It is safe for
// concurrent use and is meant for reproducible documents in tests and demos.
func Sequence(prefix string) Source {
	var n atomic.Uint64
	return func() string {
		return prefix + "-" + strconv.FormatUint(n.Add(1), 10)
	}
}
