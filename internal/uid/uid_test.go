package uid

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewIsUUID(t *testing.T) {
	name := New()
	if _, err := uuid.Parse(name); err != nil {
		t.Errorf("New() = %q, not a UUID: %v", name, err)
	}
	if New() == name {
		t.Error("New() returned the same name twice")
	}
}

func TestSequence(t *testing.T) {
	next := Sequence("obj")
	for _, want := range []string{"obj-1", "obj-2", "obj-3"} {
		if got := next(); got != want {
			t.Errorf("next() = %q, want %q", got, want)
		}
	}
}
