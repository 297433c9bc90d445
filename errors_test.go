package smig

import (
	"errors"
	"testing"
)

func TestBuildError(t *testing.T) {
	tests := []struct {
		err  *BuildError
		want string
	}{
		{&BuildError{Op: "Point.AddXY", Err: ErrNotNumeric}, "smig: Point.AddXY: " + ErrNotNumeric.Error()},
		{&BuildError{Op: "DrawElement.Add", Name: "frame", Err: ErrNotArrayOfElements}, "smig: DrawElement.Add (frame): " + ErrNotArrayOfElements.Error()},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
		if !errors.Is(tt.err, tt.err.Err) {
			t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.err.Err)
		}
	}
}
