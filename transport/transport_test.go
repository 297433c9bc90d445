package transport

import (
	"context"
	"errors"
	"testing"

	"github.com/gogpu/smig"
	"github.com/gogpu/smig/command"
)

func TestPerformSealsList(t *testing.T) {
	p := &stubPerformer{out: "42\n"}
	l := command.NewList().AddCommand(command.CloseAll(0))
	res, err := Perform(context.Background(), p, l)
	if err != nil {
		t.Fatalf("Perform() error = %v", err)
	}
	if len(p.got) != 1 || p.got[0].String() != `{"commands":[{"command":"closeall"}]}` {
		t.Errorf("performer got %v", p.got)
	}
	if res.String() != "42" {
		t.Errorf("String() = %q, want 42", res.String())
	}
}

func TestPerformSealFailure(t *testing.T) {
	p := &stubPerformer{}
	l := command.NewList().SetSaveResultsType(command.SaveJSONFile)
	if _, err := Perform(context.Background(), p, l); !errors.Is(err, command.ErrNoSaveLocation) {
		t.Errorf("Perform() error = %v, want ErrNoSaveLocation", err)
	}
	if len(p.got) != 0 {
		t.Error("performer called for a list that failed to seal")
	}
}

func TestPerformCommand(t *testing.T) {
	p := &stubPerformer{out: "7"}
	res, err := PerformCommand(context.Background(), p,
		command.CreateBitmapContext(smig.Sz(10, 10)))
	if err != nil {
		t.Fatal(err)
	}
	id, err := res.ObjectReference()
	if err != nil {
		t.Fatalf("ObjectReference() error = %v", err)
	}
	if id != smig.ByReference(7) {
		t.Errorf("ObjectReference() = %v, want ref:7", id)
	}
	if p.got[0].Len() != 1 {
		t.Errorf("batch Len() = %d, want 1", p.got[0].Len())
	}
}

func TestPerformPropagatesExitError(t *testing.T) {
	p := &stubPerformer{err: &ExitError{Code: 2, Message: "Error: object not found\n"}}
	_, err := PerformCommand(context.Background(), p, command.Close(smig.ByReference(1)))
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want *ExitError", err)
	}
	if exitErr.Message != "Error: object not found\n" {
		t.Errorf("Message = %q, want the output verbatim", exitErr.Message)
	}
}

func TestExitErrorMessage(t *testing.T) {
	tests := []struct {
		err  *ExitError
		want string
	}{
		{&ExitError{Code: 1}, "transport: renderer exited with status 1"},
		{&ExitError{Code: 3, Message: "bad"}, "transport: renderer exited with status 3: bad"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestResult(t *testing.T) {
	r := &Result{Output: " 12 \n"}
	if n, err := r.Int(); err != nil || n != 12 {
		t.Errorf("Int() = %d, %v; want 12", n, err)
	}
	if _, err := (&Result{Output: "abc"}).Int(); err == nil {
		t.Error("Int() of non-numeric output should fail")
	}
	if _, err := (&Result{Output: ""}).ObjectReference(); err == nil {
		t.Error("ObjectReference() of empty output should fail")
	}

	var size struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}
	if err := (&Result{Output: `{"width":120.5,"height":18}`}).Decode(&size); err != nil {
		t.Fatal(err)
	}
	if size.Width != 120.5 || size.Height != 18 {
		t.Errorf("Decode() = %+v", size)
	}
}
