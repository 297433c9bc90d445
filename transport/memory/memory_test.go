package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/gogpu/smig"
	"github.com/gogpu/smig/command"
	"github.com/gogpu/smig/transport"
)

func TestRegistered(t *testing.T) {
	p, err := transport.NewPerformer("memory")
	if err != nil {
		t.Fatalf("NewPerformer(memory) error = %v", err)
	}
	if _, ok := p.(*Performer); !ok {
		t.Errorf("NewPerformer(memory) = %T", p)
	}
}

func TestRecordsAndResponds(t *testing.T) {
	p := New().Respond("3").Fail(&transport.ExitError{Code: 1, Message: "nope"})
	ctx := context.Background()

	l := command.NewList().SetRunAsynchronously(true)
	bitmap := l.MakeCreateBitmapContext(smig.Sz(64, 64))
	l.AddCommand(command.Snapshot(bitmap, command.SnapshotTake))

	res, err := transport.Perform(ctx, p, l)
	if err != nil {
		t.Fatalf("Perform() error = %v", err)
	}
	if res.String() != "3" || !res.Asynchronous {
		t.Errorf("result = %+v", res)
	}

	_, err = transport.PerformCommand(ctx, p, command.Close(bitmap))
	var exitErr *transport.ExitError
	if !errors.As(err, &exitErr) || exitErr.Message != "nope" {
		t.Errorf("second Perform() error = %v, want the queued ExitError", err)
	}

	res, err = transport.PerformCommand(ctx, p, command.CloseAll(0))
	if err != nil || res.Output != "" {
		t.Errorf("third Perform() = %+v, %v; want empty output", res, err)
	}

	batches := p.Batches()
	if len(batches) != 3 {
		t.Fatalf("recorded %d batches, want 3", len(batches))
	}
	if batches[0].Len() != 2 || batches[0].CleanupLen() != 1 {
		t.Errorf("first batch Len() = %d, CleanupLen() = %d", batches[0].Len(), batches[0].CleanupLen())
	}
	if p.Last() != batches[2] {
		t.Error("Last() is not the most recent batch")
	}

	p.Reset()
	if p.Last() != nil || len(p.Batches()) != 0 {
		t.Error("Reset() kept batches")
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := New()
	if _, err := transport.PerformCommand(ctx, p, command.CloseAll(0)); !errors.Is(err, context.Canceled) {
		t.Errorf("Perform() error = %v, want context.Canceled", err)
	}
	if len(p.Batches()) != 0 {
		t.Error("cancelled batch was recorded")
	}
}

func TestNilBatch(t *testing.T) {
	if _, err := New().Perform(context.Background(), nil); !errors.Is(err, transport.ErrNoBatch) {
		t.Errorf("Perform(nil) error = %v, want ErrNoBatch", err)
	}
}
