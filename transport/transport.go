// Package transport hands sealed command lists to the smig renderer and
// parses what it returns.
//
// Performers are registered by name, following the database/sql driver
// pattern:
//
//	import _ "github.com/gogpu/smig/transport/smigexec" // registers "smig"
//
//	p, err := transport.NewPerformer("smig")
//	res, err := transport.Perform(ctx, p, list)
package transport

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/smig/command"
)

// ErrNoBatch is returned when a performer is given a nil batch.
var ErrNoBatch = errors.New("transport: no batch")

// Performer runs a sealed command list.
//
// Perform blocks until the renderer finishes, or, for a batch that runs
// asynchronously, until the renderer has accepted it. Cancelling ctx stops
// the renderer.
type Performer interface {
	Perform(ctx context.Context, b *command.Batch) (*Result, error)
}

// Perform seals l and runs it with p.
func Perform(ctx context.Context, p Performer, l *command.List) (*Result, error) {
	b, err := l.Seal()
	if err != nil {
		return nil, fmt.Errorf("transport: seal: %w", err)
	}
	return p.Perform(ctx, b)
}

// PerformCommand runs a single command with p.
func PerformCommand(ctx context.Context, p Performer, c *command.Command) (*Result, error) {
	return Perform(ctx, p, command.NewList().AddCommand(c))
}

// ExitError reports a renderer that exited with a non-zero status. Message
// is the renderer's output, unmodified.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("transport: renderer exited with status %d", e.Code)
	}
	return fmt.Sprintf("transport: renderer exited with status %d: %s", e.Code, e.Message)
}
