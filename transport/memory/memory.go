// Package memory provides a performer that records batches instead of
// running them. It stands in for the renderer in tests and dry runs.
//
// Importing the package registers it as "memory".
package memory

import (
	"context"
	"sync"

	"github.com/gogpu/smig"
	"github.com/gogpu/smig/command"
	"github.com/gogpu/smig/transport"
)

func init() {
	transport.Register("memory", func() transport.Performer {
		return New()
	})
}

type response struct {
	output string
	err    error
}

// Performer records every batch it is given and answers with queued
// responses, in order. With nothing queued it answers with empty output.
// It is safe for concurrent use.
type Performer struct {
	mu      sync.Mutex
	batches []*command.Batch
	queue   []response
}

// New returns an empty recording performer.
func New() *Performer {
	return &Performer{}
}

// Respond queues output for a later Perform.
func (p *Performer) Respond(output string) *Performer {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = append(p.queue, response{output: output})
	return p
}

// Fail queues err for a later Perform.
func (p *Performer) Fail(err error) *Performer {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = append(p.queue, response{err: err})
	return p
}

// Perform records b and returns the next queued response.
func (p *Performer) Perform(ctx context.Context, b *command.Batch) (*transport.Result, error) {
	if b == nil {
		return nil, transport.ErrNoBatch
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.batches = append(p.batches, b)
	var r response
	if len(p.queue) > 0 {
		r = p.queue[0]
		p.queue = p.queue[1:]
	}
	n := len(p.batches)
	p.mu.Unlock()

	smig.Logger().Debug("memory: recorded batch", "n", n, "commands", b.Len())
	if r.err != nil {
		return nil, r.err
	}
	return &transport.Result{
		Output:        r.output,
		Asynchronous:  b.RunsAsynchronously(),
		SaveResultsTo: b.SaveResultsTo(),
	}, nil
}

// Batches returns the recorded batches in order.
func (p *Performer) Batches() []*command.Batch {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*command.Batch(nil), p.batches...)
}

// Last returns the most recent batch, or nil.
func (p *Performer) Last() *command.Batch {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.batches) == 0 {
		return nil
	}
	return p.batches[len(p.batches)-1]
}

// Reset forgets recorded batches and queued responses.
func (p *Performer) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.batches = nil
	p.queue = nil
}
