package movie

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/smig"
)

// ProcessFrameInstructions are the commands run for one movie frame.
type ProcessFrameInstructions struct {
	frameTime  Time
	identifier string
	commands   []smig.Documenter
}

// NewProcessFrameInstructions returns instructions for the frame at t.
func NewProcessFrameInstructions(t Time) *ProcessFrameInstructions {
	return &ProcessFrameInstructions{frameTime: t}
}

// FrameTime returns the time of the frame.
func (p *ProcessFrameInstructions) FrameTime() Time { return p.frameTime }

// SetFrameTime sets the time of the frame.
func (p *ProcessFrameInstructions) SetFrameTime(t Time) *ProcessFrameInstructions {
	p.frameTime = t
	return p
}

// SetImageIdentifier sets the identifier commands use to refer to the frame
// image. Unset, the renderer's shared frame identifier is used.
func (p *ProcessFrameInstructions) SetImageIdentifier(id string) *ProcessFrameInstructions {
	p.identifier = id
	return p
}

// AddCommand appends a command, usually a *command.Command.
func (p *ProcessFrameInstructions) AddCommand(c smig.Documenter) *ProcessFrameInstructions {
	p.commands = append(p.commands, c)
	return p
}

// SetCommands replaces the commands.
func (p *ProcessFrameInstructions) SetCommands(cmds []smig.Documenter) *ProcessFrameInstructions {
	p.commands = append([]smig.Documenter(nil), cmds...)
	return p
}

// Len returns the number of commands.
func (p *ProcessFrameInstructions) Len() int { return len(p.commands) }

type frameDoc struct {
	FrameTime       Time              `json:"frametime"`
	ImageIdentifier string            `json:"imageidentifier,omitempty"`
	Commands        []json.RawMessage `json:"commands"`
}

// Document validates the instructions and returns their document. A frame
// time and at least one command are required.
func (p *ProcessFrameInstructions) Document() (any, error) {
	if _, err := p.frameTime.Document(); err != nil {
		return nil, fmt.Errorf("movie: frame instructions: %w", err)
	}
	if len(p.commands) == 0 {
		return nil, fmt.Errorf("movie: frame instructions: %w: commands", smig.ErrMissingField)
	}
	d := frameDoc{FrameTime: p.frameTime, ImageIdentifier: p.identifier}
	for i, c := range p.commands {
		raw, err := smig.Encode(c)
		if err != nil {
			return nil, fmt.Errorf("movie: frame command %d: %w", i, err)
		}
		d.Commands = append(d.Commands, raw)
	}
	return d, nil
}

// MarshalJSON encodes the instructions document.
func (p *ProcessFrameInstructions) MarshalJSON() ([]byte, error) {
	v, err := p.Document()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// UnmarshalJSON decodes an instructions document. Commands are kept as raw
// documents.
func (p *ProcessFrameInstructions) UnmarshalJSON(data []byte) error {
	var d frameDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	out := ProcessFrameInstructions{frameTime: d.FrameTime, identifier: d.ImageIdentifier}
	for _, c := range d.Commands {
		out.commands = append(out.commands, smig.Raw(c))
	}
	*p = out
	return nil
}
