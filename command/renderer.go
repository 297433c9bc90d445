package command

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/smig"
	"github.com/gogpu/smig/internal/wire"
)

// Renderer describes the work of a renderer view: command lists run when
// it is set up, off the main thread, on the main thread and when it is torn
// down, plus the draw instructions applied to the view's context. The draw
// instructions may draw images produced by the command lists.
type Renderer struct {
	setup      smig.Documenter
	background smig.Documenter
	foreground smig.Documenter
	cleanup    smig.Documenter
	draw       smig.Documenter
}

// NewRenderer returns an empty renderer description.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// SetSetupCommands sets the commands run once before anything is drawn.
func (r *Renderer) SetSetupCommands(l smig.Documenter) *Renderer {
	r.setup = l
	return r
}

// SetBackgroundCommands sets the commands run off the main thread. They may
// take time.
func (r *Renderer) SetBackgroundCommands(l smig.Documenter) *Renderer {
	r.background = l
	return r
}

// SetForegroundCommands sets the commands run on the main thread. They
// should finish quickly.
func (r *Renderer) SetForegroundCommands(l smig.Documenter) *Renderer {
	r.foreground = l
	return r
}

// SetCleanupCommands sets the commands run before the renderer is disposed of.
func (r *Renderer) SetCleanupCommands(l smig.Documenter) *Renderer {
	r.cleanup = l
	return r
}

// SetDrawInstructions sets the draw element applied to the view's context.
func (r *Renderer) SetDrawInstructions(d smig.Documenter) *Renderer {
	r.draw = d
	return r
}

// Document encodes the parts that were set, in a fixed order.
func (r *Renderer) Document() (any, error) {
	var o wire.Object
	for _, part := range []struct {
		key string
		d   smig.Documenter
	}{
		{"setupcommandsdictionary", r.setup},
		{"backgroundcommandsdictionary", r.background},
		{"mainthreadcommandsdictionary", r.foreground},
		{"cleanupcommandsdictionary", r.cleanup},
		{"drawdictionary", r.draw},
	} {
		if part.d == nil {
			continue
		}
		raw, err := smig.Encode(part.d)
		if err != nil {
			return nil, fmt.Errorf("command: renderer %s: %w", part.key, err)
		}
		o.Raw(part.key, raw)
	}
	b, err := o.Bytes()
	if err != nil {
		return nil, fmt.Errorf("command: renderer: %w", err)
	}
	return json.RawMessage(b), nil
}

// MarshalJSON encodes the renderer document.
func (r *Renderer) MarshalJSON() ([]byte, error) {
	v, err := r.Document()
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}
