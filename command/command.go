package command

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/smig"
	"github.com/gogpu/smig/internal/wire"
)

// Command is one operation for the renderer: a verb and its options in the
// order they were added.
type Command struct {
	verb Verb
	opts []option
}

type option struct {
	key   string
	value any
}

// New creates a command with no options.
func New(verb Verb) *Command {
	return &Command{verb: verb}
}

// NewObjectCommand creates a command handled by the receiver object.
func NewObjectCommand(verb Verb, receiver smig.ObjectID) *Command {
	return New(verb).SetReceiver(receiver)
}

// Verb returns the command verb.
func (c *Command) Verb() Verb { return c.verb }

// AddOption sets key to value. Setting a key that is already present
// replaces its value and keeps its position.
func (c *Command) AddOption(key string, value any) *Command {
	for i := range c.opts {
		if c.opts[i].key == key {
			c.opts[i].value = value
			return c
		}
	}
	c.opts = append(c.opts, option{key: key, value: value})
	return c
}

// RemoveOption deletes key if present.
func (c *Command) RemoveOption(key string) *Command {
	for i := range c.opts {
		if c.opts[i].key == key {
			c.opts = append(c.opts[:i:i], c.opts[i+1:]...)
			break
		}
	}
	return c
}

// Option returns the value stored under key. Decoded commands hold
// json.RawMessage values for keys they do not interpret.
func (c *Command) Option(key string) (any, bool) {
	for _, o := range c.opts {
		if o.key == key {
			return o.value, true
		}
	}
	return nil, false
}

// Keys returns the option keys in order.
func (c *Command) Keys() []string {
	keys := make([]string, len(c.opts))
	for i, o := range c.opts {
		keys[i] = o.key
	}
	return keys
}

// SetReceiver sets the object that handles the command. A command already
// queued in a list shares this state, so changing its receiver changes the
// queued command too.
func (c *Command) SetReceiver(receiver smig.ObjectID) *Command {
	return c.AddOption("receiverobject", receiver)
}

// Receiver returns the receiving object, if the command has one.
func (c *Command) Receiver() (smig.ObjectID, bool) {
	v, ok := c.Option("receiverobject")
	if !ok {
		return smig.ObjectID{}, false
	}
	id, ok := v.(smig.ObjectID)
	return id, ok
}

// SetImageIndex selects an image within the receiver, such as a frame in
// an importer or exporter.
func (c *Command) SetImageIndex(i int) *Command {
	return c.AddOption("imageindex", i)
}

// setDocument normalizes d and stores it under key.
func (c *Command) setDocument(key string, d smig.Documenter) error {
	v, err := smig.Encode(d)
	if err != nil {
		return fmt.Errorf("command: %s %s: %w", c.verb, key, err)
	}
	c.AddOption(key, v)
	return nil
}

// Document returns the command document: the command key followed by the
// options in order.
func (c *Command) Document() (any, error) {
	if c.verb == 0 {
		return nil, ErrNoVerb
	}
	var o wire.Object
	o.Field("command", c.verb)
	for _, opt := range c.opts {
		if d, ok := opt.value.(smig.Documenter); ok {
			raw, err := smig.Encode(d)
			if err != nil {
				return nil, fmt.Errorf("command: %s %s: %w", c.verb, opt.key, err)
			}
			o.Raw(opt.key, raw)
			continue
		}
		o.Field(opt.key, opt.value)
	}
	b, err := o.Bytes()
	if err != nil {
		return nil, fmt.Errorf("command: %s: %w", c.verb, err)
	}
	return json.RawMessage(b), nil
}

// MarshalJSON encodes the command document.
func (c *Command) MarshalJSON() ([]byte, error) {
	v, err := c.Document()
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

// UnmarshalJSON decodes a command document, keeping option order. The
// receiver is decoded into an smig.ObjectID; other options stay encoded.
func (c *Command) UnmarshalJSON(data []byte) error {
	var out Command
	err := wire.Fields(data, func(key string, raw json.RawMessage) error {
		switch key {
		case "command":
			return json.Unmarshal(raw, &out.verb)
		case "receiverobject":
			var id smig.ObjectID
			if err := json.Unmarshal(raw, &id); err != nil {
				return fmt.Errorf("command: receiverobject: %w", err)
			}
			out.AddOption(key, id)
		default:
			out.AddOption(key, append(json.RawMessage(nil), raw...))
		}
		return nil
	})
	if err != nil {
		return err
	}
	if out.verb == 0 {
		return ErrNoVerb
	}
	*c = out
	return nil
}
