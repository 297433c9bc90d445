package command

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/smig"
	"github.com/gogpu/smig/internal/uid"
	"github.com/gogpu/smig/internal/wire"
)

// State is the lifecycle state of a List.
type State uint8

const (
	StateEmpty    State = iota // Nothing added or set
	StateBuilding              // Commands or options present
)

func (s State) String() string {
	if s == StateEmpty {
		return "Empty"
	}
	return "Building"
}

// List is an ordered batch of commands, cleanup commands and the options
// controlling how the renderer runs them. A List is owned by one caller
// and is not safe for concurrent use.
type List struct {
	commands []smig.Documenter
	cleanup  []smig.Documenter

	stopOnFailure *bool
	returns       Returns
	saveType      SaveResultsType
	saveTo        string
	async         *bool
	variables     smig.Variables

	names uid.Source
}

// ListOption configures a List during creation.
type ListOption func(*List)

// WithNameSource sets how MakeCreate methods name objects. The default is
// a random UUID per object.
func WithNameSource(src uid.Source) ListOption {
	return func(l *List) { l.names = src }
}

// NewList returns an empty command list.
func NewList(opts ...ListOption) *List {
	l := &List{names: uid.New}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AddCommand appends c to the commands. c may be a *Command or a raw
// command document.
func (l *List) AddCommand(c smig.Documenter) *List {
	l.commands = append(l.commands, c)
	return l
}

// AddCleanupCommand appends c to the cleanup commands. Cleanup commands
// run after the main commands whatever their outcome, and each runs even
// if an earlier one failed.
func (l *List) AddCleanupCommand(c smig.Documenter) *List {
	l.cleanup = append(l.cleanup, c)
	return l
}

// AddCleanupClose appends a command closing id to the cleanup commands.
func (l *List) AddCleanupClose(id smig.ObjectID) *List {
	return l.AddCleanupCommand(Close(id))
}

// Commands returns the main commands in order.
func (l *List) Commands() []smig.Documenter {
	return append([]smig.Documenter(nil), l.commands...)
}

// CleanupCommands returns the cleanup commands in order.
func (l *List) CleanupCommands() []smig.Documenter {
	return append([]smig.Documenter(nil), l.cleanup...)
}

// SetStopOnFailure sets whether a failing command stops the rest of the
// main commands. The renderer stops by default.
func (l *List) SetStopOnFailure(stop bool) *List {
	l.stopOnFailure = &stop
	return l
}

// SetReturns sets what the renderer reports back.
func (l *List) SetReturns(r Returns) *List {
	l.returns = r
	return l
}

// SetSaveResultsType sets how results are delivered.
func (l *List) SetSaveResultsType(t SaveResultsType) *List {
	l.saveType = t
	return l
}

// SetSaveResultsTo sets the results file for file result types.
func (l *List) SetSaveResultsTo(path string) *List {
	l.saveTo = path
	return l
}

// SetRunAsynchronously sets whether the renderer returns before the
// commands finish.
func (l *List) SetRunAsynchronously(async bool) *List {
	l.async = &async
	return l
}

// SetVariables sets the variables available to every equation in the list.
func (l *List) SetVariables(v smig.Variables) *List {
	l.variables = v
	return l
}

// Clear resets the list to Empty. The name source is kept.
func (l *List) Clear() *List {
	*l = List{names: l.names}
	return l
}

// ClearCommands removes the main commands and keeps cleanup commands and
// options.
func (l *List) ClearCommands() *List {
	l.commands = nil
	return l
}

// State reports whether anything has been added to or set on the list.
func (l *List) State() State {
	if len(l.commands) == 0 && len(l.cleanup) == 0 &&
		l.stopOnFailure == nil && l.returns == 0 && l.saveType == 0 &&
		l.saveTo == "" && l.async == nil && l.variables == nil {
		return StateEmpty
	}
	return StateBuilding
}

// Len returns the number of main commands.
func (l *List) Len() int { return len(l.commands) }

func (l *List) validate() error {
	if l.saveType.IsFile() && l.saveTo == "" {
		return fmt.Errorf("%w: saveresultstype %s", ErrNoSaveLocation, l.saveType)
	}
	return nil
}

// Document validates the list and returns its document. Unset options are
// left out so the renderer applies its own defaults.
func (l *List) Document() (any, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	var o wire.Object
	if len(l.commands) > 0 {
		cmds, err := encodeAll(l.commands, "command")
		if err != nil {
			return nil, err
		}
		o.Field("commands", cmds)
	}
	if len(l.cleanup) > 0 {
		cmds, err := encodeAll(l.cleanup, "cleanup command")
		if err != nil {
			return nil, err
		}
		o.Field("cleanupcommands", cmds)
	}
	if l.stopOnFailure != nil {
		o.Field("stoponfailure", *l.stopOnFailure)
	}
	if l.returns != 0 {
		o.Field("returns", l.returns)
	}
	if l.saveType != 0 {
		o.Field("saveresultstype", l.saveType)
	}
	if l.saveTo != "" {
		o.Field("saveresultsto", l.saveTo)
	}
	if l.async != nil {
		o.Field("runasynchronously", *l.async)
	}
	if l.variables != nil {
		o.Field("variables", l.variables)
	}
	b, err := o.Bytes()
	if err != nil {
		return nil, fmt.Errorf("command: list: %w", err)
	}
	return json.RawMessage(b), nil
}

func encodeAll(docs []smig.Documenter, what string) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, len(docs))
	for i, d := range docs {
		raw, err := smig.Encode(d)
		if err != nil {
			return nil, fmt.Errorf("command: %s %d: %w", what, i, err)
		}
		out[i] = raw
	}
	return out, nil
}

// MarshalJSON encodes the list document.
func (l *List) MarshalJSON() ([]byte, error) {
	v, err := l.Document()
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

// UnmarshalJSON decodes a list document. Commands are decoded into
// *Command values.
func (l *List) UnmarshalJSON(data []byte) error {
	var w struct {
		Commands      []*Command      `json:"commands"`
		Cleanup       []*Command      `json:"cleanupcommands"`
		StopOnFailure *bool           `json:"stoponfailure"`
		Returns       Returns         `json:"returns"`
		SaveType      SaveResultsType `json:"saveresultstype"`
		SaveTo        string          `json:"saveresultsto"`
		Async         *bool           `json:"runasynchronously"`
		Variables     smig.Variables  `json:"variables"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("command: decode list: %w", err)
	}
	names := l.names
	if names == nil {
		names = uid.New
	}
	*l = List{
		stopOnFailure: w.StopOnFailure,
		returns:       w.Returns,
		saveType:      w.SaveType,
		saveTo:        w.SaveTo,
		async:         w.Async,
		variables:     w.Variables,
		names:         names,
	}
	for _, c := range w.Commands {
		l.commands = append(l.commands, c)
	}
	for _, c := range w.Cleanup {
		l.cleanup = append(l.cleanup, c)
	}
	return nil
}

// DecodeList decodes a command list document.
func DecodeList(data []byte) (*List, error) {
	l := NewList()
	if err := json.Unmarshal(data, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Seal validates and encodes the list into an immutable Batch. The list
// itself is unchanged and may keep being built.
func (l *List) Seal() (*Batch, error) {
	v, err := l.Document()
	if err != nil {
		return nil, err
	}
	return &Batch{
		data:     v.(json.RawMessage),
		commands: len(l.commands),
		cleanup:  len(l.cleanup),
		returns:  l.returns,
		saveType: l.saveType,
		saveTo:   l.saveTo,
		async:    l.async != nil && *l.async,
	}, nil
}

// newName returns the given name or a synthesized one.
func (l *List) newName(given string, t smig.ObjectType) string {
	if given != "" {
		return given
	}
	name := l.names()
	smig.Logger().Debug("command: synthesized object name", "type", t, "name", name)
	return name
}

// prepareCreate settles the new object's name and returns the options with
// that name applied.
func (l *List) prepareCreate(t smig.ObjectType, opts []CreateOption) (createOptions, []CreateOption) {
	o := newCreateOptions(opts)
	o.name = l.newName(o.name, t)
	return o, append(opts[:len(opts):len(opts)], WithName(o.name))
}

// finishCreate appends c and, unless disabled, a cleanup close. It returns
// the future object's id.
func (l *List) finishCreate(t smig.ObjectType, o createOptions, c *Command) smig.ObjectID {
	id := smig.ByName(t, o.name)
	l.AddCommand(c)
	if o.cleanup {
		l.AddCleanupClose(id)
	}
	return id
}

func (l *List) makeCreate(t smig.ObjectType, opts []CreateOption, build func(opts []CreateOption) *Command) smig.ObjectID {
	o, named := l.prepareCreate(t, opts)
	return l.finishCreate(t, o, build(named))
}

// MakeCreateBitmapContext appends a command creating a bitmap context and
// returns the context's id for use by later commands.
func (l *List) MakeCreateBitmapContext(size smig.Size, opts ...CreateOption) smig.ObjectID {
	return l.makeCreate(smig.ObjectBitmapContext, opts, func(opts []CreateOption) *Command {
		return CreateBitmapContext(size, opts...)
	})
}

// MakeCreateWindowContext appends a command creating a window context and
// returns the window's id.
func (l *List) MakeCreateWindowContext(rect smig.Rect, opts ...CreateOption) smig.ObjectID {
	return l.makeCreate(smig.ObjectWindowContext, opts, func(opts []CreateOption) *Command {
		return CreateWindowContext(rect, opts...)
	})
}

// MakeCreatePDFContext appends a command creating a PDF context writing to
// path and returns the context's id.
func (l *List) MakeCreatePDFContext(size smig.Size, path string, opts ...CreateOption) smig.ObjectID {
	return l.makeCreate(smig.ObjectPDFContext, opts, func(opts []CreateOption) *Command {
		return CreatePDFContext(size, path, opts...)
	})
}

// MakeCreateExporter appends a command creating an image exporter and
// returns the exporter's id.
func (l *List) MakeCreateExporter(path string, opts ...CreateOption) smig.ObjectID {
	return l.makeCreate(smig.ObjectImageExporter, opts, func(opts []CreateOption) *Command {
		return CreateExporter(path, opts...)
	})
}

// MakeCreateImporter appends a command creating an image importer and
// returns the importer's id.
func (l *List) MakeCreateImporter(path string, opts ...CreateOption) smig.ObjectID {
	return l.makeCreate(smig.ObjectImageImporter, opts, func(opts []CreateOption) *Command {
		return CreateImporter(path, opts...)
	})
}

// MakeCreateMovieImporter appends a command creating a movie importer and
// returns the importer's id.
func (l *List) MakeCreateMovieImporter(path string, opts ...CreateOption) smig.ObjectID {
	return l.makeCreate(smig.ObjectMovieImporter, opts, func(opts []CreateOption) *Command {
		return CreateMovieImporter(path, opts...)
	})
}

// MakeCreateImageFilterChain appends a command creating a filter chain
// object and returns its id. Nothing is appended if chain fails to encode.
func (l *List) MakeCreateImageFilterChain(chain smig.Documenter, opts ...CreateOption) (smig.ObjectID, error) {
	o, named := l.prepareCreate(smig.ObjectImageFilterChain, opts)
	c, err := CreateImageFilterChain(chain, named...)
	if err != nil {
		return smig.ObjectID{}, err
	}
	return l.finishCreate(smig.ObjectImageFilterChain, o, c), nil
}
