package command

// Batch is a sealed command list: the encoded document plus the options a
// transport needs. A Batch cannot be modified.
type Batch struct {
	data     []byte
	commands int
	cleanup  int
	returns  Returns
	saveType SaveResultsType
	saveTo   string
	async    bool
}

// JSON returns a copy of the encoded command list.
func (b *Batch) JSON() []byte {
	return append([]byte(nil), b.data...)
}

// String returns the encoded command list.
func (b *Batch) String() string { return string(b.data) }

// Len returns the number of main commands.
func (b *Batch) Len() int { return b.commands }

// CleanupLen returns the number of cleanup commands.
func (b *Batch) CleanupLen() int { return b.cleanup }

// Returns reports what the renderer was asked to report back.
func (b *Batch) Returns() Returns { return b.returns }

// SaveResultsType reports how results are delivered.
func (b *Batch) SaveResultsType() SaveResultsType { return b.saveType }

// SaveResultsTo returns the results file, if results go to a file.
func (b *Batch) SaveResultsTo() string { return b.saveTo }

// RunsAsynchronously reports whether the renderer returns before the
// commands finish.
func (b *Batch) RunsAsynchronously() bool { return b.async }
