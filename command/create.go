package command

import (
	"github.com/gogpu/smig"
)

// CreateOption configures a create command, and for the List.MakeCreate
// methods, the cleanup of the created object.
type CreateOption func(*createOptions)

type createOptions struct {
	name       string
	cleanup    bool
	preset     Preset
	exportType ExportType
	borderless bool
}

func newCreateOptions(opts []CreateOption) createOptions {
	o := createOptions{
		cleanup:    true,
		preset:     DefaultPreset,
		exportType: ExportJPEG,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithName names the created object. Without it a List synthesizes a
// unique name, and the standalone constructors leave the object unnamed.
func WithName(name string) CreateOption {
	return func(o *createOptions) { o.name = name }
}

// WithoutCleanup keeps a List from closing the object in its cleanup
// commands.
func WithoutCleanup() CreateOption {
	return func(o *createOptions) { o.cleanup = false }
}

// WithPreset selects the bitmap context pixel format.
func WithPreset(p Preset) CreateOption {
	return func(o *createOptions) { o.preset = p }
}

// WithExportType selects the exported file type. The default is ExportJPEG.
func WithExportType(t ExportType) CreateOption {
	return func(o *createOptions) { o.exportType = t }
}

// WithBorderless creates a window without a title bar or border.
func WithBorderless() CreateOption {
	return func(o *createOptions) { o.borderless = true }
}

func newCreate(t smig.ObjectType) *Command {
	return New(VerbCreate).AddOption("objecttype", t)
}

func (o createOptions) addName(c *Command) {
	if o.name != "" {
		c.AddOption("objectname", o.name)
	}
}

// CreateBitmapContext creates a bitmap context of the given size.
func CreateBitmapContext(size smig.Size, opts ...CreateOption) *Command {
	o := newCreateOptions(opts)
	c := newCreate(smig.ObjectBitmapContext)
	o.addName(c)
	return c.AddOption("size", size).AddOption("preset", o.preset)
}

// CreateWindowContext creates a window whose content fills rect.
func CreateWindowContext(rect smig.Rect, opts ...CreateOption) *Command {
	o := newCreateOptions(opts)
	c := newCreate(smig.ObjectWindowContext)
	o.addName(c)
	return c.AddOption("rect", rect).AddOption("borderlesswindow", o.borderless)
}

// CreatePDFContext creates a PDF context writing to path. The file is
// complete once the context is closed.
func CreatePDFContext(size smig.Size, path string, opts ...CreateOption) *Command {
	o := newCreateOptions(opts)
	c := newCreate(smig.ObjectPDFContext).AddOption("size", size)
	o.addName(c)
	return c.AddOption("file", path)
}

// CreateImporter creates an image importer reading path.
func CreateImporter(path string, opts ...CreateOption) *Command {
	c := newCreate(smig.ObjectImageImporter).AddOption("file", path)
	newCreateOptions(opts).addName(c)
	return c
}

// CreateMovieImporter creates a movie importer reading path.
func CreateMovieImporter(path string, opts ...CreateOption) *Command {
	c := newCreate(smig.ObjectMovieImporter).AddOption("file", path)
	newCreateOptions(opts).addName(c)
	return c
}

// CreateExporter creates an image exporter writing to path.
func CreateExporter(path string, opts ...CreateOption) *Command {
	o := newCreateOptions(opts)
	c := newCreate(smig.ObjectImageExporter).
		AddOption("file", path).
		AddOption("utifiletype", o.exportType)
	o.addName(c)
	return c
}

// CreateImageFilterChain creates a filter chain object from chain, usually
// a *filter.Chain.
func CreateImageFilterChain(chain smig.Documenter, opts ...CreateOption) (*Command, error) {
	c := newCreate(smig.ObjectImageFilterChain)
	if err := c.setDocument("imagefilterchaindict", chain); err != nil {
		return nil, err
	}
	newCreateOptions(opts).addName(c)
	return c, nil
}
