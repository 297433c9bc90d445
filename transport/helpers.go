package transport

import (
	"context"
	"fmt"

	"github.com/gogpu/smig"
	"github.com/gogpu/smig/command"
)

// CreateBitmapContext creates a bitmap context right away and returns its
// reference. The caller closes it.
func CreateBitmapContext(ctx context.Context, p Performer, size smig.Size, preset command.Preset) (smig.ObjectID, error) {
	return createObject(ctx, p, command.CreateBitmapContext(size, command.WithPreset(preset)))
}

// CreateWindow opens a window context with its content in rect and returns
// its reference. The caller closes it.
func CreateWindow(ctx context.Context, p Performer, rect smig.Rect, borderless bool) (smig.ObjectID, error) {
	var opts []command.CreateOption
	if borderless {
		opts = append(opts, command.WithBorderless())
	}
	return createObject(ctx, p, command.CreateWindowContext(rect, opts...))
}

func createObject(ctx context.Context, p Performer, c *command.Command) (smig.ObjectID, error) {
	res, err := PerformCommand(ctx, p, c)
	if err != nil {
		return smig.ObjectID{}, err
	}
	return res.ObjectReference()
}

// Close closes id.
func Close(ctx context.Context, p Performer, id smig.ObjectID) error {
	_, err := PerformCommand(ctx, p, command.Close(id))
	return err
}

// CloseQuietly closes id and only logs a failure. It suits deferred cleanup
// of objects that may already be gone.
func CloseQuietly(ctx context.Context, p Performer, id smig.ObjectID) {
	if err := Close(ctx, p, id); err != nil {
		smig.Logger().Debug("transport: close failed", "object", id.String(), "err", err)
	}
}

// SaveImage writes the image in the context source to path as file type t,
// through an exporter that exists only for this call.
func SaveImage(ctx context.Context, p Performer, source smig.ObjectID, path string, t command.ExportType) error {
	if source.IsZero() {
		return fmt.Errorf("transport: save image: %w: source", smig.ErrMissingField)
	}
	if path == "" {
		return fmt.Errorf("transport: save image: %w: file", smig.ErrMissingField)
	}
	l := command.NewList()
	exporter := l.MakeCreateExporter(path, command.WithExportType(t))
	l.AddCommand(command.AddImage(exporter, source))
	l.AddCommand(command.Export(exporter))
	_, err := Perform(ctx, p, l)
	return err
}

// DrawImageFile draws the image in file into dst at dstRect. The file is
// opened by an importer that exists only for this call. e supplies the
// remaining drawing options, such as image index or interpolation; it may be
// nil and is not modified.
func DrawImageFile(ctx context.Context, p Performer, dst smig.ObjectID, dstRect smig.Rect, file string, e *smig.ImageElement) error {
	switch {
	case dst.IsZero():
		return fmt.Errorf("transport: draw image file: %w: destination", smig.ErrMissingField)
	case file == "":
		return fmt.Errorf("transport: draw image file: %w: file", smig.ErrMissingField)
	}
	l := command.NewList()
	importer := l.MakeCreateImporter(file)

	var img *smig.ImageElement
	if e == nil {
		img = smig.NewImageElement(importer, dstRect)
	} else {
		c := *e
		img = c.SetSource(importer).SetDestinationRect(dstRect)
	}
	draw, err := command.DrawElement(dst, img)
	if err != nil {
		return err
	}
	l.AddCommand(draw)
	_, err = Perform(ctx, p, l)
	return err
}
