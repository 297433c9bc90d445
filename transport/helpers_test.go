package transport

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/smig"
	"github.com/gogpu/smig/command"
)

func TestCreateHelpersReturnReference(t *testing.T) {
	ctx := context.Background()
	p := &stubPerformer{out: "7\n"}

	win, err := CreateWindow(ctx, p, smig.RectXYWH(100, 100, 800, 600), true)
	if err != nil {
		t.Fatalf("CreateWindow() error = %v", err)
	}
	bmp, err := CreateBitmapContext(ctx, p, smig.Sz(64, 64), command.DefaultPreset)
	if err != nil {
		t.Fatalf("CreateBitmapContext() error = %v", err)
	}
	for _, id := range []smig.ObjectID{win, bmp} {
		if id != smig.ByReference(7) {
			t.Errorf("id = %v, want ref:7", id)
		}
	}

	winDoc := p.got[0].String()
	for _, want := range []string{`"objecttype":"nsgraphicscontext"`, `"borderlesswindow":true`} {
		if !strings.Contains(winDoc, want) {
			t.Errorf("window batch %s missing %s", winDoc, want)
		}
	}
	if strings.Contains(winDoc, "objectname") || p.got[0].CleanupLen() != 0 {
		t.Errorf("window batch %s should neither name nor close the window", winDoc)
	}
	if !strings.Contains(p.got[1].String(), `"preset":"AlphaPreMulFirstRGB8bpcInt"`) {
		t.Errorf("bitmap batch = %s", p.got[1].String())
	}
}

func TestCreateHelperBadOutput(t *testing.T) {
	p := &stubPerformer{out: "Error: no window"}
	if _, err := CreateWindow(context.Background(), p, smig.NewRect(), false); err == nil {
		t.Error("CreateWindow() with non-numeric output should fail")
	}
}

func TestSaveImage(t *testing.T) {
	p := &stubPerformer{}
	src := smig.ByReference(3)
	if err := SaveImage(context.Background(), p, src, "/tmp/out.png", command.ExportPNG); err != nil {
		t.Fatalf("SaveImage() error = %v", err)
	}
	b := p.got[0]
	if b.Len() != 3 || b.CleanupLen() != 1 {
		t.Errorf("Len() = %d, CleanupLen() = %d; want 3 and 1", b.Len(), b.CleanupLen())
	}
	for _, want := range []string{`"utifiletype":"public.png"`, `"command":"addimage"`,
		`"secondaryobject":{"objectreference":3}`, `"command":"export"`} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("batch missing %s", want)
		}
	}

	tests := []struct {
		name string
		src  smig.ObjectID
		path string
	}{
		{"no source", smig.ObjectID{}, "/tmp/out.png"},
		{"no file", src, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &stubPerformer{}
			err := SaveImage(context.Background(), p, tt.src, tt.path, command.ExportPNG)
			if !errors.Is(err, smig.ErrMissingField) {
				t.Errorf("SaveImage() error = %v, want ErrMissingField", err)
			}
			if len(p.got) != 0 {
				t.Error("performer called for invalid arguments")
			}
		})
	}
}

func TestDrawImageFile(t *testing.T) {
	ctx := context.Background()
	dst := smig.ByReference(9)
	rect := smig.RectXYWH(0, 0, 32, 32)

	p := &stubPerformer{}
	if err := DrawImageFile(ctx, p, dst, rect, "/tmp/in.jpg", nil); err != nil {
		t.Fatalf("DrawImageFile() error = %v", err)
	}
	b := p.got[0]
	if b.Len() != 2 || b.CleanupLen() != 1 {
		t.Errorf("Len() = %d, CleanupLen() = %d; want 2 and 1", b.Len(), b.CleanupLen())
	}
	if !strings.Contains(b.String(), `"elementtype":"drawimage","sourceobject":{"objecttype":"imageimporter"`) {
		t.Errorf("batch = %s, want an image drawn from the importer", b.String())
	}

	opts := smig.NewImageElement(smig.ByReference(1), smig.NewRect()).
		SetImageIndex(2).
		SetInterpolationQuality(smig.InterpolationHigh)
	if err := DrawImageFile(ctx, p, dst, rect, "/tmp/in.tiff", opts); err != nil {
		t.Fatal(err)
	}
	doc := p.got[1].String()
	for _, want := range []string{`"imageindex":2`, `"interpolationquality":"kCGInterpolationHigh"`,
		`"size":{"width":32,"height":32}`} {
		if !strings.Contains(doc, want) {
			t.Errorf("batch missing %s", want)
		}
	}
	if opts.Source() != smig.ByReference(1) {
		t.Errorf("DrawImageFile() changed the caller's element source to %v", opts.Source())
	}

	if err := DrawImageFile(ctx, p, smig.ObjectID{}, rect, "/tmp/in.jpg", nil); !errors.Is(err, smig.ErrMissingField) {
		t.Errorf("DrawImageFile() without destination error = %v, want ErrMissingField", err)
	}
	if err := DrawImageFile(ctx, p, dst, rect, "", nil); !errors.Is(err, smig.ErrMissingField) {
		t.Errorf("DrawImageFile() without file error = %v, want ErrMissingField", err)
	}
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	fail := &stubPerformer{err: &ExitError{Code: 1, Message: "no such object"}}
	id := smig.ByReference(4)

	var exitErr *ExitError
	if err := Close(ctx, fail, id); !errors.As(err, &exitErr) {
		t.Errorf("Close() error = %v, want *ExitError", err)
	}
	CloseQuietly(ctx, fail, id)
	if len(fail.got) != 2 {
		t.Errorf("performer called %d times, want 2", len(fail.got))
	}
	if want := `{"commands":[{"command":"close","receiverobject":{"objectreference":4}}]}`; fail.got[1].String() != want {
		t.Errorf("batch = %s, want %s", fail.got[1].String(), want)
	}
}

func TestResultFields(t *testing.T) {
	r := &Result{Output: "kCGBlendModeNormal kCGBlendModeMultiply\n kCGBlendModeScreen\n"}
	got := r.Fields()
	if len(got) != 3 || got[2] != "kCGBlendModeScreen" {
		t.Errorf("Fields() = %q", got)
	}
}
