package command

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/smig"
	"github.com/gogpu/smig/filter"
	"github.com/gogpu/smig/movie"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	return string(b)
}

var importer = smig.ByName(smig.ObjectImageImporter, "test.object")

func TestObjectCommands(t *testing.T) {
	const recv = `"receiverobject":{"objecttype":"imageimporter","objectname":"test.object"}`
	tests := []struct {
		name string
		cmd  *Command
		want string
	}{
		{"close", Close(importer), `{"command":"close",` + recv + `}`},
		{"export", Export(importer), `{"command":"export",` + recv + `}`},
		{"snapshot", Snapshot(importer, SnapshotTake), `{"command":"snapshot",` + recv + `,"snapshotaction":"takesnapshot"}`},
		{"finalize", FinalizePage(importer), `{"command":"finalizepage",` + recv + `}`},
		{"get property", GetProperty(importer, "dictionary").SetImageIndex(2),
			`{"command":"getproperty",` + recv + `,"propertykey":"dictionary","imageindex":2}`},
		{"get properties", GetProperties(importer), `{"command":"getproperties",` + recv + `}`},
		{"set property", SetProperty(importer, "file", "/tmp/a.png"),
			`{"command":"setproperty",` + recv + `,"propertykey":"file","propertyvalue":"/tmp/a.png"}`},
		{"copy metadata", CopyMetadata(importer, smig.ByReference(7), 1, 0),
			`{"command":"setproperties",` + recv + `,"imageindex":0,"secondaryobject":{"objectreference":7},"secondaryimageindex":1}`},
		{"add image", AddImageAt(importer, smig.ByReference(3), 4),
			`{"command":"addimage",` + recv + `,"secondaryobject":{"objectreference":3},"secondaryimageindex":4}`},
		{"class property", GetNonObjectProperty("presets", smig.ObjectBitmapContext),
			`{"command":"getproperty","propertykey":"presets","objecttype":"bitmapcontext"}`},
		{"framework property", GetNonObjectProperty("numberofobjects", 0),
			`{"command":"getproperty","propertykey":"numberofobjects"}`},
		{"close all", CloseAll(0), `{"command":"closeall"}`},
		{"close all of type", CloseAll(smig.ObjectPDFContext), `{"command":"closeall","objecttype":"pdfcontext"}`},
		{"assign image", AssignImageToCollection(importer, "frame").SetImageIndex(0),
			`{"command":"assignimagetocollection",` + recv + `,"imageidentifier":"frame","imageindex":0}`},
		{"remove image", RemoveImageFromCollection("frame"),
			`{"command":"removeimagefromcollection","imageidentifier":"frame"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := marshal(t, tt.cmd)
			if got != tt.want {
				t.Errorf("Marshal() = %s\nwant %s", got, tt.want)
			}
			var back Command
			if err := json.Unmarshal([]byte(got), &back); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if again := marshal(t, &back); again != tt.want {
				t.Errorf("round trip = %s\nwant %s", again, tt.want)
			}
		})
	}
}

func TestCreateCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  *Command
		want string
	}{
		{
			name: "bitmap",
			cmd:  CreateBitmapContext(smig.Sz(100, 100), WithName("TestSmigCommands")),
			want: `{"command":"create","objecttype":"bitmapcontext","objectname":"TestSmigCommands",` +
				`"size":{"width":100,"height":100},"preset":"AlphaPreMulFirstRGB8bpcInt"}`,
		},
		{
			name: "window",
			cmd:  CreateWindowContext(smig.NewRect(smig.WithWidth(smig.Num(200)), smig.WithHeight(smig.Num(200))), WithName("w")),
			want: `{"command":"create","objecttype":"nsgraphicscontext","objectname":"w",` +
				`"rect":{"origin":{"x":0,"y":0},"size":{"width":200,"height":200}},"borderlesswindow":false}`,
		},
		{
			name: "pdf",
			cmd:  CreatePDFContext(smig.Sz(480, 640), "/tmp/a.pdf", WithName("p")),
			want: `{"command":"create","objecttype":"pdfcontext","size":{"width":480,"height":640},"objectname":"p","file":"/tmp/a.pdf"}`,
		},
		{
			name: "importer",
			cmd:  CreateImporter("/tmp/in.jpg"),
			want: `{"command":"create","objecttype":"imageimporter","file":"/tmp/in.jpg"}`,
		},
		{
			name: "movie importer",
			cmd:  CreateMovieImporter("/tmp/in.mov", WithName("m")),
			want: `{"command":"create","objecttype":"movieimporter","file":"/tmp/in.mov","objectname":"m"}`,
		},
		{
			name: "exporter",
			cmd:  CreateExporter("/tmp/out.png", WithExportType(ExportPNG), WithName("e")),
			want: `{"command":"create","objecttype":"imageexporter","file":"/tmp/out.png","utifiletype":"public.png","objectname":"e"}`,
		},
		{
			name: "gray bitmap",
			cmd:  CreateBitmapContext(smig.Sz(8, 8), WithPreset(PresetGray8bpcInt)),
			want: `{"command":"create","objecttype":"bitmapcontext","size":{"width":8,"height":8},"preset":"Gray8bpcInt"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := marshal(t, tt.cmd); got != tt.want {
				t.Errorf("Marshal() = %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestAddOptionOverwritesInPlace(t *testing.T) {
	c := New(VerbGetProperty).
		AddOption("propertykey", "a").
		AddOption("objecttype", smig.ObjectImageImporter).
		AddOption("propertykey", "b")
	if diff := cmp.Diff([]string{"propertykey", "objecttype"}, c.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if v, _ := c.Option("propertykey"); v != "b" {
		t.Errorf("Option(propertykey) = %v, want b", v)
	}
	c.RemoveOption("propertykey")
	if _, ok := c.Option("propertykey"); ok {
		t.Error("RemoveOption() left the key")
	}
}

func TestSetReceiver(t *testing.T) {
	c := Close(importer).SetReceiver(smig.ByReference(9))
	if got := marshal(t, c); got != `{"command":"close","receiverobject":{"objectreference":9}}` {
		t.Errorf("Marshal() = %s", got)
	}
	if id, ok := c.Receiver(); !ok || id != smig.ByReference(9) {
		t.Errorf("Receiver() = %v, %v", id, ok)
	}
}

func TestDrawElementNormalizesPayload(t *testing.T) {
	bitmap := smig.ByName(smig.ObjectBitmapContext, "b")
	e := smig.NewDrawElement(smig.ElementFillRect).
		SetRect(smig.RectXYWH(0, 0, 10, 10)).
		SetFillColor(smig.RGB(1, 0, 0))
	fromBuilder, err := DrawElement(bitmap, e)
	if err != nil {
		t.Fatal(err)
	}
	raw, _ := json.Marshal(e)
	fromRaw, err := DrawElement(bitmap, smig.Raw(raw))
	if err != nil {
		t.Fatal(err)
	}
	if a, b := marshal(t, fromBuilder), marshal(t, fromRaw); a != b {
		t.Errorf("builder and raw payloads differ:\n%s\n%s", a, b)
	}

	empty, err := DrawElement(bitmap, smig.Map{})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"command":"drawelement","receiverobject":{"objecttype":"bitmapcontext","objectname":"b"},"drawinstructions":{}}`
	if got := marshal(t, empty); got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestPayloadErrors(t *testing.T) {
	bitmap := smig.ByReference(1)
	if _, err := DrawElement(bitmap, smig.NewDrawElement(smig.ElementFillRect)); !errors.Is(err, smig.ErrMissingField) {
		t.Errorf("DrawElement() error = %v, want ErrMissingField", err)
	}
	if _, err := RenderFilterChain(bitmap, nil); err == nil {
		t.Error("RenderFilterChain(nil) should fail")
	}
	if _, err := DrawElement(bitmap, nil); err == nil {
		t.Error("DrawElement(nil) should fail")
	}
	if _, err := GetPixelData(bitmap, smig.NewRect(), SaveJSONFile, ""); !errors.Is(err, ErrNoSaveLocation) {
		t.Errorf("GetPixelData() error = %v, want ErrNoSaveLocation", err)
	}
}

func TestRenderFilterChain(t *testing.T) {
	c, err := RenderFilterChain(smig.ByReference(4), filter.NewRenderInstructions().
		SetDestinationRect(smig.RectXYWH(0, 0, 10, 10)))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"command":"renderfilterchain","receiverobject":{"objectreference":4},` +
		`"renderinstructions":{"destinationrectangle":{"origin":{"x":0,"y":0},"size":{"width":10,"height":10}}}}`
	if got := marshal(t, c); got != want {
		t.Errorf("Marshal() = %s\nwant %s", got, want)
	}
}

func TestCalculateGraphicSizeOfText(t *testing.T) {
	size := 24.0
	c, err := CalculateGraphicSizeOfText(TextSize{
		Text:           "How long is a piece of string",
		PostScriptFont: "Helvetica",
		FontSize:       &size,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"command":"calculategraphicsizeoftext","objecttype":"bitmapcontext","getdatatype":"dictionaryobject",` +
		`"inputdata":{"stringtext":"How long is a piece of string","postscriptfontname":"Helvetica","fontsize":24}}`
	if got := marshal(t, c); got != want {
		t.Errorf("Marshal() = %s\nwant %s", got, want)
	}

	tests := []struct {
		name string
		in   TextSize
		want error
	}{
		{"no text", TextSize{UserInterfaceFont: smig.UIFontSystem}, smig.ErrEmptyText},
		{"no font", TextSize{Text: "x"}, ErrNoFont},
		{"no size", TextSize{Text: "x", PostScriptFont: "Helvetica"}, smig.ErrMissingField},
	}
	for _, tt := range tests {
		if _, err := CalculateGraphicSizeOfText(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestProcessFrames(t *testing.T) {
	movieImporter := smig.ByName(smig.ObjectMovieImporter, "m")
	frame := movie.NewProcessFrameInstructions(movie.NextSample()).
		AddCommand(AssignImageToCollection(movieImporter, "frame"))
	c, err := ProcessFrames(movieImporter, movie.TrackByMediaType(movie.MediaVideo, 0), frame)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"command":"processframes","receiverobject":{"objecttype":"movieimporter","objectname":"m"},` +
		`"track":{"trackindex":0,"mediatype":"vide"},"processinstructions":[{"frametime":"movienextsample",` +
		`"commands":[{"command":"assignimagetocollection","receiverobject":{"objecttype":"movieimporter","objectname":"m"},"imageidentifier":"frame"}]}]}`
	if got := marshal(t, c); got != want {
		t.Errorf("Marshal() = %s\nwant %s", got, want)
	}

	if _, err := ProcessFrames(movieImporter, movie.Track{}, frame); err == nil {
		t.Error("ProcessFrames() with an empty track should fail")
	}
}

func TestCommandWithoutVerb(t *testing.T) {
	if _, err := json.Marshal(&Command{}); !errors.Is(err, ErrNoVerb) {
		t.Errorf("Marshal() error = %v, want ErrNoVerb", err)
	}
	var c Command
	if err := json.Unmarshal([]byte(`{"propertykey":"x"}`), &c); !errors.Is(err, ErrNoVerb) {
		t.Errorf("Unmarshal() error = %v, want ErrNoVerb", err)
	}
	if err := json.Unmarshal([]byte(`{"command":"explode"}`), &c); !errors.Is(err, smig.ErrUnknownName) {
		t.Errorf("Unmarshal() error = %v, want ErrUnknownName", err)
	}
}
