package command

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/smig"
)

func TestClassPropertyCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  *Command
		want string
	}{
		{"all filters", ListFilters(""),
			`{"command":"getproperty","objecttype":"imagefilterchain","propertykey":"imagefilters"}`},
		{"filters in category", ListFilters("CICategoryBlur"),
			`{"command":"getproperty","objecttype":"imagefilterchain","propertykey":"imagefilters","filtercategory":"CICategoryBlur"}`},
		{"filter attributes", FilterAttributes("CIBoxBlur"),
			`{"command":"getproperty","objecttype":"imagefilterchain","propertykey":"filterattributes","filtername":"CIBoxBlur"}`},
		{"presets", ListPresets(),
			`{"command":"getproperty","objecttype":"bitmapcontext","propertykey":"presets"}`},
		{"blend modes", ListBlendModes(),
			`{"command":"getproperty","objecttype":"bitmapcontext","propertykey":"blendmodes"}`},
		{"ui fonts", ListUserInterfaceFonts(),
			`{"command":"getproperty","objecttype":"bitmapcontext","propertykey":"userinterfacefonts"}`},
		{"class property", ClassProperty(smig.ObjectImageImporter, "imageimporterfiletypes"),
			`{"command":"getproperty","objecttype":"imageimporter","propertykey":"imageimporterfiletypes"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := marshal(t, tt.cmd); got != tt.want {
				t.Errorf("Marshal() = %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestObjectVerbs(t *testing.T) {
	want := []Verb{VerbGetProperty, VerbGetProperties, VerbSetProperty, VerbClose, VerbRenderFilterChain}
	if diff := cmp.Diff(want, ObjectVerbs(smig.ObjectImageFilterChain)); diff != "" {
		t.Errorf("ObjectVerbs(imagefilterchain) mismatch (-want +got):\n%s", diff)
	}
	if got := ObjectVerbs(0); got != nil {
		t.Errorf("ObjectVerbs(0) = %v, want nil", got)
	}

	verbs := ObjectVerbs(smig.ObjectBitmapContext)
	verbs[0] = VerbExport
	if ObjectVerbs(smig.ObjectBitmapContext)[0] != VerbGetProperty {
		t.Error("ObjectVerbs() exposes the internal table")
	}

	tests := []struct {
		typ  smig.ObjectType
		verb Verb
		want bool
	}{
		{smig.ObjectImageExporter, VerbExport, true},
		{smig.ObjectImageImporter, VerbExport, false},
		{smig.ObjectPDFContext, VerbFinalizePage, true},
		{smig.ObjectBitmapContext, VerbGetPixelData, true},
		{smig.ObjectWindowContext, VerbGetPixelData, false},
		{smig.ObjectMovieImporter, VerbProcessFrames, true},
	}
	for _, tt := range tests {
		if got := Handles(tt.typ, tt.verb); got != tt.want {
			t.Errorf("Handles(%v, %v) = %v, want %v", tt.typ, tt.verb, got, tt.want)
		}
	}
}

func TestClassVerbs(t *testing.T) {
	base := []Verb{VerbCreate, VerbGetProperty, VerbCloseAll}
	if diff := cmp.Diff(base, ClassVerbs(smig.ObjectImageImporter)); diff != "" {
		t.Errorf("ClassVerbs(imageimporter) mismatch (-want +got):\n%s", diff)
	}
	withText := append(base[:3:3], VerbCalculateGraphicSizeOfText)
	if diff := cmp.Diff(withText, ClassVerbs(smig.ObjectWindowContext)); diff != "" {
		t.Errorf("ClassVerbs(nsgraphicscontext) mismatch (-want +got):\n%s", diff)
	}
	if got := ClassVerbs(0); got != nil {
		t.Errorf("ClassVerbs(0) = %v, want nil", got)
	}
}

func TestRendererDocument(t *testing.T) {
	setup := NewList()
	setup.AddCommand(CloseAll(0))
	draw := smig.NewDrawElement(smig.ElementFillRect).SetRect(smig.RectXYWH(0, 0, 10, 10))

	r := NewRenderer().
		SetDrawInstructions(draw).
		SetForegroundCommands(NewList().AddCommand(Snapshot(smig.ByReference(2), SnapshotDraw))).
		SetSetupCommands(setup)
	want := `{"setupcommandsdictionary":{"commands":[{"command":"closeall"}]},` +
		`"mainthreadcommandsdictionary":{"commands":[{"command":"snapshot",` +
		`"receiverobject":{"objectreference":2},"snapshotaction":"drawsnapshot"}]},` +
		`"drawdictionary":{"elementtype":"fillrectangle",` +
		`"rect":{"origin":{"x":0,"y":0},"size":{"width":10,"height":10}}}}`
	if got := marshal(t, r); got != want {
		t.Errorf("Marshal() = %s\nwant %s", got, want)
	}
	if got := marshal(t, NewRenderer()); got != "{}" {
		t.Errorf("Marshal(empty) = %s, want {}", got)
	}
}

func TestRendererReportsBadPart(t *testing.T) {
	r := NewRenderer().
		SetCleanupCommands(NewList().SetSaveResultsType(SaveJSONFile)).
		SetBackgroundCommands(NewList())
	if _, err := r.Document(); !errors.Is(err, ErrNoSaveLocation) {
		t.Errorf("Document() error = %v, want ErrNoSaveLocation", err)
	}
}
