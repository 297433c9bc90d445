// Command smigdemo builds a small smig command list: a bitmap context with a
// gradient background, a framed panel and a caption, exported to PNG.
//
// By default the list is printed as JSON. With -perform it is handed to a
// registered performer instead.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/gogpu/smig"
	"github.com/gogpu/smig/command"
	"github.com/gogpu/smig/internal/uid"
	"github.com/gogpu/smig/transport"
	_ "github.com/gogpu/smig/transport/memory"
	_ "github.com/gogpu/smig/transport/smigexec"
)

func main() {
	var (
		width   = flag.Float64("width", 800, "image width")
		height  = flag.Float64("height", 600, "image height")
		output  = flag.String("output", "demo.png", "exported image file")
		caption = flag.String("text", "Hello from smig", "caption text")
		perform = flag.String("perform", "", "performer to run the list with (smig, memory)")
		stable  = flag.Bool("stable", false, "use sequential object names instead of UUIDs")
	)
	flag.Parse()

	var opts []command.ListOption
	if *stable {
		opts = append(opts, command.WithNameSource(uid.Sequence("demo")))
	}
	list, err := buildList(*width, *height, *output, *caption, opts...)
	if err != nil {
		log.Fatalf("Failed to build command list: %v", err)
	}

	if *perform == "" {
		if err := printList(list); err != nil {
			log.Fatalf("Failed to encode: %v", err)
		}
		return
	}

	p, err := transport.NewPerformer(*perform)
	if err != nil {
		log.Fatalf("Performer: %v (available: %v)", err, transport.Performers())
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := transport.Perform(ctx, p, list)
	if err != nil {
		log.Fatalf("Perform failed: %v", err)
	}
	if out := res.String(); out != "" {
		fmt.Println(out)
	}
	log.Printf("Demo exported to %s (%gx%g)\n", *output, *width, *height)
}

func buildList(w, h float64, output, caption string, opts ...command.ListOption) (*command.List, error) {
	list := command.NewList(opts...).SetStopOnFailure(true)
	bitmap := list.MakeCreateBitmapContext(smig.Sz(w, h))
	exporter := list.MakeCreateExporter(output, command.WithExportType(command.ExportPNG))

	background, err := drawBackground(w, h)
	if err != nil {
		return nil, err
	}
	elements := []smig.Documenter{background, drawPanel(w, h)}

	text, err := smig.NewTextElement(caption, smig.Pt(w*0.1, h*0.45))
	if err != nil {
		return nil, err
	}
	text.SetUserInterfaceFont(smig.UIFontSystem).
		SetFontSize(smig.Num(h / 12)).
		SetFillColor(smig.Gray(1)).
		SetShadow(smig.NewShadow(smig.GrayA(0, 0.6), smig.Sz(3, -3), smig.Num(4)))
	elements = append(elements, text)

	for _, e := range elements {
		draw, err := command.DrawElement(bitmap, e)
		if err != nil {
			return nil, err
		}
		list.AddCommand(draw)
	}

	list.AddCommand(command.AddImage(exporter, bitmap))
	list.AddCommand(command.Export(exporter))
	return list, nil
}

func drawBackground(w, h float64) (smig.Documenter, error) {
	g := smig.NewLinearGradientElement().
		SetLine(smig.NewLine(smig.Pt(0, 0), smig.Pt(0, h))).
		SetPath(smig.NewPath().AddRect(smig.RectXYWH(0, 0, w, h))).
		SetBlendMode(smig.BlendNormal)
	err := g.SetLocationsAndColors(
		[]float64{0, 1},
		[]*smig.Color{smig.RGB(0.1, 0.2, 0.4), smig.RGB(0.5, 0.5, 0.6)},
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func drawPanel(w, h float64) smig.Documenter {
	return smig.NewDrawElement(smig.ElementFillRect).
		SetRect(smig.RectXYWH(w*0.05, h*0.3, w*0.9, h*0.4)).
		SetFillColor(smig.RGBA(1, 0.3, 0.3, 0.8)).
		SetBlendMode(smig.BlendMultiply).
		SetDebugName("panel")
}

func printList(list *command.List) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		var out bytes.Buffer
		if err := json.Indent(&out, b, "", "  "); err != nil {
			return err
		}
		b = out.Bytes()
	}
	_, err = fmt.Fprintf(os.Stdout, "%s\n", b)
	return err
}
