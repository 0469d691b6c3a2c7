package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mixcode/gifheader"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fail(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: gifheader -in input.gif [-json]")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("gifheader", flag.ContinueOnError)
	inPath := fs.String("in", "", "input GIF file")
	asJSON := fs.Bool("json", false, "print the header as JSON")
	fs.SetOutput(os.Stderr)
	fs.Usage = usage
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		usage()
		return errors.New("missing required arguments")
	}

	g, err := gifheader.ParseFile(*inPath)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	}
	return printHeader(out, g)
}

func printHeader(w io.Writer, g *gifheader.GIF) error {
	lsd := g.LSD
	fmt.Fprintf(w, "version: %s\n", g.Version)
	fmt.Fprintf(w, "width: %d\n", lsd.Width)
	fmt.Fprintf(w, "height: %d\n", lsd.Height)
	fmt.Fprintf(w, "color resolution: %d\n", lsd.ColorResolution)
	fmt.Fprintf(w, "pixel aspect ratio: %d", lsd.PixelAspectRatio)
	if ratio, ok := lsd.AspectRatio(); ok {
		fmt.Fprintf(w, " (%.4f)", ratio)
	}
	fmt.Fprintln(w)

	if !lsd.HasGlobalColorTable {
		_, err := fmt.Fprintln(w, "global color table: none")
		return err
	}
	fmt.Fprintf(w, "global color table: %d colors, %d bytes, sorted %v\n",
		len(g.GlobalColorTable), lsd.GlobalColorTableSize, lsd.Sorted)
	fmt.Fprintf(w, "background color index: %d\n", *lsd.BackgroundColorIndex)
	for i, c := range g.GlobalColorTable {
		if _, err := fmt.Fprintf(w, "  %3d: %v\n", i, c); err != nil {
			return err
		}
	}
	return nil
}
