package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-in", "../../_testdata/red-dot.gif"}, &out); err != nil {
		t.Fatal(err)
	}

	for _, line := range []string{
		"version: 89a",
		"width: 10",
		"global color table: 1 colors, 3 bytes, sorted false",
		"background color index: 0",
		"    0: Color { FF0000 }",
	} {
		if !strings.Contains(out.String(), line+"\n") {
			t.Fatalf("missing %q in output:\n%s", line, out.String())
		}
	}
}

func TestRunNoGlobalColorTable(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-in", "../../_testdata/no-global-color-table.gif"}, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "global color table: none\n") {
		t.Fatalf("output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "pixel aspect ratio: 49 (1.0000)\n") {
		t.Fatalf("output:\n%s", out.String())
	}
}

func TestRunJSON(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-in", "../../_testdata/red-dot.gif", "-json"}, &out); err != nil {
		t.Fatal(err)
	}

	var v struct {
		Version string
		LSD     struct {
			Width                int
			BackgroundColorIndex *int
		}
		GlobalColorTable []struct{ Red, Green, Blue int }
	}
	if err := json.Unmarshal(out.Bytes(), &v); err != nil {
		t.Fatal(err)
	}
	if v.Version != "89a" || v.LSD.Width != 10 || v.LSD.BackgroundColorIndex == nil {
		t.Fatalf("decoded: %+v", v)
	}
	if len(v.GlobalColorTable) != 1 || v.GlobalColorTable[0].Red != 255 {
		t.Fatalf("global color table: %+v", v.GlobalColorTable)
	}
}

func TestRunMissingInput(t *testing.T) {
	if err := run(nil, &bytes.Buffer{}); err == nil {
		t.Fatal("expected an error")
	}
	if err := run([]string{"-in", "../../_testdata/nope.gif"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected an error")
	}
}
