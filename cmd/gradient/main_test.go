package main

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/gradient"
	"github.com/gogpu/gradient/preset"
)

func TestParseStop(t *testing.T) {
	half := 0.5
	tests := []struct {
		in   string
		want preset.Stop
	}{
		{"#ff0000:0", preset.Stop{Color: "#ff0000", Position: 0}},
		{"f00:25%", preset.Stop{Color: "#ff0000", Position: 25}},
		{"navy:100:50", preset.Stop{Color: "#000080", Position: 100, Opacity: &half}},
		{"#0000ff:40:50%", preset.Stop{Color: "#0000ff", Position: 40, Opacity: &half}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseStop(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseStop(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseStopInvalid(t *testing.T) {
	for _, in := range []string{"#ff0000", "#ff0000:1:2:3", "nope:10", "#fff:x", "#fff:10:y"} {
		if _, err := parseStop(in); err == nil {
			t.Errorf("parseStop(%q) succeeded, want error", in)
		}
	}
}

func TestParsePair(t *testing.T) {
	a, b, err := parsePair("30, 70%")
	if err != nil || a != 30 || b != 70 {
		t.Errorf("parsePair = %v, %v, %v", a, b, err)
	}
	for _, in := range []string{"30", "a,1", "1,b"} {
		if _, _, err := parsePair(in); err == nil {
			t.Errorf("parsePair(%q) succeeded, want error", in)
		}
	}
}

func TestParseFlagsValidation(t *testing.T) {
	tests := [][]string{
		{"-watch"},
		{"-center", "50"},
		{"-radius", "x,1"},
		{"extra"},
	}
	for _, args := range tests {
		if _, err := parseFlags(args); err == nil {
			t.Errorf("parseFlags(%v) succeeded, want error", args)
		}
	}
}

// Only flags given explicitly override preset values.
func TestApplyOverridesOnlySetFlags(t *testing.T) {
	o, err := parseFlags([]string{"-type", "radial", "-center", "10,20", "-stop", "#000:0", "-css"})
	if err != nil {
		t.Fatal(err)
	}
	p := &preset.Preset{Type: "linear", Angle: 33, EndRadius: 80, Outputs: preset.Outputs{Swift: true, Size: 64}}
	o.apply(p)

	if p.Type != "radial" || p.CenterX != 10 || p.CenterY != 20 {
		t.Errorf("geometry not overridden: %+v", p)
	}
	if p.Angle != 33 || p.EndRadius != 80 {
		t.Errorf("unset flags overrode preset values: %+v", p)
	}
	if len(p.Stops) != 1 || p.Stops[0].Color != "#000000" {
		t.Errorf("stops = %+v", p.Stops)
	}
	if !p.Outputs.CSS || !p.Outputs.Swift || p.Outputs.Size != 64 {
		t.Errorf("outputs = %+v", p.Outputs)
	}
}

func TestRunDefaultPrintsCSS(t *testing.T) {
	t.Cleanup(func() { gradient.SetLogger(nil) })

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), nil, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	want := "background: linear-gradient(90deg, rgba(26,26,64,1) 0%, rgba(77,77,255,1) 100%);\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRunWritesOutputs(t *testing.T) {
	t.Cleanup(func() { gradient.SetLogger(nil) })

	dir := t.TempDir()
	presetPath := filepath.Join(dir, "sunset.json")
	err := os.WriteFile(presetPath, []byte(`{
  "name": "Ocean sunset",
  "type": "angular",
  "stops": [{"color": "#f00", "pos": 0}, {"color": "#00f", "pos": 100}],
  "outputs": {"swift": true}
}`), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	img := filepath.Join(dir, "out.bmp")
	pack := filepath.Join(dir, "pack.zip")

	var stdout, stderr bytes.Buffer
	args := []string{"-preset", presetPath, "-css", "-image", img, "-size", "32", "-pack", pack, "-sizes", "8,16"}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}

	out := stdout.String()
	if !strings.Contains(out, "background: conic-gradient(from 0deg at 50% 50%") {
		t.Errorf("missing CSS in %q", out)
	}
	if !strings.Contains(out, "let oceanSunset = AngularGradient(") {
		t.Errorf("missing SwiftUI in %q", out)
	}

	data, err := os.ReadFile(img)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("BM")) {
		t.Errorf("image is not a BMP: % x", data[:4])
	}

	zr, err := zip.OpenReader(pack)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	if diff := cmp.Diff([]string{"gradient-8x8.png", "gradient-16x16.png"}, names); diff != "" {
		t.Errorf("pack entries mismatch (-want +got):\n%s", diff)
	}
}

func TestRunPresetErrors(t *testing.T) {
	t.Cleanup(func() { gradient.SetLogger(nil) })

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"-preset", "missing.json"}, &stdout, &stderr); err == nil {
		t.Error("run with a missing preset succeeded")
	}
	if err := run(context.Background(), []string{"-stop", "#fff:0", "-interp", "hsv"}, &stdout, &stderr); err == nil {
		t.Error("run with an unknown interpolation succeeded")
	}
}
