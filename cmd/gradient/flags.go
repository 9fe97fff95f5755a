package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gradient"
	"github.com/gogpu/gradient/preset"
)

// stopsFlag collects repeated -stop color:pos[:opacity%] values.
type stopsFlag []preset.Stop

func (s *stopsFlag) String() string {
	parts := make([]string, len(*s))
	for i, st := range *s {
		parts[i] = st.Color + ":" + gradient.FormatNumber(st.Position)
		if st.Opacity != nil {
			parts[i] += ":" + gradient.FormatNumber(*st.Opacity*100)
		}
	}
	return strings.Join(parts, " ")
}

func (s *stopsFlag) Set(v string) error {
	st, err := parseStop(v)
	if err != nil {
		return err
	}
	*s = append(*s, st)
	return nil
}

// parseStop reads "color:pos" or "color:pos:opacity". Position and
// opacity are percentages; a trailing "%" is accepted on both.
func parseStop(v string) (preset.Stop, error) {
	parts := strings.Split(v, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return preset.Stop{}, fmt.Errorf("stop %q: want color:pos[:opacity]", v)
	}
	c, err := gradient.ParseColor(parts[0])
	if err != nil {
		return preset.Stop{}, err
	}
	pos, err := parsePercent(parts[1])
	if err != nil {
		return preset.Stop{}, fmt.Errorf("stop %q: position: %w", v, err)
	}
	st := preset.Stop{Color: c.Hex(), Position: pos}
	if len(parts) == 3 {
		pct, err := parsePercent(parts[2])
		if err != nil {
			return preset.Stop{}, fmt.Errorf("stop %q: opacity: %w", v, err)
		}
		op := gradient.OpacityFromPercent(pct)
		st.Opacity = &op
	}
	return st, nil
}

func parsePercent(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
}

// parsePair reads "a,b".
func parsePair(s string) (a, b float64, err error) {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%q: want two comma separated numbers", s)
	}
	if a, err = parsePercent(x); err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, err)
	}
	if b, err = parsePercent(y); err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, err)
	}
	return a, b, nil
}

// options holds everything the command line can set.
type options struct {
	preset string

	typ        string
	angle      float64
	center     string
	radius     string
	startAngle float64
	stops      stopsFlag

	css            bool
	swift          bool
	swiftName      string
	swiftLocations bool
	image          string
	size           int
	supersample    int
	pack           string
	sizes          string
	imageSet       string
	name           string
	points         int
	interp         string

	show    bool
	preview bool
	watch   bool
	verbose bool

	// Names of flags given explicitly; only these override the preset.
	set map[string]bool
}

func parseFlags(args []string) (*options, error) {
	o := &options{set: map[string]bool{}}
	fs := flag.NewFlagSet("gradient", flag.ContinueOnError)

	fs.StringVar(&o.preset, "preset", "", "preset file (.json or .lua)")

	fs.StringVar(&o.typ, "type", "linear", "gradient type: linear, radial or angular")
	fs.Float64Var(&o.angle, "angle", 90, "linear angle in degrees")
	fs.StringVar(&o.center, "center", "50,50", "radial/angular center as x,y percentages")
	fs.StringVar(&o.radius, "radius", "0,100", "radial start,end radius percentages")
	fs.Float64Var(&o.startAngle, "start-angle", 0, "angular start angle in degrees")
	fs.Var(&o.stops, "stop", "color stop color:pos[:opacity%] (repeatable)")

	fs.BoolVar(&o.css, "css", false, "print the CSS declaration")
	fs.BoolVar(&o.swift, "swift", false, "print SwiftUI source")
	fs.StringVar(&o.swiftName, "swift-name", "", "SwiftUI variable name")
	fs.BoolVar(&o.swiftLocations, "swift-locations", false, "emit SwiftUI stops with locations")
	fs.StringVar(&o.image, "image", "", "write an image (.png, .bmp or .tiff)")
	fs.IntVar(&o.size, "size", 512, "image size in pixels")
	fs.IntVar(&o.supersample, "supersample", 1, "supersampling factor 1-4")
	fs.StringVar(&o.pack, "pack", "", "write a zip of square PNGs")
	fs.StringVar(&o.sizes, "sizes", "16,32,64,128,256,512", "sizes for -pack")
	fs.StringVar(&o.imageSet, "imageset", "", "write a zipped Xcode image set")
	fs.StringVar(&o.name, "name", "", "image set name (defaults to the preset name)")
	fs.IntVar(&o.points, "points", 64, "image set size in points")
	fs.StringVar(&o.interp, "interp", "", "interpolation: srgb, linear or lab")

	fs.BoolVar(&o.show, "show", false, "draw a swatch in the terminal")
	fs.BoolVar(&o.preview, "preview", false, "open a preview window")
	fs.BoolVar(&o.watch, "watch", false, "regenerate outputs when the preset changes")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	if o.watch && o.preset == "" {
		return nil, fmt.Errorf("-watch requires -preset")
	}
	// Validate pairs up front so a bad value fails before any work.
	if _, _, err := parsePair(o.center); err != nil {
		return nil, fmt.Errorf("-center %w", err)
	}
	if _, _, err := parsePair(o.radius); err != nil {
		return nil, fmt.Errorf("-radius %w", err)
	}
	return o, nil
}

// apply overrides p with every explicitly given flag.
func (o *options) apply(p *preset.Preset) {
	if o.set["type"] {
		p.Type = o.typ
	}
	if o.set["angle"] {
		p.Angle = o.angle
	}
	if o.set["center"] {
		p.CenterX, p.CenterY, _ = parsePair(o.center)
	}
	if o.set["radius"] {
		p.StartRadius, p.EndRadius, _ = parsePair(o.radius)
	}
	if o.set["start-angle"] {
		p.StartAngle = o.startAngle
	}
	if len(o.stops) > 0 {
		p.Stops = append([]preset.Stop(nil), o.stops...)
	}

	out := &p.Outputs
	if o.set["css"] {
		out.CSS = o.css
	}
	if o.set["swift"] {
		out.Swift = o.swift
	}
	if o.set["swift-name"] {
		out.SwiftName = o.swiftName
	}
	if o.set["swift-locations"] {
		out.SwiftLocations = o.swiftLocations
	}
	if o.set["image"] {
		out.Image = o.image
	}
	if o.set["size"] || out.Size <= 0 {
		out.Size = o.size
	}
	if o.set["interp"] {
		out.Interpolation = o.interp
	}
}
