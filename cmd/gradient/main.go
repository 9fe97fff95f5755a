// Command gradient builds a gradient from flags or a preset file and
// writes it out as CSS, SwiftUI source, images or a terminal swatch.
//
// Usage:
//
//	gradient -type radial -stop '#ff7e5f:0' -stop 'navy:100:80' -css -swift
//	gradient -preset sunset.lua -image sunset.png -size 1024
//	gradient -preset sunset.json -watch -preview
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/gradient"
	"github.com/gogpu/gradient/internal/preview"
	"github.com/gogpu/gradient/internal/swatch"
	"github.com/gogpu/gradient/preset"
	"github.com/gogpu/gradient/raster"
)

// Swatch size in terminal cells.
const (
	swatchCols = 48
	swatchRows = 8
)

// Rendered images kept across passes.
const renderCacheSize = 16

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "gradient:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	gradient.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	p := preset.Default()
	if o.preset != "" {
		if p, err = preset.Load(o.preset); err != nil {
			return err
		}
	}

	s := &session{opts: o, stdout: stdout, cache: raster.NewCache(renderCacheSize)}
	if o.preview {
		s.win = preview.New(preview.DefaultConfig())
	}

	if err := s.pass(p); err != nil {
		return err
	}

	if o.watch {
		w, err := preset.NewWatcher(o.preset, 0, func(p *preset.Preset) {
			if err := s.pass(p); err != nil {
				gradient.Logger().Error("regenerate outputs", "preset", o.preset, "err", err)
			}
		}, nil)
		if err != nil {
			return err
		}
		w.Start()
		defer w.Stop()
	}

	switch {
	case s.win != nil:
		return s.win.Run(ctx)
	case o.watch:
		<-ctx.Done()
	}
	return nil
}

// session carries what outlives a single pass.
type session struct {
	opts   *options
	stdout io.Writer
	win    *preview.Window
	cache  *raster.Cache
}

// pass rebuilds the descriptor from p and the flags and rewrites every
// requested output.
func (s *session) pass(p *preset.Preset) error {
	o, stdout := s.opts, s.stdout
	o.apply(p)
	d, err := p.Descriptor()
	if err != nil {
		return err
	}
	out := p.Outputs

	ropts := []raster.Option{raster.WithCache(s.cache)}
	if out.Interpolation != "" {
		interp, err := raster.ParseInterpolation(out.Interpolation)
		if err != nil {
			return err
		}
		ropts = append(ropts, raster.WithInterpolation(interp))
	}
	if o.supersample > 1 {
		ropts = append(ropts, raster.WithSupersample(o.supersample))
	}

	wrote := false
	if out.CSS {
		fmt.Fprintln(stdout, gradient.CSSDeclaration(d))
		wrote = true
	}
	if out.Swift {
		name := out.SwiftName
		if name == "" {
			name = p.Name
		}
		var copts []gradient.CodeOption
		if name != "" {
			copts = append(copts, gradient.WithVariableName(name))
		}
		copts = append(copts, gradient.WithStopLocations(out.SwiftLocations))
		fmt.Fprintln(stdout, gradient.SwiftUI(d, copts...))
		wrote = true
	}
	if out.Image != "" {
		if err := raster.SaveFile(out.Image, d, out.Size, out.Size, ropts...); err != nil {
			return err
		}
		wrote = true
	}
	if o.pack != "" {
		sizes, err := raster.ParseSizes(o.sizes)
		if err != nil {
			return err
		}
		if err := writeZip(o.pack, func(w io.Writer) error {
			return raster.WritePack(w, d, sizes, ropts...)
		}); err != nil {
			return err
		}
		wrote = true
	}
	if o.imageSet != "" {
		name := o.name
		if name == "" {
			name = p.Name
		}
		if err := writeZip(o.imageSet, func(w io.Writer) error {
			return raster.WriteImageSet(w, d, name, o.points, ropts...)
		}); err != nil {
			return err
		}
		wrote = true
	}
	if o.show {
		sw, err := swatch.Render(d, swatchCols, swatchRows, ropts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, sw)
		wrote = true
	}
	if s.win != nil {
		if err := s.win.SetDescriptor(d, ropts...); err != nil {
			return err
		}
		wrote = true
	}
	if !wrote {
		fmt.Fprintln(stdout, gradient.CSSDeclaration(d))
	}
	return nil
}

func writeZip(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := write(f); err != nil {
		return err
	}
	gradient.Logger().Info("archive written", "path", path)
	return nil
}
