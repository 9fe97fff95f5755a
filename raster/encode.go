package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/gradient"
)

// Format is an image file format.
type Format int

const (
	// PNG is the default export format.
	PNG Format = iota
	// BMP writes uncompressed bitmaps.
	BMP
	// TIFF writes deflate-compressed TIFF.
	TIFF
)

// ErrUnknownFormat is returned for unsupported image formats.
var ErrUnknownFormat = errors.New("raster: unknown image format")

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat parses a format name or file extension ("png", ".tif").
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from a file extension, defaulting to PNG
// when the path has none.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return PNG, nil
	}
	return ParseFormat(ext)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// SaveFile renders d at width×height and writes it to path in the format
// named by the path's extension.
func SaveFile(path string, d *gradient.Descriptor, width, height int, opts ...Option) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	img, err := Render(d, width, height, opts...)
	if err != nil {
		return err
	}

	out, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if err := Encode(out, img, f); err != nil {
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	gradient.Logger().Info("image written", "path", path, "format", f, "width", width, "height", height)
	return nil
}
