package raster

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"path"
	"strconv"
	"strings"
	"unicode"

	"github.com/gogpu/gradient"
)

// ParseSizes parses a list of square image sizes such as "16, 32 64".
// Commas and whitespace both separate entries; duplicates are dropped and
// the first-seen order is kept.
func ParseSizes(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no sizes in %q", ErrInvalidSize, s)
	}

	seen := make(map[int]bool, len(fields))
	sizes := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(f), "px"))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSize, f)
		}
		if err := checkSize(n, n); err != nil {
			return nil, err
		}
		if !seen[n] {
			seen[n] = true
			sizes = append(sizes, n)
		}
	}
	return sizes, nil
}

// PackFileName is the archive entry name used for a size in WritePack.
func PackFileName(size int) string {
	return fmt.Sprintf("gradient-%dx%d.png", size, size)
}

// WritePack writes a zip archive with one square PNG per size.
func WritePack(w io.Writer, d *gradient.Descriptor, sizes []int, opts ...Option) error {
	if len(sizes) == 0 {
		return fmt.Errorf("%w: empty size list", ErrInvalidSize)
	}
	zw := zip.NewWriter(w)
	for _, size := range sizes {
		if err := writePNGEntry(zw, PackFileName(size), d, size, size, opts); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("raster: finish pack: %w", err)
	}
	gradient.Logger().Info("asset pack written", "sizes", sizes)
	return nil
}

// imageSetContents is the Contents.json of an Xcode asset catalog image set.
type imageSetContents struct {
	Images []imageSetImage `json:"images"`
	Info   imageSetInfo    `json:"info"`
}

type imageSetImage struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
}

type imageSetInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// WriteImageSet writes a zip archive holding an Xcode "<name>.imageset"
// folder: the gradient at points×points for scales 1x, 2x and 3x, and the
// Contents.json that references them. The name is converted to an
// identifier, so "Hero background" becomes "heroBackground".
func WriteImageSet(w io.Writer, d *gradient.Descriptor, name string, points int, opts ...Option) error {
	if err := checkSize(points*3, points*3); err != nil {
		return err
	}
	base := gradient.Identifier(name)
	dir := base + ".imageset"

	contents := imageSetContents{Info: imageSetInfo{Author: "xcode", Version: 1}}
	zw := zip.NewWriter(w)
	for scale := 1; scale <= 3; scale++ {
		file := base + ".png"
		if scale > 1 {
			file = fmt.Sprintf("%s@%dx.png", base, scale)
		}
		px := points * scale
		if err := writePNGEntry(zw, path.Join(dir, file), d, px, px, opts); err != nil {
			return err
		}
		contents.Images = append(contents.Images, imageSetImage{
			Filename: file,
			Idiom:    "universal",
			Scale:    fmt.Sprintf("%dx", scale),
		})
	}

	jw, err := zw.Create(path.Join(dir, "Contents.json"))
	if err != nil {
		return fmt.Errorf("raster: create Contents.json: %w", err)
	}
	enc := json.NewEncoder(jw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(contents); err != nil {
		return fmt.Errorf("raster: write Contents.json: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("raster: finish image set: %w", err)
	}
	gradient.Logger().Info("image set written", "name", base, "points", points)
	return nil
}

func writePNGEntry(zw *zip.Writer, name string, d *gradient.Descriptor, width, height int, opts []Option) error {
	img, err := Render(d, width, height, opts...)
	if err != nil {
		return err
	}
	// PNG data is already deflated; store it as is.
	fw, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store})
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", name, err)
	}
	if err := png.Encode(fw, img); err != nil {
		return fmt.Errorf("raster: encode %s: %w", name, err)
	}
	return nil
}
