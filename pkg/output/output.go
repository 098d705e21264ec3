// Package output encodes rendered images to files
package output

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image file format
type Format string

const (
	PPM  Format = "ppm"
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Formats lists every supported format
var Formats = []Format{PPM, PNG, BMP, TIFF}

// Binary reports whether the format is unsafe to print to a terminal
func (f Format) Binary() bool {
	return f != PPM
}

// Extension returns the file extension for the format, including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// ParseFormat parses a format name, case-insensitively. "tif" is accepted for TIFF.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "tif" {
		return TIFF, nil
	}
	if lo.Contains(Formats, Format(name)) {
		return Format(name), nil
	}
	return "", errors.Errorf("unknown output format %q (supported: %s)", name, strings.Join(FormatNames(), ", "))
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Errorf("cannot infer output format from %q", path)
	}
	format, err := ParseFormat(ext)
	if err != nil {
		return "", errors.Wrapf(err, "output file %q", path)
	}
	return format, nil
}

// FormatNames returns the names of all supported formats
func FormatNames() []string {
	return lo.Map(Formats, func(f Format, _ int) string { return string(f) })
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case PPM:
		err = WritePPM(w, img)
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.Errorf("unknown output format %q", format)
	}
	return errors.Wrapf(err, "encoding %s", format)
}

// WritePPM writes img as a plain-text P3 PPM: a "P3" line, the dimensions,
// the maximum value 255, then one "r g b" line per pixel in row-major order
// from the top-left pixel.
func WritePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return errors.Wrap(err, "writing PPM header")
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return errors.Wrapf(err, "writing PPM pixel (%d, %d)", x, y)
			}
		}
	}

	return errors.Wrap(bw.Flush(), "flushing PPM")
}
