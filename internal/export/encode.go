package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"github.com/san-kum/flightdeck/internal/geom"
	"github.com/san-kum/flightdeck/internal/panel"
)

// MaxRasterSide bounds each side of a png or webp frame in pixels.
const MaxRasterSide = 16384

var (
	ErrUnknownFormat = errors.New("export: unknown format")
	ErrFrameTooLarge = errors.New("export: frame too large to rasterize")
)

type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch Format(ext) {
	case FormatSVG, FormatPNG, FormatWebP:
		return Format(ext), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Encode writes a raster image as png or webp.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WriteFrame renders primitives to path in the format its extension names.
func WriteFrame(path string, prims []panel.Primitive, size geom.Size, pal panel.Palette) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if f != FormatSVG && (math.Ceil(size.W) > MaxRasterSide || math.Ceil(size.H) > MaxRasterSide) {
		return fmt.Errorf("%w: %.0fx%.0f", ErrFrameTooLarge, size.W, size.H)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if f == FormatSVG {
		if _, err := io.WriteString(out, SVG(prims, size, pal)); err != nil {
			return err
		}
		return out.Close()
	}
	if err := Encode(out, Raster(prims, size, pal), f); err != nil {
		return err
	}
	return out.Close()
}
