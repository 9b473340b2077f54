package output

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension
var ErrUnsupportedFormat = errors.New("output: unsupported image format")

// Encoder writes a frame in one file format
type Encoder func(w io.Writer, frame *Frame) error

var encoders = map[string]Encoder{
	".ppm": WritePPM,
	".png": func(w io.Writer, frame *Frame) error {
		return png.Encode(w, frame)
	},
	".bmp": func(w io.Writer, frame *Frame) error {
		return bmp.Encode(w, frame)
	},
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeTIFF(w io.Writer, frame *Frame) error {
	return tiff.Encode(w, frame, &tiff.Options{Compression: tiff.Deflate})
}

// EncoderFor picks the encoder matching the path's extension.
// Paths without an extension are written as PPM.
func EncoderFor(path string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return WritePPM, nil
	}
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return enc, nil
}

// Formats lists the supported file extensions
func Formats() []string {
	return []string{".ppm", ".png", ".bmp", ".tif", ".tiff"}
}

// Save writes the frame to path. Failures are wrapped with the path and not
// retried; a partially written file is left behind.
func Save(path string, frame *Frame) error {
	enc, err := EncoderFor(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}

	if err := enc(file, frame); err != nil {
		file.Close()
		return fmt.Errorf("output: encode %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("output: close %s: %w", path, err)
	}
	return nil
}
