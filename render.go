// Package trirender rasterizes filled triangles into a frame of 24-bit
// pixels and writes the frame as an uncompressed BMP file.
//
// A pixel (x, y) belongs to a triangle if the point (x, y) lies inside the
// triangle or on one of its edges.  Vertices must be given in clockwise
// order, see [Triangle].
package trirender

//go:generate go run ./testcases/export

import (
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/trirender/bmp"
)

// WriteBMP writes f to w as a bitmap file.
// If enc is nil, the default encoder options are used.
func WriteBMP(w io.Writer, f *Frame, enc *bmp.Encoder) error {
	if enc == nil {
		enc = &bmp.Encoder{}
	}
	return enc.Encode(w, f)
}

// WriteFile writes f to the named file as a bitmap.
// If enc is nil, the default encoder options are used.
//
// The file is created or truncated.  On error, a partially written file
// is left in place.
func WriteFile(fname string, f *Frame, enc *bmp.Encoder) (err error) {
	if enc == nil {
		enc = &bmp.Encoder{}
	}
	data, err := enc.Marshal(f)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err := out.Write(data); err != nil {
		return err
	}

	Logger().Info("bitmap written",
		"file", fname,
		"width", f.Width(),
		"height", f.Height(),
		"bytes", len(data),
		"rows", enc.Order.String())
	return nil
}

// RenderFile renders s and writes the result to s.Output.
func RenderFile(s *Scene, enc *bmp.Encoder) error {
	if s.Output == "" {
		return fmt.Errorf("%w: no output file", ErrInvalidScene)
	}
	f, err := s.Render()
	if err != nil {
		return err
	}
	return WriteFile(s.Output, f, enc)
}
