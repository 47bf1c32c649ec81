// seehuhn.de/go/trirender - triangle rasterization to BMP files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package trirender

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrInvalidScene is returned for scene descriptions which cannot be
// rendered.
var ErrInvalidScene = errors.New("invalid scene")

// Scene describes an image: the canvas size, the triangles to draw and
// where to write the result.
type Scene struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Output string `json:"output,omitempty"`

	// AutoOrient, if set, puts the vertices of every triangle into
	// clockwise order before drawing.
	AutoOrient bool `json:"auto_orient,omitempty"`

	// Triangles are drawn in order.  Where triangles overlap, the later
	// one is visible.
	Triangles []Triangle `json:"triangles"`
}

// DefaultScene returns the scene rendered when no scene file is given:
// a single yellow triangle on a 1000×1000 canvas.
func DefaultScene() *Scene {
	return &Scene{
		Width:  1000,
		Height: 1000,
		Output: "triangle.bmp",
		Triangles: []Triangle{
			NewTriangle(Pt(200, 200), Pt(800, 200), Pt(500, 800), RGB(255, 255, 0)),
		},
	}
}

// Validate checks that the scene can be rendered.
func (s *Scene) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	return nil
}

// Render draws the scene into a new frame.
func (s *Scene) Render() (*Frame, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	f := NewFrame(s.Width, s.Height)
	for _, t := range s.Triangles {
		if s.AutoOrient {
			t = t.Oriented()
		}
		t.Draw(f)
	}
	return f, nil
}

// ReadScene decodes a JSON scene description from r.
// Unknown fields are an error.
func ReadScene(r io.Reader) (*Scene, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	s := &Scene{}
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadScene reads a JSON scene description from the named file.
func LoadScene(fname string) (*Scene, error) {
	r, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	s, err := ReadScene(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return s, nil
}

// WriteScene encodes s as indented JSON.
func WriteScene(w io.Writer, s *Scene) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
