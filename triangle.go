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
	"fmt"
	"image"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Triangle is a filled triangle with a uniform colour.
//
// The vertices must be given in clockwise order in image space, where
// the y axis points down.  A triangle with counter-clockwise vertices
// contains no points and draws nothing; use [Triangle.Oriented] to fix
// the winding if the order is not known.
type Triangle struct {
	A     Point `json:"a"`
	B     Point `json:"b"`
	C     Point `json:"c"`
	Color Color `json:"color"`
}

// NewTriangle returns the triangle with vertices a, b, c and fill colour col.
func NewTriangle(a, b, c Point, col Color) Triangle {
	return Triangle{A: a, B: b, C: c, Color: col}
}

func (t Triangle) String() string {
	return fmt.Sprintf("triangle %s %s %s %s", t.A, t.B, t.C, t.Color)
}

// IsInside reports whether p lies inside the triangle or on its boundary.
func (t Triangle) IsInside(p Point) bool {
	return rightOfLine(t.A, t.B, p) &&
		rightOfLine(t.B, t.C, p) &&
		rightOfLine(t.C, t.A, p)
}

// SignedArea2 returns twice the signed area of the triangle.
// The result is positive for clockwise vertices, negative for
// counter-clockwise vertices and zero for degenerate triangles.
func (t Triangle) SignedArea2() int64 {
	ex, ey := int64(t.B.X)-int64(t.A.X), int64(t.B.Y)-int64(t.A.Y)
	fx, fy := int64(t.C.X)-int64(t.A.X), int64(t.C.Y)-int64(t.A.Y)
	return ex*fy - ey*fx
}

// Clockwise reports whether the vertices are in clockwise order.
// Degenerate triangles are not clockwise.
func (t Triangle) Clockwise() bool {
	return t.SignedArea2() > 0
}

// Oriented returns the triangle with its vertices in clockwise order.
// Counter-clockwise triangles have B and C swapped; all other triangles
// are returned unchanged.
func (t Triangle) Oriented() Triangle {
	if t.SignedArea2() < 0 {
		t.B, t.C = t.C, t.B
	}
	return t
}

// Bounds returns the smallest rectangle which contains all three vertices.
func (t Triangle) Bounds() image.Rectangle {
	xMin := min(t.A.X, t.B.X, t.C.X)
	xMax := max(t.A.X, t.B.X, t.C.X)
	yMin := min(t.A.Y, t.B.Y, t.C.Y)
	yMax := max(t.A.Y, t.B.Y, t.C.Y)
	return image.Rect(xMin, yMin, xMax+1, yMax+1)
}

// Draw paints all pixels of f which lie inside the triangle.
//
// For triangles with non-zero area only the part of the frame covered by
// the bounding box of the triangle is scanned.  A degenerate triangle
// contains every point of the line through its vertices (or the whole
// plane, if all vertices coincide), so the whole frame is scanned.
// Parts of the triangle outside the frame are clipped.
func (t Triangle) Draw(f *Frame) {
	box := f.Bounds()
	if t.SignedArea2() != 0 {
		box = t.Bounds().Intersect(box)
	}

	painted := 0
	for y := box.Min.Y; y < box.Max.Y; y++ {
		row := f.pix[y*f.width : (y+1)*f.width]
		for x := box.Min.X; x < box.Max.X; x++ {
			if t.IsInside(Point{X: x, Y: y}) {
				row[x] = t.Color
				painted++
			}
		}
	}

	Logger().Debug("triangle drawn",
		"triangle", t,
		"scanned", box.Dx()*box.Dy(),
		"painted", painted)
}

// Path returns the outline of the triangle as a closed path.
func (t Triangle) Path() *path.Data {
	return (&path.Data{}).
		MoveTo(toVec(t.A)).
		LineTo(toVec(t.B)).
		LineTo(toVec(t.C)).
		Close()
}

func toVec(p Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}
