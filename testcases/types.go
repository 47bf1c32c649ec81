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

package testcases

import (
	"seehuhn.de/go/trirender"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name       string // lowercase a-z and _ only
	Width      int    // canvas width in pixels
	Height     int    // canvas height in pixels
	Triangles  []trirender.Triangle
	AutoOrient bool

	// Painted lists all pixels which are not black after rendering, in
	// row-major order.  Nil means that only Samples are checked.
	Painted []trirender.Point

	// Samples gives the expected colour of selected pixels.
	Samples map[trirender.Point]trirender.Color
}

// Scene returns the scene description for the test case.
func (tc TestCase) Scene() *trirender.Scene {
	return &trirender.Scene{
		Width:      tc.Width,
		Height:     tc.Height,
		AutoOrient: tc.AutoOrient,
		Triangles:  tc.Triangles,
	}
}

var (
	red    = trirender.RGB(255, 0, 0)
	green  = trirender.RGB(0, 255, 0)
	blue   = trirender.RGB(0, 0, 255)
	yellow = trirender.RGB(255, 255, 0)
	black  = trirender.Black
)

// pt is a helper to create a trirender.Point from x, y coordinates.
func pt(x, y int) trirender.Point {
	return trirender.Point{X: x, Y: y}
}

// tri is a helper to create a triangle.
func tri(x1, y1, x2, y2, x3, y3 int, col trirender.Color) trirender.Triangle {
	return trirender.NewTriangle(pt(x1, y1), pt(x2, y2), pt(x3, y3), col)
}

// region lists the pixels of a width×height canvas for which in returns
// true, in row-major order.
func region(width, height int, in func(x, y int) bool) []trirender.Point {
	res := []trirender.Point{}
	for y := range height {
		for x := range width {
			if in(x, y) {
				res = append(res, pt(x, y))
			}
		}
	}
	return res
}
