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
	"fmt"
)

// Point is a position on the integer pixel grid.
// The y axis points downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// MarshalJSON encodes p as a two-element array.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// UnmarshalJSON decodes a two-element array.
func (p *Point) UnmarshalJSON(data []byte) error {
	var xy []int
	if err := json.Unmarshal(data, &xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return fmt.Errorf("point must have 2 coordinates, not %d", len(xy))
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

// rightOfLine reports whether p lies to the right of the directed line
// from a to b, or on the line.  "Right" is with respect to image space,
// where the y axis points down.
//
// The test takes the dot product of the edge vector b-a with p-a rotated
// by 90 degrees, which is the 2D cross product of the two vectors.
// Products are computed in 64 bits.
func rightOfLine(a, b, p Point) bool {
	ex, ey := int64(b.X)-int64(a.X), int64(b.Y)-int64(a.Y)
	vx, vy := int64(p.X)-int64(a.X), int64(p.Y)-int64(a.Y)

	// (vx, vy) rotated by 90 degrees is (vy, -vx)
	return ex*vy+ey*(-vx) >= 0
}
