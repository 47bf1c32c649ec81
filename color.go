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
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB colour.
// The zero value is black.
type Color struct {
	R, G, B uint8
}

// Black is the initial colour of every frame pixel.
var Black = Color{}

// RGB returns the colour with the given channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseColor parses a colour in "#rrggbb" notation.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Black, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// ColorOf converts c to a 24-bit colour.
// Transparent colours map to black.
func ColorOf(c color.Color) Color {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return Black
	}
	r, g, b := cc.RGB255()
	return Color{R: r, G: g, B: b}
}

// RGBA implements the color.Color interface.  Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the colour in "#rrggbb" notation.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

func (c Color) String() string {
	return c.Hex()
}

// MarshalJSON encodes c as a "#rrggbb" string.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

// UnmarshalJSON accepts either a "#rrggbb" string or an array of three
// channel values.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseColor(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var rgb [3]uint8
	if err := json.Unmarshal(data, &rgb); err != nil {
		return fmt.Errorf("colour must be \"#rrggbb\" or [r, g, b]: %w", err)
	}
	*c = Color{R: rgb[0], G: rgb[1], B: rgb[2]}
	return nil
}
