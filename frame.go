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
	"image"
	"image/color"
)

// Frame is an in-memory grid of 24-bit pixels.
// Pixels are stored in row-major order, starting with the top row.
//
// A Frame is not safe for concurrent use.
type Frame struct {
	width, height int
	pix           []Color // pix[y*width+x] is the colour at (x, y)
}

// NewFrame returns a black frame of the given size.
// NewFrame panics if width or height is negative.
func NewFrame(width, height int) *Frame {
	if width < 0 || height < 0 {
		panic("trirender: negative frame size")
	}
	return &Frame{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.height }

// Size returns the frame dimensions.
func (f *Frame) Size() (width, height int) {
	return f.width, f.height
}

func (f *Frame) contains(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// WritePixel sets the colour of the pixel at (x, y).
// Writes outside the frame are ignored.
func (f *Frame) WritePixel(x, y int, c Color) {
	if !f.contains(x, y) {
		return
	}
	f.pix[y*f.width+x] = c
}

// Pixel returns the colour at (x, y), or black outside the frame.
func (f *Frame) Pixel(x, y int) Color {
	if !f.contains(x, y) {
		return Black
	}
	return f.pix[y*f.width+x]
}

// RGB returns the channel values at (x, y).
func (f *Frame) RGB(x, y int) (r, g, b uint8) {
	c := f.Pixel(x, y)
	return c.R, c.G, c.B
}

// Model converts colours to the Color type.
var Model color.Model = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	return ColorOf(c)
})

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return Model
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	return f.Pixel(x, y)
}

// Count returns the number of pixels with colour c.
func (f *Frame) Count(c Color) int {
	n := 0
	for _, p := range f.pix {
		if p == c {
			n++
		}
	}
	return n
}
