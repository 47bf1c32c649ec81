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

// Package bmp writes images as uncompressed 24-bit Windows bitmap files.
package bmp

import (
	"errors"
	"io"
	"math"
)

// Image is a source of pixels for the encoder.
type Image interface {
	// Size returns the image dimensions in pixels.
	Size() (width, height int)

	// RGB returns the colour of the pixel at (x, y), where
	// 0 <= x < width and 0 <= y < height.  Row 0 is the top row.
	RGB(x, y int) (r, g, b uint8)
}

// ErrTooLarge is returned when the encoded file would not fit the 32-bit
// size fields of the header.
var ErrTooLarge = errors.New("bmp: image too large")

// RowOrder selects the order in which image rows are written.
type RowOrder int

const (
	// TopRowFirst writes row 0 first.  Readers treat a positive height
	// as bottom-up, so they display such files upside down.
	TopRowFirst RowOrder = iota

	// BottomUp writes the last image row first, so that readers show
	// the image upright.
	BottomUp
)

func (o RowOrder) String() string {
	switch o {
	case TopRowFirst:
		return "top-row-first"
	case BottomUp:
		return "bottom-up"
	default:
		return "RowOrder(?)"
	}
}

// Encoder holds options for writing bitmap files.
// The zero value writes row 0 first.
type Encoder struct {
	Order RowOrder
}

// Encode writes img to w using the default options.
func Encode(w io.Writer, img Image) error {
	var e Encoder
	return e.Encode(w, img)
}

// Marshal returns the encoding of img using the default options.
func Marshal(img Image) ([]byte, error) {
	var e Encoder
	return e.Marshal(img)
}

// Encode writes the complete file for img to w, using a single call to
// w.Write.
func (e *Encoder) Encode(w io.Writer, img Image) error {
	data, err := e.Marshal(img)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Marshal returns the complete file for img: header, followed by the rows
// of pixels in blue, green, red order, each padded to a multiple of four
// bytes.
func (e *Encoder) Marshal(img Image) ([]byte, error) {
	width, height := img.Size()
	if width < 0 || height < 0 || width > math.MaxInt32 || height > math.MaxInt32 {
		return nil, ErrTooLarge
	}
	if int64(RowSize(width))*int64(height) > math.MaxUint32-HeaderSize {
		return nil, ErrTooLarge
	}

	buf := make([]byte, 0, FileSize(width, height))
	buf = AppendHeader(buf, width, height)

	pad := RowPadding(width)
	for i := range height {
		y := i
		if e.Order == BottomUp {
			y = height - 1 - i
		}
		for x := range width {
			r, g, b := img.RGB(x, y)
			buf = append(buf, b, g, r)
		}
		for range pad {
			buf = append(buf, 0)
		}
	}
	return buf, nil
}
