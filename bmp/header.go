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

package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Layout constants for uncompressed 24-bit bitmaps.
const (
	HeaderSize     = 54 // file header (14 bytes) plus BITMAPINFOHEADER (40 bytes)
	infoHeaderSize = 40
	bitsPerPixel   = 24
	bytesPerPixel  = bitsPerPixel / 8

	// DefaultResolution is written to both resolution fields.
	// 11811 pixels per metre is about 300 DPI.
	DefaultResolution = 0x2E23
)

var signature = [2]byte{'B', 'M'}

// ErrFormat is returned by ReadHeader for data which is not an
// uncompressed 24-bit bitmap.
var ErrFormat = errors.New("bmp: unsupported format")

// Header is the 54 byte prefix of a bitmap file.
// The fields are stored in file order, little-endian.
type Header struct {
	Signature  [2]byte // "BM"
	FileSize   uint32  // total length of the file in bytes
	Reserved   uint32
	DataOffset uint32 // start of the pixel data

	InfoSize        uint32 // size of the info header, 40
	Width           int32
	Height          int32 // positive: rows are stored bottom-up
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	ImageSize       uint32 // may be 0 for uncompressed images
	XPixelsPerMeter int32
	YPixelsPerMeter int32
	ColorsUsed      uint32 // 0 means all
	ColorsImportant uint32 // 0 means all
}

// NewHeader returns the header for a width×height image with 24 bits per
// pixel and no compression.
func NewHeader(width, height int) Header {
	return Header{
		Signature:       signature,
		FileSize:        uint32(FileSize(width, height)),
		DataOffset:      HeaderSize,
		InfoSize:        infoHeaderSize,
		Width:           int32(width),
		Height:          int32(height),
		Planes:          1,
		BitCount:        bitsPerPixel,
		XPixelsPerMeter: DefaultResolution,
		YPixelsPerMeter: DefaultResolution,
	}
}

// AppendHeader appends the 54 byte header for a width×height image to dst.
func AppendHeader(dst []byte, width, height int) []byte {
	h := NewHeader(width, height)
	out, err := binary.Append(dst, binary.LittleEndian, &h)
	if err != nil {
		// Header only contains fixed-size fields.
		panic(err)
	}
	return out
}

// ReadHeader reads and checks the header at the start of r.
// Only headers describing uncompressed 24-bit images are accepted.
func ReadHeader(r io.Reader) (*Header, error) {
	h := &Header{}
	if err := binary.Read(r, binary.LittleEndian, h); err != nil {
		return nil, fmt.Errorf("bmp: reading header: %w", err)
	}

	switch {
	case h.Signature != signature:
		return nil, fmt.Errorf("%w: signature %q", ErrFormat, h.Signature[:])
	case h.InfoSize != infoHeaderSize:
		return nil, fmt.Errorf("%w: info header size %d", ErrFormat, h.InfoSize)
	case h.BitCount != bitsPerPixel:
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrFormat, h.BitCount)
	case h.Compression != 0:
		return nil, fmt.Errorf("%w: compression method %d", ErrFormat, h.Compression)
	case h.DataOffset < HeaderSize:
		return nil, fmt.Errorf("%w: pixel data offset %d", ErrFormat, h.DataOffset)
	}
	return h, nil
}

// RowPadding returns the number of zero bytes after each row of pixels.
//
// Rows are padded to a multiple of four bytes.  With three bytes per pixel
// the row length is 3*width ≡ -width (mod 4), so the padding is width%4.
func RowPadding(width int) int {
	return width % 4
}

// RowSize returns the number of bytes used for one row, including padding.
func RowSize(width int) int {
	return width*bytesPerPixel + RowPadding(width)
}

// FileSize returns the length of the encoded file, including header and
// row padding.
func FileSize(width, height int) int {
	return HeaderSize + height*RowSize(width)
}
