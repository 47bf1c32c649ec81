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
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#ff0000", RGB(255, 0, 0)},
		{"#00ff7f", RGB(0, 255, 127)},
		{"#000000", Black},
		{"#f0c", RGB(255, 0, 204)},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %v, want %v", c.in, got, c.want)
		}
	}

	if _, err := ParseColor("red"); err == nil {
		t.Error("invalid colour accepted")
	}
}

func TestColorHex(t *testing.T) {
	for _, c := range []Color{Black, RGB(255, 255, 0), RGB(1, 2, 3), RGB(254, 128, 77)} {
		parsed, err := ParseColor(c.Hex())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != c {
			t.Errorf("%v: %q parses as %v", c, c.Hex(), parsed)
		}
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := RGB(255, 0, 128).RGBA()
	if r != 0xffff || g != 0 || b != 0x8080 || a != 0xffff {
		t.Errorf("RGBA() = %#x %#x %#x %#x", r, g, b, a)
	}

	c := RGB(12, 34, 56)
	if got := ColorOf(c); got != c {
		t.Errorf("ColorOf(%v) = %v", c, got)
	}
	if got := ColorOf(color.Gray{Y: 200}); got != RGB(200, 200, 200) {
		t.Errorf("ColorOf(gray) = %v", got)
	}
	if got := ColorOf(color.Transparent); got != Black {
		t.Errorf("ColorOf(transparent) = %v", got)
	}
}

func TestColorJSON(t *testing.T) {
	data, err := json.Marshal(RGB(255, 0, 16))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"#ff0010"` {
		t.Errorf("got %s", data)
	}

	var c Color
	if err := json.Unmarshal([]byte(`[1, 2, 3]`), &c); err != nil {
		t.Fatal(err)
	}
	if c != RGB(1, 2, 3) {
		t.Errorf("got %v", c)
	}
	if err := json.Unmarshal([]byte(`"#0a0b0c"`), &c); err != nil {
		t.Fatal(err)
	}
	if c != RGB(10, 11, 12) {
		t.Errorf("got %v", c)
	}

	for _, bad := range []string{`"#zzzzzz"`, `[1, 2, 300]`, `17`} {
		if err := json.Unmarshal([]byte(bad), &c); err == nil {
			t.Errorf("%s accepted", bad)
		}
	}
}
