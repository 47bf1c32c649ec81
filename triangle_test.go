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
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/path"
)

// drawFull paints every pixel of f which is inside t, without restricting
// the scan to the bounding box.
func drawFull(t Triangle, f *Frame) {
	for y := range f.height {
		for x := range f.width {
			if t.IsInside(Point{X: x, Y: y}) {
				f.WritePixel(x, y, t.Color)
			}
		}
	}
}

func TestRightOfLine(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	cases := []struct {
		p    Point
		want bool
	}{
		// below the line is to the right in image space
		{Pt(5, 1), true},
		{Pt(5, -1), false},
		{Pt(20, 7), true},

		// points on the line and its extension
		{Pt(5, 0), true},
		{Pt(-3, 0), true},
	}
	for _, c := range cases {
		if got := rightOfLine(a, b, c.p); got != c.want {
			t.Errorf("rightOfLine(%s, %s, %s) = %t, want %t", a, b, c.p, got, c.want)
		}
		if c.p.Y != 0 {
			if got := rightOfLine(b, a, c.p); got == c.want {
				t.Errorf("rightOfLine(%s, %s, %s) = %t, want %t", b, a, c.p, got, !c.want)
			}
		}
	}
}

func TestRightOfLineLarge(t *testing.T) {
	// 32-bit products would overflow for these coordinates
	a, b := Pt(0, 0), Pt(100_000, 0)
	if !rightOfLine(a, b, Pt(50_000, 100_000)) {
		t.Error("point below a long edge is not on the right")
	}
	if rightOfLine(a, b, Pt(50_000, -100_000)) {
		t.Error("point above a long edge is on the right")
	}

	// the coordinate differences do not fit into 32 bits
	a, b = Pt(-2_000_000_000, 0), Pt(2_000_000_000, 0)
	if !rightOfLine(a, b, Pt(0, 1)) || rightOfLine(a, b, Pt(0, -1)) {
		t.Error("wrong side for an edge longer than 2^31")
	}
	tri := NewTriangle(a, b, Pt(0, 2_000_000_000), Black)
	if got := tri.SignedArea2(); got != 8_000_000_000_000_000_000 {
		t.Errorf("SignedArea2 = %d", got)
	}
}

func TestIsInside(t *testing.T) {
	tri := NewTriangle(Pt(2, 2), Pt(6, 2), Pt(4, 6), RGB(255, 0, 0))

	inside := []Point{Pt(2, 2), Pt(6, 2), Pt(4, 6), Pt(4, 4), Pt(3, 3), Pt(5, 4)}
	for _, p := range inside {
		if !tri.IsInside(p) {
			t.Errorf("%s should be inside", p)
		}
	}
	outside := []Point{Pt(0, 0), Pt(2, 3), Pt(6, 3), Pt(4, 7), Pt(1, 2), Pt(7, 2)}
	for _, p := range outside {
		if tri.IsInside(p) {
			t.Errorf("%s should be outside", p)
		}
	}
}

func TestCounterClockwiseIsEmpty(t *testing.T) {
	cw := NewTriangle(Pt(2, 2), Pt(6, 2), Pt(4, 6), RGB(255, 0, 0))
	ccw := NewTriangle(cw.A, cw.C, cw.B, cw.Color)

	f := NewFrame(8, 8)
	ccw.Draw(f)
	if n := f.Count(Black); n != 64 {
		t.Errorf("counter-clockwise triangle painted %d pixels", 64-n)
	}
	drawFull(ccw, f)
	if n := f.Count(Black); n != 64 {
		t.Errorf("full scan of counter-clockwise triangle painted %d pixels", 64-n)
	}
}

func TestOrientation(t *testing.T) {
	cw := NewTriangle(Pt(2, 2), Pt(6, 2), Pt(4, 6), RGB(0, 0, 255))
	ccw := NewTriangle(cw.A, cw.C, cw.B, cw.Color)
	flat := NewTriangle(Pt(1, 1), Pt(2, 2), Pt(3, 3), cw.Color)

	if got := cw.SignedArea2(); got != 16 {
		t.Errorf("SignedArea2 = %d, want 16", got)
	}
	if got := ccw.SignedArea2(); got != -16 {
		t.Errorf("SignedArea2 = %d, want -16", got)
	}
	if !cw.Clockwise() || ccw.Clockwise() || flat.Clockwise() {
		t.Error("wrong result from Clockwise")
	}
	if cw.Oriented() != cw {
		t.Error("Oriented changed a clockwise triangle")
	}
	if ccw.Oriented() != cw {
		t.Errorf("Oriented() = %v, want %v", ccw.Oriented(), cw)
	}
	if flat.Oriented() != flat {
		t.Error("Oriented changed a degenerate triangle")
	}

	f1 := NewFrame(8, 8)
	cw.Draw(f1)
	f2 := NewFrame(8, 8)
	ccw.Oriented().Draw(f2)
	for y := range 8 {
		for x := range 8 {
			if f1.Pixel(x, y) != f2.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) differs after reorienting", x, y)
			}
		}
	}
}

// TestDrawMatchesFullScan checks that Draw paints exactly the pixels for
// which IsInside holds.
func TestDrawMatchesFullScan(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const w, h = 40, 30

	for i := range 200 {
		tri := Triangle{
			A:     Pt(rng.IntN(60)-10, rng.IntN(50)-10),
			B:     Pt(rng.IntN(60)-10, rng.IntN(50)-10),
			C:     Pt(rng.IntN(60)-10, rng.IntN(50)-10),
			Color: RGB(uint8(i), 200, 100),
		}
		tri = tri.Oriented()

		got := NewFrame(w, h)
		tri.Draw(got)
		want := NewFrame(w, h)
		drawFull(tri, want)

		for j := range got.pix {
			if got.pix[j] != want.pix[j] {
				t.Fatalf("%s: pixel (%d,%d) differs", tri, j%w, j/w)
			}
		}
	}
}

func TestDegenerate(t *testing.T) {
	col := RGB(9, 9, 9)
	cases := []struct {
		tri  Triangle
		want int
	}{
		{NewTriangle(Pt(1, 1), Pt(3, 3), Pt(5, 5), col), 8},  // the diagonal x == y
		{NewTriangle(Pt(1, 1), Pt(1, 1), Pt(5, 3), col), 4},  // (1,1), (3,2), (5,3), (7,4)
		{NewTriangle(Pt(4, 4), Pt(4, 4), Pt(4, 4), col), 64}, // every point
		{NewTriangle(Pt(0, 7), Pt(7, 7), Pt(3, 7), col), 8},  // row 7
		{NewTriangle(Pt(20, 20), Pt(30, 30), Pt(40, 40), col), 8},
	}
	for _, c := range cases {
		f := NewFrame(8, 8)
		c.tri.Draw(f)
		if got := f.Count(col); got != c.want {
			t.Errorf("%s: painted %d pixels, want %d", c.tri, got, c.want)
		}

		want := NewFrame(8, 8)
		drawFull(c.tri, want)
		for j := range f.pix {
			if f.pix[j] != want.pix[j] {
				t.Errorf("%s: pixel (%d,%d) differs from full scan", c.tri, j%8, j/8)
				break
			}
		}
	}
}

func TestBounds(t *testing.T) {
	tri := NewTriangle(Pt(5, -2), Pt(9, 4), Pt(-1, 3), Black)
	b := tri.Bounds()
	if b.Min.X != -1 || b.Min.Y != -2 || b.Max.X != 10 || b.Max.Y != 5 {
		t.Errorf("Bounds() = %v", b)
	}
}

func TestPath(t *testing.T) {
	tri := NewTriangle(Pt(2, 2), Pt(8, 2), Pt(5, 8), Black)

	var cmds []path.Command
	var xs, ys []float64
	for cmd, pts := range tri.Path().Iter() {
		cmds = append(cmds, cmd)
		for _, p := range pts {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}

	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if len(cmds) != len(wantCmds) {
		t.Fatalf("got %d path commands, want %d", len(cmds), len(wantCmds))
	}
	for i := range cmds {
		if cmds[i] != wantCmds[i] {
			t.Errorf("command %d: got %v, want %v", i, cmds[i], wantCmds[i])
		}
	}

	wantX := []float64{2, 8, 5}
	wantY := []float64{2, 2, 8}
	for i := range wantX {
		if xs[i] != wantX[i] || ys[i] != wantY[i] {
			t.Errorf("vertex %d: got (%g,%g), want (%g,%g)", i, xs[i], ys[i], wantX[i], wantY[i])
		}
	}
}
