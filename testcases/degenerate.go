package testcases

import "seehuhn.de/go/trirender"

// A degenerate triangle contains every point of the line through its
// vertices, or every point of the plane if all three vertices coincide.
var degenerateCases = []TestCase{
	{
		Name:      "collinear",
		Width:     8,
		Height:    8,
		Triangles: []trirender.Triangle{tri(1, 1, 3, 3, 5, 5, red)},
		Painted: region(8, 8, func(x, y int) bool {
			return x == y
		}),
	},
	{
		Name:      "horizontal",
		Width:     8,
		Height:    4,
		Triangles: []trirender.Triangle{tri(1, 2, 6, 2, 3, 2, red)},
		Painted: region(8, 4, func(x, y int) bool {
			return y == 2
		}),
	},
	{
		Name:      "single_point",
		Width:     8,
		Height:    8,
		Triangles: []trirender.Triangle{tri(3, 4, 3, 4, 3, 4, red)},
		Painted: region(8, 8, func(x, y int) bool {
			return true
		}),
	},
	{
		// the segment is outside the canvas, the line is not
		Name:      "line_outside",
		Width:     6,
		Height:    6,
		Triangles: []trirender.Triangle{tri(10, 0, 12, 0, 20, 0, red)},
		Painted: region(6, 6, func(x, y int) bool {
			return y == 0
		}),
	},
}
