package testcases

import "seehuhn.de/go/trirender"

var clipCases = []TestCase{
	{
		// inside: x >= -5, y >= -5, x+y <= 15
		Name:      "overhang",
		Width:     10,
		Height:    10,
		Triangles: []trirender.Triangle{tri(-5, -5, 20, -5, -5, 20, green)},
		Painted: region(10, 10, func(x, y int) bool {
			return x+y <= 15
		}),
	},
	{
		Name:      "outside",
		Width:     10,
		Height:    10,
		Triangles: []trirender.Triangle{tri(20, 20, 30, 20, 25, 30, green)},
		Painted:   []trirender.Point{},
	},
	{
		Name:      "cover",
		Width:     5,
		Height:    4,
		Triangles: []trirender.Triangle{tri(-10, -10, 100, -10, -10, 100, blue)},
		Painted: region(5, 4, func(x, y int) bool {
			return true
		}),
	},
	{
		Name:      "empty_canvas",
		Width:     0,
		Height:    0,
		Triangles: []trirender.Triangle{tri(0, 0, 5, 0, 0, 5, blue)},
		Painted:   []trirender.Point{},
	},
}
