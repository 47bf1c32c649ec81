package testcases

import "seehuhn.de/go/trirender"

var overlapCases = []TestCase{
	{
		// the triangles share the edge from (6,0) to (0,6)
		Name:   "shared_edge",
		Width:  8,
		Height: 8,
		Triangles: []trirender.Triangle{
			tri(0, 0, 6, 0, 0, 6, red),
			tri(6, 0, 6, 6, 0, 6, green),
		},
		Painted: region(8, 8, func(x, y int) bool {
			return x <= 6 && y <= 6
		}),
		Samples: map[trirender.Point]trirender.Color{
			pt(0, 0): red,
			pt(2, 2): red,
			pt(3, 3): green,
			pt(6, 0): green,
			pt(0, 6): green,
			pt(5, 5): green,
			pt(7, 7): black,
		},
	},
	{
		Name:   "painter_order",
		Width:  10,
		Height: 10,
		Triangles: []trirender.Triangle{
			tri(0, 0, 9, 0, 0, 9, red),
			tri(1, 1, 4, 1, 1, 4, blue),
		},
		Painted: region(10, 10, func(x, y int) bool {
			return x+y <= 9
		}),
		Samples: map[trirender.Point]trirender.Color{
			pt(0, 0): red,
			pt(1, 1): blue,
			pt(2, 2): blue,
			pt(3, 3): red,
			pt(4, 1): blue,
			pt(5, 1): red,
		},
	},
}
