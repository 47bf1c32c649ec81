package testcases

import "seehuhn.de/go/trirender"

var fillCases = []TestCase{
	{
		// inside: y >= 2, 2x+y <= 14, 2x-y >= 2
		Name:      "small_triangle",
		Width:     8,
		Height:    8,
		Triangles: []trirender.Triangle{tri(2, 2, 6, 2, 4, 6, red)},
		Painted: []trirender.Point{
			pt(2, 2), pt(3, 2), pt(4, 2), pt(5, 2), pt(6, 2),
			pt(3, 3), pt(4, 3), pt(5, 3),
			pt(3, 4), pt(4, 4), pt(5, 4),
			pt(4, 5),
			pt(4, 6),
		},
	},
	{
		Name:      "end_to_end",
		Width:     10,
		Height:    10,
		Triangles: []trirender.Triangle{tri(2, 2, 8, 2, 5, 8, red)},
		Samples: map[trirender.Point]trirender.Color{
			pt(5, 5): red,
			pt(0, 0): black,
			pt(2, 2): red,
			pt(8, 2): red,
			pt(5, 8): red,
			pt(9, 9): black,
		},
	},
	{
		// the default scene, scaled down by a factor of 10
		Name:      "yellow_triangle",
		Width:     100,
		Height:    100,
		Triangles: []trirender.Triangle{tri(20, 20, 80, 20, 50, 80, yellow)},
		Painted: region(100, 100, func(x, y int) bool {
			return y >= 20 && 2*x+y <= 180 && 2*x-y >= 20
		}),
	},
	{
		Name:      "right_angle",
		Width:     6,
		Height:    6,
		Triangles: []trirender.Triangle{tri(0, 0, 5, 0, 0, 5, blue)},
		Painted: region(6, 6, func(x, y int) bool {
			return x+y <= 5
		}),
	},
	{
		Name:      "odd_width",
		Width:     7,
		Height:    3,
		Triangles: []trirender.Triangle{tri(0, 0, 6, 0, 0, 6, green)},
		Painted: region(7, 3, func(x, y int) bool {
			return x+y <= 6
		}),
	},
}
