package testcases

import "seehuhn.de/go/trirender"

var windingCases = []TestCase{
	{
		// the vertices of fill/small_triangle in reverse order
		Name:      "counter_clockwise",
		Width:     8,
		Height:    8,
		Triangles: []trirender.Triangle{tri(2, 2, 4, 6, 6, 2, red)},
		Painted:   []trirender.Point{},
	},
	{
		Name:       "counter_clockwise_oriented",
		Width:      8,
		Height:     8,
		Triangles:  []trirender.Triangle{tri(2, 2, 4, 6, 6, 2, red)},
		AutoOrient: true,
		Painted: region(8, 8, func(x, y int) bool {
			return y >= 2 && 2*x+y <= 14 && 2*x-y >= 2
		}),
	},
	{
		Name:      "rotated_start",
		Width:     8,
		Height:    8,
		Triangles: []trirender.Triangle{tri(4, 6, 2, 2, 6, 2, red)},
		Painted: region(8, 8, func(x, y int) bool {
			return y >= 2 && 2*x+y <= 14 && 2*x-y >= 2
		}),
	},
}
