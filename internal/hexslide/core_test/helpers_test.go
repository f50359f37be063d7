package core_test

import (
	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

// rowGrid returns a 1-row grid of n cells: (0,0) .. (n-1,0).
func rowGrid(n int) *core.Grid {
	return core.NewGrid(core.NewShape("row", n, 1))
}

// hexagonShape returns a regular hexagon of the given radius.
func hexagonShape(radius int) core.Shape {
	size := 2*radius + 1
	s := core.NewShape("hexagon", size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			q, r := x-radius, y-radius
			if abs(q) > radius || abs(r) > radius || abs(q+r) > radius {
				s.Set(core.C(x, y), false)
			}
		}
	}
	return s
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func testPalette() []string {
	return []string{"#e06c75", "#98c379", "#61afef", "#e5c07b"}
}
