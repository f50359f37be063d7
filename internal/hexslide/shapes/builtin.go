package shapes

import (
	"fmt"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

func init() {
	Register("rect", "Width x Height parallelogram of hex cells", rect)
	Register("hexagon", "Regular hexagon of the given radius", hexagon)
	Register("ring", "Hexagon with the centre cells removed", ring)
	Register("diamond", "Hexagon clipped to Height rows around its middle", diamond)
}

func rect(p Params) (core.Shape, error) {
	if p.Width < 1 || p.Height < 1 {
		return core.Shape{}, fmt.Errorf("size %dx%d must be positive", p.Width, p.Height)
	}
	return core.NewShape("rect", p.Width, p.Height), nil
}

func hexagon(p Params) (core.Shape, error) {
	if p.Radius < 1 {
		return core.Shape{}, fmt.Errorf("radius %d must be positive", p.Radius)
	}
	size := 2*p.Radius + 1
	s := core.NewShape("hexagon", size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			s.Set(core.C(x, y), hexDistance(x, y, p.Radius) <= p.Radius)
		}
	}
	return s, nil
}

// ring removes every cell closer than radius/2 to the centre.
func ring(p Params) (core.Shape, error) {
	if p.Radius < 2 {
		return core.Shape{}, fmt.Errorf("radius %d must be at least 2", p.Radius)
	}
	s, err := hexagon(p)
	if err != nil {
		return s, err
	}
	inner := p.Radius / 2
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if hexDistance(x, y, p.Radius) < inner {
				s.Set(core.C(x, y), false)
			}
		}
	}
	return s, nil
}

// diamond keeps the middle Height rows of a hexagon.
func diamond(p Params) (core.Shape, error) {
	s, err := hexagon(p)
	if err != nil {
		return s, err
	}
	if p.Height < 1 || p.Height > s.H {
		return core.Shape{}, fmt.Errorf("height %d must be in [1,%d]", p.Height, s.H)
	}
	top := (s.H - p.Height) / 2
	out := core.NewShape("diamond", s.W, p.Height)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < s.W; x++ {
			out.Set(core.C(x, y), s.Has(core.C(x, y+top)))
		}
	}
	return out, nil
}

// hexDistance returns the distance from (x, y) to the centre of a hexagon
// template of the given radius.
func hexDistance(x, y, radius int) int {
	return core.C(x, y).HexDistance(core.C(radius, radius))
}
