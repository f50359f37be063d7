package core

// Grid is the immutable set of valid cells a puzzle is played on.
// Built once from a Shape; membership is a map lookup.
type Grid struct {
	shape Shape
	valid map[Coord]struct{}
	cells []Coord // row-major, for deterministic iteration
}

// NewGrid builds a grid from a shape template.
func NewGrid(s Shape) *Grid {
	g := &Grid{
		shape: s.Clone(),
		valid: make(map[Coord]struct{}, len(s.Mask)),
		cells: make([]Coord, 0, len(s.Mask)),
	}
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			c := C(x, y)
			if s.Has(c) {
				g.valid[c] = struct{}{}
				g.cells = append(g.cells, c)
			}
		}
	}
	return g
}

// IsValid returns true if c is a member of the grid.
func (g *Grid) IsValid(c Coord) bool {
	_, ok := g.valid[c]
	return ok
}

// Neighbor returns the cell one step from c in direction d.
// Validity is not checked; use IsValid.
func (g *Grid) Neighbor(c Coord, d Dir) Coord {
	return c.Step(d)
}

// Neighbors returns the valid neighbours of c in direction table order.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 6)
	for _, d := range AllDirs() {
		if n := c.Step(d); g.IsValid(n) {
			out = append(out, n)
		}
	}
	return out
}

// Cells returns all valid cells in row-major order.
// The returned slice must not be modified.
func (g *Grid) Cells() []Coord {
	return g.cells
}

// Len returns the number of valid cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Shape returns a copy of the template the grid was built from.
func (g *Grid) Shape() Shape {
	return g.shape.Clone()
}
