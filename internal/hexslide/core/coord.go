package core

import "fmt"

// Coord identifies a hex cell.
// X is the template column, Y the template row. Neighbours follow axial
// addressing, so row Y is drawn shifted right by half a cell per row.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring coordinate in the given direction.
// No bounds check is performed.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Less orders coordinates row-major. Used to keep iteration deterministic.
func (c Coord) Less(other Coord) bool {
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	return c.X < other.X
}

// HexDistance returns the number of steps between two cells.
func (c Coord) HexDistance(other Coord) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	return (abs(dx) + abs(dy) + abs(dx+dy)) / 2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
