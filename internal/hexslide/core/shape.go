package core

import (
	"fmt"
	"strings"
)

// Shape is the boolean membership table a Grid is built from.
// Mask is stored in row-major order: index = y*W + x.
type Shape struct {
	Name string
	W    int
	H    int
	Mask []bool
}

// NewShape creates a shape with every cell of the W x H template valid.
func NewShape(name string, w, h int) Shape {
	mask := make([]bool, w*h)
	for i := range mask {
		mask[i] = true
	}
	return Shape{Name: name, W: w, H: h, Mask: mask}
}

// ShapeFromRows parses a shape from text rows where '#' (or 'x', 'o') marks
// a valid cell and any other rune marks a hole. Shorter rows are padded.
func ShapeFromRows(name string, rows []string) (Shape, error) {
	h := len(rows)
	if h == 0 {
		return Shape{}, fmt.Errorf("shape %q: no rows", name)
	}
	w := 0
	for _, r := range rows {
		if n := len([]rune(r)); n > w {
			w = n
		}
	}
	if w == 0 {
		return Shape{}, fmt.Errorf("shape %q: empty rows", name)
	}

	s := Shape{Name: name, W: w, H: h, Mask: make([]bool, w*h)}
	for y, r := range rows {
		for x, ch := range []rune(r) {
			switch ch {
			case '#', 'x', 'X', 'o', 'O':
				s.Mask[y*w+x] = true
			}
		}
	}
	return s, nil
}

// Rows renders the shape back to its text form.
func (s Shape) Rows() []string {
	rows := make([]string, s.H)
	for y := 0; y < s.H; y++ {
		var sb strings.Builder
		for x := 0; x < s.W; x++ {
			if s.Has(C(x, y)) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// Has reports whether the template marks c as a valid cell.
func (s Shape) Has(c Coord) bool {
	if c.X < 0 || c.X >= s.W || c.Y < 0 || c.Y >= s.H {
		return false
	}
	return s.Mask[c.Y*s.W+c.X]
}

// Set marks or clears a template cell. Out-of-range cells are ignored.
func (s Shape) Set(c Coord, valid bool) {
	if c.X < 0 || c.X >= s.W || c.Y < 0 || c.Y >= s.H {
		return
	}
	s.Mask[c.Y*s.W+c.X] = valid
}

// Count returns the number of valid cells in the template.
func (s Shape) Count() int {
	n := 0
	for _, v := range s.Mask {
		if v {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	mask := make([]bool, len(s.Mask))
	copy(mask, s.Mask)
	return Shape{Name: s.Name, W: s.W, H: s.H, Mask: mask}
}

// Equal returns true if two shapes have the same dimensions and mask.
func (s Shape) Equal(other Shape) bool {
	if s.W != other.W || s.H != other.H || len(s.Mask) != len(other.Mask) {
		return false
	}
	for i, v := range s.Mask {
		if v != other.Mask[i] {
			return false
		}
	}
	return true
}
