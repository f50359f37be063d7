package core

import (
	"fmt"
	"strings"
)

// RenderASCII draws a board on its grid. Row y is indented by y cells so
// the axial neighbours line up as a hex lattice.
//
// Format:
//   - '.' empty cell, ' ' hole in the shape
//   - piece arrows: > E, \ SE, / SW, < W, ` NW, ^ NE
func RenderASCII(g *Grid, b *Board) string {
	shape := g.shape
	var sb strings.Builder
	for y := 0; y < shape.H; y++ {
		var row strings.Builder
		row.WriteString(strings.Repeat(" ", y))
		for x := 0; x < shape.W; x++ {
			c := C(x, y)
			switch {
			case !g.IsValid(c):
				row.WriteString("  ")
			case b.Occupied(c):
				p, _ := b.Get(c)
				row.WriteRune(p.Dir.Arrow())
				row.WriteByte(' ')
			default:
				row.WriteString(". ")
			}
		}
		sb.WriteString(strings.TrimRight(row.String(), " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderLevel draws a level with a one-line header.
func RenderLevel(l Level) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Level %d (%s) | Pieces: %d | Moves: %d/%d | Remove: %d\n",
		l.Number, l.Strategy, len(l.Pieces), len(l.Solution), l.MoveLimit, l.RemovalTarget))
	sb.WriteString(RenderASCII(l.Grid(), l.Board()))
	return sb.String()
}
