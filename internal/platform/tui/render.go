package tui

import (
	"strings"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

// BoardView describes what to draw.
type BoardView struct {
	Grid    *core.Grid
	Board   *core.Board
	Palette []string
	Focus   *core.Coord // Highlighted cell, if any
}

// RenderBoard draws a board with lipgloss styles. The layout matches
// core.RenderASCII: row y is shifted right by y columns, each cell is two
// columns wide, holes are blank.
func RenderBoard(v BoardView, theme Theme) string {
	shape := v.Grid.Shape()
	var sb strings.Builder
	for y := 0; y < shape.H; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Trailing holes are dropped so rows do not carry padding.
		last := shape.W - 1
		for last >= 0 && !v.Grid.IsValid(core.C(last, y)) {
			last--
		}
		if last >= 0 {
			sb.WriteString(strings.Repeat(" ", y))
		}
		for x := 0; x <= last; x++ {
			c := core.C(x, y)
			if x > 0 {
				sb.WriteRune(' ')
			}
			sb.WriteString(renderCell(v, c, theme))
		}
	}
	return sb.String()
}

func renderCell(v BoardView, c core.Coord, theme Theme) string {
	if !v.Grid.IsValid(c) {
		return " "
	}

	var cell string
	if p, ok := v.Board.Get(c); ok {
		cell = theme.pieceStyle(v.Palette, p.Color, p.Special).Render(string(p.Dir.Arrow()))
	} else {
		cell = theme.EmptyCell.Render(".")
	}

	if v.Focus != nil && *v.Focus == c {
		return theme.LastMove.Render(cell)
	}
	return cell
}
