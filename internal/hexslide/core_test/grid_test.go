package core_test

import (
	"testing"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

func TestDirOppositeIsInvolution(t *testing.T) {
	for _, d := range core.AllDirs() {
		opp := d.Opposite()
		if opp == d {
			t.Errorf("%s: opposite equals itself", d)
		}
		if opp.Opposite() != d {
			t.Errorf("%s: opposite of opposite is %s", d, opp.Opposite())
		}

		dx, dy := d.Delta()
		ox, oy := opp.Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%s: deltas (%d,%d) and (%d,%d) do not cancel", d, dx, dy, ox, oy)
		}
	}
}

func TestDirDeltasAreDistinctUnitSteps(t *testing.T) {
	seen := make(map[core.Coord]core.Dir)
	origin := core.C(0, 0)
	for _, d := range core.AllDirs() {
		n := origin.Step(d)
		if prev, ok := seen[n]; ok {
			t.Errorf("%s and %s share delta %v", d, prev, n)
		}
		seen[n] = d
		if origin.HexDistance(n) != 1 {
			t.Errorf("%s: neighbour %v is %d steps away", d, n, origin.HexDistance(n))
		}
	}
}

func TestParseDir(t *testing.T) {
	testCases := []struct {
		in   string
		want core.Dir
		ok   bool
	}{
		{"E", core.DirEast, true},
		{"se", core.DirSouthEast, true},
		{"SouthWest", core.DirSouthWest, true},
		{"w", core.DirWest, true},
		{"NW", core.DirNorthWest, true},
		{"northeast", core.DirNorthEast, true},
		{"up", core.DirEast, false},
	}

	for _, tc := range testCases {
		got, ok := core.ParseDir(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseDir(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}

	for _, d := range core.AllDirs() {
		if got, ok := core.ParseDir(d.String()); !ok || got != d {
			t.Errorf("ParseDir(%q) did not round-trip", d.String())
		}
	}
}

func TestGridMembership(t *testing.T) {
	shape, err := core.ShapeFromRows("notch", []string{
		"###",
		"#.#",
	})
	if err != nil {
		t.Fatalf("ShapeFromRows failed: %v", err)
	}
	g := core.NewGrid(shape)

	if g.Len() != 5 {
		t.Errorf("expected 5 cells, got %d", g.Len())
	}

	testCases := []struct {
		coord    core.Coord
		expected bool
	}{
		{core.C(0, 0), true},
		{core.C(2, 1), true},
		{core.C(1, 1), false},
		{core.C(-1, 0), false},
		{core.C(3, 0), false},
		{core.C(0, 2), false},
	}
	for _, tc := range testCases {
		if got := g.IsValid(tc.coord); got != tc.expected {
			t.Errorf("IsValid(%v) = %v, want %v", tc.coord, got, tc.expected)
		}
	}
}

func TestGridNeighborHasNoBoundsCheck(t *testing.T) {
	g := rowGrid(3)
	n := g.Neighbor(core.C(2, 0), core.DirEast)
	if n != core.C(3, 0) {
		t.Errorf("expected (3,0), got %v", n)
	}
	if g.IsValid(n) {
		t.Error("(3,0) should not be valid")
	}
}

func TestGridCellsRowMajor(t *testing.T) {
	g := core.NewGrid(core.NewShape("rect", 3, 2))
	cells := g.Cells()
	if len(cells) != 6 {
		t.Fatalf("expected 6 cells, got %d", len(cells))
	}
	for i := 1; i < len(cells); i++ {
		if !cells[i-1].Less(cells[i]) {
			t.Errorf("cells out of order at %d: %v then %v", i, cells[i-1], cells[i])
		}
	}
}

func TestShapeRowsRoundTrip(t *testing.T) {
	rows := []string{".##", "###", "##."}
	s, err := core.ShapeFromRows("diamond", rows)
	if err != nil {
		t.Fatalf("ShapeFromRows failed: %v", err)
	}
	got := s.Rows()
	for i := range rows {
		if got[i] != rows[i] {
			t.Errorf("row %d: got %q, want %q", i, got[i], rows[i])
		}
	}
	if s.Count() != 7 {
		t.Errorf("expected 7 cells, got %d", s.Count())
	}
}

func TestShapeFromRowsRejectsEmpty(t *testing.T) {
	if _, err := core.ShapeFromRows("none", nil); err == nil {
		t.Error("expected error for no rows")
	}
	if _, err := core.ShapeFromRows("blank", []string{"", ""}); err == nil {
		t.Error("expected error for blank rows")
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := core.NewBoard()
	b.Put(core.Piece{Pos: core.C(0, 0), Dir: core.DirEast})

	clone := b.Clone()
	clone.Relocate(core.C(0, 0), core.C(1, 0))
	clone.Put(core.Piece{Pos: core.C(2, 0), Dir: core.DirWest})

	if !b.Occupied(core.C(0, 0)) || b.Len() != 1 {
		t.Error("original board changed after clone was modified")
	}
	if clone.Occupied(core.C(0, 0)) || !clone.Occupied(core.C(1, 0)) {
		t.Error("clone relocation did not apply")
	}
	p, _ := clone.Get(core.C(1, 0))
	if p.Pos != core.C(1, 0) {
		t.Errorf("relocated piece reports position %v", p.Pos)
	}
}

func TestBoardRelocateRefusesOccupiedTarget(t *testing.T) {
	b := core.BoardFromPieces([]core.Piece{
		{Pos: core.C(0, 0), Dir: core.DirEast},
		{Pos: core.C(1, 0), Dir: core.DirEast},
	})
	if b.Relocate(core.C(0, 0), core.C(1, 0)) {
		t.Error("relocate onto an occupied cell should fail")
	}
	if b.Relocate(core.C(5, 5), core.C(2, 0)) {
		t.Error("relocate of a missing piece should fail")
	}
	if b.Len() != 2 {
		t.Errorf("expected 2 pieces, got %d", b.Len())
	}
}
