package core_test

import (
	"testing"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

func TestHasDeadlock(t *testing.T) {
	testCases := []struct {
		name   string
		pieces []core.Piece
		want   bool
	}{
		{
			name: "opposing with gap",
			pieces: []core.Piece{
				{Pos: core.C(0, 0), Dir: core.DirEast},
				{Pos: core.C(2, 0), Dir: core.DirWest},
			},
			want: true,
		},
		{
			name: "opposing adjacent",
			pieces: []core.Piece{
				{Pos: core.C(0, 0), Dir: core.DirEast},
				{Pos: core.C(1, 0), Dir: core.DirWest},
			},
			want: true,
		},
		{
			name: "same direction",
			pieces: []core.Piece{
				{Pos: core.C(0, 0), Dir: core.DirEast},
				{Pos: core.C(2, 0), Dir: core.DirEast},
			},
			want: false,
		},
		{
			name: "facing away",
			pieces: []core.Piece{
				{Pos: core.C(0, 0), Dir: core.DirWest},
				{Pos: core.C(2, 0), Dir: core.DirEast},
			},
			want: false,
		},
		{
			name: "opposition hidden behind a third piece",
			pieces: []core.Piece{
				{Pos: core.C(0, 0), Dir: core.DirEast},
				{Pos: core.C(1, 0), Dir: core.DirNorthEast},
				{Pos: core.C(2, 0), Dir: core.DirWest},
			},
			want: false,
		},
		{
			name:   "single piece",
			pieces: []core.Piece{{Pos: core.C(1, 0), Dir: core.DirWest}},
			want:   false,
		},
	}

	g := rowGrid(3)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := core.BoardFromPieces(tc.pieces)
			if got := core.HasDeadlock(g, b); got != tc.want {
				t.Errorf("HasDeadlock = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFindDeadlockReportsPair(t *testing.T) {
	g := core.NewGrid(hexagonShape(2))
	b := core.BoardFromPieces([]core.Piece{
		{Pos: core.C(2, 0), Dir: core.DirSouthEast},
		{Pos: core.C(2, 3), Dir: core.DirNorthWest},
		{Pos: core.C(0, 4), Dir: core.DirEast},
	})

	dl, found := core.FindDeadlock(g, b)
	if !found {
		t.Fatal("expected a deadlock")
	}
	if dl.A.Pos != core.C(2, 0) || dl.B.Pos != core.C(2, 3) {
		t.Errorf("unexpected pair %v / %v", dl.A.Pos, dl.B.Pos)
	}
}
