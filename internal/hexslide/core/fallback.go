package core

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// BuildFallback places pieces along non-interfering straight paths. Each
// piece's slide path is reserved so no later piece can cross it. The
// solution triggers pieces in reverse placement order: a piece's blocker is
// always a seed or an earlier-placed piece, and both are still standing
// when it moves.
//
// On grids too small for the request it places fewer pieces; it never fails
// because of grid size. The result is still validated as a sanity check.
func BuildFallback(g *Grid, d Difficulty, colors int, rng *SimpleRNG) (Build, error) {
	colors = max(colors, 1)
	board := NewBoard()

	seeds := placeSeeds(g, board, seedCount(d.PieceCount, rng), colors, d.SpecialPieceRate, rng)

	reserved := mapset.New[Coord]()
	for _, c := range board.Positions() {
		reserved.Put(c)
	}

	free := g.Len() - board.Len()
	budget := min(d.PieceCount-seeds, free/3)

	var moves []Move
	for tries := 0; len(moves) < budget && tries < 2*g.Len(); tries++ {
		open := openCells(g, board, reserved)
		if len(open) == 0 {
			break
		}
		c := open[rng.Intn(len(open))]

		dirs := safeDirs(g, board, reserved, c)
		if len(dirs) == 0 {
			// Nothing can leave from here; keep later pieces off it too.
			reserved.Put(c)
			continue
		}
		dir := dirs[rng.Intn(len(dirs))]

		for _, step := range SlidePath(g, board, c, dir) {
			reserved.Put(step)
		}
		reserved.Put(c)
		board.Put(Piece{
			Pos:     c,
			Dir:     dir,
			Color:   rng.Intn(colors),
			Special: rng.Chance(d.SpecialPieceRate),
		})
		moves = append(moves, Move{Pos: c, Dir: dir})
	}
	slices.Reverse(moves)

	if dl, found := FindDeadlock(g, board); found {
		return Build{}, fmt.Errorf("fallback deadlocked at %s/%s", dl.A.Pos, dl.B.Pos)
	}
	if err := ValidateSolution(g, board, moves); err != nil {
		return Build{}, fmt.Errorf("%w: %w", errValidationMismatch, err)
	}

	return Build{
		Start:    board,
		Solution: moves,
		Seeds:    seeds,
		Strategy: StrategyFallback,
	}, nil
}

// safeDirs returns the directions a piece at c may face without crossing a
// reserved path, without a zero-distance move, and without facing an
// opposing piece.
func safeDirs(g *Grid, b *Board, reserved mapset.Set[Coord], c Coord) []Dir {
	var out []Dir
	for _, d := range AllDirs() {
		res := ResolveSlide(g, b, c, d)
		if !res.Moved(c) {
			continue
		}
		if !res.Exited && opposesAlong(g, b, c, d) {
			continue
		}
		crosses := false
		for _, step := range SlidePath(g, b, c, d) {
			if reserved.Has(step) {
				crosses = true
				break
			}
		}
		if !crosses {
			out = append(out, d)
		}
	}
	return out
}

// openCells returns free, unreserved cells in row-major order.
func openCells(g *Grid, b *Board, reserved mapset.Set[Coord]) []Coord {
	var out []Coord
	for _, c := range g.Cells() {
		if !b.Occupied(c) && !reserved.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
