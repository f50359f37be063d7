package core

// SlideResult describes where a slide ends.
type SlideResult struct {
	// End is the last valid free cell reached. It equals the start cell for
	// a blocked zero-distance move, and for a piece standing on the edge
	// that exits immediately.
	End Coord
	// Exited is true when the next step would leave the grid; the piece is
	// removed rather than placed at End.
	Exited bool
}

// Moved reports whether the slide changes the board when started at from.
func (r SlideResult) Moved(from Coord) bool {
	return r.Exited || r.End != from
}

// ResolveSlide computes where a piece starting at start and moving in
// direction d ends up. The board is not modified.
func ResolveSlide(g *Grid, b *Board, start Coord, d Dir) SlideResult {
	cur := start
	for {
		next := g.Neighbor(cur, d)
		if !g.IsValid(next) {
			return SlideResult{End: cur, Exited: true}
		}
		if b.Occupied(next) {
			return SlideResult{End: cur, Exited: false}
		}
		cur = next
	}
}

// SlidePath returns the cells a piece passes through when sliding from
// start in direction d, excluding start. The last element is the cell it
// stops on, or the last cell before leaving the grid.
func SlidePath(g *Grid, b *Board, start Coord, d Dir) []Coord {
	var path []Coord
	cur := start
	for {
		next := g.Neighbor(cur, d)
		if !g.IsValid(next) || b.Occupied(next) {
			return path
		}
		path = append(path, next)
		cur = next
	}
}

// FirstHit walks from start in direction d and returns the first occupied
// cell, or false if the walk leaves the grid first.
func FirstHit(g *Grid, b *Board, start Coord, d Dir) (Coord, bool) {
	cur := start
	for {
		cur = g.Neighbor(cur, d)
		if !g.IsValid(cur) {
			return Coord{}, false
		}
		if b.Occupied(cur) {
			return cur, true
		}
	}
}
