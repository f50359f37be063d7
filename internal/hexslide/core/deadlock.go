package core

// Deadlock is a pair of pieces facing each other along one line.
// Neither can ever move: each slide is stopped by the other.
type Deadlock struct {
	A Piece
	B Piece
}

// HasDeadlock returns true if any two pieces block each other permanently.
func HasDeadlock(g *Grid, b *Board) bool {
	_, found := FindDeadlock(g, b)
	return found
}

// FindDeadlock returns the first mutually blocking pair, scanning pieces in
// row-major order.
//
// A piece blocked by a piece facing any other way is not stuck for good:
// the blocker can eventually leave. Only opposing pieces on the same line,
// adjacent or with empty cells between them, block each other forever.
func FindDeadlock(g *Grid, b *Board) (Deadlock, bool) {
	for _, p := range b.Pieces() {
		hit, ok := FirstHit(g, b, p.Pos, p.Dir)
		if !ok {
			continue
		}
		q, _ := b.Get(hit)
		if q.Dir == p.Dir.Opposite() {
			return Deadlock{A: p, B: q}, true
		}
	}
	return Deadlock{}, false
}

// opposesAlong returns true if the first piece hit walking from start in
// direction d faces back towards start.
func opposesAlong(g *Grid, b *Board, start Coord, d Dir) bool {
	hit, ok := FirstHit(g, b, start, d)
	if !ok {
		return false
	}
	q, _ := b.Get(hit)
	return q.Dir == d.Opposite()
}
