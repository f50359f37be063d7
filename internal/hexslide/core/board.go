package core

import "sort"

// Piece is a directional block on the board.
type Piece struct {
	Pos     Coord
	Dir     Dir
	Color   int  // Index into the level palette
	Special bool // Highlight piece; does not change the slide rule
}

// Move triggers the piece at Pos. Dir is the direction the piece faces at
// that moment, captured when the move was recorded.
type Move struct {
	Pos Coord
	Dir Dir
}

// Board maps occupied cells to the piece standing on them.
// No two pieces share a cell because the map is keyed by position.
type Board struct {
	pieces map[Coord]Piece
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{pieces: make(map[Coord]Piece)}
}

// BoardFromPieces creates a board holding the given pieces.
// Later pieces overwrite earlier ones at the same position.
func BoardFromPieces(pieces []Piece) *Board {
	b := &Board{pieces: make(map[Coord]Piece, len(pieces))}
	for _, p := range pieces {
		b.pieces[p.Pos] = p
	}
	return b
}

// Get returns the piece at c and whether one exists.
func (b *Board) Get(c Coord) (Piece, bool) {
	p, ok := b.pieces[c]
	return p, ok
}

// Occupied returns true if a piece stands on c.
func (b *Board) Occupied(c Coord) bool {
	_, ok := b.pieces[c]
	return ok
}

// Put places p at p.Pos, replacing any piece already there.
func (b *Board) Put(p Piece) {
	b.pieces[p.Pos] = p
}

// Remove deletes the piece at c, if any.
func (b *Board) Remove(c Coord) {
	delete(b.pieces, c)
}

// Relocate moves the piece at from to the cell to, keeping its other fields.
// Returns false if no piece stands on from or to is occupied.
func (b *Board) Relocate(from, to Coord) bool {
	p, ok := b.pieces[from]
	if !ok {
		return false
	}
	if from == to {
		return true
	}
	if _, taken := b.pieces[to]; taken {
		return false
	}
	delete(b.pieces, from)
	p.Pos = to
	b.pieces[to] = p
	return true
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int {
	return len(b.pieces)
}

// Clone returns a deep copy of the board.
// Pieces are values, so copying the map is enough.
func (b *Board) Clone() *Board {
	pieces := make(map[Coord]Piece, len(b.pieces))
	for c, p := range b.pieces {
		pieces[c] = p
	}
	return &Board{pieces: pieces}
}

// Pieces returns all pieces sorted row-major by position.
func (b *Board) Pieces() []Piece {
	out := make([]Piece, 0, len(b.pieces))
	for _, p := range b.pieces {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Pos.Less(out[j].Pos)
	})
	return out
}

// Positions returns occupied cells sorted row-major.
func (b *Board) Positions() []Coord {
	out := make([]Coord, 0, len(b.pieces))
	for c := range b.pieces {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Less(out[j])
	})
	return out
}

// Equal returns true if both boards hold identical pieces.
func (b *Board) Equal(other *Board) bool {
	if len(b.pieces) != len(other.pieces) {
		return false
	}
	for c, p := range b.pieces {
		if q, ok := other.pieces[c]; !ok || p != q {
			return false
		}
	}
	return true
}
