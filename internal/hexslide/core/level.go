package core

import "math"

// Strategy names the builder that produced a level.
type Strategy string

const (
	StrategyBackward Strategy = "backward"
	StrategyFallback Strategy = "fallback"
)

// Level is the exported puzzle record consumed by renderers and storage.
type Level struct {
	Number   int
	Seed     uint64
	Strategy Strategy

	Shape    Shape
	Palette  []string
	Pieces   []Piece // Start layout, row-major
	Solution []Move  // Recorded forward solution

	MoveLimit     int
	RemovalTarget int
	Removals      int // Pieces that exit during the recorded solution
}

// AssembleLevel packages a validated board into a Level.
//
//	MoveLimit     = ceil(len(solution) * MoveLimitMultiplier)
//	RemovalTarget = ceil(pieces * RemovalFraction)
func AssembleLevel(shape Shape, palette []string, board *Board, solution []Move, d Difficulty) Level {
	pal := make([]string, len(palette))
	copy(pal, palette)

	sol := make([]Move, len(solution))
	copy(sol, solution)

	pieces := board.Pieces()

	return Level{
		Shape:         shape.Clone(),
		Palette:       pal,
		Pieces:        pieces,
		Solution:      sol,
		MoveLimit:     int(math.Ceil(float64(len(sol)) * d.MoveLimitMultiplier)),
		RemovalTarget: int(math.Ceil(float64(len(pieces)) * d.RemovalFraction)),
	}
}

// Grid builds the grid for this level.
func (l Level) Grid() *Grid {
	return NewGrid(l.Shape)
}

// Board returns a fresh board holding the start layout.
func (l Level) Board() *Board {
	return BoardFromPieces(l.Pieces)
}

// Check verifies the level's structural invariants: every piece on the
// grid, no deadlock, and a replayable solution within the move limit.
func (l Level) Check() error {
	g := l.Grid()
	b := l.Board()

	if b.Len() != len(l.Pieces) {
		return ValidationError{Code: "DUPLICATE_CELL", Message: "two pieces share a cell", Step: -1}
	}
	for _, p := range l.Pieces {
		if !g.IsValid(p.Pos) {
			return ValidationError{Code: CodeOffGrid, Message: "piece at " + p.Pos.String() + " is off the grid", Step: -1}
		}
	}
	if dl, found := FindDeadlock(g, b); found {
		return ValidationError{
			Code:    CodeDeadlock,
			Message: "pieces at " + dl.A.Pos.String() + " and " + dl.B.Pos.String() + " block each other",
			Step:    -1,
		}
	}
	if err := ValidateSolution(g, b, l.Solution); err != nil {
		return err
	}
	if l.MoveLimit < len(l.Solution) {
		return ValidationError{Code: "MOVE_LIMIT", Message: "move limit below solution length", Step: -1}
	}
	if l.RemovalTarget > len(l.Pieces) {
		return ValidationError{Code: "REMOVAL_TARGET", Message: "removal target above piece count", Step: -1}
	}
	return nil
}
