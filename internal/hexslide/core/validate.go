package core

import "fmt"

// Validation error codes.
const (
	CodeNoPiece           = "NO_PIECE"
	CodeDirectionMismatch = "DIRECTION_MISMATCH"
	CodeZeroMove          = "ZERO_MOVE"
	CodeOffGrid           = "OFF_GRID"
	CodeDeadlock          = "DEADLOCK"
)

// ValidationError contains details about a rejected solution.
type ValidationError struct {
	Code    string
	Message string
	Step    int // Index of the offending move, -1 for board-level errors
}

func (e ValidationError) Error() string {
	if e.Step < 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] move %d: %s", e.Code, e.Step, e.Message)
}

// ReplayFrame is the board state after one move of a replay.
type ReplayFrame struct {
	Move    Move
	Result  SlideResult
	Board   *Board
	Removed int // Pieces removed so far
}

// ValidateSolution replays moves against a copy of start and returns nil if
// every move is legal. The start board is not modified.
func ValidateSolution(g *Grid, start *Board, moves []Move) error {
	_, err := Replay(g, start, moves)
	return err
}

// Valid is a convenience wrapper around ValidateSolution.
func Valid(g *Grid, start *Board, moves []Move) bool {
	return ValidateSolution(g, start, moves) == nil
}

// Replay applies moves in order to a clone of start and returns the board
// after each move. It stops at the first illegal move.
func Replay(g *Grid, start *Board, moves []Move) ([]ReplayFrame, error) {
	for _, p := range start.Pieces() {
		if !g.IsValid(p.Pos) {
			return nil, ValidationError{
				Code:    CodeOffGrid,
				Message: fmt.Sprintf("piece at %s is outside the grid", p.Pos),
				Step:    -1,
			}
		}
	}

	board := start.Clone()
	frames := make([]ReplayFrame, 0, len(moves))
	removed := 0

	for i, m := range moves {
		res, err := applyMove(g, board, m, i)
		if err != nil {
			return frames, err
		}
		if res.Exited {
			removed++
		}
		frames = append(frames, ReplayFrame{
			Move:    m,
			Result:  res,
			Board:   board.Clone(),
			Removed: removed,
		})
	}

	return frames, nil
}

// applyMove performs one forward move on b in place.
func applyMove(g *Grid, b *Board, m Move, step int) (SlideResult, error) {
	p, ok := b.Get(m.Pos)
	if !ok {
		return SlideResult{}, ValidationError{
			Code:    CodeNoPiece,
			Message: fmt.Sprintf("no piece at %s", m.Pos),
			Step:    step,
		}
	}
	if p.Dir != m.Dir {
		return SlideResult{}, ValidationError{
			Code:    CodeDirectionMismatch,
			Message: fmt.Sprintf("piece at %s faces %s, move expects %s", m.Pos, p.Dir, m.Dir),
			Step:    step,
		}
	}

	res := ResolveSlide(g, b, m.Pos, p.Dir)
	switch {
	case res.Exited:
		b.Remove(m.Pos)
	case res.End == m.Pos:
		return res, ValidationError{
			Code:    CodeZeroMove,
			Message: fmt.Sprintf("piece at %s is blocked", m.Pos),
			Step:    step,
		}
	default:
		b.Relocate(m.Pos, res.End)
	}
	return res, nil
}

// CountRemovals returns how many moves of a valid solution exit the grid.
func CountRemovals(g *Grid, start *Board, moves []Move) (int, error) {
	frames, err := Replay(g, start, moves)
	if err != nil {
		return 0, err
	}
	if len(frames) == 0 {
		return 0, nil
	}
	return frames[len(frames)-1].Removed, nil
}
