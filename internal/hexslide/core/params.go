package core

import "fmt"

// Difficulty configures a generation request. The engine never mutates it.
type Difficulty struct {
	TargetMoveCount     int     // Desired solution length
	PieceCount          int     // Total pieces to place, seeds included
	DirectionChangeRate float64 // Probability of forcing a new direction on fresh pieces (0-1)
	BottleneckCount     int     // Relocations to prefer behind other movable pieces
	SpecialPieceRate    float64 // Probability a piece is marked special (0-1)
	DifficultyTolerance float64 // Accepted shortfall of the solution length (0-1)
	RemovalFraction     float64 // Share of pieces the player must remove, in (0,1]
	MoveLimitMultiplier float64 // Move budget relative to the solution length, >= 1
}

// DefaultDifficulty returns sensible defaults for a medium board.
func DefaultDifficulty() Difficulty {
	return Difficulty{
		TargetMoveCount:     14,
		PieceCount:          12,
		DirectionChangeRate: 0.3,
		BottleneckCount:     2,
		SpecialPieceRate:    0.1,
		DifficultyTolerance: 0.4,
		RemovalFraction:     0.6,
		MoveLimitMultiplier: 1.5,
	}
}

// Validate checks that every parameter is within range.
func (d Difficulty) Validate() error {
	switch {
	case d.PieceCount < 1:
		return fmt.Errorf("%w: piece count %d < 1", ErrInvalidDifficulty, d.PieceCount)
	case d.TargetMoveCount < 1:
		return fmt.Errorf("%w: target move count %d < 1", ErrInvalidDifficulty, d.TargetMoveCount)
	case d.BottleneckCount < 0:
		return fmt.Errorf("%w: bottleneck count %d < 0", ErrInvalidDifficulty, d.BottleneckCount)
	case d.RemovalFraction <= 0 || d.RemovalFraction > 1:
		return fmt.Errorf("%w: removal fraction %.2f not in (0,1]", ErrInvalidDifficulty, d.RemovalFraction)
	case d.MoveLimitMultiplier < 1:
		return fmt.Errorf("%w: move limit multiplier %.2f < 1", ErrInvalidDifficulty, d.MoveLimitMultiplier)
	case !unit(d.DirectionChangeRate):
		return fmt.Errorf("%w: direction change rate %.2f not in [0,1]", ErrInvalidDifficulty, d.DirectionChangeRate)
	case !unit(d.SpecialPieceRate):
		return fmt.Errorf("%w: special piece rate %.2f not in [0,1]", ErrInvalidDifficulty, d.SpecialPieceRate)
	case !unit(d.DifficultyTolerance):
		return fmt.Errorf("%w: difficulty tolerance %.2f not in [0,1]", ErrInvalidDifficulty, d.DifficultyTolerance)
	}
	return nil
}

// MinSolutionLength is the shortest solution a backward build may return.
func (d Difficulty) MinSolutionLength() int {
	n := int(float64(d.TargetMoveCount) * (1 - d.DifficultyTolerance))
	if n < 1 {
		n = 1
	}
	return n
}

func unit(v float64) bool {
	return v >= 0 && v <= 1
}

// seedCount picks how many static pieces to place: between a quarter and a
// third of the piece budget, at least one.
func seedCount(pieces int, rng *SimpleRNG) int {
	if pieces <= 0 {
		return 0
	}
	lo := (pieces + 3) / 4
	hi := (pieces + 2) / 3
	if hi < lo {
		hi = lo
	}
	return lo + rng.Intn(hi-lo+1)
}
