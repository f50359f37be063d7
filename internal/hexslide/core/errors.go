package core

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid is returned when the shape has no valid cells.
	ErrEmptyGrid = errors.New("grid has no valid cells")

	// ErrTooManyPieces is returned when the difficulty asks for more pieces
	// than the grid has cells.
	ErrTooManyPieces = errors.New("piece count exceeds available cells")

	// ErrInvalidDifficulty is returned for out-of-range difficulty values.
	ErrInvalidDifficulty = errors.New("invalid difficulty parameters")

	// ErrGenerationExhausted is returned when every build attempt, fallback
	// included, failed to produce a valid level.
	ErrGenerationExhausted = errors.New("level generation exhausted")
)

// TemplateError reports a caller bug in the generation request.
// It is never retried.
type TemplateError struct {
	Err    error
	Detail string
}

func (e *TemplateError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("template error: %v", e.Err)
	}
	return fmt.Sprintf("template error: %v: %s", e.Err, e.Detail)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// ExhaustedError carries the attempt counts of a failed generation.
type ExhaustedError struct {
	Attempts int
	Fallback bool  // Whether the fallback builder was tried
	Last     error // Reason the last attempt was rejected
}

func (e *ExhaustedError) Error() string {
	msg := fmt.Sprintf("%v after %d attempts", ErrGenerationExhausted, e.Attempts)
	if e.Fallback {
		msg += " and fallback"
	}
	if e.Last != nil {
		msg += ": " + e.Last.Error()
	}
	return msg
}

func (e *ExhaustedError) Unwrap() error {
	return ErrGenerationExhausted
}
