package core

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Request describes one level to generate.
type Request struct {
	Shape      Shape
	Difficulty Difficulty
	Palette    []string // Opaque colour values, passed through
	Seed       uint64   // RNG seed; the same seed yields the same level
	Number     int      // Level number recorded on the result
}

// Generator turns requests into validated levels.
type Generator struct {
	logger      *log.Logger
	maxAttempts int
	fallback    bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for attempt diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithMaxAttempts sets how many backward builds are tried before falling back.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithFallback enables or disables the fallback builder.
func WithFallback(enabled bool) Option {
	return func(g *Generator) {
		g.fallback = enabled
	}
}

// NewGenerator creates a generator. By default it makes 12 backward
// attempts, then falls back, and logs nothing.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		logger:      log.New(io.Discard),
		maxAttempts: 12,
		fallback:    true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces one validated level or an error. It never returns a
// partial level: template errors are reported immediately, and exhausting
// every attempt yields an *ExhaustedError.
func (g *Generator) Generate(req Request) (Level, error) {
	grid := NewGrid(req.Shape)
	if err := checkRequest(grid, req); err != nil {
		return Level{}, err
	}

	logger := g.logger.With("level", req.Number, "seed", req.Seed)
	rng := NewRNG(req.Seed)
	colors := len(req.Palette)

	var last error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		build, err := BuildBackward(grid, req.Difficulty, colors, rng.Fork())
		if err != nil {
			last = err
			g.logAttempt(logger, attempt, err)
			continue
		}
		logger.Debug("backward build accepted", "attempt", attempt, "moves", len(build.Solution))
		return g.finish(grid, req, build)
	}

	if !g.fallback {
		return Level{}, &ExhaustedError{Attempts: g.maxAttempts, Last: last}
	}

	logger.Info("backward builder exhausted, using fallback", "attempts", g.maxAttempts)
	build, err := BuildFallback(grid, req.Difficulty, colors, rng.Fork())
	if err == nil && len(build.Solution) == 0 {
		err = errors.New("fallback placed no movable pieces")
	}
	if err != nil {
		g.logAttempt(logger, g.maxAttempts+1, err)
		return Level{}, &ExhaustedError{Attempts: g.maxAttempts, Fallback: true, Last: err}
	}
	return g.finish(grid, req, build)
}

// GenerateBatch generates count levels numbered start, start+1, ...
// Level k uses seed req.Seed+k; the levels share no state.
func (g *Generator) GenerateBatch(req Request, count, start int) ([]Level, error) {
	levels := make([]Level, 0, count)
	for i := 0; i < count; i++ {
		r := req
		r.Number = start + i
		r.Seed = req.Seed + uint64(start+i)

		lvl, err := g.Generate(r)
		if err != nil {
			return levels, fmt.Errorf("level %d: %w", r.Number, err)
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// finish assembles the level and re-checks it end to end.
func (g *Generator) finish(grid *Grid, req Request, build Build) (Level, error) {
	lvl := AssembleLevel(req.Shape, req.Palette, build.Start, build.Solution, req.Difficulty)
	lvl.Number = req.Number
	lvl.Seed = req.Seed
	lvl.Strategy = build.Strategy

	removals, err := CountRemovals(grid, build.Start, build.Solution)
	if err != nil {
		return Level{}, fmt.Errorf("%w: %w", errValidationMismatch, err)
	}
	lvl.Removals = removals
	// Pieces the solution leaves standing need one extra move each to
	// reach the removal target.
	lvl.MoveLimit = max(lvl.MoveLimit, len(lvl.Solution)+max(0, lvl.RemovalTarget-removals))

	if err := lvl.Check(); err != nil {
		return Level{}, fmt.Errorf("assembled level failed check: %w", err)
	}
	return lvl, nil
}

// logAttempt reports a failed attempt. Validator rejections of a solution
// the builder recorded are bugs and are logged louder.
func (g *Generator) logAttempt(logger *log.Logger, attempt int, err error) {
	if errors.Is(err, errValidationMismatch) {
		logger.Warn("validation mismatch", "attempt", attempt, "error", err)
		return
	}
	logger.Debug("attempt rejected", "attempt", attempt, "error", err)
}

// checkRequest reports template errors that no retry can fix.
func checkRequest(grid *Grid, req Request) error {
	if grid.Len() == 0 {
		return &TemplateError{Err: ErrEmptyGrid, Detail: fmt.Sprintf("shape %q", req.Shape.Name)}
	}
	if err := req.Difficulty.Validate(); err != nil {
		return &TemplateError{Err: err}
	}
	if req.Difficulty.PieceCount > grid.Len() {
		return &TemplateError{
			Err:    ErrTooManyPieces,
			Detail: fmt.Sprintf("%d pieces, %d cells", req.Difficulty.PieceCount, grid.Len()),
		}
	}
	return nil
}
