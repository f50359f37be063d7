package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

func defaultRequest(seed uint64) core.Request {
	return core.Request{
		Shape:      hexagonShape(3),
		Difficulty: core.DefaultDifficulty(),
		Palette:    testPalette(),
		Seed:       seed,
	}
}

func TestGeneratedLevelsHoldInvariants(t *testing.T) {
	gen := core.NewGenerator()

	for seed := uint64(1); seed <= 25; seed++ {
		req := defaultRequest(seed)
		lvl, err := gen.Generate(req)
		if err != nil {
			t.Fatalf("seed %d: Generate failed: %v", seed, err)
		}

		g := lvl.Grid()
		start := lvl.Board()

		for _, p := range lvl.Pieces {
			if !g.IsValid(p.Pos) {
				t.Errorf("seed %d: piece at %v outside grid", seed, p.Pos)
			}
			if p.Color < 0 || p.Color >= len(lvl.Palette) {
				t.Errorf("seed %d: colour index %d outside palette", seed, p.Color)
			}
		}
		if start.Len() != len(lvl.Pieces) {
			t.Errorf("seed %d: pieces share cells", seed)
		}
		if core.HasDeadlock(g, start) {
			t.Errorf("seed %d: start board deadlocked", seed)
		}

		frames, err := core.Replay(g, start, lvl.Solution)
		if err != nil {
			t.Errorf("seed %d: recorded solution invalid: %v", seed, err)
		}
		if len(frames) != len(lvl.Solution) {
			t.Errorf("seed %d: replayed %d of %d moves", seed, len(frames), len(lvl.Solution))
		}

		if lvl.MoveLimit < len(lvl.Solution) {
			t.Errorf("seed %d: move limit %d < solution %d", seed, lvl.MoveLimit, len(lvl.Solution))
		}
		if lvl.RemovalTarget > len(lvl.Pieces) {
			t.Errorf("seed %d: removal target %d > pieces %d", seed, lvl.RemovalTarget, len(lvl.Pieces))
		}
		if lvl.Seed != seed {
			t.Errorf("seed %d: level records seed %d", seed, lvl.Seed)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	gen := core.NewGenerator()

	a, err := gen.Generate(defaultRequest(777))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := gen.Generate(defaultRequest(777))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different levels")
	}
}

func TestGenerateBackwardPlacesRequestedPieces(t *testing.T) {
	gen := core.NewGenerator(core.WithFallback(false))
	req := defaultRequest(99)

	lvl, err := gen.Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if lvl.Strategy != core.StrategyBackward {
		t.Errorf("expected backward strategy, got %s", lvl.Strategy)
	}
	if len(lvl.Pieces) != req.Difficulty.PieceCount {
		t.Errorf("expected %d pieces, got %d", req.Difficulty.PieceCount, len(lvl.Pieces))
	}
	if len(lvl.Solution) < req.Difficulty.MinSolutionLength() {
		t.Errorf("solution of %d moves below minimum %d", len(lvl.Solution), req.Difficulty.MinSolutionLength())
	}
	if lvl.Removals == 0 {
		t.Error("recorded solution removes no pieces")
	}
}

func TestGenerateFallsBackWhenBackwardCannotReachTarget(t *testing.T) {
	req := defaultRequest(5)
	req.Difficulty.TargetMoveCount = 200
	req.Difficulty.DifficultyTolerance = 0

	gen := core.NewGenerator(core.WithMaxAttempts(2))
	lvl, err := gen.Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if lvl.Strategy != core.StrategyFallback {
		t.Errorf("expected fallback strategy, got %s", lvl.Strategy)
	}
	if err := lvl.Check(); err != nil {
		t.Errorf("fallback level failed check: %v", err)
	}
}

func TestGenerateExhaustedWithoutFallback(t *testing.T) {
	req := defaultRequest(5)
	req.Difficulty.TargetMoveCount = 200
	req.Difficulty.DifficultyTolerance = 0

	gen := core.NewGenerator(core.WithMaxAttempts(2), core.WithFallback(false))
	_, err := gen.Generate(req)
	if !errors.Is(err, core.ErrGenerationExhausted) {
		t.Fatalf("expected ErrGenerationExhausted, got %v", err)
	}

	var ex *core.ExhaustedError
	if !errors.As(err, &ex) {
		t.Fatalf("expected *ExhaustedError, got %T", err)
	}
	if ex.Attempts != 2 || ex.Fallback {
		t.Errorf("unexpected exhaustion details: %+v", ex)
	}
}

func TestGenerateTemplateErrors(t *testing.T) {
	gen := core.NewGenerator()

	empty := core.NewShape("empty", 3, 3)
	for i := range empty.Mask {
		empty.Mask[i] = false
	}

	testCases := []struct {
		name  string
		req   core.Request
		cause error
	}{
		{
			name:  "empty grid",
			req:   core.Request{Shape: empty, Difficulty: core.DefaultDifficulty()},
			cause: core.ErrEmptyGrid,
		},
		{
			name: "too many pieces",
			req: core.Request{
				Shape: core.NewShape("pair", 2, 1),
				Difficulty: func() core.Difficulty {
					d := core.DefaultDifficulty()
					d.PieceCount = 5
					return d
				}(),
			},
			cause: core.ErrTooManyPieces,
		},
		{
			name: "bad removal fraction",
			req: core.Request{
				Shape: hexagonShape(2),
				Difficulty: func() core.Difficulty {
					d := core.DefaultDifficulty()
					d.RemovalFraction = 0
					return d
				}(),
			},
			cause: core.ErrInvalidDifficulty,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gen.Generate(tc.req)
			if !errors.Is(err, tc.cause) {
				t.Fatalf("expected %v, got %v", tc.cause, err)
			}
			var te *core.TemplateError
			if !errors.As(err, &te) {
				t.Errorf("expected *TemplateError, got %T", err)
			}
		})
	}
}

func TestGenerateBatchIncrementsSeed(t *testing.T) {
	gen := core.NewGenerator()
	req := defaultRequest(1000)

	levels, err := gen.GenerateBatch(req, 3, 5)
	if err != nil {
		t.Fatalf("GenerateBatch failed: %v", err)
	}
	if len(levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(levels))
	}

	for i, lvl := range levels {
		if lvl.Number != 5+i {
			t.Errorf("level %d: number %d", i, lvl.Number)
		}
		if lvl.Seed != 1005+uint64(i) {
			t.Errorf("level %d: seed %d", i, lvl.Seed)
		}

		single := req
		single.Number = lvl.Number
		single.Seed = lvl.Seed
		again, err := gen.Generate(single)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if !reflect.DeepEqual(again, lvl) {
			t.Errorf("level %d differs from a standalone generation", lvl.Number)
		}
	}
}

func TestAssembleLevelObjectives(t *testing.T) {
	d := core.DefaultDifficulty()
	d.MoveLimitMultiplier = 1.5
	d.RemovalFraction = 0.5

	board := core.BoardFromPieces([]core.Piece{
		{Pos: core.C(2, 0), Dir: core.DirEast},
		{Pos: core.C(0, 0), Dir: core.DirWest},
		{Pos: core.C(1, 1), Dir: core.DirSouthEast},
	})
	solution := []core.Move{
		{Pos: core.C(0, 0), Dir: core.DirWest},
		{Pos: core.C(2, 0), Dir: core.DirEast},
		{Pos: core.C(1, 1), Dir: core.DirSouthEast},
	}
	palette := testPalette()

	lvl := core.AssembleLevel(core.NewShape("rect", 3, 2), palette, board, solution, d)

	if lvl.MoveLimit != 5 { // ceil(3 * 1.5)
		t.Errorf("MoveLimit = %d, want 5", lvl.MoveLimit)
	}
	if lvl.RemovalTarget != 2 { // ceil(3 * 0.5)
		t.Errorf("RemovalTarget = %d, want 2", lvl.RemovalTarget)
	}
	if lvl.Pieces[0].Pos != core.C(0, 0) || lvl.Pieces[2].Pos != core.C(1, 1) {
		t.Errorf("pieces not in row-major order: %v", lvl.Pieces)
	}

	palette[0] = "changed"
	if lvl.Palette[0] == "changed" {
		t.Error("palette was not copied")
	}
}

func TestMoveLimitCoversUnsolvedRemovals(t *testing.T) {
	gen := core.NewGenerator()

	for seed := uint64(1); seed <= 15; seed++ {
		req := defaultRequest(seed)
		req.Difficulty.RemovalFraction = 1
		req.Difficulty.MoveLimitMultiplier = 1

		lvl, err := gen.Generate(req)
		if err != nil {
			t.Fatalf("seed %d: Generate failed: %v", seed, err)
		}
		if lvl.RemovalTarget != len(lvl.Pieces) {
			t.Errorf("seed %d: removal target %d, want every piece (%d)", seed, lvl.RemovalTarget, len(lvl.Pieces))
		}
		short := lvl.RemovalTarget - lvl.Removals
		if short <= 0 {
			// Seeds are never moved by the recorded solution.
			t.Errorf("seed %d: solution removed %d of %d pieces", seed, lvl.Removals, len(lvl.Pieces))
		}
		if lvl.MoveLimit < len(lvl.Solution)+short {
			t.Errorf("seed %d: move limit %d cannot cover %d moves plus %d removals",
				seed, lvl.MoveLimit, len(lvl.Solution), short)
		}
	}
}
