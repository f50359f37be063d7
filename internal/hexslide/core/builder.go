package core

import (
	"errors"
	"fmt"
)

// buildState tracks the backward builder's progress through one attempt.
type buildState uint8

const (
	stateSeeding buildState = iota
	stateExtending
	stateValidating
	stateDone
	stateFailed
)

// String returns the string representation of a build state.
func (s buildState) String() string {
	switch s {
	case stateSeeding:
		return "seeding"
	case stateExtending:
		return "extending"
	case stateValidating:
		return "validating"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// errValidationMismatch marks a recorded solution the validator rejected.
// The builder believed the solution was correct, so this signals a bug.
var errValidationMismatch = errors.New("recorded solution rejected by validator")

// Build is the outcome of one builder run.
type Build struct {
	Start    *Board
	Solution []Move
	Seeds    int
	Strategy Strategy
}

// backwardMove relocates a piece from From back to To; replaying
// Move{To, dir} forward slides it from To to From.
type backwardMove struct {
	From       Coord
	To         Coord
	Dir        Dir
	Bottleneck bool // Blocked by a piece that is itself removable
}

// backwardBuilder constructs a level by undoing moves from a final state.
type backwardBuilder struct {
	grid    *Grid
	diff    Difficulty
	colors  int
	rng     *SimpleRNG
	state   buildState
	board   *Board
	static  map[Coord]bool // Seeded pieces; never moved
	moves   []Move         // Recorded in backward order
	placed  int
	seeds   int
	bottles int
	lastDir Dir
	hasLast bool
}

// BuildBackward runs one backward construction attempt. The result is
// validated before it is returned; a non-nil error means the attempt failed
// and a fresh attempt may succeed.
func BuildBackward(g *Grid, d Difficulty, colors int, rng *SimpleRNG) (Build, error) {
	b := &backwardBuilder{
		grid:   g,
		diff:   d,
		colors: max(colors, 1),
		rng:    rng,
		board:  NewBoard(),
		static: make(map[Coord]bool),
	}
	return b.run()
}

func (b *backwardBuilder) run() (Build, error) {
	var err error
	for {
		switch b.state {
		case stateSeeding:
			b.seed()
			b.state = stateExtending
		case stateExtending:
			b.extend()
			b.state = stateValidating
		case stateValidating:
			if err = b.validate(); err != nil {
				b.state = stateFailed
			} else {
				b.state = stateDone
			}
		case stateDone:
			return Build{
				Start:    b.board,
				Solution: b.moves,
				Seeds:    b.seeds,
				Strategy: StrategyBackward,
			}, nil
		case stateFailed:
			return Build{}, err
		}
	}
}

// seed places the static pieces that stay on the board for the whole
// recorded solution.
func (b *backwardBuilder) seed() {
	n := seedCount(b.diff.PieceCount, b.rng)
	b.seeds = placeSeeds(b.grid, b.board, n, b.colors, b.diff.SpecialPieceRate, b.rng)
	for _, c := range b.board.Positions() {
		b.static[c] = true
	}
	b.placed = b.seeds
}

// extend grows the puzzle one reverse move at a time.
func (b *backwardBuilder) extend() {
	target := b.diff.TargetMoveCount
	ceiling := 4*target + b.diff.PieceCount

	for iter := 0; len(b.moves) < target && iter < ceiling; iter++ {
		budget := b.diff.PieceCount - b.placed
		stepsLeft := target - len(b.moves)

		cands := b.backwardMoves()
		if len(cands) == 0 || (budget > 0 && budget >= stepsLeft) {
			if budget > 0 && b.spawn() {
				continue
			}
			if len(cands) == 0 {
				return
			}
		}
		b.relocate(cands)
	}

	// Move budget ran out before the piece budget; add the rest as
	// un-removals so the level holds the requested number of pieces.
	for b.placed < b.diff.PieceCount {
		if !b.spawn() {
			return
		}
	}
}

// backwardMoves lists every valid reverse move, grouped by piece in
// row-major order.
//
// A piece at C facing D stops at C when slid forward only if C+D holds a
// piece. Every free cell N = C-k*D reachable through free cells is then an
// origin from which the forward slide ends exactly at C.
func (b *backwardBuilder) backwardMoves() [][]backwardMove {
	var out [][]backwardMove
	for _, p := range b.board.Pieces() {
		if b.static[p.Pos] {
			continue
		}

		front := b.grid.Neighbor(p.Pos, p.Dir)
		blocker, ok := b.board.Get(front)
		if !ok || blocker.Dir == p.Dir.Opposite() {
			continue
		}

		var moves []backwardMove
		back := p.Dir.Opposite()
		for to := b.grid.Neighbor(p.Pos, back); b.grid.IsValid(to) && !b.board.Occupied(to); to = b.grid.Neighbor(to, back) {
			trial := b.board.Clone()
			trial.Relocate(p.Pos, to)
			if HasDeadlock(b.grid, trial) {
				continue
			}
			moves = append(moves, backwardMove{
				From:       p.Pos,
				To:         to,
				Dir:        p.Dir,
				Bottleneck: !b.static[front],
			})
		}
		if len(moves) > 0 {
			out = append(out, moves)
		}
	}
	return out
}

// relocate applies one random reverse move and records its forward twin.
func (b *backwardBuilder) relocate(cands [][]backwardMove) {
	if b.bottles < b.diff.BottleneckCount {
		if narrowed := bottleneckOnly(cands); len(narrowed) > 0 {
			cands = narrowed
		}
	}

	group := cands[b.rng.Intn(len(cands))]
	m := group[b.rng.Intn(len(group))]

	b.board.Relocate(m.From, m.To)
	b.record(Move{Pos: m.To, Dir: m.Dir})
	if m.Bottleneck {
		b.bottles++
	}
}

// spawn adds a fresh piece whose forward slide leaves the grid. In forward
// play this is the move that removes it. Returns false if no free cell
// offers an exit.
func (b *backwardBuilder) spawn() bool {
	free := freeCells(b.grid, b.board)
	for len(free) > 0 {
		i := b.rng.Intn(len(free))
		c := free[i]
		free[i] = free[len(free)-1]
		free = free[:len(free)-1]

		dirs := exitDirs(b.grid, b.board, c)
		if len(dirs) == 0 {
			continue
		}
		if b.hasLast && b.rng.Chance(b.diff.DirectionChangeRate) {
			if turned := excludeDirs(dirs, b.lastDir, b.lastDir.Opposite()); len(turned) > 0 {
				dirs = turned
			}
		}

		d := dirs[b.rng.Intn(len(dirs))]
		b.board.Put(Piece{
			Pos:     c,
			Dir:     d,
			Color:   b.rng.Intn(b.colors),
			Special: b.rng.Chance(b.diff.SpecialPieceRate),
		})
		b.placed++
		b.record(Move{Pos: c, Dir: d})
		return true
	}
	return false
}

// record stores a snapshot of the forward move. Moves are never tied to
// live pieces, so later relocations cannot change them.
func (b *backwardBuilder) record(m Move) {
	b.moves = append(b.moves, m)
	b.lastDir = m.Dir
	b.hasLast = true
}

// validate reverses the recorded moves and checks the start state.
func (b *backwardBuilder) validate() error {
	for i, j := 0, len(b.moves)-1; i < j; i, j = i+1, j-1 {
		b.moves[i], b.moves[j] = b.moves[j], b.moves[i]
	}

	if len(b.moves) < b.diff.MinSolutionLength() {
		return fmt.Errorf("solution too short: %d moves, need %d", len(b.moves), b.diff.MinSolutionLength())
	}
	if dl, found := FindDeadlock(b.grid, b.board); found {
		return fmt.Errorf("start state deadlocked at %s/%s", dl.A.Pos, dl.B.Pos)
	}
	if err := ValidateSolution(b.grid, b.board, b.moves); err != nil {
		return fmt.Errorf("%w: %w", errValidationMismatch, err)
	}
	return nil
}

// placeSeeds puts up to n random pieces on free cells, redrawing any that
// would create a deadlock. Returns how many were placed.
func placeSeeds(g *Grid, b *Board, n, colors int, specialRate float64, rng *SimpleRNG) int {
	placed := 0
	for tries := 0; placed < n && tries < 8*n; tries++ {
		free := freeCells(g, b)
		if len(free) == 0 {
			break
		}
		p := Piece{
			Pos:     free[rng.Intn(len(free))],
			Dir:     rng.Dir(),
			Color:   rng.Intn(max(colors, 1)),
			Special: rng.Chance(specialRate),
		}
		b.Put(p)
		if HasDeadlock(g, b) {
			b.Remove(p.Pos)
			continue
		}
		placed++
	}
	return placed
}

// freeCells returns unoccupied grid cells in row-major order.
func freeCells(g *Grid, b *Board) []Coord {
	out := make([]Coord, 0, g.Len()-b.Len())
	for _, c := range g.Cells() {
		if !b.Occupied(c) {
			out = append(out, c)
		}
	}
	return out
}

// exitDirs returns the directions in which a piece at c would leave the grid.
func exitDirs(g *Grid, b *Board, c Coord) []Dir {
	var out []Dir
	for _, d := range AllDirs() {
		if ResolveSlide(g, b, c, d).Exited {
			out = append(out, d)
		}
	}
	return out
}

func excludeDirs(dirs []Dir, skip ...Dir) []Dir {
	out := make([]Dir, 0, len(dirs))
outer:
	for _, d := range dirs {
		for _, s := range skip {
			if d == s {
				continue outer
			}
		}
		out = append(out, d)
	}
	return out
}

func bottleneckOnly(cands [][]backwardMove) [][]backwardMove {
	var out [][]backwardMove
	for _, group := range cands {
		var keep []backwardMove
		for _, m := range group {
			if m.Bottleneck {
				keep = append(keep, m)
			}
		}
		if len(keep) > 0 {
			out = append(out, keep)
		}
	}
	return out
}
