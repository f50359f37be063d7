package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
	"github.com/vovakirdan/hexslide/internal/storage"
)

// corridor is a 5-cell row with two East pieces; the solution removes both.
func corridor(t *testing.T) core.Level {
	t.Helper()
	shape, err := core.ShapeFromRows("rect", []string{"#####", "##.##"})
	require.NoError(t, err)
	return core.Level{
		Number:  1,
		Shape:   shape,
		Palette: []string{"#ff0000", "#00ff00"},
		Pieces: []core.Piece{
			{Pos: core.C(1, 0), Dir: core.DirEast, Color: 0},
			{Pos: core.C(3, 0), Dir: core.DirEast, Color: 1, Special: true},
		},
		Solution: []core.Move{
			{Pos: core.C(3, 0), Dir: core.DirEast},
			{Pos: core.C(1, 0), Dir: core.DirEast},
		},
		MoveLimit:     3,
		RemovalTarget: 2,
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m ReplayModel, msg tea.Msg) (ReplayModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	rm, ok := next.(ReplayModel)
	require.True(t, ok)
	return rm, cmd
}

func TestRenderBoardMatchesASCII(t *testing.T) {
	lvl := corridor(t)
	got := ansi.Strip(RenderBoard(BoardView{
		Grid:    lvl.Grid(),
		Board:   lvl.Board(),
		Palette: lvl.Palette,
	}, DefaultTheme()))

	want := strings.TrimRight(core.RenderASCII(lvl.Grid(), lvl.Board()), "\n")
	assert.Equal(t, want, got)
}

func TestReplayStepping(t *testing.T) {
	m := NewReplayModel(corridor(t), DefaultTheme())
	require.NoError(t, m.Err())
	assert.Equal(t, 0, m.Step())
	assert.Equal(t, 2, m.Steps())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.Step(), "prev at start stays put")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Step())
	assert.Equal(t, 1, m.board().Len())

	m, _ = press(t, m, keyRunes("l"))
	m, _ = press(t, m, keyRunes("l"))
	assert.Equal(t, 2, m.Step(), "next at end stays put")
	assert.Equal(t, 0, m.board().Len())
	assert.Contains(t, ansi.Strip(m.View()), "Solved")

	m, _ = press(t, m, keyRunes("g"))
	assert.Equal(t, 0, m.Step())

	m, _ = press(t, m, keyRunes("G"))
	assert.Equal(t, 2, m.Step())

	m, _ = press(t, m, keyRunes("h"))
	assert.Equal(t, 1, m.Step())
}

func TestReplayAutoplay(t *testing.T) {
	m := NewReplayModel(corridor(t), DefaultTheme())

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.True(t, m.Playing())
	assert.NotNil(t, cmd)

	m, cmd = press(t, m, TickMsg{})
	assert.Equal(t, 1, m.Step())
	assert.NotNil(t, cmd)

	m, _ = press(t, m, TickMsg{})
	m, cmd = press(t, m, TickMsg{})
	assert.Equal(t, 2, m.Step())
	assert.False(t, m.Playing(), "autoplay stops at the last move")
	assert.Nil(t, cmd)

	// Space at the end restarts from the beginning.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.Equal(t, 0, m.Step())
	assert.True(t, m.Playing())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.False(t, m.Playing(), "manual stepping pauses autoplay")
}

func TestReplayQuitAndBack(t *testing.T) {
	m := NewReplayModel(corridor(t), DefaultTheme())

	back, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, back.GoingBack())
	assert.Nil(t, cmd)

	quit, cmd := press(t, m, keyRunes("q"))
	assert.True(t, quit.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, quit.View())
}

func TestReplayIllegalSolution(t *testing.T) {
	lvl := corridor(t)
	lvl.Solution = []core.Move{
		{Pos: core.C(3, 0), Dir: core.DirEast},
		{Pos: core.C(0, 0), Dir: core.DirEast}, // empty cell
	}

	m := NewReplayModel(lvl, DefaultTheme())
	var verr core.ValidationError
	require.ErrorAs(t, m.Err(), &verr)
	assert.Equal(t, core.CodeNoPiece, verr.Code)
	assert.Equal(t, 1, verr.Step)
	assert.Equal(t, 1, m.Steps(), "frames keep the legal prefix")
	assert.Contains(t, ansi.Strip(m.View()), core.CodeNoPiece)
}

type fakeSource struct {
	levels map[int]core.Level
}

func (f fakeSource) ListLevels(int) ([]storage.LevelEntry, error) {
	var out []storage.LevelEntry
	for n := 1; n <= len(f.levels); n++ {
		l := f.levels[n]
		out = append(out, storage.LevelEntry{Number: n, Shape: l.Shape.Name, Moves: len(l.Solution)})
	}
	return out, nil
}

func (f fakeSource) LoadLevel(n int) (core.Level, error) {
	l, ok := f.levels[n]
	if !ok {
		return core.Level{}, errors.New("missing")
	}
	return l, nil
}

func TestCatalogueOpensReplay(t *testing.T) {
	first := corridor(t)
	second := corridor(t)
	second.Number = 2
	src := fakeSource{levels: map[int]core.Level{1: first, 2: second}}

	m := NewCatalogueModel(src, 100, 30, DefaultTheme())
	assert.Contains(t, ansi.Strip(m.View()), "hexslide levels (2)")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(CatalogueModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(CatalogueModel)

	lvl, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, lvl.Number)
	assert.Contains(t, ansi.Strip(m.View()), "Level 2")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(CatalogueModel)
	_, ok = m.Selected()
	assert.False(t, ok, "esc returns to the list")

	next, cmd := m.Update(keyRunes("q"))
	m = next.(CatalogueModel)
	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
}

func TestLevelTableRows(t *testing.T) {
	entries := []storage.LevelEntry{
		{Number: 4, Shape: "ring", Strategy: core.StrategyFallback, Pieces: 9, Moves: 6, MoveLimit: 9, RemovalTarget: 6, Seed: 99},
	}
	tbl := NewLevelTable(entries, 0, DefaultTheme())
	rows := tbl.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, table.Row{"4", "ring", "fallback", "9", "6", "9", "6", "99"}, rows[0])
}

func TestResolveHostKeyPathCreatesDirectory(t *testing.T) {
	want := filepath.Join(t.TempDir(), "keys", "nested", "host_key")

	got, err := resolveHostKeyPath(want)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(filepath.Dir(want))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewSSHServerUsesCatalogue(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "levels.db")

	srv, err := NewSSHServer(cfg)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
	assert.NotNil(t, srv.store)
	assert.NoError(t, srv.Shutdown())
}
