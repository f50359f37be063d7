package levels_test

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
	"github.com/vovakirdan/hexslide/internal/hexslide/levels"
	"github.com/vovakirdan/hexslide/internal/hexslide/levels/formats"
)

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	files, err := levels.NewLoader(getTestdataPath()).LoadAll()
	require.NoError(t, err)
	require.Len(t, files, 2)

	for i := 1; i < len(files); i++ {
		assert.Less(t, files[i-1].ID, files[i].ID, "levels not sorted")
	}
}

func TestLoaderLoadByID(t *testing.T) {
	f, err := levels.NewLoader(getTestdataPath()).LoadByID("level-0001")
	require.NoError(t, err)

	assert.Equal(t, "Corridor", f.Name)
	assert.Equal(t, 1, f.Level.Number)
	assert.Equal(t, uint64(7), f.Level.Seed)
	assert.Equal(t, core.StrategyBackward, f.Level.Strategy)
	assert.Equal(t, 5, f.Level.Shape.Count())
	require.Len(t, f.Level.Pieces, 2)
	assert.True(t, f.Level.Pieces[1].Special)
	assert.Equal(t, core.DirEast, f.Level.Pieces[0].Dir)
	require.Len(t, f.Level.Solution, 2)

	assert.NoError(t, f.Level.Check())
}

func TestLoaderHolesAndNoSolution(t *testing.T) {
	f, err := levels.NewLoader(getTestdataPath()).LoadByID("level-0002")
	require.NoError(t, err)

	assert.Equal(t, 9, f.Level.Shape.Count())
	assert.False(t, f.Level.Shape.Has(core.C(2, 0)))
	assert.Empty(t, f.Level.Solution)
	assert.Equal(t, core.DirNorthEast, f.Level.Pieces[0].Dir)
}

func TestLoaderMissingID(t *testing.T) {
	_, err := levels.NewLoader(getTestdataPath()).LoadByID("level-9999")
	assert.Error(t, err)
}

func TestLoaderIDFromFilename(t *testing.T) {
	dir := t.TempDir()
	body := "shape:\n  rows: [\"###\"]\npieces:\n  - {x: 0, y: 0, dir: W, color: 0}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.yml"), []byte(body), 0o644))

	files, err := levels.NewLoader(dir).LoadAll()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "custom", files[0].ID)
}

func TestLoaderSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("pieces: [{dir: UP}]\nshape: {rows: ['#']}\n"), 0o644))

	files, err := levels.NewLoader(dir).LoadAll()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestSaveGeneratedLevelRoundTrip(t *testing.T) {
	shape, err := core.ShapeFromRows("rect", []string{"######", "######", "######", "######", "######"})
	require.NoError(t, err)

	d := core.DefaultDifficulty()
	d.TargetMoveCount = 8
	d.PieceCount = 8

	gen := core.NewGenerator(core.WithLogger(log.New(io.Discard)))
	lvl, err := gen.Generate(core.Request{
		Shape:      shape,
		Difficulty: d,
		Palette:    []string{"red", "blue", "green"},
		Seed:       42,
		Number:     3,
	})
	require.NoError(t, err)

	loader := levels.NewLoader(filepath.Join(t.TempDir(), "out"))
	path, err := loader.Save(lvl, "generated")
	require.NoError(t, err)
	assert.Equal(t, "level-0003.yaml", filepath.Base(path))

	f, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, levels.IDFor(3), f.ID)
	assert.Equal(t, "generated", f.Name)

	got := f.Level
	assert.True(t, got.Shape.Equal(lvl.Shape))
	assert.Equal(t, lvl.Pieces, got.Pieces)
	assert.Equal(t, lvl.Solution, got.Solution)
	assert.Equal(t, lvl.Palette, got.Palette)
	assert.Equal(t, lvl.MoveLimit, got.MoveLimit)
	assert.Equal(t, lvl.RemovalTarget, got.RemovalTarget)
	assert.Equal(t, lvl.Removals, got.Removals)
	assert.Equal(t, lvl.Strategy, got.Strategy)
	assert.NoError(t, got.Check())
}

func TestParseYAMLRejectsPaletteOverflow(t *testing.T) {
	body := []byte("shape: {rows: ['##']}\npalette: [red]\npieces:\n  - {x: 0, y: 0, dir: E, color: 3}\n")
	_, err := formats.ParseYAML(body)
	assert.Error(t, err)
}

func TestParseShapeYAML(t *testing.T) {
	s, err := formats.ParseShapeYAML([]byte("name: tee\nrows:\n  - '###'\n  - '.#.'\n"))
	require.NoError(t, err)
	assert.Equal(t, "tee", s.Name)
	assert.Equal(t, 4, s.Count())

	_, err = formats.ParseShapeYAML([]byte("rows: []\n"))
	assert.Error(t, err)
}
