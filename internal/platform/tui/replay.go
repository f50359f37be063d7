package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

// DefaultPlayInterval is the autoplay delay between moves.
const DefaultPlayInterval = 600 * time.Millisecond

// ReplayModel steps through a level's recorded solution.
// Step 0 is the start layout; step i shows the board after move i.
type ReplayModel struct {
	level    core.Level
	grid     *core.Grid
	start    *core.Board
	frames   []core.ReplayFrame
	err      error // Replay failure; frames hold the legal prefix
	step     int
	playing  bool
	interval time.Duration

	theme     Theme
	keys      ReplayKeyMap
	help      help.Model
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewReplayModel creates a replay viewer for a level.
func NewReplayModel(lvl core.Level, theme Theme) ReplayModel {
	grid := lvl.Grid()
	start := lvl.Board()
	frames, err := core.Replay(grid, start, lvl.Solution)

	return ReplayModel{
		level:    lvl,
		grid:     grid,
		start:    start,
		frames:   frames,
		err:      err,
		interval: DefaultPlayInterval,
		theme:    theme,
		keys:     DefaultReplayKeyMap(),
		help:     help.New(),
	}
}

// Init initializes the replay model.
func (m ReplayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay viewer.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.playing {
			return m, nil
		}
		if m.step >= len(m.frames) {
			m.playing = false
			return m, nil
		}
		m.step++
		return m, tickCmd(m.interval)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m ReplayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.goingBack = true
		m.playing = false
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.playing = false
		if m.step < len(m.frames) {
			m.step++
		}

	case key.Matches(msg, m.keys.Prev):
		m.playing = false
		if m.step > 0 {
			m.step--
		}

	case key.Matches(msg, m.keys.First):
		m.playing = false
		m.step = 0

	case key.Matches(msg, m.keys.Last):
		m.playing = false
		m.step = len(m.frames)

	case key.Matches(msg, m.keys.Play):
		if m.playing {
			m.playing = false
			return m, nil
		}
		if m.step >= len(m.frames) {
			m.step = 0
		}
		m.playing = true
		return m, tickCmd(m.interval)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// Step returns the current step (0 = start layout).
func (m ReplayModel) Step() int {
	return m.step
}

// Steps returns the number of legal moves available to step through.
func (m ReplayModel) Steps() int {
	return len(m.frames)
}

// Playing reports whether autoplay is running.
func (m ReplayModel) Playing() bool {
	return m.playing
}

// Err returns the replay failure, if the recorded solution is illegal.
func (m ReplayModel) Err() error {
	return m.err
}

// IsQuitting returns true if user requested to quit entirely.
func (m ReplayModel) IsQuitting() bool {
	return m.quitting
}

// GoingBack returns true if user requested to leave the viewer.
func (m ReplayModel) GoingBack() bool {
	return m.goingBack
}

// board returns the board shown at the current step.
func (m ReplayModel) board() *core.Board {
	if m.step == 0 {
		return m.start
	}
	return m.frames[m.step-1].Board
}

// View renders the replay viewer.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}

	t := m.theme
	sep := t.HUDSeparator.Render(" | ")

	removed := 0
	var focus *core.Coord
	var caption string
	if m.step > 0 {
		f := m.frames[m.step-1]
		removed = f.Removed
		if f.Result.Exited {
			caption = fmt.Sprintf("%s %s exits", f.Move.Pos, f.Move.Dir)
		} else {
			end := f.Result.End
			focus = &end
			caption = fmt.Sprintf("%s %s stops at %s", f.Move.Pos, f.Move.Dir, end)
		}
	} else {
		caption = "start"
	}

	hud := strings.Join([]string{
		t.HUDTitle.Render(fmt.Sprintf("Level %d", m.level.Number)),
		t.HUDValue.Render(fmt.Sprintf("Move %d/%d", m.step, len(m.level.Solution))),
		t.HUDValue.Render(fmt.Sprintf("Removed %d/%d", removed, m.level.RemovalTarget)),
		t.HUDValue.Render(fmt.Sprintf("Limit %d", m.level.MoveLimit)),
	}, sep)

	board := RenderBoard(BoardView{
		Grid:    m.grid,
		Board:   m.board(),
		Palette: m.level.Palette,
		Focus:   focus,
	}, t)

	lines := []string{hud, "", board, "", t.OverlayText.Render(caption)}
	if m.err != nil {
		lines = append(lines, t.ErrorText.Render(m.err.Error()))
	}
	if m.step == len(m.frames) && m.err == nil && len(m.frames) > 0 {
		lines = append(lines, t.OverlayTitle.Render("Solved"))
	}
	lines = append(lines, "", t.HUDControls.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RunReplay starts a Bubble Tea program showing a level's solution.
func RunReplay(lvl core.Level, theme Theme) error {
	p := tea.NewProgram(
		replayProgram{NewReplayModel(lvl, theme)},
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// replayProgram quits on back, since a standalone viewer has nowhere to go.
type replayProgram struct {
	ReplayModel
}

func (r replayProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := r.ReplayModel.Update(msg)
	r.ReplayModel = next.(ReplayModel)
	if r.GoingBack() {
		return r, tea.Quit
	}
	return r, cmd
}
