package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
	"github.com/vovakirdan/hexslide/internal/storage"
)

// LevelSource is the part of the level store the catalogue reads.
type LevelSource interface {
	ListLevels(limit int) ([]storage.LevelEntry, error)
	LoadLevel(number int) (core.Level, error)
}

// NewLevelTable builds a table of catalogue rows.
func NewLevelTable(entries []storage.LevelEntry, height int, theme Theme) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Shape", Width: 9},
		{Title: "Strategy", Width: 9},
		{Title: "Pieces", Width: 7},
		{Title: "Moves", Width: 6},
		{Title: "Limit", Width: 6},
		{Title: "Remove", Width: 7},
		{Title: "Seed", Width: 20},
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.Number),
			e.Shape,
			string(e.Strategy),
			fmt.Sprintf("%d", e.Pieces),
			fmt.Sprintf("%d", e.Moves),
			fmt.Sprintf("%d", e.MoveLimit),
			fmt.Sprintf("%d", e.RemovalTarget),
			fmt.Sprintf("%d", e.Seed),
		}
	}

	if height <= 0 {
		height = len(rows) + 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Inherit(theme.TableHeader)
	s.Selected = s.Selected.Inherit(theme.TableSelected)
	t.SetStyles(s)

	return t
}

// CatalogueModel lists stored levels and opens the replay viewer for the
// selected one.
type CatalogueModel struct {
	source  LevelSource
	entries []storage.LevelEntry
	table   table.Model
	help    help.Model
	keys    CatalogueKeyMap
	theme   Theme
	replay  *ReplayModel
	err     error
	width   int
	height  int

	quitting bool // Set on q or ctrl+c from either view
}

// NewCatalogueModel creates a new catalogue model.
func NewCatalogueModel(source LevelSource, width, height int, theme Theme) CatalogueModel {
	m := CatalogueModel{
		source: source,
		help:   help.New(),
		keys:   DefaultCatalogueKeyMap(),
		theme:  theme,
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// reload refreshes the table from the source.
func (m *CatalogueModel) reload() {
	entries, err := m.source.ListLevels(0)
	if err != nil {
		m.err = err
		entries = nil
	}
	m.entries = entries
	m.table = NewLevelTable(entries, max(m.height-6, 3), m.theme)
}

// Init initializes the catalogue model.
func (m CatalogueModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the catalogue.
func (m CatalogueModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		m.help.Width = wsm.Width
		m.table.SetHeight(max(wsm.Height-6, 3))
	}

	if m.replay != nil {
		return m.updateReplay(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			return m.open()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// open loads the selected level and switches to the replay viewer.
func (m CatalogueModel) open() (tea.Model, tea.Cmd) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.entries) {
		return m, nil
	}

	lvl, err := m.source.LoadLevel(m.entries[cursor].Number)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil

	replay := NewReplayModel(lvl, m.theme)
	replay.width = m.width
	replay.height = m.height
	replay.help.Width = m.width
	m.replay = &replay
	return m, replay.Init()
}

// updateReplay forwards messages to the open replay viewer.
func (m CatalogueModel) updateReplay(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.replay.Update(msg)
	replay := next.(ReplayModel)

	if replay.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if replay.GoingBack() {
		m.replay = nil
		return m, nil
	}

	m.replay = &replay
	return m, cmd
}

// Selected returns the open level, if the replay viewer is showing.
func (m CatalogueModel) Selected() (core.Level, bool) {
	if m.replay == nil {
		return core.Level{}, false
	}
	return m.replay.level, true
}

// IsQuitting returns true if user requested to quit.
func (m CatalogueModel) IsQuitting() bool {
	return m.quitting
}

// View renders the catalogue or the open replay.
func (m CatalogueModel) View() string {
	if m.quitting {
		return ""
	}
	if m.replay != nil {
		return m.replay.View()
	}

	t := m.theme
	title := t.HUDTitle.Render(fmt.Sprintf("hexslide levels (%d)", len(m.entries)))

	var body string
	if len(m.entries) == 0 {
		body = t.OverlayText.Render("No levels stored yet. Run `hexslide batch` first.")
	} else {
		body = m.table.View()
	}

	lines := []string{title, "", body}
	if m.err != nil {
		lines = append(lines, t.ErrorText.Render(m.err.Error()))
	}
	lines = append(lines, "", t.HUDControls.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RunCatalogue starts a Bubble Tea program browsing the level catalogue.
func RunCatalogue(source LevelSource, theme Theme) error {
	p := tea.NewProgram(
		NewCatalogueModel(source, 80, 24, theme),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
