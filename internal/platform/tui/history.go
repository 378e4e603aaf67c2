package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// HistoryView selects which rounds the history screen lists.
type HistoryView int

const (
	HistoryTop HistoryView = iota
	HistoryRecent
)

func (v HistoryView) String() string {
	if v == HistoryRecent {
		return "Recent Rounds"
	}
	return "Best Rounds"
}

// HistoryStore is the subset of storage.Store the history screen reads.
type HistoryStore interface {
	TopRounds(limit int) ([]storage.RoundEntry, error)
	RecentRounds(limit int) ([]storage.RoundEntry, error)
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Switch, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "best/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the round history screen.
type HistoryModel struct {
	store    HistoryStore
	limit    int
	view     HistoryView
	rounds   []storage.RoundEntry
	err      error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history screen listing up to limit rounds.
func NewHistoryModel(store HistoryStore, limit, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		limit:  limit,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Time", Width: 6},
		{Title: "Round", Width: 6},
		{Title: "Speed", Width: 6},
		{Title: "Session", Width: 16},
		{Title: "Date", Width: 16},
	}
	// Session takes whatever width is left
	fixed := 4 + 7 + 6 + 6 + 6 + 16 + 2*len(columns) + 4
	if extra := m.width - fixed - 16; extra > 0 {
		columns[5].Width += min(extra, 24)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *HistoryModel) load() {
	m.rounds, m.err = nil, nil
	if m.store == nil {
		m.table.SetRows(nil)
		return
	}
	if m.view == HistoryRecent {
		m.rounds, m.err = m.store.RecentRounds(m.limit)
	} else {
		m.rounds, m.err = m.store.TopRounds(m.limit)
	}
	m.table.SetRows(HistoryRows(m.rounds))
	m.table.GotoTop()
}

// HistoryRows formats rounds as table rows, ranked in list order.
func HistoryRows(rounds []storage.RoundEntry) []table.Row {
	rows := make([]table.Row, len(rounds))
	for i, r := range rounds {
		date := "-"
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("2006-01-02 15:04")
		}
		session := r.Session
		if session == "" {
			session = "local"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%ds", r.Elapsed),
			fmt.Sprintf("%d", r.Round),
			fmt.Sprintf("%.1f", r.EnemySpeed),
			session,
			date,
		}
	}
	return rows
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			m.view = 1 - m.view
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(HistoryRows(m.rounds))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("DODGE - " + strings.ToUpper(m.view.String())))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.content()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, b.String())
}

func (m HistoryModel) content() string {
	muted := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	switch {
	case m.err != nil:
		return muted.Render("Could not load history:\n" + m.err.Error())
	case len(m.rounds) == 0:
		return muted.Render("No rounds recorded yet.\nPlay a game to start the history!")
	}
	return m.table.View()
}

// RunHistory runs the history screen until the user quits.
func RunHistory(store HistoryStore, limit, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, limit, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
