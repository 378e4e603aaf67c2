package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

// Model is the Bubble Tea model for one dodge session. It never changes game
// state itself: keys become engine moves and overlaps become collision
// reports.
type Model struct {
	src      Source
	keys     KeyMap
	screen   *core.Screen
	round    dodge.Round
	watcher  dodge.OverlapWatcher
	ready    bool // A snapshot has arrived
	quitting bool
}

// NewModel creates a model that presents snapshots from src.
func NewModel(src Source, cfg core.RuntimeConfig) Model {
	return Model{
		src:    src,
		keys:   DefaultKeyMap(),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
	}
}

// Init subscribes to engine snapshots.
func (m Model) Init() tea.Cmd {
	return waitForRound(m.src)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case RoundMsg:
		return m.handleRound(msg.Round)

	case EngineStoppedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if dir, ok := m.keys.Direction(msg); ok {
		m.src.Move(dodge.Move(dir))
	}
	return m, nil
}

// handleRound stores the snapshot and reports a collision on overlap onset.
// The report names the round it was seen in, so the engine can discard it if
// that round has already ended.
func (m Model) handleRound(r dodge.Round) (tea.Model, tea.Cmd) {
	m.round = r
	m.ready = true
	next := waitForRound(m.src)
	if m.watcher.Observe(r) {
		return m, tea.Batch(collideCmd(m.src, r.Number), next)
	}
	return m, next
}

// Round returns the latest snapshot shown.
func (m Model) Round() dodge.Round {
	return m.round
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || !m.ready {
		return ""
	}
	dodge.Render(m.screen, m.round)
	return RenderScreen(m.screen)
}

// Run plays dodge in the local terminal until the user quits. The engine is
// started here and stopped before Run returns.
func Run(ctx context.Context, engine *dodge.Engine, cfg core.RuntimeConfig) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- engine.Run(ctx) }()

	p := tea.NewProgram(
		NewModel(engine, cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	cancel()
	if engineErr := <-errc; engineErr != nil {
		return engineErr
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
