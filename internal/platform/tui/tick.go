// Package tui is the terminal front end for dodge. It renders engine
// snapshots with Bubble Tea, turns keys into move commands and reports
// collisions back to the engine. The same model runs locally and per SSH
// session.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

// RoundMsg carries a snapshot published by the engine.
type RoundMsg struct {
	Round dodge.Round
}

// EngineStoppedMsg is sent once the engine has shut down.
type EngineStoppedMsg struct{}

// Source is what the model needs from a running engine.
type Source interface {
	Updates() <-chan dodge.Round
	Done() <-chan struct{}
	Move(cmd dodge.MoveCommand)
	Collide(round int)
}

// waitForRound blocks until the engine publishes the next snapshot.
// Like a tick, it has to be re-issued after every RoundMsg.
func waitForRound(src Source) tea.Cmd {
	return func() tea.Msg {
		select {
		case r := <-src.Updates():
			return RoundMsg{Round: r}
		case <-src.Done():
			return EngineStoppedMsg{}
		}
	}
}

// collideCmd reports a collision without blocking the update loop.
func collideCmd(src Source, round int) tea.Cmd {
	return func() tea.Msg {
		src.Collide(round)
		return nil
	}
}
