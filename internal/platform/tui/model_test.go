package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

// fakeSource records what the model sends to the engine. Its done channel is
// closed so pending subscriptions resolve immediately.
type fakeSource struct {
	updates  chan dodge.Round
	done     chan struct{}
	moves    []dodge.MoveCommand
	collided []int
}

func newFakeSource() *fakeSource {
	f := &fakeSource{
		updates: make(chan dodge.Round, 1),
		done:    make(chan struct{}),
	}
	close(f.done)
	return f
}

func (f *fakeSource) Updates() <-chan dodge.Round { return f.updates }
func (f *fakeSource) Done() <-chan struct{}       { return f.done }
func (f *fakeSource) Move(cmd dodge.MoveCommand)  { f.moves = append(f.moves, cmd) }
func (f *fakeSource) Collide(round int)           { f.collided = append(f.collided, round) }

// runCmd executes cmd and any batched commands it expands to.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func testRound() dodge.Round {
	return dodge.NewRound(dodge.NewArena(10, 20), dodge.DefaultParams(), 0, 1)
}

func overlappingRound(number int) dodge.Round {
	r := dodge.NewRound(dodge.NewArena(10, 20), dodge.DefaultParams(), 0, number)
	r.Enemies = []dodge.Enemy{{Position: r.Player, ID: 1, Dir: dodge.DirLeft}}
	return r
}

func TestModelForwardsMoves(t *testing.T) {
	src := newFakeSource()
	m := NewModel(src, core.DefaultConfig())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if cmd != nil {
		t.Error("move key should not return a command")
	}
	updated.Update(runeKey('d'))
	updated.Update(runeKey('x'))

	want := []dodge.MoveCommand{dodge.Move(dodge.DirUp), dodge.Move(dodge.DirRight)}
	if len(src.moves) != len(want) {
		t.Fatalf("moves = %v, expected %v", src.moves, want)
	}
	for i := range want {
		if src.moves[i] != want[i] {
			t.Errorf("moves[%d] = %+v, expected %+v", i, src.moves[i], want[i])
		}
	}
}

func TestModelQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		m := NewModel(newFakeSource(), core.DefaultConfig())
		updated, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", msg)
		}
		if updated.View() != "" {
			t.Errorf("%s: view should be empty after quitting", msg)
		}
	}
}

func TestModelReportsCollisionOnce(t *testing.T) {
	src := newFakeSource()
	var m tea.Model = NewModel(src, core.DefaultConfig())

	r := overlappingRound(3)
	m, cmd := m.Update(RoundMsg{Round: r})
	runCmd(cmd)
	if len(src.collided) != 1 || src.collided[0] != 3 {
		t.Fatalf("collided = %v, expected [3]", src.collided)
	}

	// Same overlap seen again before the engine resets
	m, cmd = m.Update(RoundMsg{Round: r})
	runCmd(cmd)
	if len(src.collided) != 1 {
		t.Errorf("collided = %v, overlap reported twice", src.collided)
	}

	// Fresh round that overlaps again is a new collision
	_, cmd = m.Update(RoundMsg{Round: overlappingRound(4)})
	runCmd(cmd)
	if len(src.collided) != 2 || src.collided[1] != 4 {
		t.Errorf("collided = %v, expected [3 4]", src.collided)
	}
}

func TestModelKeepsSubscribing(t *testing.T) {
	src := newFakeSource()
	m := NewModel(src, core.DefaultConfig())

	_, cmd := m.Update(RoundMsg{Round: testRound()})
	msgs := runCmd(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, expected 1", len(msgs))
	}
	if _, ok := msgs[0].(EngineStoppedMsg); !ok {
		t.Errorf("expected EngineStoppedMsg from a stopped engine, got %T", msgs[0])
	}
	if len(src.collided) != 0 {
		t.Error("no collision expected")
	}
}

func TestModelWaitsForSnapshot(t *testing.T) {
	src := newFakeSource()
	src.done = make(chan struct{})
	src.updates <- testRound()

	m := NewModel(src, core.DefaultConfig())
	msg := m.Init()()
	rm, ok := msg.(RoundMsg)
	if !ok {
		t.Fatalf("Init() produced %T, expected RoundMsg", msg)
	}
	if rm.Round.Number != 1 {
		t.Errorf("Round.Number = %d, expected 1", rm.Round.Number)
	}
}

func TestModelEngineStopped(t *testing.T) {
	m := NewModel(newFakeSource(), core.DefaultConfig())
	_, cmd := m.Update(EngineStoppedMsg{})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(newFakeSource(), core.DefaultConfig())
	if m.View() != "" {
		t.Error("view should be empty before the first snapshot")
	}

	updated, _ := m.Update(RoundMsg{Round: testRound()})
	view := updated.View()
	for _, want := range []string{"Dodge", "Score: 0", "Highest Score: 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if got := updated.(Model).Round().Number; got != 1 {
		t.Errorf("Round().Number = %d, expected 1", got)
	}
}
