package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// stubGame records what the platform feeds it.
type stubGame struct {
	resets  int
	sizes   [][2]int
	dts     []time.Duration
	frames  []core.InputFrame
	events  []core.Event
	gameOff bool
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.sizes = append(g.sizes, [2]int{cfg.ScreenW, cfg.ScreenH})
}

func (g *stubGame) Resize(w, h int) {
	g.sizes = append(g.sizes, [2]int{w, h})
}

func (g *stubGame) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	g.dts = append(g.dts, dt)
	g.frames = append(g.frames, in.Clone())
	ev := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: ev}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub screen")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{GameOver: g.gameOff}
}

func newTestModel(g *stubGame) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, nil)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelReservesFooter(t *testing.T) {
	g := &stubGame{}
	newTestModel(g)

	if g.resets != 1 {
		t.Fatalf("resets = %d, want 1", g.resets)
	}
	if got := g.sizes[0]; got != [2]int{80, 23} {
		t.Errorf("game size = %v, want [80 23]", got)
	}
}

func TestModelTickDeliversOrderedInput(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	start := time.Unix(1000, 0)
	m, cmd := update(t, m, TickMsg(start))
	if cmd == nil {
		t.Fatal("tick must schedule the next tick")
	}
	m, _ = update(t, m, TickMsg(start.Add(16*time.Millisecond)))

	if len(g.frames) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.frames))
	}
	first := g.frames[0].Actions
	if len(first) != 2 || first[0] != core.ActionLeft || first[1] != core.ActionRotateCW {
		t.Errorf("first frame = %v, want [Left RotateCW]", first)
	}
	if g.frames[1].Len() != 0 {
		t.Errorf("second frame = %v, want empty", g.frames[1].Actions)
	}
	if g.dts[0] != 0 || g.dts[1] != 16*time.Millisecond {
		t.Errorf("dts = %v, want [0 16ms]", g.dts)
	}
	_ = m
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resets != 1 {
		t.Errorf("resize must not reset the game, resets = %d", g.resets)
	}
	if got := g.sizes[len(g.sizes)-1]; got != [2]int{100, 39} {
		t.Errorf("game size = %v, want [100 39]", got)
	}

	// Full help takes more rows.
	m, _ = update(t, m, runeKey('?'))
	if got := g.sizes[len(g.sizes)-1]; got[1] >= 39 {
		t.Errorf("full help should shrink the screen, got height %d", got[1])
	}
	if !strings.Contains(m.View(), "stub screen") {
		t.Error("view does not contain the game screen")
	}
}

func TestModelQuit(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelViewHasHelp(t *testing.T) {
	g := &stubGame{events: []core.Event{{Kind: "game_over", Value: 10}}}
	m := newTestModel(g)
	m, _ = update(t, m, TickMsg(time.Now()))

	view := m.View()
	if !strings.Contains(view, "stub screen") {
		t.Error("view does not contain the game screen")
	}
	if !strings.Contains(view, "rotate") {
		t.Error("view does not contain the help footer")
	}
}
