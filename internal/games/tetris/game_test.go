package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// fakeSurface records painted cells.
type fakeSurface struct {
	cleared bool
	cells   map[Point]core.Color
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{cells: map[Point]core.Color{}}
}

func (f *fakeSurface) Clear() {
	f.cleared = true
	clear(f.cells)
}

func (f *fakeSurface) FillCell(x, y int, c core.Color) {
	f.cells[Point{X: x, Y: y}] = c
}

func TestViewDraw(t *testing.T) {
	board := NewMatrix(4, 4)
	board[3][0] = 1
	v := View{
		State: StatePlaying,
		Board: board,
		Piece: &Piece{Matrix: mustCreatePiece(PieceO), Pos: Point{X: 1, Y: 0}},
		Next:  PieceI,
	}

	b, p := newFakeSurface(), newFakeSurface()
	v.Draw(b, p)

	assert.True(t, b.cleared)
	assert.Equal(t, map[Point]core.Color{
		{X: 0, Y: 3}: core.ColorPink,
		{X: 1, Y: 0}: core.ColorBrightCyan,
		{X: 2, Y: 0}: core.ColorBrightCyan,
		{X: 1, Y: 1}: core.ColorBrightCyan,
		{X: 2, Y: 1}: core.ColorBrightCyan,
	}, b.cells)
	assert.Equal(t, map[Point]core.Color{
		{X: 1, Y: 0}: core.ColorOrange,
		{X: 1, Y: 1}: core.ColorOrange,
		{X: 1, Y: 2}: core.ColorOrange,
		{X: 1, Y: 3}: core.ColorOrange,
	}, p.cells)
}

func TestViewDrawFlash(t *testing.T) {
	board := NewMatrix(4, 4)
	for x := range 4 {
		board[3][x] = 3
	}
	board[2][1] = 3
	v := View{
		State:     StatePlaying,
		Board:     board,
		Clearing:  true,
		ClearRows: []int{3},
		BlinkOn:   true,
	}

	b, p := newFakeSurface(), newFakeSurface()
	v.Draw(b, p)
	assert.Equal(t, core.ColorBrightWhite, b.cells[Point{X: 0, Y: 3}])
	assert.Equal(t, core.ColorBrightGreen, b.cells[Point{X: 1, Y: 2}])
	assert.True(t, p.cleared)
	assert.Empty(t, p.cells, "nothing queued")

	v.BlinkOn = false
	v.Draw(b, p)
	assert.Equal(t, core.ColorBrightGreen, b.cells[Point{X: 0, Y: 3}])
}

func newTestGame(t *testing.T, w, h int) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 42})
	return g
}

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists("tetris"))
	g, err := registry.Create("tetris")
	require.NoError(t, err)
	assert.Equal(t, "tetris", g.ID())
	assert.Equal(t, "Tetris", g.Title())
}

func TestGameStartAndEvents(t *testing.T) {
	g := newTestGame(t, 80, 24)
	assert.Equal(t, StateTitle, g.Engine().State())

	res := g.Step(16*time.Millisecond, frame(core.ActionConfirm))
	assert.Equal(t, StatePlaying, g.Engine().State())
	assert.Equal(t, []string{EventStart}, eventKinds(res.Events))
	assert.False(t, res.State.GameOver)
	assert.False(t, res.State.Paused)
}

func TestGameTooSmall(t *testing.T) {
	g := newTestGame(t, 30, 10)
	assert.True(t, g.State().Paused)

	res := g.Step(time.Second, frame(core.ActionConfirm))
	assert.True(t, res.State.Paused)
	assert.Equal(t, StateTitle, g.Engine().State(), "frozen while too small")

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")

	g.Resize(80, 24)
	assert.False(t, g.State().Paused)
	g.Step(0, frame(core.ActionConfirm))
	assert.Equal(t, StatePlaying, g.Engine().State())
}

func TestResizeKeepsGame(t *testing.T) {
	g := newTestGame(t, 80, 24)
	g.Step(0, frame(core.ActionConfirm))
	g.Engine().score = 70

	g.Resize(100, 40)
	assert.Equal(t, StatePlaying, g.Engine().State())
	assert.Equal(t, 70, g.State().Score)
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 80, 24)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "Press Enter")
	assert.Contains(t, out, " NEXT ")
	assert.Contains(t, out, "Score: 0")

	g.Step(0, frame(core.ActionConfirm))
	g.Render(screen)
	out = screen.String()
	assert.NotContains(t, out, "Press Enter")
	assert.Contains(t, out, "██")

	lay := newLayout(10, 20, 80, 24)
	assert.Equal(t, '┌', screen.Get(lay.board.X, lay.board.Y))
	assert.Equal(t, '┘', screen.Get(lay.board.Right()-1, lay.board.Bottom()-1))
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, 80, 24)
	g.Step(0, frame(core.ActionConfirm))
	e := g.Engine()
	e.score = 150
	for x := range 10 {
		e.board.Set(x, 1, 6)
	}
	e.spawn()

	assert.True(t, g.State().GameOver)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
	assert.Contains(t, screen.String(), "Score: 150")
}

func TestLayout(t *testing.T) {
	lay := newLayout(10, 20, 80, 24)
	assert.True(t, lay.fits)
	assert.Equal(t, 22, lay.board.W)
	assert.Equal(t, 22, lay.board.H)
	assert.Equal(t, lay.board.Right()+panelGap, lay.panelX)
	assert.Equal(t, 10, lay.preview.W)

	assert.False(t, newLayout(10, 20, 80, 21).fits)
	assert.False(t, newLayout(10, 20, 37, 24).fits)
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(t, 80, 24)
	g2 := newTestGame(t, 80, 24)

	for i := range 300 {
		in := core.NewInputFrame()
		switch {
		case i == 0:
			in.Set(core.ActionConfirm)
		case i%7 == 0:
			in.Set(core.ActionRotateCW)
		case i%11 == 0:
			in.Set(core.ActionLeft)
		case i%13 == 0:
			in.Set(core.ActionDown)
		}
		g1.Step(16*time.Millisecond, in)
		g2.Step(16*time.Millisecond, in)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
	assert.Equal(t, "playing", g1.Snapshot().State)
}

func TestOptionsFromConfig(t *testing.T) {
	g := newTestGame(t, 80, 24)
	opts := OptionsFromConfig(g.cfg, 9)
	assert.Equal(t, 10, opts.Width)
	assert.Equal(t, 20, opts.Height)
	assert.Equal(t, time.Second, opts.DropInterval)
	assert.Equal(t, int64(9), opts.Seed)
}
