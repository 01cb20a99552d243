package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth  = 2  // Screen columns per board cell
	previewN   = 4  // Preview area in cells; fits the largest shape
	panelGap   = 2  // Columns between the well and the side panel
	panelWidth = 14 // Side panel width, wide enough for the score line
	blockRune  = '█'
)

// layout places the well and the side panel on the screen.
type layout struct {
	board   core.Rect // Well including its border
	panelX  int
	preview core.Rect // Preview including its border
	fits    bool
}

// newLayout centres the well and the side panel on a screenW x screenH screen.
func newLayout(boardW, boardH, screenW, screenH int) layout {
	bw := boardW*cellWidth + 2
	bh := boardH + 2
	pw := previewN*cellWidth + 2
	ph := previewN + 2
	totalW := bw + panelGap + panelWidth

	x := (screenW - totalW) / 2
	y := (screenH - bh) / 2
	panelX := x + bw + panelGap

	return layout{
		board:   core.NewRect(x, y, bw, bh),
		panelX:  panelX,
		preview: core.NewRect(panelX, y+4, pw, ph),
		fits:    screenW >= totalW && screenH >= bh,
	}
}

// screenSurface paints board cells as two-column blocks inside a box.
type screenSurface struct {
	dst   *core.Screen
	inner core.Rect
}

// Clear blanks the area inside the box.
func (s screenSurface) Clear() {
	s.dst.DrawRect(s.inner, ' ')
}

// FillCell paints one cell. Cells outside the area are skipped.
func (s screenSurface) FillCell(x, y int, c core.Color) {
	sx := s.inner.X + x*cellWidth
	sy := s.inner.Y + y
	if !s.inner.Contains(sx, sy) {
		return
	}
	for i := range cellWidth {
		s.dst.SetColored(sx+i, sy, blockRune, c)
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.engine == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	lay := newLayout(g.engine.Board().Width(), g.engine.Board().Height(), g.screenW, g.screenH)
	v := g.engine.View()

	dst.DrawBox(lay.board)
	dst.DrawBox(lay.preview)
	dst.DrawText(lay.preview.X+2, lay.preview.Y, " NEXT ")

	board := screenSurface{dst: dst, inner: lay.board.Inset(1)}
	preview := screenSurface{dst: dst, inner: lay.preview.Inset(1)}
	v.Draw(board, preview)

	g.renderHUD(dst, lay, v)
	g.renderOverlay(dst, lay.board.Inset(1), v)
}

// renderHUD draws the title and score beside the well.
func (g *Game) renderHUD(dst *core.Screen, lay layout, v View) {
	dst.DrawText(lay.panelX, lay.board.Y, "TETRIS")
	dst.DrawText(lay.panelX, lay.board.Y+2, fmt.Sprintf("Score: %d", v.Score))
}

// renderOverlay shows the title and game-over messages over the well.
func (g *Game) renderOverlay(dst *core.Screen, inner core.Rect, v View) {
	var lines []string
	switch v.State {
	case StateTitle:
		lines = []string{"TETRIS", "", "Press Enter", "to start"}
	case StateGameOver:
		lines = []string{"GAME OVER", "", fmt.Sprintf("Score: %d", v.Score), "", "Enter: restart"}
	default:
		return
	}

	top := inner.Y + (inner.H-len(lines))/2
	bandTop := core.Max(inner.Y, top-1)
	bandBottom := core.Min(inner.Bottom(), top+len(lines)+1)
	dst.DrawRect(core.NewRect(inner.X, bandTop, inner.W, bandBottom-bandTop), ' ')
	for i, line := range lines {
		x := inner.X + (inner.W-len([]rune(line)))/2
		dst.DrawText(x, top+i, line)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(g.screenH/2, "Window too small")
	dst.DrawTextCentered(g.screenH/2+1, "Please resize terminal")
}
