package tetris

import (
	"slices"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Surface is a canvas addressed in board cells.
type Surface interface {
	Clear()
	FillCell(x, y int, c core.Color)
}

// flashColor paints rows that are about to be removed.
const flashColor = core.ColorBrightWhite

// View is a self-contained snapshot of one frame. Piece is nil whenever the
// active piece must not be drawn: outside StatePlaying and while clearing.
type View struct {
	State     State
	Board     Matrix
	Piece     *Piece
	Next      PieceType
	Score     int
	Clearing  bool
	ClearRows []int
	BlinkOn   bool
}

// Draw paints the well onto board and the queued piece onto preview.
func (v View) Draw(board, preview Surface) {
	board.Clear()
	for y, row := range v.Board {
		flash := v.Clearing && v.BlinkOn && slices.Contains(v.ClearRows, y)
		for x, c := range row {
			if c == Empty {
				continue
			}
			color := c.Color()
			if flash {
				color = flashColor
			}
			board.FillCell(x, y, color)
		}
	}

	if v.Piece != nil {
		v.Piece.Matrix.each(func(x, y int, c Cell) {
			board.FillCell(v.Piece.Pos.X+x, v.Piece.Pos.Y+y, c.Color())
		})
	}

	preview.Clear()
	if v.Next == 0 {
		return
	}
	mustCreatePiece(v.Next).each(func(x, y int, c Cell) {
		preview.FillCell(x, y, c.Color())
	})
}
