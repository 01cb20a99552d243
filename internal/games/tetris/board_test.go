package tetris

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePieceCatalog(t *testing.T) {
	ids := map[PieceType]Cell{
		PieceT: 1, PieceO: 2, PieceL: 3, PieceJ: 4, PieceI: 5, PieceS: 6, PieceZ: 7,
	}

	for _, r := range Pieces {
		pt := PieceType(r)
		m, err := CreatePiece(pt)
		require.NoError(t, err, pt)

		assert.Equal(t, m.Width(), m.Height(), "%s must be square", pt)
		count := 0
		m.each(func(_, _ int, v Cell) {
			assert.Equal(t, ids[pt], v, pt)
			count++
		})
		assert.Equal(t, 4, count, "%s must have four cells", pt)
	}
}

func TestCreatePieceUnknown(t *testing.T) {
	m, err := CreatePiece('X')
	assert.Nil(t, m)
	assert.True(t, errors.Is(err, ErrUnknownPieceType))
	assert.Panics(t, func() { mustCreatePiece('?') })
}

func TestCreatePieceReturnsFreshShapes(t *testing.T) {
	a := mustCreatePiece(PieceT)
	a.Rotate(1)
	b := mustCreatePiece(PieceT)
	assert.False(t, a.Equal(b), "rotating one shape must not affect the next")
}

func TestRotate(t *testing.T) {
	m := mustCreatePiece(PieceT)
	m.Rotate(1)
	assert.Equal(t, Matrix{
		{0, 1, 0},
		{1, 1, 0},
		{0, 1, 0},
	}, m)

	m = mustCreatePiece(PieceT)
	m.Rotate(-1)
	assert.Equal(t, Matrix{
		{0, 1, 0},
		{0, 1, 1},
		{0, 1, 0},
	}, m)
}

func TestRotateRoundTrip(t *testing.T) {
	for _, r := range Pieces {
		orig := mustCreatePiece(PieceType(r))

		m := orig.Clone()
		for range 4 {
			m.Rotate(1)
		}
		assert.True(t, orig.Equal(m), "%c: four clockwise turns", r)

		m.Rotate(1)
		m.Rotate(-1)
		assert.True(t, orig.Equal(m), "%c: clockwise then counter-clockwise", r)
	}
}

func TestCollides(t *testing.T) {
	b := NewBoard(10, 20)
	o := func(x, y int) *Piece {
		return &Piece{Matrix: mustCreatePiece(PieceO), Pos: Point{X: x, Y: y}}
	}

	assert.False(t, b.Collides(o(0, 0)))
	assert.False(t, b.Collides(o(8, 18)))
	assert.True(t, b.Collides(o(-1, 0)), "left wall")
	assert.True(t, b.Collides(o(9, 0)), "right wall")
	assert.True(t, b.Collides(o(0, 19)), "floor")
	assert.True(t, b.Collides(o(0, -1)), "above the top")

	// Only occupied cells count: the I piece's column is 1.
	i := &Piece{Matrix: mustCreatePiece(PieceI), Pos: Point{X: -1, Y: 0}}
	assert.False(t, b.Collides(i))

	b.Set(1, 1, 3)
	assert.True(t, b.Collides(o(0, 0)), "locked cell")
}

func TestBoardSetAndCell(t *testing.T) {
	b := NewBoard(4, 4)
	b.Set(-1, 0, 1)
	b.Set(4, 0, 1)
	b.Set(0, 4, 1)
	assert.True(t, b.Cells().Equal(NewMatrix(4, 4)), "out-of-bounds writes are ignored")

	b.Set(2, 3, 5)
	v, ok := b.Cell(2, 3)
	assert.True(t, ok)
	assert.Equal(t, Cell(5), v)

	_, ok = b.Cell(0, -1)
	assert.False(t, ok)

	b.Reset()
	assert.True(t, b.Cells().Equal(NewMatrix(4, 4)))
}

func TestMerge(t *testing.T) {
	b := NewBoard(4, 4)
	b.Merge(&Piece{Matrix: mustCreatePiece(PieceO), Pos: Point{X: 1, Y: 2}})

	assert.Equal(t, Matrix{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 2, 2, 0},
		{0, 2, 2, 0},
	}, b.Cells())
}

func fillRow(b *Board, y int, v Cell) {
	for x := range b.Width() {
		b.Set(x, y, v)
	}
}

func TestFullRows(t *testing.T) {
	b := NewBoard(10, 20)
	assert.Empty(t, b.FullRows())

	fillRow(b, 19, 1)
	fillRow(b, 17, 2)
	b.Set(0, 18, 3)
	assert.Equal(t, []int{17, 19}, b.FullRows())

	// The top row is never reported.
	fillRow(b, 0, 4)
	assert.Equal(t, []int{17, 19}, b.FullRows())
}

func TestRemoveRows(t *testing.T) {
	b := NewBoard(4, 4)
	b.Set(0, 0, 1)
	fillRow(b, 1, 2)
	b.Set(1, 2, 3)
	fillRow(b, 3, 4)

	b.RemoveRows([]int{1, 3})

	assert.Equal(t, Matrix{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 0, 0, 0},
		{0, 3, 0, 0},
	}, b.Cells())
}

func TestRemoveAdjacentRows(t *testing.T) {
	b := NewBoard(4, 5)
	b.Set(0, 0, 1)
	b.Set(1, 1, 2)
	fillRow(b, 2, 3)
	fillRow(b, 3, 4)
	b.Set(3, 4, 5)

	b.RemoveRows(b.FullRows())

	assert.Equal(t, Matrix{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 0, 5},
	}, b.Cells())
}

func TestRemoveRowsKeepsHeight(t *testing.T) {
	b := NewBoard(3, 6)
	for y := range 6 {
		fillRow(b, y, Cell(y+1))
	}
	b.RemoveRows([]int{1, 2, 3, 4, 5})

	assert.Equal(t, 6, b.Height())
	assert.Equal(t, 3, b.Width())
	// Only row 0 survives, pushed to the bottom.
	assert.Equal(t, []Cell{1, 1, 1}, b.Cells()[5])
	assert.Equal(t, []Cell{0, 0, 0}, b.Cells()[0])
}

func TestFullRowsIgnoresTopRow(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 0, 1)
	assert.Empty(t, b.FullRows())
}

func TestRemoveRowsOrderMatters(t *testing.T) {
	build := func() *Board {
		b := NewBoard(4, 4)
		b.Set(0, 0, 1)
		fillRow(b, 1, 2)
		b.Set(1, 2, 3)
		fillRow(b, 3, 4)
		return b
	}

	ascending := build()
	ascending.RemoveRows([]int{1, 3})

	// Removing the lower row first shifts row 1's contents to row 2,
	// so the second removal hits the wrong row.
	descending := build()
	descending.RemoveRows([]int{3})
	descending.RemoveRows([]int{1})

	assert.False(t, ascending.Cells().Equal(descending.Cells()))
	assert.Equal(t, Matrix{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 2, 2, 2},
		{0, 3, 0, 0},
	}, descending.Cells())
}
