package tetris

// Point is a position in board coordinates. A piece's Point is the
// top-left corner of its shape and may lie outside the board while
// a rotation kick is being searched.
type Point struct {
	X, Y int
}

// Piece is a shape placed at a board position.
type Piece struct {
	Matrix Matrix
	Pos    Point
}

// Board is the well of locked cells.
type Board struct {
	cells Matrix
}

// NewBoard creates an empty w-wide, h-tall board.
func NewBoard(w, h int) *Board {
	return &Board{cells: NewMatrix(w, h)}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.cells.Width()
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.cells.Height()
}

// Cell returns the value at (x, y). ok is false outside the board.
func (b *Board) Cell(x, y int) (v Cell, ok bool) {
	if y < 0 || y >= len(b.cells) {
		return Empty, false
	}
	row := b.cells[y]
	if x < 0 || x >= len(row) {
		return Empty, false
	}
	return row[x], true
}

// Set writes a value at (x, y). Out-of-bounds writes are ignored.
func (b *Board) Set(x, y int, v Cell) {
	if _, ok := b.Cell(x, y); ok {
		b.cells[y][x] = v
	}
}

// Cells returns a copy of the board contents.
func (b *Board) Cells() Matrix {
	return b.cells.Clone()
}

// Reset empties every cell in place.
func (b *Board) Reset() {
	for _, row := range b.cells {
		clear(row)
	}
}

// Collides reports whether any occupied cell of p lands outside the board
// or on a locked cell.
func (b *Board) Collides(p *Piece) bool {
	for y, row := range p.Matrix {
		for x, v := range row {
			if v == Empty {
				continue
			}
			locked, ok := b.Cell(p.Pos.X+x, p.Pos.Y+y)
			if !ok || locked != Empty {
				return true
			}
		}
	}
	return false
}

// Merge locks the occupied cells of p into the board.
func (b *Board) Merge(p *Piece) {
	p.Matrix.each(func(x, y int, v Cell) {
		b.Set(p.Pos.X+x, p.Pos.Y+y, v)
	})
}

// FullRows returns the indices of completely filled rows in ascending order.
// Row 0 is never reported.
func (b *Board) FullRows() []int {
	var rows []int
outer:
	for y := len(b.cells) - 1; y > 0; y-- {
		for _, v := range b.cells[y] {
			if v == Empty {
				continue outer
			}
		}
		rows = append(rows, y)
	}

	// Collected bottom-up; callers expect ascending indices.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}

// RemoveRows deletes the given rows, processing indices in ascending order,
// and inserts an empty row on top for each one. Rows above a removed row
// shift down, untouched rows keep their relative order.
func (b *Board) RemoveRows(rows []int) {
	for _, y := range rows {
		if y < 0 || y >= len(b.cells) {
			continue
		}
		row := b.cells[y]
		copy(b.cells[1:y+1], b.cells[:y])
		clear(row)
		b.cells[0] = row
	}
}
