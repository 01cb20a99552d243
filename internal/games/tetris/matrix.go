package tetris

import "slices"

// Matrix is a rectangular grid of cells in row-major order: m[y][x].
// The board and every piece shape use it.
type Matrix [][]Cell

// NewMatrix creates a w-wide, h-tall matrix of empty cells.
func NewMatrix(w, h int) Matrix {
	m := make(Matrix, h)
	for y := range m {
		m[y] = make([]Cell, w)
	}
	return m
}

// Width returns the number of columns.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the number of rows.
func (m Matrix) Height() int {
	return len(m)
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	c := make(Matrix, len(m))
	for y, row := range m {
		c[y] = slices.Clone(row)
	}
	return c
}

// Equal reports whether both matrices hold the same cells.
func (m Matrix) Equal(other Matrix) bool {
	return slices.EqualFunc(m, other, func(a, b []Cell) bool {
		return slices.Equal(a, b)
	})
}

// Rotate turns a square matrix a quarter turn in place: clockwise for
// dir > 0, counter-clockwise for dir < 0.
func (m Matrix) Rotate(dir int) {
	for y := range m {
		for x := range y {
			m[x][y], m[y][x] = m[y][x], m[x][y]
		}
	}

	if dir > 0 {
		for _, row := range m {
			slices.Reverse(row)
		}
	} else {
		slices.Reverse(m)
	}
}

// each calls fn for every occupied cell with its local coordinates.
func (m Matrix) each(fn func(x, y int, v Cell)) {
	for y, row := range m {
		for x, v := range row {
			if v != Empty {
				fn(x, y, v)
			}
		}
	}
}
