package tetris

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ErrUnknownPieceType is returned by CreatePiece for letters outside the catalog.
var ErrUnknownPieceType = errors.New("tetris: unknown piece type")

// PieceType is one of the seven tetromino letters.
type PieceType byte

const (
	PieceT PieceType = 'T'
	PieceJ PieceType = 'J'
	PieceL PieceType = 'L'
	PieceO PieceType = 'O'
	PieceS PieceType = 'S'
	PieceZ PieceType = 'Z'
	PieceI PieceType = 'I'
)

// Pieces is the bag the spawner draws from, uniformly and independently.
const Pieces = "TJLOSZI"

// String returns the letter.
func (p PieceType) String() string {
	return string(p)
}

// CreatePiece returns a fresh shape for the given letter. Every occupied
// cell carries the letter's catalog id (T=1, O=2, L=3, J=4, I=5, S=6, Z=7).
func CreatePiece(t PieceType) (Matrix, error) {
	switch t {
	case PieceT:
		return Matrix{
			{0, 0, 0},
			{1, 1, 1},
			{0, 1, 0},
		}, nil
	case PieceO:
		return Matrix{
			{2, 2},
			{2, 2},
		}, nil
	case PieceL:
		return Matrix{
			{0, 3, 0},
			{0, 3, 0},
			{0, 3, 3},
		}, nil
	case PieceJ:
		return Matrix{
			{0, 4, 0},
			{0, 4, 0},
			{4, 4, 0},
		}, nil
	case PieceI:
		return Matrix{
			{0, 5, 0, 0},
			{0, 5, 0, 0},
			{0, 5, 0, 0},
			{0, 5, 0, 0},
		}, nil
	case PieceS:
		return Matrix{
			{0, 6, 6},
			{6, 6, 0},
			{0, 0, 0},
		}, nil
	case PieceZ:
		return Matrix{
			{7, 7, 0},
			{0, 7, 7},
			{0, 0, 0},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPieceType, rune(t))
	}
}

// mustCreatePiece panics on an unknown letter. The spawner only draws from
// Pieces, so reaching the panic is a programming error.
func mustCreatePiece(t PieceType) Matrix {
	m, err := CreatePiece(t)
	if err != nil {
		panic(err)
	}
	return m
}

// Cell is a board or shape value: 0 is empty, 1..7 is a piece id.
type Cell uint8

// Empty is the value of an unoccupied cell.
const Empty Cell = 0

// cellColors is indexed by Cell.
var cellColors = [...]core.Color{
	core.ColorDefault,
	core.ColorPink,          // T
	core.ColorBrightCyan,    // O
	core.ColorBrightGreen,   // L
	core.ColorBrightMagenta, // J
	core.ColorOrange,        // I
	core.ColorBrightYellow,  // S
	core.ColorBrightBlue,    // Z
}

// Color returns the display color for the cell.
func (c Cell) Color() core.Color {
	if int(c) >= len(cellColors) {
		return core.ColorDefault
	}
	return cellColors[c]
}
