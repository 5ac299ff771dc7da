package game

import (
	"errors"
	"fmt"
	"strings"
)

// Piece is the content of a single cell.
type Piece uint8

const (
	Empty Piece = iota
	PlayerOne
	PlayerTwo
)

var (
	ErrColumnFull   = errors.New("column is full")
	ErrColumnEmpty  = errors.New("column is empty")
	ErrGameFinished = errors.New("game already finished")
	ErrInvalidRules = errors.New("invalid rules")
)

func (p Piece) String() string {
	switch p {
	case PlayerOne:
		return "X"
	case PlayerTwo:
		return "O"
	default:
		return "-"
	}
}

// Opponent returns the other player's piece. Empty has no opponent.
func (p Piece) Opponent() Piece {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

// Board is a square grid of column stacks. Row 0 is the bottom of every
// column and empty cells always sit above every piece in that column.
type Board struct {
	size    int
	columns [][]Piece
}

func NewBoard(size int) *Board {
	if size <= 0 {
		panic(fmt.Sprintf("game: board size must be positive, got %d", size))
	}
	cells := make([]Piece, size*size)
	columns := make([][]Piece, size)
	for c := range columns {
		columns[c] = cells[c*size : (c+1)*size : (c+1)*size]
	}
	return &Board{size: size, columns: columns}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) IsColumnFull(col int) bool {
	return b.column(col)[b.size-1] != Empty
}

func (b *Board) IsColumnEmpty(col int) bool {
	return b.column(col)[0] == Empty
}

// Height returns the number of pieces stacked in col.
func (b *Board) Height(col int) int {
	column := b.column(col)
	for row, p := range column {
		if p == Empty {
			return row
		}
	}
	return b.size
}

// DropPiece places p in the lowest empty cell of col.
func (b *Board) DropPiece(col int, p Piece) error {
	if p == Empty {
		panic("game: cannot drop an empty piece")
	}
	if b.IsColumnFull(col) {
		return ErrColumnFull
	}
	b.columns[col][b.Height(col)] = p
	return nil
}

// RemoveBottomPiece pulls the piece at row 0 out of col. Everything above
// it falls one row and the top cell becomes empty.
func (b *Board) RemoveBottomPiece(col int) error {
	if b.IsColumnEmpty(col) {
		return ErrColumnEmpty
	}
	column := b.columns[col]
	copy(column, column[1:])
	column[b.size-1] = Empty
	return nil
}

func (b *Board) CellAt(col, row int) Piece {
	if row < 0 || row >= b.size {
		panic(fmt.Sprintf("game: row %d out of range [0,%d)", row, b.size))
	}
	return b.column(col)[row]
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	dest := NewBoard(b.size)
	for c := range b.columns {
		copy(dest.columns[c], b.columns[c])
	}
	return dest
}

// String renders one line per column, bottom cell first.
func (b *Board) String() string {
	var sb strings.Builder
	for c, column := range b.columns {
		if c > 0 {
			sb.WriteByte('\n')
		}
		for _, p := range column {
			sb.WriteString(p.String())
		}
	}
	return sb.String()
}

func (b *Board) inBounds(col, row int) bool {
	return col >= 0 && col < b.size && row >= 0 && row < b.size
}

func (b *Board) column(col int) []Piece {
	if col < 0 || col >= b.size {
		panic(fmt.Sprintf("game: column %d out of range [0,%d)", col, b.size))
	}
	return b.columns[col]
}
