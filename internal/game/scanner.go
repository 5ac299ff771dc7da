package game

import "fmt"

// Outcome is the result of evaluating a whole board.
type Outcome uint8

const (
	NoResult Outcome = iota
	PlayerOneWins
	PlayerTwoWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case PlayerOneWins:
		return "player_one_wins"
	case PlayerTwoWins:
		return "player_two_wins"
	case Draw:
		return "draw"
	default:
		return "no_result"
	}
}

// Winner returns the winning piece, or Empty for NoResult and Draw.
func (o Outcome) Winner() Piece {
	switch o {
	case PlayerOneWins:
		return PlayerOne
	case PlayerTwoWins:
		return PlayerTwo
	default:
		return Empty
	}
}

// Direction is a unit step in (column, row) space.
type Direction struct {
	DCol, DRow int
}

var (
	Vertical         = Direction{DCol: 0, DRow: 1}
	Horizontal       = Direction{DCol: -1, DRow: 0}
	DiagonalUpLeft   = Direction{DCol: -1, DRow: -1}
	DiagonalDownLeft = Direction{DCol: -1, DRow: 1}
)

var directions = [...]Direction{Vertical, Horizontal, DiagonalUpLeft, DiagonalDownLeft}

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case DiagonalUpLeft:
		return "diagonal-up-left"
	case DiagonalDownLeft:
		return "diagonal-down-left"
	}
	return fmt.Sprintf("(%d,%d)", d.DCol, d.DRow)
}

// Run is a maximal line of identical pieces starting at (Col, Row) and
// extending Length cells along Dir.
type Run struct {
	Owner  Piece
	Col    int
	Row    int
	Dir    Direction
	Length int
}

// Cells lists the coordinates covered by the run as (column, row) pairs.
func (r Run) Cells() [][2]int {
	cells := make([][2]int, r.Length)
	for i := range cells {
		cells[i] = [2]int{r.Col + i*r.Dir.DCol, r.Row + i*r.Dir.DRow}
	}
	return cells
}

// Scanner finds runs of at least RequiredLength pieces. It keeps no state
// between calls and never mutates the board.
type Scanner struct {
	RequiredLength int
}

func NewScanner(requiredLength int) Scanner {
	if requiredLength <= 0 {
		panic(fmt.Sprintf("game: required length must be positive, got %d", requiredLength))
	}
	return Scanner{RequiredLength: requiredLength}
}

// Evaluate reports which players currently own a qualifying run. If both
// do, the result is a Draw.
func (s Scanner) Evaluate(b *Board) Outcome {
	var one, two bool
	for _, r := range s.Runs(b) {
		switch r.Owner {
		case PlayerOne:
			one = true
		case PlayerTwo:
			two = true
		}
	}
	switch {
	case one && two:
		return Draw
	case one:
		return PlayerOneWins
	case two:
		return PlayerTwoWins
	}
	return NoResult
}

// Runs returns every maximal run on the board whose length reaches the
// required length. Each run is reported once, from its first cell.
func (s Scanner) Runs(b *Board) []Run {
	var runs []Run
	for col := 0; col < b.size; col++ {
		for row := 0; row < b.size; row++ {
			p := b.columns[col][row]
			if p == Empty {
				continue
			}
			for _, d := range directions {
				// only start counting at the first cell of a run
				if b.matches(col-d.DCol, row-d.DRow, p) {
					continue
				}
				if n := b.count(col, row, d, p); n >= s.RequiredLength {
					runs = append(runs, Run{Owner: p, Col: col, Row: row, Dir: d, Length: n})
				}
			}
		}
	}
	return runs
}

// count walks from (col, row) along d while cells hold p. The starting cell
// is counted.
func (b *Board) count(col, row int, d Direction, p Piece) int {
	n := 1
	for b.matches(col+n*d.DCol, row+n*d.DRow, p) {
		n++
	}
	return n
}

func (b *Board) matches(col, row int, p Piece) bool {
	return b.inBounds(col, row) && b.columns[col][row] == p
}
