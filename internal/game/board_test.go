package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertGravity fails if any column has a piece above an empty cell.
func assertGravity(t *testing.T, b *Board) {
	t.Helper()
	for c := 0; c < b.Size(); c++ {
		seenEmpty := false
		for r := 0; r < b.Size(); r++ {
			if b.CellAt(c, r) == Empty {
				seenEmpty = true
				continue
			}
			require.Falsef(t, seenEmpty, "column %d has a floating piece at row %d\n%s", c, r, b)
		}
	}
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard(5)
	require.Equal(t, 5, b.Size())
	for c := 0; c < 5; c++ {
		assert.True(t, b.IsColumnEmpty(c))
		assert.False(t, b.IsColumnFull(c))
		for r := 0; r < 5; r++ {
			assert.Equal(t, Empty, b.CellAt(c, r))
		}
	}
}

func TestNewBoardRejectsNonPositiveSize(t *testing.T) {
	assert.Panics(t, func() { NewBoard(0) })
	assert.Panics(t, func() { NewBoard(-3) })
}

func TestDropPieceStacksFromBottom(t *testing.T) {
	b := NewBoard(4)
	require.NoError(t, b.DropPiece(1, PlayerOne))
	require.NoError(t, b.DropPiece(1, PlayerTwo))

	assert.Equal(t, PlayerOne, b.CellAt(1, 0))
	assert.Equal(t, PlayerTwo, b.CellAt(1, 1))
	assert.Equal(t, Empty, b.CellAt(1, 2))
	assert.Equal(t, 2, b.Height(1))
	assert.True(t, b.IsColumnEmpty(0))
	assert.True(t, b.IsColumnEmpty(2))
}

func TestDropPieceCapacity(t *testing.T) {
	b := NewBoard(6)
	for i := 0; i < 6; i++ {
		require.False(t, b.IsColumnFull(3))
		require.NoError(t, b.DropPiece(3, PlayerTwo))
	}
	assert.True(t, b.IsColumnFull(3))

	before := b.String()
	err := b.DropPiece(3, PlayerOne)
	assert.ErrorIs(t, err, ErrColumnFull)
	assert.Equal(t, before, b.String(), "failed drop must not modify the board")
}

func TestRemoveBottomPieceShiftsDown(t *testing.T) {
	b := NewBoard(4)
	require.NoError(t, b.DropPiece(0, PlayerOne))
	require.NoError(t, b.DropPiece(0, PlayerTwo))
	require.NoError(t, b.DropPiece(0, PlayerTwo))

	require.NoError(t, b.RemoveBottomPiece(0))
	assert.Equal(t, PlayerTwo, b.CellAt(0, 0))
	assert.Equal(t, PlayerTwo, b.CellAt(0, 1))
	assert.Equal(t, Empty, b.CellAt(0, 2))
	assert.Equal(t, Empty, b.CellAt(0, 3))
	assertGravity(t, b)
}

func TestRemoveBottomPieceFromFullColumn(t *testing.T) {
	b := NewBoard(3)
	for _, p := range []Piece{PlayerOne, PlayerTwo, PlayerOne} {
		require.NoError(t, b.DropPiece(2, p))
	}
	require.NoError(t, b.RemoveBottomPiece(2))

	assert.Equal(t, PlayerTwo, b.CellAt(2, 0))
	assert.Equal(t, PlayerOne, b.CellAt(2, 1))
	assert.Equal(t, Empty, b.CellAt(2, 2))
	assert.False(t, b.IsColumnFull(2))
}

func TestRemoveBottomPieceFromEmptyColumn(t *testing.T) {
	b := NewBoard(3)
	require.NoError(t, b.DropPiece(0, PlayerOne))

	err := b.RemoveBottomPiece(1)
	assert.ErrorIs(t, err, ErrColumnEmpty)
	assert.Equal(t, PlayerOne, b.CellAt(0, 0))
}

func TestDropThenRemoveRoundTrip(t *testing.T) {
	b := NewBoard(5)
	require.NoError(t, b.DropPiece(4, PlayerTwo))
	require.NoError(t, b.RemoveBottomPiece(4))
	for r := 0; r < 5; r++ {
		assert.Equal(t, Empty, b.CellAt(4, r))
	}
	assert.True(t, b.IsColumnEmpty(4))
}

func TestGravityHoldsUnderMixedMoves(t *testing.T) {
	b := NewBoard(5)
	moves := []struct {
		drop bool
		col  int
	}{
		{true, 0}, {true, 0}, {true, 1}, {false, 0}, {true, 0},
		{true, 2}, {false, 2}, {false, 2}, {true, 1}, {true, 1},
		{false, 1}, {true, 4}, {true, 4}, {true, 4}, {true, 4},
		{true, 4}, {true, 4}, {false, 4}, {false, 3}, {true, 3},
	}
	p := PlayerOne
	for i, m := range moves {
		if m.drop {
			_ = b.DropPiece(m.col, p)
		} else {
			_ = b.RemoveBottomPiece(m.col)
		}
		p = p.Opponent()
		t.Logf("after move %d:\n%s", i, b)
		assertGravity(t, b)
	}
}

func TestOutOfRangeColumnPanics(t *testing.T) {
	b := NewBoard(4)
	assert.Panics(t, func() { b.IsColumnFull(4) })
	assert.Panics(t, func() { b.IsColumnEmpty(-1) })
	assert.Panics(t, func() { _ = b.DropPiece(7, PlayerOne) })
	assert.Panics(t, func() { _ = b.RemoveBottomPiece(-2) })
	assert.Panics(t, func() { b.CellAt(0, 4) })
	assert.Panics(t, func() { _ = b.DropPiece(0, Empty) })
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard(4)
	require.NoError(t, b.DropPiece(0, PlayerOne))

	c := b.Clone()
	require.NoError(t, c.DropPiece(0, PlayerTwo))
	require.NoError(t, c.RemoveBottomPiece(0))

	assert.Equal(t, PlayerOne, b.CellAt(0, 0))
	assert.Equal(t, Empty, b.CellAt(0, 1))
	assert.Equal(t, PlayerTwo, c.CellAt(0, 0))
}

func TestPieceOpponent(t *testing.T) {
	assert.Equal(t, PlayerTwo, PlayerOne.Opponent())
	assert.Equal(t, PlayerOne, PlayerTwo.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
	assert.Equal(t, "X", PlayerOne.String())
	assert.Equal(t, "O", PlayerTwo.String())
	assert.Equal(t, "-", Empty.String())
}
