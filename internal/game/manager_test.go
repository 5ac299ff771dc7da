package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerRejectsBadRules(t *testing.T) {
	_, err := NewManager(Rules{Size: 3, RequiredLength: 5}, Hooks{})
	assert.ErrorIs(t, err, ErrInvalidRules)
}

func TestManagerHandleWithoutGame(t *testing.T) {
	m, err := NewManager(DefaultRules(), Hooks{})
	require.NoError(t, err)
	assert.Nil(t, m.Current())

	_, err = m.Handle(Drop(0))
	assert.ErrorIs(t, err, ErrGameFinished)
}

func TestManagerHooksAndTally(t *testing.T) {
	var moves []MoveResult
	var finished []*GameState
	m, err := NewManager(Rules{Size: 4, RequiredLength: 2}, Hooks{
		OnMove:   func(_ *GameState, res MoveResult) { moves = append(moves, res) },
		OnFinish: func(g *GameState) { finished = append(finished, g) },
	})
	require.NoError(t, err)

	first := m.NewGame()
	_, err = m.Handle(Help())
	require.NoError(t, err)
	_, err = m.Handle(Remove(0))
	require.ErrorIs(t, err, ErrColumnEmpty)
	for _, cmd := range []Command{Drop(0), Drop(3), Drop(0)} {
		_, err = m.Handle(cmd)
		require.NoError(t, err)
	}
	assert.Len(t, moves, 3, "help and rejected moves are not reported")
	require.Len(t, finished, 1)
	assert.Same(t, first, finished[0])
	assert.Equal(t, PlayerOneWins, first.Outcome())

	second := m.NewGame()
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, second.Board().IsColumnEmpty(0), "each game gets a fresh board")

	_, err = m.Handle(Drop(1))
	require.NoError(t, err)
	third := m.NewGame()
	assert.True(t, second.Abandoned(), "starting a new game abandons the live one")
	assert.Same(t, third, m.Current())

	_, err = m.Handle(Quit())
	require.NoError(t, err)

	tally := m.Tally()
	assert.Equal(t, Tally{PlayerOneWins: 1, Abandoned: 2}, tally)
	assert.Equal(t, 3, tally.Played())
	assert.Len(t, finished, 3)
}
