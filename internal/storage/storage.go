package storage

import (
	"context"
	"time"

	"github.com/Ayross-237/Connect4/internal/game"
)

// CompletedGame is the archived summary of a finished game. The board
// itself is never stored.
type CompletedGame struct {
	ID        string    `json:"id"`
	Outcome   string    `json:"outcome"`
	Winner    string    `json:"winner"`
	Moves     int       `json:"moves"`
	BoardSize int       `json:"boardSize"`
	WinLength int       `json:"winLength"`
	StartedAt time.Time `json:"startedAt"`
	EndedAt   time.Time `json:"endedAt"`
}

// Standings aggregates every archived game plus the most recent ones.
type Standings struct {
	PlayerOneWins int             `json:"playerOneWins"`
	PlayerTwoWins int             `json:"playerTwoWins"`
	Draws         int             `json:"draws"`
	Abandoned     int             `json:"abandoned"`
	Recent        []CompletedGame `json:"recent"`
}

type Store interface {
	SaveGame(ctx context.Context, game CompletedGame) error
	Standings(ctx context.Context, limit int) (Standings, error)
}

// FromGame summarises a finished game.
func FromGame(g *game.GameState) CompletedGame {
	rules := g.Rules()
	winner := ""
	if w := g.Outcome().Winner(); w != game.Empty {
		winner = w.String()
	}
	return CompletedGame{
		ID:        g.ID,
		Outcome:   g.Result(),
		Winner:    winner,
		Moves:     g.Moves,
		BoardSize: rules.Size,
		WinLength: rules.RequiredLength,
		StartedAt: g.StartedAt,
		EndedAt:   g.EndedAt,
	}
}

func (s *Standings) add(outcome string, n int) {
	switch outcome {
	case game.PlayerOneWins.String():
		s.PlayerOneWins += n
	case game.PlayerTwoWins.String():
		s.PlayerTwoWins += n
	case game.Draw.String():
		s.Draws += n
	default:
		s.Abandoned += n
	}
}
