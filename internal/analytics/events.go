package analytics

import (
	"time"

	"github.com/Ayross-237/Connect4/internal/game"
)

const (
	EventMovePlayed   = "move_played"
	EventGameFinished = "game_finished"
)

type Event struct {
	Event     string         `json:"event"`
	Payload   map[string]any `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

// MovePayload describes a successful drop or remove.
func MovePayload(g *game.GameState, res game.MoveResult) map[string]any {
	return map[string]any{
		"gameId":  g.ID,
		"action":  res.Command.Action.String(),
		"column":  res.Command.Column + 1,
		"piece":   res.Piece.String(),
		"outcome": res.Outcome.String(),
		"moves":   g.Moves,
	}
}

// FinishedPayload describes a game that has ended, including quits.
func FinishedPayload(g *game.GameState) map[string]any {
	winner := ""
	if w := g.Outcome().Winner(); w != game.Empty {
		winner = w.String()
	}
	rules := g.Rules()
	return map[string]any{
		"gameId":    g.ID,
		"outcome":   g.Result(),
		"winner":    winner,
		"moves":     g.Moves,
		"boardSize": rules.Size,
		"winLength": rules.RequiredLength,
		"duration":  g.Duration().Seconds(),
		"startedAt": g.StartedAt,
		"endedAt":   g.EndedAt,
	}
}
