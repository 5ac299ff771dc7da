package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Action is the kind of command a player issues on their turn.
type Action uint8

const (
	ActionDrop Action = iota + 1
	ActionRemove
	ActionHelp
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionDrop:
		return "drop"
	case ActionRemove:
		return "remove"
	case ActionHelp:
		return "help"
	case ActionQuit:
		return "quit"
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// Command is a validated player command. Column is 0-indexed and only
// meaningful for drop and remove.
type Command struct {
	Action Action
	Column int
}

func Drop(col int) Command { return Command{Action: ActionDrop, Column: col} }
func Remove(col int) Command { return Command{Action: ActionRemove, Column: col} }
func Help() Command { return Command{Action: ActionHelp} }
func Quit() Command { return Command{Action: ActionQuit} }

// MoveResult describes what a successfully applied command did.
type MoveResult struct {
	Command  Command
	Piece    Piece
	Outcome  Outcome
	Finished bool
	// Consumed is true when the command used up the player's turn.
	Consumed bool
}

// GameState is one game in progress. It owns its board exclusively.
type GameState struct {
	ID        string
	StartedAt time.Time
	EndedAt   time.Time
	Moves     int

	rules    Rules
	board    *Board
	scanner  Scanner
	current  Piece
	finished bool
	outcome  Outcome
}

func NewGameState(rules Rules) (*GameState, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &GameState{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		rules:     rules,
		board:     NewBoard(rules.Size),
		scanner:   NewScanner(rules.RequiredLength),
		current:   PlayerOne,
	}, nil
}

func (g *GameState) Rules() Rules { return g.rules }

func (g *GameState) CurrentPlayer() Piece { return g.current }

func (g *GameState) Finished() bool { return g.finished }

// Outcome is NoResult while the game runs and after a quit.
func (g *GameState) Outcome() Outcome { return g.outcome }

// Abandoned reports a game that was quit before anyone won.
func (g *GameState) Abandoned() bool { return g.finished && g.outcome == NoResult }

// Result names how a finished game ended: the outcome, or "abandoned".
func (g *GameState) Result() string {
	if g.Abandoned() {
		return "abandoned"
	}
	return g.outcome.String()
}

// Board returns a snapshot; mutating it does not affect the game.
func (g *GameState) Board() *Board { return g.board.Clone() }

func (g *GameState) WinningRuns() []Run { return g.scanner.Runs(g.board) }

func (g *GameState) Duration() time.Duration {
	if g.EndedAt.IsZero() {
		return time.Since(g.StartedAt)
	}
	return g.EndedAt.Sub(g.StartedAt)
}

// Apply executes cmd for the current player. A rejected drop or remove
// returns ErrColumnFull or ErrColumnEmpty and leaves the state untouched.
func (g *GameState) Apply(cmd Command) (MoveResult, error) {
	if g.finished {
		return MoveResult{}, ErrGameFinished
	}
	res := MoveResult{Command: cmd, Piece: g.current}

	switch cmd.Action {
	case ActionHelp:
		return res, nil
	case ActionQuit:
		g.finish(NoResult)
		res.Finished = true
		return res, nil
	case ActionDrop:
		if err := g.board.DropPiece(cmd.Column, g.current); err != nil {
			return MoveResult{}, err
		}
	case ActionRemove:
		if err := g.board.RemoveBottomPiece(cmd.Column); err != nil {
			return MoveResult{}, err
		}
	default:
		panic(fmt.Sprintf("game: unknown action %v", cmd.Action))
	}

	g.Moves++
	res.Consumed = true
	res.Outcome = g.scanner.Evaluate(g.board)
	if res.Outcome != NoResult {
		g.finish(res.Outcome)
		res.Finished = true
	}
	g.current = g.current.Opponent()
	return res, nil
}

func (g *GameState) finish(o Outcome) {
	g.finished = true
	g.outcome = o
	g.EndedAt = time.Now()
}
