// Package console runs connect four games over a line-oriented terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/Ayross-237/Connect4/internal/command"
	"github.com/Ayross-237/Connect4/internal/game"
)

const (
	PlayerOneMoveMessage   = "Player 1 to move"
	PlayerTwoMoveMessage   = "Player 2 to move"
	EnterCommandMessage    = "Please enter action (h for help): "
	InvalidFormatMessage   = "Invalid command. Enter 'h' for valid command format"
	InvalidColumnMessage   = "Invalid column, please try again"
	FullColumnMessage      = "This column is full"
	EmptyColumnMessage     = "This column is empty"
	PlayerOneVictory       = "Player 1 wins!"
	PlayerTwoVictory       = "Player 2 wins!"
	DrawMessage            = "No one wins. It's a draw!"
	ContinueMessage        = "Would you like to play again? (y/n): "
	helpMessageFormat      = "Valid commands:\n  a<n>  add a piece to the top of column n\n  r<n>  remove the bottom piece of column n\n  h     show this help\n  q     quit the current game\nColumns run from 1 to %d. Connect %d to win.\n"
	continueAnswerLower    = "y"
	continueAnswerUpper    = "Y"
	sessionSummaryTemplate = "Games played: %d (player 1: %d, player 2: %d, draws: %d)\n"

	// longer lines are rejected as a whole and never parsed
	maxLineLength = 4096
)

var errLineTooLong = errors.New("input line too long")

type readResult struct {
	line string
	err  error
}

// Session is the interactive loop: games are played one after another until
// a player declines to continue or input runs out.
type Session struct {
	manager *game.Manager
	in      *bufio.Reader
	out     io.Writer
}

func NewSession(m *game.Manager, in io.Reader, out io.Writer) *Session {
	return &Session{manager: m, in: bufio.NewReaderSize(in, maxLineLength), out: out}
}

// Run plays games until the players stop. Reaching the end of input is a
// normal way to stop and is not reported as an error.
func (s *Session) Run(ctx context.Context) error {
	defer s.summary()
	for {
		if err := s.playGame(ctx); err != nil {
			s.abandon()
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		answer, err := s.prompt(ctx, ContinueMessage)
		if errors.Is(err, io.EOF) || errors.Is(err, errLineTooLong) {
			return nil
		}
		if err != nil {
			return err
		}
		if answer != continueAnswerLower && answer != continueAnswerUpper {
			return nil
		}
	}
}

func (s *Session) playGame(ctx context.Context) error {
	g := s.manager.NewGame()
	rules := g.Rules()
	if err := Render(s.out, g.Board()); err != nil {
		return err
	}

	for !g.Finished() {
		if g.CurrentPlayer() == game.PlayerOne {
			s.println(PlayerOneMoveMessage)
		} else {
			s.println(PlayerTwoMoveMessage)
		}

	turn:
		for {
			line, err := s.prompt(ctx, EnterCommandMessage)
			if errors.Is(err, errLineTooLong) {
				s.println(InvalidFormatMessage)
				continue
			}
			if err != nil {
				return err
			}
			cmd, err := command.Parse(line, rules.Size)
			switch {
			case errors.Is(err, command.ErrInvalidColumn):
				s.println(InvalidColumnMessage)
				continue
			case err != nil:
				s.println(InvalidFormatMessage)
				continue
			}

			_, err = s.manager.Handle(cmd)
			switch {
			case errors.Is(err, game.ErrColumnFull):
				s.println(FullColumnMessage)
				continue
			case errors.Is(err, game.ErrColumnEmpty):
				s.println(EmptyColumnMessage)
				continue
			case err != nil:
				return fmt.Errorf("apply %v: %w", cmd.Action, err)
			}

			switch cmd.Action {
			case game.ActionQuit:
				return nil
			case game.ActionHelp:
				fmt.Fprintf(s.out, helpMessageFormat, rules.Size, rules.RequiredLength)
			}
			break turn
		}

		if err := Render(s.out, g.Board()); err != nil {
			return err
		}
	}

	switch g.Outcome() {
	case game.PlayerOneWins:
		s.println(PlayerOneVictory)
	case game.PlayerTwoWins:
		s.println(PlayerTwoVictory)
	case game.Draw:
		s.println(DrawMessage)
	}
	return nil
}

// prompt writes msg and waits for the next line. A canceled ctx returns
// immediately even while the read is still blocked.
func (s *Session) prompt(ctx context.Context, msg string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	io.WriteString(s.out, msg)

	done := make(chan readResult, 1)
	go func() {
		line, err := s.readLine()
		done <- readResult{line, err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.line, r.err
	}
}

// readLine returns the next line without its terminator. A line that does
// not fit the buffer is consumed and reported as errLineTooLong.
func (s *Session) readLine() (string, error) {
	buf, err := s.in.ReadSlice('\n')
	if errors.Is(err, bufio.ErrBufferFull) {
		for errors.Is(err, bufio.ErrBufferFull) {
			_, err = s.in.ReadSlice('\n')
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errLineTooLong
	}
	switch {
	case errors.Is(err, io.EOF) && len(buf) == 0:
		return "", io.EOF
	case err != nil && !errors.Is(err, io.EOF):
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(string(buf), "\r\n"), nil
}

// abandon ends a game left unfinished by an input error so it is still
// tallied and reported.
func (s *Session) abandon() {
	g := s.manager.Current()
	if g == nil || g.Finished() {
		return
	}
	if _, err := s.manager.Handle(game.Quit()); err != nil {
		log.Printf("abandon game %s: %v", g.ID, err)
	}
}

func (s *Session) summary() {
	t := s.manager.Tally()
	if t.Played() == 0 {
		return
	}
	fmt.Fprintf(s.out, sessionSummaryTemplate, t.Played(), t.PlayerOneWins, t.PlayerTwoWins, t.Draws)
}

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}
