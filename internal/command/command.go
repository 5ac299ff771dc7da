// Package command parses the one-line commands typed by players.
//
//	a<n>, A<n>  drop a piece into column n
//	r<n>, R<n>  pull the bottom piece out of column n
//	h, H        help
//	q, Q        quit the current game
//
// Column numbers are 1-indexed.
package command

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Ayross-237/Connect4/internal/game"
)

var (
	ErrInvalidFormat = errors.New("invalid command format")
	ErrInvalidColumn = errors.New("invalid column")
)

// Parse validates line against a board of the given size and returns the
// matching game command with a 0-indexed column.
func Parse(line string, size int) (game.Command, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return game.Command{}, ErrInvalidFormat
	}

	verb, arg := line[0], line[1:]
	switch verb {
	case 'h', 'H':
		if arg != "" {
			return game.Command{}, ErrInvalidFormat
		}
		return game.Help(), nil
	case 'q', 'Q':
		if arg != "" {
			return game.Command{}, ErrInvalidFormat
		}
		return game.Quit(), nil
	case 'a', 'A', 'r', 'R':
	default:
		return game.Command{}, ErrInvalidFormat
	}

	if !isDigits(arg) {
		return game.Command{}, ErrInvalidFormat
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > size {
		return game.Command{}, ErrInvalidColumn
	}
	if verb == 'a' || verb == 'A' {
		return game.Drop(n - 1), nil
	}
	return game.Remove(n - 1), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
