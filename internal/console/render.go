package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Ayross-237/Connect4/internal/game"
)

const (
	columnSeparator       = "|"
	columnNumberSeparator = " "
)

// Render writes the board top row first, followed by the 1-indexed column
// labels. Cells are padded so labels stay aligned on boards wider than 9.
func Render(w io.Writer, b *game.Board) error {
	size := b.Size()
	width := len(strconv.Itoa(size))

	var sb strings.Builder
	for row := size - 1; row >= 0; row-- {
		sb.WriteString(columnSeparator)
		for col := 0; col < size; col++ {
			fmt.Fprintf(&sb, "%*s%s", width, b.CellAt(col, row), columnSeparator)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(columnNumberSeparator)
	for col := 1; col <= size; col++ {
		fmt.Fprintf(&sb, "%*d%s", width, col, columnNumberSeparator)
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}
