package game

import "fmt"

const (
	DefaultBoardSize      = 8
	DefaultRequiredLength = 4
)

// Rules fixes the board size and the run length needed to win for a whole
// session. The two values are independent.
type Rules struct {
	Size           int
	RequiredLength int
}

func DefaultRules() Rules {
	return Rules{Size: DefaultBoardSize, RequiredLength: DefaultRequiredLength}
}

func (r Rules) Validate() error {
	switch {
	case r.Size <= 0:
		return fmt.Errorf("%w: board size %d must be positive", ErrInvalidRules, r.Size)
	case r.RequiredLength <= 0:
		return fmt.Errorf("%w: win length %d must be positive", ErrInvalidRules, r.RequiredLength)
	case r.RequiredLength > r.Size:
		return fmt.Errorf("%w: win length %d exceeds board size %d", ErrInvalidRules, r.RequiredLength, r.Size)
	}
	return nil
}
