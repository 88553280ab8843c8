package notation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove is reported (via errors.Is) for every token the grammar rejects.
	ErrInvalidMove = errors.New("notation: invalid move")

	// ErrUnknownAlgorithm is returned for a name missing from Algorithms.
	ErrUnknownAlgorithm = errors.New("notation: unknown algorithm")
)

// InvalidMoveError names the offending token and why it was rejected.
type InvalidMoveError struct {
	Token  string
	Reason string
}

func (e *InvalidMoveError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("notation: invalid move %q", e.Token)
	}
	return fmt.Sprintf("notation: invalid move %q: %s", e.Token, e.Reason)
}

// Is reports whether target is ErrInvalidMove.
func (e *InvalidMoveError) Is(target error) bool {
	return target == ErrInvalidMove
}

func invalid(token, reason string) error {
	return &InvalidMoveError{Token: token, Reason: reason}
}
