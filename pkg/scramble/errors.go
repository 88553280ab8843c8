package scramble

import "errors"

var (
	// ErrNegativeLength is returned when a scramble length below zero is requested.
	ErrNegativeLength = errors.New("scramble: negative length")

	// ErrMoveSetExhausted is returned when the configured move set leaves no
	// legal continuation, e.g. a set containing only U and D turns.
	ErrMoveSetExhausted = errors.New("scramble: move set has no legal next move")
)
