package cube

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is reported (via errors.Is) for malformed cube strings
	// and web-format states.
	ErrInvalidState = errors.New("cube: invalid state")

	// ErrInvalidPosition is returned for face or sticker positions out of range.
	ErrInvalidPosition = errors.New("cube: invalid position")
)

// InvalidStateError describes why a serialized state was rejected.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cube: invalid state: %s", e.Reason)
}

// Is reports whether target is ErrInvalidState.
func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

func invalidState(format string, args ...any) error {
	return &InvalidStateError{Reason: fmt.Sprintf(format, args...)}
}
