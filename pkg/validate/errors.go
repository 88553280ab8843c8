package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubecore/pkg/cube"
)

// Sentinel errors for each validation outcome. Detailed errors report Is
// against these, so callers can branch with errors.Is.
var (
	ErrIncomplete      = errors.New("validate: cube has empty stickers")
	ErrWrongColorCount = errors.New("validate: wrong color count")
	ErrDuplicateCenter = errors.New("validate: duplicate center color")
	ErrCenterLayout    = errors.New("validate: centers match no orientation of a real cube")
	ErrInvalidPiece    = errors.New("validate: impossible piece")
	ErrBadEdgeParity   = errors.New("validate: odd number of flipped edges")
	ErrBadCornerParity = errors.New("validate: corner twist does not sum to a multiple of 3")
	ErrParityMismatch  = errors.New("validate: edge and corner permutation parities differ")
)

// ColorCountError reports a color that does not occur exactly 9 times.
type ColorCountError struct {
	Color cube.Color
	Count int
}

func (e *ColorCountError) Error() string {
	return fmt.Sprintf("validate: color %s appears %d times, expected 9", e.Color.Name(), e.Count)
}

// Is reports whether target is ErrWrongColorCount.
func (e *ColorCountError) Is(target error) bool {
	return target == ErrWrongColorCount
}

// DuplicateCenterError reports a color found on two centers.
type DuplicateCenterError struct {
	Color cube.Color
}

func (e *DuplicateCenterError) Error() string {
	return fmt.Sprintf("validate: duplicate center color %s", e.Color.Name())
}

// Is reports whether target is ErrDuplicateCenter.
func (e *DuplicateCenterError) Is(target error) bool {
	return target == ErrDuplicateCenter
}

// PieceError reports a location whose colors match no piece of the cube,
// a piece that occurs at two locations, or a corner whose colors run the
// wrong way round.
type PieceError struct {
	Kind     string // "edge" or "corner"
	Location string
	Colors   []cube.Color
}

func (e *PieceError) Error() string {
	if len(e.Colors) == 0 {
		return fmt.Sprintf("validate: %s at %s is impossible", e.Kind, e.Location)
	}
	names := make([]string, len(e.Colors))
	for i, c := range e.Colors {
		names[i] = c.Name()
	}
	return fmt.Sprintf("validate: %s at %s has impossible colors %s", e.Kind, e.Location, strings.Join(names, "/"))
}

// Is reports whether target is ErrInvalidPiece.
func (e *PieceError) Is(target error) bool {
	return target == ErrInvalidPiece
}
