// Package cube provides a 54-sticker 3x3 Rubik's cube model with a move
// engine, bounded undo/redo history and the cube string and web formats.
package cube

import (
	"fmt"
	"strings"
)

// Color represents a sticker color. The zero value is the Empty sentinel
// used while a state is being edited; it is never a valid label.
type Color byte

const (
	Empty  Color = iota
	White        // Up face when solved
	Red          // Right face when solved
	Green        // Front face when solved
	Yellow       // Down face when solved
	Orange       // Left face when solved
	Blue         // Back face when solved
)

// Colors lists the six valid labels in canonical face order.
var Colors = []Color{White, Red, Green, Yellow, Orange, Blue}

// Valid reports whether c is one of the six labels.
func (c Color) Valid() bool {
	return c >= White && c <= Blue
}

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Red:
		return "R"
	case Green:
		return "G"
	case Yellow:
		return "Y"
	case Orange:
		return "O"
	case Blue:
		return "B"
	default:
		return "X"
	}
}

// Name returns the lower-case color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Orange:
		return "orange"
	case Blue:
		return "blue"
	default:
		return "empty"
	}
}

// Home returns the face this color belongs to on a solved cube.
func (c Color) Home() Face {
	return Face(c - 1)
}

// ParseColor parses a color letter (W R G Y O B, X for empty) or a color name.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "white":
		return White, nil
	case "r", "red":
		return Red, nil
	case "g", "green":
		return Green, nil
	case "y", "yellow":
		return Yellow, nil
	case "o", "orange":
		return Orange, nil
	case "b", "blue":
		return Blue, nil
	case "x", "empty":
		return Empty, nil
	}
	return Empty, fmt.Errorf("unknown color %q", s)
}

// Face identifies one of the six 9-sticker blocks, in URFDLB order.
type Face int

const (
	U Face = 0 // Up (White)
	R Face = 1 // Right (Red)
	F Face = 2 // Front (Green)
	D Face = 3 // Down (Yellow)
	L Face = 4 // Left (Orange)
	B Face = 5 // Back (Blue)
)

// Faces lists the faces in canonical order.
var Faces = []Face{U, R, F, D, L, B}

const faceLetters = "URFDLB"

func (f Face) String() string {
	if f < U || f > B {
		return "?"
	}
	return faceLetters[f : f+1]
}

// SolvedColor returns the color of a face when solved.
func (f Face) SolvedColor() Color {
	return Color(f + 1)
}

// Slot returns the sticker index of position pos (0-8, row-major) on face f.
func (f Face) Slot(pos int) int {
	return int(f)*9 + pos
}

// Center returns the sticker index of the face's center.
func (f Face) Center() int {
	return f.Slot(4)
}
