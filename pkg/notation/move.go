// Package notation implements the move token grammar: parsing, printing,
// inversion and the face relations used by the optimizer and scrambler.
package notation

import (
	"strings"
)

// Face is the letter a move turns about: one of the six faces, the three
// slices or the three whole-cube rotations.
type Face string

const (
	FaceU Face = "U" // Up
	FaceR Face = "R" // Right
	FaceF Face = "F" // Front
	FaceD Face = "D" // Down
	FaceL Face = "L" // Left
	FaceB Face = "B" // Back

	SliceM Face = "M" // Middle, follows L
	SliceE Face = "E" // Equator, follows D
	SliceS Face = "S" // Standing, follows F

	RotX Face = "x" // Whole cube, follows R
	RotY Face = "y" // Whole cube, follows U
	RotZ Face = "z" // Whole cube, follows F
)

// Faces lists the six outer faces in canonical URFDLB order.
var Faces = []Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

// Turn is a clockwise quarter-turn count.
type Turn int

const (
	CW     Turn = 1 // Clockwise (90 degrees)
	Double Turn = 2 // Half turn (180 degrees)
	CCW    Turn = 3 // Counter-clockwise, three clockwise quarters
)

// Kind classifies a move by how many layers it turns.
type Kind int

const (
	KindBasic Kind = iota
	KindWide
	KindSlice
	KindRotation
)

func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindWide:
		return "wide"
	case KindSlice:
		return "slice"
	case KindRotation:
		return "rotation"
	default:
		return "unknown"
	}
}

// Axis groups faces that turn about the same line through the cube.
type Axis int

const (
	AxisUD Axis = iota
	AxisRL
	AxisFB
)

// Move is a single token: a face, a quarter-turn count in 1..3 and
// whether the turn is wide (face plus the adjacent slice).
type Move struct {
	Face  Face
	Turns Turn
	Wide  bool
}

// Kind returns the layer class of the move.
func (m Move) Kind() Kind {
	switch m.Face {
	case SliceM, SliceE, SliceS:
		return KindSlice
	case RotX, RotY, RotZ:
		return KindRotation
	}
	if m.Wide {
		return KindWide
	}
	return KindBasic
}

// Axis returns the rotation axis of the move.
func (m Move) Axis() Axis {
	switch m.Face {
	case FaceU, FaceD, SliceE, RotY:
		return AxisUD
	case FaceR, FaceL, SliceM, RotX:
		return AxisRL
	default:
		return AxisFB
	}
}

// Notation returns the token for this move.
// A wide move on face X is written lower-case.
func (m Move) Notation() string {
	face := string(m.Face)
	if m.Wide {
		face = strings.ToLower(face)
	}
	switch m.Turns {
	case Double:
		return face + "2"
	case CCW:
		return face + "'"
	}
	return face
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes m. Doubles are their own inverse.
func (m Move) Inverse() Move {
	inv := m
	inv.Turns = (4 - m.Turns) % 4
	if inv.Turns == 0 {
		inv.Turns = Double
	}
	return inv
}

// SameFace reports whether both moves turn exactly the same layers about
// the same face, so their turn counts can be added.
func (m Move) SameFace(other Move) bool {
	return m.Face == other.Face && m.Wide == other.Wide
}

// IsOpposite reports whether the moves are on geometrically parallel outer
// faces (U/D, F/B, R/L). A face is never opposite to itself.
func (m Move) IsOpposite(other Move) bool {
	opp, ok := Opposite(m.Face)
	return ok && opp == other.Face
}

// IsInverseOf reports whether applying other after m is the identity.
func (m Move) IsInverseOf(other Move) bool {
	return m.SameFace(other) && (m.Turns+other.Turns)%4 == 0
}

// Opposite returns the face parallel to f. Only the six outer faces have one.
func Opposite(f Face) (Face, bool) {
	switch f {
	case FaceU:
		return FaceD, true
	case FaceD:
		return FaceU, true
	case FaceF:
		return FaceB, true
	case FaceB:
		return FaceF, true
	case FaceR:
		return FaceL, true
	case FaceL:
		return FaceR, true
	}
	return "", false
}

// Combine folds two same-face moves into one. ok is false when the moves
// do not share a face; identity reports that the sum is a full turn.
func Combine(a, b Move) (m Move, identity bool, ok bool) {
	if !a.SameFace(b) {
		return Move{}, false, false
	}
	total := (a.Turns + b.Turns) % 4
	if total == 0 {
		return Move{}, true, true
	}
	m = a
	m.Turns = total
	return m, false, true
}

// Parse parses a single move token such as R, U', F2, r, M2 or x'.
func Parse(token string) (Move, error) {
	s := strings.TrimSpace(token)
	if len(s) == 0 {
		return Move{}, invalid(token, "empty token")
	}

	var m Move
	switch c := s[0]; c {
	case 'U', 'R', 'F', 'D', 'L', 'B':
		m.Face = Face(s[:1])
	case 'u', 'r', 'f', 'd', 'l', 'b':
		m.Face = Face(strings.ToUpper(s[:1]))
		m.Wide = true
	case 'M', 'E', 'S':
		m.Face = Face(s[:1])
	case 'x', 'y', 'z':
		m.Face = Face(s[:1])
	default:
		return Move{}, invalid(token, "unknown face")
	}

	m.Turns = CW
	switch s[1:] {
	case "":
	case "'", "`":
		m.Turns = CCW
	case "2", "2'", "2`":
		m.Turns = Double
	default:
		return Move{}, invalid(token, "unexpected modifier")
	}

	return m, nil
}

// MustParse is like Parse but panics on error. Intended for tables and tests.
func MustParse(token string) Move {
	m, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return m
}
