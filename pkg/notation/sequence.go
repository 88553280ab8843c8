package notation

import (
	"strings"
)

// ParseSequence parses a space-separated sequence of moves.
// Example: "R U R' U'"
// The first invalid token aborts parsing with an *InvalidMoveError.
func ParseSequence(s string) ([]Move, error) {
	return ParseTokens(strings.Fields(s))
}

// ParseTokens parses an already split token list.
func ParseTokens(tokens []string) ([]Move, error) {
	moves := make([]Move, 0, len(tokens))
	for _, tok := range tokens {
		m, err := Parse(tok)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// MustParseSequence is like ParseSequence but panics on error.
func MustParseSequence(s string) []Move {
	moves, err := ParseSequence(s)
	if err != nil {
		panic(err)
	}
	return moves
}

// Tokens returns the notation of every move.
func Tokens(moves []Move) []string {
	tokens := make([]string, len(moves))
	for i, m := range moves {
		tokens[i] = m.Notation()
	}
	return tokens
}

// FormatSequence formats a slice of moves as a space-separated notation string.
func FormatSequence(moves []Move) string {
	return strings.Join(Tokens(moves), " ")
}

// InvertSequence returns the sequence that undoes moves.
func InvertSequence(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// Commutator returns [A, B] = A B A' B'.
func Commutator(a, b []Move) []Move {
	out := make([]Move, 0, 2*(len(a)+len(b)))
	out = append(out, a...)
	out = append(out, b...)
	out = append(out, InvertSequence(a)...)
	out = append(out, InvertSequence(b)...)
	return out
}

// Conjugate returns A B A', which performs B from the position A sets up.
func Conjugate(setup, alg []Move) []Move {
	out := make([]Move, 0, 2*len(setup)+len(alg))
	out = append(out, setup...)
	out = append(out, alg...)
	out = append(out, InvertSequence(setup)...)
	return out
}

// wideSlice maps each outer face to the slice that a wide turn of that face
// drags along, and whether the slice turns in the face's own direction.
var wideSlice = map[Face]struct {
	slice Face
	same  bool
}{
	FaceR: {SliceM, false},
	FaceL: {SliceM, true},
	FaceU: {SliceE, false},
	FaceD: {SliceE, true},
	FaceF: {SliceS, true},
	FaceB: {SliceS, false},
}

// WideParts splits a wide move into its outer face turn and slice turn.
// r == R M', l == L M, u == U E', d == D E, f == F S, b == B S'.
func WideParts(w Move) (face, slice Move, ok bool) {
	ws, found := wideSlice[w.Face]
	if !w.Wide || !found {
		return Move{}, Move{}, false
	}
	face = Move{Face: w.Face, Turns: w.Turns}
	slice = Move{Face: ws.slice, Turns: w.Turns}
	if !ws.same {
		slice = slice.Inverse()
	}
	return face, slice, true
}

// ExpandWide replaces every wide move with its face and slice parts.
func ExpandWide(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if face, slice, ok := WideParts(m); ok {
			out = append(out, face, slice)
			continue
		}
		out = append(out, m)
	}
	return out
}
