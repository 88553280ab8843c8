package notation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormatRoundTrip(t *testing.T) {
	tokens := []string{
		"U", "U'", "U2", "R", "R'", "R2", "F", "F'", "F2",
		"D", "D'", "D2", "L", "L'", "L2", "B", "B'", "B2",
		"u", "r'", "f2", "d", "l'", "b2",
		"M", "M'", "M2", "E", "E'", "S2",
		"x", "y'", "z2",
	}
	for _, tok := range tokens {
		m, err := Parse(tok)
		require.NoError(t, err, tok)
		assert.Equal(t, tok, m.Notation())
	}
}

func TestParseAlternateSpellings(t *testing.T) {
	assert.Equal(t, Move{Face: FaceR, Turns: CCW}, MustParse("R`"))
	assert.Equal(t, Move{Face: FaceR, Turns: Double}, MustParse("R2'"))
	assert.Equal(t, Move{Face: FaceR, Turns: CW}, MustParse("  R "))
	assert.Equal(t, Move{Face: FaceR, Turns: CW, Wide: true}, MustParse("r"))
}

func TestParseRejects(t *testing.T) {
	for _, tok := range []string{"", "Q", "X", "m", "R3", "R''", "Rw", "U2U"} {
		_, err := Parse(tok)
		require.Error(t, err, tok)
		assert.True(t, errors.Is(err, ErrInvalidMove), tok)

		var ime *InvalidMoveError
		require.True(t, errors.As(err, &ime))
		assert.Equal(t, tok, ime.Token)
	}
}

func TestInverse(t *testing.T) {
	cases := map[string]string{
		"R":  "R'",
		"R'": "R",
		"R2": "R2",
		"r":  "r'",
		"M'": "M",
		"x2": "x2",
	}
	for in, want := range cases {
		assert.Equal(t, want, MustParse(in).Inverse().Notation(), in)
		assert.True(t, MustParse(in).IsInverseOf(MustParse(want)), in)
	}
}

func TestOpposite(t *testing.T) {
	assert.True(t, MustParse("U").IsOpposite(MustParse("D'")))
	assert.True(t, MustParse("F2").IsOpposite(MustParse("B")))
	assert.True(t, MustParse("L").IsOpposite(MustParse("R")))
	assert.False(t, MustParse("U").IsOpposite(MustParse("U")))
	assert.False(t, MustParse("U").IsOpposite(MustParse("F")))
	assert.False(t, MustParse("M").IsOpposite(MustParse("M")))

	_, ok := Opposite(RotX)
	assert.False(t, ok)
}

func TestCombine(t *testing.T) {
	m, identity, ok := Combine(MustParse("U"), MustParse("U"))
	require.True(t, ok)
	assert.False(t, identity)
	assert.Equal(t, "U2", m.Notation())

	m, _, _ = Combine(MustParse("U2"), MustParse("U"))
	assert.Equal(t, "U'", m.Notation())

	_, identity, ok = Combine(MustParse("U2"), MustParse("U2"))
	assert.True(t, ok)
	assert.True(t, identity)

	_, _, ok = Combine(MustParse("r"), MustParse("R"))
	assert.False(t, ok, "wide and basic turns are different layers")
}

func TestKindAndAxis(t *testing.T) {
	assert.Equal(t, KindBasic, MustParse("R").Kind())
	assert.Equal(t, KindWide, MustParse("r").Kind())
	assert.Equal(t, KindSlice, MustParse("M").Kind())
	assert.Equal(t, KindRotation, MustParse("x").Kind())

	assert.Equal(t, AxisRL, MustParse("M").Axis())
	assert.Equal(t, AxisUD, MustParse("y").Axis())
	assert.Equal(t, AxisFB, MustParse("S").Axis())
}
