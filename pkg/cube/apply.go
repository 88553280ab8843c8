package cube

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubecore/pkg/notation"
)

// turn applies one clockwise quarter of m's face. Counter-clockwise and
// double turns repeat it, so the generated cycle tables stay the only
// description of every move.
func (c *Cube) turn(m notation.Move) {
	s := &c.stickers
	for _, cy := range turnCycles[turnKey{face: m.Face, wide: m.Kind() == notation.KindWide}] {
		t := s[cy[3]]
		s[cy[3]] = s[cy[2]]
		s[cy[2]] = s[cy[1]]
		s[cy[1]] = s[cy[0]]
		s[cy[0]] = t
	}
}

func (c *Cube) move(m notation.Move) {
	for i := notation.Turn(0); i < m.Turns; i++ {
		c.turn(m)
	}
}

// ApplyMove applies a move and records a history snapshot.
func (c *Cube) ApplyMove(m notation.Move) {
	c.move(m)
	c.commit()
}

// Apply applies moves in order as a single history step.
//
//	c.Apply(notation.MustParseSequence("R U R' U'")...)
func (c *Cube) Apply(moves ...notation.Move) {
	if len(moves) == 0 {
		return
	}
	for _, m := range moves {
		c.move(m)
	}
	c.commit()
}

// ApplyToken parses and applies a single move token.
func (c *Cube) ApplyToken(token string) error {
	m, err := notation.Parse(token)
	if err != nil {
		return err
	}
	c.ApplyMove(m)
	return nil
}

// ApplySequence applies a space-separated move sequence left to right as a
// single history step. It is not atomic: if token k is invalid the moves
// before it stay applied and the returned error names token k.
func (c *Cube) ApplySequence(seq string) error {
	return c.ApplyTokens(strings.Fields(seq))
}

// ApplyTokens is ApplySequence for an already split token list.
func (c *Cube) ApplyTokens(tokens []string) error {
	applied := 0
	defer func() {
		if applied > 0 {
			c.commit()
		}
	}()

	for i, tok := range tokens {
		m, err := notation.Parse(tok)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		c.move(m)
		applied++
	}
	return nil
}

// ApplyAlgorithm applies a sequence from notation.Algorithms as a single
// history step.
func (c *Cube) ApplyAlgorithm(name string) error {
	moves, err := notation.Algorithm(name)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}
