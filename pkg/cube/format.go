package cube

import (
	"strings"
)

// Empty stickers are written as this letter while a state is being edited.
const emptyLetter = 'X'

// String returns the 54-character cube string: one face letter per
// sticker, naming the face whose solved color the sticker carries, in
// URFDLB order. This is the handoff format for external solvers.
func (c *Cube) String() string {
	var b strings.Builder
	b.Grow(54)
	for _, s := range c.stickers {
		if s.Valid() {
			b.WriteByte(faceLetters[s.Home()])
		} else {
			b.WriteByte(emptyLetter)
		}
	}
	return b.String()
}

// FaceletString is String with every sticker named after the face whose
// current center carries its color. It equals String while the centers
// sit at home; after slice moves or rotations it still describes the cube
// with U in position 4, F in 22 and so on. Colors no center carries are
// written as X.
func (c *Cube) FaceletString() string {
	var byColor [7]byte
	for i := range byColor {
		byColor[i] = emptyLetter
	}
	for _, f := range Faces {
		if center := c.stickers[f.Center()]; center.Valid() {
			byColor[center] = faceLetters[f]
		}
	}

	var b strings.Builder
	b.Grow(54)
	for _, s := range c.stickers {
		b.WriteByte(byColor[s])
	}
	return b.String()
}

// ParseState decodes a 54-character cube string.
func ParseState(s string) (State, error) {
	var st State
	if len(s) != 54 {
		return st, invalidState("cube string has %d characters, want 54", len(s))
	}
	for i := 0; i < 54; i++ {
		ch := s[i]
		if ch == emptyLetter {
			st[i] = Empty
			continue
		}
		f := strings.IndexByte(faceLetters, ch)
		if f < 0 {
			return st, invalidState("unexpected character %q at position %d", ch, i)
		}
		st[i] = Face(f).SolvedColor()
	}
	return st, nil
}

// SetString loads the state from a 54-character cube string.
func (c *Cube) SetString(s string) error {
	st, err := ParseState(s)
	if err != nil {
		return err
	}
	c.SetState(st)
	return nil
}

// FromString creates a cube from a 54-character cube string. The new
// cube's history starts at the loaded state.
func FromString(s string, opts ...Option) (*Cube, error) {
	st, err := ParseState(s)
	if err != nil {
		return nil, err
	}
	c := New(opts...)
	c.stickers = st
	c.history.Reset(st)
	return c, nil
}

// WebFaceNames are the keys of the web format, in URFDLB order.
var WebFaceNames = [6]string{"up", "right", "front", "down", "left", "back"}

// WebState maps a face name to its 9 color labels, row-major.
type WebState map[string][]string

// WebFormat returns the state in the structured web/GUI form.
func (c *Cube) WebFormat() WebState {
	out := make(WebState, 6)
	for _, face := range Faces {
		labels := make([]string, 9)
		for i := 0; i < 9; i++ {
			labels[i] = c.stickers[face.Slot(i)].String()
		}
		out[WebFaceNames[face]] = labels
	}
	return out
}

func parseWeb(w WebState) (State, error) {
	var st State
	if len(w) != 6 {
		return st, invalidState("web state has %d faces, want 6", len(w))
	}
	for _, face := range Faces {
		name := WebFaceNames[face]
		labels, ok := w[name]
		if !ok {
			return st, invalidState("missing face %q", name)
		}
		if len(labels) != 9 {
			return st, invalidState("face %q has %d stickers, want 9", name, len(labels))
		}
		for i, label := range labels {
			color, err := ParseColor(label)
			if err != nil {
				return st, invalidState("face %q position %d: %v", name, i, err)
			}
			st[face.Slot(i)] = color
		}
	}
	return st, nil
}

// SetWebFormat loads the state from the structured web/GUI form.
func (c *Cube) SetWebFormat(w WebState) error {
	st, err := parseWeb(w)
	if err != nil {
		return err
	}
	c.SetState(st)
	return nil
}

// FromWebFormat creates a cube from the structured web/GUI form.
func FromWebFormat(w WebState, opts ...Option) (*Cube, error) {
	st, err := parseWeb(w)
	if err != nil {
		return nil, err
	}
	c := New(opts...)
	c.stickers = st
	c.history.Reset(st)
	return c, nil
}
