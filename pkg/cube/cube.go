package cube

import (
	"fmt"
	"strings"
)

// Cube represents a 3x3 Rubik's cube as 54 sticker slots.
// Faces are stored in URFDLB order, 9 slots each, row-major as the face
// appears in the unfolded net:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Position 4 is the face's center.
//
// A Cube is not safe for concurrent use; hand other goroutines a Copy.
type Cube struct {
	stickers State
	history  *History
}

// New creates a solved cube with standard orientation:
// White on top, Green in front.
func New(opts ...Option) *Cube {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	c := &Cube{history: newHistory(cfg.historyCap)}
	c.Reset()
	return c
}

func solvedState() State {
	var s State
	for _, face := range Faces {
		for i := 0; i < 9; i++ {
			s[face.Slot(i)] = face.SolvedColor()
		}
	}
	return s
}

// Reset fills every face with its solved color and clears the history.
func (c *Cube) Reset() {
	c.stickers = solvedState()
	c.history.Reset(c.stickers)
}

// Clear sets every sticker to Empty, ready for manual entry.
func (c *Cube) Clear() {
	c.stickers = State{}
	c.commit()
}

// commit records the current stickers as a new history snapshot.
func (c *Cube) commit() {
	c.history.Push(c.stickers)
}

// Copy returns a fully independent cube, including its own history.
func (c *Cube) Copy() *Cube {
	return &Cube{stickers: c.stickers, history: c.history.clone()}
}

// State returns a copy of the 54 stickers.
func (c *Cube) State() State {
	return c.stickers
}

// SetState replaces all 54 stickers.
func (c *Cube) SetState(s State) {
	c.stickers = s
	c.commit()
}

// Sticker returns the color at position pos (0-8) of face f.
func (c *Cube) Sticker(f Face, pos int) (Color, error) {
	if err := checkPosition(f, pos); err != nil {
		return Empty, err
	}
	return c.stickers[f.Slot(pos)], nil
}

// SetSticker sets the color at position pos (0-8) of face f.
func (c *Cube) SetSticker(f Face, pos int, color Color) error {
	if err := checkPosition(f, pos); err != nil {
		return err
	}
	c.stickers[f.Slot(pos)] = color
	c.commit()
	return nil
}

// FaceColors returns the 9 colors of face f.
func (c *Cube) FaceColors(f Face) [9]Color {
	var out [9]Color
	copy(out[:], c.stickers[f.Slot(0):f.Slot(9)])
	return out
}

// SetFace sets all 9 colors of face f.
func (c *Cube) SetFace(f Face, colors [9]Color) error {
	if err := checkPosition(f, 0); err != nil {
		return err
	}
	copy(c.stickers[f.Slot(0):f.Slot(9)], colors[:])
	c.commit()
	return nil
}

func checkPosition(f Face, pos int) error {
	if f < U || f > B {
		return fmt.Errorf("%w: face %d", ErrInvalidPosition, int(f))
	}
	if pos < 0 || pos > 8 {
		return fmt.Errorf("%w: position %d", ErrInvalidPosition, pos)
	}
	return nil
}

// IsSolved returns true if every face is a single color.
func (c *Cube) IsSolved() bool {
	for _, face := range Faces {
		first := c.stickers[face.Slot(0)]
		if !first.Valid() {
			return false
		}
		for i := 1; i < 9; i++ {
			if c.stickers[face.Slot(i)] != first {
				return false
			}
		}
	}
	return true
}

// IsComplete returns true if no sticker is Empty.
func (c *Cube) IsComplete() bool {
	for _, s := range c.stickers {
		if !s.Valid() {
			return false
		}
	}
	return true
}

// ColorCounts returns how often each color occurs, Empty included.
func (c *Cube) ColorCounts() map[Color]int {
	counts := make(map[Color]int, 7)
	for _, s := range c.stickers {
		counts[s]++
	}
	return counts
}

// History exposes the undo/redo ring for inspection.
func (c *Cube) History() *History {
	return c.history
}

// Undo restores the previous snapshot. It returns false at the oldest one.
func (c *Cube) Undo() bool {
	s, ok := c.history.Undo()
	if ok {
		c.stickers = s
	}
	return ok
}

// Redo restores the next snapshot. It returns false at the newest one.
func (c *Cube) Redo() bool {
	s, ok := c.history.Redo()
	if ok {
		c.stickers = s
	}
	return ok
}

// Net returns the unfolded net as text.
func (c *Cube) Net() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.stickers[U.Slot(row*3+col)].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			for col := 0; col < 3; col++ {
				b.WriteString(c.stickers[face.Slot(row*3+col)].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.stickers[D.Slot(row*3+col)].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
