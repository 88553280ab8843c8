package cube

// DefaultHistoryCap is the number of snapshots kept when no option is given.
const DefaultHistoryCap = 100

// State is a full 54-sticker snapshot.
type State [54]Color

// History is a fixed-capacity ring of state snapshots with a cursor.
// Pushing after an undo discards the redo tail; pushing into a full ring
// overwrites the oldest snapshot.
type History struct {
	buf    []State
	start  int // ring index of the oldest snapshot
	n      int // snapshots stored
	cursor int // logical index of the current snapshot, -1 when empty
}

func newHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCap
	}
	return &History{buf: make([]State, capacity), cursor: -1}
}

func (h *History) at(i int) *State {
	return &h.buf[(h.start+i)%len(h.buf)]
}

// Reset drops every snapshot and records s as the only one.
func (h *History) Reset(s State) {
	h.start, h.n, h.cursor = 0, 0, -1
	h.Push(s)
}

// Push records s as the current snapshot.
func (h *History) Push(s State) {
	h.n = h.cursor + 1
	if h.n == len(h.buf) {
		h.start = (h.start + 1) % len(h.buf)
		h.n--
	}
	*h.at(h.n) = s
	h.n++
	h.cursor = h.n - 1
}

// Undo moves the cursor back one snapshot.
func (h *History) Undo() (State, bool) {
	if h.cursor <= 0 {
		return State{}, false
	}
	h.cursor--
	return *h.at(h.cursor), true
}

// Redo moves the cursor forward one snapshot.
func (h *History) Redo() (State, bool) {
	if h.cursor >= h.n-1 {
		return State{}, false
	}
	h.cursor++
	return *h.at(h.cursor), true
}

// Len returns the number of snapshots stored.
func (h *History) Len() int { return h.n }

// Cap returns the ring capacity.
func (h *History) Cap() int { return len(h.buf) }

// Position returns the logical index of the current snapshot.
func (h *History) Position() int { return h.cursor }

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return h.cursor < h.n-1 }

func (h *History) clone() *History {
	c := *h
	c.buf = make([]State, len(h.buf))
	copy(c.buf, h.buf)
	return &c
}
