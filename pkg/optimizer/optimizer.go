// Package optimizer shortens move sequences with local rewrite rules.
//
// It works on tokens alone and never consults a cube. Each pass runs, in
// order: same-face folding, inverse cancellation, parallel reordering,
// wide-move fusion and rotation cancellation. Passes repeat until the
// sequence stops changing, a previously seen sequence comes back, or the
// pass budget runs out.
package optimizer

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubecore/pkg/notation"
)

// reorderWindow is the number of tokens a reorder may span, the moved
// token included.
const reorderWindow = 4

// item is one token. Tokens the grammar rejects keep ok == false and are
// carried through untouched.
type item struct {
	token string
	move  notation.Move
	ok    bool
}

func newItem(m notation.Move) item {
	return item{token: m.Notation(), move: m, ok: true}
}

func parseItems(tokens []string) []item {
	items := make([]item, len(tokens))
	for i, t := range tokens {
		m, err := notation.Parse(t)
		items[i] = item{token: t, move: m, ok: err == nil}
	}
	return items
}

func tokensOf(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.token
	}
	return out
}

func movesOf(items []item) []notation.Move {
	out := make([]notation.Move, len(items))
	for i, it := range items {
		if it.ok {
			out[i] = it.move
		}
	}
	return out
}

func itemsKey(items []item) string {
	return strings.Join(tokensOf(items), "\x1f")
}

// Optimizer applies the rewrite rules. The zero value is not usable; call New.
type Optimizer struct {
	cfg *config
}

// New creates an Optimizer.
func New(opts ...Option) *Optimizer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Optimizer{cfg: cfg}
}

// Optimize runs the default optimizer over tokens.
func Optimize(tokens []string) []string {
	return New().Optimize(tokens)
}

// Optimize returns a sequence with the same net effect as tokens and no
// more moves. It never fails: unknown tokens are passed through.
func (o *Optimizer) Optimize(tokens []string) []string {
	items := parseItems(tokens)
	seen := make(map[string]struct{})

	passes := 0
	for passes < o.cfg.passBudget {
		key := itemsKey(items)
		if _, dup := seen[key]; dup {
			o.cfg.log.WithField("passes", passes).Warn("optimizer: rewrite cycle detected, stopping")
			break
		}
		seen[key] = struct{}{}

		next := foldSameFace(items)
		next = cancelInverses(next)
		next = o.reorderParallel(next)
		next = fuseWide(next)
		next = cancelRotations(next)
		passes++

		items = next
		if itemsKey(next) == key {
			break
		}
	}

	o.cfg.log.WithFields(logrus.Fields{
		"in":     len(tokens),
		"out":    len(items),
		"passes": passes,
	}).Debug("optimizer: done")

	return tokensOf(items)
}

// foldSameFace merges runs of moves on the same layers. A run that adds
// up to a full turn disappears, which can expose a new run behind it.
func foldSameFace(items []item) []item {
	out := make([]item, 0, len(items))
	for _, it := range items {
		if n := len(out); n > 0 && it.ok && out[n-1].ok {
			if m, identity, ok := notation.Combine(out[n-1].move, it.move); ok {
				if identity {
					out = out[:n-1]
				} else {
					out[n-1] = newItem(m)
				}
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

// cancelInverses drops adjacent pairs such as R R'. Double pairs are left
// to foldSameFace.
func cancelInverses(items []item) []item {
	out := make([]item, 0, len(items))
	for i := 0; i < len(items); i++ {
		if i+1 < len(items) && items[i].ok && items[i+1].ok &&
			items[i].move.Turns != notation.Double &&
			items[i].move.IsInverseOf(items[i+1].move) {
			i++
			continue
		}
		out = append(out, items[i])
	}
	return out
}

// cancelRotations drops a whole-cube rotation followed by its inverse.
func cancelRotations(items []item) []item {
	out := make([]item, 0, len(items))
	for i := 0; i < len(items); i++ {
		if i+1 < len(items) && items[i].ok && items[i+1].ok &&
			items[i].move.Kind() == notation.KindRotation &&
			items[i].move.IsInverseOf(items[i+1].move) {
			i++
			continue
		}
		out = append(out, items[i])
	}
	return out
}

// reorderParallel moves a token earlier past moves on the opposite face
// when the heuristic says the result lines up more same-face pairs.
// Opposite faces turn about the same axis, so the swap keeps the net effect.
func (o *Optimizer) reorderParallel(items []item) []item {
	out := append([]item(nil), items...)
	for j := 1; j < len(out); j++ {
		if !out[j].ok {
			continue
		}
		for k := max(0, j-(reorderWindow-1)); k < j; k++ {
			if !commutesPast(out[k:j], out[j].move) {
				continue
			}
			lo, hi := max(0, k-1), min(len(out), j+2)
			shifted := shift(out, k, j)
			if o.cfg.heuristic.Better(movesOf(out[lo:hi]), movesOf(shifted[lo:hi])) {
				out = shifted
				break
			}
		}
	}
	return out
}

func commutesPast(items []item, m notation.Move) bool {
	for _, it := range items {
		if !it.ok || !it.move.IsOpposite(m) {
			return false
		}
	}
	return true
}

// shift returns a copy of items with items[j] moved to index k < j.
func shift(items []item, k, j int) []item {
	out := make([]item, 0, len(items))
	out = append(out, items[:k]...)
	out = append(out, items[j])
	out = append(out, items[k:j]...)
	out = append(out, items[j+1:]...)
	return out
}

type movePair struct {
	a, b notation.Move
}

// wideTable maps each face turn and slice turn pair to the wide move they
// make up, in both orders since the two layers commute.
var wideTable = buildWideTable()

func buildWideTable() map[movePair]notation.Move {
	t := make(map[movePair]notation.Move)
	for _, f := range notation.Faces {
		for _, turns := range []notation.Turn{notation.CW, notation.Double, notation.CCW} {
			w := notation.Move{Face: f, Turns: turns, Wide: true}
			face, slice, ok := notation.WideParts(w)
			if !ok {
				continue
			}
			t[movePair{face, slice}] = w
			t[movePair{slice, face}] = w
		}
	}
	return t
}

// fuseWide replaces adjacent face and slice pairs such as R M' with the
// equivalent wide move.
func fuseWide(items []item) []item {
	out := make([]item, 0, len(items))
	for i := 0; i < len(items); i++ {
		if i+1 < len(items) && items[i].ok && items[i+1].ok {
			if w, found := wideTable[movePair{items[i].move, items[i+1].move}]; found {
				out = append(out, newItem(w))
				i++
				continue
			}
		}
		out = append(out, items[i])
	}
	return out
}
