package cube

import (
	"fmt"

	"github.com/SeamusWaldron/cubecore/pkg/notation"
)

// Cycle is a 4-cycle of sticker slots [a b c d]: b takes what was in a,
// c takes b, d takes c and a takes d.
type Cycle [4]int

// vec is an integer point or direction, x to the right, y up, z to the front.
type vec [3]int

func (a vec) dot(b vec) int {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a vec) cross(b vec) vec {
	return vec{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (a vec) add(b vec) vec {
	return vec{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a vec) scale(k int) vec {
	return vec{a[0] * k, a[1] * k, a[2] * k}
}

// rotateCW turns v a quarter clockwise as seen looking down axis from outside.
func rotateCW(v, axis vec) vec {
	return axis.scale(axis.dot(v)).add(axis.cross(v).scale(-1))
}

// faceFrame places a face block in space: the outward normal, the
// direction of increasing column and the direction of increasing row, as
// the face is seen in the standard unfolded net.
type faceFrame struct {
	normal, right, down vec
}

var frames = [6]faceFrame{
	U: {normal: vec{0, 1, 0}, right: vec{1, 0, 0}, down: vec{0, 0, 1}},
	R: {normal: vec{1, 0, 0}, right: vec{0, 0, -1}, down: vec{0, -1, 0}},
	F: {normal: vec{0, 0, 1}, right: vec{1, 0, 0}, down: vec{0, -1, 0}},
	D: {normal: vec{0, -1, 0}, right: vec{1, 0, 0}, down: vec{0, 0, -1}},
	L: {normal: vec{-1, 0, 0}, right: vec{0, 0, 1}, down: vec{0, -1, 0}},
	B: {normal: vec{0, 0, -1}, right: vec{-1, 0, 0}, down: vec{0, -1, 0}},
}

type sticker struct {
	pos, normal vec
}

var stickers, stickerIdx = buildStickers()

func buildStickers() ([54]sticker, map[sticker]int) {
	var all [54]sticker
	idx := make(map[sticker]int, 54)
	for f, fr := range frames {
		for pos := 0; pos < 9; pos++ {
			row, col := pos/3, pos%3
			p := fr.normal.add(fr.right.scale(col - 1)).add(fr.down.scale(row - 1))
			s := sticker{pos: p, normal: fr.normal}
			all[f*9+pos] = s
			idx[s] = f*9 + pos
		}
	}
	return all, idx
}

// layerTurn describes one clockwise quarter turn: the axis it turns about
// (the outward normal of the face it follows) and which layers along that
// axis move, as values of the position's coordinate on the axis.
type layerTurn struct {
	axis   vec
	layers []int
}

func (lt layerTurn) moves(p vec) bool {
	d := p.dot(lt.axis)
	for _, l := range lt.layers {
		if d == l {
			return true
		}
	}
	return false
}

// cycles derives the 4-cycles of the turn from sticker geometry.
func (lt layerTurn) cycles() []Cycle {
	var dest [54]int
	for i, s := range stickers {
		dest[i] = i
		if !lt.moves(s.pos) {
			continue
		}
		to := sticker{pos: rotateCW(s.pos, lt.axis), normal: rotateCW(s.normal, lt.axis)}
		j, ok := stickerIdx[to]
		if !ok {
			panic(fmt.Sprintf("cube: sticker %d rotates off the cube", i))
		}
		dest[i] = j
	}

	var out []Cycle
	var seen [54]bool
	for a := 0; a < 54; a++ {
		if seen[a] || dest[a] == a {
			continue
		}
		var c Cycle
		i := a
		for k := 0; k < 4; k++ {
			c[k] = i
			seen[i] = true
			i = dest[i]
		}
		if i != a {
			panic(fmt.Sprintf("cube: slot %d is not on a 4-cycle", a))
		}
		out = append(out, c)
	}
	return out
}

type turnKey struct {
	face notation.Face
	wide bool
}

// turnCycles holds the cycles of one clockwise quarter of every token face.
var turnCycles = buildTurnCycles()

func buildTurnCycles() map[turnKey][]Cycle {
	normal := func(f Face) vec { return frames[f].normal }
	outer := map[notation.Face]Face{
		notation.FaceU: U, notation.FaceR: R, notation.FaceF: F,
		notation.FaceD: D, notation.FaceL: L, notation.FaceB: B,
	}

	table := make(map[turnKey][]Cycle)
	for nf, f := range outer {
		table[turnKey{face: nf}] = layerTurn{axis: normal(f), layers: []int{1}}.cycles()
		table[turnKey{face: nf, wide: true}] = layerTurn{axis: normal(f), layers: []int{0, 1}}.cycles()
	}

	table[turnKey{face: notation.SliceM}] = layerTurn{axis: normal(L), layers: []int{0}}.cycles()
	table[turnKey{face: notation.SliceE}] = layerTurn{axis: normal(D), layers: []int{0}}.cycles()
	table[turnKey{face: notation.SliceS}] = layerTurn{axis: normal(F), layers: []int{0}}.cycles()

	all := []int{-1, 0, 1}
	table[turnKey{face: notation.RotX}] = layerTurn{axis: normal(R), layers: all}.cycles()
	table[turnKey{face: notation.RotY}] = layerTurn{axis: normal(U), layers: all}.cycles()
	table[turnKey{face: notation.RotZ}] = layerTurn{axis: normal(F), layers: all}.cycles()

	return table
}

// Cycles returns the 4-cycles of a single clockwise quarter of m's face,
// or nil if the move is not known to the engine.
func Cycles(m notation.Move) []Cycle {
	src := turnCycles[turnKey{face: m.Face, wide: m.Wide && m.Kind() == notation.KindWide}]
	out := make([]Cycle, len(src))
	copy(out, src)
	return out
}

// Edge and corner locations as sticker slots. The first slot of every
// edge is its reference slot (U/D for top and bottom edges, F/B for the
// middle layer); the first slot of every corner is its U/D slot and the
// rest follow clockwise.
var (
	EdgeSlots = [12][2]int{
		{5, 10},  // UR
		{7, 19},  // UF
		{3, 37},  // UL
		{1, 46},  // UB
		{32, 16}, // DR
		{28, 25}, // DF
		{30, 43}, // DL
		{34, 52}, // DB
		{23, 12}, // FR
		{21, 41}, // FL
		{50, 39}, // BL
		{48, 14}, // BR
	}

	CornerSlots = [8][3]int{
		{8, 9, 20},   // URF
		{6, 18, 38},  // UFL
		{0, 36, 47},  // ULB
		{2, 45, 11},  // UBR
		{29, 26, 15}, // DFR
		{27, 44, 24}, // DLF
		{33, 53, 42}, // DBL
		{35, 17, 51}, // DRB
	}

	EdgeNames   = [12]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}
	CornerNames = [8]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}
)

// SlotFace returns the face a sticker slot belongs to.
func SlotFace(slot int) Face {
	return Face(slot / 9)
}
