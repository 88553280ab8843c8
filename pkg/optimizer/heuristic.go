package optimizer

import "github.com/SeamusWaldron/cubecore/pkg/notation"

// Heuristic decides whether shifting a move earlier past parallel moves is
// worth doing. before and after hold the same window of moves, with one
// move moved forward in after. Entries with an empty Face are tokens the
// grammar did not recognise.
type Heuristic interface {
	Better(before, after []notation.Move) bool
}

// AdjacencyHeuristic accepts a reorder when it strictly increases the
// number of adjacent pairs that turn the same layers.
type AdjacencyHeuristic struct{}

// Better implements Heuristic.
func (AdjacencyHeuristic) Better(before, after []notation.Move) bool {
	return sameFacePairs(after) > sameFacePairs(before)
}

func sameFacePairs(moves []notation.Move) int {
	n := 0
	for i := 1; i < len(moves); i++ {
		if moves[i].Face != "" && moves[i].SameFace(moves[i-1]) {
			n++
		}
	}
	return n
}

// HeuristicFunc adapts a function to the Heuristic interface.
type HeuristicFunc func(before, after []notation.Move) bool

// Better implements Heuristic.
func (f HeuristicFunc) Better(before, after []notation.Move) bool {
	return f(before, after)
}
