package cli

import (
	"strings"

	"github.com/SeamusWaldron/cubecore/pkg/cube"
	"github.com/SeamusWaldron/cubecore/pkg/validate"
)

func joinMoves(tokens []string) string {
	if len(tokens) == 0 {
		return "(no moves)"
	}
	return strings.Join(tokens, " ")
}

// movesFromArgs accepts moves as separate arguments or quoted sequences.
func movesFromArgs(args []string) []string {
	return strings.Fields(strings.Join(args, " "))
}

// cubeStatus summarizes whether c is solved, solvable or broken.
func cubeStatus(c *cube.Cube) string {
	if c.IsSolved() {
		return okStyle.Render("SOLVED")
	}
	if err := validate.Cube(c); err != nil {
		return errorStyle.Render(err.Error())
	}
	return okStyle.Render("solvable")
}

// loadCube builds a cube from a cube string, or a solved cube when state is empty.
func loadCube(state string) (*cube.Cube, error) {
	if state == "" {
		return newCube(), nil
	}
	return cube.FromString(state, cube.WithHistoryCap(cfg.HistoryCap))
}
