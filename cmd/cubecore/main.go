// cubecore - command-line tools for a 3x3x3 cube: moves, validation,
// optimization, scrambles and solving.
package main

import (
	"github.com/SeamusWaldron/cubecore/internal/cli"
)

func main() {
	cli.Execute()
}
