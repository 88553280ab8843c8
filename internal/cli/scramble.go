package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecore/internal/storage"
	"github.com/SeamusWaldron/cubecore/pkg/notation"
	"github.com/SeamusWaldron/cubecore/pkg/scramble"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble of outer-face turns.

No two consecutive moves turn the same face, and a face is never turned
again straight after its opposite face.

Usage:
  cubecore scramble                 # 20 moves (or scramble_length from config)
  cubecore scramble --length 25
  cubecore scramble --seed 42       # reproducible
  cubecore scramble --save          # store in the database`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

var (
	scrambleLength int
	scrambleSeed   int64
	scrambleSave   bool
	scrambleNet    bool
)

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 0, "Number of moves (default from config)")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed for a reproducible scramble")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Save the scramble to the database")
	scrambleCmd.Flags().BoolVar(&scrambleNet, "net", false, "Print the scrambled cube")
}

func runScramble(cmd *cobra.Command, args []string) error {
	length := cfg.ScrambleLength
	if cmd.Flags().Changed("length") {
		length = scrambleLength
	}

	var opts []scramble.Option
	var seed *int64
	if cmd.Flags().Changed("seed") {
		opts = append(opts, scramble.WithSeed(scrambleSeed))
		seed = &scrambleSeed
	}

	moves, err := scramble.New(opts...).Generate(length)
	if err != nil {
		return err
	}

	c := newCube()
	c.Apply(moves...)

	tokens := notation.Tokens(moves)

	fmt.Println(moveStyle.Render(joinMoves(tokens)))
	log.WithField("state", c.String()).Debug("scrambled")

	if scrambleNet {
		fmt.Println()
		fmt.Print(renderNet(c))
	}

	if scrambleSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := storage.NewScrambleRepository(db).Create(tokens, c.String(), seed)
		if err != nil {
			return err
		}
		fmt.Println(statusStyle.Render("Saved as " + id))
	}

	return nil
}
