package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecore/pkg/notation"
)

var applyCmd = &cobra.Command{
	Use:   "apply [moves]...",
	Short: "Apply a move sequence and print the resulting cube",
	Long: `Apply a move sequence to a cube and print the resulting cube string.

Starts from the solved cube unless --state gives a 54-character cube string.
--alg applies a named algorithm before any moves given as arguments.

Algorithms: ` + strings.Join(notation.AlgorithmNames(), ", ") + `

Usage:
  cubecore apply "R U R' U'"
  cubecore apply --alg t-perm
  cubecore apply R U2 M x --state UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB`,
	RunE: runApply,
}

var (
	applyState string
	applyAlg   string
	applyNet   bool
)

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVarP(&applyState, "state", "s", "", "Starting cube string (default: solved)")
	applyCmd.Flags().StringVarP(&applyAlg, "alg", "a", "", "Apply a named algorithm first")
	applyCmd.Flags().BoolVar(&applyNet, "net", true, "Print the cube net")
}

func runApply(cmd *cobra.Command, args []string) error {
	c, err := loadCube(applyState)
	if err != nil {
		return err
	}

	tokens := movesFromArgs(args)
	if len(tokens) == 0 && applyAlg == "" {
		return fmt.Errorf("give moves to apply or an algorithm with --alg")
	}

	if applyAlg != "" {
		if err := c.ApplyAlgorithm(applyAlg); err != nil {
			return err
		}
		log.WithField("alg", applyAlg).Debug("applied algorithm")
	}
	if err := c.ApplyTokens(tokens); err != nil {
		return err
	}
	log.WithField("moves", len(tokens)).Debug("applied")

	fmt.Println(c.String())
	if applyNet {
		fmt.Println()
		fmt.Print(renderNet(c))
		fmt.Println()
	}
	fmt.Printf("Status: %s\n", cubeStatus(c))
	return nil
}
