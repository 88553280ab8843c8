package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecore/pkg/cube"
	"github.com/SeamusWaldron/cubecore/pkg/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [state]",
	Short: "Check whether a cube coloring can be solved",
	Long: `Check whether a cube coloring can be reached from a solved cube.

The state is a 54-character cube string, or a JSON file in the web
format given with --web:

  {"up": ["W","W",...], "right": [...], "front": [...],
   "down": [...], "left": [...], "back": [...]}

Exits non-zero when the cube fails a check.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var validateWeb string

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validateWeb, "web", "", "Read the state from a web-format JSON file")
}

func runValidate(cmd *cobra.Command, args []string) error {
	c, err := validateInput(args)
	if err != nil {
		return err
	}

	fmt.Print(renderNet(c))
	fmt.Println()

	if err := validate.Cube(c); err != nil {
		return fmt.Errorf("cube is not solvable: %w", err)
	}
	fmt.Printf("Status: %s\n", cubeStatus(c))
	return nil
}

func validateInput(args []string) (*cube.Cube, error) {
	switch {
	case validateWeb != "" && len(args) > 0:
		return nil, fmt.Errorf("give either a cube string or --web, not both")
	case validateWeb != "":
		data, err := os.ReadFile(validateWeb)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", validateWeb, err)
		}
		var w cube.WebState
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", validateWeb, err)
		}
		return cube.FromWebFormat(w)
	case len(args) == 1:
		return cube.FromString(args[0])
	default:
		return nil, fmt.Errorf("a cube string or --web file is required")
	}
}
