package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecore/internal/solver"
	"github.com/SeamusWaldron/cubecore/internal/storage"
)

var solveCmd = &cobra.Command{
	Use:   "solve <state>",
	Short: "Solve a cube with the configured external solver",
	Long: `Validate a cube string, pass it to the external solver program and
shorten the answer with the optimizer.

The solver is configured in ~/.cubecore/config.json as a command line,
for example:

  {"solver_command": ["kociemba"]}

The cube string is appended as the last argument and the program must
print space-separated moves. Results are cached in the database.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

var (
	solveTimeout time.Duration
	solveNoCache bool
)

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 30*time.Second, "Give up on the solver after this long")
	solveCmd.Flags().BoolVar(&solveNoCache, "no-cache", false, "Do not read or write cached solutions")
}

func runSolve(cmd *cobra.Command, args []string) error {
	c, err := loadCube(args[0])
	if err != nil {
		return err
	}

	command, err := solver.NewCommandSolver(cfg.SolverCommand)
	if err != nil {
		return err
	}

	var s solver.Solver = command
	if !solveNoCache {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		s = solver.NewCachedSolver(command,
			solver.WithStore(storage.NewSolutionRepository(db)),
			solver.WithSolverName(command.Name()),
			solver.WithCacheOptimizer(newOptimizer()),
			solver.WithCacheLogger(log),
		)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), solveTimeout)
	defer cancel()

	pipeline := solver.NewPipeline(s,
		solver.WithOptimizer(newOptimizer()),
		solver.WithLogger(log),
	)
	sol, err := pipeline.Solve(ctx, c)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Solution"))
	fmt.Println(moveStyle.Render(joinMoves(sol.Optimized)))
	printMetrics(sol.Metrics)
	if len(sol.Optimized) != len(sol.Moves) {
		fmt.Println()
		fmt.Println(statusStyle.Render("Solver output: " + joinMoves(sol.Moves)))
	}
	return nil
}
