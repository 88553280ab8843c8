package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecore/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved scrambles",
	Long: `List scrambles saved with 'cubecore scramble --save', newest first.

Usage:
  cubecore history
  cubecore history --limit 5
  cubecore history --show <id>    # print one scramble with its cube`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var (
	historyLimit int
	historyShow  string
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of scrambles to list")
	historyCmd.Flags().StringVar(&historyShow, "show", "", "Show a single scramble by ID")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewScrambleRepository(db)

	if historyShow != "" {
		return showScramble(repo, historyShow)
	}

	scrambles, err := repo.List(historyLimit)
	if err != nil {
		return err
	}
	if len(scrambles) == 0 {
		fmt.Println("No saved scrambles. Save one with: cubecore scramble --save")
		return nil
	}

	total, err := repo.Count()
	if err != nil {
		return err
	}
	fmt.Println(titleStyle.Render(fmt.Sprintf("Scrambles (%s of %s)",
		humanize.Comma(int64(len(scrambles))), humanize.Comma(int64(total)))))
	fmt.Println()

	for _, s := range scrambles {
		seed := ""
		if s.Seed != nil {
			seed = fmt.Sprintf("  seed %d", *s.Seed)
		}
		fmt.Printf("%s  %-14s %s%s\n",
			statusStyle.Render(s.ScrambleID[:8]),
			humanize.Time(s.CreatedAt),
			moveStyle.Render(s.Moves),
			statusStyle.Render(seed))
	}
	return nil
}

func showScramble(repo *storage.ScrambleRepository, id string) error {
	s, err := repo.Get(id)
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("scramble %s not found", id)
	}

	c, err := loadCube(s.CubeState)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Scramble " + s.ScrambleID))
	fmt.Printf("Created: %s (%s)\n", s.CreatedAt.Local().Format("2006-01-02 15:04"), humanize.Time(s.CreatedAt))
	fmt.Printf("Moves:   %s (%d)\n", moveStyle.Render(s.Moves), s.MoveCount)
	fmt.Println()
	fmt.Print(renderNet(c))
	return nil
}
