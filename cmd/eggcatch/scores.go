package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/egg-catcher/internal/storage"
)

var (
	flagLimit   int
	flagHistory bool
	flagPlayer  string
	flagClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best score per player, or the most recent runs with --history.

Examples:
  eggcatch scores
  eggcatch scores --limit 20
  eggcatch scores --history --player ann
  eggcatch scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rows to show")
	scoresCmd.Flags().BoolVar(&flagHistory, "history", false, "Show recent runs instead of best scores")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs of this player (with --history)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score and run")
}

func runScores(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(ctx); err != nil {
			return err
		}
		fmt.Println("All scores cleared.")
		return nil
	case flagHistory:
		return printHistory(ctx, store)
	default:
		return printLeaderboard(ctx, store)
	}
}

func printLeaderboard(ctx context.Context, store *storage.Store) error {
	scores, err := store.TopScores(ctx, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Egg Catcher")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'eggcatch' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "----", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-16s  %-8d  %s\n", i+1, entry.Name, entry.Score, entry.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printHistory(ctx context.Context, store *storage.Store) error {
	runs, err := store.RecentRuns(ctx, flagPlayer, flagLimit)
	if err != nil {
		return err
	}

	title := "Recent Runs"
	if flagPlayer != "" {
		title = fmt.Sprintf("Recent Runs - %s", flagPlayer)
	}
	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-8s  %-16s  %s\n", "Name", "Score", "Date", "Run")
	fmt.Printf("  %-16s  %-8s  %-16s  %s\n", "----", "-----", "----", "---")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-8d  %-16s  %s\n", r.Name, r.Score, r.CreatedAt.Format("2006-01-02 15:04"), r.ID)
	}

	best, err := store.HighScore(ctx, flagPlayer)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d\n", best)
	return nil
}
