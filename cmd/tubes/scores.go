package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tubes/internal/registry"
	"github.com/vovakirdan/tui-tubes/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show the leaderboard for a variant",
	Long: `Display the top 10 sessions and the most recent solves for a variant.

Examples:
  tubes scores tubes
  tubes scores tubes_mini --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all history for the variant")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tubes list' to see available puzzles.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Printf("Cleared history for %s\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("Leaderboard - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tubes play %s' and solve a level to get on the board!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %s\n", "Rank", "Solved", "Date")
	fmt.Printf("  %-4s  %-8s  %s\n", "----", "------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	solves, err := store.RecentSolves(gameID, 5)
	if err == nil && len(solves) > 0 {
		fmt.Println()
		fmt.Println("Recent solves:")
		for _, s := range solves {
			fmt.Printf("  level %-4d  %3d moves  seed %d\n", s.Level+1, s.Moves, s.Seed)
		}
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d solved  |  %d sessions  |  %d levels cleared", stats.HighScore, stats.GamesCount, stats.LevelsSeen)
		if stats.FewestMoves > 0 {
			fmt.Printf("  |  fewest moves %d", stats.FewestMoves)
		}
		fmt.Println()
	}
}
