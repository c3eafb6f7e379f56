package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ametov/tui-invaders/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores and aggregate stats.

Examples:
  invaders scores
  invaders scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	const gameID = "invaders"

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Space Invaders")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6s  %s\n", i+1, entry.Score, entry.Outcome, dateStr)
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Wins: %d  Best: %d  Average: %.0f\n",
			stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore)
	}
}
