// invaders is a terminal Space Invaders game.
//
// Usage:
//
//	invaders play            - Play the game
//	invaders scores          - Show high scores
//	invaders serve           - Start SSH server for remote play
//	invaders list            - List available games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/invaders.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/ametov/tui-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `A terminal rendition of the classic alien-shooter: steer the ship,
shoot down the descending formation, and keep the aliens off the ground.

Available commands:
  play     - Play the game
  scores   - View high scores
  serve    - Start SSH server for remote play
  list     - Show all registered games

Examples:
  invaders play
  invaders play --seed 42
  invaders scores
  invaders serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/invaders.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
}
