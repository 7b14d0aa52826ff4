// tanks is a terminal rendition of the classic base-defense tank game.
//
// Usage:
//
//	tanks play               - Play a campaign
//	tanks replay <file>      - Watch a recorded session
//	tanks serve              - Start SSH server for remote play
//	tanks scores             - Show high scores
//	tanks stages             - Inspect campaign stage layouts
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tanks/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-tanks/internal/tanks"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tanks",
	Short: "Battle Tanks - defend your base in the terminal",
	Long: `Battle Tanks is a terminal game: steer your tank through a 16-stage
campaign, destroy the enemy waves and keep them away from your base.

Available commands:
  play     - Play a campaign
  replay   - Watch a recorded session
  serve    - Start SSH server for remote play
  scores   - View high scores
  stages   - Inspect campaign stage layouts

Examples:
  tanks play
  tanks play --difficulty hard --record run.tankreplay
  tanks replay run.tankreplay
  tanks serve --ssh :2222
  tanks scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tanks/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log gameplay events to ~/.tanks/events.log")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(stagesCmd)
}
