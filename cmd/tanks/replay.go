package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tanks/internal/platform/tui"
	"github.com/vovakirdan/tui-tanks/internal/registry"
	"github.com/vovakirdan/tui-tanks/internal/replay"
	"github.com/vovakirdan/tui-tanks/internal/tanks"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Watch a recorded session",
	Long: `Replay a session recorded with 'tanks play --record'.

The recording stores the RNG seed and every tick's input, so the replay
reproduces the original run exactly. If the original run used a custom
config or difficulty preset, pass the same flags here.

Examples:
  tanks replay run.tankreplay
  tanks replay run.tankreplay --difficulty hard`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	rec, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		os.Exit(1)
	}

	if !registry.Exists(rec.GameID) {
		fmt.Fprintf(os.Stderr, "Error: replay is for unknown game %q\n", rec.GameID)
		os.Exit(1)
	}

	tanks.SetConfigPath(flagConfig)
	tanks.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(rec.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// The replayed session keeps the runtime it was recorded under;
	// scores are never saved from a replay, so no store is opened.
	cfg := rec.Runtime()

	if err := tui.Run(game, nil, cfg, tui.Options{Playback: rec}); err != nil {
		fmt.Fprintf(os.Stderr, "Error running replay: %v\n", err)
		os.Exit(1)
	}
}
