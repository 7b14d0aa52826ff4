package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/platform/tui"
	"github.com/vovakirdan/tui-tanks/internal/registry"
	"github.com/vovakirdan/tui-tanks/internal/storage"
	"github.com/vovakirdan/tui-tanks/internal/tanks"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a campaign",
	Long: `Start a new campaign.

Controls:
  WASD/Arrows  - Move
  Space        - Fire
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More lives, slower enemy waves
  normal - Standard campaign
  hard   - Fewer lives, aggressive enemies
  fixed  - No stage-based scaling

Examples:
  tanks play
  tanks play --difficulty hard
  tanks play --seed 42 --record run.tankreplay
  tanks play --config ./my-tanks.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Save the session as a replay file")
}

func runPlay(cmd *cobra.Command, args []string) {
	tanks.SetConfigPath(flagConfig)
	tanks.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create("tanks")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if flagDebug {
		closeLog := attachEventLog(game)
		defer closeLog()
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, tui.Options{RecordPath: flagRecord})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if flagRecord != "" {
		fmt.Printf("Replay saved to %s\n", flagRecord)
	}
}

// eventSinkSetter is implemented by games that emit gameplay events.
type eventSinkSetter interface {
	SetEventSink(core.EventSink)
}

// attachEventLog wires the game's event stream to a log file. Logging to
// stderr would corrupt the alt-screen display, so events go to a file under
// ~/.tanks instead. The returned func closes the file.
func attachEventLog(game registry.Game) func() {
	setter, ok := game.(eventSinkSetter)
	if !ok {
		return func() {}
	}

	dir := filepath.Join(os.Getenv("HOME"), ".tanks")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	f, err := os.OpenFile(filepath.Join(dir, "events.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open event log: %v\n", err)
		return func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tanks",
	})

	setter.SetEventSink(core.EventSinkFunc(func(e core.Event) {
		logger.Debug("event", "name", e.String())
	}))
	logger.SetLevel(log.DebugLevel)

	return func() {
		setter.SetEventSink(nil)
		f.Close()
	}
}
