// Package replay records and plays back game sessions. A recording is
// the seed plus every tick's input frame; because the simulation is
// deterministic, that is enough to reproduce a run exactly.
package replay

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

// Recording is a complete replayable session. Frames holds the action
// codes pressed on each tick, in tick order.
type Recording struct {
	GameID     string    `msgpack:"game_id"`
	Seed       int64     `msgpack:"seed"`
	TickRate   int       `msgpack:"tick_rate"`
	ScreenW    int       `msgpack:"screen_w"`
	ScreenH    int       `msgpack:"screen_h"`
	Frames     [][]int   `msgpack:"frames"`
	RecordedAt time.Time `msgpack:"recorded_at"`
}

// New creates an empty recording for a session with the given runtime.
func New(gameID string, runtime core.RuntimeConfig) *Recording {
	return &Recording{
		GameID:     gameID,
		Seed:       runtime.Seed,
		TickRate:   runtime.TickRate,
		ScreenW:    runtime.ScreenW,
		ScreenH:    runtime.ScreenH,
		RecordedAt: time.Now(),
	}
}

// Runtime reconstructs the runtime config the recording was made with.
func (r *Recording) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     r.Seed,
		TickRate: r.TickRate,
		ScreenW:  r.ScreenW,
		ScreenH:  r.ScreenH,
	}
}

// AppendFrame records one tick's input. Actions are stored sorted so
// the file content does not depend on map iteration order.
func (r *Recording) AppendFrame(in core.InputFrame) {
	var actions []int
	for a, pressed := range in.Actions {
		if pressed {
			actions = append(actions, int(a))
		}
	}
	sort.Ints(actions)
	r.Frames = append(r.Frames, actions)
}

// Len returns the number of recorded ticks.
func (r *Recording) Len() int {
	return len(r.Frames)
}

// FrameAt reconstructs the input frame for a tick. Ticks beyond the
// recording come back empty, so playback can idle past the end.
func (r *Recording) FrameAt(tick int) core.InputFrame {
	in := core.NewInputFrame()
	if tick < 0 || tick >= len(r.Frames) {
		return in
	}
	for _, a := range r.Frames[tick] {
		in.Set(core.Action(a))
	}
	return in
}

// Save writes the recording to a file, creating parent directories as
// needed.
func Save(path string, r *Recording) error {
	data, err := msgpack.Marshal(r)
	if err != nil {
		return fmt.Errorf("replay: cannot encode recording: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("replay: cannot create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("replay: cannot write %s: %w", path, err)
	}
	return nil
}

// Load reads a recording from a file.
func Load(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot read %s: %w", path, err)
	}

	var r Recording
	if err := msgpack.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("replay: cannot decode %s: %w", path, err)
	}
	if r.GameID == "" {
		return nil, fmt.Errorf("replay: %s is not a valid recording", path)
	}
	return &r, nil
}
