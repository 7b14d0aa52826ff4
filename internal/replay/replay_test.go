package replay

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

func TestRoundTrip(t *testing.T) {
	runtime := core.RuntimeConfig{Seed: 777, TickRate: 60, ScreenW: 80, ScreenH: 24}
	rec := New("tanks", runtime)

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	rec.AppendFrame(in)

	in.Clear()
	in.Set(core.ActionUp)
	in.Set(core.ActionFire)
	rec.AppendFrame(in)

	rec.AppendFrame(core.NewInputFrame())

	path := filepath.Join(t.TempDir(), "run.replay")
	if err := Save(path, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.GameID != "tanks" {
		t.Errorf("GameID = %s", loaded.GameID)
	}
	if loaded.Runtime() != runtime {
		t.Errorf("Runtime() = %+v, want %+v", loaded.Runtime(), runtime)
	}
	if loaded.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", loaded.Len())
	}

	if !loaded.FrameAt(0).Has(core.ActionConfirm) {
		t.Error("tick 0 should hold confirm")
	}
	f1 := loaded.FrameAt(1)
	if !f1.Has(core.ActionUp) || !f1.Has(core.ActionFire) {
		t.Error("tick 1 should hold up and fire")
	}
	if !loaded.FrameAt(2).Empty() {
		t.Error("tick 2 should be empty")
	}
}

func TestFrameBeyondEndIsEmpty(t *testing.T) {
	rec := New("tanks", core.RuntimeConfig{Seed: 1})
	rec.AppendFrame(core.NewInputFrame())

	if !rec.FrameAt(10).Empty() {
		t.Error("ticks past the recording should read as no input")
	}
	if !rec.FrameAt(-1).Empty() {
		t.Error("negative ticks should read as no input")
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.replay")
	if err := Save(path, &Recording{GameID: "tanks"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.replay")); err == nil {
		t.Error("loading a missing file should fail")
	}
}

func TestReplayReproducesRun(t *testing.T) {
	// A recording fed back into a deterministic consumer must produce
	// the same frame sequence it was built from.
	rec := New("tanks", core.RuntimeConfig{Seed: 5, TickRate: 60, ScreenW: 80, ScreenH: 24})
	script := [][]core.Action{
		{core.ActionConfirm},
		{core.ActionUp},
		{core.ActionUp, core.ActionFire},
		{},
		{core.ActionLeft},
	}
	for _, actions := range script {
		in := core.NewInputFrame()
		for _, a := range actions {
			in.Set(a)
		}
		rec.AppendFrame(in)
	}

	for tick, actions := range script {
		got := rec.FrameAt(tick)
		for _, a := range actions {
			if !got.Has(a) {
				t.Errorf("tick %d: missing %v", tick, a)
			}
		}
		if len(actions) == 0 && !got.Empty() {
			t.Errorf("tick %d: expected empty frame", tick)
		}
	}
}
