package config

import "testing"

func TestDefaultYAMLMatchesHardcoded(t *testing.T) {
	cfg, err := LoadTanks("")
	if err != nil {
		t.Fatalf("LoadTanks: %v", err)
	}
	want := DefaultTanksConfig()

	if cfg.Player != want.Player {
		t.Errorf("player section mismatch: %+v vs %+v", cfg.Player, want.Player)
	}
	if cfg.AI != want.AI {
		t.Errorf("ai section mismatch: %+v vs %+v", cfg.AI, want.AI)
	}
	if cfg.Spawning != want.Spawning {
		t.Errorf("spawning section mismatch: %+v vs %+v", cfg.Spawning, want.Spawning)
	}
	if cfg.Items != want.Items {
		t.Errorf("items section mismatch: %+v vs %+v", cfg.Items, want.Items)
	}
	if cfg.Scoring != want.Scoring {
		t.Errorf("scoring section mismatch: %+v vs %+v", cfg.Scoring, want.Scoring)
	}
	if cfg.Difficulty != want.Difficulty {
		t.Errorf("difficulty section mismatch: %+v vs %+v", cfg.Difficulty, want.Difficulty)
	}
}

func TestMissingCustomPathIsAnError(t *testing.T) {
	if _, err := LoadTanks("/nonexistent/tanks.yaml"); err == nil {
		t.Error("an explicit path that cannot be read should fail loudly")
	}
}

func TestPresets(t *testing.T) {
	easy := DefaultTanksConfig()
	ApplyTanksPreset(&easy, DifficultyEasy)
	if easy.Player.Lives != 5 {
		t.Error("easy preset should grant extra lives")
	}
	if easy.Spawning.SpawnInterval <= DefaultTanksConfig().Spawning.SpawnInterval {
		t.Error("easy preset should slow spawning")
	}

	hard := DefaultTanksConfig()
	ApplyTanksPreset(&hard, DifficultyHard)
	if hard.Player.Lives != 2 {
		t.Error("hard preset should cut lives")
	}
	if hard.AI.FireChanceAligned <= easy.AI.FireChanceAligned {
		t.Error("hard preset should raise aggression")
	}

	fixed := DefaultTanksConfig()
	ApplyTanksPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable stage scaling")
	}
}

func TestDifficultyScaling(t *testing.T) {
	cfg := DefaultTanksConfig().Difficulty
	m := NewDifficultyManager(cfg)

	// Spawn interval tightens with the stage but never below the floor.
	first := m.SpawnInterval(64, 1)
	last := m.SpawnInterval(64, cfg.MaxAtStage)
	if last >= first {
		t.Errorf("spawn interval should shrink: stage 1 = %d, final = %d", first, last)
	}
	if m.SpawnInterval(18, cfg.MaxAtStage) < 16 {
		t.Error("spawn interval floor is 16 ticks")
	}

	// Fire chance grows with the stage but caps at 100.
	if m.FireChance(70, cfg.MaxAtStage) <= m.FireChance(70, 1) {
		t.Error("fire chance should grow with the stage")
	}
	if m.FireChance(95, cfg.MaxAtStage) > 100 {
		t.Error("fire chance caps at 100")
	}
}

func TestDisabledDifficultyIsInert(t *testing.T) {
	cfg := DefaultTanksConfig().Difficulty
	cfg.Enabled = false
	m := NewDifficultyManager(cfg)

	if m.SpawnInterval(64, 16) != 64 {
		t.Error("disabled scaling should leave the spawn interval alone")
	}
	if m.FireChance(70, 16) != 70 {
		t.Error("disabled scaling should leave fire chances alone")
	}
}
