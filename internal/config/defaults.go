package config

import (
	_ "embed"
)

//go:embed defaults/tanks.yaml
var defaultTanksYAML []byte

// DefaultTanksConfig returns the default tank game configuration.
func DefaultTanksConfig() TanksConfig {
	return TanksConfig{
		Player: TanksPlayer{
			Lives:       3,
			MaxLives:    9,
			InvulnTicks: 120,
		},
		AI: TanksAI{
			FireChanceAligned: 70,
			FireChanceBlind:   20,
			ChaseChance:       30,
			RedirectMin:       60,
			RedirectMax:       180,
			AlignmentRange:    12,
		},
		Spawning: TanksSpawning{
			EnemiesPerStage: 10,
			MaxActive:       4,
			SpawnInterval:   64,
			CarryChance:     25,
		},
		Items: TanksItems{
			LifeTicks:   600,
			FlashTicks:  120,
			FreezeTicks: 300,
			ShieldTicks: 600,
			HelmetTicks: 600,
		},
		Scoring: TanksScoring{
			StageBonus:    100,
			LifeBonus:     500,
			GrenadeBonus:  200,
			CampaignBonus: 10000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			MaxAtStage:   16,
			Scaling: ScalingConfig{
				SpawnSpeedup:    32,
				AggressionBoost: 15,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	if gameID == "tanks" {
		return defaultTanksYAML
	}
	return nil
}
