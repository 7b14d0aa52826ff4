// Package config provides YAML-based game configuration loading and
// difficulty management for the tank game.
package config

// TanksConfig contains all tuning for the tank game. Every gameplay
// chance and timer the simulation consults lives here rather than in
// code, so balance experiments are a config edit away.
type TanksConfig struct {
	Player     TanksPlayer      `yaml:"player"`
	AI         TanksAI          `yaml:"ai"`
	Spawning   TanksSpawning    `yaml:"spawning"`
	Items      TanksItems       `yaml:"items"`
	Scoring    TanksScoring     `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TanksPlayer defines the player tank's life rules.
type TanksPlayer struct {
	Lives       int `yaml:"lives"`        // starting lives
	MaxLives    int `yaml:"max_lives"`    // cap for extra-life pickups
	InvulnTicks int `yaml:"invuln_ticks"` // immunity window after a hit
}

// TanksAI defines enemy behavior tuning. Chances are percentages.
type TanksAI struct {
	FireChanceAligned int `yaml:"fire_chance_aligned"` // fire roll when lined up with a target
	FireChanceBlind   int `yaml:"fire_chance_blind"`   // speculative fire roll
	ChaseChance       int `yaml:"chase_chance"`        // redirect bias toward the player
	RedirectMin       int `yaml:"redirect_min"`        // randomized redirect timer range, ticks
	RedirectMax       int `yaml:"redirect_max"`
	AlignmentRange    int `yaml:"alignment_range"` // alignment scan reach, tiles
}

// TanksSpawning defines the spawn director parameters.
type TanksSpawning struct {
	EnemiesPerStage int `yaml:"enemies_per_stage"`
	MaxActive       int `yaml:"max_active"`
	SpawnInterval   int `yaml:"spawn_interval"` // ticks between spawn attempts
	CarryChance     int `yaml:"carry_chance"`   // percent of enemies carrying an item
}

// TanksItems defines pickup timing, all in ticks.
type TanksItems struct {
	LifeTicks   int `yaml:"life_ticks"`
	FlashTicks  int `yaml:"flash_ticks"`
	FreezeTicks int `yaml:"freeze_ticks"`
	ShieldTicks int `yaml:"shield_ticks"`
	HelmetTicks int `yaml:"helmet_ticks"`
}

// TanksScoring defines the bonus values beyond per-kind kill scores.
type TanksScoring struct {
	StageBonus    int `yaml:"stage_bonus"`    // per stage number on clear
	LifeBonus     int `yaml:"life_bonus"`     // per remaining life on clear
	GrenadeBonus  int `yaml:"grenade_bonus"`  // extra per enemy killed by a grenade
	CampaignBonus int `yaml:"campaign_bonus"` // for finishing every stage
}

// DifficultyConfig defines how enemy pressure scales across stages.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	MaxAtStage   int           `yaml:"max_at_stage"`  // stage at which max difficulty is reached
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnSpeedup    int `yaml:"spawn_speedup"`    // ticks removed from the spawn interval at max
	AggressionBoost int `yaml:"aggression_boost"` // percentage points added to fire chances at max
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
