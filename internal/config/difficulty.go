package config

import "math"

// DifficultyManager calculates stage-scaled game parameters. The tank
// game's progression axis is the stage number: later stages spawn
// faster and shoot more readily.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the difficulty level (0.0 to 1.0) for a stage.
func (d *DifficultyManager) Level(stage int) float64 {
	if !d.cfg.Enabled {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.MaxAtStage)
	if maxAt <= 1 {
		maxAt = 2 // Prevent division by zero
	}
	progress := clampF(float64(stage-1)/(maxAt-1), 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpawnInterval returns the stage's spawn stagger: the base interval
// shortened as difficulty rises, floored at a playable minimum.
func (d *DifficultyManager) SpawnInterval(base int, stage int) int {
	level := d.Level(stage)
	result := base - int(level*float64(d.cfg.Scaling.SpawnSpeedup))
	if result < 16 {
		result = 16
	}
	return result
}

// FireChance returns a fire-chance percentage boosted by the stage's
// difficulty level, capped at 100.
func (d *DifficultyManager) FireChance(base int, stage int) int {
	level := d.Level(stage)
	result := base + int(level*float64(d.cfg.Scaling.AggressionBoost))
	if result > 100 {
		result = 100
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
