package tanks

import "testing"

func testSpawnConfig() SpawnConfig {
	return SpawnConfig{
		EnemiesPerStage: 10,
		MaxActive:       4,
		SpawnInterval:   64,
		CarryChance:     25,
	}
}

func TestQueueSizeMatchesAllotment(t *testing.T) {
	for _, per := range []int{10, 20} {
		cfg := testSpawnConfig()
		cfg.EnemiesPerStage = per
		for stage := 1; stage <= TotalStages; stage++ {
			m := NewEnemyManager(cfg, testAI(), NewSimpleRNG(42))
			m.InitStage(stage)
			if len(m.queue) != per {
				t.Errorf("stage %d with %d per stage: queue has %d entries", stage, per, len(m.queue))
			}
		}
	}
}

func TestQueueMixShiftsWithStage(t *testing.T) {
	cfg := testSpawnConfig()
	cfg.EnemiesPerStage = 20

	count := func(stage int, kind TankKind) int {
		m := NewEnemyManager(cfg, testAI(), NewSimpleRNG(42))
		m.InitStage(stage)
		n := 0
		for _, k := range m.queue {
			if k == kind {
				n++
			}
		}
		return n
	}

	if early, late := count(1, KindLight), count(12, KindLight); late >= early {
		t.Errorf("light share should shrink with stage: %d early vs %d late", early, late)
	}
	if count(1, KindHeavy) != 0 {
		t.Error("heavy tanks should not appear on stage one")
	}
	if count(12, KindHeavy) == 0 {
		t.Error("heavy tanks should appear on late stages")
	}
}

func TestSpawnPipeline(t *testing.T) {
	m := NewEnemyManager(testSpawnConfig(), testAI(), NewSimpleRNG(42))
	m.InitStage(1)

	// Stagger timer runs first.
	for i := 0; i < m.cfg.SpawnInterval; i++ {
		if m.fogActive {
			t.Fatalf("telegraph started early at tick %d", i)
		}
		m.updateSpawning()
	}
	if !m.fogActive {
		t.Fatal("telegraph should start once the stagger timer elapses")
	}
	if len(m.enemies) != 0 {
		t.Fatal("nothing should materialize during the telegraph")
	}

	// Then the fog animation plays through all phases.
	for i := 0; i < FogPhases*FogPhaseTicks; i++ {
		m.updateSpawning()
	}
	if m.fogActive {
		t.Error("telegraph should be finished")
	}
	if len(m.enemies) != 1 {
		t.Fatalf("exactly one enemy should have spawned, got %d", len(m.enemies))
	}

	if e := m.enemies[0]; e.TileY() != 0 {
		t.Error("enemies enter along the top edge")
	}
}

func TestSpawnCapRequeues(t *testing.T) {
	m := NewEnemyManager(testSpawnConfig(), testAI(), NewSimpleRNG(42))
	m.InitStage(1)
	queueBefore := len(m.queue)

	// Run the pipeline to the brink of materialization.
	for i := 0; i < m.cfg.SpawnInterval; i++ {
		m.updateSpawning()
	}

	// Fill the field to the cap while the telegraph plays.
	for i := 0; i < m.cfg.MaxActive; i++ {
		m.enemies = append(m.enemies, NewEnemy(KindLight, 4+i, 6, m.rng, 0, m.ai))
	}

	for i := 0; i < FogPhases*FogPhaseTicks; i++ {
		m.updateSpawning()
	}

	if len(m.enemies) != m.cfg.MaxActive {
		t.Error("cap re-check should abandon the materialization")
	}
	if len(m.queue) != queueBefore {
		t.Errorf("abandoned archetype should return to the queue: %d vs %d", len(m.queue), queueBefore)
	}
}

func TestCrowdedSpawnCellsAvoided(t *testing.T) {
	m := NewEnemyManager(testSpawnConfig(), testAI(), NewSimpleRNG(42))
	m.InitStage(1)

	// Park enemies on two of the three entry points.
	m.enemies = append(m.enemies,
		NewEnemy(KindLight, spawnTiles[0][0], spawnTiles[0][1], m.rng, 0, m.ai),
		NewEnemy(KindLight, spawnTiles[1][0], spawnTiles[1][1], m.rng, 0, m.ai))

	m.startTelegraph()

	if m.fogTileX != spawnTiles[2][0] || m.fogTileY != spawnTiles[2][1] {
		t.Errorf("telegraph should pick the only clear entry point, got (%d, %d)", m.fogTileX, m.fogTileY)
	}
}

func TestStageCompletion(t *testing.T) {
	m := NewEnemyManager(testSpawnConfig(), testAI(), NewSimpleRNG(42))
	m.InitStage(1)

	if m.StageComplete() {
		t.Fatal("fresh stage is not complete")
	}
	if m.Remaining() != m.cfg.EnemiesPerStage {
		t.Errorf("remaining = %d, want %d", m.Remaining(), m.cfg.EnemiesPerStage)
	}

	m.destroyed = m.cfg.EnemiesPerStage
	if !m.StageComplete() {
		t.Error("stage should complete once the allotment is destroyed")
	}
}

func TestCompactCountsKills(t *testing.T) {
	m := NewEnemyManager(testSpawnConfig(), testAI(), NewSimpleRNG(42))
	m.InitStage(1)

	m.enemies = append(m.enemies,
		NewEnemy(KindLight, 0, 0, m.rng, 0, m.ai),
		NewEnemy(KindLight, 6, 0, m.rng, 0, m.ai))
	m.enemies[0].Active = false

	m.Compact()

	if len(m.enemies) != 1 {
		t.Errorf("one enemy should survive compaction, got %d", len(m.enemies))
	}
	if m.destroyed != 1 {
		t.Errorf("destroyed = %d, want 1", m.destroyed)
	}
}
