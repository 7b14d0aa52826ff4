package tanks

import "testing"

func testAI() AIConfig {
	return AIConfig{
		FireChanceAligned: 70,
		FireChanceBlind:   20,
		ChaseChance:       30,
		RedirectMin:       60,
		RedirectMax:       180,
		AlignmentRange:    12,
	}
}

func TestEnemyKindProperties(t *testing.T) {
	if KindHeavy.Health() != 4 {
		t.Error("heavy tanks should take four hits")
	}
	if KindLight.Health() != 1 {
		t.Error("light tanks should take one hit")
	}
	if KindFastShot.FireInterval() >= KindLight.FireInterval() {
		t.Error("fast-shot tanks should reload quicker")
	}
	if KindArmored.MoveDuration() != MoveTicksFast {
		t.Error("armored tanks should glide at double speed")
	}
	scores := map[TankKind]int{KindLight: 100, KindArmored: 200, KindFastShot: 300, KindHeavy: 400}
	for k, want := range scores {
		if k.ScoreValue() != want {
			t.Errorf("%v score = %d, want %d", k, k.ScoreValue(), want)
		}
	}
}

func TestCarrierRollRespectsChance(t *testing.T) {
	rng := NewSimpleRNG(7)
	always := 0
	never := 0
	for i := 0; i < 50; i++ {
		if NewEnemy(KindLight, 0, 0, rng, 100, testAI()).Carrier {
			always++
		}
		if NewEnemy(KindLight, 0, 0, rng, 0, testAI()).Carrier {
			never++
		}
	}
	if always != 50 {
		t.Errorf("carry chance 100 should always produce carriers, got %d/50", always)
	}
	if never != 0 {
		t.Errorf("carry chance 0 should never produce carriers, got %d/50", never)
	}
}

func TestAlignmentDetection(t *testing.T) {
	rng := NewSimpleRNG(1)
	e := NewEnemy(KindLight, 7, 5, rng, 0, testAI())

	player := NewPlayer()
	player.placeAt(7, 11) // same column, below

	dir, aligned := e.bestAttackDirection(player, testAI())
	if !aligned || dir != DirDown {
		t.Errorf("expected down alignment with the player, got %v aligned=%v", dir, aligned)
	}

	// Out of range on the same column.
	far := testAI()
	far.AlignmentRange = 3
	if _, ok := e.bestAttackDirection(player, far); ok {
		// Still aligned, but with the base: enemy column 7 matches the
		// base column and the base is below within... 8 tiles > 3, so
		// nothing should align.
		t.Error("no target should align within three tiles")
	}

	// Off-column player falls back to the base alignment.
	player.placeAt(3, 11)
	dir, aligned = e.bestAttackDirection(player, testAI())
	if !aligned || dir != DirDown {
		t.Errorf("expected down alignment with the base, got %v aligned=%v", dir, aligned)
	}
}

func TestDeadPlayerIsNotATarget(t *testing.T) {
	rng := NewSimpleRNG(1)
	e := NewEnemy(KindLight, 3, 5, rng, 0, testAI())

	player := NewPlayer()
	player.placeAt(3, 8)
	player.Lives = 0

	// Column 3 has no base alignment, and the dead player must be
	// skipped.
	if _, aligned := e.bestAttackDirection(player, testAI()); aligned {
		t.Error("a defeated player should not attract fire")
	}
}

func TestEnemyFiresWhenAligned(t *testing.T) {
	rng := NewSimpleRNG(1)
	ai := testAI()
	ai.FireChanceAligned = 100

	e := NewEnemy(KindLight, 7, 5, rng, 0, ai)
	e.fireTimer = e.Kind.FireInterval()

	player := NewPlayer()
	player.placeAt(7, 11)

	shots := NewProjectileSet(nil)
	p := e.maybeFire(shots, player, rng, ai)
	if p == nil {
		t.Fatal("aligned enemy with a guaranteed roll should fire")
	}
	if e.Dir != DirDown {
		t.Error("firing on alignment should turn the tank toward its target")
	}
	if p.Owner != KindLight || p.Tier != TierNormal {
		t.Error("enemy shells belong to their archetype at normal power")
	}
	if e.fireTimer != 0 {
		t.Error("firing should restart the cooldown")
	}
}

func TestEnemyShellBudget(t *testing.T) {
	rng := NewSimpleRNG(1)
	ai := testAI()
	ai.FireChanceAligned = 100

	e := NewEnemy(KindLight, 7, 5, rng, 0, ai)
	e.fireTimer = e.Kind.FireInterval()

	player := NewPlayer()
	player.placeAt(7, 11)

	shots := NewProjectileSet(nil)
	// Another light tank's shell already in flight consumes the
	// archetype's budget.
	shots.Add(NewProjectile(10, 10, DirUp, BulletSpeed, KindLight, TierNormal))

	if e.maybeFire(shots, player, rng, ai) != nil {
		t.Error("archetype with a shell in flight should hold fire")
	}
}

func TestFastShotShellSpeed(t *testing.T) {
	rng := NewSimpleRNG(1)
	e := NewEnemy(KindFastShot, 5, 5, rng, 0, testAI())
	p := e.fire()
	if p.Speed != BulletSpeed*2 {
		t.Errorf("fast-shot shell speed = %d, want %d", p.Speed, BulletSpeed*2)
	}
}

func TestBoxedInEnemyWaits(t *testing.T) {
	g := NewGrid()
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		dx, dy := d.Vector()
		g.SetTile(5+dx, 5+dy, TileSteel)
	}
	rng := NewSimpleRNG(1)
	e := NewEnemy(KindLight, 5, 5, rng, 0, testAI())
	before := e.Dir

	e.chooseDirection(g, NewPlayer(), rng, testAI())

	if e.Dir != before {
		t.Error("fully boxed-in tank should keep its facing")
	}
}

func TestHeavyDamagedState(t *testing.T) {
	rng := NewSimpleRNG(1)
	e := NewEnemy(KindHeavy, 5, 5, rng, 0, testAI())
	if e.Damaged() {
		t.Error("fresh heavy tank is not damaged")
	}
	e.Health = 2
	if !e.Damaged() {
		t.Error("heavy tank at two hit points should show damage")
	}
}
