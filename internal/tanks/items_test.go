package tanks

import "testing"

func testItemConfig() ItemConfig {
	return ItemConfig{
		LifeTicks:   600,
		FlashTicks:  120,
		FreezeTicks: 300,
		ShieldTicks: 600,
		HelmetTicks: 600,
	}
}

func TestItemExpiry(t *testing.T) {
	m := NewItemManager(testItemConfig())
	m.Spawn(64, 64, ItemStar)

	for i := 0; i < m.cfg.LifeTicks-1; i++ {
		m.Tick()
	}
	if len(m.Items()) != 1 {
		t.Fatal("item should survive until its last tick")
	}

	m.Tick()
	if len(m.Items()) != 0 {
		t.Error("item should expire silently at zero")
	}
}

func TestItemFlashWindow(t *testing.T) {
	m := NewItemManager(testItemConfig())
	m.Spawn(64, 64, ItemHelmet)
	it := m.Items()[0]

	if it.Flashing(m.cfg.FlashTicks) {
		t.Error("fresh item should not flash")
	}
	it.Timer = m.cfg.FlashTicks
	if !it.Flashing(m.cfg.FlashTicks) {
		t.Error("item inside the warning window should flash")
	}
}

func TestCollectedItemsAreRemoved(t *testing.T) {
	m := NewItemManager(testItemConfig())
	m.Spawn(64, 64, ItemTank)
	m.Items()[0].Active = false

	m.Tick()

	if len(m.Items()) != 0 {
		t.Error("collected items should compact out")
	}
}

func TestRandomItemKindCoverage(t *testing.T) {
	rng := NewSimpleRNG(99)
	seen := make(map[ItemKind]bool)
	for i := 0; i < 500; i++ {
		k := randomItemKind(rng)
		if k < 0 || int(k) >= itemKindCount {
			t.Fatalf("kind out of range: %d", k)
		}
		seen[k] = true
	}
	if len(seen) != itemKindCount {
		t.Errorf("500 draws should hit every kind, got %d of %d", len(seen), itemKindCount)
	}
}
