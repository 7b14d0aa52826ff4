package tanks

import "github.com/vovakirdan/tui-tanks/internal/core"

// ItemKind identifies a dropped pickup's effect.
type ItemKind int

const (
	ItemStar    ItemKind = iota // raise the player's power tier
	ItemGrenade                 // destroy every enemy on screen
	ItemTank                    // extra life
	ItemShovel                  // temporary steel shield around the base
	ItemClock                   // freeze all enemies
	ItemHelmet                  // temporary player invulnerability
)

const itemKindCount = 6

// randomItemKind draws a uniformly random pickup kind.
func randomItemKind(rng *SimpleRNG) ItemKind {
	return ItemKind(rng.Intn(itemKindCount))
}

// String returns the HUD name of the kind.
func (k ItemKind) String() string {
	switch k {
	case ItemStar:
		return "star"
	case ItemGrenade:
		return "grenade"
	case ItemTank:
		return "tank"
	case ItemShovel:
		return "shovel"
	case ItemClock:
		return "clock"
	case ItemHelmet:
		return "helmet"
	}
	return "?"
}

// Glyph returns the rune the renderer draws for this kind.
func (k ItemKind) Glyph() rune {
	switch k {
	case ItemStar:
		return '★'
	case ItemGrenade:
		return '●'
	case ItemTank:
		return '♥'
	case ItemShovel:
		return '▣'
	case ItemClock:
		return '◷'
	case ItemHelmet:
		return '∩'
	}
	return '?'
}

// ItemConfig carries the pickup timing values, all in ticks.
type ItemConfig struct {
	LifeTicks   int // how long a dropped item stays on the field
	FlashTicks  int // expiry warning window at the end of the life
	FreezeTicks int // clock: enemy freeze duration
	ShieldTicks int // shovel: base shield duration
	HelmetTicks int // helmet: player invulnerability duration
}

// Item is one pickup lying on the field. Position is its top-left
// corner in pixels; it occupies a full tile.
type Item struct {
	X, Y   int
	Kind   ItemKind
	Timer  int
	Active bool
}

// Rect returns the item's tile-sized bounding box.
func (i *Item) Rect() core.Rect {
	return core.NewRect(i.X, i.Y, TileSize, TileSize)
}

// Flashing reports whether the item is in its expiry warning window.
func (i *Item) Flashing(flashTicks int) bool {
	return i.Timer <= flashTicks
}

// ItemManager owns the pickups currently on the field.
type ItemManager struct {
	cfg   ItemConfig
	items []*Item
}

// NewItemManager creates an empty manager.
func NewItemManager(cfg ItemConfig) *ItemManager {
	return &ItemManager{cfg: cfg, items: make([]*Item, 0, 4)}
}

// Config returns the timing values, for effect application upstream.
func (m *ItemManager) Config() ItemConfig {
	return m.cfg
}

// Spawn drops an item of the given kind with its top-left at (x, y).
func (m *ItemManager) Spawn(x, y int, kind ItemKind) {
	m.items = append(m.items, &Item{
		X:      x,
		Y:      y,
		Kind:   kind,
		Timer:  m.cfg.LifeTicks,
		Active: true,
	})
}

// Tick ages every item and compacts out collected and expired ones.
// Expiry is silent; only collection has an effect.
func (m *ItemManager) Tick() {
	live := m.items[:0]
	for _, i := range m.items {
		if !i.Active {
			continue
		}
		i.Timer--
		if i.Timer <= 0 {
			i.Active = false
			continue
		}
		live = append(live, i)
	}
	m.items = live
}

// Items exposes the live list for collision passes and rendering.
func (m *ItemManager) Items() []*Item {
	return m.items
}

// Clear drops every item, for stage transitions.
func (m *ItemManager) Clear() {
	m.items = m.items[:0]
}
