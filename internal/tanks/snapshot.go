package tanks

// Snapshot captures the complete simulation state in primitive types,
// for determinism checks and debug dumps. Two runs with the same seed
// and inputs must produce identical snapshots tick for tick.
type Snapshot struct {
	Tick      uint64
	Score     int
	Stage     int
	State     string
	StateTime int

	// Player (position is fixed-point)
	PlayerX      int
	PlayerY      int
	PlayerDir    int
	PlayerTier   int
	PlayerLives  int
	PlayerInvuln int

	// Session effects
	FreezeTimer int
	ShieldTimer int
	Grenade     int

	// Terrain: GridWidth*GridHeight tile values, then the delayed
	// destruction queue (3 ints each: x, y, timer)
	TileData     []int
	PendingCount int
	PendingData  []int

	// Enemies (12 ints each: kind, health, x, y, dir, targetX,
	// targetY, moveTimer, carrier, item, fireTimer, redirectTimer)
	EnemyCount int
	EnemyData  []int

	// Spawn pipeline
	QueueData  []int
	Destroyed  int
	SpawnTimer int
	FogActive  int
	FogTileX   int
	FogTileY   int
	FogTimer   int
	FogPhase   int
	FogPending int

	// Shells (6 ints each: x, y, dir, speed, owner, tier)
	ShellCount int
	ShellData  []int

	// Items (5 ints each: x, y, kind, timer, active)
	ItemCount int
	ItemData  []int

	// RNG state
	RNGState uint64
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	tileData := make([]int, 0, GridWidth*GridHeight)
	for ty := 0; ty < GridHeight; ty++ {
		for tx := 0; tx < GridWidth; tx++ {
			tileData = append(tileData, int(g.grid.TileAt(tx, ty)))
		}
	}

	pendingData := make([]int, 0, len(g.grid.pending)*3)
	for _, p := range g.grid.pending {
		pendingData = append(pendingData, p.X, p.Y, p.Timer)
	}

	enemies := g.enemies.Enemies()
	enemyData := make([]int, 0, len(enemies)*12)
	for _, e := range enemies {
		carrier := 0
		if e.Carrier {
			carrier = 1
		}
		enemyData = append(enemyData,
			int(e.Kind), e.Health, int(e.X), int(e.Y), int(e.Dir),
			e.TargetX, e.TargetY, e.MoveTimer,
			carrier, int(e.CarriedItem), e.fireTimer, e.redirectTimer)
	}

	queueData := make([]int, 0, len(g.enemies.queue))
	for _, k := range g.enemies.queue {
		queueData = append(queueData, int(k))
	}

	shells := g.shots.Shells()
	shellData := make([]int, 0, len(shells)*6)
	shellCount := 0
	for _, p := range shells {
		if !p.Active {
			continue
		}
		shellCount++
		shellData = append(shellData, p.X, p.Y, int(p.Dir), p.Speed, int(p.Owner), int(p.Tier))
	}

	items := g.items.Items()
	itemData := make([]int, 0, len(items)*5)
	for _, it := range items {
		active := 0
		if it.Active {
			active = 1
		}
		itemData = append(itemData, it.X, it.Y, int(it.Kind), it.Timer, active)
	}

	fogActive := 0
	if g.enemies.fogActive {
		fogActive = 1
	}
	grenade := 0
	if g.grenade {
		grenade = 1
	}

	return Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:     g.score,
		Stage:     g.stage,
		State:     g.state,
		StateTime: g.stateTimer,

		PlayerX:      int(g.player.X),
		PlayerY:      int(g.player.Y),
		PlayerDir:    int(g.player.Dir),
		PlayerTier:   int(g.player.Tier),
		PlayerLives:  g.player.Lives,
		PlayerInvuln: g.player.InvulnTimer,

		FreezeTimer: g.freezeTimer,
		ShieldTimer: g.shieldTimer,
		Grenade:     grenade,

		TileData:     tileData,
		PendingCount: len(g.grid.pending),
		PendingData:  pendingData,

		EnemyCount: len(enemies),
		EnemyData:  enemyData,

		QueueData:  queueData,
		Destroyed:  g.enemies.destroyed,
		SpawnTimer: g.enemies.spawnTimer,
		FogActive:  fogActive,
		FogTileX:   g.enemies.fogTileX,
		FogTileY:   g.enemies.fogTileY,
		FogTimer:   g.enemies.fogTimer,
		FogPhase:   g.enemies.fogPhase,
		FogPending: int(g.enemies.pending),

		ShellCount: shellCount,
		ShellData:  shellData,

		ItemCount: len(items),
		ItemData:  itemData,

		RNGState: g.rng.state,
	}
}

// Hash folds the snapshot into one value for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stage)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.StateTime)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerDir)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerTier)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerLives)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerInvuln) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FreezeTimer)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShieldTimer)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Grenade)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Destroyed)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnTimer)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FogActive)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FogPhase)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShellCount)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ItemCount)    //#nosec G115 -- hash computation

	for _, r := range snap.State {
		h = h*31 + uint64(r)
	}
	for _, v := range snap.TileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PendingData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.QueueData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ShellData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ItemData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState
	return h
}
