package tanks

// Explosion animation: three phases of a fixed tick count each. The
// total matches the grid's destruction delay, so a shot tile vanishes
// exactly when its explosion finishes.
const (
	ExplosionPhases     = 3
	ExplosionPhaseTicks = 8
	ExplosionTicks      = ExplosionPhases * ExplosionPhaseTicks
)

// Explosion is one impact effect, centered on the hit position.
type Explosion struct {
	X, Y  int
	Timer int
}

// Phase returns the current animation phase, 0 through 2.
func (e *Explosion) Phase() int {
	elapsed := ExplosionTicks - e.Timer
	phase := elapsed / ExplosionPhaseTicks
	if phase >= ExplosionPhases {
		phase = ExplosionPhases - 1
	}
	return phase
}

// ExplosionManager owns the running impact effects. It is the
// ExplosionSink the grid and projectile layers report into.
type ExplosionManager struct {
	list []*Explosion
}

// NewExplosionManager creates an empty manager.
func NewExplosionManager() *ExplosionManager {
	return &ExplosionManager{list: make([]*Explosion, 0, 8)}
}

// AddExplosion starts an effect centered on the given pixel position.
func (m *ExplosionManager) AddExplosion(x, y int) {
	m.list = append(m.list, &Explosion{X: x, Y: y, Timer: ExplosionTicks})
}

// Tick ages every effect and drops the finished ones.
func (m *ExplosionManager) Tick() {
	live := m.list[:0]
	for _, e := range m.list {
		e.Timer--
		if e.Timer <= 0 {
			continue
		}
		live = append(live, e)
	}
	m.list = live
}

// Explosions exposes the running effects for rendering.
func (m *ExplosionManager) Explosions() []*Explosion {
	return m.list
}

// Clear drops every effect, for stage transitions.
func (m *ExplosionManager) Clear() {
	m.list = m.list[:0]
}
