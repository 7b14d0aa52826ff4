package core

// Event is a discrete, named gameplay occurrence emitted by the simulation.
// The core never produces sound or visuals for these itself; a platform
// collaborator subscribes and maps them to whatever feedback it supports.
type Event int

const (
	EventNone            Event = iota
	EventFire                  // a tank fired a projectile
	EventExplosion             // a projectile detonated (tile, tank or mid-air)
	EventHit                   // the player was hit but survived
	EventPlayerDestroyed       // the player lost their last life
	EventEnemyDestroyed        // an enemy tank was destroyed
	EventPickup                // the player collected an item
	EventPowerUp               // the player's power tier increased
	EventBaseLost              // the base was destroyed
	EventStageCleared          // all enemies of the stage are down
	EventGameOver              // the session entered the defeat state
)

// String returns a stable name for the event, used for logging.
func (e Event) String() string {
	switch e {
	case EventFire:
		return "fire"
	case EventExplosion:
		return "explosion"
	case EventHit:
		return "hit"
	case EventPlayerDestroyed:
		return "player-destroyed"
	case EventEnemyDestroyed:
		return "enemy-destroyed"
	case EventPickup:
		return "pickup"
	case EventPowerUp:
		return "power-up"
	case EventBaseLost:
		return "base-lost"
	case EventStageCleared:
		return "stage-cleared"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// EventSink receives gameplay events. Implementations must not block:
// Emit is called from inside the simulation tick.
type EventSink interface {
	Emit(Event)
}

// NopSink discards all events. The game falls back to it when no sink is
// attached, so gameplay logic never has to nil-check its collaborator.
type NopSink struct{}

// Emit implements EventSink.
func (NopSink) Emit(Event) {}

// EventSinkFunc adapts a plain function to the EventSink interface.
type EventSinkFunc func(Event)

// Emit implements EventSink.
func (f EventSinkFunc) Emit(e Event) { f(e) }
