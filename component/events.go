package component

import "time"

// GameEventType defines the kind of gameplay event.
type GameEventType string

const (
	EventCoinCollected   GameEventType = "coin_collected"
	EventBottleCollected GameEventType = "bottle_collected"
	EventBottleThrown    GameEventType = "bottle_thrown"
	EventBottleSplashed  GameEventType = "bottle_splashed"
	EventEnemyHit        GameEventType = "enemy_hit"
	EventEnemyStomped    GameEventType = "enemy_stomped"
	EventCharacterHurt   GameEventType = "character_hurt"
	EventWon             GameEventType = "won"
	EventLost            GameEventType = "lost"
)

// GameEvent is emitted by the world while resolving a tick.
type GameEvent struct {
	Type   GameEventType
	Kind   string
	Amount int
	At     time.Duration
	PosX   float64
	PosY   float64
}

// GameEventHandler handles game events.
type GameEventHandler func(evt GameEvent)

// GameEventEmitter fans events out to registered handlers.
type GameEventEmitter struct {
	Handlers []GameEventHandler
}

// Subscribe adds a handler.
func (e *GameEventEmitter) Subscribe(h GameEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends an event to all handlers.
func (e *GameEventEmitter) Emit(evt GameEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
