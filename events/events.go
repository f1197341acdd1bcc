package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeGameStarted    EventType = "game_started"
	EventTypeGameEnded      EventType = "game_ended"
	EventTypeGuessSubmitted EventType = "guess_submitted"
	EventTypeSecretFound    EventType = "secret_found"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// GameStartedEvent represents a new daily game being posted
type GameStartedEvent struct {
	GameID       int64
	ChannelID    string
	PuzzleNumber int
}

func (e GameStartedEvent) Type() EventType {
	return EventTypeGameStarted
}

// GameEndedEvent represents a game being closed at the end of its day
type GameEndedEvent struct {
	GameID      int64
	ChannelID   string
	SecretFound bool
}

func (e GameEndedEvent) Type() EventType {
	return EventTypeGameEnded
}

// GuessSubmittedEvent represents a guess being recorded or re-submitted
type GuessSubmittedEvent struct {
	GameID    int64
	ChannelID string
	UserID    string
	Word      string
	IsNew     bool
}

func (e GuessSubmittedEvent) Type() EventType {
	return EventTypeGuessSubmitted
}

// SecretFoundEvent represents a user guessing the exact secret
type SecretFoundEvent struct {
	GameID     int64
	ChannelID  string
	UserID     string
	WinnerRank int
}

func (e SecretFoundEvent) Type() EventType {
	return EventTypeSecretFound
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event to handlers")

	// Call handlers asynchronously to avoid blocking the submitter
	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// TransactionalBus stashes events raised inside a unit of work until the
// transaction commits, then flushes them to the real bus. Events raised in
// a rolled-back transaction are discarded.
type TransactionalBus struct {
	real    *Bus
	pending []Event
}

func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Flush emits pending events; called after a successful commit
func (b *TransactionalBus) Flush(ctx context.Context) error {
	log.WithFields(log.Fields{
		"pendingEventCount": len(b.pending),
	}).Debug("Flushing pending events to main event bus")

	// Events outlive the transaction context that produced them
	eventCtx := context.Background()

	for _, ev := range b.pending {
		b.real.Emit(eventCtx, ev)
	}
	b.pending = nil
	return nil
}

// Discard drops pending events; called after rollback
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
