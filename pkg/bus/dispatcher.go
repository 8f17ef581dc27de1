package bus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Boomerang-Apps/wave/pkg/models"
)

// HandlerResult is a typed handler's outcome, surfaced to dispatch
// observers.
type HandlerResult struct {
	Success     bool                   `json:"success"`
	Data        map[string]interface{} `json:"data,omitempty"`
	ActionTaken string                 `json:"action_taken,omitempty"`
	NextAction  string                 `json:"next_action,omitempty"`
}

// EventHandler processes one typed message.
type EventHandler func(ctx context.Context, msg *models.WaveMessage) (HandlerResult, error)

// DispatchObserver fires after every dispatch, successful or not.
type DispatchObserver func(eventType models.EventType, result HandlerResult, err error)

// Dispatcher multiplexes one subscriber across per-event-type handlers.
type Dispatcher struct {
	subscriber *Subscriber

	mu        sync.RWMutex
	handlers  map[models.EventType]EventHandler
	observers []DispatchObserver
}

// NewDispatcher wraps a subscriber with typed routing.
func NewDispatcher(subscriber *Subscriber) *Dispatcher {
	return &Dispatcher{
		subscriber: subscriber,
		handlers:   map[models.EventType]EventHandler{},
	}
}

// Register binds a handler to an event type, replacing any previous one.
func (d *Dispatcher) Register(eventType models.EventType, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = handler
}

// Observe adds a dispatch observer.
func (d *Dispatcher) Observe(obs DispatchObserver) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.observers = append(d.observers, obs)
}

// Run consumes the subscriber until the context is cancelled. Messages with
// no registered handler are logged and acked.
func (d *Dispatcher) Run(ctx context.Context) error {
	return d.subscriber.Listen(ctx, func(ctx context.Context, entry Entry) error {
		d.mu.RLock()
		handler, ok := d.handlers[entry.Message.EventType]
		observers := append([]DispatchObserver(nil), d.observers...)
		d.mu.RUnlock()

		if !ok {
			slog.Debug("No handler for event", "event_type", string(entry.Message.EventType))
			return nil
		}

		result, err := handler(ctx, entry.Message)
		for _, obs := range observers {
			obs(entry.Message.EventType, result, err)
		}
		if err != nil {
			return fmt.Errorf("handler for %s failed: %w", entry.Message.EventType, err)
		}
		return nil
	})
}
