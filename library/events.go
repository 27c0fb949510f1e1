package library

import (
	"log/slog"

	"github.com/google/uuid"
)

// Event names broadcast by the engine after mutations.
const (
	EventUserChanged         = "userChanged"
	EventItemsChanged        = "itemsChanged"
	EventTransactionsChanged = "transactionsChanged"
	EventThemeChanged        = "themeChanged"
)

// Listener receives the payload published with an event.
type Listener func(payload any)

// Subscription is the handle returned by Subscribe, used to unsubscribe.
type Subscription struct {
	id    uuid.UUID
	event string
}

type registration struct {
	id uuid.UUID
	fn Listener
}

// Notifier is a named-event registry. Listeners for an event run
// synchronously in registration order; a panicking listener is recovered and
// logged so the remaining listeners still run.
type Notifier struct {
	log       *slog.Logger
	listeners map[string][]registration
}

// NewNotifier returns an empty registry.
func NewNotifier(log *slog.Logger) *Notifier {
	if log == nil {
		log = slog.Default()
	}
	return &Notifier{
		log:       log,
		listeners: make(map[string][]registration),
	}
}

// Subscribe registers fn for the named event. Multiple listeners per event
// are allowed and keep their insertion order.
func (n *Notifier) Subscribe(event string, fn Listener) Subscription {
	reg := registration{id: uuid.New(), fn: fn}
	n.listeners[event] = append(n.listeners[event], reg)
	return Subscription{id: reg.id, event: event}
}

// Unsubscribe removes a previously registered listener. Unknown handles are
// ignored.
func (n *Notifier) Unsubscribe(sub Subscription) {
	regs := n.listeners[sub.event]
	for i, reg := range regs {
		if reg.id == sub.id {
			n.listeners[sub.event] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Notify invokes every listener registered for event, in order, passing
// payload. Listener failures are isolated per listener.
func (n *Notifier) Notify(event string, payload any) {
	for _, reg := range n.listeners[event] {
		n.invoke(event, reg, payload)
	}
}

func (n *Notifier) invoke(event string, reg registration, payload any) {
	defer func() {
		if r := recover(); r != nil {
			n.log.Error("event listener panicked", "event", event, "panic", r)
		}
	}()
	reg.fn(payload)
}
