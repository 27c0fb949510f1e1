package library

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotifyRunsListenersInRegistrationOrder(t *testing.T) {
	n := NewNotifier(quietLogger())

	var calls []string
	n.Subscribe(EventItemsChanged, func(any) { calls = append(calls, "first") })
	n.Subscribe(EventItemsChanged, func(any) { calls = append(calls, "second") })
	n.Subscribe(EventItemsChanged, func(any) { calls = append(calls, "third") })

	n.Notify(EventItemsChanged, nil)
	assert.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestNotifyPassesPayload(t *testing.T) {
	n := NewNotifier(quietLogger())

	var got any
	n.Subscribe(EventThemeChanged, func(payload any) { got = payload })

	n.Notify(EventThemeChanged, "dark")
	assert.Equal(t, "dark", got)
}

func TestPanickingListenerDoesNotStopOthers(t *testing.T) {
	n := NewNotifier(quietLogger())

	var survived bool
	n.Subscribe(EventTransactionsChanged, func(any) { panic("boom") })
	n.Subscribe(EventTransactionsChanged, func(any) { survived = true })

	n.Notify(EventTransactionsChanged, nil)
	assert.True(t, survived)
}

func TestUnsubscribe(t *testing.T) {
	n := NewNotifier(quietLogger())

	var first, second int
	sub := n.Subscribe(EventUserChanged, func(any) { first++ })
	n.Subscribe(EventUserChanged, func(any) { second++ })

	n.Notify(EventUserChanged, nil)
	n.Unsubscribe(sub)
	n.Notify(EventUserChanged, nil)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)

	// Unsubscribing twice is harmless.
	n.Unsubscribe(sub)
}

func TestNotifyUnknownEventIsNoOp(t *testing.T) {
	n := NewNotifier(quietLogger())
	n.Notify("neverSubscribed", nil)
}
