package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryhub/storage"
)

func TestSessionLoginPersistsAndRestores(t *testing.T) {
	gateway := storage.NewMemory()
	store := seededStore(t)
	notifier := NewNotifier(quietLogger())

	sess := NewSession(gateway, notifier, quietLogger(), "light")
	user, _ := store.User("S001")
	sess.Login(user, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	require.Equal(t, user, sess.Current())

	// A fresh session over the same gateway picks the user back up.
	restored := NewSession(gateway, NewNotifier(quietLogger()), quietLogger(), "light")
	restored.Restore(store)
	require.NotNil(t, restored.Current())
	assert.Equal(t, "S001", restored.Current().ID)
}

func TestSessionLogoutClearsSnapshot(t *testing.T) {
	gateway := storage.NewMemory()
	store := seededStore(t)

	sess := NewSession(gateway, NewNotifier(quietLogger()), quietLogger(), "light")
	user, _ := store.User("F001")
	sess.Login(user, time.Now())
	sess.Logout()
	assert.Nil(t, sess.Current())

	restored := NewSession(gateway, NewNotifier(quietLogger()), quietLogger(), "light")
	restored.Restore(store)
	assert.Nil(t, restored.Current())
}

func TestSessionDiscardsStaleSnapshot(t *testing.T) {
	gateway := storage.NewMemory()

	sess := NewSession(gateway, NewNotifier(quietLogger()), quietLogger(), "light")
	sess.Login(&User{ID: "S099", Name: "Ghost"}, time.Now())

	// The snapshot references a user absent from this run's seed.
	restored := NewSession(gateway, NewNotifier(quietLogger()), quietLogger(), "light")
	restored.Restore(seededStore(t))
	assert.Nil(t, restored.Current())
}

func TestToggleThemePersistsAndNotifies(t *testing.T) {
	gateway := storage.NewMemory()
	notifier := NewNotifier(quietLogger())

	var notified string
	notifier.Subscribe(EventThemeChanged, func(payload any) { notified, _ = payload.(string) })

	sess := NewSession(gateway, notifier, quietLogger(), "light")
	assert.Equal(t, "dark", sess.ToggleTheme())
	assert.Equal(t, "dark", notified)
	assert.Equal(t, "light", sess.ToggleTheme())

	sess.ToggleTheme() // leave it dark
	restored := NewSession(gateway, NewNotifier(quietLogger()), quietLogger(), "light")
	restored.Restore(NewStore())
	assert.Equal(t, "dark", restored.Theme())
}

func TestIsLibrarian(t *testing.T) {
	store := seededStore(t)
	sess := NewSession(storage.NewMemory(), NewNotifier(quietLogger()), quietLogger(), "light")

	assert.False(t, sess.IsLibrarian())

	student, _ := store.User("S001")
	sess.Login(student, time.Now())
	assert.False(t, sess.IsLibrarian())

	librarian, _ := store.User("L001")
	sess.Login(librarian, time.Now())
	assert.True(t, sess.IsLibrarian())
}
