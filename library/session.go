package library

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// sessionSnapshot is what survives a restart: enough to restore the current
// user without storing credentials.
type sessionSnapshot struct {
	Token   uuid.UUID `json:"token"`
	UserID  string    `json:"userId"`
	SavedAt time.Time `json:"savedAt"`
}

// Session tracks the current user and theme preference, persisting both
// through the gateway. Gateway failures degrade to in-memory state only.
type Session struct {
	gateway  Gateway
	notifier *Notifier
	log      *slog.Logger
	current  *User
	theme    string
}

// NewSession starts an anonymous session with the given default theme.
func NewSession(gateway Gateway, notifier *Notifier, log *slog.Logger, defaultTheme string) *Session {
	if log == nil {
		log = slog.Default()
	}
	if defaultTheme == "" {
		defaultTheme = "light"
	}
	return &Session{
		gateway:  gateway,
		notifier: notifier,
		log:      log,
		theme:    defaultTheme,
	}
}

// Restore reloads the persisted theme and current-user snapshot, resolving
// the user against the store. A stale snapshot for an unknown user is
// discarded.
func (s *Session) Restore(store *Store) {
	var theme string
	if found, err := s.gateway.Load(KeyTheme, &theme); err != nil {
		s.log.Error("load theme", "key", KeyTheme, "err", err)
	} else if found && theme != "" {
		s.theme = theme
	}

	var snap sessionSnapshot
	found, err := s.gateway.Load(KeySession, &snap)
	if err != nil {
		s.log.Error("load session", "key", KeySession, "err", err)
		return
	}
	if !found {
		return
	}
	if user, ok := store.User(snap.UserID); ok {
		s.current = user
		s.notifier.Notify(EventUserChanged, user)
	} else {
		_ = s.gateway.Remove(KeySession)
	}
}

// Login makes user the current user and persists the session snapshot.
func (s *Session) Login(user *User, now time.Time) {
	s.current = user
	snap := sessionSnapshot{Token: uuid.New(), UserID: user.ID, SavedAt: now}
	if err := s.gateway.Save(KeySession, snap); err != nil {
		s.log.Error("persist session", "key", KeySession, "err", err)
	}
	s.notifier.Notify(EventUserChanged, user)
}

// Logout clears the current user and removes the persisted snapshot.
func (s *Session) Logout() {
	s.current = nil
	if err := s.gateway.Remove(KeySession); err != nil {
		s.log.Error("remove session", "key", KeySession, "err", err)
	}
	s.notifier.Notify(EventUserChanged, nil)
}

// Current returns the logged-in user, or nil for an anonymous session.
func (s *Session) Current() *User { return s.current }

// IsLibrarian reports whether the current user has admin access.
func (s *Session) IsLibrarian() bool {
	return s.current != nil && s.current.Role == RoleLibrarian
}

// Theme returns the active theme.
func (s *Session) Theme() string { return s.theme }

// ToggleTheme flips between light and dark, persists the choice and notifies
// listeners.
func (s *Session) ToggleTheme() string {
	if s.theme == "light" {
		s.theme = "dark"
	} else {
		s.theme = "light"
	}
	if err := s.gateway.Save(KeyTheme, s.theme); err != nil {
		s.log.Error("persist theme", "key", KeyTheme, "err", err)
	}
	s.notifier.Notify(EventThemeChanged, s.theme)
	return s.theme
}
