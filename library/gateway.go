package library

// Storage keys used by the engine and session. Only transactions are durably
// persisted across restarts; items and user mutations are session-scoped.
const (
	KeyTransactions = "library_transactions"
	KeySession      = "library_user_session"
	KeyTheme        = "library_theme"
)

// Gateway is the durable key-value store the engine persists into. Values
// round-trip losslessly as structured text. Implementations live outside the
// core (see the storage package); the engine treats every gateway failure as
// recoverable and degrades to a no-op with a diagnostic log.
type Gateway interface {
	// Save serializes value under key, replacing any previous value.
	Save(key string, value any) error
	// Load deserializes the value under key into dest. It reports false
	// with a nil error when the key is absent.
	Load(key string, dest any) (bool, error)
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
}
