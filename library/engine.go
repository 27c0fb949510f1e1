package library

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Engine runs the borrow/return/fine workflow on top of the store and policy
// table. Every public operation is atomic with respect to the store: a mutex
// serializes them so no caller ever observes partial state between the
// precondition checks and the final notify/persist step.
type Engine struct {
	mu       sync.Mutex
	store    *Store
	policy   *Policy
	clock    Clock
	notifier *Notifier
	gateway  Gateway
	log      *slog.Logger
}

// NewEngine wires the engine to its collaborators. A nil clock falls back to
// the system clock and a nil logger to slog.Default.
func NewEngine(store *Store, policy *Policy, clock Clock, notifier *Notifier, gateway Gateway, log *slog.Logger) *Engine {
	if clock == nil {
		clock = SystemClock
	}
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		store:    store,
		policy:   policy,
		clock:    clock,
		notifier: notifier,
		gateway:  gateway,
		log:      log,
	}
}

// Store exposes the entity store for read-only use by presentation layers.
func (e *Engine) Store() *Store { return e.store }

// ------------------ Circulation ------------------

// Borrow checks an item out to a user. Preconditions are checked in order
// and the first failure wins: the item must exist, must be available, and
// the user must be under their role's borrow limit.
func (e *Engine) Borrow(userID, itemID string) (*Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, ok := e.store.Item(itemID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	if !item.Available {
		return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, itemID)
	}
	user, ok := e.store.User(userID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	limit := e.policy.BorrowLimit(user.Role)
	if e.store.BorrowedCount(userID) >= limit {
		return nil, &BorrowLimitError{Limit: limit}
	}

	now := e.clock.Now()
	txn := &Transaction{
		ID:         e.store.NextTransactionID(),
		UserID:     userID,
		ItemID:     itemID,
		ItemTitle:  item.Title,
		ItemType:   item.Type,
		BorrowDate: now,
		DueDate:    AddDays(now, e.policy.BorrowDuration(user.Role)),
		Status:     StatusActive,
	}
	e.store.AppendTransaction(txn)
	item.Available = false

	e.notifier.Notify(EventTransactionsChanged, e.store.Transactions())
	e.notifier.Notify(EventItemsChanged, e.store.Items())
	e.persistTransactions()
	return txn, nil
}

// Return closes the active transaction matching both user and item, computes
// the fine from the item type snapshot taken at borrow time, and puts the
// item back on the shelf. The fine is returned alongside the closed record.
func (e *Engine) Return(userID, itemID string) (float64, *Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	txn, ok := e.store.ActiveTransaction(userID, itemID)
	if !ok {
		return 0, nil, ErrNoActiveTransaction
	}

	now := e.clock.Now()
	txn.ReturnDate = &now
	if now.After(txn.DueDate) {
		txn.Fine = float64(DaysBetween(txn.DueDate, now)) * e.policy.FineRate(txn.ItemType)
	}
	txn.Status = StatusReturned

	if item, ok := e.store.Item(itemID); ok {
		item.Available = true
	}

	e.notifier.Notify(EventTransactionsChanged, e.store.Transactions())
	e.notifier.Notify(EventItemsChanged, e.store.Items())
	e.persistTransactions()
	return txn.Fine, txn, nil
}

// OverdueReport projects every active transaction past its due date into an
// enriched copy reported as Overdue. It is a pure read: stored records keep
// their persisted status, and two calls with the same now agree exactly.
func (e *Engine) OverdueReport(now time.Time) []OverdueEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	var report []OverdueEntry
	for _, t := range e.store.ActiveTransactions() {
		if !now.After(t.DueDate) {
			continue
		}
		days := DaysBetween(t.DueDate, now)
		snapshot := *t
		snapshot.Status = StatusOverdue
		report = append(report, OverdueEntry{
			Transaction: snapshot,
			DaysOverdue: days,
			CurrentFine: float64(days) * e.policy.FineRate(t.ItemType),
		})
	}
	return report
}

// ------------------ Catalog ------------------

// ItemDraft carries the caller-supplied fields for a new catalog entry.
type ItemDraft struct {
	Type      ItemType
	Title     string
	Publisher string
	Year      int

	ISBN   string
	Author string
	Genre  string
	Pages  int

	Issue    int
	Month    string
	Category string

	Volume       int
	Field        string
	Editor       string
	PeerReviewed bool
}

// AddItem creates a catalog entry. Only librarians may add items. New items
// default to available and are not persisted across restarts: the durable
// store holds transactions only, and that asymmetry is intentional.
func (e *Engine) AddItem(actor *User, draft ItemDraft) (*Item, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if actor == nil || actor.Role != RoleLibrarian {
		return nil, ErrUnauthorized
	}

	item := &Item{
		ID:           e.nextItemID(draft.Type),
		Type:         draft.Type,
		Title:        draft.Title,
		Publisher:    draft.Publisher,
		Year:         draft.Year,
		ISBN:         draft.ISBN,
		Author:       draft.Author,
		Genre:        draft.Genre,
		Pages:        draft.Pages,
		Issue:        draft.Issue,
		Month:        draft.Month,
		Category:     draft.Category,
		Volume:       draft.Volume,
		Field:        draft.Field,
		Editor:       draft.Editor,
		PeerReviewed: draft.PeerReviewed,
		Available:    true,
	}
	if err := e.store.AddItem(item); err != nil {
		return nil, err
	}

	e.notifier.Notify(EventItemsChanged, e.store.Items())
	return item, nil
}

// nextItemID derives an id from the type's initial letter plus the first
// free slot in the B001/M001/J001 sequence.
func (e *Engine) nextItemID(typ ItemType) string {
	prefix := string(typ[0])
	for n := len(e.store.ItemsByType(typ)) + 1; ; n++ {
		id := fmt.Sprintf("%s%03d", prefix, n)
		if _, taken := e.store.Item(id); !taken {
			return id
		}
	}
}

// SearchItems matches query against the default textual fields.
func (e *Engine) SearchItems(query string) []*Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.SearchItems(query)
}

// ------------------ Users ------------------

// RegisterUser validates and adds a user, hashing the supplied password.
func (e *Engine) RegisterUser(u *User, password string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !ValidUserID(u.ID) {
		return fmt.Errorf("%w: id must match S001/F001/L001 format", ErrInvalidUser)
	}
	if !ValidEmail(u.Email) {
		return fmt.Errorf("%w: malformed email", ErrInvalidUser)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	if err := e.store.AddUser(u); err != nil {
		return err
	}

	e.notifier.Notify(EventUserChanged, u)
	return nil
}

// Authenticate verifies a user's credentials. Unknown ids and wrong
// passwords fail identically.
func (e *Engine) Authenticate(userID, password string) (*User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, ok := e.store.User(userID)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ListUsers returns every registered user. Librarian only.
func (e *Engine) ListUsers(actor *User) ([]*User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if actor == nil || actor.Role != RoleLibrarian {
		return nil, ErrUnauthorized
	}
	return e.store.Users(), nil
}

// UserTransactions returns a user's full borrow history.
func (e *Engine) UserTransactions(userID string) []*Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.UserTransactions(userID)
}

// ActivityReport totals a user's borrowing history and fines.
func (e *Engine) ActivityReport(userID string) ActivityReport {
	e.mu.Lock()
	defer e.mu.Unlock()

	report := ActivityReport{UserID: userID}
	for _, t := range e.store.UserTransactions(userID) {
		report.TotalBorrowed++
		if t.Status == StatusActive {
			report.CurrentlyBorrowed++
		}
		report.TotalFines += t.Fine
	}
	return report
}

// ------------------ Persistence ------------------

// LoadTransactions restores persisted borrow records into the store. Items
// referenced by still-active records are marked unavailable so the
// availability invariant holds after a reload. Gateway failures degrade to
// an empty log with a diagnostic.
func (e *Engine) LoadTransactions() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	var records []*Transaction
	found, err := e.gateway.Load(KeyTransactions, &records)
	if err != nil {
		e.log.Error("load transactions", "key", KeyTransactions, "err", err)
		return 0
	}
	if !found {
		return 0
	}
	for _, t := range records {
		e.store.AppendTransaction(t)
		if t.Status != StatusActive {
			continue
		}
		if item, ok := e.store.Item(t.ItemID); ok {
			item.Available = false
		}
	}
	return len(records)
}

func (e *Engine) persistTransactions() {
	if err := e.gateway.Save(KeyTransactions, e.store.Transactions()); err != nil {
		e.log.Error("persist transactions", "key", KeyTransactions, "err", err)
	}
}
