package library

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultSearchFields are the textual item fields matched by SearchItems when
// the caller does not narrow the set.
var DefaultSearchFields = []string{"title", "author", "genre", "category", "field"}

// Store owns the canonical in-memory collections of users, items and
// transactions. It is constructed explicitly and passed by reference; the
// circulation engine is its only writer.
type Store struct {
	users        []*User
	items        []*Item
	transactions []*Transaction
	nextTxn      int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{nextTxn: 1}
}

// ------------------ Users ------------------

// AddUser registers a user; the id must be unused.
func (s *Store) AddUser(u *User) error {
	if _, ok := s.User(u.ID); ok {
		return fmt.Errorf("user %s: %w", u.ID, ErrDuplicateID)
	}
	s.users = append(s.users, u)
	return nil
}

// User looks a user up by id.
func (s *Store) User(id string) (*User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

// Users returns all users in registration order.
func (s *Store) Users() []*User {
	return append([]*User(nil), s.users...)
}

// ------------------ Items ------------------

// AddItem adds a catalog entry; the id must be unused.
func (s *Store) AddItem(it *Item) error {
	if _, ok := s.Item(it.ID); ok {
		return fmt.Errorf("item %s: %w", it.ID, ErrDuplicateID)
	}
	s.items = append(s.items, it)
	return nil
}

// Item looks an item up by id.
func (s *Store) Item(id string) (*Item, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}

// Items returns the full catalog in insertion order.
func (s *Store) Items() []*Item {
	return append([]*Item(nil), s.items...)
}

// AvailableItems returns items currently on the shelf.
func (s *Store) AvailableItems() []*Item {
	var out []*Item
	for _, it := range s.items {
		if it.Available {
			out = append(out, it)
		}
	}
	return out
}

// ItemsByType filters the catalog by item type.
func (s *Store) ItemsByType(typ ItemType) []*Item {
	var out []*Item
	for _, it := range s.items {
		if it.Type == typ {
			out = append(out, it)
		}
	}
	return out
}

// SearchItems matches query case-insensitively as a substring across the
// given textual fields (DefaultSearchFields when none are passed). An empty
// query returns the full catalog unfiltered.
func (s *Store) SearchItems(query string, fields ...string) []*Item {
	if strings.TrimSpace(query) == "" {
		return s.Items()
	}
	if len(fields) == 0 {
		fields = DefaultSearchFields
	}
	needle := strings.ToLower(query)
	var out []*Item
	for _, it := range s.items {
		for _, f := range fields {
			if v := itemField(it, f); v != "" && strings.Contains(strings.ToLower(v), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

func itemField(it *Item, name string) string {
	switch name {
	case "title":
		return it.Title
	case "author":
		return it.Author
	case "publisher":
		return it.Publisher
	case "genre":
		return it.Genre
	case "category":
		return it.Category
	case "field":
		return it.Field
	case "editor":
		return it.Editor
	case "isbn":
		return it.ISBN
	default:
		return ""
	}
}

// ------------------ Transactions ------------------

// NextTransactionID hands out the next id in the T1, T2, ... sequence.
// Ids are never reused within a store's lifetime.
func (s *Store) NextTransactionID() string {
	id := fmt.Sprintf("T%d", s.nextTxn)
	s.nextTxn++
	return id
}

// AppendTransaction adds a borrow record. When records are reloaded from
// persistence, the id counter advances past them so fresh ids stay unique.
func (s *Store) AppendTransaction(t *Transaction) {
	if n, err := strconv.Atoi(strings.TrimPrefix(t.ID, "T")); err == nil && n >= s.nextTxn {
		s.nextTxn = n + 1
	}
	s.transactions = append(s.transactions, t)
}

// Transactions returns every borrow record, oldest first.
func (s *Store) Transactions() []*Transaction {
	return append([]*Transaction(nil), s.transactions...)
}

// UserTransactions returns all of a user's borrow records.
func (s *Store) UserTransactions(userID string) []*Transaction {
	var out []*Transaction
	for _, t := range s.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out
}

// ActiveTransactions returns borrow records not yet closed by a return.
func (s *Store) ActiveTransactions() []*Transaction {
	var out []*Transaction
	for _, t := range s.transactions {
		if t.Status == StatusActive {
			out = append(out, t)
		}
	}
	return out
}

// ActiveTransaction finds the single active record matching both user and
// item. Earlier returned borrows of the same item never qualify.
func (s *Store) ActiveTransaction(userID, itemID string) (*Transaction, bool) {
	for _, t := range s.transactions {
		if t.UserID == userID && t.ItemID == itemID && t.Status == StatusActive {
			return t, true
		}
	}
	return nil, false
}

// BorrowedCount is the number of a user's active borrows. It is computed
// from the transaction log rather than kept as a separate counter, so it can
// never drift or go negative.
func (s *Store) BorrowedCount(userID string) int {
	n := 0
	for _, t := range s.transactions {
		if t.UserID == userID && t.Status == StatusActive {
			n++
		}
	}
	return n
}

// ------------------ Statistics ------------------

// Statistics is a point-in-time snapshot of collection sizes.
type Statistics struct {
	TotalUsers          int `json:"totalUsers"`
	TotalItems          int `json:"totalItems"`
	AvailableItems      int `json:"availableItems"`
	TotalTransactions   int `json:"totalTransactions"`
	ActiveTransactions  int `json:"activeTransactions"`
	OverdueTransactions int `json:"overdueTransactions"`
}

// Statistics summarizes the store. Overdue counts are derived against now,
// matching the read-time overdue classification.
func (s *Store) Statistics(now time.Time) Statistics {
	st := Statistics{
		TotalUsers:        len(s.users),
		TotalItems:        len(s.items),
		TotalTransactions: len(s.transactions),
	}
	for _, it := range s.items {
		if it.Available {
			st.AvailableItems++
		}
	}
	for _, t := range s.transactions {
		if t.Status != StatusActive {
			continue
		}
		st.ActiveTransactions++
		if IsPast(t.DueDate, now) {
			st.OverdueTransactions++
		}
	}
	return st
}
