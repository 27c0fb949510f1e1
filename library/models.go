package library

import (
	"regexp"
	"time"
)

// Role determines a user's borrow duration, borrow limit and admin access.
type Role string

const (
	RoleStudent   Role = "Student"
	RoleFaculty   Role = "Faculty"
	RoleLibrarian Role = "Librarian"
)

// ItemType determines the fine rate charged per overdue day.
type ItemType string

const (
	ItemBook     ItemType = "Book"
	ItemMagazine ItemType = "Magazine"
	ItemJournal  ItemType = "Journal"
)

// TransactionStatus tracks the lifecycle of a borrow record. StatusOverdue is
// a read-time classification only and is never written back to the store.
type TransactionStatus string

const (
	StatusActive   TransactionStatus = "Active"
	StatusReturned TransactionStatus = "Returned"
	StatusOverdue  TransactionStatus = "Overdue"
)

// User represents a registered library patron or staff member.
// Role-specific attributes (major, department, shift, ...) live in Profile
// and are opaque to the circulation engine.
type User struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	PasswordHash string            `json:"-"` // Don't serialize password hash
	Role         Role              `json:"role"`
	Age          int               `json:"age,omitempty"`
	JoinDate     string            `json:"joinDate,omitempty"`
	Profile      map[string]string `json:"profile,omitempty"`
}

// Item represents a catalog entry and its current availability.
type Item struct {
	ID        string   `json:"id"`
	Type      ItemType `json:"type"`
	Title     string   `json:"title"`
	Publisher string   `json:"publisher,omitempty"`
	Year      int      `json:"year,omitempty"`

	// Book metadata
	ISBN   string `json:"isbn,omitempty"`
	Author string `json:"author,omitempty"`
	Genre  string `json:"genre,omitempty"`
	Pages  int    `json:"pages,omitempty"`

	// Magazine metadata
	Issue    int    `json:"issue,omitempty"`
	Month    string `json:"month,omitempty"`
	Category string `json:"category,omitempty"`

	// Journal metadata
	Volume       int    `json:"volume,omitempty"`
	Field        string `json:"field,omitempty"`
	Editor       string `json:"editor,omitempty"`
	PeerReviewed bool   `json:"peerReviewed,omitempty"`

	Available bool `json:"available"`
}

// Transaction is a borrow record. ItemTitle and ItemType are snapshots taken
// at borrow time so a later catalog edit cannot change a historical fine.
type Transaction struct {
	ID         string            `json:"id"`
	UserID     string            `json:"userId"`
	ItemID     string            `json:"itemId"`
	ItemTitle  string            `json:"itemTitle"`
	ItemType   ItemType          `json:"itemType"`
	BorrowDate time.Time         `json:"borrowDate"`
	DueDate    time.Time         `json:"dueDate"`
	ReturnDate *time.Time        `json:"returnDate"`
	Status     TransactionStatus `json:"status"`
	Fine       float64           `json:"fine"`
}

// OverdueEntry is a derived view of an Active transaction whose due date has
// passed. The embedded Transaction is a copy with Status reported as Overdue;
// the stored record is never modified.
type OverdueEntry struct {
	Transaction
	DaysOverdue int     `json:"daysOverdue"`
	CurrentFine float64 `json:"currentFine"`
}

// ActivityReport summarizes a single user's borrowing history.
type ActivityReport struct {
	UserID            string  `json:"userId"`
	TotalBorrowed     int     `json:"totalBorrowed"`
	CurrentlyBorrowed int     `json:"currentlyBorrowed"`
	TotalFines        float64 `json:"totalFines"`
}

var (
	userIDPattern = regexp.MustCompile(`^[SFL]\d{3}$`) // S001, F001, L001
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidUserID reports whether id matches the S001/F001/L001 format.
func ValidUserID(id string) bool { return userIDPattern.MatchString(id) }

// ValidEmail reports whether email looks like an email address.
func ValidEmail(email string) bool { return emailPattern.MatchString(email) }
