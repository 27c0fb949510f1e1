package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore()
	require.NoError(t, SeedDemo(store))
	return store
}

func TestSearchItemsEmptyQueryReturnsEverything(t *testing.T) {
	store := seededStore(t)

	all := store.SearchItems("")
	assert.Len(t, all, len(store.Items()))

	// Whitespace-only behaves like empty.
	assert.Len(t, store.SearchItems("   "), len(store.Items()))
}

func TestSearchItemsIsCaseInsensitiveSubstring(t *testing.T) {
	store := seededStore(t)

	hits := store.SearchItems("CLEAN code")
	require.Len(t, hits, 1)
	assert.Equal(t, "B002", hits[0].ID)

	hits = store.SearchItems("cormen")
	require.Len(t, hits, 1)
	assert.Equal(t, "B001", hits[0].ID)
}

func TestSearchItemsRespectsFieldSet(t *testing.T) {
	store := seededStore(t)

	// "Physics" appears in journal fields and a student profile, not titles.
	assert.Empty(t, store.SearchItems("Physics Letters", "title"))
	assert.NotEmpty(t, store.SearchItems("Physics", "field"))
}

func TestSearchItemsNoMatch(t *testing.T) {
	store := seededStore(t)
	assert.Empty(t, store.SearchItems("zzzz-not-in-catalog"))
}

func TestItemFilters(t *testing.T) {
	store := seededStore(t)

	books := store.ItemsByType(ItemBook)
	assert.Len(t, books, 6)
	assert.Len(t, store.ItemsByType(ItemMagazine), 4)
	assert.Len(t, store.ItemsByType(ItemJournal), 4)

	item, ok := store.Item("B001")
	require.True(t, ok)
	item.Available = false
	assert.Len(t, store.AvailableItems(), len(store.Items())-1)
}

func TestDuplicateIDsRejected(t *testing.T) {
	store := seededStore(t)

	err := store.AddItem(&Item{ID: "B001", Type: ItemBook, Title: "dupe"})
	assert.ErrorIs(t, err, ErrDuplicateID)

	err = store.AddUser(&User{ID: "S001", Name: "dupe"})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestNextTransactionIDIsMonotonic(t *testing.T) {
	store := NewStore()

	assert.Equal(t, "T1", store.NextTransactionID())
	assert.Equal(t, "T2", store.NextTransactionID())

	// Appending a reloaded record advances the counter past it.
	store.AppendTransaction(&Transaction{ID: "T9", Status: StatusReturned})
	assert.Equal(t, "T10", store.NextTransactionID())
}

func TestActiveTransactionMatchesTripleOnly(t *testing.T) {
	store := NewStore()
	returned := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	// An earlier returned borrow of the same item never qualifies.
	store.AppendTransaction(&Transaction{ID: "T1", UserID: "S001", ItemID: "B001", Status: StatusReturned, ReturnDate: &returned})
	store.AppendTransaction(&Transaction{ID: "T2", UserID: "S001", ItemID: "B001", Status: StatusActive})
	store.AppendTransaction(&Transaction{ID: "T3", UserID: "S002", ItemID: "B002", Status: StatusActive})

	txn, ok := store.ActiveTransaction("S001", "B001")
	require.True(t, ok)
	assert.Equal(t, "T2", txn.ID)

	_, ok = store.ActiveTransaction("S001", "B002")
	assert.False(t, ok)
}

func TestBorrowedCountIsComputedFromActiveTransactions(t *testing.T) {
	store := NewStore()

	assert.Equal(t, 0, store.BorrowedCount("S001"))

	store.AppendTransaction(&Transaction{ID: "T1", UserID: "S001", ItemID: "B001", Status: StatusActive})
	store.AppendTransaction(&Transaction{ID: "T2", UserID: "S001", ItemID: "B002", Status: StatusActive})
	store.AppendTransaction(&Transaction{ID: "T3", UserID: "S001", ItemID: "B003", Status: StatusReturned})

	assert.Equal(t, 2, store.BorrowedCount("S001"))
}

func TestStatistics(t *testing.T) {
	store := seededStore(t)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	store.AppendTransaction(&Transaction{
		ID: "T1", UserID: "S001", ItemID: "B001", Status: StatusActive,
		DueDate: now.Add(-48 * time.Hour),
	})
	store.AppendTransaction(&Transaction{
		ID: "T2", UserID: "S002", ItemID: "B002", Status: StatusActive,
		DueDate: now.Add(48 * time.Hour),
	})

	st := store.Statistics(now)
	assert.Equal(t, 7, st.TotalUsers)
	assert.Equal(t, 14, st.TotalItems)
	assert.Equal(t, 2, st.ActiveTransactions)
	assert.Equal(t, 1, st.OverdueTransactions)
	assert.Equal(t, 2, st.TotalTransactions)
}
