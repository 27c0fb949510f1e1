package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *SQLite {
	t.Helper()
	dir := t.TempDir()
	s, err := OpenSQLite(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

type record struct {
	ID       string             `json:"id"`
	When     time.Time          `json:"when"`
	Amount   float64            `json:"amount"`
	Tags     []string           `json:"tags"`
	Children map[string]*record `json:"children,omitempty"`
	Missing  *time.Time         `json:"missing"`
}

func TestRoundTripIsLossless(t *testing.T) {
	s := tempStore(t)

	in := record{
		ID:     "T1",
		When:   time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		Amount: 3.75,
		Tags:   []string{"overdue", "book"},
		Children: map[string]*record{
			"nested": {ID: "T2", Amount: 0.25},
		},
	}
	require.NoError(t, s.Save("txn", in))

	var out record
	found, err := s.Load("txn", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, in, out)
}

func TestLoadAbsentKey(t *testing.T) {
	s := tempStore(t)

	var out record
	found, err := s.Load("never-saved", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSaveOverwrites(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.Save("theme", "light"))
	require.NoError(t, s.Save("theme", "dark"))

	var theme string
	found, err := s.Load("theme", &theme)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "dark", theme)
}

func TestRemove(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.Save("theme", "dark"))
	require.NoError(t, s.Remove("theme"))

	var theme string
	found, err := s.Load("theme", &theme)
	require.NoError(t, err)
	assert.False(t, found)

	// Removing an absent key succeeds.
	require.NoError(t, s.Remove("theme"))
}

func TestValuesSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reopen.db")

	s1, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s1.Save("list", []int{1, 2, 3}))
	require.NoError(t, s1.Close())

	s2, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s2.Close()

	var list []int
	found, err := s2.Load("list", &list)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []int{1, 2, 3}, list)
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "nested", "lib.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Save("k", "v"))
}

func TestMemoryGateway(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.Save("k", map[string]float64{"fine": 3.00}))

	var out map[string]float64
	found, err := m.Load("k", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3.00, out["fine"])

	require.NoError(t, m.Remove("k"))
	found, err = m.Load("k", &out)
	require.NoError(t, err)
	assert.False(t, found)
}
