package storage

import "fmt"

// Memory is an in-process gateway used in tests and as the fallback when the
// SQLite store cannot be opened. Nothing survives the process.
type Memory struct {
	values map[string][]byte
}

// NewMemory returns an empty in-process gateway.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Save serializes value under key.
func (m *Memory) Save(key string, value any) error {
	blob, err := codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	m.values[key] = blob
	return nil
}

// Load reads the value under key into dest. Absent keys report (false, nil).
func (m *Memory) Load(key string, dest any) (bool, error) {
	blob, ok := m.values[key]
	if !ok {
		return false, nil
	}
	if err := codec.Unmarshal(blob, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Remove deletes the key; deleting an absent key succeeds.
func (m *Memory) Remove(key string) error {
	delete(m.values, key)
	return nil
}
