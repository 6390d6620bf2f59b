package storage

import (
	"encoding/json"
	"sync"
)

// KV is the key to JSON-serialized-value persistence substrate. Get reports
// whether the key existed; absent keys are not an error.
type KV interface {
	Get(key string, out interface{}) (bool, error)
	Set(key string, value interface{}) error
}

// MemoryKV is an in-process KV used by tests
type MemoryKV struct {
	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

// NewMemoryKV creates an empty in-memory store
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: make(map[string]json.RawMessage)}
}

// Get implements KV
func (m *MemoryKV) Get(key string, out interface{}) (bool, error) {
	m.mu.RLock()
	raw, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

// Set implements KV
func (m *MemoryKV) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.entries[key] = raw
	m.mu.Unlock()
	return nil
}
