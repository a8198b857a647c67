// Package settings provides the durable key/value store in which tabbed keeps
// per-session state such as saved tab orders.
package settings

import (
	"sync"
)

// Store is a string keyed settings database.
type Store interface {
	// Value returns the value stored under key, or an empty string if there is
	// none.
	Value(key string) (string, error)
	// Contains reports whether a value is stored under key.
	Contains(key string) (bool, error)
	// SetValue stores value under key, overwriting any existing value.
	SetValue(key, value string) error
	// Remove deletes the value stored under key. Removing a missing key is not
	// an error.
	Remove(key string) error
}

// Memory is an in-memory Store.
type Memory struct {
	values map[string]string
	mu     sync.Mutex
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Value(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.values[key], nil
}

func (m *Memory) Contains(key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.values[key]
	return ok, nil
}

func (m *Memory) SetValue(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
