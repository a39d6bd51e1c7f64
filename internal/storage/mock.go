package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/jwebster45206/breadcrumb/pkg/state"
)

// MockStore is an in-memory SessionStore for testing. It stores encoded
// records, so it round-trips sessions through serialization the same way
// the real store does.
type MockStore struct {
	mu      sync.RWMutex
	records map[string][]byte
	pingErr error
	loadErr error
	saveErr error
}

// Ensure MockStore implements SessionStore interface
var _ SessionStore = (*MockStore)(nil)

// NewMockStore creates a new mock session store.
func NewMockStore() *MockStore {
	return &MockStore{
		records: make(map[string][]byte),
	}
}

// SetPingError configures Ping to fail with the given error.
func (m *MockStore) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingErr = err
}

// SetLoadError configures LoadSession to fail with the given error.
func (m *MockStore) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

// SetSaveError configures SaveSession to fail with the given error.
func (m *MockStore) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// PutRecord stores a raw record, bypassing serialization. Used to simulate
// corrupt or legacy records.
func (m *MockStore) PutRecord(agentID string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[agentID] = data
}

// HasSession reports whether a record exists for the agent.
func (m *MockStore) HasSession(agentID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.records[agentID]
	return ok
}

func (m *MockStore) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingErr
}

func (m *MockStore) LoadSession(ctx context.Context, agentID string) (*state.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.loadErr != nil {
		return nil, m.loadErr
	}

	data, ok := m.records[agentID]
	if !ok {
		return nil, nil
	}
	return state.Decode(data)
}

func (m *MockStore) SaveSession(ctx context.Context, agentID string, sess *state.Session) error {
	if sess == nil {
		return errors.New("session cannot be nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return m.saveErr
	}

	data, err := sess.Encode()
	if err != nil {
		return err
	}
	m.records[agentID] = data
	return nil
}

func (m *MockStore) Close() error {
	return nil
}
