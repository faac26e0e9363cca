package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager binds opaque session tokens to either an authenticated account id
// or an anonymous State. The token is what the hosting layer hands to
// clients (a cookie); every call into the core names its actor explicitly
// through it — there is no process-wide current user.
type Manager struct {
	mu       sync.Mutex
	users    map[string]int
	guests   map[string]*State
	notifier *Notifier
}

// NewManager constructs an empty Manager.
func NewManager(notifier *Notifier) *Manager {
	return &Manager{
		users:    make(map[string]int),
		guests:   make(map[string]*State),
		notifier: notifier,
	}
}

// IssueUser creates a token for an authenticated account.
func (m *Manager) IssueUser(userID int) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	token := uuid.New().String()
	m.users[token] = userID
	return token
}

// User resolves a token to the account id it was issued for.
func (m *Manager) User(token string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.users[token]
	return id, ok
}

// Revoke invalidates a token. Revoking an unknown token is a no-op.
func (m *Manager) Revoke(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.users, token)
	delete(m.guests, token)
}

// IssueGuest creates a token with a fresh anonymous session State.
func (m *Manager) IssueGuest() (string, *State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token := uuid.New().String()
	st := NewState(m.notifier)
	m.guests[token] = st
	return token, st
}

// Guest resolves a token to its anonymous session State.
func (m *Manager) Guest(token string) (*State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.guests[token]
	return st, ok
}
