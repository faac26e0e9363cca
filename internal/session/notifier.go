// Package session owns session-scoped state: the change notifier the
// hosting layer subscribes to, the lightweight anonymous-session facade, and
// the manager binding session tokens to accounts and guest sessions.
package session

import "sync"

// ChangeKind names the mutation a Change describes.
type ChangeKind string

const (
	ChangeLogin             ChangeKind = "login"
	ChangeLogout            ChangeKind = "logout"
	ChangeUserRegistered    ChangeKind = "user_registered"
	ChangeUserUpdated       ChangeKind = "user_updated"
	ChangeFavoriteAdded     ChangeKind = "favorite_added"
	ChangeFavoriteRemoved   ChangeKind = "favorite_removed"
	ChangeRegistrationAdded ChangeKind = "registration_added"
	ChangeSessionUpdated    ChangeKind = "session_updated"
	ChangeCheckedIn         ChangeKind = "checked_in"
)

// Change describes one committed mutation.
type Change struct {
	Kind    ChangeKind
	UserID  int
	EventID int
}

// Notifier fans a committed mutation out to its subscribers. Listeners run
// synchronously, exactly once per published change, and only after the
// mutation is visible to readers.
type Notifier struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func(Change)
}

// NewNotifier constructs an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{listeners: make(map[int]func(Change))}
}

// Subscribe registers a listener and returns its cancel function.
func (n *Notifier) Subscribe(fn func(Change)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

// Publish delivers the change to every subscriber.
func (n *Notifier) Publish(c Change) {
	n.mu.Lock()
	fns := make([]func(Change), 0, len(n.listeners))
	for _, fn := range n.listeners {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}
