package repository

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/eventease-app/eventease/internal/model"
)

// UserRepository holds the user accounts. Emails are unique
// case-insensitively and serve as the login key.
type UserRepository struct {
	mu    sync.Mutex
	users []model.User
	now   func() time.Time
}

// NewUserRepository constructs an empty UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{now: time.Now}
}

// Create appends a new account, assigning the next id after the current
// maximum and stamping the creation and last-login times. An existing
// account with the same email rejects the call.
func (r *UserRepository) Create(ctx context.Context, u model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, u.Email) {
			return nil, ErrEmailTaken
		}
		if r.users[i].ID > maxID {
			maxID = r.users[i].ID
		}
	}
	u.ID = maxID + 1
	now := r.now()
	u.CreatedAt = now
	u.LastLoginAt = now
	r.users = append(r.users, u)

	stored := u
	return &stored, nil
}

// GetByID returns a single account or ErrNotFound.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexByID(id); i >= 0 {
		u := cloneUser(r.users[i])
		return &u, nil
	}
	return nil, ErrNotFound
}

// cloneUser copies the account including its id-set slices so callers never
// alias the stored collections.
func cloneUser(u model.User) model.User {
	u.FavoriteEventIDs = slices.Clone(u.FavoriteEventIDs)
	u.RegisteredEventIDs = slices.Clone(u.RegisteredEventIDs)
	u.Preferences.PreferredCategories = slices.Clone(u.Preferences.PreferredCategories)
	return u
}

// GetByEmail returns the account with the given email, matched
// case-insensitively.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			u := cloneUser(r.users[i])
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// Update overwrites the profile fields of the stored account with the same
// id. The id-sets, password hash and timestamps are not touched.
func (r *UserRepository) Update(ctx context.Context, u model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByID(u.ID)
	if i < 0 {
		return ErrNotFound
	}
	r.users[i].FirstName = u.FirstName
	r.users[i].LastName = u.LastName
	r.users[i].Email = u.Email
	r.users[i].Phone = u.Phone
	r.users[i].Company = u.Company
	r.users[i].Preferences = u.Preferences
	return nil
}

// TouchLogin stamps the account's last-login time.
func (r *UserRepository) TouchLogin(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByID(id)
	if i < 0 {
		return ErrNotFound
	}
	r.users[i].LastLoginAt = r.now()
	return nil
}

// AddFavorite adds an event id to the account's favorites. Adding an
// already-present id is a no-op reporting false.
func (r *UserRepository) AddFavorite(ctx context.Context, userID, eventID int) (bool, error) {
	return r.addToSet(userID, eventID, favoriteSet)
}

// RemoveFavorite removes an event id from the account's favorites. Removing
// an absent id is a no-op reporting false.
func (r *UserRepository) RemoveFavorite(ctx context.Context, userID, eventID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByID(userID)
	if i < 0 {
		return false, ErrNotFound
	}
	j := slices.Index(r.users[i].FavoriteEventIDs, eventID)
	if j < 0 {
		return false, nil
	}
	r.users[i].FavoriteEventIDs = slices.Delete(r.users[i].FavoriteEventIDs, j, j+1)
	return true, nil
}

// AddRegistration adds an event id to the account's registered set with the
// same idempotent semantics as AddFavorite.
func (r *UserRepository) AddRegistration(ctx context.Context, userID, eventID int) (bool, error) {
	return r.addToSet(userID, eventID, registeredSet)
}

type idSet int

const (
	favoriteSet idSet = iota
	registeredSet
)

func (r *UserRepository) addToSet(userID, eventID int, set idSet) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByID(userID)
	if i < 0 {
		return false, ErrNotFound
	}
	target := &r.users[i].FavoriteEventIDs
	if set == registeredSet {
		target = &r.users[i].RegisteredEventIDs
	}
	if slices.Contains(*target, eventID) {
		return false, nil
	}
	*target = append(*target, eventID)
	return true, nil
}

// IsFavorite reports membership in the account's favorite set, false for
// unknown accounts.
func (r *UserRepository) IsFavorite(ctx context.Context, userID, eventID int) bool {
	return r.inSet(userID, eventID, favoriteSet)
}

// IsRegistered reports membership in the account's registered set, false for
// unknown accounts.
func (r *UserRepository) IsRegistered(ctx context.Context, userID, eventID int) bool {
	return r.inSet(userID, eventID, registeredSet)
}

func (r *UserRepository) inSet(userID, eventID int, set idSet) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByID(userID)
	if i < 0 {
		return false
	}
	if set == registeredSet {
		return slices.Contains(r.users[i].RegisteredEventIDs, eventID)
	}
	return slices.Contains(r.users[i].FavoriteEventIDs, eventID)
}

// Favorites returns a copy of the account's favorite event ids.
func (r *UserRepository) Favorites(ctx context.Context, userID int) []int {
	return r.setCopy(userID, favoriteSet)
}

// Registrations returns a copy of the account's registered event ids.
func (r *UserRepository) Registrations(ctx context.Context, userID int) []int {
	return r.setCopy(userID, registeredSet)
}

func (r *UserRepository) setCopy(userID int, set idSet) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByID(userID)
	if i < 0 {
		return []int{}
	}
	src := r.users[i].FavoriteEventIDs
	if set == registeredSet {
		src = r.users[i].RegisteredEventIDs
	}
	return slices.Clone(src)
}

func (r *UserRepository) indexByID(id int) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}
