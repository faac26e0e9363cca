package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eventease-app/eventease/internal/auth"
	"github.com/eventease-app/eventease/internal/model"
	"github.com/eventease-app/eventease/internal/repository"
	"github.com/eventease-app/eventease/internal/session"
)

// ErrInvalidCredentials is returned when an email/password pair does not
// match any account.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Directory manages user accounts: authentication, profile updates, and the
// per-account favorite and registered event-id sets. Callers name the acting
// account explicitly on every call; which account a request acts as is owned
// by the hosting layer's session scope, never by the Directory.
type Directory struct {
	users    *repository.UserRepository
	verifier auth.Verifier
	notifier *session.Notifier
}

// NewDirectory constructs a Directory with its dependencies.
func NewDirectory(users *repository.UserRepository, verifier auth.Verifier, notifier *session.Notifier) *Directory {
	return &Directory{users: users, verifier: verifier, notifier: notifier}
}

func userIDFrom(ctx context.Context) int {
	return session.UserIDFromContext(ctx)
}

// Login authenticates an email/password pair. The email is matched
// case-insensitively, the password through the configured verifier. Success
// stamps the last-login time; failure has no side effects.
func (d *Directory) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := d.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if !d.verifier.Verify(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	if err := d.users.TouchLogin(ctx, u.ID); err != nil {
		return nil, fmt.Errorf("stamp last login: %w", err)
	}
	d.notifier.Publish(session.Change{Kind: session.ChangeLogin, UserID: u.ID})
	return u, nil
}

// Register creates a new account. The email must not belong to an existing
// account, compared case-insensitively. The created account is returned so
// the caller can bind it to its session: signing up doubles as logging in.
func (d *Directory) Register(ctx context.Context, req model.SignupRequest) (*model.User, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if req.FirstName == "" && req.LastName == "" {
		return nil, fmt.Errorf("name is required: %w", repository.ErrInvalidInput)
	}
	if !isValidEmail(req.Email) {
		return nil, fmt.Errorf("email is not a valid address: %w", repository.ErrInvalidInput)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters: %w", repository.ErrInvalidInput)
	}

	hash, err := d.verifier.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	u, err := d.users.Create(ctx, model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		PasswordHash: hash,
		Preferences:  model.DefaultPreferences(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}
	d.notifier.Publish(session.Change{Kind: session.ChangeUserRegistered, UserID: u.ID})
	return u, nil
}

// Logout records the end of a session. Token revocation itself belongs to
// the session manager; the directory only raises the change notification.
func (d *Directory) Logout(ctx context.Context, userID int) {
	d.notifier.Publish(session.Change{Kind: session.ChangeLogout, UserID: userID})
}

// UpdateUser overwrites the profile fields of the account with the given id.
func (d *Directory) UpdateUser(ctx context.Context, userID int, req model.UpdateUserRequest) (*model.User, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if !isValidEmail(req.Email) {
		return nil, fmt.Errorf("email is not a valid address: %w", repository.ErrInvalidInput)
	}

	err := d.users.Update(ctx, model.User{
		ID:          userID,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Preferences: req.Preferences,
	})
	if err != nil {
		return nil, err
	}
	d.notifier.Publish(session.Change{Kind: session.ChangeUserUpdated, UserID: userID})
	return d.users.GetByID(ctx, userID)
}

// GetUser returns a single account by id.
func (d *Directory) GetUser(ctx context.Context, userID int) (*model.User, error) {
	return d.users.GetByID(ctx, userID)
}

// AddFavorite adds an event to the acting account's favorites. Adding an
// already-present event reports false and raises no notification.
func (d *Directory) AddFavorite(ctx context.Context, userID, eventID int) (bool, error) {
	changed, err := d.users.AddFavorite(ctx, userID, eventID)
	if err != nil || !changed {
		return false, err
	}
	d.notifier.Publish(session.Change{Kind: session.ChangeFavoriteAdded, UserID: userID, EventID: eventID})
	return true, nil
}

// RemoveFavorite removes an event from the acting account's favorites.
// Removing an absent event reports false and raises no notification.
func (d *Directory) RemoveFavorite(ctx context.Context, userID, eventID int) (bool, error) {
	changed, err := d.users.RemoveFavorite(ctx, userID, eventID)
	if err != nil || !changed {
		return false, err
	}
	d.notifier.Publish(session.Change{Kind: session.ChangeFavoriteRemoved, UserID: userID, EventID: eventID})
	return true, nil
}

// AddRegistration marks an event registered on the acting account.
func (d *Directory) AddRegistration(ctx context.Context, userID, eventID int) (bool, error) {
	changed, err := d.users.AddRegistration(ctx, userID, eventID)
	if err != nil || !changed {
		return false, err
	}
	d.notifier.Publish(session.Change{Kind: session.ChangeRegistrationAdded, UserID: userID, EventID: eventID})
	return true, nil
}

// IsFavorite reports favorite-set membership, false for unknown accounts.
func (d *Directory) IsFavorite(ctx context.Context, userID, eventID int) bool {
	return d.users.IsFavorite(ctx, userID, eventID)
}

// IsRegistered reports registered-set membership, false for unknown
// accounts.
func (d *Directory) IsRegistered(ctx context.Context, userID, eventID int) bool {
	return d.users.IsRegistered(ctx, userID, eventID)
}

// Favorites returns the acting account's favorite event ids.
func (d *Directory) Favorites(ctx context.Context, userID int) []int {
	return d.users.Favorites(ctx, userID)
}

// Registrations returns the acting account's registered event ids.
func (d *Directory) Registrations(ctx context.Context, userID int) []int {
	return d.users.Registrations(ctx, userID)
}
