// Package seed loads catalog and account fixtures from a JSON listing so
// deployments choose their own data instead of compiled-in literals.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/eventease-app/eventease/internal/auth"
	"github.com/eventease-app/eventease/internal/model"
	"github.com/eventease-app/eventease/internal/repository"
)

// EventFixture describes one catalog entry in the seed file.
type EventFixture struct {
	Name             string    `json:"name"`
	Date             time.Time `json:"date"`
	Location         string    `json:"location"`
	Description      string    `json:"description"`
	Capacity         int       `json:"capacity"`
	CurrentAttendees int       `json:"current_attendees"`
	Category         string    `json:"category"`
	ImageURL         string    `json:"image_url"`
}

// UserFixture describes one account in the seed file. The password is
// plaintext in the fixture and hashed at load time.
type UserFixture struct {
	FirstName     string                `json:"first_name"`
	LastName      string                `json:"last_name"`
	Email         string                `json:"email"`
	Phone         string                `json:"phone"`
	Company       string                `json:"company"`
	Password      string                `json:"password"`
	Favorites     []int                 `json:"favorites"`
	Registrations []int                 `json:"registrations"`
	Preferences   model.UserPreferences `json:"preferences"`
}

// File is the root of the seed listing.
type File struct {
	Events []EventFixture `json:"events"`
	Users  []UserFixture  `json:"users"`
}

// Load parses the seed listing at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// Apply populates the catalog and user directory from the listing.
func Apply(ctx context.Context, f *File, events *repository.EventRepository, users *repository.UserRepository, verifier auth.Verifier) error {
	for _, e := range f.Events {
		if _, err := events.Create(ctx, model.Event{
			Name:             e.Name,
			Date:             e.Date,
			Location:         e.Location,
			Description:      e.Description,
			Capacity:         e.Capacity,
			CurrentAttendees: e.CurrentAttendees,
			Category:         e.Category,
			ImageURL:         e.ImageURL,
		}); err != nil {
			return fmt.Errorf("seed event %q: %w", e.Name, err)
		}
	}

	for _, u := range f.Users {
		hash, err := verifier.Hash(u.Password)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", u.Email, err)
		}
		prefs := u.Preferences
		if prefs.Theme == "" {
			prefs = model.DefaultPreferences()
		}
		if _, err := users.Create(ctx, model.User{
			FirstName:          u.FirstName,
			LastName:           u.LastName,
			Email:              u.Email,
			Phone:              u.Phone,
			Company:            u.Company,
			PasswordHash:       hash,
			FavoriteEventIDs:   u.Favorites,
			RegisteredEventIDs: u.Registrations,
			Preferences:        prefs,
		}); err != nil {
			return fmt.Errorf("seed user %q: %w", u.Email, err)
		}
	}
	return nil
}
