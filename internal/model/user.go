package model

import "time"

// UserPreferences bundles per-account display and notification settings.
type UserPreferences struct {
	PreferredCategories []string `json:"preferred_categories"`
	EmailNotifications  bool     `json:"email_notifications"`
	SMSNotifications    bool     `json:"sms_notifications"`
	Theme               string   `json:"theme"`
	Language            string   `json:"language"`
	EventsPerPage       int      `json:"events_per_page"`
}

// DefaultPreferences returns the settings applied to new accounts.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		EmailNotifications: true,
		Theme:              "light",
		Language:           "en",
		EventsPerPage:      12,
	}
}

// User is a registered account. The email address doubles as the login key
// and is matched case-insensitively.
type User struct {
	ID                 int             `json:"id"`
	FirstName          string          `json:"first_name"`
	LastName           string          `json:"last_name"`
	Email              string          `json:"email"`
	Phone              string          `json:"phone"`
	Company            string          `json:"company"`
	PasswordHash       string          `json:"-"`
	FavoriteEventIDs   []int           `json:"favorite_event_ids"`
	RegisteredEventIDs []int           `json:"registered_event_ids"`
	Preferences        UserPreferences `json:"preferences"`
	CreatedAt          time.Time       `json:"created_at"`
	LastLoginAt        time.Time       `json:"last_login_at"`
}

// FullName joins the first and last name for display.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
