package model

import "time"

// CreateEventRequest is the payload for creating a new event.
type CreateEventRequest struct {
	Name             string    `json:"name"`
	Date             time.Time `json:"date"`
	Location         string    `json:"location"`
	Description      string    `json:"description"`
	Capacity         int       `json:"capacity"`
	CurrentAttendees int       `json:"current_attendees"`
	Category         string    `json:"category"`
	ImageURL         string    `json:"image_url"`
}

// RegisterRequest is the payload for registering for an event.
type RegisterRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Company         string `json:"company"`
	Tickets         int    `json:"tickets"`
	SpecialRequests string `json:"special_requests"`
	Newsletter      bool   `json:"newsletter"`
}

// SignupRequest is the payload for creating a user account.
type SignupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Password  string `json:"password"`
}

// LoginRequest is the payload for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the payload for editing account profile fields.
type UpdateUserRequest struct {
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Company     string          `json:"company"`
	Preferences UserPreferences `json:"preferences"`
}

// SetSessionRequest is the payload for creating or updating an anonymous
// session.
type SetSessionRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
}

// UpdateStatusRequest is the payload for overwriting a registration status.
type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

// CheckInRequest is the payload for checking in a registration by code.
type CheckInRequest struct {
	Code string `json:"code"`
}

// AttendanceStats summarises check-in progress for one event.
type AttendanceStats struct {
	Total     int `json:"total"`
	CheckedIn int `json:"checked_in"`
	Pending   int `json:"pending"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
