package model

import "time"

// Status tracks the lifecycle of a registration.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusAttended  Status = "attended"
	StatusNoShow    Status = "no_show"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusAttended, StatusNoShow:
		return true
	}
	return false
}

// Registration represents one attendee's claim on a seat at an event.
type Registration struct {
	ID               int        `json:"id"`
	ConfirmationCode string     `json:"confirmation_code"`
	EventID          int        `json:"event_id"`
	UserID           int        `json:"user_id,omitempty"`
	FullName         string     `json:"full_name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Company          string     `json:"company"`
	Tickets          int        `json:"tickets"`
	SpecialRequests  string     `json:"special_requests,omitempty"`
	Newsletter       bool       `json:"newsletter"`
	Status           Status     `json:"status"`
	RegisteredAt     time.Time  `json:"registered_at"`
	CheckedIn        bool       `json:"checked_in"`
	CheckedInAt      *time.Time `json:"checked_in_at,omitempty"`
}

// Active reports whether the registration still holds a seat.
func (r *Registration) Active() bool {
	return r.Status != StatusCancelled
}
