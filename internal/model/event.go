// Package model defines the core domain types for the event registration
// application.
package model

import "time"

// Event represents a scheduled event attendees can register for.
type Event struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Date             time.Time `json:"date"`
	Location         string    `json:"location"`
	Description      string    `json:"description"`
	Capacity         int       `json:"capacity"`
	CurrentAttendees int       `json:"current_attendees"`
	Category         string    `json:"category"`
	ImageURL         string    `json:"image_url"`
}

// AvailableSeats returns the number of seats still open, never negative.
func (e *Event) AvailableSeats() int {
	if e.CurrentAttendees >= e.Capacity {
		return 0
	}
	return e.Capacity - e.CurrentAttendees
}

// OccupancyPercentage returns how full the event is, clamped to [0, 100].
// Events with no capacity report 0.
func (e *Event) OccupancyPercentage() float64 {
	if e.Capacity <= 0 {
		return 0
	}
	pct := float64(e.CurrentAttendees) / float64(e.Capacity) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// IsRegistrationOpen reports whether the event still accepts registrations
// at the given instant.
func (e *Event) IsRegistrationOpen(now time.Time) bool {
	return e.Capacity > 0 &&
		e.CurrentAttendees < e.Capacity &&
		e.Date.After(now)
}

// IsFull returns true when no seats remain.
func (e *Event) IsFull() bool {
	return e.CurrentAttendees >= e.Capacity
}
