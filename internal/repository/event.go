package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/eventease-app/eventease/internal/model"
)

// EventRepository holds the event catalog. Events keep insertion order;
// lookups are linear scans over a small collection.
type EventRepository struct {
	mu     sync.Mutex
	events []model.Event
}

// NewEventRepository constructs an empty EventRepository.
func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

// List returns all events in insertion order. An empty catalog yields an
// empty slice, never an error.
func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Event, len(r.events))
	copy(out, r.events)
	return out, nil
}

// GetByID returns a single event or ErrNotFound. Non-positive ids are
// rejected without scanning.
func (r *EventRepository) GetByID(ctx context.Context, id int) (*model.Event, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.events {
		if r.events[i].ID == id {
			e := r.events[i]
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

// FilterByCategory returns the events whose category matches name,
// case-insensitively. No match yields an empty slice.
func (r *EventRepository) FilterByCategory(ctx context.Context, name string) ([]model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []model.Event
	for i := range r.events {
		if strings.EqualFold(r.events[i].Category, name) {
			out = append(out, r.events[i])
		}
	}
	return out, nil
}

// Create appends a new event, assigning the next id after the current
// maximum. Duplicate names are not detected.
func (r *EventRepository) Create(ctx context.Context, e model.Event) (*model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for i := range r.events {
		if r.events[i].ID > maxID {
			maxID = r.events[i].ID
		}
	}
	e.ID = maxID + 1
	r.events = append(r.events, e)
	return &e, nil
}

// Update overwrites the mutable fields of the stored event with the same id.
// An absent id is a silent no-op, not an error.
func (r *EventRepository) Update(ctx context.Context, e model.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.events {
		if r.events[i].ID == e.ID {
			r.events[i].Name = e.Name
			r.events[i].Date = e.Date
			r.events[i].Location = e.Location
			r.events[i].Description = e.Description
			r.events[i].Capacity = e.Capacity
			r.events[i].Category = e.Category
			r.events[i].ImageURL = e.ImageURL
			return nil
		}
	}
	return nil
}

// Delete removes the event with the given id. Registrations referencing the
// event are not touched; an absent id is a no-op.
func (r *EventRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.events {
		if r.events[i].ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return nil
}

// reserveSeat checks that the event exists and accepts registrations at now,
// then increments its attendee counter. The check and the increment happen
// under the catalog lock so concurrent admissions cannot overbook.
func (r *EventRepository) reserveSeat(id int, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.events {
		if r.events[i].ID != id {
			continue
		}
		e := &r.events[i]
		if e.IsFull() && e.Capacity > 0 {
			return ErrEventFull
		}
		if !e.IsRegistrationOpen(now) {
			return ErrRegistrationClosed
		}
		e.CurrentAttendees++
		return nil
	}
	return ErrNotFound
}
