// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the repository layer.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/eventease-app/eventease/internal/model"
	"github.com/eventease-app/eventease/internal/repository"
)

// EventService orchestrates catalog operations.
type EventService struct {
	events *repository.EventRepository
}

// NewEventService constructs an EventService with its dependencies.
func NewEventService(events *repository.EventRepository) *EventService {
	return &EventService{events: events}
}

// CreateEvent validates the request and delegates to the catalog.
func (s *EventService) CreateEvent(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, fmt.Errorf("event name is required: %w", repository.ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("event date is required: %w", repository.ErrInvalidInput)
	}
	// Zero capacity is legal: it models a closed event.
	if req.Capacity < 0 {
		return nil, fmt.Errorf("capacity cannot be negative: %w", repository.ErrInvalidInput)
	}
	if req.Capacity > 100_000 {
		return nil, fmt.Errorf("capacity cannot exceed 100,000: %w", repository.ErrInvalidInput)
	}
	if req.CurrentAttendees < 0 {
		return nil, fmt.Errorf("attendee count cannot be negative: %w", repository.ErrInvalidInput)
	}

	return s.events.Create(ctx, model.Event{
		Name:             req.Name,
		Date:             req.Date,
		Location:         strings.TrimSpace(req.Location),
		Description:      req.Description,
		Capacity:         req.Capacity,
		CurrentAttendees: req.CurrentAttendees,
		Category:         strings.TrimSpace(req.Category),
		ImageURL:         req.ImageURL,
	})
}

// ListEvents returns all events, optionally filtered by category.
func (s *EventService) ListEvents(ctx context.Context, category string) ([]model.Event, error) {
	if category != "" {
		return s.events.FilterByCategory(ctx, category)
	}
	return s.events.List(ctx)
}

// GetEvent returns a single event by id.
func (s *EventService) GetEvent(ctx context.Context, id int) (*model.Event, error) {
	return s.events.GetByID(ctx, id)
}

// UpdateEvent validates the new field values and overwrites the stored
// event. An unknown id is not an error; the catalog silently no-ops.
func (s *EventService) UpdateEvent(ctx context.Context, id int, req model.CreateEventRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fmt.Errorf("event name is required: %w", repository.ErrInvalidInput)
	}
	if req.Capacity < 0 {
		return fmt.Errorf("capacity cannot be negative: %w", repository.ErrInvalidInput)
	}
	return s.events.Update(ctx, model.Event{
		ID:          id,
		Name:        req.Name,
		Date:        req.Date,
		Location:    strings.TrimSpace(req.Location),
		Description: req.Description,
		Capacity:    req.Capacity,
		Category:    strings.TrimSpace(req.Category),
		ImageURL:    req.ImageURL,
	})
}

// DeleteEvent removes an event. Ledger records referencing it are left in
// place and stay retrievable.
func (s *EventService) DeleteEvent(ctx context.Context, id int) error {
	return s.events.Delete(ctx, id)
}
