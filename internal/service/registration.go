package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eventease-app/eventease/internal/model"
	"github.com/eventease-app/eventease/internal/repository"
)

// RegistrationService orchestrates admission, lookups, status changes and
// check-in against the registration ledger.
type RegistrationService struct {
	events        *repository.EventRepository
	registrations *repository.RegistrationRepository
}

// NewRegistrationService constructs a RegistrationService with its
// dependencies.
func NewRegistrationService(
	events *repository.EventRepository,
	registrations *repository.RegistrationRepository,
) *RegistrationService {
	return &RegistrationService{events: events, registrations: registrations}
}

// Register validates the request and delegates the admission to the ledger,
// which checks capacity, increments the event's attendee counter and
// records the registration as one step.
func (s *RegistrationService) Register(ctx context.Context, eventID int, req model.RegisterRequest) (*model.Registration, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		return nil, fmt.Errorf("full_name is required: %w", repository.ErrInvalidInput)
	}
	if req.Email == "" {
		return nil, fmt.Errorf("email is required: %w", repository.ErrInvalidInput)
	}
	if !isValidEmail(req.Email) {
		return nil, fmt.Errorf("email is not a valid address: %w", repository.ErrInvalidInput)
	}
	if eventID <= 0 {
		return nil, repository.ErrNotFound
	}
	if req.Tickets == 0 {
		req.Tickets = 1
	}
	if req.Tickets < 0 || req.Tickets > 10 {
		return nil, fmt.Errorf("tickets must be between 1 and 10: %w", repository.ErrInvalidInput)
	}

	reg, err := s.registrations.Register(ctx, model.Registration{
		EventID:         eventID,
		UserID:          userIDFrom(ctx),
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Company:         req.Company,
		Tickets:         req.Tickets,
		SpecialRequests: req.SpecialRequests,
		Newsletter:      req.Newsletter,
	})
	if err != nil {
		// Surface domain errors directly so handlers can set correct HTTP status.
		if errors.Is(err, repository.ErrNotFound) ||
			errors.Is(err, repository.ErrEventFull) ||
			errors.Is(err, repository.ErrRegistrationClosed) ||
			errors.Is(err, repository.ErrAlreadyRegistered) {
			return nil, err
		}
		return nil, fmt.Errorf("register for event: %w", err)
	}
	return reg, nil
}

// ListByEvent returns all registrations for an event, most recent first.
// The event must exist in the catalog.
func (s *RegistrationService) ListByEvent(ctx context.Context, eventID int) ([]model.Registration, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, repository.ErrNotFound
	}
	return s.registrations.ListByEvent(ctx, eventID)
}

// ListByUser returns a user's registrations, most recent first.
func (s *RegistrationService) ListByUser(ctx context.Context, userID int) ([]model.Registration, error) {
	return s.registrations.ListByUser(ctx, userID)
}

// Get returns a single registration by id.
func (s *RegistrationService) Get(ctx context.Context, id int) (*model.Registration, error) {
	return s.registrations.GetByID(ctx, id)
}

// GetByCode returns a single registration by confirmation code.
func (s *RegistrationService) GetByCode(ctx context.Context, code string) (*model.Registration, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, repository.ErrNotFound
	}
	return s.registrations.GetByCode(ctx, code)
}

// UpdateStatus overwrites a registration's status.
func (s *RegistrationService) UpdateStatus(ctx context.Context, id int, status model.Status) error {
	if !status.Valid() {
		return fmt.Errorf("unknown status %q: %w", status, repository.ErrInvalidInput)
	}
	return s.registrations.UpdateStatus(ctx, id, status)
}

// Cancel marks a registration cancelled. The seat counter on the event is
// not decremented.
func (s *RegistrationService) Cancel(ctx context.Context, id int) error {
	return s.registrations.Cancel(ctx, id)
}

// CheckIn performs the one-shot check-in transition by confirmation code.
func (s *RegistrationService) CheckIn(ctx context.Context, code string) (*model.Registration, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, repository.ErrNotFound
	}
	return s.registrations.CheckIn(ctx, code)
}

// TicketsForEvent sums ticket counts across the event's non-cancelled
// registrations.
func (s *RegistrationService) TicketsForEvent(ctx context.Context, eventID int) (int, error) {
	return s.registrations.CountTicketsForEvent(ctx, eventID)
}

// AttendanceStats reports check-in progress for one event.
func (s *RegistrationService) AttendanceStats(ctx context.Context, eventID int) (model.AttendanceStats, error) {
	return s.registrations.AttendanceStats(ctx, eventID)
}

// isValidEmail does a basic structural check (no external deps).
func isValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	return len(parts[0]) > 0 && strings.Contains(parts[1], ".")
}
