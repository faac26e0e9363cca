package session

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eventease-app/eventease/internal/model"
	"github.com/eventease-app/eventease/internal/repository"
)

// State bundles one anonymous session with its own registration ledger and
// check-in tracking. One State instance is one session scope: the hosting
// layer creates a State per client and never shares it across clients.
type State struct {
	mu       sync.Mutex
	session  *model.Session
	ledger   *repository.RegistrationRepository
	notifier *Notifier
	now      func() time.Time
}

// NewState constructs a State with an empty ledger. notifier may be shared
// with the directory so one subscription observes all session activity.
func NewState(notifier *Notifier) *State {
	return &State{
		ledger:   repository.NewRegistrationRepository(nil),
		notifier: notifier,
		now:      time.Now,
	}
}

// Current returns a copy of the session, or nil before the first SetSession
// or registration.
func (s *State) Current() *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	out := *s.session
	out.RegisteredEventIDs = append([]int(nil), s.session.RegisteredEventIDs...)
	return &out
}

// SetSession creates the session on first call or updates its contact
// fields and bumps last-activity on later calls.
func (s *State) SetSession(fullName, email, phone, company string) {
	s.mu.Lock()
	s.setSessionLocked(fullName, email, phone, company)
	s.mu.Unlock()

	s.notifier.Publish(Change{Kind: ChangeSessionUpdated})
}

func (s *State) setSessionLocked(fullName, email, phone, company string) {
	now := s.now()
	if s.session == nil {
		s.session = &model.Session{
			SessionID:      uuid.New().String(),
			CreatedAt:      now,
			LastActivityAt: now,
		}
	}
	s.session.FullName = fullName
	s.session.Email = email
	s.session.Phone = phone
	s.session.Company = company
	s.session.LastActivityAt = now
}

// referenceNumber builds the date-stamped registration reference used by
// anonymous sessions, e.g. EE-20260831-48312.
func (s *State) referenceNumber() string {
	return fmt.Sprintf("EE-%s-%05d", s.now().Format("20060102"), 10000+rand.Intn(90000))
}

// AddRegistration records a registration in the session ledger and marks the
// event id registered on the session. A missing session is created from the
// registrant's contact fields first, so registering always yields both a
// ledger record and a session-level marker.
func (s *State) AddRegistration(ctx context.Context, eventID int, req model.RegisterRequest) (*model.Registration, error) {
	if eventID <= 0 {
		return nil, repository.ErrInvalidInput
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, repository.ErrInvalidInput
	}

	s.mu.Lock()
	reg, err := s.ledger.Create(ctx, model.Registration{
		ConfirmationCode: s.referenceNumber(),
		EventID:          eventID,
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		Company:          req.Company,
		Tickets:          req.Tickets,
		SpecialRequests:  req.SpecialRequests,
		Newsletter:       req.Newsletter,
	})
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	if s.session == nil {
		s.setSessionLocked(req.FullName, req.Email, req.Phone, req.Company)
	}
	if !contains(s.session.RegisteredEventIDs, eventID) {
		s.session.RegisteredEventIDs = append(s.session.RegisteredEventIDs, eventID)
	}
	s.session.LastActivityAt = s.now()
	s.mu.Unlock()

	s.notifier.Publish(Change{Kind: ChangeRegistrationAdded, EventID: eventID})
	return reg, nil
}

// MyRegistrations returns the session's own ledger records, matched by the
// session email, most recent first. Without an identified session the list
// is empty.
func (s *State) MyRegistrations(ctx context.Context) ([]model.Registration, error) {
	s.mu.Lock()
	email := ""
	if s.session != nil {
		email = s.session.Email
	}
	s.mu.Unlock()

	if strings.TrimSpace(email) == "" {
		return []model.Registration{}, nil
	}
	return s.ledger.ListByEmail(ctx, email)
}

// Registrations returns the session ledger's records for one event.
func (s *State) Registrations(ctx context.Context, eventID int) ([]model.Registration, error) {
	return s.ledger.ListByEvent(ctx, eventID)
}

// IsRegistered reports whether the session has registered for the event.
func (s *State) IsRegistered(eventID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session != nil && contains(s.session.RegisteredEventIDs, eventID)
}

// CheckIn marks the registration with the given reference as attended.
func (s *State) CheckIn(ctx context.Context, code string) (*model.Registration, error) {
	reg, err := s.ledger.CheckIn(ctx, code)
	if err != nil {
		return nil, err
	}
	s.notifier.Publish(Change{Kind: ChangeCheckedIn, EventID: reg.EventID})
	return reg, nil
}

// AttendanceStats reports check-in progress for one event; total is always
// checked-in plus pending, and unknown events yield all zeroes.
func (s *State) AttendanceStats(ctx context.Context, eventID int) (model.AttendanceStats, error) {
	return s.ledger.AttendanceStats(ctx, eventID)
}

// UpdateActivity bumps the session's last-activity time.
func (s *State) UpdateActivity() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		s.session.LastActivityAt = s.now()
	}
}

// Clear drops the session unconditionally. The ledger is kept: records
// outlive the session that created them.
func (s *State) Clear() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	s.notifier.Publish(Change{Kind: ChangeSessionUpdated})
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
