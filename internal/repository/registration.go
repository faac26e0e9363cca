package repository

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/eventease-app/eventease/internal/model"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// confirmationCode draws an 8-character uppercase-alphanumeric code.
// Collisions are possible and not checked.
func confirmationCode() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}

// RegistrationRepository is the registration ledger. It records who holds a
// seat at which event, enforces at-most-one active registration per person
// and event, and tracks check-in state.
//
// A ledger constructed with a catalog performs authoritative admission:
// Register checks capacity, increments the event's attendee counter and
// appends the ledger record as one step. A ledger without a catalog (the
// anonymous session variant) only records via Create.
type RegistrationRepository struct {
	mu     sync.Mutex
	regs   []model.Registration
	nextID int
	events *EventRepository
	now    func() time.Time
}

// NewRegistrationRepository constructs a ledger. events may be nil for
// ledgers that never admit against a catalog.
func NewRegistrationRepository(events *EventRepository) *RegistrationRepository {
	return &RegistrationRepository{nextID: 1, events: events, now: time.Now}
}

// existsActive reports whether a non-cancelled registration already exists
// for the same person and event. Identity is the user id when present,
// otherwise the email address, matched case-insensitively.
func (r *RegistrationRepository) existsActive(eventID, userID int, email string) bool {
	for i := range r.regs {
		reg := &r.regs[i]
		if reg.EventID != eventID || !reg.Active() {
			continue
		}
		if userID > 0 && reg.UserID == userID {
			return true
		}
		if userID == 0 && strings.EqualFold(reg.Email, email) {
			return true
		}
	}
	return false
}

func (r *RegistrationRepository) store(reg model.Registration, status model.Status) model.Registration {
	reg.ID = r.nextID
	r.nextID++
	reg.RegisteredAt = r.now()
	reg.Status = status
	if reg.ConfirmationCode == "" {
		reg.ConfirmationCode = confirmationCode()
	}
	r.regs = append(r.regs, reg)
	return reg
}

// Create appends a ledger record without consulting any catalog. The new
// record starts pending with a fresh confirmation code; a duplicate active
// registration for the same person and event is rejected.
func (r *RegistrationRepository) Create(ctx context.Context, reg model.Registration) (*model.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.existsActive(reg.EventID, reg.UserID, reg.Email) {
		return nil, ErrAlreadyRegistered
	}
	stored := r.store(reg, model.StatusPending)
	return &stored, nil
}

// Register is the authoritative admission path: it rejects duplicates,
// reserves a seat on the catalog (existence, open-for-registration and
// capacity checks plus the counter increment happen atomically there), and
// appends a confirmed ledger record. The ledger lock is held across all
// three steps so concurrent attempts by the same person cannot both pass the
// duplicate check.
func (r *RegistrationRepository) Register(ctx context.Context, reg model.Registration) (*model.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.events == nil {
		return nil, ErrNotFound
	}
	if r.existsActive(reg.EventID, reg.UserID, reg.Email) {
		return nil, ErrAlreadyRegistered
	}
	if err := r.events.reserveSeat(reg.EventID, r.now()); err != nil {
		return nil, err
	}
	stored := r.store(reg, model.StatusConfirmed)
	return &stored, nil
}

// ListByUser returns the user's registrations, most recent first.
func (r *RegistrationRepository) ListByUser(ctx context.Context, userID int) ([]model.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []model.Registration
	for i := range r.regs {
		if r.regs[i].UserID == userID {
			out = append(out, r.regs[i])
		}
	}
	sortByNewest(out)
	return out, nil
}

// ListByEmail returns the registrations made under an email address,
// matched case-insensitively, most recent first.
func (r *RegistrationRepository) ListByEmail(ctx context.Context, email string) ([]model.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []model.Registration
	for i := range r.regs {
		if strings.EqualFold(r.regs[i].Email, email) {
			out = append(out, r.regs[i])
		}
	}
	sortByNewest(out)
	return out, nil
}

// ListByEvent returns the event's registrations, most recent first.
func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID int) ([]model.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []model.Registration
	for i := range r.regs {
		if r.regs[i].EventID == eventID {
			out = append(out, r.regs[i])
		}
	}
	sortByNewest(out)
	return out, nil
}

func sortByNewest(regs []model.Registration) {
	sort.SliceStable(regs, func(i, j int) bool {
		if regs[i].RegisteredAt.Equal(regs[j].RegisteredAt) {
			return regs[i].ID > regs[j].ID
		}
		return regs[i].RegisteredAt.After(regs[j].RegisteredAt)
	})
}

// GetByID returns a single registration or ErrNotFound.
func (r *RegistrationRepository) GetByID(ctx context.Context, id int) (*model.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.regs {
		if r.regs[i].ID == id {
			reg := r.regs[i]
			return &reg, nil
		}
	}
	return nil, ErrNotFound
}

// GetByCode returns the registration with the given confirmation code,
// matched case-insensitively.
func (r *RegistrationRepository) GetByCode(ctx context.Context, code string) (*model.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexByCode(code); i >= 0 {
		reg := r.regs[i]
		return &reg, nil
	}
	return nil, ErrNotFound
}

func (r *RegistrationRepository) indexByCode(code string) int {
	for i := range r.regs {
		if strings.EqualFold(r.regs[i].ConfirmationCode, code) {
			return i
		}
	}
	return -1
}

// UpdateStatus overwrites the status of the registration with the given id.
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id int, status model.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.regs {
		if r.regs[i].ID == id {
			r.regs[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// Cancel marks the registration cancelled. The record is kept, and any
// attendee counter incremented at admission time is not decremented.
func (r *RegistrationRepository) Cancel(ctx context.Context, id int) error {
	return r.UpdateStatus(ctx, id, model.StatusCancelled)
}

// CheckIn transitions the registration with the given code from
// not-checked-in to checked-in, stamping the time. The transition is one-way
// and one-shot: a second attempt fails with ErrAlreadyCheckedIn.
func (r *RegistrationRepository) CheckIn(ctx context.Context, code string) (*model.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByCode(code)
	if i < 0 {
		return nil, ErrNotFound
	}
	if r.regs[i].CheckedIn {
		return nil, ErrAlreadyCheckedIn
	}
	at := r.now()
	r.regs[i].CheckedIn = true
	r.regs[i].CheckedInAt = &at
	reg := r.regs[i]
	return &reg, nil
}

// CountTicketsForEvent sums ticket counts across the event's non-cancelled
// registrations.
func (r *RegistrationRepository) CountTicketsForEvent(ctx context.Context, eventID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for i := range r.regs {
		if r.regs[i].EventID == eventID && r.regs[i].Active() {
			total += r.regs[i].Tickets
		}
	}
	return total, nil
}

// AttendanceStats reports how many of the event's registrations have checked
// in. Unknown event ids yield all zeroes.
func (r *RegistrationRepository) AttendanceStats(ctx context.Context, eventID int) (model.AttendanceStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stats model.AttendanceStats
	for i := range r.regs {
		if r.regs[i].EventID != eventID {
			continue
		}
		stats.Total++
		if r.regs[i].CheckedIn {
			stats.CheckedIn++
		}
	}
	stats.Pending = stats.Total - stats.CheckedIn
	return stats, nil
}
