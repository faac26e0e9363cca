package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/eventease-app/eventease/internal/model"
)

func futureEvent(t *testing.T, events *EventRepository, capacity, attendees int) *model.Event {
	t.Helper()
	e, err := events.Create(context.Background(), model.Event{
		Name:             "test event",
		Date:             time.Now().Add(48 * time.Hour),
		Capacity:         capacity,
		CurrentAttendees: attendees,
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	return e
}

func TestRegisterAdmitsUntilCapacity(t *testing.T) {
	ctx := context.Background()
	events := NewEventRepository()
	ledger := NewRegistrationRepository(events)
	e := futureEvent(t, events, 30, 28)

	for i, email := range []string{"a@example.com", "b@example.com"} {
		if _, err := ledger.Register(ctx, model.Registration{EventID: e.ID, Email: email}); err != nil {
			t.Fatalf("admission %d: %v", i+1, err)
		}
	}

	got, err := events.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if got.CurrentAttendees != 30 {
		t.Fatalf("expected 30 attendees, got %d", got.CurrentAttendees)
	}
	if got.IsRegistrationOpen(time.Now()) {
		t.Fatal("full event should be closed")
	}

	_, err = ledger.Register(ctx, model.Registration{EventID: e.ID, Email: "c@example.com"})
	if !errors.Is(err, ErrEventFull) {
		t.Fatalf("expected ErrEventFull, got %v", err)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	events := NewEventRepository()
	ledger := NewRegistrationRepository(events)
	e := futureEvent(t, events, 100, 0)

	if _, err := ledger.Register(ctx, model.Registration{EventID: e.ID, Email: "dup@example.com"}); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	_, err := ledger.Register(ctx, model.Registration{EventID: e.ID, Email: "DUP@EXAMPLE.COM"})
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered for same email, got %v", err)
	}

	regs, err := ledger.ListByEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	active := 0
	for _, r := range regs {
		if r.Active() {
			active++
		}
	}
	if active != 1 {
		t.Fatalf("expected exactly one active record, got %d", active)
	}

	// Counter incremented only once.
	got, _ := events.GetByID(ctx, e.ID)
	if got.CurrentAttendees != 1 {
		t.Fatalf("expected 1 attendee, got %d", got.CurrentAttendees)
	}
}

func TestRegisterDuplicateByUserID(t *testing.T) {
	ctx := context.Background()
	events := NewEventRepository()
	ledger := NewRegistrationRepository(events)
	e := futureEvent(t, events, 100, 0)

	if _, err := ledger.Register(ctx, model.Registration{EventID: e.ID, UserID: 7, Email: "one@example.com"}); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	_, err := ledger.Register(ctx, model.Registration{EventID: e.ID, UserID: 7, Email: "other@example.com"})
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered for same user id, got %v", err)
	}
}

func TestRegisterClosedEvent(t *testing.T) {
	ctx := context.Background()
	events := NewEventRepository()
	ledger := NewRegistrationRepository(events)

	past, err := events.Create(ctx, model.Event{
		Name:     "over",
		Date:     time.Now().Add(-time.Hour),
		Capacity: 10,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := ledger.Register(ctx, model.Registration{EventID: past.ID, Email: "late@example.com"}); !errors.Is(err, ErrRegistrationClosed) {
		t.Fatalf("expected ErrRegistrationClosed for past event, got %v", err)
	}

	if _, err := ledger.Register(ctx, model.Registration{EventID: 999, Email: "x@example.com"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown event, got %v", err)
	}
}

func TestCreateAssignsCodeAndPendingStatus(t *testing.T) {
	ctx := context.Background()
	ledger := NewRegistrationRepository(nil)

	reg, err := ledger.Create(ctx, model.Registration{EventID: 1, Email: "p@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if reg.Status != model.StatusPending {
		t.Fatalf("expected pending status, got %q", reg.Status)
	}
	if len(reg.ConfirmationCode) != 8 {
		t.Fatalf("expected 8-character code, got %q", reg.ConfirmationCode)
	}
	for _, c := range reg.ConfirmationCode {
		if !strings.ContainsRune(codeAlphabet, c) {
			t.Fatalf("code %q contains %q outside the alphabet", reg.ConfirmationCode, c)
		}
	}
	if reg.RegisteredAt.IsZero() {
		t.Fatal("registration time not stamped")
	}
}

func TestGetByCodeCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	ledger := NewRegistrationRepository(nil)
	reg, err := ledger.Create(ctx, model.Registration{EventID: 1, Email: "c@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := ledger.GetByCode(ctx, strings.ToLower(reg.ConfirmationCode))
	if err != nil {
		t.Fatalf("get by lowercased code: %v", err)
	}
	if got.ID != reg.ID {
		t.Fatalf("expected registration %d, got %d", reg.ID, got.ID)
	}

	if _, err := ledger.GetByCode(ctx, "NOPE1234"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCheckInIsOneShot(t *testing.T) {
	ctx := context.Background()
	ledger := NewRegistrationRepository(nil)
	reg, err := ledger.Create(ctx, model.Registration{EventID: 1, Email: "in@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := ledger.CheckIn(ctx, "UNKNOWN1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown code should fail with ErrNotFound, got %v", err)
	}

	checked, err := ledger.CheckIn(ctx, reg.ConfirmationCode)
	if err != nil {
		t.Fatalf("first check-in: %v", err)
	}
	if !checked.CheckedIn || checked.CheckedInAt == nil {
		t.Fatalf("check-in state not recorded: %+v", checked)
	}

	if _, err := ledger.CheckIn(ctx, reg.ConfirmationCode); !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Fatalf("repeat check-in should fail, got %v", err)
	}
}

func TestCancelKeepsRecordAndCounter(t *testing.T) {
	ctx := context.Background()
	events := NewEventRepository()
	ledger := NewRegistrationRepository(events)
	e := futureEvent(t, events, 10, 0)

	reg, err := ledger.Register(ctx, model.Registration{EventID: e.ID, Email: "gone@example.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := ledger.Cancel(ctx, reg.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	got, err := ledger.GetByID(ctx, reg.ID)
	if err != nil {
		t.Fatalf("cancelled record should stay retrievable: %v", err)
	}
	if got.Status != model.StatusCancelled {
		t.Fatalf("expected cancelled status, got %q", got.Status)
	}

	// The attendee counter is deliberately not decremented.
	ev, _ := events.GetByID(ctx, e.ID)
	if ev.CurrentAttendees != 1 {
		t.Fatalf("counter should remain 1 after cancel, got %d", ev.CurrentAttendees)
	}
}

func TestDeletedEventLeavesDanglingRegistrations(t *testing.T) {
	ctx := context.Background()
	events := NewEventRepository()
	ledger := NewRegistrationRepository(events)
	e := futureEvent(t, events, 10, 0)

	reg, err := ledger.Register(ctx, model.Registration{EventID: e.ID, Email: "orphan@example.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := events.Delete(ctx, e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := ledger.GetByID(ctx, reg.ID)
	if err != nil {
		t.Fatalf("registration should survive event deletion: %v", err)
	}
	if got.EventID != e.ID {
		t.Fatalf("registration should keep original event id %d, got %d", e.ID, got.EventID)
	}
	if _, err := events.GetByID(ctx, e.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("event should be gone, got %v", err)
	}
}

func TestCountTicketsSkipsCancelled(t *testing.T) {
	ctx := context.Background()
	ledger := NewRegistrationRepository(nil)

	a, err := ledger.Create(ctx, model.Registration{EventID: 1, Email: "a@example.com", Tickets: 2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := ledger.Create(ctx, model.Registration{EventID: 1, Email: "b@example.com", Tickets: 3}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := ledger.Create(ctx, model.Registration{EventID: 2, Email: "c@example.com", Tickets: 5}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := ledger.Cancel(ctx, a.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	total, err := ledger.CountTicketsForEvent(ctx, 1)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 tickets after cancelling, got %d", total)
	}
}

func TestAttendanceStatsBalance(t *testing.T) {
	ctx := context.Background()
	ledger := NewRegistrationRepository(nil)

	first, err := ledger.Create(ctx, model.Registration{EventID: 1, Email: "x@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := ledger.Create(ctx, model.Registration{EventID: 1, Email: "y@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := ledger.CheckIn(ctx, first.ConfirmationCode); err != nil {
		t.Fatalf("check in: %v", err)
	}

	stats, err := ledger.AttendanceStats(ctx, 1)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 2 || stats.CheckedIn != 1 || stats.Pending != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if stats.Total != stats.CheckedIn+stats.Pending {
		t.Fatalf("total must equal checked-in plus pending: %+v", stats)
	}

	empty, err := ledger.AttendanceStats(ctx, 99)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if empty.Total != 0 || empty.CheckedIn != 0 || empty.Pending != 0 {
		t.Fatalf("unknown event should yield zeroes, got %+v", empty)
	}
}

func TestListByUserNewestFirst(t *testing.T) {
	ctx := context.Background()
	ledger := NewRegistrationRepository(nil)
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	step := 0
	ledger.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}

	for eventID := 1; eventID <= 3; eventID++ {
		if _, err := ledger.Create(ctx, model.Registration{EventID: eventID, UserID: 5, Email: "u@example.com"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	regs, err := ledger.ListByUser(ctx, 5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(regs) != 3 {
		t.Fatalf("expected 3 registrations, got %d", len(regs))
	}
	for i := 1; i < len(regs); i++ {
		if regs[i].RegisteredAt.After(regs[i-1].RegisteredAt) {
			t.Fatalf("registrations not ordered newest first: %v then %v", regs[i-1].RegisteredAt, regs[i].RegisteredAt)
		}
	}
}
