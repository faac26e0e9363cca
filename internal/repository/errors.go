// Package repository implements the in-memory stores backing the event
// registration application: the event catalog, the registration ledger, and
// the user directory. Each store guards its collection with its own mutex.
package repository

import "errors"

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrEventFull is returned when an event has no remaining capacity.
var ErrEventFull = errors.New("event is fully booked")

// ErrRegistrationClosed is returned when an event no longer accepts
// registrations (past date or zero capacity).
var ErrRegistrationClosed = errors.New("registration is closed")

// ErrAlreadyRegistered is returned when the same person registers twice for
// one event.
var ErrAlreadyRegistered = errors.New("already registered for this event")

// ErrAlreadyCheckedIn is returned when a registration is checked in twice.
var ErrAlreadyCheckedIn = errors.New("registration already checked in")

// ErrEmailTaken is returned when an account with the same email exists.
var ErrEmailTaken = errors.New("email already in use")

// ErrInvalidInput is returned for structurally invalid arguments such as
// blank required fields.
var ErrInvalidInput = errors.New("invalid input")
