// Package repository implements raw-SQL data access for users, turfs and
// bookings. This file holds the sentinel errors shared across the
// repositories so handlers can map failure modes to HTTP statuses with
// errors.Is instead of string matching.
package repository

import "errors"

// ErrUserNotFound is returned when a lookup by email or id matches no
// user row. Handlers translate it into a 404.
var ErrUserNotFound = errors.New("user not found")

// ErrTurfNotFound is returned when the requested turf does not exist.
// Handlers translate it into a 404.
var ErrTurfNotFound = errors.New("turf not found")

// ErrBookingNotFound is returned when the requested booking does not
// exist. Handlers translate it into a 404.
var ErrBookingNotFound = errors.New("booking not found")

// ErrSlotTaken is returned by the allocator path when the requested
// turf/date/interval is already present in the slot ledger. Handlers
// translate it into a 409.
var ErrSlotTaken = errors.New("slot already booked")
