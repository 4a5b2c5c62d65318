// Package queue defines message payloads exchanged over the broker and
// the background consumer that drains them.
package queue

// BookingConfirmedEvent is published when an owner confirms a booking.
// It carries enough context for downstream consumers (notification log,
// analytics) without another trip to the primary database. EventID is a
// UUID so replayed deliveries can be deduplicated.
type BookingConfirmedEvent struct {
	EventID       string  `json:"event_id"`
	BookingID     uint64  `json:"booking_id"`
	UserID        uint64  `json:"user_id"`
	UserEmail     string  `json:"user_email"`
	TurfID        uint64  `json:"turf_id"`
	TurfName      string  `json:"turf_name"`
	City          string  `json:"city"`
	OwnerID       uint64  `json:"owner_id"`
	OwnerName     string  `json:"owner_name"`
	Date          string  `json:"date"` // DD/MM/YYYY, as booked
	Slot          string  `json:"slot"` // "<start>-<end>"
	Rent          float64 `json:"rent"`
	PaymentMethod string  `json:"payment_method"`
	ConfirmedAt   string  `json:"confirmed_at"` // RFC3339
}
