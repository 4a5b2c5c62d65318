package model

import "time"

// Booking statuses. A booking starts PENDING; owners move it to CONFIRMED
// or DECLINED. There is no CANCELLED state: deletion is how a booking is
// cancelled, and deletion is the only thing that frees the ledger slot.
// A DECLINED booking therefore still occupies its slot until removed.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusDeclined  = "DECLINED"
)

// ValidStatus reports whether s is a status the lifecycle endpoint
// accepts. Anything outside the three known values is rejected.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDeclined:
		return true
	}
	return false
}

// Booking is one committed slot reservation. Date and Slot keep the exact
// strings the client sent ("15/03/2026", "10-11"); the slot label is
// re-parsed when the booking is deleted to strip the matching interval
// from the turf's ledger. OwnerID and OwnerName are copied from the turf
// at creation time so owner dashboards can filter without a join.
type Booking struct {
	ID            uint64    `json:"id"`                      // bookings.id
	UserID        uint64    `json:"userId"`                  // bookings.user_id
	TurfID        uint64    `json:"turfId"`                  // bookings.turf_id
	OwnerID       uint64    `json:"ownerId"`                 // bookings.owner_id
	OwnerName     string    `json:"ownerName"`               // bookings.owner_name
	Date          string    `json:"date"`                    // bookings.date, DD/MM/YYYY
	Slot          string    `json:"slot"`                    // bookings.slot, "<start>-<end>"
	PaymentMethod string    `json:"paymentMethod"`           // bookings.payment_method, label only
	TransactionID *string   `json:"transactionId,omitempty"` // bookings.transaction_id (nullable)
	Status        string    `json:"status"`                  // bookings.status
	CreatedAt     time.Time `json:"createdAt"`               // bookings.created_at

	// Joined projections, populated by the listing queries.
	Turf *Turf `json:"turf,omitempty"`
	User *User `json:"user,omitempty"`
}
