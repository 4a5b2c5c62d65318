package model

import "time"

// Turf is a bookable sports field listed by an owner. The owner's name is
// stored alongside the ID so booking rows can denormalize it without a
// join. Slots carries the turf's slot ledger; it is the single source of
// truth for availability.
type Turf struct {
	ID        uint64     `json:"id"`        // turfs.id
	Name      string     `json:"name"`      // turfs.name
	City      string     `json:"city"`      // turfs.city
	Address   string     `json:"address"`   // turfs.address
	OwnerID   uint64     `json:"ownerId"`   // turfs.owner_id
	OwnerName string     `json:"ownerName"` // turfs.owner_name
	Rent      float64    `json:"rent"`      // turfs.rent, hourly rate
	Image     string     `json:"image"`     // turfs.image, picture URL
	Slots     SlotLedger `json:"slots"`     // turfs.slots JSON column
	CreatedAt time.Time  `json:"createdAt"` // turfs.created_at

	// Bookings is populated only by the turf listing when the caller
	// asks for related bookings; it has no column of its own.
	Bookings []Booking `json:"bookings,omitempty"`
}
