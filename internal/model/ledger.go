package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SlotLedger records, per calendar date, which hour intervals of a turf
// are already committed. Keys are DD/MM/YYYY date strings used exactly as
// the client sends them; values are the intervals booked on that date in
// insertion order. The ledger is persisted as the turfs.slots JSON column
// and must only be mutated together with the matching booking row inside
// one transaction.
type SlotLedger map[string][]Interval

// NewSlotLedger returns an empty ledger. Turfs start with no booked slots.
func NewSlotLedger() SlotLedger { return SlotLedger{} }

// IsBooked reports whether an interval with the exact same start and end
// is already recorded for the date. The check is equality based, not
// overlap based: 10-11 and 10-12 do not conflict. See DESIGN.md before
// changing it.
func (l SlotLedger) IsBooked(date string, iv Interval) bool {
	for _, s := range l[date] {
		if s.Start == iv.Start && s.End == iv.End {
			return true
		}
	}
	return false
}

// Add appends the interval to the date's list. Callers are expected to
// have checked IsBooked first; Add itself never rejects.
func (l *SlotLedger) Add(date string, iv Interval) {
	if *l == nil {
		*l = SlotLedger{}
	}
	(*l)[date] = append((*l)[date], iv)
}

// Remove filters out every interval for the date whose start and end both
// match. The date key is kept even when its list becomes empty.
func (l SlotLedger) Remove(date string, iv Interval) {
	day, ok := l[date]
	if !ok {
		return
	}
	kept := make([]Interval, 0, len(day))
	for _, s := range day {
		if s.Start == iv.Start && s.End == iv.End {
			continue
		}
		kept = append(kept, s)
	}
	l[date] = kept
}

// Value serializes the ledger to JSON for the turfs.slots column. A nil
// ledger is written as an empty object so the column is never NULL.
func (l SlotLedger) Value() (driver.Value, error) {
	if l == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(l)
}

// Scan loads the ledger from the turfs.slots column. NULL and empty
// payloads scan to an empty ledger.
func (l *SlotLedger) Scan(src interface{}) error {
	if src == nil {
		*l = SlotLedger{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("slot ledger: cannot scan %T", src)
	}
	if len(raw) == 0 {
		*l = SlotLedger{}
		return nil
	}
	out := SlotLedger{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*l = out
	return nil
}
