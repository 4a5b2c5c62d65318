package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Interval is a bookable hour range on a single day. Start and End are
// integer hours; clients exchange them as a label of the form "12-13".
// Hour bounds are not enforced here, matching the booking form which
// offers a fixed 10..24 range but never re-validates it server side.
type Interval struct {
	Start int `json:"start"` // first hour of the range
	End   int `json:"end"`   // hour the range ends at
}

// ErrBadSlot is returned by ParseSlot for labels that are not two
// integers separated by a single dash.
var ErrBadSlot = errors.New("invalid slot format")

// ParseSlot converts a slot label such as "12-13" into an Interval.
// Both halves must parse as integers; anything else is ErrBadSlot.
func ParseSlot(label string) (Interval, error) {
	parts := strings.Split(strings.TrimSpace(label), "-")
	if len(parts) != 2 {
		return Interval{}, ErrBadSlot
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Interval{}, ErrBadSlot
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Interval{}, ErrBadSlot
	}
	return Interval{Start: start, End: end}, nil
}

// Label renders the interval back into the "<start>-<end>" wire form.
func (iv Interval) Label() string {
	return fmt.Sprintf("%d-%d", iv.Start, iv.End)
}
