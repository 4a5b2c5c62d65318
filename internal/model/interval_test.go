package model

import (
	"errors"
	"testing"
)

func TestParseSlot(t *testing.T) {
	cases := []struct {
		label string
		want  Interval
		ok    bool
	}{
		{"12-13", Interval{Start: 12, End: 13}, true},
		{"10-11", Interval{Start: 10, End: 11}, true},
		{" 12 - 13 ", Interval{Start: 12, End: 13}, true},
		{"23-24", Interval{Start: 23, End: 24}, true},
		// Ordering and bounds are deliberately not validated.
		{"13-12", Interval{Start: 13, End: 12}, true},
		{"12", Interval{}, false},
		{"12-13-14", Interval{}, false},
		{"a-b", Interval{}, false},
		{"12-", Interval{}, false},
		{"-13", Interval{}, false},
		{"", Interval{}, false},
	}
	for _, tc := range cases {
		got, err := ParseSlot(tc.label)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseSlot(%q) unexpected error: %v", tc.label, err)
				continue
			}
			if got != tc.want {
				t.Errorf("ParseSlot(%q) = %v, want %v", tc.label, got, tc.want)
			}
		} else {
			if !errors.Is(err, ErrBadSlot) {
				t.Errorf("ParseSlot(%q) error = %v, want ErrBadSlot", tc.label, err)
			}
		}
	}
}

func TestIntervalLabelRoundTrip(t *testing.T) {
	iv := Interval{Start: 12, End: 13}
	back, err := ParseSlot(iv.Label())
	if err != nil {
		t.Fatalf("parse of own label failed: %v", err)
	}
	if back != iv {
		t.Fatalf("label round trip: got %v, want %v", back, iv)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusConfirmed, StatusDeclined} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"CANCELLED", "pending", "", "REMOVED"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true", s)
		}
	}
}
