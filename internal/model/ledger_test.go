package model

import (
	"reflect"
	"testing"
)

func TestLedgerAddAndIsBooked(t *testing.T) {
	l := NewSlotLedger()
	iv := Interval{Start: 12, End: 13}

	if l.IsBooked("01/01/2030", iv) {
		t.Fatal("empty ledger reports slot as booked")
	}
	l.Add("01/01/2030", iv)
	if !l.IsBooked("01/01/2030", iv) {
		t.Fatal("added slot not reported as booked")
	}
	if l.IsBooked("02/01/2030", iv) {
		t.Fatal("slot reported booked on a different date")
	}
}

func TestLedgerEqualityNotOverlap(t *testing.T) {
	// The conflict check matches exact (start,end) only. An overlapping
	// but non-identical interval is accepted; DESIGN.md records why.
	l := NewSlotLedger()
	l.Add("15/03/2026", Interval{Start: 10, End: 12})

	cases := []struct {
		iv     Interval
		booked bool
	}{
		{Interval{Start: 10, End: 12}, true},  // identical
		{Interval{Start: 10, End: 11}, false}, // contained
		{Interval{Start: 11, End: 13}, false}, // overlapping
		{Interval{Start: 12, End: 13}, false}, // adjacent
	}
	for _, tc := range cases {
		if got := l.IsBooked("15/03/2026", tc.iv); got != tc.booked {
			t.Errorf("IsBooked(%v) = %v, want %v", tc.iv, got, tc.booked)
		}
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	// Create then remove: the ledger must end without the interval.
	l := NewSlotLedger()
	iv := Interval{Start: 10, End: 11}
	l.Add("15/03/2026", iv)
	if !l.IsBooked("15/03/2026", iv) {
		t.Fatal("interval missing after add")
	}
	l.Remove("15/03/2026", iv)
	if l.IsBooked("15/03/2026", iv) {
		t.Fatal("interval still booked after remove")
	}
	// The date key survives with an empty list.
	if _, ok := l["15/03/2026"]; !ok {
		t.Fatal("date key dropped by remove")
	}
}

func TestLedgerRemoveExactMatchOnly(t *testing.T) {
	l := NewSlotLedger()
	l.Add("01/01/2030", Interval{Start: 12, End: 13})
	l.Add("01/01/2030", Interval{Start: 14, End: 15})

	l.Remove("01/01/2030", Interval{Start: 12, End: 14}) // matches nothing
	if len(l["01/01/2030"]) != 2 {
		t.Fatalf("non-matching remove changed the ledger: %v", l["01/01/2030"])
	}

	l.Remove("01/01/2030", Interval{Start: 12, End: 13})
	want := []Interval{{Start: 14, End: 15}}
	if !reflect.DeepEqual(l["01/01/2030"], want) {
		t.Fatalf("after remove got %v, want %v", l["01/01/2030"], want)
	}

	// Removing from an unknown date is a no-op.
	l.Remove("02/02/2030", Interval{Start: 14, End: 15})
	if _, ok := l["02/02/2030"]; ok {
		t.Fatal("remove invented a date key")
	}
}

func TestLedgerAddInitializesNilMap(t *testing.T) {
	var l SlotLedger
	l.Add("01/01/2030", Interval{Start: 10, End: 11})
	if !l.IsBooked("01/01/2030", Interval{Start: 10, End: 11}) {
		t.Fatal("add on nil ledger lost the interval")
	}
}

func TestLedgerValueScan(t *testing.T) {
	l := NewSlotLedger()
	l.Add("15/03/2026", Interval{Start: 10, End: 11})
	l.Add("15/03/2026", Interval{Start: 18, End: 19})
	l.Add("16/03/2026", Interval{Start: 12, End: 13})

	v, err := l.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}

	var back SlotLedger
	if err := back.Scan(v); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !reflect.DeepEqual(back, l) {
		t.Fatalf("round trip mismatch: got %v, want %v", back, l)
	}
}

func TestLedgerScanNullAndEmpty(t *testing.T) {
	var l SlotLedger
	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) failed: %v", err)
	}
	if l == nil || len(l) != 0 {
		t.Fatalf("Scan(nil) should give an empty ledger, got %v", l)
	}

	if err := l.Scan([]byte("{}")); err != nil {
		t.Fatalf("Scan({}) failed: %v", err)
	}
	if err := l.Scan("not json"); err == nil {
		t.Fatal("Scan accepted garbage")
	}
	if err := l.Scan(42); err == nil {
		t.Fatal("Scan accepted an int source")
	}
}

func TestNilLedgerValueIsEmptyObject(t *testing.T) {
	var l SlotLedger
	v, err := l.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if string(v.([]byte)) != "{}" {
		t.Fatalf("nil ledger serialized as %q, want {}", v)
	}
}
