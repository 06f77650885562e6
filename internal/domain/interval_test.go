package domain_test

import (
	"testing"
	"time"

	"staybook/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{
			name:   "identical intervals",
			aStart: day(2026, 9, 10), aEnd: day(2026, 9, 15),
			bStart: day(2026, 9, 10), bEnd: day(2026, 9, 15),
			want: true,
		},
		{
			name:   "partial overlap at the tail",
			aStart: day(2026, 9, 10), aEnd: day(2026, 9, 15),
			bStart: day(2026, 9, 13), bEnd: day(2026, 9, 20),
			want: true,
		},
		{
			name:   "one fully inside the other",
			aStart: day(2026, 9, 10), aEnd: day(2026, 9, 20),
			bStart: day(2026, 9, 12), bEnd: day(2026, 9, 14),
			want: true,
		},
		{
			name:   "back to back, checkout meets checkin",
			aStart: day(2026, 9, 10), aEnd: day(2026, 9, 15),
			bStart: day(2026, 9, 15), bEnd: day(2026, 9, 20),
			want: false,
		},
		{
			name:   "disjoint",
			aStart: day(2026, 9, 1), aEnd: day(2026, 9, 5),
			bStart: day(2026, 9, 10), bEnd: day(2026, 9, 15),
			want: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
			if got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
			// the relation is symmetric
			if rev := domain.Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd); rev != got {
				t.Fatalf("asymmetric: forward %v, reversed %v", got, rev)
			}
		})
	}
}

func TestReservationConflictsWith(t *testing.T) {
	res := domain.Reservation{CheckIn: day(2026, 9, 10), CheckOut: day(2026, 9, 15)}

	if !res.ConflictsWith(day(2026, 9, 14), day(2026, 9, 16)) {
		t.Fatal("expected conflict on overlapping stay")
	}
	if res.ConflictsWith(day(2026, 9, 15), day(2026, 9, 18)) {
		t.Fatal("same-day turnover should not conflict")
	}
	if res.ConflictsWith(day(2026, 9, 5), day(2026, 9, 10)) {
		t.Fatal("stay ending at check-in should not conflict")
	}
}

func TestCanHost(t *testing.T) {
	room := domain.Room{MaxGuests: 2, IsAvailable: true}
	if !room.CanHost(2) {
		t.Fatal("room for 2 should host a party of 2")
	}
	if room.CanHost(3) {
		t.Fatal("room for 2 should not host a party of 3")
	}
	room.IsAvailable = false
	if room.CanHost(1) {
		t.Fatal("unavailable room should never host")
	}
}

func TestParseEnums(t *testing.T) {
	if g, ok := domain.ParseGender("female"); !ok || g != domain.GenderFemale {
		t.Fatalf("ParseGender(female) = %q, %v", g, ok)
	}
	if _, ok := domain.ParseGender("robot"); ok {
		t.Fatal("unexpected gender accepted")
	}
	if d, ok := domain.ParseDocumentType("PASSPORT"); !ok || d != domain.DocPassport {
		t.Fatalf("ParseDocumentType(PASSPORT) = %q, %v", d, ok)
	}
	if _, ok := domain.ParseDocumentType("library-card"); ok {
		t.Fatal("unexpected document type accepted")
	}
}
