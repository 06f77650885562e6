package domain

import "time"

// Overlaps decides whether two half-open date intervals [aStart, aEnd)
// and [bStart, bEnd) share at least one night. Check-out day is
// exclusive: a stay ending the day another begins does not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// ConflictsWith reports whether the reservation's interval overlaps [checkIn, checkOut).
func (r Reservation) ConflictsWith(checkIn, checkOut time.Time) bool {
	return Overlaps(r.CheckIn, r.CheckOut, checkIn, checkOut)
}
