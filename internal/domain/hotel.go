package domain

import "time"

type Hotel struct {
	ID              int64
	Name            string
	LocationID      int64
	IsEnabled       bool
	CreatedByUserID int64
	Rooms           []Room
}

type Room struct {
	ID          int64
	RoomType    string
	BasePrice   float64
	Taxes       float64
	MaxGuests   int
	IsAvailable bool
	HotelID     *int64 // nil while the room sits unassigned
}

type Country struct {
	ID   int64
	Name string
	Code string // ISO-style, stored upper-cased, unique
}

type Location struct {
	ID        int64
	CityName  string
	CityCode  string // unique, stored upper-cased
	CountryID int64
}

// CanHost reports whether the room is structurally bookable for a party:
// available flag set and enough beds.
func (r Room) CanHost(partySize int) bool {
	return r.IsAvailable && r.MaxGuests >= partySize
}

// Date normalizes t to a calendar date: midnight UTC, no time component.
// Check-in/check-out comparisons all operate on normalized dates.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
