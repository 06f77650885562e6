package domain

import (
	"strings"
	"time"
)

type Reservation struct {
	ID               int64
	ConfirmationCode string
	CheckIn          time.Time // calendar date, inclusive
	CheckOut         time.Time // calendar date, exclusive
	NumberOfGuests   int
	IsConfirmed      bool
	HotelID          int64
	RoomID           int64
	GuestIDs         []int64
}

type Guest struct {
	ID             int64
	FullName       string
	BirthDate      time.Time
	Gender         Gender
	DocumentType   DocumentType
	DocumentNumber string
	Email          string
	Phone          string
}

type EmergencyContact struct {
	ID            int64
	FullName      string
	Phone         string
	ReservationID int64
}

// ReservationSummary is what the notifier gets to compose the
// confirmation message. Kept flat on purpose so mail templates
// never reach back into storage.
type ReservationSummary struct {
	ConfirmationCode string
	HotelName        string
	RoomType         string
	CheckIn          time.Time
	CheckOut         time.Time
	NumberOfGuests   int
}

type Gender string

const (
	GenderMale      Gender = "Male"
	GenderFemale    Gender = "Female"
	GenderNonBinary Gender = "NonBinary"
	GenderOther     Gender = "Other"
)

type DocumentType string

const (
	DocPassport      DocumentType = "Passport"
	DocNationalID    DocumentType = "NationalID"
	DocDriverLicense DocumentType = "DriverLicense"
)

// ParseGender matches case-insensitively and returns the canonical value.
func ParseGender(s string) (Gender, bool) {
	for _, g := range []Gender{GenderMale, GenderFemale, GenderNonBinary, GenderOther} {
		if strings.EqualFold(s, string(g)) {
			return g, true
		}
	}
	return "", false
}

// ParseDocumentType matches case-insensitively and returns the canonical value.
func ParseDocumentType(s string) (DocumentType, bool) {
	for _, d := range []DocumentType{DocPassport, DocNationalID, DocDriverLicense} {
		if strings.EqualFold(s, string(d)) {
			return d, true
		}
	}
	return "", false
}
