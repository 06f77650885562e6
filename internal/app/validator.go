package app

import (
	"time"

	"staybook/internal/domain"
)

// ValidateReservation runs the structural checks on a booking request,
// in order, before any storage access. today must be a normalized
// calendar date (midnight UTC).
func ValidateReservation(req ReservationRequest, today time.Time) error {
	if err := validateStay(req.CheckIn, req.CheckOut, today); err != nil {
		return err
	}
	if req.NumberOfGuests < 1 {
		return domain.E(domain.KindInvalid, domain.CodeInvalidGuestCount,
			"number of guests must be one or greater")
	}
	if req.NumberOfGuests != len(req.Guests) {
		return domain.Ef(domain.KindInvalid, domain.CodeGuestCountMismatch,
			"numberOfGuests is %d but %d guest entries were provided",
			req.NumberOfGuests, len(req.Guests))
	}
	for _, g := range req.Guests {
		if _, ok := domain.ParseGender(g.Gender); !ok {
			return domain.Ef(domain.KindInvalid, domain.CodeInvalidEnumValue,
				"%s: invalid gender %q, allowed values: Male, Female, NonBinary, Other",
				g.FullName, g.Gender)
		}
		if _, ok := domain.ParseDocumentType(g.DocumentType); !ok {
			return domain.Ef(domain.KindInvalid, domain.CodeInvalidEnumValue,
				"%s: invalid document type %q, allowed values: Passport, NationalID, DriverLicense",
				g.FullName, g.DocumentType)
		}
	}
	return nil
}

// ValidateSearch applies the date and party-size rules to search
// criteria. Guest identity fields don't exist at search time.
func ValidateSearch(c domain.SearchCriteria, today time.Time) error {
	if err := validateStay(c.CheckIn, c.CheckOut, today); err != nil {
		return err
	}
	if c.NumberOfGuests < 1 {
		return domain.E(domain.KindInvalid, domain.CodeInvalidGuestCount,
			"number of guests must be one or greater")
	}
	return nil
}

func validateStay(checkIn, checkOut, today time.Time) error {
	if !checkOut.After(checkIn) {
		return domain.E(domain.KindInvalid, domain.CodeInvalidDateRange,
			"check-out date must be after check-in date")
	}
	if checkIn.Before(today) {
		return domain.E(domain.KindInvalid, domain.CodePastCheckIn,
			"check-in date cannot be in the past")
	}
	return nil
}
