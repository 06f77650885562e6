package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can branch without matching
// on message text. HTTP mapping lives in the transport layer.
type Kind uint8

const (
	KindUnknown  Kind = iota
	KindInvalid       // malformed request, caller-fixable
	KindNotFound      // referenced entity absent
	KindConflict      // business-rule collision, retry with different input
	KindPolicy        // well-formed but blocked by current state
	KindInternal      // storage/network/anything unexpected
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPolicy:
		return "policy_violation"
	case KindInternal:
		return "internal"
	}
	return "unknown"
}

// Stable failure codes surfaced to API clients.
const (
	CodeInvalidDateRange   = "InvalidDateRange"
	CodePastCheckIn        = "PastCheckIn"
	CodeInvalidGuestCount  = "InvalidGuestCount"
	CodeGuestCountMismatch = "GuestCountMismatch"
	CodeInvalidEnumValue   = "InvalidEnumValue"
	CodeInvalidRoom        = "InvalidRoom"

	CodeHotelNotFound    = "HotelNotFound"
	CodeRoomNotFound     = "RoomNotFound"
	CodeLocationNotFound = "LocationNotFound"
	CodeCountryNotFound  = "CountryNotFound"
	CodeNotFound         = "NotFound"

	CodeRoomAlreadyBooked   = "RoomAlreadyBooked"
	CodeRoomAlreadyAssigned = "RoomAlreadyAssigned"
	CodeNoRoomsToAssign     = "NoRoomsToAssign"
	CodeDuplicateHotel      = "DuplicateHotel"
	CodeDuplicateLocation   = "DuplicateLocation"
	CodeDuplicateCountry    = "DuplicateCountry"

	CodeHotelNotEnabled  = "HotelNotEnabled"
	CodeRoomUnavailable  = "RoomUnavailable"
	CodeCapacityExceeded = "CapacityExceeded"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func E(kind Kind, code, msg string) error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func Ef(kind Kind, code, format string, args ...any) error {
	return &Error{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the failure kind; anything that isn't a *Error
// counts as internal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// CodeOf extracts the stable failure code, or "" for untyped errors.
func CodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
