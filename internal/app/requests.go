package app

import "time"

// Request shapes crossing the boundary into the engine. Dates arrive
// already parsed; enum fields stay raw strings until the validator
// pins them to the canonical sets.

type GuestInput struct {
	FullName       string    `json:"fullName"`
	BirthDate      time.Time `json:"birthDate"`
	Gender         string    `json:"gender"`
	DocumentType   string    `json:"documentType"`
	DocumentNumber string    `json:"documentNumber"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
}

type EmergencyContactInput struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

type ReservationRequest struct {
	RoomID           int64                  `json:"roomId"`
	CheckIn          time.Time              `json:"checkInDate"`
	CheckOut         time.Time              `json:"checkOutDate"`
	NumberOfGuests   int                    `json:"numberOfGuests"`
	Guests           []GuestInput           `json:"guests"`
	EmergencyContact *EmergencyContactInput `json:"emergencyContact,omitempty"`
}

// Confirmation is the acknowledgement returned on a successful booking.
type Confirmation struct {
	ReservationID    int64     `json:"reservationId"`
	ConfirmationCode string    `json:"confirmationCode"`
	HotelName        string    `json:"hotelName"`
	RoomID           int64     `json:"roomId"`
	CheckIn          time.Time `json:"checkInDate"`
	CheckOut         time.Time `json:"checkOutDate"`
}
