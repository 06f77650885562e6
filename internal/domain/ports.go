package domain

import (
	"context"
	"time"
)

type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (Hotel, error)
	// ListEnabledByLocation returns enabled hotels at the location with
	// their rooms attached, ordered by hotel id.
	ListEnabledByLocation(ctx context.Context, locationID int64) ([]Hotel, error)
	ExistsInLocation(ctx context.Context, name string, locationID int64) (bool, error)
	Create(ctx context.Context, h Hotel) (int64, error)
	SetEnabled(ctx context.Context, id int64, enabled bool) error
}

type RoomRepository interface {
	// GetWithHotel loads a room and, when assigned, its owning hotel.
	GetWithHotel(ctx context.Context, id int64) (Room, *Hotel, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]Room, error)
	ListByIDs(ctx context.Context, ids []int64) ([]Room, error)
	Create(ctx context.Context, r Room) (int64, error)
	// AssignBatch sets hotel_id on every listed room in one statement,
	// touching only rooms that are still unassigned.
	AssignBatch(ctx context.Context, roomIDs []int64, hotelID int64) (int64, error)
}

type ReservationRepository interface {
	ListByRoom(ctx context.Context, roomID int64) ([]Reservation, error)
	// ListOverlapping fetches every reservation whose interval intersects
	// [checkIn, checkOut) in one query, across all rooms.
	ListOverlapping(ctx context.Context, checkIn, checkOut time.Time) ([]Reservation, error)
	// Create persists the reservation, its guest links and the optional
	// emergency contact atomically.
	Create(ctx context.Context, res Reservation, guestIDs []int64, ec *EmergencyContact) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type GuestRepository interface {
	// UpsertByDocument inserts the guest or, when the (documentType,
	// documentNumber) pair already exists, refreshes name/email/phone in
	// place. Returns the guest id either way.
	UpsertByDocument(ctx context.Context, g Guest) (int64, error)
}

type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (Location, error)
	GetByCityName(ctx context.Context, city string) (Location, error)
	List(ctx context.Context) ([]Location, error)
	ListByCountry(ctx context.Context, countryID int64) ([]Location, error)
	ExistsByCityName(ctx context.Context, city string, countryID int64) (bool, error)
	ExistsByCityCode(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, l Location) (int64, error)
}

type CountryRepository interface {
	GetByID(ctx context.Context, id int64) (Country, error)
	List(ctx context.Context) ([]Country, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, c Country) (int64, error)
}

// Notifier delivers the booking confirmation. Failures are the
// caller's to log; they never unwind a committed reservation.
type Notifier interface {
	SendReservationConfirmation(ctx context.Context, emails []string, s ReservationSummary) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Search read models

type SearchCriteria struct {
	LocationID     int64  // takes precedence when set
	City           string // resolved to a location when LocationID is zero
	CheckIn        time.Time
	CheckOut       time.Time
	NumberOfGuests int
}

type RoomOffer struct {
	RoomID    int64   `json:"roomId"`
	RoomType  string  `json:"roomType"`
	BasePrice float64 `json:"basePrice"`
	Taxes     float64 `json:"taxes"`
	MaxGuests int     `json:"maxGuests"`
}

type HotelResult struct {
	HotelID        int64       `json:"hotelId"`
	HotelName      string      `json:"hotelName"`
	Location       string      `json:"location"`
	AvailableRooms []RoomOffer `json:"availableRooms"`
}
