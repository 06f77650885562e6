package app

import (
	"context"
	"strings"

	"staybook/internal/domain"
)

// Inventory administration: hotels, locations, countries. Reference
// data is append-only; the only mutation after creation is the hotel
// enabled flag.

type HotelService struct {
	hotels    domain.HotelRepository
	rooms     domain.RoomRepository
	locations domain.LocationRepository
}

func NewHotelService(h domain.HotelRepository, r domain.RoomRepository, l domain.LocationRepository) *HotelService {
	return &HotelService{hotels: h, rooms: r, locations: l}
}

func (s *HotelService) Create(ctx context.Context, name string, locationID, createdBy int64) (domain.Hotel, error) {
	if _, err := s.locations.GetByID(ctx, locationID); err != nil {
		return domain.Hotel{}, err
	}
	exists, err := s.hotels.ExistsInLocation(ctx, strings.TrimSpace(name), locationID)
	if err != nil {
		return domain.Hotel{}, err
	}
	if exists {
		return domain.Hotel{}, domain.Ef(domain.KindConflict, domain.CodeDuplicateHotel,
			"a hotel named %q already exists in this location", name)
	}
	h := domain.Hotel{
		Name:            strings.TrimSpace(name),
		LocationID:      locationID,
		IsEnabled:       true,
		CreatedByUserID: createdBy,
	}
	id, err := s.hotels.Create(ctx, h)
	if err != nil {
		return domain.Hotel{}, err
	}
	h.ID = id
	return h, nil
}

func (s *HotelService) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	if _, err := s.hotels.GetByID(ctx, id); err != nil {
		return err
	}
	return s.hotels.SetEnabled(ctx, id, enabled)
}

func (s *HotelService) Rooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	if _, err := s.hotels.GetByID(ctx, hotelID); err != nil {
		return nil, err
	}
	return s.rooms.ListByHotel(ctx, hotelID)
}

// AddRoom registers a room in the inventory. A nil HotelID leaves the
// room unassigned, to be attached later via AssignRooms.
func (s *HotelService) AddRoom(ctx context.Context, room domain.Room) (domain.Room, error) {
	if strings.TrimSpace(room.RoomType) == "" {
		return domain.Room{}, domain.E(domain.KindInvalid, domain.CodeInvalidRoom,
			"room type is required")
	}
	if room.MaxGuests < 1 {
		return domain.Room{}, domain.E(domain.KindInvalid, domain.CodeInvalidRoom,
			"room must hold at least one guest")
	}
	if room.BasePrice < 0 || room.Taxes < 0 {
		return domain.Room{}, domain.E(domain.KindInvalid, domain.CodeInvalidRoom,
			"price and taxes cannot be negative")
	}
	if room.HotelID != nil {
		if _, err := s.hotels.GetByID(ctx, *room.HotelID); err != nil {
			return domain.Room{}, err
		}
	}
	room.RoomType = strings.TrimSpace(room.RoomType)
	id, err := s.rooms.Create(ctx, room)
	if err != nil {
		return domain.Room{}, err
	}
	room.ID = id
	return room, nil
}

type LocationService struct {
	locations domain.LocationRepository
	countries domain.CountryRepository
}

func NewLocationService(l domain.LocationRepository, c domain.CountryRepository) *LocationService {
	return &LocationService{locations: l, countries: c}
}

func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	return s.locations.List(ctx)
}

func (s *LocationService) ListByCountry(ctx context.Context, countryID int64) ([]domain.Location, error) {
	return s.locations.ListByCountry(ctx, countryID)
}

func (s *LocationService) Create(ctx context.Context, cityName, cityCode string, countryID int64) (domain.Location, error) {
	if _, err := s.countries.GetByID(ctx, countryID); err != nil {
		return domain.Location{}, err
	}
	byName, err := s.locations.ExistsByCityName(ctx, cityName, countryID)
	if err != nil {
		return domain.Location{}, err
	}
	if byName {
		return domain.Location{}, domain.Ef(domain.KindConflict, domain.CodeDuplicateLocation,
			"a city named %q already exists in the selected country", cityName)
	}
	code := strings.ToUpper(strings.TrimSpace(cityCode))
	byCode, err := s.locations.ExistsByCityCode(ctx, code)
	if err != nil {
		return domain.Location{}, err
	}
	if byCode {
		return domain.Location{}, domain.Ef(domain.KindConflict, domain.CodeDuplicateLocation,
			"a city with the code %q already exists", code)
	}
	loc := domain.Location{
		CityName:  strings.TrimSpace(cityName),
		CityCode:  code,
		CountryID: countryID,
	}
	id, err := s.locations.Create(ctx, loc)
	if err != nil {
		return domain.Location{}, err
	}
	loc.ID = id
	return loc, nil
}

type CountryService struct {
	countries domain.CountryRepository
}

func NewCountryService(c domain.CountryRepository) *CountryService {
	return &CountryService{countries: c}
}

func (s *CountryService) List(ctx context.Context) ([]domain.Country, error) {
	return s.countries.List(ctx)
}

func (s *CountryService) Create(ctx context.Context, name, code string) (domain.Country, error) {
	byName, err := s.countries.ExistsByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return domain.Country{}, err
	}
	if byName {
		return domain.Country{}, domain.Ef(domain.KindConflict, domain.CodeDuplicateCountry,
			"a country named %q already exists", name)
	}
	upper := strings.ToUpper(strings.TrimSpace(code))
	byCode, err := s.countries.ExistsByCode(ctx, upper)
	if err != nil {
		return domain.Country{}, err
	}
	if byCode {
		return domain.Country{}, domain.Ef(domain.KindConflict, domain.CodeDuplicateCountry,
			"a country with the code %q already exists", upper)
	}
	c := domain.Country{Name: strings.TrimSpace(name), Code: upper}
	id, err := s.countries.Create(ctx, c)
	if err != nil {
		return domain.Country{}, err
	}
	c.ID = id
	return c, nil
}
