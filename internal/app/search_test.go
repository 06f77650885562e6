package app_test

import (
	"context"
	"testing"
	"time"

	"staybook/internal/app"
	"staybook/internal/domain"
)

func bogota() (*fakeHotels, *fakeReservations, *fakeLocations) {
	loc := domain.Location{ID: 1, CityName: "Bogotá", CityCode: "BOG", CountryID: 10}

	hotels := &fakeHotels{
		byLocation: map[int64][]domain.Hotel{
			1: {
				{ID: 2, Name: "Casa Grande", LocationID: 1, IsEnabled: true, Rooms: []domain.Room{
					{ID: 20, RoomType: "Suite", BasePrice: 300, MaxGuests: 4, IsAvailable: true, HotelID: ptr(int64(2))},
					{ID: 21, RoomType: "Single", BasePrice: 90, MaxGuests: 1, IsAvailable: true, HotelID: ptr(int64(2))},
				}},
				{ID: 1, Name: "Andes View", LocationID: 1, IsEnabled: true, Rooms: []domain.Room{
					{ID: 10, RoomType: "Double", BasePrice: 120, MaxGuests: 2, IsAvailable: true, HotelID: ptr(int64(1))},
					{ID: 11, RoomType: "Double", BasePrice: 130, MaxGuests: 2, IsAvailable: false, HotelID: ptr(int64(1))},
				}},
				{ID: 3, Name: "Closed Doors", LocationID: 1, IsEnabled: false, Rooms: []domain.Room{
					{ID: 30, RoomType: "Suite", BasePrice: 500, MaxGuests: 6, IsAvailable: true, HotelID: ptr(int64(3))},
				}},
			},
		},
	}
	reservations := &fakeReservations{
		byRoom: map[int64][]domain.Reservation{
			20: {{ID: 1, RoomID: 20, HotelID: 2, CheckIn: day(2027, 3, 10), CheckOut: day(2027, 3, 14)}},
		},
	}
	locations := &fakeLocations{
		byID:   map[int64]domain.Location{1: loc},
		byCity: map[string]domain.Location{"Bogotá": loc},
	}
	return hotels, reservations, locations
}

func newSearch(h *fakeHotels, r *fakeReservations, l *fakeLocations, c domain.Cache) *app.SearchService {
	resolver := app.NewAvailabilityResolver(h, r)
	return app.NewSearchService(l, resolver, c, 5*time.Minute)
}

func TestSearchFiltersAndOrders(t *testing.T) {
	hotels, reservations, locations := bogota()
	svc := newSearch(hotels, reservations, locations, nil)

	// Two guests, dates overlapping room 20's reservation.
	out, err := svc.Search(context.Background(), domain.SearchCriteria{
		City:           "Bogotá",
		CheckIn:        day(2027, 3, 12),
		CheckOut:       day(2027, 3, 16),
		NumberOfGuests: 2,
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	// Hotel 3 is disabled, room 11 unavailable, room 21 too small,
	// room 20 booked. Only room 10 at hotel 1 survives.
	if len(out) != 1 {
		t.Fatalf("got %d hotels, want 1: %+v", len(out), out)
	}
	if out[0].HotelID != 1 || out[0].HotelName != "Andes View" || out[0].Location != "Bogotá" {
		t.Fatalf("unexpected hotel: %+v", out[0])
	}
	if len(out[0].AvailableRooms) != 1 || out[0].AvailableRooms[0].RoomID != 10 {
		t.Fatalf("unexpected rooms: %+v", out[0].AvailableRooms)
	}
}

func TestSearchBackToBackStayIsAvailable(t *testing.T) {
	hotels, reservations, locations := bogota()
	svc := newSearch(hotels, reservations, locations, nil)

	// Check-in exactly on the existing reservation's check-out day.
	out, err := svc.Search(context.Background(), domain.SearchCriteria{
		LocationID:     1,
		CheckIn:        day(2027, 3, 14),
		CheckOut:       day(2027, 3, 18),
		NumberOfGuests: 4,
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 1 || out[0].HotelID != 2 {
		t.Fatalf("expected Casa Grande only, got %+v", out)
	}
	if len(out[0].AvailableRooms) != 1 || out[0].AvailableRooms[0].RoomID != 20 {
		t.Fatalf("room 20 should be free on turnover day: %+v", out[0].AvailableRooms)
	}
}

func TestSearchHotelOrderingAscendsByID(t *testing.T) {
	hotels, reservations, locations := bogota()
	svc := newSearch(hotels, reservations, locations, nil)

	// A solo traveller far in the future fits rooms at both hotels.
	out, err := svc.Search(context.Background(), domain.SearchCriteria{
		LocationID:     1,
		CheckIn:        day(2027, 6, 1),
		CheckOut:       day(2027, 6, 3),
		NumberOfGuests: 1,
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 2 || out[0].HotelID != 1 || out[1].HotelID != 2 {
		t.Fatalf("expected hotels [1 2], got %+v", out)
	}
	rooms := out[1].AvailableRooms
	if len(rooms) != 2 || rooms[0].RoomID != 20 || rooms[1].RoomID != 21 {
		t.Fatalf("expected rooms [20 21], got %+v", rooms)
	}
}

func TestSearchNoMatchIsEmptyNotError(t *testing.T) {
	hotels, reservations, locations := bogota()
	svc := newSearch(hotels, reservations, locations, nil)

	out, err := svc.Search(context.Background(), domain.SearchCriteria{
		LocationID:     1,
		CheckIn:        day(2027, 6, 1),
		CheckOut:       day(2027, 6, 3),
		NumberOfGuests: 9,
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no results, got %+v", out)
	}
}

func TestSearchUnknownCity(t *testing.T) {
	hotels, reservations, locations := bogota()
	svc := newSearch(hotels, reservations, locations, nil)

	_, err := svc.Search(context.Background(), domain.SearchCriteria{
		City:           "Atlantis",
		CheckIn:        day(2027, 6, 1),
		CheckOut:       day(2027, 6, 3),
		NumberOfGuests: 1,
	})
	if domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("kind = %s, want not_found (err: %v)", domain.KindOf(err), err)
	}
}

func TestSearchCacheHit(t *testing.T) {
	hotels, reservations, locations := bogota()
	cache := &fakeCache{}
	svc := newSearch(hotels, reservations, locations, cache)

	criteria := domain.SearchCriteria{
		LocationID:     1,
		CheckIn:        day(2027, 6, 1),
		CheckOut:       day(2027, 6, 3),
		NumberOfGuests: 1,
	}
	first, err := svc.Search(context.Background(), criteria)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	// Wipe the inventory; the second call must come from cache.
	hotels.byLocation = nil
	second, err := svc.Search(context.Background(), criteria)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("cached result differs: first %d hotels, second %d", len(first), len(second))
	}
}
