package app_test

import (
	"context"
	"testing"

	"staybook/internal/app"
	"staybook/internal/domain"
)

func TestCreateHotel(t *testing.T) {
	hotels := &fakeHotels{byID: map[int64]domain.Hotel{}}
	locations := &fakeLocations{byID: map[int64]domain.Location{1: {ID: 1, CityName: "Bogotá"}}}
	svc := app.NewHotelService(hotels, &fakeRooms{}, locations)

	h, err := svc.Create(context.Background(), "  Andes View ", 1, 42)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if h.Name != "Andes View" {
		t.Fatalf("name not trimmed: %q", h.Name)
	}
	if !h.IsEnabled {
		t.Fatal("new hotels start enabled")
	}
	if h.ID == 0 || h.LocationID != 1 || h.CreatedByUserID != 42 {
		t.Fatalf("unexpected hotel: %+v", h)
	}
}

func TestCreateHotelUnknownLocation(t *testing.T) {
	svc := app.NewHotelService(&fakeHotels{}, &fakeRooms{}, &fakeLocations{})
	_, err := svc.Create(context.Background(), "Andes View", 99, 42)
	if domain.CodeOf(err) != domain.CodeLocationNotFound {
		t.Fatalf("code = %s, want %s", domain.CodeOf(err), domain.CodeLocationNotFound)
	}
}

func TestCreateHotelDuplicateName(t *testing.T) {
	hotels := &fakeHotels{exists: true}
	locations := &fakeLocations{byID: map[int64]domain.Location{1: {ID: 1}}}
	svc := app.NewHotelService(hotels, &fakeRooms{}, locations)

	_, err := svc.Create(context.Background(), "Andes View", 1, 42)
	if domain.CodeOf(err) != domain.CodeDuplicateHotel {
		t.Fatalf("code = %s, want %s", domain.CodeOf(err), domain.CodeDuplicateHotel)
	}
	if domain.KindOf(err) != domain.KindConflict {
		t.Fatalf("kind = %s, want conflict", domain.KindOf(err))
	}
}

func TestAddRoomUnassigned(t *testing.T) {
	rooms := &fakeRooms{}
	svc := app.NewHotelService(&fakeHotels{}, rooms, &fakeLocations{})

	room, err := svc.AddRoom(context.Background(), domain.Room{
		RoomType:    " Double ",
		BasePrice:   120,
		Taxes:       19,
		MaxGuests:   2,
		IsAvailable: true,
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if room.ID == 0 || room.RoomType != "Double" {
		t.Fatalf("unexpected room: %+v", room)
	}
	if room.HotelID != nil {
		t.Fatalf("room should stay unassigned, got hotel %d", *room.HotelID)
	}
	if len(rooms.created) != 1 || rooms.created[0].HotelID != nil {
		t.Fatalf("persisted rooms: %+v", rooms.created)
	}
}

func TestAddRoomToHotel(t *testing.T) {
	hotels := &fakeHotels{byID: map[int64]domain.Hotel{7: {ID: 7, Name: "Andes View"}}}
	rooms := &fakeRooms{}
	svc := app.NewHotelService(hotels, rooms, &fakeLocations{})

	room, err := svc.AddRoom(context.Background(), domain.Room{
		RoomType: "Suite", BasePrice: 300, Taxes: 19, MaxGuests: 4,
		IsAvailable: true, HotelID: ptr(int64(7)),
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if room.HotelID == nil || *room.HotelID != 7 {
		t.Fatalf("unexpected room: %+v", room)
	}
}

func TestAddRoomUnknownHotel(t *testing.T) {
	svc := app.NewHotelService(&fakeHotels{}, &fakeRooms{}, &fakeLocations{})
	_, err := svc.AddRoom(context.Background(), domain.Room{
		RoomType: "Suite", BasePrice: 300, MaxGuests: 4, HotelID: ptr(int64(99)),
	})
	if domain.CodeOf(err) != domain.CodeHotelNotFound {
		t.Fatalf("code = %s, want %s", domain.CodeOf(err), domain.CodeHotelNotFound)
	}
}

func TestAddRoomRejectsBadInput(t *testing.T) {
	svc := app.NewHotelService(&fakeHotels{}, &fakeRooms{}, &fakeLocations{})
	cases := map[string]domain.Room{
		"no type":        {BasePrice: 100, MaxGuests: 2},
		"zero capacity":  {RoomType: "Double", BasePrice: 100},
		"negative price": {RoomType: "Double", BasePrice: -1, MaxGuests: 2},
		"negative taxes": {RoomType: "Double", BasePrice: 100, Taxes: -1, MaxGuests: 2},
	}
	for name, room := range cases {
		_, err := svc.AddRoom(context.Background(), room)
		if domain.CodeOf(err) != domain.CodeInvalidRoom {
			t.Fatalf("%s: code = %s, want %s", name, domain.CodeOf(err), domain.CodeInvalidRoom)
		}
		if domain.KindOf(err) != domain.KindInvalid {
			t.Fatalf("%s: kind = %s, want invalid", name, domain.KindOf(err))
		}
	}
}

func TestSetEnabledUnknownHotel(t *testing.T) {
	svc := app.NewHotelService(&fakeHotels{}, &fakeRooms{}, &fakeLocations{})
	err := svc.SetEnabled(context.Background(), 99, false)
	if domain.CodeOf(err) != domain.CodeHotelNotFound {
		t.Fatalf("code = %s, want %s", domain.CodeOf(err), domain.CodeHotelNotFound)
	}
}

func TestCreateLocation(t *testing.T) {
	countries := &fakeCountries{byID: map[int64]domain.Country{10: {ID: 10, Name: "Colombia"}}}
	locations := &fakeLocations{}
	svc := app.NewLocationService(locations, countries)

	loc, err := svc.Create(context.Background(), " Bogotá ", "bog", 10)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if loc.CityName != "Bogotá" || loc.CityCode != "BOG" {
		t.Fatalf("normalization off: %+v", loc)
	}
}

func TestCreateLocationDuplicates(t *testing.T) {
	countries := &fakeCountries{byID: map[int64]domain.Country{10: {ID: 10}}}

	svc := app.NewLocationService(&fakeLocations{nameExists: true}, countries)
	if _, err := svc.Create(context.Background(), "Bogotá", "BOG", 10); domain.CodeOf(err) != domain.CodeDuplicateLocation {
		t.Fatalf("duplicate city name: code = %s", domain.CodeOf(err))
	}

	svc = app.NewLocationService(&fakeLocations{codeExists: true}, countries)
	if _, err := svc.Create(context.Background(), "Bogotá", "BOG", 10); domain.CodeOf(err) != domain.CodeDuplicateLocation {
		t.Fatalf("duplicate city code: code = %s", domain.CodeOf(err))
	}

	svc = app.NewLocationService(&fakeLocations{}, &fakeCountries{})
	if _, err := svc.Create(context.Background(), "Bogotá", "BOG", 99); domain.CodeOf(err) != domain.CodeCountryNotFound {
		t.Fatalf("unknown country: code = %s", domain.CodeOf(err))
	}
}

func TestCreateCountry(t *testing.T) {
	countries := &fakeCountries{}
	svc := app.NewCountryService(countries)

	c, err := svc.Create(context.Background(), " Colombia ", "col")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if c.Name != "Colombia" || c.Code != "COL" {
		t.Fatalf("normalization off: %+v", c)
	}

	svc = app.NewCountryService(&fakeCountries{nameExists: true})
	if _, err := svc.Create(context.Background(), "Colombia", "COL"); domain.CodeOf(err) != domain.CodeDuplicateCountry {
		t.Fatalf("duplicate name: code = %s", domain.CodeOf(err))
	}

	svc = app.NewCountryService(&fakeCountries{codeExists: true})
	if _, err := svc.Create(context.Background(), "Colombia", "COL"); domain.CodeOf(err) != domain.CodeDuplicateCountry {
		t.Fatalf("duplicate code: code = %s", domain.CodeOf(err))
	}
}
