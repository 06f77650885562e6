package app

import (
	"context"
	"sort"
	"time"

	"staybook/internal/domain"
)

// AvailabilityResolver computes which rooms at a location can take a
// stay. One bulk reservation query covers the whole date range; the
// overlap filter then runs in memory per candidate room.
type AvailabilityResolver struct {
	hotels       domain.HotelRepository
	reservations domain.ReservationRepository
}

func NewAvailabilityResolver(h domain.HotelRepository, r domain.ReservationRepository) *AvailabilityResolver {
	return &AvailabilityResolver{hotels: h, reservations: r}
}

// AvailableRooms returns, per enabled hotel at the location, the rooms
// that are flagged available, can host the party, and carry no
// reservation overlapping [checkIn, checkOut). Hotels with no
// surviving room are dropped. Ordering is deterministic: hotels and
// rooms both ascend by id.
func (a *AvailabilityResolver) AvailableRooms(ctx context.Context, loc domain.Location, checkIn, checkOut time.Time, partySize int) ([]domain.HotelResult, error) {
	hotels, err := a.hotels.ListEnabledByLocation(ctx, loc.ID)
	if err != nil {
		return nil, err
	}

	overlapping, err := a.reservations.ListOverlapping(ctx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	booked := make(map[int64][]domain.Reservation, len(overlapping))
	for _, res := range overlapping {
		booked[res.RoomID] = append(booked[res.RoomID], res)
	}

	results := make([]domain.HotelResult, 0, len(hotels))
	for _, h := range hotels {
		var offers []domain.RoomOffer
		for _, room := range h.Rooms {
			if !room.CanHost(partySize) {
				continue
			}
			if hasConflict(booked[room.ID], checkIn, checkOut) {
				continue
			}
			offers = append(offers, domain.RoomOffer{
				RoomID:    room.ID,
				RoomType:  room.RoomType,
				BasePrice: room.BasePrice,
				Taxes:     room.Taxes,
				MaxGuests: room.MaxGuests,
			})
		}
		if len(offers) == 0 {
			continue
		}
		sort.Slice(offers, func(i, j int) bool { return offers[i].RoomID < offers[j].RoomID })
		results = append(results, domain.HotelResult{
			HotelID:        h.ID,
			HotelName:      h.Name,
			Location:       loc.CityName,
			AvailableRooms: offers,
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].HotelID < results[j].HotelID })
	return results, nil
}

func hasConflict(existing []domain.Reservation, checkIn, checkOut time.Time) bool {
	for _, res := range existing {
		if res.ConflictsWith(checkIn, checkOut) {
			return true
		}
	}
	return false
}
