package app

import (
	"context"

	"staybook/internal/domain"
)

// AssignmentService attaches unassigned rooms to a hotel. Every room
// is checked before anything is written; a single already-assigned
// room aborts the whole batch.
type AssignmentService struct {
	hotels domain.HotelRepository
	rooms  domain.RoomRepository
	locks  *RoomLocks
}

func NewAssignmentService(h domain.HotelRepository, r domain.RoomRepository, locks *RoomLocks) *AssignmentService {
	return &AssignmentService{hotels: h, rooms: r, locks: locks}
}

// AssignRooms binds the listed rooms to the hotel and returns the ids
// actually assigned. Rooms already owned by a hotel keep their owner.
func (s *AssignmentService) AssignRooms(ctx context.Context, hotelID int64, roomIDs []int64) ([]int64, error) {
	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.LockAll(roomIDs)
	defer unlock()

	rooms, err := s.rooms.ListByIDs(ctx, roomIDs)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, domain.E(domain.KindConflict, domain.CodeNoRoomsToAssign,
			"there are no rooms to assign")
	}
	for _, r := range rooms {
		if r.HotelID != nil {
			return nil, domain.Ef(domain.KindConflict, domain.CodeRoomAlreadyAssigned,
				"room %d is already assigned to another hotel", r.ID)
		}
	}

	ids := make([]int64, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	n, err := s.rooms.AssignBatch(ctx, ids, hotel.ID)
	if err != nil {
		return nil, err
	}
	// The batch update touches only still-unassigned rooms; a short
	// count means someone assigned one concurrently after our check.
	if n != int64(len(ids)) {
		return nil, domain.E(domain.KindConflict, domain.CodeRoomAlreadyAssigned,
			"a room was assigned concurrently, no changes were made")
	}
	return ids, nil
}
