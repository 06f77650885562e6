package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"staybook/internal/domain"
)

// ReservationService runs the booking workflow: validate, check
// eligibility and overlap, upsert guests, persist, notify. The
// overlap-check-to-insert window is serialized per room via RoomLocks.
type ReservationService struct {
	rooms        domain.RoomRepository
	reservations domain.ReservationRepository
	guests       domain.GuestRepository
	notifier     domain.Notifier
	locks        *RoomLocks
}

func NewReservationService(
	rooms domain.RoomRepository,
	reservations domain.ReservationRepository,
	guests domain.GuestRepository,
	notifier domain.Notifier,
	locks *RoomLocks,
) *ReservationService {
	return &ReservationService{
		rooms:        rooms,
		reservations: reservations,
		guests:       guests,
		notifier:     notifier,
		locks:        locks,
	}
}

// Create books the room or fails with a typed error; on any failure
// nothing is persisted. Notification delivery is best-effort and never
// rolls back a committed reservation.
func (s *ReservationService) Create(ctx context.Context, req ReservationRequest) (Confirmation, error) {
	req.CheckIn = domain.Date(req.CheckIn)
	req.CheckOut = domain.Date(req.CheckOut)
	if err := ValidateReservation(req, domain.Date(time.Now())); err != nil {
		return Confirmation{}, err
	}

	room, hotel, err := s.rooms.GetWithHotel(ctx, req.RoomID)
	if err != nil {
		return Confirmation{}, err
	}
	if hotel == nil || !hotel.IsEnabled {
		return Confirmation{}, domain.E(domain.KindPolicy, domain.CodeHotelNotEnabled,
			"the hotel for this room is not accepting bookings")
	}
	if !room.IsAvailable {
		return Confirmation{}, domain.E(domain.KindPolicy, domain.CodeRoomUnavailable,
			"room is not available for booking")
	}
	if req.NumberOfGuests > room.MaxGuests {
		return Confirmation{}, domain.Ef(domain.KindPolicy, domain.CodeCapacityExceeded,
			"room holds at most %d guests, %d requested", room.MaxGuests, req.NumberOfGuests)
	}

	unlock := s.locks.Lock(room.ID)
	defer unlock()

	existing, err := s.reservations.ListByRoom(ctx, room.ID)
	if err != nil {
		return Confirmation{}, err
	}
	for _, res := range existing {
		if res.ConflictsWith(req.CheckIn, req.CheckOut) {
			return Confirmation{}, domain.E(domain.KindConflict, domain.CodeRoomAlreadyBooked,
				"room is already booked for overlapping dates")
		}
	}

	guestIDs := make([]int64, 0, len(req.Guests))
	seen := make(map[int64]bool, len(req.Guests))
	emails := make([]string, 0, len(req.Guests))
	for _, in := range req.Guests {
		gender, _ := domain.ParseGender(in.Gender)
		docType, _ := domain.ParseDocumentType(in.DocumentType)
		id, err := s.guests.UpsertByDocument(ctx, domain.Guest{
			FullName:       in.FullName,
			BirthDate:      in.BirthDate,
			Gender:         gender,
			DocumentType:   docType,
			DocumentNumber: in.DocumentNumber,
			Email:          in.Email,
			Phone:          in.Phone,
		})
		if err != nil {
			return Confirmation{}, err
		}
		// two entries with the same document upsert to one guest row;
		// link (and mail) that guest once
		if seen[id] {
			continue
		}
		seen[id] = true
		guestIDs = append(guestIDs, id)
		if in.Email != "" {
			emails = append(emails, in.Email)
		}
	}

	res := domain.Reservation{
		ConfirmationCode: uuid.NewString(),
		CheckIn:          req.CheckIn,
		CheckOut:         req.CheckOut,
		NumberOfGuests:   req.NumberOfGuests,
		IsConfirmed:      true,
		HotelID:          hotel.ID,
		RoomID:           room.ID,
	}
	var contact *domain.EmergencyContact
	if req.EmergencyContact != nil {
		contact = &domain.EmergencyContact{
			FullName: req.EmergencyContact.FullName,
			Phone:    req.EmergencyContact.Phone,
		}
	}
	resID, err := s.reservations.Create(ctx, res, guestIDs, contact)
	if err != nil {
		return Confirmation{}, err
	}

	s.notify(ctx, emails, domain.ReservationSummary{
		ConfirmationCode: res.ConfirmationCode,
		HotelName:        hotel.Name,
		RoomType:         room.RoomType,
		CheckIn:          res.CheckIn,
		CheckOut:         res.CheckOut,
		NumberOfGuests:   res.NumberOfGuests,
	})

	return Confirmation{
		ReservationID:    resID,
		ConfirmationCode: res.ConfirmationCode,
		HotelName:        hotel.Name,
		RoomID:           room.ID,
		CheckIn:          res.CheckIn,
		CheckOut:         res.CheckOut,
	}, nil
}

func (s *ReservationService) notify(ctx context.Context, emails []string, sum domain.ReservationSummary) {
	if s.notifier == nil || len(emails) == 0 {
		return
	}
	if err := s.notifier.SendReservationConfirmation(ctx, emails, sum); err != nil {
		log.Warn().Err(err).
			Str("confirmation", sum.ConfirmationCode).
			Msg("confirmation mail failed, reservation stands")
	}
}

// ListByRoom returns every reservation held against the room.
func (s *ReservationService) ListByRoom(ctx context.Context, roomID int64) ([]domain.Reservation, error) {
	return s.reservations.ListByRoom(ctx, roomID)
}

// Cancel deletes the reservation along with its guest links and
// emergency contact.
func (s *ReservationService) Cancel(ctx context.Context, id int64) error {
	return s.reservations.Delete(ctx, id)
}
