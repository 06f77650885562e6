package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"staybook/internal/domain"
)

type ReservationRepo struct{ db *sql.DB }

func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const dateFmt = "2006-01-02"

func (r *ReservationRepo) ListByRoom(ctx context.Context, roomID int64) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, listReservationsByRoomSQL, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (r *ReservationRepo) ListOverlapping(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, listOverlappingSQL,
		checkOut.Format(dateFmt), checkIn.Format(dateFmt))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func scanReservations(rows *sql.Rows) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		var in, outD time.Time
		if err := rows.Scan(&res.ID, &res.ConfirmationCode, &in, &outD,
			&res.NumberOfGuests, &res.IsConfirmed, &res.HotelID, &res.RoomID); err != nil {
			return nil, err
		}
		res.CheckIn = domain.Date(in)
		res.CheckOut = domain.Date(outD)
		out = append(out, res)
	}
	return out, rows.Err()
}

// Create persists the reservation, its guest links and the optional
// emergency contact in one transaction.
func (r *ReservationRepo) Create(ctx context.Context, res domain.Reservation, guestIDs []int64, ec *domain.EmergencyContact) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	ins, err := tx.ExecContext(ctx, insertReservationSQL,
		res.ConfirmationCode,
		res.CheckIn.Format(dateFmt),
		res.CheckOut.Format(dateFmt),
		res.NumberOfGuests,
		res.IsConfirmed,
		res.HotelID,
		res.RoomID,
	)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	resID, err := ins.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	if len(guestIDs) > 0 {
		values := make([]string, 0, len(guestIDs))
		args := make([]any, 0, len(guestIDs)*2)
		for _, gid := range guestIDs {
			values = append(values, "(?,?)")
			args = append(args, resID, gid)
		}
		if _, err := tx.ExecContext(ctx, insertReservationGuestPrefix+strings.Join(values, ","), args...); err != nil {
			_ = tx.Rollback()
			return 0, err
		}
	}

	if ec != nil {
		if _, err := tx.ExecContext(ctx, insertEmergencyContactSQL, ec.FullName, ec.Phone, resID); err != nil {
			_ = tx.Rollback()
			return 0, err
		}
	}

	return resID, tx.Commit()
}

// Delete removes the reservation with its guest links and emergency
// contact. Deleting an absent reservation is a NotFound.
func (r *ReservationRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, deleteEmergencyContactSQL, id); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, deleteReservationGuestsSQL, id); err != nil {
		_ = tx.Rollback()
		return err
	}
	res, err := tx.ExecContext(ctx, deleteReservationSQL, id)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		_ = tx.Rollback()
		return domain.E(domain.KindNotFound, domain.CodeNotFound, "reservation not found")
	}
	return tx.Commit()
}

// ---- guests ----

type GuestRepo struct{ db *sql.DB }

func NewGuestRepo(db *sql.DB) *GuestRepo { return &GuestRepo{db: db} }

func (r *GuestRepo) UpsertByDocument(ctx context.Context, g domain.Guest) (int64, error) {
	res, err := r.db.ExecContext(ctx, upsertGuestSQL,
		g.FullName,
		g.BirthDate.Format(dateFmt),
		string(g.Gender),
		string(g.DocumentType),
		g.DocumentNumber,
		g.Email,
		g.Phone,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
