package mysql

import (
	"context"
	"database/sql"
	"strings"

	"staybook/internal/domain"
)

// One repo type per aggregate, all sharing the same *sql.DB pool.

func valInt64(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

// placeholders returns "(?,?,...)" with n markers.
func placeholders(n int) string {
	return "(" + strings.TrimSuffix(strings.Repeat("?,", n), ",") + ")"
}

// ---- hotels ----

type HotelRepo struct{ db *sql.DB }

func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{db: db} }

func (r *HotelRepo) GetByID(ctx context.Context, id int64) (domain.Hotel, error) {
	var h domain.Hotel
	err := r.db.QueryRowContext(ctx, getHotelSQL, id).Scan(
		&h.ID, &h.Name, &h.LocationID, &h.IsEnabled, &h.CreatedByUserID,
	)
	if err == sql.ErrNoRows {
		return domain.Hotel{}, domain.E(domain.KindNotFound, domain.CodeHotelNotFound, "hotel not found")
	}
	if err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}

func (r *HotelRepo) ListEnabledByLocation(ctx context.Context, locationID int64) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listEnabledByLocationSQL, locationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	byID := map[int64]int{}
	for rows.Next() {
		var h domain.Hotel
		var rm domain.Room
		if err := rows.Scan(
			&h.ID, &h.Name, &h.LocationID, &h.IsEnabled, &h.CreatedByUserID,
			&rm.ID, &rm.RoomType, &rm.BasePrice, &rm.Taxes, &rm.MaxGuests, &rm.IsAvailable,
		); err != nil {
			return nil, err
		}
		hid := h.ID
		rm.HotelID = &hid
		idx, seen := byID[h.ID]
		if !seen {
			out = append(out, h)
			idx = len(out) - 1
			byID[h.ID] = idx
		}
		out[idx].Rooms = append(out[idx].Rooms, rm)
	}
	return out, rows.Err()
}

func (r *HotelRepo) ExistsInLocation(ctx context.Context, name string, locationID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, hotelExistsInLocationSQL, name, locationID).Scan(&exists)
	return exists, err
}

func (r *HotelRepo) Create(ctx context.Context, h domain.Hotel) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertHotelSQL, h.Name, h.LocationID, h.IsEnabled, h.CreatedByUserID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *HotelRepo) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	_, err := r.db.ExecContext(ctx, setHotelEnabledSQL, enabled, id)
	return err
}

// ---- rooms ----

type RoomRepo struct{ db *sql.DB }

func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

func (r *RoomRepo) GetWithHotel(ctx context.Context, id int64) (domain.Room, *domain.Hotel, error) {
	var rm domain.Room
	var hotelID, hID, hLoc, hUser sql.NullInt64
	var hName sql.NullString
	var hEnabled sql.NullBool

	err := r.db.QueryRowContext(ctx, getRoomWithHotelSQL, id).Scan(
		&rm.ID, &rm.RoomType, &rm.BasePrice, &rm.Taxes, &rm.MaxGuests, &rm.IsAvailable, &hotelID,
		&hID, &hName, &hLoc, &hEnabled, &hUser,
	)
	if err == sql.ErrNoRows {
		return domain.Room{}, nil, domain.E(domain.KindNotFound, domain.CodeRoomNotFound, "room not found")
	}
	if err != nil {
		return domain.Room{}, nil, err
	}
	if hotelID.Valid {
		v := hotelID.Int64
		rm.HotelID = &v
	}
	if !hID.Valid {
		return rm, nil, nil
	}
	return rm, &domain.Hotel{
		ID:              hID.Int64,
		Name:            hName.String,
		LocationID:      hLoc.Int64,
		IsEnabled:       hEnabled.Bool,
		CreatedByUserID: hUser.Int64,
	}, nil
}

func (r *RoomRepo) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsByHotelSQL, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRooms(rows)
}

func (r *RoomRepo) ListByIDs(ctx context.Context, ids []int64) ([]domain.Room, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	q := `SELECT id, room_type, base_price, taxes, max_guests, is_available, hotel_id
FROM rooms WHERE id IN ` + placeholders(len(ids)) + ` ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRooms(rows)
}

func scanRooms(rows *sql.Rows) ([]domain.Room, error) {
	var out []domain.Room
	for rows.Next() {
		var rm domain.Room
		var hotelID sql.NullInt64
		if err := rows.Scan(&rm.ID, &rm.RoomType, &rm.BasePrice, &rm.Taxes,
			&rm.MaxGuests, &rm.IsAvailable, &hotelID); err != nil {
			return nil, err
		}
		if hotelID.Valid {
			v := hotelID.Int64
			rm.HotelID = &v
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *RoomRepo) Create(ctx context.Context, rm domain.Room) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertRoomSQL,
		rm.RoomType, rm.BasePrice, rm.Taxes, rm.MaxGuests, rm.IsAvailable, valInt64(rm.HotelID))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// AssignBatch runs the whole batch in one transaction and commits only
// when every listed room was still unassigned; otherwise it rolls back
// and reports how many rows would have matched.
func (r *RoomRepo) AssignBatch(ctx context.Context, roomIDs []int64, hotelID int64) (int64, error) {
	if len(roomIDs) == 0 {
		return 0, nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	args := make([]any, 0, len(roomIDs)+1)
	args = append(args, hotelID)
	for _, id := range roomIDs {
		args = append(args, id)
	}
	res, err := tx.ExecContext(ctx, assignRoomsPrefix+placeholders(len(roomIDs)), args...)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	if n != int64(len(roomIDs)) {
		_ = tx.Rollback()
		return n, nil
	}
	return n, tx.Commit()
}
