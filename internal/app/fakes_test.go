package app_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"staybook/internal/domain"
)

// In-memory collaborators shared by the service tests. Each fake keeps
// only the behavior the code under test touches and fails loudly on
// anything it wasn't primed for.

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

type fakeHotels struct {
	byID       map[int64]domain.Hotel
	byLocation map[int64][]domain.Hotel
	exists     bool
}

func (f *fakeHotels) GetByID(ctx context.Context, id int64) (domain.Hotel, error) {
	h, ok := f.byID[id]
	if !ok {
		return domain.Hotel{}, domain.E(domain.KindNotFound, domain.CodeHotelNotFound, "hotel not found")
	}
	return h, nil
}
func (f *fakeHotels) ListEnabledByLocation(ctx context.Context, locationID int64) ([]domain.Hotel, error) {
	var out []domain.Hotel
	for _, h := range f.byLocation[locationID] {
		if h.IsEnabled {
			out = append(out, h)
		}
	}
	return out, nil
}
func (f *fakeHotels) ExistsInLocation(ctx context.Context, name string, locationID int64) (bool, error) {
	return f.exists, nil
}
func (f *fakeHotels) Create(ctx context.Context, h domain.Hotel) (int64, error) {
	return int64(len(f.byID) + 1), nil
}
func (f *fakeHotels) SetEnabled(ctx context.Context, id int64, enabled bool) error { return nil }

type fakeRooms struct {
	room    domain.Room
	hotel   *domain.Hotel
	byIDs   []domain.Room
	assignN int64
	created []domain.Room
}

func (f *fakeRooms) GetWithHotel(ctx context.Context, id int64) (domain.Room, *domain.Hotel, error) {
	if f.room.ID != id {
		return domain.Room{}, nil, domain.E(domain.KindNotFound, domain.CodeRoomNotFound, "room not found")
	}
	return f.room, f.hotel, nil
}
func (f *fakeRooms) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	return nil, nil
}
func (f *fakeRooms) ListByIDs(ctx context.Context, ids []int64) ([]domain.Room, error) {
	return f.byIDs, nil
}
func (f *fakeRooms) Create(ctx context.Context, r domain.Room) (int64, error) {
	f.created = append(f.created, r)
	return int64(len(f.created)), nil
}
func (f *fakeRooms) AssignBatch(ctx context.Context, roomIDs []int64, hotelID int64) (int64, error) {
	return f.assignN, nil
}

// fakeReservations behaves like the real store under concurrency:
// reads and writes share one mutex so interleavings stay coherent.
type fakeReservations struct {
	mu     sync.Mutex
	byRoom map[int64][]domain.Reservation
	nextID int64

	createdGuests  [][]int64
	createdContact *domain.EmergencyContact
}

func (f *fakeReservations) ListByRoom(ctx context.Context, roomID int64) ([]domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Reservation(nil), f.byRoom[roomID]...), nil
}
func (f *fakeReservations) ListOverlapping(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Reservation
	for _, list := range f.byRoom {
		for _, r := range list {
			if r.ConflictsWith(checkIn, checkOut) {
				out = append(out, r)
			}
		}
	}
	return out, nil
}
func (f *fakeReservations) Create(ctx context.Context, res domain.Reservation, guestIDs []int64, ec *domain.EmergencyContact) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.byRoom == nil {
		f.byRoom = map[int64][]domain.Reservation{}
	}
	f.nextID++
	res.ID = f.nextID
	res.GuestIDs = guestIDs
	f.byRoom[res.RoomID] = append(f.byRoom[res.RoomID], res)
	f.createdGuests = append(f.createdGuests, guestIDs)
	f.createdContact = ec
	return res.ID, nil
}
func (f *fakeReservations) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeReservations) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, list := range f.byRoom {
		n += len(list)
	}
	return n
}

// fakeGuests keys guests by document so re-booking the same person
// yields the same id, mirroring the upsert in storage.
type fakeGuests struct {
	mu      sync.Mutex
	byDoc   map[string]domain.Guest
	nextID  int64
	upserts int
}

func (f *fakeGuests) UpsertByDocument(ctx context.Context, g domain.Guest) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.byDoc == nil {
		f.byDoc = map[string]domain.Guest{}
	}
	f.upserts++
	key := fmt.Sprintf("%s:%s", g.DocumentType, g.DocumentNumber)
	if old, ok := f.byDoc[key]; ok {
		g.ID = old.ID
		f.byDoc[key] = g
		return old.ID, nil
	}
	f.nextID++
	g.ID = f.nextID
	f.byDoc[key] = g
	return g.ID, nil
}

type fakeLocations struct {
	byID       map[int64]domain.Location
	byCity     map[string]domain.Location
	nameExists bool
	codeExists bool
	created    []domain.Location
}

func (f *fakeLocations) GetByID(ctx context.Context, id int64) (domain.Location, error) {
	l, ok := f.byID[id]
	if !ok {
		return domain.Location{}, domain.E(domain.KindNotFound, domain.CodeLocationNotFound, "location not found")
	}
	return l, nil
}
func (f *fakeLocations) GetByCityName(ctx context.Context, city string) (domain.Location, error) {
	l, ok := f.byCity[city]
	if !ok {
		return domain.Location{}, domain.E(domain.KindNotFound, domain.CodeLocationNotFound, "location not found")
	}
	return l, nil
}
func (f *fakeLocations) List(ctx context.Context) ([]domain.Location, error) { return nil, nil }
func (f *fakeLocations) ListByCountry(ctx context.Context, countryID int64) ([]domain.Location, error) {
	return nil, nil
}
func (f *fakeLocations) ExistsByCityName(ctx context.Context, city string, countryID int64) (bool, error) {
	return f.nameExists, nil
}
func (f *fakeLocations) ExistsByCityCode(ctx context.Context, code string) (bool, error) {
	return f.codeExists, nil
}
func (f *fakeLocations) Create(ctx context.Context, l domain.Location) (int64, error) {
	f.created = append(f.created, l)
	return int64(len(f.created)), nil
}

type fakeCountries struct {
	byID       map[int64]domain.Country
	nameExists bool
	codeExists bool
	created    []domain.Country
}

func (f *fakeCountries) GetByID(ctx context.Context, id int64) (domain.Country, error) {
	c, ok := f.byID[id]
	if !ok {
		return domain.Country{}, domain.E(domain.KindNotFound, domain.CodeCountryNotFound, "country not found")
	}
	return c, nil
}
func (f *fakeCountries) List(ctx context.Context) ([]domain.Country, error) { return nil, nil }
func (f *fakeCountries) ExistsByName(ctx context.Context, name string) (bool, error) {
	return f.nameExists, nil
}
func (f *fakeCountries) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return f.codeExists, nil
}
func (f *fakeCountries) Create(ctx context.Context, c domain.Country) (int64, error) {
	f.created = append(f.created, c)
	return int64(len(f.created)), nil
}

type fakeCache struct {
	store map[string]any
	sets  int
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if d, ok := dst.(*[]domain.HotelResult); ok {
		*d = v.([]domain.HotelResult)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	c.sets++
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error { return nil }

type fakeNotifier struct {
	mu     sync.Mutex
	emails []string
	sum    domain.ReservationSummary
	calls  int
	err    error
}

func (n *fakeNotifier) SendReservationConfirmation(ctx context.Context, emails []string, s domain.ReservationSummary) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	n.emails = emails
	n.sum = s
	return n.err
}
