package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"staybook/internal/adapters/observability"
	"staybook/internal/app"
	"staybook/internal/domain"
	"staybook/internal/shared"
	mysqlrepo "staybook/internal/storage/mysql"
)

// Seed file shape: countries carry their cities, hotels reference a
// city by name and carry their rooms. Rooms under unassignedRooms are
// created without a hotel, as stock for the assignment endpoint.
type seedFile struct {
	Countries       []seedCountry `json:"countries"`
	Hotels          []seedHotel   `json:"hotels"`
	UnassignedRooms []seedRoom    `json:"unassignedRooms"`
}

type seedCountry struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Cities []struct {
		CityName string `json:"cityName"`
		CityCode string `json:"cityCode"`
	} `json:"cities"`
}

type seedHotel struct {
	Name  string     `json:"name"`
	City  string     `json:"city"`
	Rooms []seedRoom `json:"rooms"`
}

type seedRoom struct {
	RoomType    string  `json:"roomType"`
	BasePrice   float64 `json:"basePrice"`
	Taxes       float64 `json:"taxes"`
	MaxGuests   int     `json:"maxGuests"`
	IsAvailable bool    `json:"isAvailable"`
}

func (sr seedRoom) room(hotelID *int64) domain.Room {
	return domain.Room{
		RoomType:    sr.RoomType,
		BasePrice:   sr.BasePrice,
		Taxes:       sr.Taxes,
		MaxGuests:   sr.MaxGuests,
		IsAvailable: sr.IsAvailable,
		HotelID:     hotelID,
	}
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, "seeder")
	log.Info().Str("file", cfg.SeedFile).Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	raw, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("read seed file failed")
	}
	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		log.Fatal().Err(err).Msg("parse seed file failed")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	hotels := mysqlrepo.NewHotelRepo(db)
	rooms := mysqlrepo.NewRoomRepo(db)
	locations := mysqlrepo.NewLocationRepo(db)
	countries := mysqlrepo.NewCountryRepo(db)

	countrySvc := app.NewCountryService(countries)
	locSvc := app.NewLocationService(locations, countries)
	hotelSvc := app.NewHotelService(hotels, rooms, locations)

	// reference data first: countries then cities, in file order,
	// so hotel seeding below can resolve city names
	for _, sc := range seed.Countries {
		country, err := countrySvc.Create(ctx, sc.Name, sc.Code)
		if err != nil {
			if domain.KindOf(err) != domain.KindConflict {
				log.Fatal().Err(err).Str("country", sc.Name).Msg("seed country failed")
			}
			// already present: look it up for its id
			country, err = findCountry(ctx, countries, sc.Name)
			if err != nil {
				log.Fatal().Err(err).Str("country", sc.Name).Msg("resolve country failed")
			}
		}
		for _, city := range sc.Cities {
			if _, err := locSvc.Create(ctx, city.CityName, city.CityCode, country.ID); err != nil &&
				domain.KindOf(err) != domain.KindConflict {
				log.Fatal().Err(err).Str("city", city.CityName).Msg("seed location failed")
			}
		}
	}

	// hotels fan out over a bounded worker pool
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup
	for _, sh := range seed.Hotels {
		sh := sh

		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := seedHotelWithRooms(ctx, sh, locations, hotelSvc); err != nil {
				log.Warn().Str("hotel", sh.Name).Err(err).Msg("seed hotel failed")
				return
			}
			log.Info().Str("hotel", sh.Name).Int("rooms", len(sh.Rooms)).Msg("seed hotel ok")
		}()
	}

	wg.Wait()

	for _, sr := range seed.UnassignedRooms {
		if _, err := hotelSvc.AddRoom(ctx, sr.room(nil)); err != nil {
			log.Fatal().Err(err).Str("room_type", sr.RoomType).Msg("seed unassigned room failed")
		}
	}
	if n := len(seed.UnassignedRooms); n > 0 {
		log.Info().Int("rooms", n).Msg("seeded unassigned room stock")
	}

	log.Info().Msg("seeding completed")
}

func findCountry(ctx context.Context, repo domain.CountryRepository, name string) (domain.Country, error) {
	all, err := repo.List(ctx)
	if err != nil {
		return domain.Country{}, err
	}
	for _, c := range all {
		if c.Name == name {
			return c, nil
		}
	}
	return domain.Country{}, errors.New("country vanished between create and lookup")
}

func seedHotelWithRooms(
	ctx context.Context,
	sh seedHotel,
	locations domain.LocationRepository,
	hotelSvc *app.HotelService,
) error {
	loc, err := locations.GetByCityName(ctx, sh.City)
	if err != nil {
		return err
	}
	hotel, err := hotelSvc.Create(ctx, sh.Name, loc.ID, 0)
	if err != nil {
		return err
	}
	for _, sr := range sh.Rooms {
		hid := hotel.ID
		if _, err := hotelSvc.AddRoom(ctx, sr.room(&hid)); err != nil {
			return err
		}
	}
	return nil
}
