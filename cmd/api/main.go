package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "staybook/internal/adapters/http_server"
	"staybook/internal/adapters/mailer"
	"staybook/internal/adapters/observability"
	redisad "staybook/internal/adapters/redis"
	"staybook/internal/app"
	"staybook/internal/domain"
	"staybook/internal/shared"
	mysqlrepo "staybook/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "api")

	reg := observability.InitRegistry()
	observability.Serve(reg)

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	hotels := mysqlrepo.NewHotelRepo(db)
	rooms := mysqlrepo.NewRoomRepo(db)
	reservations := mysqlrepo.NewReservationRepo(db)
	guests := mysqlrepo.NewGuestRepo(db)
	locations := mysqlrepo.NewLocationRepo(db)
	countries := mysqlrepo.NewCountryRepo(db)

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	var notifier *mailer.Client
	if cfg.MailerBase != "" {
		notifier, err = mailer.New(cfg.MailerBase, cfg.MailerKey, cfg.MailerFrom, cfg.MailerRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("mailer init failed")
		}
	} else {
		log.Warn().Msg("MAILER_BASE_URL is empty, confirmation mails disabled")
	}

	// avoid handing a typed-nil *mailer.Client to the service
	var notify domain.Notifier
	if notifier != nil {
		notify = notifier
	}

	locks := app.NewRoomLocks()
	resolver := app.NewAvailabilityResolver(hotels, reservations)
	search := app.NewSearchService(locations, resolver, cache, cfg.CacheTTL)
	reserve := app.NewReservationService(rooms, reservations, guests, notify, locks)
	assign := app.NewAssignmentService(hotels, rooms, locks)
	hotelSvc := app.NewHotelService(hotels, rooms, locations)
	locSvc := app.NewLocationService(locations, countries)
	countrySvc := app.NewCountryService(countries)

	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Search:       search,
		Reservations: reserve,
		Assignments:  assign,
		Hotels:       hotelSvc,
		Locations:    locSvc,
		Countries:    countrySvc,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
