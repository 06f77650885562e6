package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"staybook/internal/adapters/observability"
	"staybook/internal/app"
	"staybook/internal/domain"
)

type Handlers struct {
	Search       *app.SearchService
	Reservations *app.ReservationService
	Assignments  *app.AssignmentService
	Hotels       *app.HotelService
	Locations    *app.LocationService
	Countries    *app.CountryService
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Post("/v1/hotels/search", h.searchHotels)
	s.mux.Post("/v1/reservations", h.createReservation)
	s.mux.Get("/v1/rooms/{roomID}/reservations", h.reservationsByRoom)
	s.mux.Delete("/v1/reservations/{id}", h.deleteReservation)

	s.mux.Post("/v1/hotels", h.createHotel)
	s.mux.Patch("/v1/hotels/{hotelID}/status", h.setHotelStatus)
	s.mux.Get("/v1/hotels/{hotelID}/rooms", h.roomsByHotel)
	s.mux.Post("/v1/hotels/{hotelID}/rooms", h.assignRooms)
	s.mux.Post("/v1/rooms", h.createRoom)

	s.mux.Get("/v1/locations", h.listLocations)
	s.mux.Post("/v1/locations", h.createLocation)
	s.mux.Get("/v1/countries/{countryID}/locations", h.locationsByCountry)
	s.mux.Get("/v1/countries", h.listCountries)
	s.mux.Post("/v1/countries", h.createCountry)
}

// ---- problem responses ----

type problem struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Detail    string `json:"detail,omitempty"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindInvalid:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindPolicy:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	detail := err.Error()
	reqID := chimw.GetReqID(r.Context())
	if status == http.StatusInternalServerError {
		// never leak storage internals to clients; the request id lets
		// support correlate the problem body with the server logs
		log.Error().Err(err).Str("request_id", reqID).Msg("request failed")
		detail = "an unexpected error occurred"
	}
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	p := problem{
		Type:      "about:blank",
		Title:     domain.KindOf(err).String(),
		Status:    status,
		Detail:    detail,
		Code:      domain.CodeOf(err),
		RequestID: reqID,
	}
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func urlID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

// ---- search ----

type searchRequest struct {
	LocationID     int64  `json:"locationId,omitempty"`
	City           string `json:"city,omitempty"`
	CheckInDate    string `json:"checkInDate"`
	CheckOutDate   string `json:"checkOutDate"`
	NumberOfGuests int    `json:"numberOfGuests"`
}

func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblemBadJSON(w, r)
		return
	}
	checkIn, err1 := domain.ParseDate(req.CheckInDate)
	checkOut, err2 := domain.ParseDate(req.CheckOutDate)
	if err1 != nil || err2 != nil {
		writeError(w, r, domain.E(domain.KindInvalid, domain.CodeInvalidDateRange,
			"dates must be YYYY-MM-DD"))
		return
	}
	results, err := h.Search.Search(r.Context(), domain.SearchCriteria{
		LocationID:     req.LocationID,
		City:           req.City,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumberOfGuests: req.NumberOfGuests,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	if results == nil {
		results = []domain.HotelResult{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

// ---- reservations ----

type guestWire struct {
	FullName       string `json:"fullName"`
	BirthDate      string `json:"birthDate"`
	Gender         string `json:"gender"`
	DocumentType   string `json:"documentType"`
	DocumentNumber string `json:"documentNumber"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

type createReservationRequest struct {
	RoomID           int64                      `json:"roomId"`
	CheckInDate      string                     `json:"checkInDate"`
	CheckOutDate     string                     `json:"checkOutDate"`
	NumberOfGuests   int                        `json:"numberOfGuests"`
	Guests           []guestWire                `json:"guests"`
	EmergencyContact *app.EmergencyContactInput `json:"emergencyContact,omitempty"`
}

func (h *Handlers) createReservation(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblemBadJSON(w, r)
		return
	}
	checkIn, err1 := domain.ParseDate(req.CheckInDate)
	checkOut, err2 := domain.ParseDate(req.CheckOutDate)
	if err1 != nil || err2 != nil {
		writeError(w, r, domain.E(domain.KindInvalid, domain.CodeInvalidDateRange,
			"dates must be YYYY-MM-DD"))
		return
	}
	guests := make([]app.GuestInput, 0, len(req.Guests))
	for _, g := range req.Guests {
		birth, err := domain.ParseDate(g.BirthDate)
		if err != nil {
			writeError(w, r, domain.Ef(domain.KindInvalid, domain.CodeInvalidDateRange,
				"%s: birthDate must be YYYY-MM-DD", g.FullName))
			return
		}
		guests = append(guests, app.GuestInput{
			FullName:       g.FullName,
			BirthDate:      birth,
			Gender:         g.Gender,
			DocumentType:   g.DocumentType,
			DocumentNumber: g.DocumentNumber,
			Email:          g.Email,
			Phone:          g.Phone,
		})
	}

	conf, err := h.Reservations.Create(r.Context(), app.ReservationRequest{
		RoomID:           req.RoomID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		NumberOfGuests:   req.NumberOfGuests,
		Guests:           guests,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		observability.ObserveBooking(bookingOutcome(err))
		writeError(w, r, err)
		return
	}
	observability.ObserveBooking("confirmed")
	writeJSON(w, http.StatusCreated, conf)
}

func bookingOutcome(err error) string {
	switch domain.KindOf(err) {
	case domain.KindConflict:
		return "conflict"
	case domain.KindInvalid, domain.KindPolicy, domain.KindNotFound:
		return "rejected"
	}
	return "error"
}

func (h *Handlers) reservationsByRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := urlID(r, "roomID")
	if !ok {
		writeError(w, r, domain.E(domain.KindInvalid, "", "roomID must be a positive number"))
		return
	}
	out, err := h.Reservations.ListByRoom(r.Context(), roomID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(out) == 0 {
		writeError(w, r, domain.Ef(domain.KindNotFound, domain.CodeNotFound,
			"no reservations found for room %d", roomID))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reservations": toReservationWire(out)})
}

type reservationWire struct {
	ID               int64  `json:"id"`
	ConfirmationCode string `json:"confirmationCode"`
	CheckInDate      string `json:"checkInDate"`
	CheckOutDate     string `json:"checkOutDate"`
	NumberOfGuests   int    `json:"numberOfGuests"`
	IsConfirmed      bool   `json:"isConfirmed"`
	HotelID          int64  `json:"hotelId"`
	RoomID           int64  `json:"roomId"`
}

func toReservationWire(in []domain.Reservation) []reservationWire {
	out := make([]reservationWire, 0, len(in))
	for _, res := range in {
		out = append(out, reservationWire{
			ID:               res.ID,
			ConfirmationCode: res.ConfirmationCode,
			CheckInDate:      res.CheckIn.Format("2006-01-02"),
			CheckOutDate:     res.CheckOut.Format("2006-01-02"),
			NumberOfGuests:   res.NumberOfGuests,
			IsConfirmed:      res.IsConfirmed,
			HotelID:          res.HotelID,
			RoomID:           res.RoomID,
		})
	}
	return out
}

func (h *Handlers) deleteReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, r, domain.E(domain.KindInvalid, "", "id must be a positive number"))
		return
	}
	if err := h.Reservations.Cancel(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "reservation deleted"})
}

// ---- hotels / rooms ----

type createHotelRequest struct {
	Name       string `json:"name"`
	LocationID int64  `json:"locationId"`
	UserID     int64  `json:"userId"`
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var req createHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblemBadJSON(w, r)
		return
	}
	hotel, err := h.Hotels.Create(r.Context(), req.Name, req.LocationID, req.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, hotel)
}

func (h *Handlers) setHotelStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "hotelID")
	if !ok {
		writeError(w, r, domain.E(domain.KindInvalid, "", "hotelID must be a positive number"))
		return
	}
	var req struct {
		IsEnabled bool `json:"isEnabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblemBadJSON(w, r)
		return
	}
	if err := h.Hotels.SetEnabled(r.Context(), id, req.IsEnabled); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"hotelId": id, "isEnabled": req.IsEnabled})
}

func (h *Handlers) roomsByHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "hotelID")
	if !ok {
		writeError(w, r, domain.E(domain.KindInvalid, "", "hotelID must be a positive number"))
		return
	}
	rooms, err := h.Hotels.Rooms(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if rooms == nil {
		rooms = []domain.Room{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"rooms": rooms})
}

type createRoomRequest struct {
	RoomType    string  `json:"roomType"`
	BasePrice   float64 `json:"basePrice"`
	Taxes       float64 `json:"taxes"`
	MaxGuests   int     `json:"maxGuests"`
	IsAvailable bool    `json:"isAvailable"`
	HotelID     *int64  `json:"hotelId,omitempty"`
}

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblemBadJSON(w, r)
		return
	}
	room, err := h.Hotels.AddRoom(r.Context(), domain.Room{
		RoomType:    req.RoomType,
		BasePrice:   req.BasePrice,
		Taxes:       req.Taxes,
		MaxGuests:   req.MaxGuests,
		IsAvailable: req.IsAvailable,
		HotelID:     req.HotelID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (h *Handlers) assignRooms(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := urlID(r, "hotelID")
	if !ok {
		writeError(w, r, domain.E(domain.KindInvalid, "", "hotelID must be a positive number"))
		return
	}
	var req struct {
		RoomIDs []int64 `json:"roomIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblemBadJSON(w, r)
		return
	}
	assigned, err := h.Assignments.AssignRooms(r.Context(), hotelID, req.RoomIDs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"hotelId": hotelID, "assignedRoomIds": assigned})
}

// ---- locations / countries ----

func (h *Handlers) listLocations(w http.ResponseWriter, r *http.Request) {
	out, err := h.Locations.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"locations": out})
}

func (h *Handlers) locationsByCountry(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "countryID")
	if !ok {
		writeError(w, r, domain.E(domain.KindInvalid, "", "countryID must be a positive number"))
		return
	}
	out, err := h.Locations.ListByCountry(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"locations": out})
}

type createLocationRequest struct {
	CityName  string `json:"cityName"`
	CityCode  string `json:"cityCode"`
	CountryID int64  `json:"countryId"`
}

func (h *Handlers) createLocation(w http.ResponseWriter, r *http.Request) {
	var req createLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblemBadJSON(w, r)
		return
	}
	loc, err := h.Locations.Create(r.Context(), req.CityName, req.CityCode, req.CountryID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, loc)
}

func (h *Handlers) listCountries(w http.ResponseWriter, r *http.Request) {
	out, err := h.Countries.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"countries": out})
}

type createCountryRequest struct {
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
}

func (h *Handlers) createCountry(w http.ResponseWriter, r *http.Request) {
	var req createCountryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblemBadJSON(w, r)
		return
	}
	c, err := h.Countries.Create(r.Context(), req.Name, req.CountryCode)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func writeProblemBadJSON(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, domain.E(domain.KindInvalid, "", "request body must be valid JSON"))
}
