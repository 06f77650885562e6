package mysql

// -----------------------------------------------------------------------------
// HOTELS / ROOMS
// -----------------------------------------------------------------------------

const getHotelSQL = `
SELECT id, name, location_id, is_enabled, created_by_user_id
FROM hotels
WHERE id = ?
`

// Enabled hotels at a location with their rooms. Hotels without rooms
// cannot appear in search results, so an inner join is fine here.
const listEnabledByLocationSQL = `
SELECT
  h.id, h.name, h.location_id, h.is_enabled, h.created_by_user_id,
  r.id, r.room_type, r.base_price, r.taxes, r.max_guests, r.is_available
FROM hotels h
JOIN rooms r ON r.hotel_id = h.id
WHERE h.location_id = ? AND h.is_enabled = 1
ORDER BY h.id, r.id
`

const hotelExistsInLocationSQL = `
SELECT EXISTS(
  SELECT 1 FROM hotels WHERE LOWER(name) = LOWER(?) AND location_id = ?
)
`

const insertHotelSQL = `
INSERT INTO hotels (name, location_id, is_enabled, created_by_user_id)
VALUES (?, ?, ?, ?)
`

const setHotelEnabledSQL = `
UPDATE hotels SET is_enabled = ? WHERE id = ?
`

const getRoomWithHotelSQL = `
SELECT
  r.id, r.room_type, r.base_price, r.taxes, r.max_guests, r.is_available, r.hotel_id,
  h.id, h.name, h.location_id, h.is_enabled, h.created_by_user_id
FROM rooms r
LEFT JOIN hotels h ON h.id = r.hotel_id
WHERE r.id = ?
`

const listRoomsByHotelSQL = `
SELECT id, room_type, base_price, taxes, max_guests, is_available, hotel_id
FROM rooms
WHERE hotel_id = ?
ORDER BY id
`

const insertRoomSQL = `
INSERT INTO rooms (room_type, base_price, taxes, max_guests, is_available, hotel_id)
VALUES (?, ?, ?, ?, ?, ?)
`

// Guarded by hotel_id IS NULL so a concurrent assignment can never be
// overwritten; the caller compares affected rows against the batch size.
const assignRoomsPrefix = `UPDATE rooms SET hotel_id = ? WHERE hotel_id IS NULL AND id IN `

// -----------------------------------------------------------------------------
// RESERVATIONS / GUESTS
// -----------------------------------------------------------------------------

const listReservationsByRoomSQL = `
SELECT id, confirmation_code, check_in, check_out, num_guests, is_confirmed, hotel_id, room_id
FROM reservations
WHERE room_id = ?
ORDER BY check_in, id
`

// Bulk half-open interval intersection over all rooms.
const listOverlappingSQL = `
SELECT id, confirmation_code, check_in, check_out, num_guests, is_confirmed, hotel_id, room_id
FROM reservations
WHERE check_in < ? AND check_out > ?
ORDER BY id
`

const insertReservationSQL = `
INSERT INTO reservations
  (confirmation_code, check_in, check_out, num_guests, is_confirmed, hotel_id, room_id)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

const insertReservationGuestPrefix = `INSERT INTO reservation_guests (reservation_id, guest_id) VALUES `

const insertEmergencyContactSQL = `
INSERT INTO emergency_contacts (full_name, phone, reservation_id)
VALUES (?, ?, ?)
`

const deleteReservationGuestsSQL = `DELETE FROM reservation_guests WHERE reservation_id = ?`
const deleteEmergencyContactSQL = `DELETE FROM emergency_contacts WHERE reservation_id = ?`
const deleteReservationSQL = `DELETE FROM reservations WHERE id = ?`

// LAST_INSERT_ID(id) makes the duplicate path report the existing row's
// id through LastInsertId, so insert and update converge on one call.
const upsertGuestSQL = `
INSERT INTO guests
  (full_name, birth_date, gender, document_type, document_number, email, phone)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  id        = LAST_INSERT_ID(id),
  full_name = VALUES(full_name),
  email     = VALUES(email),
  phone     = VALUES(phone)
`

// -----------------------------------------------------------------------------
// LOCATIONS / COUNTRIES
// -----------------------------------------------------------------------------

const getLocationSQL = `
SELECT id, city_name, city_code, country_id FROM locations WHERE id = ?
`

const getLocationByCitySQL = `
SELECT id, city_name, city_code, country_id
FROM locations
WHERE LOWER(city_name) = LOWER(?)
ORDER BY id
LIMIT 1
`

const listLocationsSQL = `
SELECT id, city_name, city_code, country_id FROM locations ORDER BY id
`

const listLocationsByCountrySQL = `
SELECT id, city_name, city_code, country_id FROM locations WHERE country_id = ? ORDER BY id
`

const locationExistsByNameSQL = `
SELECT EXISTS(
  SELECT 1 FROM locations WHERE LOWER(city_name) = LOWER(?) AND country_id = ?
)
`

const locationExistsByCodeSQL = `
SELECT EXISTS(SELECT 1 FROM locations WHERE city_code = ?)
`

const insertLocationSQL = `
INSERT INTO locations (city_name, city_code, country_id) VALUES (?, ?, ?)
`

const getCountrySQL = `
SELECT id, name, country_code FROM countries WHERE id = ?
`

const listCountriesSQL = `
SELECT id, name, country_code FROM countries ORDER BY id
`

const countryExistsByNameSQL = `
SELECT EXISTS(SELECT 1 FROM countries WHERE LOWER(name) = LOWER(?))
`

const countryExistsByCodeSQL = `
SELECT EXISTS(SELECT 1 FROM countries WHERE country_code = ?)
`

const insertCountrySQL = `
INSERT INTO countries (name, country_code) VALUES (?, ?)
`
