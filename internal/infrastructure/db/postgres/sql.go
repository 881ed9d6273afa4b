package postgres

// states

const getStateSQL = `
SELECT id, name, created_at, updated_at
FROM states WHERE id = $1
`

const listStatesSQL = `
SELECT id, name, created_at, updated_at
FROM states ORDER BY created_at, id
`

const upsertStateSQL = `
INSERT INTO states (id, name, created_at, updated_at)
VALUES ($1,$2,$3,$4)
ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, updated_at=EXCLUDED.updated_at
`

// cities

const getCitySQL = `
SELECT id, state_id, name, created_at, updated_at
FROM cities WHERE id = $1
`

const listCitiesSQL = `
SELECT id, state_id, name, created_at, updated_at
FROM cities ORDER BY created_at, id
`

const listCitiesByStateSQL = `
SELECT id, state_id, name, created_at, updated_at
FROM cities WHERE state_id = $1 ORDER BY created_at, id
`

const upsertCitySQL = `
INSERT INTO cities (id, state_id, name, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, updated_at=EXCLUDED.updated_at
`

// amenities

const getAmenitySQL = `
SELECT id, name, created_at, updated_at
FROM amenities WHERE id = $1
`

const listAmenitiesSQL = `
SELECT id, name, created_at, updated_at
FROM amenities ORDER BY created_at, id
`

const upsertAmenitySQL = `
INSERT INTO amenities (id, name, created_at, updated_at)
VALUES ($1,$2,$3,$4)
ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, updated_at=EXCLUDED.updated_at
`

// users

const getUserSQL = `
SELECT id, email, password, first_name, last_name, created_at, updated_at
FROM users WHERE id = $1
`

const listUsersSQL = `
SELECT id, email, password, first_name, last_name, created_at, updated_at
FROM users ORDER BY created_at, id
`

const upsertUserSQL = `
INSERT INTO users (id, email, password, first_name, last_name, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
ON CONFLICT (id) DO UPDATE SET
  password=EXCLUDED.password, first_name=EXCLUDED.first_name,
  last_name=EXCLUDED.last_name, updated_at=EXCLUDED.updated_at
`

// places

const placeColumns = `
id, city_id, user_id, name, description,
number_rooms, number_bathrooms, max_guest, price_by_night,
latitude, longitude, created_at, updated_at
`

const getPlaceSQL = `SELECT` + placeColumns + `FROM places WHERE id = $1`

const listPlacesSQL = `SELECT` + placeColumns + `FROM places ORDER BY created_at, id`

const listPlacesByCitySQL = `SELECT` + placeColumns + `FROM places WHERE city_id = $1 ORDER BY created_at, id`

const upsertPlaceSQL = `
INSERT INTO places (
  id, city_id, user_id, name, description,
  number_rooms, number_bathrooms, max_guest, price_by_night,
  latitude, longitude, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
ON CONFLICT (id) DO UPDATE SET
  name=EXCLUDED.name, description=EXCLUDED.description,
  number_rooms=EXCLUDED.number_rooms, number_bathrooms=EXCLUDED.number_bathrooms,
  max_guest=EXCLUDED.max_guest, price_by_night=EXCLUDED.price_by_night,
  latitude=EXCLUDED.latitude, longitude=EXCLUDED.longitude,
  updated_at=EXCLUDED.updated_at
`

// place_amenity

const placeAmenitiesSQL = `
SELECT amenity_id FROM place_amenity WHERE place_id = $1 ORDER BY position
`

const allPlaceAmenitiesSQL = `
SELECT place_id, amenity_id FROM place_amenity ORDER BY place_id, position
`

const clearPlaceAmenitiesSQL = `DELETE FROM place_amenity WHERE place_id = $1`

const insertPlaceAmenitySQL = `
INSERT INTO place_amenity (place_id, amenity_id, position) VALUES ($1,$2,$3)
`
