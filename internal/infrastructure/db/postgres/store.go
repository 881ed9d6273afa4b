package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/baechuer/hbnb-service/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const fkViolation = "23503"

var tables = map[domain.Kind]string{
	domain.KindState:   "states",
	domain.KindCity:    "cities",
	domain.KindAmenity: "amenities",
	domain.KindUser:    "users",
	domain.KindPlace:   "places",
}

// Store is a domain.Storage over database/sql. It works with both the lib/pq
// ("postgres") and pgx stdlib ("pgx") drivers. Referential integrity and
// cascades are enforced by the schema.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store { return &Store{db: db} }

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) Get(ctx context.Context, kind domain.Kind, id string) (domain.Entity, error) {
	var (
		e   domain.Entity
		err error
	)
	switch kind {
	case domain.KindState:
		e, err = scanState(s.db.QueryRowContext(ctx, getStateSQL, id))
	case domain.KindCity:
		e, err = scanCity(s.db.QueryRowContext(ctx, getCitySQL, id))
	case domain.KindAmenity:
		e, err = scanAmenity(s.db.QueryRowContext(ctx, getAmenitySQL, id))
	case domain.KindUser:
		e, err = scanUser(s.db.QueryRowContext(ctx, getUserSQL, id))
	case domain.KindPlace:
		var p *domain.Place
		p, err = scanPlace(s.db.QueryRowContext(ctx, getPlaceSQL, id))
		if err == nil {
			p.AmenityIDs, err = s.placeAmenities(ctx, id)
		}
		e = p
	default:
		return nil, domain.ErrValidation("unknown kind " + string(kind))
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound(fmt.Sprintf("%s not found", kind))
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", kind, err)
	}
	return e, nil
}

func (s *Store) All(ctx context.Context, kind domain.Kind) ([]domain.Entity, error) {
	var out []domain.Entity
	var err error
	switch kind {
	case domain.KindState:
		out, err = queryAll(ctx, s.db, listStatesSQL, scanState)
	case domain.KindCity:
		out, err = queryAll(ctx, s.db, listCitiesSQL, scanCity)
	case domain.KindAmenity:
		out, err = queryAll(ctx, s.db, listAmenitiesSQL, scanAmenity)
	case domain.KindUser:
		out, err = queryAll(ctx, s.db, listUsersSQL, scanUser)
	case domain.KindPlace:
		var places []*domain.Place
		places, err = s.places(ctx, listPlacesSQL)
		out = make([]domain.Entity, 0, len(places))
		for _, p := range places {
			out = append(out, p)
		}
	default:
		return nil, domain.ErrValidation("unknown kind " + string(kind))
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return out, nil
}

func (s *Store) Count(ctx context.Context, kind domain.Kind) (int, error) {
	table, ok := tables[kind]
	if !ok {
		return 0, domain.ErrValidation("unknown kind " + string(kind))
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", kind, err)
	}
	return n, nil
}

func (s *Store) CitiesByState(ctx context.Context, stateID string) ([]*domain.City, error) {
	rows, err := s.db.QueryContext(ctx, listCitiesByStateSQL, stateID)
	if err != nil {
		return nil, fmt.Errorf("list cities of state: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.City, 0)
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) PlacesByCity(ctx context.Context, cityID string) ([]*domain.Place, error) {
	rows, err := s.db.QueryContext(ctx, listPlacesByCitySQL, cityID)
	if err != nil {
		return nil, fmt.Errorf("list places of city: %w", err)
	}
	places, err := collectPlaces(rows)
	if err != nil {
		return nil, err
	}
	for _, p := range places {
		if p.AmenityIDs, err = s.placeAmenities(ctx, p.ID); err != nil {
			return nil, err
		}
	}
	return places, nil
}

// Save upserts e. A place and its amenity links are written in one transaction.
func (s *Store) Save(ctx context.Context, e domain.Entity) error {
	if e == nil || e.EntityID() == "" {
		return domain.ErrValidation("entity without id")
	}
	var err error
	switch v := e.(type) {
	case *domain.State:
		_, err = s.db.ExecContext(ctx, upsertStateSQL, v.ID, v.Name, v.CreatedAt, v.UpdatedAt)
	case *domain.City:
		_, err = s.db.ExecContext(ctx, upsertCitySQL, v.ID, v.StateID, v.Name, v.CreatedAt, v.UpdatedAt)
	case *domain.Amenity:
		_, err = s.db.ExecContext(ctx, upsertAmenitySQL, v.ID, v.Name, v.CreatedAt, v.UpdatedAt)
	case *domain.User:
		_, err = s.db.ExecContext(ctx, upsertUserSQL,
			v.ID, v.Email, v.Password, v.FirstName, v.LastName, v.CreatedAt, v.UpdatedAt)
	case *domain.Place:
		err = s.withTx(ctx, func(tx *sql.Tx) error { return savePlace(ctx, tx, v) })
	default:
		return domain.ErrValidation(fmt.Sprintf("unsupported entity %T", e))
	}
	if isFKViolation(err) {
		return domain.ErrInvalidState(fmt.Sprintf("dangling reference from %s %q", e.Kind(), e.EntityID()))
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", e.Kind(), err)
	}
	return nil
}

// Delete removes e; dependents go with it through ON DELETE CASCADE.
func (s *Store) Delete(ctx context.Context, e domain.Entity) error {
	if e == nil {
		return nil
	}
	table, ok := tables[e.Kind()]
	if !ok {
		return domain.ErrValidation("unknown kind " + string(e.Kind()))
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, e.EntityID())
	if err != nil {
		return fmt.Errorf("delete %s: %w", e.Kind(), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", e.Kind(), err)
	}
	if n == 0 {
		return domain.ErrNotFound(fmt.Sprintf("%s not found", e.Kind()))
	}
	return nil
}

func savePlace(ctx context.Context, tx *sql.Tx, p *domain.Place) error {
	if _, err := tx.ExecContext(ctx, upsertPlaceSQL,
		p.ID, p.CityID, p.UserID, p.Name, p.Description,
		p.NumberRooms, p.NumberBathrooms, p.MaxGuest, p.PriceByNight,
		p.Latitude, p.Longitude, p.CreatedAt, p.UpdatedAt,
	); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, clearPlaceAmenitiesSQL, p.ID); err != nil {
		return err
	}
	for i, aid := range p.AmenityIDs {
		if _, err := tx.ExecContext(ctx, insertPlaceAmenitySQL, p.ID, aid, i); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *Store) placeAmenities(ctx context.Context, placeID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, placeAmenitiesSQL, placeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// places loads a place listing and attaches every amenity link with one
// extra query.
func (s *Store) places(ctx context.Context, query string, args ...any) ([]*domain.Place, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	places, err := collectPlaces(rows)
	if err != nil {
		return nil, err
	}

	links, err := s.db.QueryContext(ctx, allPlaceAmenitiesSQL)
	if err != nil {
		return nil, err
	}
	defer links.Close()

	byPlace := make(map[string][]string)
	for links.Next() {
		var pid, aid string
		if err := links.Scan(&pid, &aid); err != nil {
			return nil, err
		}
		byPlace[pid] = append(byPlace[pid], aid)
	}
	if err := links.Err(); err != nil {
		return nil, err
	}
	for _, p := range places {
		p.AmenityIDs = byPlace[p.ID]
	}
	return places, nil
}

func collectPlaces(rows *sql.Rows) ([]*domain.Place, error) {
	defer rows.Close()
	out := make([]*domain.Place, 0)
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func queryAll[T domain.Entity](ctx context.Context, db *sql.DB, query string, scan func(scanner) (T, error)) ([]domain.Entity, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Entity, 0)
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanState(r scanner) (*domain.State, error) {
	var v domain.State
	if err := r.Scan(&v.ID, &v.Name, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func scanCity(r scanner) (*domain.City, error) {
	var v domain.City
	if err := r.Scan(&v.ID, &v.StateID, &v.Name, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func scanAmenity(r scanner) (*domain.Amenity, error) {
	var v domain.Amenity
	if err := r.Scan(&v.ID, &v.Name, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func scanUser(r scanner) (*domain.User, error) {
	var v domain.User
	if err := r.Scan(&v.ID, &v.Email, &v.Password, &v.FirstName, &v.LastName, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func scanPlace(r scanner) (*domain.Place, error) {
	var v domain.Place
	if err := r.Scan(
		&v.ID, &v.CityID, &v.UserID, &v.Name, &v.Description,
		&v.NumberRooms, &v.NumberBathrooms, &v.MaxGuest, &v.PriceByNight,
		&v.Latitude, &v.Longitude, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &v, nil
}

// isFKViolation recognises foreign key errors from either driver.
func isFKViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == fkViolation
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == fkViolation
	}
	return false
}
