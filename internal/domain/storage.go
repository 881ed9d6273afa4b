package domain

import (
	"context"
	"fmt"
)

// Storage is the persistence capability handed to services and handlers.
// Get returns an ErrNotFound AppError for unknown ids. All returns objects in
// store iteration order. Implementations enforce referential integrity on
// Save and cascade on Delete.
type Storage interface {
	Get(ctx context.Context, kind Kind, id string) (Entity, error)
	All(ctx context.Context, kind Kind) ([]Entity, error)
	Save(ctx context.Context, e Entity) error
	Delete(ctx context.Context, e Entity) error
}

// RelationReader is an optional upgrade a Storage may implement to answer
// relationship lookups without a full scan.
type RelationReader interface {
	CitiesByState(ctx context.Context, stateID string) ([]*City, error)
	PlacesByCity(ctx context.Context, cityID string) ([]*Place, error)
}

// Counter is an optional upgrade for cheap per-kind counts.
type Counter interface {
	Count(ctx context.Context, kind Kind) (int, error)
}

// Lookup fetches id and asserts it to T.
func Lookup[T Entity](ctx context.Context, s Storage, id string) (T, error) {
	var zero T
	e, err := s.Get(ctx, zero.Kind(), id)
	if err != nil {
		return zero, err
	}
	t, ok := e.(T)
	if !ok {
		return zero, fmt.Errorf("storage returned %T for kind %s", e, zero.Kind())
	}
	return t, nil
}

// List fetches every object of T's kind in store order.
func List[T Entity](ctx context.Context, s Storage) ([]T, error) {
	var zero T
	all, err := s.All(ctx, zero.Kind())
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(all))
	for _, e := range all {
		t, ok := e.(T)
		if !ok {
			return nil, fmt.Errorf("storage returned %T for kind %s", e, zero.Kind())
		}
		out = append(out, t)
	}
	return out, nil
}

// CitiesOf returns the cities of a state in store order.
func CitiesOf(ctx context.Context, s Storage, stateID string) ([]*City, error) {
	if rr, ok := s.(RelationReader); ok {
		return rr.CitiesByState(ctx, stateID)
	}
	all, err := List[*City](ctx, s)
	if err != nil {
		return nil, err
	}
	out := make([]*City, 0)
	for _, c := range all {
		if c.StateID == stateID {
			out = append(out, c)
		}
	}
	return out, nil
}

// PlacesOf returns the places of a city in store order.
func PlacesOf(ctx context.Context, s Storage, cityID string) ([]*Place, error) {
	if rr, ok := s.(RelationReader); ok {
		return rr.PlacesByCity(ctx, cityID)
	}
	all, err := List[*Place](ctx, s)
	if err != nil {
		return nil, err
	}
	out := make([]*Place, 0)
	for _, p := range all {
		if p.CityID == cityID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Count uses Counter when available and falls back to len(All).
func Count(ctx context.Context, s Storage, kind Kind) (int, error) {
	if c, ok := s.(Counter); ok {
		return c.Count(ctx, kind)
	}
	all, err := s.All(ctx, kind)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}
