package search

import (
	"context"
	"fmt"

	"github.com/baechuer/hbnb-service/internal/domain"
	zlog "github.com/rs/zerolog/log"
)

// FallbackMode decides when an amenity query widens an empty candidate set
// to the whole place corpus.
type FallbackMode string

const (
	// FallbackEmpty widens whenever the city-derived candidate set is empty.
	// This is the default.
	FallbackEmpty FallbackMode = "empty"
	// FallbackUnfiltered widens only amenity-only queries (no states, no
	// cities), so a location filter is never dropped.
	FallbackUnfiltered FallbackMode = "unfiltered"
)

func ParseFallbackMode(s string) (FallbackMode, error) {
	switch FallbackMode(s) {
	case "", FallbackEmpty:
		return FallbackEmpty, nil
	case FallbackUnfiltered:
		return FallbackUnfiltered, nil
	default:
		return "", fmt.Errorf("unknown amenity fallback mode %q", s)
	}
}

type Resolver struct {
	store    domain.Storage
	fallback FallbackMode
}

func NewResolver(store domain.Storage, fallback FallbackMode) *Resolver {
	if fallback == "" {
		fallback = FallbackEmpty
	}
	return &Resolver{store: store, fallback: fallback}
}

// Resolve returns the places matching q, without duplicates. Identifiers that
// resolve to nothing are skipped; only storage failures are returned as errors.
func (r *Resolver) Resolve(ctx context.Context, q Query) ([]*domain.Place, error) {
	if q.Unfiltered() {
		return domain.List[*domain.Place](ctx, r.store)
	}

	cityIDs, err := r.workingCities(ctx, q)
	if err != nil {
		return nil, err
	}

	candidates, err := r.placesOf(ctx, cityIDs)
	if err != nil {
		return nil, err
	}

	if len(q.Amenities) == 0 {
		return candidates, nil
	}

	if len(candidates) == 0 && r.widen(q) {
		candidates, err = domain.List[*domain.Place](ctx, r.store)
		if err != nil {
			return nil, err
		}
	}

	out := make([]*domain.Place, 0, len(candidates))
	for _, p := range candidates {
		if p.HasAllAmenities(q.Amenities) {
			out = append(out, p)
		}
	}

	zlog.Debug().
		Int("cities", len(cityIDs)).
		Int("candidates", len(candidates)).
		Int("matched", len(out)).
		Msg("place search resolved")

	return out, nil
}

func (r *Resolver) widen(q Query) bool {
	if r.fallback == FallbackUnfiltered {
		return len(q.States) == 0 && len(q.Cities) == 0
	}
	return true
}

// workingCities expands states into their cities and merges explicit cities,
// keeping first-seen order.
func (r *Resolver) workingCities(ctx context.Context, q Query) ([]string, error) {
	var ids []string
	seen := map[string]struct{}{}
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, stateID := range q.States {
		if _, err := domain.Lookup[*domain.State](ctx, r.store, stateID); err != nil {
			if domain.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		cities, err := domain.CitiesOf(ctx, r.store, stateID)
		if err != nil {
			return nil, err
		}
		for _, c := range cities {
			add(c.ID)
		}
	}
	for _, cityID := range q.Cities {
		add(cityID)
	}
	return ids, nil
}

func (r *Resolver) placesOf(ctx context.Context, cityIDs []string) ([]*domain.Place, error) {
	var out []*domain.Place
	seen := map[string]struct{}{}
	for _, cityID := range cityIDs {
		places, err := domain.PlacesOf(ctx, r.store, cityID)
		if err != nil {
			return nil, err
		}
		for _, p := range places {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
		}
	}
	return out, nil
}
