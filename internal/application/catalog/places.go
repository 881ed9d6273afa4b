package catalog

import (
	"context"

	"github.com/baechuer/hbnb-service/internal/domain"
)

type CreatePlaceCmd struct {
	UserID          string
	Name            string
	Description     string
	NumberRooms     int
	NumberBathrooms int
	MaxGuest        int
	PriceByNight    int
	Latitude        float64
	Longitude       float64
}

// ListPlaces returns the places of a city; an unknown city is not_found.
func (s *Service) ListPlaces(ctx context.Context, cityID string) ([]*domain.Place, error) {
	if _, err := s.GetCity(ctx, cityID); err != nil {
		return nil, err
	}
	return domain.PlacesOf(ctx, s.store, cityID)
}

func (s *Service) GetPlace(ctx context.Context, id string) (*domain.Place, error) {
	return domain.Lookup[*domain.Place](ctx, s.store, id)
}

// CreatePlace checks, in order: user_id present, user exists, name present,
// city exists.
func (s *Service) CreatePlace(ctx context.Context, cityID string, cmd CreatePlaceCmd) (*domain.Place, error) {
	if blank(cmd.UserID) {
		return nil, missing("user_id")
	}
	if _, err := s.GetUser(ctx, cmd.UserID); err != nil {
		return nil, err
	}
	if blank(cmd.Name) {
		return nil, missing("name")
	}
	if _, err := s.GetCity(ctx, cityID); err != nil {
		return nil, err
	}

	p := &domain.Place{
		CityID:          cityID,
		UserID:          cmd.UserID,
		Name:            cmd.Name,
		Description:     cmd.Description,
		NumberRooms:     cmd.NumberRooms,
		NumberBathrooms: cmd.NumberBathrooms,
		MaxGuest:        cmd.MaxGuest,
		PriceByNight:    cmd.PriceByNight,
		Latitude:        cmd.Latitude,
		Longitude:       cmd.Longitude,
	}
	if err := s.create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdatePlace(ctx context.Context, id string, fields map[string]any) (*domain.Place, error) {
	return update(ctx, s, id, domain.PlacePatch, fields, nil)
}

func (s *Service) DeletePlace(ctx context.Context, id string) error {
	return remove[*domain.Place](ctx, s, id)
}
