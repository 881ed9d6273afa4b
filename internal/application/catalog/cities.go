package catalog

import (
	"context"

	"github.com/baechuer/hbnb-service/internal/domain"
)

type CreateCityCmd struct {
	Name string
}

// ListCities returns the cities of a state; an unknown state is not_found.
func (s *Service) ListCities(ctx context.Context, stateID string) ([]*domain.City, error) {
	if _, err := s.GetState(ctx, stateID); err != nil {
		return nil, err
	}
	return domain.CitiesOf(ctx, s.store, stateID)
}

func (s *Service) GetCity(ctx context.Context, id string) (*domain.City, error) {
	return domain.Lookup[*domain.City](ctx, s.store, id)
}

func (s *Service) CreateCity(ctx context.Context, stateID string, cmd CreateCityCmd) (*domain.City, error) {
	if _, err := s.GetState(ctx, stateID); err != nil {
		return nil, err
	}
	if blank(cmd.Name) {
		return nil, missing("name")
	}
	c := &domain.City{StateID: stateID, Name: cmd.Name}
	if err := s.create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateCity(ctx context.Context, id string, fields map[string]any) (*domain.City, error) {
	return update(ctx, s, id, domain.CityPatch, fields, nil)
}

func (s *Service) DeleteCity(ctx context.Context, id string) error {
	return remove[*domain.City](ctx, s, id)
}
