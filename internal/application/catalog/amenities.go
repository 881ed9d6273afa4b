package catalog

import (
	"context"

	"github.com/baechuer/hbnb-service/internal/domain"
)

type CreateAmenityCmd struct {
	Name string
}

func (s *Service) ListAmenities(ctx context.Context) ([]*domain.Amenity, error) {
	return domain.List[*domain.Amenity](ctx, s.store)
}

func (s *Service) GetAmenity(ctx context.Context, id string) (*domain.Amenity, error) {
	return domain.Lookup[*domain.Amenity](ctx, s.store, id)
}

func (s *Service) CreateAmenity(ctx context.Context, cmd CreateAmenityCmd) (*domain.Amenity, error) {
	if blank(cmd.Name) {
		return nil, missing("name")
	}
	a := &domain.Amenity{Name: cmd.Name}
	if err := s.create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) UpdateAmenity(ctx context.Context, id string, fields map[string]any) (*domain.Amenity, error) {
	return update(ctx, s, id, domain.AmenityPatch, fields, nil)
}

// DeleteAmenity also unlinks it from every place.
func (s *Service) DeleteAmenity(ctx context.Context, id string) error {
	return remove[*domain.Amenity](ctx, s, id)
}
