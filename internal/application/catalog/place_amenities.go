package catalog

import (
	"context"

	"github.com/baechuer/hbnb-service/internal/domain"
)

func (s *Service) ListPlaceAmenities(ctx context.Context, placeID string) ([]*domain.Amenity, error) {
	p, err := s.GetPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Amenity, 0, len(p.AmenityIDs))
	for _, id := range p.AmenityIDs {
		a, err := s.GetAmenity(ctx, id)
		if domain.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// LinkAmenity links amenityID to placeID. created is false when the link
// already existed, in which case nothing is written.
func (s *Service) LinkAmenity(ctx context.Context, placeID, amenityID string) (a *domain.Amenity, created bool, err error) {
	p, err := s.GetPlace(ctx, placeID)
	if err != nil {
		return nil, false, err
	}
	a, err = s.GetAmenity(ctx, amenityID)
	if err != nil {
		return nil, false, err
	}
	if !p.LinkAmenity(amenityID) {
		return a, false, nil
	}
	p.Touch(s.clock.Now())
	if err := s.store.Save(ctx, p); err != nil {
		return nil, false, err
	}
	s.emit(ctx, "place."+string(ActionAmenityLinked), AmenityLinkPayload{PlaceID: placeID, AmenityID: amenityID})
	return a, true, nil
}

// UnlinkAmenity is not_found when the amenity is not linked to the place.
func (s *Service) UnlinkAmenity(ctx context.Context, placeID, amenityID string) error {
	p, err := s.GetPlace(ctx, placeID)
	if err != nil {
		return err
	}
	if _, err := s.GetAmenity(ctx, amenityID); err != nil {
		return err
	}
	if !p.UnlinkAmenity(amenityID) {
		return domain.ErrNotFound("amenity not linked to place")
	}
	p.Touch(s.clock.Now())
	if err := s.store.Save(ctx, p); err != nil {
		return err
	}
	s.emit(ctx, "place."+string(ActionAmenityUnlinked), AmenityLinkPayload{PlaceID: placeID, AmenityID: amenityID})
	return nil
}
