package dto

import "github.com/baechuer/hbnb-service/internal/domain"

func toBase(kind domain.Kind, b domain.Base) BaseResp {
	return BaseResp{Class: string(kind), ID: b.ID, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

func ToStateResp(s *domain.State) StateResp {
	return StateResp{BaseResp: toBase(domain.KindState, s.Base), Name: s.Name}
}

func ToCityResp(c *domain.City) CityResp {
	return CityResp{BaseResp: toBase(domain.KindCity, c.Base), StateID: c.StateID, Name: c.Name}
}

func ToAmenityResp(a *domain.Amenity) AmenityResp {
	return AmenityResp{BaseResp: toBase(domain.KindAmenity, a.Base), Name: a.Name}
}

func ToUserResp(u *domain.User) UserResp {
	return UserResp{
		BaseResp:  toBase(domain.KindUser, u.Base),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func ToPlaceResp(p *domain.Place) PlaceResp {
	ids := p.AmenityIDs
	if ids == nil {
		ids = []string{}
	}
	return PlaceResp{
		BaseResp:        toBase(domain.KindPlace, p.Base),
		CityID:          p.CityID,
		UserID:          p.UserID,
		Name:            p.Name,
		Description:     p.Description,
		NumberRooms:     p.NumberRooms,
		NumberBathrooms: p.NumberBathrooms,
		MaxGuest:        p.MaxGuest,
		PriceByNight:    p.PriceByNight,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
		AmenityIDs:      ids,
	}
}

func ToStatsResp(counts map[domain.Kind]int) StatsResp {
	return StatsResp{
		Amenities: counts[domain.KindAmenity],
		Cities:    counts[domain.KindCity],
		Places:    counts[domain.KindPlace],
		States:    counts[domain.KindState],
		Users:     counts[domain.KindUser],
	}
}

// List maps items with f and never returns nil, so empty lists encode as [].
func List[T, R any](items []T, f func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, f(it))
	}
	return out
}
