package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/baechuer/hbnb-service/internal/domain"
)

// Fixture is a bulk-load document: one array per kind. Ids and timestamps
// are kept when present; user passwords are given in clear and hashed on import.
type Fixture struct {
	States    []*domain.State   `json:"states"`
	Users     []*domain.User    `json:"users"`
	Amenities []*domain.Amenity `json:"amenities"`
	Cities    []*domain.City    `json:"cities"`
	Places    []*domain.Place   `json:"places"`
}

func DecodeFixture(r io.Reader) (*Fixture, error) {
	var f Fixture
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

func (f *Fixture) entities() []domain.Entity {
	var out []domain.Entity
	for _, v := range f.States {
		out = append(out, v)
	}
	for _, v := range f.Users {
		out = append(out, v)
	}
	for _, v := range f.Amenities {
		out = append(out, v)
	}
	for _, v := range f.Cities {
		out = append(out, v)
	}
	for _, v := range f.Places {
		out = append(out, v)
	}
	return out
}

// Import saves every fixture object in dependency order and returns how many
// of each kind were written. It stops at the first failure.
func (s *Service) Import(ctx context.Context, f *Fixture) (map[domain.Kind]int, error) {
	counts := make(map[domain.Kind]int, len(domain.Kinds))
	for _, e := range f.entities() {
		if err := s.importOne(ctx, e); err != nil {
			return counts, fmt.Errorf("import %s %q: %w", e.Kind(), e.EntityID(), err)
		}
		counts[e.Kind()]++
	}
	return counts, nil
}

func (s *Service) importOne(ctx context.Context, e domain.Entity) error {
	b := e.Meta()
	now := s.clock.Now().UTC()
	if b.ID == "" {
		*b = domain.NewBase(now)
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = b.CreatedAt
	}

	if u, ok := e.(*domain.User); ok && u.Password != "" {
		h, err := s.hasher.Hash(u.Password)
		if err != nil {
			return err
		}
		u.Password = h
	}

	if err := s.store.Save(ctx, e); err != nil {
		return err
	}
	s.emitEntity(ctx, e, ActionCreated)
	return nil
}
