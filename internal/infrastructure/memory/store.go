package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/baechuer/hbnb-service/internal/domain"
)

// Store is an in-process domain.Storage. Objects are kept per kind in
// insertion order and copied on the way in and out, so callers never share
// memory with the store. When path is set every write is flushed to a JSON
// snapshot file, and a write that cannot be flushed is not applied.
type Store struct {
	mu    sync.RWMutex
	order map[domain.Kind][]string
	objs  map[domain.Kind]map[string]domain.Entity
	path  string
}

func New() *Store {
	s := &Store{
		order: make(map[domain.Kind][]string),
		objs:  make(map[domain.Kind]map[string]domain.Entity),
	}
	for _, k := range domain.Kinds {
		s.objs[k] = make(map[string]domain.Entity)
	}
	return s
}

func (s *Store) Get(ctx context.Context, kind domain.Kind, id string) (domain.Entity, error) {
	if !kind.Valid() {
		return nil, domain.ErrValidation("unknown kind " + string(kind))
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.objs[kind][id]
	if !ok {
		return nil, domain.ErrNotFound(notFoundMsg(kind))
	}
	return e.Clone(), nil
}

func (s *Store) All(ctx context.Context, kind domain.Kind) ([]domain.Entity, error) {
	if !kind.Valid() {
		return nil, domain.ErrValidation("unknown kind " + string(kind))
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.order[kind]
	out := make([]domain.Entity, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.objs[kind][id].Clone())
	}
	return out, nil
}

func (s *Store) Count(ctx context.Context, kind domain.Kind) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order[kind]), nil
}

func (s *Store) CitiesByState(ctx context.Context, stateID string) ([]*domain.City, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.City, 0)
	for _, id := range s.order[domain.KindCity] {
		c := s.objs[domain.KindCity][id].(*domain.City)
		if c.StateID == stateID {
			out = append(out, c.Clone().(*domain.City))
		}
	}
	return out, nil
}

func (s *Store) PlacesByCity(ctx context.Context, cityID string) ([]*domain.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Place, 0)
	for _, id := range s.order[domain.KindPlace] {
		p := s.objs[domain.KindPlace][id].(*domain.Place)
		if p.CityID == cityID {
			out = append(out, p.Clone().(*domain.Place))
		}
	}
	return out, nil
}

// Save inserts or replaces e after checking its references.
func (s *Store) Save(ctx context.Context, e domain.Entity) error {
	if e == nil || e.EntityID() == "" {
		return domain.ErrValidation("entity without id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRefs(e); err != nil {
		return err
	}
	c := e.Clone()
	return s.commitLocked(func() { s.put(c) })
}

// Delete removes e and everything that depends on it.
func (s *Store) Delete(ctx context.Context, e domain.Entity) error {
	if e == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objs[e.Kind()][e.EntityID()]; !ok {
		return domain.ErrNotFound(notFoundMsg(e.Kind()))
	}
	return s.commitLocked(func() { s.cascade(e.Kind(), e.EntityID()) })
}

// commitLocked applies mutate and flushes the snapshot. When the flush fails
// the maps are rolled back, so memory never holds a write the file lacks.
// Caller holds mu.
func (s *Store) commitLocked(mutate func()) error {
	if s.path == "" {
		mutate()
		return nil
	}
	order, objs := s.copyLocked()
	mutate()
	if err := s.flushLocked(); err != nil {
		s.order, s.objs = order, objs
		return err
	}
	return nil
}

func (s *Store) copyLocked() (map[domain.Kind][]string, map[domain.Kind]map[string]domain.Entity) {
	order := make(map[domain.Kind][]string, len(s.order))
	for k, ids := range s.order {
		order[k] = append([]string(nil), ids...)
	}
	objs := make(map[domain.Kind]map[string]domain.Entity, len(s.objs))
	for k, m := range s.objs {
		cp := make(map[string]domain.Entity, len(m))
		for id, e := range m {
			cp[id] = e.Clone()
		}
		objs[k] = cp
	}
	return order, objs
}

func (s *Store) put(e domain.Entity) {
	kind, id := e.Kind(), e.EntityID()
	if _, exists := s.objs[kind][id]; !exists {
		s.order[kind] = append(s.order[kind], id)
	}
	s.objs[kind][id] = e
}

func (s *Store) remove(kind domain.Kind, id string) {
	delete(s.objs[kind], id)
	ids := s.order[kind]
	for i, v := range ids {
		if v == id {
			s.order[kind] = append(ids[:i:i], ids[i+1:]...)
			return
		}
	}
}

func (s *Store) cascade(kind domain.Kind, id string) {
	switch kind {
	case domain.KindState:
		for _, cid := range s.dependents(domain.KindCity, func(e domain.Entity) bool {
			return e.(*domain.City).StateID == id
		}) {
			s.cascade(domain.KindCity, cid)
		}
	case domain.KindCity:
		for _, pid := range s.dependents(domain.KindPlace, func(e domain.Entity) bool {
			return e.(*domain.Place).CityID == id
		}) {
			s.remove(domain.KindPlace, pid)
		}
	case domain.KindUser:
		for _, pid := range s.dependents(domain.KindPlace, func(e domain.Entity) bool {
			return e.(*domain.Place).UserID == id
		}) {
			s.remove(domain.KindPlace, pid)
		}
	case domain.KindAmenity:
		for _, p := range s.objs[domain.KindPlace] {
			p.(*domain.Place).UnlinkAmenity(id)
		}
	}
	s.remove(kind, id)
}

func (s *Store) dependents(kind domain.Kind, match func(domain.Entity) bool) []string {
	var ids []string
	for _, id := range s.order[kind] {
		if match(s.objs[kind][id]) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *Store) checkRefs(e domain.Entity) error {
	switch v := e.(type) {
	case *domain.City:
		return s.mustExist(domain.KindState, v.StateID)
	case *domain.Place:
		if err := s.mustExist(domain.KindCity, v.CityID); err != nil {
			return err
		}
		if err := s.mustExist(domain.KindUser, v.UserID); err != nil {
			return err
		}
		for _, aid := range v.AmenityIDs {
			if err := s.mustExist(domain.KindAmenity, aid); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Store) mustExist(kind domain.Kind, id string) error {
	if _, ok := s.objs[kind][id]; !ok {
		return domain.ErrInvalidState(fmt.Sprintf("dangling reference to %s %q", kind, id))
	}
	return nil
}

func notFoundMsg(kind domain.Kind) string {
	return fmt.Sprintf("%s not found", kind)
}
