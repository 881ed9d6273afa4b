package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/baechuer/hbnb-service/internal/domain"
)

// snapshot is the on-disk layout: one ordered array per kind.
type snapshot struct {
	States    []*domain.State   `json:"states"`
	Users     []*domain.User    `json:"users"`
	Amenities []*domain.Amenity `json:"amenities"`
	Cities    []*domain.City    `json:"cities"`
	Places    []*domain.Place   `json:"places"`
}

// Open returns a Store backed by the snapshot file at path. A missing file
// yields an empty store; the file is created on the first write.
func Open(path string) (*Store, error) {
	s := New()
	s.path = path

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}

	for _, e := range snap.entities() {
		if err := s.checkRefs(e); err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", path, err)
		}
		s.put(e)
	}
	return s, nil
}

// Path returns the snapshot file, or "" for a purely in-memory store.
func (s *Store) Path() string { return s.path }

func (s *snapshot) entities() []domain.Entity {
	var out []domain.Entity
	for _, v := range s.States {
		out = append(out, v)
	}
	for _, v := range s.Users {
		out = append(out, v)
	}
	for _, v := range s.Amenities {
		out = append(out, v)
	}
	for _, v := range s.Cities {
		out = append(out, v)
	}
	for _, v := range s.Places {
		out = append(out, v)
	}
	return out
}

func (s *Store) snapshotLocked() snapshot {
	var snap snapshot
	for _, id := range s.order[domain.KindState] {
		snap.States = append(snap.States, s.objs[domain.KindState][id].(*domain.State))
	}
	for _, id := range s.order[domain.KindUser] {
		snap.Users = append(snap.Users, s.objs[domain.KindUser][id].(*domain.User))
	}
	for _, id := range s.order[domain.KindAmenity] {
		snap.Amenities = append(snap.Amenities, s.objs[domain.KindAmenity][id].(*domain.Amenity))
	}
	for _, id := range s.order[domain.KindCity] {
		snap.Cities = append(snap.Cities, s.objs[domain.KindCity][id].(*domain.City))
	}
	for _, id := range s.order[domain.KindPlace] {
		snap.Places = append(snap.Places, s.objs[domain.KindPlace][id].(*domain.Place))
	}
	return snap
}

// flushLocked writes the snapshot via a temp file then rename. Caller holds mu.
func (s *Store) flushLocked() error {
	if s.path == "" {
		return nil
	}
	b, err := json.MarshalIndent(s.snapshotLocked(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
