package domain

import (
	"time"

	"github.com/google/uuid"
)

// Kind names an entity type as understood by Storage.
type Kind string

const (
	KindState   Kind = "State"
	KindCity    Kind = "City"
	KindAmenity Kind = "Amenity"
	KindPlace   Kind = "Place"
	KindUser    Kind = "User"
)

// Kinds lists every kind in dependency order: a kind never references one
// that appears after it.
var Kinds = []Kind{KindState, KindUser, KindAmenity, KindCity, KindPlace}

func (k Kind) Valid() bool {
	switch k {
	case KindState, KindCity, KindAmenity, KindPlace, KindUser:
		return true
	default:
		return false
	}
}

// Base carries the fields every entity shares.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewBase(now time.Time) Base {
	now = now.UTC()
	return Base{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
}

func (b *Base) EntityID() string { return b.ID }
func (b *Base) Meta() *Base      { return b }

// Touch bumps UpdatedAt.
func (b *Base) Touch(now time.Time) { b.UpdatedAt = now.UTC() }

// Entity is implemented by pointers to every persisted domain object.
type Entity interface {
	Kind() Kind
	EntityID() string
	Meta() *Base
	Clone() Entity
}

type State struct {
	Base
	Name string `json:"name"`
}

func (*State) Kind() Kind { return KindState }
func (s *State) Clone() Entity {
	c := *s
	return &c
}

type City struct {
	Base
	StateID string `json:"state_id"`
	Name    string `json:"name"`
}

func (*City) Kind() Kind { return KindCity }
func (c *City) Clone() Entity {
	cp := *c
	return &cp
}

type Amenity struct {
	Base
	Name string `json:"name"`
}

func (*Amenity) Kind() Kind { return KindAmenity }
func (a *Amenity) Clone() Entity {
	c := *a
	return &c
}

type User struct {
	Base
	Email     string `json:"email"`
	Password  string `json:"password"` // bcrypt hash
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (*User) Kind() Kind { return KindUser }
func (u *User) Clone() Entity {
	c := *u
	return &c
}

type Place struct {
	Base
	CityID          string   `json:"city_id"`
	UserID          string   `json:"user_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	NumberRooms     int      `json:"number_rooms"`
	NumberBathrooms int      `json:"number_bathrooms"`
	MaxGuest        int      `json:"max_guest"`
	PriceByNight    int      `json:"price_by_night"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	AmenityIDs      []string `json:"amenity_ids"`
}

func (*Place) Kind() Kind { return KindPlace }
func (p *Place) Clone() Entity {
	c := *p
	c.AmenityIDs = append([]string(nil), p.AmenityIDs...)
	return &c
}

// HasAmenity compares by identifier.
func (p *Place) HasAmenity(id string) bool {
	for _, a := range p.AmenityIDs {
		if a == id {
			return true
		}
	}
	return false
}

// HasAllAmenities reports whether every id in ids is linked to the place.
// An empty ids set is trivially satisfied.
func (p *Place) HasAllAmenities(ids []string) bool {
	if len(ids) == 0 {
		return true
	}
	have := make(map[string]struct{}, len(p.AmenityIDs))
	for _, a := range p.AmenityIDs {
		have[a] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := have[id]; !ok {
			return false
		}
	}
	return true
}

// LinkAmenity appends id unless already present and reports whether it was added.
func (p *Place) LinkAmenity(id string) bool {
	if p.HasAmenity(id) {
		return false
	}
	p.AmenityIDs = append(p.AmenityIDs, id)
	return true
}

// UnlinkAmenity removes id and reports whether it was present.
func (p *Place) UnlinkAmenity(id string) bool {
	for i, a := range p.AmenityIDs {
		if a == id {
			p.AmenityIDs = append(p.AmenityIDs[:i:i], p.AmenityIDs[i+1:]...)
			return true
		}
	}
	return false
}
