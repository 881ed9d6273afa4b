package domain

import (
	"math"
	"sort"
)

// Setter assigns one decoded JSON value onto an entity field.
type Setter[T Entity] func(e T, v any) error

// Patcher is the allow-list of fields an update may touch. Keys that are not
// in the map (ids, foreign keys, timestamps, anything unknown) are ignored.
type Patcher[T Entity] map[string]Setter[T]

// Apply runs the setters for every recognised key and reports whether any
// field was assigned. Keys are applied in sorted order so a type error is
// reported deterministically.
func (p Patcher[T]) Apply(e T, fields map[string]any) (bool, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if _, ok := p[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := p[k](e, fields[k]); err != nil {
			return false, err
		}
	}
	return len(keys) > 0, nil
}

func StringField[T Entity](name string, field func(T) *string) Setter[T] {
	return func(e T, v any) error {
		s, ok := v.(string)
		if !ok {
			return fieldErr(name, "must be a string")
		}
		*field(e) = s
		return nil
	}
}

func IntField[T Entity](name string, field func(T) *int) Setter[T] {
	return func(e T, v any) error {
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
			return fieldErr(name, "must be an integer")
		}
		// float64(math.MaxInt) rounds up to 2^63, itself out of range
		if f < math.MinInt || f >= math.MaxInt {
			return fieldErr(name, "must be an integer")
		}
		*field(e) = int(f)
		return nil
	}
}

func FloatField[T Entity](name string, field func(T) *float64) Setter[T] {
	return func(e T, v any) error {
		f, ok := v.(float64)
		if !ok {
			return fieldErr(name, "must be a number")
		}
		*field(e) = f
		return nil
	}
}

func fieldErr(name, msg string) error {
	return ErrValidationMeta("invalid field type", map[string]string{name: msg})
}

var StatePatch = Patcher[*State]{
	"name": StringField("name", func(s *State) *string { return &s.Name }),
}

var CityPatch = Patcher[*City]{
	"name": StringField("name", func(c *City) *string { return &c.Name }),
}

var AmenityPatch = Patcher[*Amenity]{
	"name": StringField("name", func(a *Amenity) *string { return &a.Name }),
}

// UserPatch leaves out password: the caller hashes it before assignment.
var UserPatch = Patcher[*User]{
	"first_name": StringField("first_name", func(u *User) *string { return &u.FirstName }),
	"last_name":  StringField("last_name", func(u *User) *string { return &u.LastName }),
}

var PlacePatch = Patcher[*Place]{
	"name":             StringField("name", func(p *Place) *string { return &p.Name }),
	"description":      StringField("description", func(p *Place) *string { return &p.Description }),
	"number_rooms":     IntField("number_rooms", func(p *Place) *int { return &p.NumberRooms }),
	"number_bathrooms": IntField("number_bathrooms", func(p *Place) *int { return &p.NumberBathrooms }),
	"max_guest":        IntField("max_guest", func(p *Place) *int { return &p.MaxGuest }),
	"price_by_night":   IntField("price_by_night", func(p *Place) *int { return &p.PriceByNight }),
	"latitude":         FloatField("latitude", func(p *Place) *float64 { return &p.Latitude }),
	"longitude":        FloatField("longitude", func(p *Place) *float64 { return &p.Longitude }),
}
