package dto

import (
	"time"
)

// BaseResp carries the fields every representation shares. Class names the
// entity kind under the "__class__" key.
type BaseResp struct {
	Class     string    `json:"__class__"`
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StateResp struct {
	BaseResp
	Name string `json:"name"`
}

type CityResp struct {
	BaseResp
	StateID string `json:"state_id"`
	Name    string `json:"name"`
}

type AmenityResp struct {
	BaseResp
	Name string `json:"name"`
}

// UserResp never includes the password hash.
type UserResp struct {
	BaseResp
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type PlaceResp struct {
	BaseResp
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

type StatusResp struct {
	Status string `json:"status"`
}

type StatsResp struct {
	Amenities int `json:"amenities"`
	Cities    int `json:"cities"`
	Places    int `json:"places"`
	States    int `json:"states"`
	Users     int `json:"users"`
}
