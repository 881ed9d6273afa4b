package dto

type CreateStateReq struct {
	Name string `json:"name" validate:"required"`
}

type CreateCityReq struct {
	Name string `json:"name" validate:"required"`
}

type CreateAmenityReq struct {
	Name string `json:"name" validate:"required"`
}

type CreateUserReq struct {
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CreatePlaceReq leaves name unchecked here: the service checks the owner
// before the name.
type CreatePlaceReq struct {
	UserID          string  `json:"user_id" validate:"required"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	NumberRooms     int     `json:"number_rooms" validate:"gte=0"`
	NumberBathrooms int     `json:"number_bathrooms" validate:"gte=0"`
	MaxGuest        int     `json:"max_guest" validate:"gte=0"`
	PriceByNight    int     `json:"price_by_night" validate:"gte=0"`
	Latitude        float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude       float64 `json:"longitude" validate:"gte=-180,lte=180"`
}
