package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/hbnb-service/internal/application/catalog"
	"github.com/baechuer/hbnb-service/internal/transport/http/dto"
	"github.com/baechuer/hbnb-service/internal/transport/http/response"
	"github.com/baechuer/hbnb-service/internal/transport/http/validate"
)

type PlacesHandler struct {
	svc *catalog.Service
}

func NewPlacesHandler(svc *catalog.Service) *PlacesHandler {
	return &PlacesHandler{svc: svc}
}

// ListByCity serves GET /cities/{city_id}/places.
func (h *PlacesHandler) ListByCity(w http.ResponseWriter, r *http.Request) {
	places, err := h.svc.ListPlaces(r.Context(), chi.URLParam(r, "city_id"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.List(places, dto.ToPlaceResp))
}

func (h *PlacesHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPlace(r.Context(), chi.URLParam(r, "place_id"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToPlaceResp(p))
}

func (h *PlacesHandler) Create(w http.ResponseWriter, r *http.Request) {
	cityID := chi.URLParam(r, "city_id")
	if _, err := h.svc.GetCity(r.Context(), cityID); err != nil {
		response.Err(w, r, err)
		return
	}
	obj, err := validate.DecodeObject(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	var req dto.CreatePlaceReq
	if err := validate.Bind(obj, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	p, err := h.svc.CreatePlace(r.Context(), cityID, catalog.CreatePlaceCmd{
		UserID:          req.UserID,
		Name:            req.Name,
		Description:     req.Description,
		NumberRooms:     req.NumberRooms,
		NumberBathrooms: req.NumberBathrooms,
		MaxGuest:        req.MaxGuest,
		PriceByNight:    req.PriceByNight,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, dto.ToPlaceResp(p))
}

func (h *PlacesHandler) Update(w http.ResponseWriter, r *http.Request) {
	obj, err := validate.DecodeObject(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	id := chi.URLParam(r, "place_id")
	p, err := h.svc.UpdatePlace(r.Context(), id, obj)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToPlaceResp(p))
}

func (h *PlacesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeletePlace(r.Context(), chi.URLParam(r, "place_id")); err != nil {
		response.Err(w, r, err)
		return
	}
	response.Empty(w)
}

func (h *PlacesHandler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListPlaceAmenities(r.Context(), chi.URLParam(r, "place_id"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.List(items, dto.ToAmenityResp))
}

// LinkAmenity answers 201 for a new link and 200 when it already existed.
func (h *PlacesHandler) LinkAmenity(w http.ResponseWriter, r *http.Request) {
	a, created, err := h.svc.LinkAmenity(r.Context(), chi.URLParam(r, "place_id"), chi.URLParam(r, "amenity_id"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.JSON(w, status, dto.ToAmenityResp(a))
}

func (h *PlacesHandler) UnlinkAmenity(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.UnlinkAmenity(r.Context(), chi.URLParam(r, "place_id"), chi.URLParam(r, "amenity_id")); err != nil {
		response.Err(w, r, err)
		return
	}
	response.Empty(w)
}
