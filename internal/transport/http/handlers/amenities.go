package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/hbnb-service/internal/application/catalog"
	"github.com/baechuer/hbnb-service/internal/transport/http/dto"
	"github.com/baechuer/hbnb-service/internal/transport/http/response"
	"github.com/baechuer/hbnb-service/internal/transport/http/validate"
)

type AmenitiesHandler struct {
	svc *catalog.Service
}

func NewAmenitiesHandler(svc *catalog.Service) *AmenitiesHandler {
	return &AmenitiesHandler{svc: svc}
}

func (h *AmenitiesHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListAmenities(r.Context())
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.List(items, dto.ToAmenityResp))
}

func (h *AmenitiesHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetAmenity(r.Context(), chi.URLParam(r, "amenity_id"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToAmenityResp(a))
}

func (h *AmenitiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	obj, err := validate.DecodeObject(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	var req dto.CreateAmenityReq
	if err := validate.Bind(obj, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	a, err := h.svc.CreateAmenity(r.Context(), catalog.CreateAmenityCmd{Name: req.Name})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, dto.ToAmenityResp(a))
}

func (h *AmenitiesHandler) Update(w http.ResponseWriter, r *http.Request) {
	obj, err := validate.DecodeObject(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	id := chi.URLParam(r, "amenity_id")
	a, err := h.svc.UpdateAmenity(r.Context(), id, obj)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToAmenityResp(a))
}

func (h *AmenitiesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAmenity(r.Context(), chi.URLParam(r, "amenity_id")); err != nil {
		response.Err(w, r, err)
		return
	}
	response.Empty(w)
}
